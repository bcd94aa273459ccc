// Package types defines every cross-package data structure used by the goomba CLI.
package types

const (
	ArtifactMarkdown = "markdown"
	ArtifactPDF      = "pdf"
	ArtifactZip      = "zip"
)

// ValidatedPath is an absolute scan root that already passed existence checks.
type ValidatedPath struct {
	AbsolutePath string
	Name         string
}

// TreeEntry is one rendered line of the folder structure listing.
type TreeEntry struct {
	Name        string
	Depth       int
	IsDirectory bool
	IsLast      bool
}

// FileRecord is a qualifying file collected for the File Contents section.
// ReadError is set when the content could not be read or decoded; Content then holds
// the inline placeholder written into the document.
type FileRecord struct {
	RelativePath string
	Content      string
	ReadError    error
}

// Artifact is a file produced by one run.
type Artifact struct {
	Kind      string
	Path      string
	SizeBytes int64
}

// RunSummary captures what a run produced.
type RunSummary struct {
	Root       string
	Artifacts  []Artifact
	Files      []FileRecord
	Tokens     int
	TokenModel string
}
