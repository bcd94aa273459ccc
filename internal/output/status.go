// Package output prints artifact status lines and the final run summary.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/goombastomp/goomba/internal/types"
)

const (
	checkMark             = "✅"
	bulletPoint           = " • "
	createdLineFormat     = "%s Created %s: %s\n"
	doneLine              = "Done. Files created:"
	artifactLineFormat    = "%s%s (%s)\n"
	filesLineFormat       = "Collected %d %s, %d unreadable\n"
	tokensLineFormat      = "Estimated tokens: %s (%s)\n"
	singularFileNoun      = "file"
	pluralFileNoun        = "files"
	markdownArtifactLabel = "Markdown"
	pdfArtifactLabel      = "PDF"
	zipArtifactLabel      = "ZIP"
)

var artifactLabels = map[string]string{
	types.ArtifactMarkdown: markdownArtifactLabel,
	types.ArtifactPDF:      pdfArtifactLabel,
	types.ArtifactZip:      zipArtifactLabel,
}

// StatusPrinter writes human-readable progress for one run.
type StatusPrinter struct {
	writer  io.Writer
	success *color.Color
	muted   *color.Color
}

// NewStatusPrinter returns a printer writing to writer. Colors are used only when writer is a
// terminal.
func NewStatusPrinter(writer io.Writer) *StatusPrinter {
	success := color.New(color.FgGreen)
	muted := color.New(color.FgHiBlack)
	if !isTerminal(writer) {
		success.DisableColor()
		muted.DisableColor()
	}
	return &StatusPrinter{writer: writer, success: success, muted: muted}
}

func isTerminal(writer io.Writer) bool {
	file, isFile := writer.(*os.File)
	if !isFile {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

// ArtifactCreated announces a freshly written artifact.
func (printer *StatusPrinter) ArtifactCreated(artifact types.Artifact) {
	label, known := artifactLabels[artifact.Kind]
	if !known {
		label = artifact.Kind
	}
	fmt.Fprintf(printer.writer, createdLineFormat, printer.success.Sprint(checkMark), label, artifact.Path)
}

// Summary prints the final list of produced documents followed by collection statistics.
// The ZIP bundle is reported by its own status line and is not repeated here.
func (printer *StatusPrinter) Summary(summary types.RunSummary) {
	fmt.Fprintf(printer.writer, "%s %s\n", printer.success.Sprint(checkMark), doneLine)
	for _, artifact := range summary.Artifacts {
		if artifact.Kind == types.ArtifactZip {
			continue
		}
		size := humanize.Bytes(uint64(max(artifact.SizeBytes, 0)))
		fmt.Fprintf(printer.writer, artifactLineFormat, bulletPoint, artifact.Path, printer.muted.Sprint(size))
	}

	unreadable := 0
	for _, record := range summary.Files {
		if record.ReadError != nil {
			unreadable++
		}
	}
	noun := pluralFileNoun
	if len(summary.Files) == 1 {
		noun = singularFileNoun
	}
	fmt.Fprintf(printer.writer, filesLineFormat, len(summary.Files), noun, unreadable)

	if summary.TokenModel != "" {
		fmt.Fprintf(printer.writer, tokensLineFormat, humanize.Comma(int64(summary.Tokens)), summary.TokenModel)
	}
}
