// Package pipeline runs one scan of a directory and writes its artifacts.
package pipeline

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/goombastomp/goomba/internal/commands"
	"github.com/goombastomp/goomba/internal/config"
	"github.com/goombastomp/goomba/internal/export"
	"github.com/goombastomp/goomba/internal/services/clipboard"
	"github.com/goombastomp/goomba/internal/tokenizer"
	"github.com/goombastomp/goomba/internal/types"
	"github.com/goombastomp/goomba/internal/utils"
)

const (
	outputDirectoryPermissions = 0o755
	markdownFilePermissions    = 0o644

	errorCreateOutputDirectoryFormat = "create output directory %s: %w"
	errorWriteMarkdownFormat         = "write markdown %s: %w"
	errorReadMarkdownFormat          = "read markdown %s: %w"
	errorStatArtifactFormat          = "stat artifact %s: %w"
	errorCountTokensFormat           = "count tokens: %w"

	warningCopyMessage = "unable to copy document to clipboard"
)

// Options describes one run.
type Options struct {
	Root        types.ValidatedPath
	IncludeCode bool
	ExportPDF   bool
	ExportZip   bool
	FontPath    string
	// Copier, when set, receives the Markdown document.
	Copier clipboard.Copier
	// TokenCounter, when set, estimates the document's token count.
	TokenCounter tokenizer.Counter
	TokenModel   string
}

// Reporter is notified as artifacts are produced.
type Reporter interface {
	ArtifactCreated(artifact types.Artifact)
}

// Runner executes runs against a filesystem.
type Runner struct {
	FileSystem afero.Fs
	Logger     *zap.Logger
	Reporter   Reporter
}

// NewRunner builds a Runner; nil logger and reporter are replaced by no-ops.
func NewRunner(fileSystem afero.Fs, logger *zap.Logger, reporter Reporter) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if reporter == nil {
		reporter = discardReporter{}
	}
	return &Runner{FileSystem: fileSystem, Logger: logger, Reporter: reporter}
}

type discardReporter struct{}

func (discardReporter) ArtifactCreated(types.Artifact) {}

// OutputPaths returns the artifact paths for a scan root.
func OutputPaths(rootDirectoryPath string) (directory string, markdown string, pdf string, zip string) {
	directory = filepath.Join(rootDirectoryPath, utils.OutputDirectoryName)
	base := filepath.Join(directory, utils.OutputBaseName)
	return directory, base + utils.MarkdownExtension, base + utils.PDFExtension, base + utils.ZipExtension
}

// OutputArtifactNames returns the file names a run may write into the output directory.
func OutputArtifactNames() []string {
	return []string{
		utils.OutputBaseName + utils.MarkdownExtension,
		utils.OutputBaseName + utils.PDFExtension,
		utils.OutputBaseName + utils.ZipExtension,
	}
}

// Run scans options.Root, writes the Markdown artifact, and then the optional PDF and ZIP.
// Artifacts already written stay on disk when a later step fails.
func (runner *Runner) Run(options Options) (types.RunSummary, error) {
	summary := types.RunSummary{Root: options.Root.AbsolutePath}
	outputDirectory, markdownPath, pdfPath, zipPath := OutputPaths(options.Root.AbsolutePath)

	// Resolve the font before touching the filesystem so a missing resource aborts cleanly.
	var pdfRenderer *export.PDFRenderer
	if options.ExportPDF {
		renderer, err := export.NewPDFRenderer(runner.FileSystem, export.FontSource{Path: options.FontPath})
		if err != nil {
			return summary, err
		}
		pdfRenderer = renderer
	}

	filter := config.NewFilter(options.IncludeCode, utils.OutputDirectoryName, OutputArtifactNames()...)
	treeBuilder := commands.NewTreeBuilder(runner.FileSystem, filter, runner.Logger)
	document, records, err := treeBuilder.BuildDocument(options.Root.AbsolutePath)
	if err != nil {
		return summary, err
	}
	summary.Files = records

	if err := runner.FileSystem.MkdirAll(outputDirectory, outputDirectoryPermissions); err != nil {
		return summary, fmt.Errorf(errorCreateOutputDirectoryFormat, outputDirectory, err)
	}
	if err := afero.WriteFile(runner.FileSystem, markdownPath, []byte(document), markdownFilePermissions); err != nil {
		return summary, fmt.Errorf(errorWriteMarkdownFormat, markdownPath, err)
	}
	if err := runner.recordArtifact(&summary, types.ArtifactMarkdown, markdownPath); err != nil {
		return summary, err
	}

	if pdfRenderer != nil {
		writtenMarkdown, err := afero.ReadFile(runner.FileSystem, markdownPath)
		if err != nil {
			return summary, fmt.Errorf(errorReadMarkdownFormat, markdownPath, err)
		}
		if err := pdfRenderer.WritePDF(runner.FileSystem, string(writtenMarkdown), pdfPath); err != nil {
			return summary, err
		}
		if err := runner.recordArtifact(&summary, types.ArtifactPDF, pdfPath); err != nil {
			return summary, err
		}
	}

	if options.ExportZip {
		bundled := make([]string, 0, len(summary.Artifacts))
		for _, artifact := range summary.Artifacts {
			bundled = append(bundled, artifact.Path)
		}
		if err := export.WriteZip(runner.FileSystem, bundled, zipPath); err != nil {
			return summary, err
		}
		if err := runner.recordArtifact(&summary, types.ArtifactZip, zipPath); err != nil {
			return summary, err
		}
	}

	if options.Copier != nil {
		if err := options.Copier.Copy(document); err != nil {
			runner.Logger.Warn(warningCopyMessage, zap.Error(err))
		}
	}

	if options.TokenCounter != nil {
		tokens, err := tokenizer.CountDocument(options.TokenCounter, document)
		if err != nil {
			return summary, fmt.Errorf(errorCountTokensFormat, err)
		}
		summary.Tokens = tokens
		summary.TokenModel = options.TokenModel
	}

	return summary, nil
}

func (runner *Runner) recordArtifact(summary *types.RunSummary, kind string, path string) error {
	info, err := runner.FileSystem.Stat(path)
	if err != nil {
		return fmt.Errorf(errorStatArtifactFormat, path, err)
	}
	artifact := types.Artifact{Kind: kind, Path: path, SizeBytes: info.Size()}
	summary.Artifacts = append(summary.Artifacts, artifact)
	runner.Reporter.ArtifactCreated(artifact)
	return nil
}
