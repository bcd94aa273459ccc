// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goombastomp/goomba/internal/config"
	"github.com/goombastomp/goomba/internal/output"
	"github.com/goombastomp/goomba/internal/pipeline"
	"github.com/goombastomp/goomba/internal/services/clipboard"
	"github.com/goombastomp/goomba/internal/tokenizer"
	"github.com/goombastomp/goomba/internal/types"
	"github.com/goombastomp/goomba/internal/utils"
)

const (
	includeCodeFlagName = "include-code"
	pdfFlagName         = "pdf"
	zipFlagName         = "zip"
	copyFlagName        = "copy"
	tokensFlagName      = "tokens"
	modelFlagName       = "model"
	configFlagName      = "config"

	rootUse              = "goomba <folder>"
	rootShortDescription = "Merge a folder into Markdown (plus optional PDF/ZIP)"
	rootLongDescription  = `goomba documents a folder as a single Markdown file.
The document lists the folder structure and the contents of text files (.txt .md .log .csv
.json .xml .yaml .yml .ini). Hidden entries, node_modules, and .git are skipped.
Artifacts are written to <folder>/merged/merged_output.{md,pdf,zip}.
The PDF embeds the Go Mono font, which has no CJK glyphs; set export.font_path in the
configuration file to a TrueType font covering those scripts.`
	rootUsageExample = `  # Document a project including source files
  goomba --include-code ./proj

  # Produce Markdown, PDF, and a ZIP bundle of both
  goomba --pdf --zip ./proj

  # Turn off a PDF export enabled in the configuration file
  goomba --pdf no ./proj`
	versionTemplate = "goomba version: {{.Version}}\n"

	includeCodeFlagDescription = "also collect .py, .html, .js, and .css files"
	pdfFlagDescription         = "export a PDF"
	zipFlagDescription         = "bundle the produced files into a ZIP"
	copyFlagDescription        = "copy the Markdown document to the clipboard"
	tokensFlagDescription      = "report an estimated token count for the document"
	modelFlagDescription       = "tokenizer model to use for token counting"
	configFlagDescription      = "path to a configuration file"

	workingDirectoryErrorFormat = "unable to determine working directory: %w"
	// errorPathMissingFormat reports a missing folder.
	errorPathMissingFormat = "path '%s' does not exist"
	// errorStatFormat reports failure to retrieve file statistics.
	errorStatFormat = "stat failed for '%s': %w"
	// errorNotDirectoryFormat reports a folder argument naming a file.
	errorNotDirectoryFormat = "path '%s' is not a directory"
)

// application carries the collaborators of one command invocation.
type application struct {
	fileSystem       afero.Fs
	logger           *zap.Logger
	stdout           io.Writer
	workingDirectory string
	homeDirectory    string
	newCopier        func() clipboard.Copier
	newCounter       func(model string) (tokenizer.Counter, string, error)
}

// runOptions stores the values bound to command line flags.
type runOptions struct {
	includeCode bool
	pdf         bool
	zip         bool
	copy        bool
	tokens      bool
	model       string
	configPath  string
}

// Execute runs the goomba application against the real filesystem.
func Execute(logger *zap.Logger) error {
	workingDirectory, workingDirectoryError := os.Getwd()
	if workingDirectoryError != nil {
		return fmt.Errorf(workingDirectoryErrorFormat, workingDirectoryError)
	}
	homeDirectory, _ := os.UserHomeDir()

	app := &application{
		fileSystem:       afero.NewOsFs(),
		logger:           logger,
		stdout:           os.Stdout,
		workingDirectory: workingDirectory,
		homeDirectory:    homeDirectory,
		newCopier:        func() clipboard.Copier { return clipboard.NewService() },
		newCounter:       tokenizer.NewCounter,
	}
	rootCommand := app.createRootCommand()
	rootCommand.SetArgs(normalizeToggleFlagArguments(rootCommand.Flags(), os.Args[1:]))
	return rootCommand.Execute()
}

// createRootCommand builds the root Cobra command.
func (app *application) createRootCommand() *cobra.Command {
	var options runOptions

	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		Example:       rootUsageExample,
		Version:       utils.GetApplicationVersion(),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			return app.run(command, arguments[0], options)
		},
	}
	rootCommand.SetVersionTemplate(versionTemplate)
	rootCommand.SetOut(app.stdout)

	flagSet := rootCommand.Flags()
	registerToggleFlag(flagSet, &options.includeCode, includeCodeFlagName, includeCodeFlagDescription)
	registerToggleFlag(flagSet, &options.pdf, pdfFlagName, pdfFlagDescription)
	registerToggleFlag(flagSet, &options.zip, zipFlagName, zipFlagDescription)
	registerToggleFlag(flagSet, &options.copy, copyFlagName, copyFlagDescription)
	registerToggleFlag(flagSet, &options.tokens, tokensFlagName, tokensFlagDescription)
	flagSet.StringVar(&options.model, modelFlagName, config.DefaultTokenizerModel, modelFlagDescription)
	flagSet.StringVar(&options.configPath, configFlagName, "", configFlagDescription)
	return rootCommand
}

// run resolves configuration, validates the folder, and executes the pipeline.
func (app *application) run(command *cobra.Command, folder string, options runOptions) error {
	applicationConfig, loadError := config.LoadApplicationConfiguration(config.LoadOptions{
		FileSystem:       app.fileSystem,
		WorkingDirectory: app.workingDirectory,
		HomeDirectory:    app.homeDirectory,
		ExplicitFilePath: options.configPath,
	})
	if loadError != nil {
		return loadError
	}

	root, validationError := app.resolveAndValidateRoot(folder)
	if validationError != nil {
		return validationError
	}

	flags := command.Flags()
	pipelineOptions := pipeline.Options{
		Root:        root,
		IncludeCode: resolveToggle(flags.Changed(includeCodeFlagName), options.includeCode, applicationConfig.IncludeCode),
		ExportPDF:   resolveToggle(flags.Changed(pdfFlagName), options.pdf, applicationConfig.Export.PDF),
		ExportZip:   resolveToggle(flags.Changed(zipFlagName), options.zip, applicationConfig.Export.Zip),
		FontPath:    applicationConfig.Export.FontPath,
	}

	if resolveToggle(flags.Changed(copyFlagName), options.copy, applicationConfig.Copy) {
		pipelineOptions.Copier = app.newCopier()
	}

	if resolveToggle(flags.Changed(tokensFlagName), options.tokens, applicationConfig.Tokens.Enabled) {
		model := options.model
		if !flags.Changed(modelFlagName) && applicationConfig.Tokens.Model != "" {
			model = applicationConfig.Tokens.Model
		}
		counter, resolvedModel, counterError := app.newCounter(model)
		if counterError != nil {
			return counterError
		}
		pipelineOptions.TokenCounter = counter
		pipelineOptions.TokenModel = resolvedModel
	}

	printer := output.NewStatusPrinter(app.stdout)
	runner := pipeline.NewRunner(app.fileSystem, app.logger, printer)
	summary, runError := runner.Run(pipelineOptions)
	if runError != nil {
		return runError
	}
	printer.Summary(summary)
	return nil
}

// resolveToggle prefers an explicitly set flag over the configuration file.
func resolveToggle(flagChanged bool, flagValue bool, configured *bool) bool {
	if flagChanged {
		return flagValue
	}
	return config.BoolValue(configured, false)
}

// resolveAndValidateRoot converts the folder argument to a clean absolute path and checks that
// it names an existing directory.
func (app *application) resolveAndValidateRoot(folder string) (types.ValidatedPath, error) {
	absolutePath := folder
	if !filepath.IsAbs(absolutePath) {
		absolutePath = filepath.Join(app.workingDirectory, absolutePath)
	}
	cleanPath := filepath.Clean(absolutePath)

	info, statError := app.fileSystem.Stat(cleanPath)
	if statError != nil {
		if os.IsNotExist(statError) {
			return types.ValidatedPath{}, fmt.Errorf(errorPathMissingFormat, folder)
		}
		return types.ValidatedPath{}, fmt.Errorf(errorStatFormat, folder, statError)
	}
	if !info.IsDir() {
		return types.ValidatedPath{}, fmt.Errorf(errorNotDirectoryFormat, folder)
	}
	return types.ValidatedPath{AbsolutePath: cleanPath, Name: filepath.Base(cleanPath)}, nil
}
