package utils

// EmptyString represents a reusable empty string constant.
const EmptyString = ""

// Configuration file locations.
const (
	// ConfigFileName is the name of the global configuration file.
	ConfigFileName = "config.yaml"
	// LocalConfigFileName is the name of the configuration file looked up in the working directory.
	LocalConfigFileName = ".goomba.yaml"
	// GlobalConfigDirectoryName is the directory under the user's home holding ConfigFileName.
	GlobalConfigDirectoryName = ".goomba"
)

// Output artifact naming.
const (
	// OutputDirectoryName is the directory created under the scan root for produced artifacts.
	OutputDirectoryName = "merged"
	// OutputBaseName is the file name shared by every artifact, without extension.
	OutputBaseName = "merged_output"
	// MarkdownExtension is the extension of the Markdown artifact.
	MarkdownExtension = ".md"
	// PDFExtension is the extension of the PDF artifact.
	PDFExtension = ".pdf"
	// ZipExtension is the extension of the ZIP artifact.
	ZipExtension = ".zip"
)

// Messages shared between the entry point and the command line layer.
const (
	LoggerInitializationFailedMessageFormat = "failed to initialize logger: %w"
	ApplicationExecutionFailedMessage       = "goomba failed"
)
