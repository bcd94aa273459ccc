package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/goombastomp/goomba/internal/types"
	"github.com/goombastomp/goomba/internal/utils"
)

const (
	sectionHeadingPrefix = "\n\n### "
	codeFenceOpen        = "\n```text\n"
	codeFenceClose       = "\n```"
	sectionSeparator     = "\n"

	// readErrorPlaceholderFormat replaces the content of a file that cannot be read.
	readErrorPlaceholderFormat = "[ERROR reading file: %v]"

	warningReadFileMessage = "unable to read file, writing placeholder"
)

// ReadFileRecord reads the file at relativePath below rootDirectoryPath as UTF-8 text.
// Read and decode failures never fail the call: the returned record carries the error and a
// placeholder content so the rest of the tree can still be documented.
func ReadFileRecord(fileSystem afero.Fs, rootDirectoryPath string, relativePath string) types.FileRecord {
	record := types.FileRecord{RelativePath: relativePath}
	absolutePath := filepath.Join(rootDirectoryPath, filepath.FromSlash(relativePath))

	data, readErr := afero.ReadFile(fileSystem, absolutePath)
	if readErr == nil {
		record.Content, readErr = utils.DecodeUTF8Text(data)
	}
	if readErr != nil {
		record.ReadError = readErr
		record.Content = fmt.Sprintf(readErrorPlaceholderFormat, readErr)
	}
	return record
}

// RenderFileSection wraps a record in a level-3 heading and a fenced code block.
// The content is written verbatim.
func RenderFileSection(record types.FileRecord) string {
	return sectionHeadingPrefix + record.RelativePath + codeFenceOpen + record.Content + codeFenceClose
}

// RenderFileContent reads one file and renders its section.
func (treeBuilder *TreeBuilder) RenderFileContent(rootDirectoryPath string, relativePath string) string {
	return RenderFileSection(treeBuilder.readRecord(rootDirectoryPath, relativePath))
}

// CollectFileContents renders the section of every qualifying file below rootDirectoryPath in
// walker order and returns the joined sections together with the collected records.
func (treeBuilder *TreeBuilder) CollectFileContents(rootDirectoryPath string) (string, []types.FileRecord, error) {
	qualifyingPaths, err := treeBuilder.CollectQualifyingPaths(rootDirectoryPath)
	if err != nil {
		return "", nil, err
	}
	records := make([]types.FileRecord, 0, len(qualifyingPaths))
	sections := make([]string, 0, len(qualifyingPaths))
	for _, relativePath := range qualifyingPaths {
		record := treeBuilder.readRecord(rootDirectoryPath, relativePath)
		records = append(records, record)
		sections = append(sections, RenderFileSection(record))
	}
	return strings.Join(sections, sectionSeparator), records, nil
}

func (treeBuilder *TreeBuilder) readRecord(rootDirectoryPath string, relativePath string) types.FileRecord {
	record := ReadFileRecord(treeBuilder.FileSystem, rootDirectoryPath, relativePath)
	if record.ReadError != nil {
		treeBuilder.Logger.Warn(warningReadFileMessage, zap.String("path", relativePath), zap.Error(record.ReadError))
	}
	return record
}
