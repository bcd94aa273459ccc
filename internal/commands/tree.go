// Package commands contains the directory walker, content collector, and document assembler.
package commands

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/goombastomp/goomba/internal/types"
)

const (
	branchConnector     = "├── "
	lastBranchConnector = "└── "
	branchIndent        = "│   "
	lastBranchIndent    = "    "
	rootSuffix          = "/"
	lineSeparator       = "\n"

	// warningSkipSubdirMessage is logged when a subdirectory cannot be listed.
	warningSkipSubdirMessage = "skipping unreadable subdirectory"

	// errorReadDirectoryFormat is used when a directory cannot be read.
	errorReadDirectoryFormat = "reading directory %s: %w"
)

// listedEntry is a directory child that survived the exclusion rule.
type listedEntry struct {
	name        string
	isDirectory bool
}

// BuildTreeListing renders the folder structure of rootDirectoryPath.
// The first line is the root's base name followed by a slash; every non-excluded descendant
// follows on its own line with connector glyphs reflecting its nesting.
func (treeBuilder *TreeBuilder) BuildTreeListing(rootDirectoryPath string) (string, error) {
	entries, err := treeBuilder.TreeEntries(rootDirectoryPath)
	if err != nil {
		return "", err
	}
	return RenderTreeListing(rootName(rootDirectoryPath), entries), nil
}

// TreeEntries returns the non-excluded descendants of rootDirectoryPath in listing order.
func (treeBuilder *TreeBuilder) TreeEntries(rootDirectoryPath string) ([]types.TreeEntry, error) {
	children, err := treeBuilder.readEntries(rootDirectoryPath, "")
	if err != nil {
		return nil, err
	}
	var entries []types.TreeEntry
	treeBuilder.appendTreeEntries(&entries, rootDirectoryPath, "", children, 0)
	return entries, nil
}

func (treeBuilder *TreeBuilder) appendTreeEntries(entries *[]types.TreeEntry, directoryPath string, relativeDirectory string, children []listedEntry, depth int) {
	for index, child := range children {
		*entries = append(*entries, types.TreeEntry{
			Name:        child.name,
			Depth:       depth,
			IsDirectory: child.isDirectory,
			IsLast:      index == len(children)-1,
		})
		if !child.isDirectory {
			continue
		}
		childPath := filepath.Join(directoryPath, child.name)
		relativePath := path.Join(relativeDirectory, child.name)
		grandchildren, err := treeBuilder.readEntries(childPath, relativePath)
		if err != nil {
			treeBuilder.Logger.Warn(warningSkipSubdirMessage, zap.String("path", childPath), zap.Error(err))
			continue
		}
		treeBuilder.appendTreeEntries(entries, childPath, relativePath, grandchildren, depth+1)
	}
}

// RenderTreeListing turns entries produced by TreeEntries into the connector-glyph listing.
func RenderTreeListing(rootName string, entries []types.TreeEntry) string {
	lines := make([]string, 0, len(entries)+1)
	lines = append(lines, rootName+rootSuffix)

	// prefixes[d] is the indentation inherited by entries at depth d.
	prefixes := []string{""}
	for _, entry := range entries {
		prefixes = prefixes[:entry.Depth+1]
		prefix := prefixes[entry.Depth]
		connector := branchConnector
		childIndent := branchIndent
		if entry.IsLast {
			connector = lastBranchConnector
			childIndent = lastBranchIndent
		}
		lines = append(lines, prefix+connector+entry.Name)
		prefixes = append(prefixes, prefix+childIndent)
	}
	return strings.Join(lines, lineSeparator)
}

// CollectQualifyingPaths returns the slash-separated paths, relative to rootDirectoryPath, of
// every non-excluded file whose extension is in the filter's allow-list. Within a directory the
// qualifying files come first in sorted order, then each subdirectory is descended into in
// sorted order.
func (treeBuilder *TreeBuilder) CollectQualifyingPaths(rootDirectoryPath string) ([]string, error) {
	children, err := treeBuilder.readEntries(rootDirectoryPath, "")
	if err != nil {
		return nil, err
	}
	var qualifyingPaths []string
	treeBuilder.appendQualifyingPaths(&qualifyingPaths, rootDirectoryPath, "", children)
	return qualifyingPaths, nil
}

func (treeBuilder *TreeBuilder) appendQualifyingPaths(qualifyingPaths *[]string, directoryPath string, relativeDirectory string, children []listedEntry) {
	for _, child := range children {
		if !child.isDirectory && treeBuilder.Filter.Qualifies(child.name) {
			*qualifyingPaths = append(*qualifyingPaths, path.Join(relativeDirectory, child.name))
		}
	}
	for _, child := range children {
		if !child.isDirectory {
			continue
		}
		childPath := filepath.Join(directoryPath, child.name)
		relativePath := path.Join(relativeDirectory, child.name)
		grandchildren, err := treeBuilder.readEntries(childPath, relativePath)
		if err != nil {
			treeBuilder.Logger.Warn(warningSkipSubdirMessage, zap.String("path", childPath), zap.Error(err))
			continue
		}
		treeBuilder.appendQualifyingPaths(qualifyingPaths, childPath, relativePath, grandchildren)
	}
}

// readEntries lists directoryPath, drops excluded entries, and sorts the rest by name.
// relativeDirectory is directoryPath relative to the scan root, empty for the root itself.
// Symbolic links are reported as leaves so traversal never follows them. The output directory
// is dropped when nothing but artifacts of a previous run is left in it.
func (treeBuilder *TreeBuilder) readEntries(directoryPath string, relativeDirectory string) ([]listedEntry, error) {
	fileInfos, err := afero.ReadDir(treeBuilder.FileSystem, directoryPath)
	if err != nil {
		return nil, fmt.Errorf(errorReadDirectoryFormat, directoryPath, err)
	}
	entries := make([]listedEntry, 0, len(fileInfos))
	for _, fileInfo := range fileInfos {
		isDirectory := fileInfo.IsDir() && fileInfo.Mode()&os.ModeSymlink == 0
		relativePath := path.Join(relativeDirectory, fileInfo.Name())
		if treeBuilder.Filter.IsExcludedEntry(relativePath, isDirectory) {
			continue
		}
		if isDirectory && treeBuilder.Filter.IsOutputDirectory(relativePath) {
			outputEntries, outputErr := treeBuilder.readEntries(filepath.Join(directoryPath, fileInfo.Name()), relativePath)
			if outputErr == nil && len(outputEntries) == 0 {
				continue
			}
		}
		entries = append(entries, listedEntry{name: fileInfo.Name(), isDirectory: isDirectory})
	}
	sort.Slice(entries, func(left, right int) bool {
		return entries[left].name < entries[right].name
	})
	return entries, nil
}

func rootName(rootDirectoryPath string) string {
	return filepath.Base(filepath.Clean(rootDirectoryPath))
}
