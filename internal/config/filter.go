// Package config holds the scan filter and the application configuration loaded from files.
package config

import (
	"path"
	"sort"
	"strings"
)

const (
	hiddenPrefix         = "."
	appleDoublePrefix    = "._"
	nodeModulesDirectory = "node_modules"
	gitDirectory         = ".git"
)

var (
	// BaselineExtensions are always collected.
	BaselineExtensions = []string{".txt", ".md", ".log", ".csv", ".json", ".xml", ".yaml", ".yml", ".ini"}
	// CodeExtensions are collected only when code inclusion is requested.
	CodeExtensions = []string{".py", ".html", ".js", ".css"}

	deniedNames = map[string]struct{}{
		nodeModulesDirectory: {},
		gitDirectory:         {},
	}
)

// Filter decides which entries are listed and which files have their content collected.
// A Filter is immutable once constructed and safe to share.
type Filter struct {
	extensions          []string
	outputDirectoryName string
	outputArtifactNames map[string]struct{}
}

// NewFilter builds the filter for one run. includeCode adds CodeExtensions to the baseline set.
// outputDirectoryName, when not empty, names the directory directly under the scan root that
// receives the run's artifacts; files in it called one of outputArtifactNames are excluded.
func NewFilter(includeCode bool, outputDirectoryName string, outputArtifactNames ...string) Filter {
	extensionSet := make(map[string]struct{}, len(BaselineExtensions)+len(CodeExtensions))
	for _, extension := range BaselineExtensions {
		extensionSet[strings.ToLower(extension)] = struct{}{}
	}
	if includeCode {
		for _, extension := range CodeExtensions {
			extensionSet[strings.ToLower(extension)] = struct{}{}
		}
	}
	extensions := make([]string, 0, len(extensionSet))
	for extension := range extensionSet {
		extensions = append(extensions, extension)
	}
	sort.Strings(extensions)

	artifactNames := make(map[string]struct{}, len(outputArtifactNames))
	for _, artifactName := range outputArtifactNames {
		artifactNames[artifactName] = struct{}{}
	}
	return Filter{extensions: extensions, outputDirectoryName: outputDirectoryName, outputArtifactNames: artifactNames}
}

// Extensions returns a sorted copy of the active extension set.
func (filter Filter) Extensions() []string {
	return append([]string(nil), filter.extensions...)
}

// IsExcludedName reports whether a single path segment is excluded from listing and collection.
func (filter Filter) IsExcludedName(name string) bool {
	if strings.HasPrefix(name, hiddenPrefix) || strings.HasPrefix(name, appleDoublePrefix) {
		return true
	}
	_, denied := deniedNames[name]
	return denied
}

// IsExcludedEntry reports whether the entry at relativePath, slash separated and relative to the
// scan root, is excluded. Artifacts of a previous run inside the output directory are excluded;
// anything else stored there is not.
func (filter Filter) IsExcludedEntry(relativePath string, isDirectory bool) bool {
	name := path.Base(relativePath)
	if filter.IsExcludedName(name) {
		return true
	}
	if isDirectory || filter.outputDirectoryName == "" || path.Dir(relativePath) != filter.outputDirectoryName {
		return false
	}
	_, isArtifact := filter.outputArtifactNames[name]
	return isArtifact
}

// IsOutputDirectory reports whether relativePath is the output directory of the run.
func (filter Filter) IsOutputDirectory(relativePath string) bool {
	return filter.outputDirectoryName != "" && relativePath == filter.outputDirectoryName
}

// Qualifies reports whether the file called name has its content collected.
// The comparison is case-insensitive.
func (filter Filter) Qualifies(name string) bool {
	lowerName := strings.ToLower(name)
	for _, extension := range filter.extensions {
		if strings.HasSuffix(lowerName, extension) {
			return true
		}
	}
	return false
}
