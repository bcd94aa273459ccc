package commands

import (
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/goombastomp/goomba/internal/config"
)

// TreeBuilder walks a scan root using the configured filter.
// The same builder produces the folder structure listing and the qualifying file list, so both
// views of the tree always agree on exclusions and ordering.
type TreeBuilder struct {
	FileSystem afero.Fs
	Filter     config.Filter
	Logger     *zap.Logger
}

// NewTreeBuilder returns a TreeBuilder; a nil logger is replaced with a no-op logger.
func NewTreeBuilder(fileSystem afero.Fs, filter config.Filter, logger *zap.Logger) *TreeBuilder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TreeBuilder{FileSystem: fileSystem, Filter: filter, Logger: logger}
}
