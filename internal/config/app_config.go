package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/goombastomp/goomba/internal/utils"
)

// DefaultTokenizerModel is used when neither the configuration nor the flags name a model.
const DefaultTokenizerModel = "gpt-4o"

// LoadOptions controls how application configuration is discovered.
type LoadOptions struct {
	FileSystem       afero.Fs
	WorkingDirectory string
	HomeDirectory    string
	ExplicitFilePath string
}

// ApplicationConfiguration holds run defaults that command line flags may override.
type ApplicationConfiguration struct {
	IncludeCode *bool               `mapstructure:"include_code"`
	Copy        *bool               `mapstructure:"copy"`
	Export      ExportConfiguration `mapstructure:"export"`
	Tokens      TokenConfiguration  `mapstructure:"tokens"`
}

// ExportConfiguration controls the optional PDF and ZIP artifacts.
type ExportConfiguration struct {
	PDF      *bool  `mapstructure:"pdf"`
	Zip      *bool  `mapstructure:"zip"`
	FontPath string `mapstructure:"font_path"`
}

// TokenConfiguration controls token counting defaults.
type TokenConfiguration struct {
	Enabled *bool  `mapstructure:"enabled"`
	Model   string `mapstructure:"model"`
}

// LoadApplicationConfiguration loads configuration from the global file and then overlays the
// local (or explicitly named) file. Missing files are not an error; an explicitly named file
// that does not exist is.
func LoadApplicationConfiguration(options LoadOptions) (ApplicationConfiguration, error) {
	fileSystem := options.FileSystem
	if fileSystem == nil {
		fileSystem = afero.NewOsFs()
	}

	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, err := os.Getwd()
		if err != nil {
			return ApplicationConfiguration{}, fmt.Errorf("determine working directory: %w", err)
		}
		workingDirectory = currentDirectory
	}

	homeDirectory := options.HomeDirectory
	if homeDirectory == "" {
		if resolvedHome, err := os.UserHomeDir(); err == nil {
			homeDirectory = resolvedHome
		}
	}

	var merged ApplicationConfiguration

	if homeDirectory != "" {
		globalPath := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName, utils.ConfigFileName)
		globalConfig, loadErr := loadConfigurationFromPath(fileSystem, globalPath, false)
		if loadErr != nil {
			return ApplicationConfiguration{}, loadErr
		}
		merged = merged.Merge(globalConfig)
	}

	localPath, required := resolveLocalConfigPath(workingDirectory, options.ExplicitFilePath)
	localConfig, loadErr := loadConfigurationFromPath(fileSystem, localPath, required)
	if loadErr != nil {
		return ApplicationConfiguration{}, loadErr
	}
	merged = merged.Merge(localConfig)

	return merged, nil
}

func resolveLocalConfigPath(workingDirectory, explicitPath string) (string, bool) {
	if explicitPath != "" {
		if filepath.IsAbs(explicitPath) {
			return explicitPath, true
		}
		return filepath.Join(workingDirectory, explicitPath), true
	}
	return filepath.Join(workingDirectory, utils.LocalConfigFileName), false
}

func loadConfigurationFromPath(fileSystem afero.Fs, path string, required bool) (ApplicationConfiguration, error) {
	info, statErr := fileSystem.Stat(path)
	if statErr != nil {
		if os.IsNotExist(statErr) && !required {
			return ApplicationConfiguration{}, nil
		}
		return ApplicationConfiguration{}, fmt.Errorf("stat configuration %s: %w", path, statErr)
	}
	if info.IsDir() {
		return ApplicationConfiguration{}, fmt.Errorf("configuration path %s is a directory", path)
	}

	reader := viper.New()
	reader.SetFs(fileSystem)
	reader.SetConfigFile(path)
	reader.SetConfigType("yaml")
	if readErr := reader.ReadInConfig(); readErr != nil {
		return ApplicationConfiguration{}, fmt.Errorf("read configuration from %s: %w", path, readErr)
	}
	var config ApplicationConfiguration
	if decodeErr := reader.Unmarshal(&config); decodeErr != nil {
		return ApplicationConfiguration{}, fmt.Errorf("decode configuration from %s: %w", path, decodeErr)
	}
	return config, nil
}

// Merge overlays override onto the receiver returning the combined configuration.
func (config ApplicationConfiguration) Merge(override ApplicationConfiguration) ApplicationConfiguration {
	result := config
	if override.IncludeCode != nil {
		result.IncludeCode = cloneBool(override.IncludeCode)
	}
	if override.Copy != nil {
		result.Copy = cloneBool(override.Copy)
	}
	result.Export = result.Export.merge(override.Export)
	result.Tokens = result.Tokens.merge(override.Tokens)
	return result
}

func (config ExportConfiguration) merge(override ExportConfiguration) ExportConfiguration {
	result := config
	if override.PDF != nil {
		result.PDF = cloneBool(override.PDF)
	}
	if override.Zip != nil {
		result.Zip = cloneBool(override.Zip)
	}
	if override.FontPath != "" {
		result.FontPath = override.FontPath
	}
	return result
}

func (config TokenConfiguration) merge(override TokenConfiguration) TokenConfiguration {
	result := config
	if override.Enabled != nil {
		result.Enabled = cloneBool(override.Enabled)
	}
	if override.Model != "" {
		result.Model = override.Model
	}
	return result
}

// BoolValue dereferences value, returning fallback when it is unset.
func BoolValue(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}
	return *value
}

func cloneBool(value *bool) *bool {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}
