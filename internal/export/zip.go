package export

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/klauspost/compress/zip"
	"github.com/spf13/afero"
)

const (
	errorCreateZipFormat = "create zip %s: %w"
	errorAddZipFormat    = "add %s to zip: %w"
	errorCloseZipFormat  = "close zip %s: %w"
)

// WriteZip bundles sourcePaths into a deflate-compressed archive at outputPath.
// Entries are stored under their base names in the order given.
func WriteZip(fileSystem afero.Fs, sourcePaths []string, outputPath string) (err error) {
	archiveFile, createErr := fileSystem.Create(outputPath)
	if createErr != nil {
		return fmt.Errorf(errorCreateZipFormat, outputPath, createErr)
	}
	defer func() {
		if closeErr := archiveFile.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf(errorCloseZipFormat, outputPath, closeErr)
		}
	}()

	archiveWriter := zip.NewWriter(archiveFile)
	for _, sourcePath := range sourcePaths {
		if addErr := addZipEntry(fileSystem, archiveWriter, sourcePath); addErr != nil {
			_ = archiveWriter.Close()
			return fmt.Errorf(errorAddZipFormat, sourcePath, addErr)
		}
	}
	if closeErr := archiveWriter.Close(); closeErr != nil {
		return fmt.Errorf(errorCloseZipFormat, outputPath, closeErr)
	}
	return nil
}

func addZipEntry(fileSystem afero.Fs, archiveWriter *zip.Writer, sourcePath string) error {
	sourceFile, err := fileSystem.Open(sourcePath)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	info, err := sourceFile.Stat()
	if err != nil {
		return err
	}
	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	header.Name = filepath.Base(sourcePath)
	header.Method = zip.Deflate

	entryWriter, err := archiveWriter.CreateHeader(header)
	if err != nil {
		return err
	}
	_, err = io.Copy(entryWriter, sourceFile)
	return err
}
