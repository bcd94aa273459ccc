// Package export converts the assembled Markdown into the optional PDF and ZIP artifacts.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/go-pdf/fpdf"
	"github.com/spf13/afero"
	"golang.org/x/image/font/gofont/gomono"
)

const (
	// WrapColumn is the number of characters placed on one PDF row before a hard wrap.
	WrapColumn = 95

	pageOrientation = "P"
	pageUnit        = "mm"
	pageSize        = "A4"
	pageMargin      = 10.0
	fontFamily      = "GoombaMono"
	fontStyle       = ""
	fontSize        = 8.0
	lineHeight      = 4.0
	fullWidth       = 0.0
	noBorder        = ""
	nextLine        = 1
	leftAlign       = "L"

	// maxMappedRune is the last code point fpdf can map into an embedded TrueType font.
	maxMappedRune = 0xFFFF

	errorFontReadFormat    = "read font %s: %w"
	errorRenderPDFFormat   = "render pdf: %w"
	errorCreatePDFFormat   = "create pdf %s: %w"
	errorClosePDFFormat    = "close pdf %s: %w"
	errorFontMissingFormat = "%w: %s"
)

// ErrFontMissing reports a configured font file that does not exist.
var ErrFontMissing = errors.New("pdf font resource missing")

// FontSource supplies the TrueType font embedded into the PDF.
// The default Go Mono font covers Latin, Greek, Cyrillic, and box drawing but has no CJK glyphs;
// such text renders as blank cells unless Path names a font that covers it.
type FontSource struct {
	// Path names a font file; an empty path selects the embedded Go Mono font.
	Path string
}

// Load returns the font bytes. A configured path that does not exist yields ErrFontMissing.
func (source FontSource) Load(fileSystem afero.Fs) ([]byte, error) {
	if source.Path == "" {
		return gomono.TTF, nil
	}
	fontBytes, err := afero.ReadFile(fileSystem, source.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf(errorFontMissingFormat, ErrFontMissing, source.Path)
		}
		return nil, fmt.Errorf(errorFontReadFormat, source.Path, err)
	}
	return fontBytes, nil
}

// PDFRenderer paginates text into a PDF without interpreting Markdown.
type PDFRenderer struct {
	fontBytes []byte
}

// NewPDFRenderer resolves the font up front so a missing resource fails before any output exists.
func NewPDFRenderer(fileSystem afero.Fs, source FontSource) (*PDFRenderer, error) {
	fontBytes, err := source.Load(fileSystem)
	if err != nil {
		return nil, err
	}
	return &PDFRenderer{fontBytes: fontBytes}, nil
}

// Render writes markdown as a paginated transcript to writer.
func (renderer *PDFRenderer) Render(markdown string, writer io.Writer) error {
	document := fpdf.New(pageOrientation, pageUnit, pageSize, "")
	document.SetMargins(pageMargin, pageMargin, pageMargin)
	document.SetAutoPageBreak(true, pageMargin)
	document.AddUTF8FontFromBytes(fontFamily, fontStyle, renderer.fontBytes)
	document.SetFont(fontFamily, fontStyle, fontSize)
	document.AddPage()

	for _, row := range WrapLines(markdown, WrapColumn) {
		document.CellFormat(fullWidth, lineHeight, ReplaceUnmappedRunes(row), noBorder, nextLine, leftAlign, false, 0, "")
	}

	if err := document.Output(writer); err != nil {
		return fmt.Errorf(errorRenderPDFFormat, err)
	}
	return nil
}

// WritePDF renders markdown into a new file at outputPath.
func (renderer *PDFRenderer) WritePDF(fileSystem afero.Fs, markdown string, outputPath string) (err error) {
	file, createErr := fileSystem.Create(outputPath)
	if createErr != nil {
		return fmt.Errorf(errorCreatePDFFormat, outputPath, createErr)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf(errorClosePDFFormat, outputPath, closeErr)
		}
	}()
	return renderer.Render(markdown, file)
}

// WrapLines splits text into lines and hard-wraps every line longer than column characters.
// Wrapping slices at the column regardless of word boundaries.
func WrapLines(text string, column int) []string {
	var rows []string
	for _, line := range splitLines(text) {
		runes := []rune(line)
		for len(runes) > column {
			rows = append(rows, string(runes[:column]))
			runes = runes[column:]
		}
		rows = append(rows, string(runes))
	}
	return rows
}

// ReplaceUnmappedRunes substitutes U+FFFD for every rune outside the Basic Multilingual Plane,
// such as emoji, which the PDF font map cannot address.
func ReplaceUnmappedRunes(row string) string {
	return strings.Map(func(character rune) rune {
		if character > maxMappedRune {
			return utf8.RuneError
		}
		return character
	}, row)
}

// splitLines breaks text on line endings; a trailing line ending does not add an empty line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.TrimSuffix(normalized, "\n")
	return strings.Split(normalized, "\n")
}
