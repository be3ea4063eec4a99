package epubgen

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/luminpress/epubgen/internal/epub"
	"github.com/luminpress/epubgen/internal/normalize"
	"github.com/luminpress/epubgen/internal/ocf"
)

// DefaultMaxCoverWidth is the cover downscaling threshold used when
// Options.MaxCoverWidth is zero.
const DefaultMaxCoverWidth = 1600

// DefaultLanguage is the dc:language value used when neither the request
// nor the options specify one.
const DefaultLanguage = "en"

// Options configures a Generator. The zero value is usable.
type Options struct {
	// Language is the default dc:language tag for requests that do not set
	// one. Empty means DefaultLanguage.
	Language string

	// MaxCoverWidth is the pixel width above which JPEG and PNG covers are
	// downscaled before embedding. Zero means DefaultMaxCoverWidth; a
	// negative value disables cover optimization.
	MaxCoverWidth int

	// Logger receives warnings for non-fatal degradation, such as a cover
	// image that cannot be decoded. Nil means slog.Default().
	Logger *slog.Logger
}

// Generator builds EPUB3 packages. It is stateless and safe for concurrent
// use; each Generate call is independent provided destinations differ.
type Generator struct {
	opts Options
	log  *slog.Logger
}

// NewGenerator creates a Generator with the given options.
func NewGenerator(opts Options) *Generator {
	if opts.Language == "" {
		opts.Language = DefaultLanguage
	}
	if opts.MaxCoverWidth == 0 {
		opts.MaxCoverWidth = DefaultMaxCoverWidth
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{opts: opts, log: logger}
}

// Generate validates the request, normalizes every chapter's content,
// assembles the package documents, and writes the OCF archive to the
// request's destination path, returning that path on success.
//
// The archive is written to a temporary file in the destination directory
// and renamed into place, so a failed generation never leaves a partial
// file at the destination.
func (g *Generator) Generate(req Request) (string, error) {
	if err := req.validate(); err != nil {
		return "", err
	}

	lang := req.Language
	if lang == "" {
		lang = g.opts.Language
	}

	book := &epub.Book{
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		Language:    lang,
		Modified:    time.Now(),
		Chapters:    make([]epub.Chapter, len(req.Chapters)),
	}
	for i, ch := range req.Chapters {
		book.Chapters[i] = epub.Chapter{
			Title:       ch.Title,
			Description: ch.Description,
			Content:     normalize.Fragment(ch.Content),
		}
	}
	if cover := g.optimizeCover(req.Cover); cover != nil {
		book.Cover = &epub.CoverImage{FileName: cover.FileName, Data: cover.Data}
	}

	pkg := epub.Assemble(book)

	dir := filepath.Dir(req.DestinationPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create destination directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".epubgen-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpPath := tmp.Name()

	if err := ocf.Write(tmp, pkg); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to write archive: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to flush archive: %w", err)
	}
	if err := os.Rename(tmpPath, req.DestinationPath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to move archive into place: %w", err)
	}

	return req.DestinationPath, nil
}

// Generate builds an EPUB with default options. See Generator.Generate.
func Generate(req Request) (string, error) {
	return NewGenerator(Options{}).Generate(req)
}
