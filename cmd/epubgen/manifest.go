package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/luminpress/epubgen"
)

// manifest is the TOML description of one book. Relative paths are
// resolved against the manifest file's directory.
type manifest struct {
	Title       string            `toml:"title"`
	Author      string            `toml:"author"`
	Description string            `toml:"description"`
	Language    string            `toml:"language"`
	Cover       string            `toml:"cover"`
	Chapters    []manifestChapter `toml:"chapters"`
}

// manifestChapter names one chapter and the HTML file holding its content.
type manifestChapter struct {
	ID          string `toml:"id"`
	Title       string `toml:"title"`
	Description string `toml:"description"`
	File        string `toml:"file"`
}

// loadManifest reads a TOML manifest and its referenced chapter and cover
// files into a generation request. DestinationPath is left for the caller.
func loadManifest(path string) (*epubgen.Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	baseDir := filepath.Dir(path)

	req := &epubgen.Request{
		Title:       m.Title,
		Author:      m.Author,
		Description: m.Description,
		Language:    m.Language,
	}

	if m.Cover != "" {
		coverPath := resolvePath(baseDir, m.Cover)
		coverData, err := os.ReadFile(coverPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read cover %s: %w", m.Cover, err)
		}
		req.Cover = &epubgen.Cover{
			FileName: filepath.Base(m.Cover),
			Data:     coverData,
		}
	}

	for i, ch := range m.Chapters {
		if ch.File == "" {
			return nil, fmt.Errorf("chapter %d has no file", i+1)
		}
		content, err := os.ReadFile(resolvePath(baseDir, ch.File))
		if err != nil {
			return nil, fmt.Errorf("failed to read chapter %s: %w", ch.File, err)
		}
		id := ch.ID
		if id == "" {
			id = fmt.Sprintf("chapter-%d", i+1)
		}
		req.Chapters = append(req.Chapters, epubgen.Chapter{
			ID:          id,
			Title:       ch.Title,
			Description: ch.Description,
			Content:     string(content),
		})
	}

	return req, nil
}

// resolvePath resolves p against baseDir unless p is already absolute.
func resolvePath(baseDir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(baseDir, p)
}
