package epubgen

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/disintegration/imaging"

	"github.com/luminpress/epubgen/internal/epub"
)

// coverJPEGQuality is the re-encode quality for downscaled JPEG covers.
const coverJPEGQuality = 90

// optimizeCover downscales raster covers wider than the configured maximum,
// preserving aspect ratio. SVG covers and images that cannot be decoded or
// re-encoded pass through unchanged with a logged warning: cover handling
// is best-effort and never fails a generation.
func (g *Generator) optimizeCover(c *Cover) *Cover {
	if c == nil {
		return nil
	}
	if g.opts.MaxCoverWidth < 0 {
		return c
	}
	if epub.MediaTypeByExtension(c.FileName) == "image/svg+xml" {
		return c
	}

	img, format, err := image.Decode(bytes.NewReader(c.Data))
	if err != nil {
		g.log.Warn("cover image not decodable, embedding as-is",
			"file", c.FileName, "error", err)
		return c
	}
	if img.Bounds().Dx() <= g.opts.MaxCoverWidth {
		return c
	}

	resized := imaging.Resize(img, g.opts.MaxCoverWidth, 0, imaging.Lanczos)

	var buf bytes.Buffer
	switch format {
	case "png":
		err = png.Encode(&buf, resized)
	default:
		err = jpeg.Encode(&buf, resized, &jpeg.Options{Quality: coverJPEGQuality})
	}
	if err != nil {
		g.log.Warn("cover image re-encode failed, embedding original",
			"file", c.FileName, "error", err)
		return c
	}

	g.log.Debug("cover image downscaled",
		"file", c.FileName,
		"width", g.opts.MaxCoverWidth,
		"bytes", buf.Len())
	return &Cover{FileName: c.FileName, Data: buf.Bytes()}
}
