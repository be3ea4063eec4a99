// Package ocf serializes an assembled document set into an EPUB Open
// Container Format archive.
//
// OCF is a zip file with one hard structural rule: the first entry must be
// named "mimetype", stored without compression, containing exactly
// "application/epub+zip". Tools identify an EPUB by inspecting only the
// first bytes of the file, so strict readers reject archives that deviate.
// Every other entry is deflated.
package ocf

import (
	"archive/zip"
	"fmt"
	"io"

	"github.com/luminpress/epubgen/internal/epub"
)

// Mimetype is the exact content of the mandatory first archive entry.
const Mimetype = "application/epub+zip"

// Write serializes pkg to w as an OCF container. The mimetype entry is
// written first and stored; the package resources follow in their assembly
// order, deflated. The archive is only complete once the central directory
// has been flushed, so errors from Close are significant and returned.
func Write(w io.Writer, pkg *epub.Package) error {
	zw := zip.NewWriter(w)

	mt, err := zw.CreateHeader(&zip.FileHeader{
		Name:   "mimetype",
		Method: zip.Store,
	})
	if err != nil {
		return fmt.Errorf("failed to create mimetype entry: %w", err)
	}
	if _, err := mt.Write([]byte(Mimetype)); err != nil {
		return fmt.Errorf("failed to write mimetype entry: %w", err)
	}

	for _, res := range pkg.Resources {
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:   res.Path,
			Method: zip.Deflate,
		})
		if err != nil {
			return fmt.Errorf("failed to create entry %s: %w", res.Path, err)
		}
		if _, err := fw.Write(res.Data); err != nil {
			return fmt.Errorf("failed to write entry %s: %w", res.Path, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize archive: %w", err)
	}
	return nil
}
