// Package epub builds the internal documents of an EPUB3 package: the OCF
// container descriptor, the OPF package document, the EPUB3 navigation
// document, the EPUB2 NCX fallback, the stylesheet, and one XHTML content
// document per chapter.
//
// The package produces an ordered path→bytes mapping; the ocf package
// serializes it into the final archive. All caller-supplied metadata is
// XML-escaped during assembly. Chapter content is the one exception: it is
// inserted verbatim and must already be well-formed XHTML (see the
// normalize package).
package epub

import "time"

// Standard internal paths of the generated package. Chapter documents live
// next to the OPF as chapter-<n>.xhtml, 1-indexed in spine order.
const (
	ContainerPath = "META-INF/container.xml"
	OPFPath       = "OEBPS/content.opf"
	NavPath       = "OEBPS/nav.xhtml"
	NCXPath       = "OEBPS/toc.ncx"
	StylePath     = "OEBPS/style.css"
	ImageDir      = "OEBPS/images"
)

// Book describes one package to assemble. Chapter content must already be
// XML-well-formed; everything else is escaped during assembly.
type Book struct {
	Title       string
	Author      string
	Description string

	// Language is a BCP 47 tag for dc:language ("en" when empty).
	Language string

	// Identifier is the unique book identifier (urn:uuid:...). A fresh one
	// is generated when empty; stability across rebuilds is not required.
	Identifier string

	// Modified is the dcterms:modified timestamp, truncated to seconds in
	// UTC. Zero means time.Now().
	Modified time.Time

	// Cover is the optional cover image, embedded under OEBPS/images/.
	Cover *CoverImage

	Chapters []Chapter
}

// Chapter is one spine entry. Content is a normalized XHTML fragment.
type Chapter struct {
	Title       string
	Description string
	Content     string
}

// CoverImage holds the cover bytes and the original file name, whose
// extension determines the manifest media type.
type CoverImage struct {
	FileName string
	Data     []byte
}

// Resource is a single archive entry: ZIP-internal path plus content.
type Resource struct {
	Path string
	Data []byte
}

// Package is the assembled document set in write order. The mimetype entry
// is not part of the set; the archive writer owns it.
type Package struct {
	Resources []Resource
}

func (p *Package) add(path string, data []byte) {
	p.Resources = append(p.Resources, Resource{Path: path, Data: data})
}
