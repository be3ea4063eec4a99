package epub

import (
	"fmt"
	"path"
	"strings"
	"time"
)

// BuildOPF renders the OPF package document: Dublin Core metadata, a
// manifest entry per internal resource, and the spine in chapter input
// order. The NCX is referenced from the spine's toc attribute for EPUB2
// readers.
func BuildOPF(book *Book) []byte {
	var b strings.Builder

	modified := book.Modified
	if modified.IsZero() {
		modified = time.Now()
	}
	lang := book.Language
	if lang == "" {
		lang = "en"
	}

	b.WriteString(xmlDeclaration)
	b.WriteString(`<package xmlns="http://www.idpf.org/2007/opf" version="3.0" unique-identifier="book-id">` + "\n")

	b.WriteString("  <metadata xmlns:dc=\"http://purl.org/dc/elements/1.1/\">\n")
	fmt.Fprintf(&b, "    <dc:identifier id=\"book-id\">%s</dc:identifier>\n", EscapeXML(book.Identifier))
	fmt.Fprintf(&b, "    <dc:title>%s</dc:title>\n", EscapeXML(book.Title))
	fmt.Fprintf(&b, "    <dc:creator>%s</dc:creator>\n", EscapeXML(book.Author))
	if book.Description != "" {
		fmt.Fprintf(&b, "    <dc:description>%s</dc:description>\n", EscapeXML(book.Description))
	}
	fmt.Fprintf(&b, "    <dc:language>%s</dc:language>\n", EscapeXML(lang))
	fmt.Fprintf(&b, "    <meta property=\"dcterms:modified\">%s</meta>\n",
		modified.UTC().Truncate(time.Second).Format("2006-01-02T15:04:05Z"))
	b.WriteString("  </metadata>\n")

	b.WriteString("  <manifest>\n")
	b.WriteString("    <item id=\"nav\" href=\"nav.xhtml\" media-type=\"application/xhtml+xml\" properties=\"nav\"/>\n")
	b.WriteString("    <item id=\"ncx\" href=\"toc.ncx\" media-type=\"application/x-dtbncx+xml\"/>\n")
	b.WriteString("    <item id=\"css\" href=\"style.css\" media-type=\"text/css\"/>\n")
	if book.Cover != nil {
		fmt.Fprintf(&b, "    <item id=\"cover-image\" href=\"images/%s\" media-type=\"%s\" properties=\"cover-image\"/>\n",
			EscapeXML(path.Base(book.Cover.FileName)), MediaTypeByExtension(book.Cover.FileName))
	}
	for i := range book.Chapters {
		fmt.Fprintf(&b, "    <item id=\"chapter-%d\" href=\"chapter-%d.xhtml\" media-type=\"application/xhtml+xml\"/>\n", i+1, i+1)
	}
	b.WriteString("  </manifest>\n")

	b.WriteString("  <spine toc=\"ncx\">\n")
	for i := range book.Chapters {
		fmt.Fprintf(&b, "    <itemref idref=\"chapter-%d\"/>\n", i+1)
	}
	b.WriteString("  </spine>\n")

	b.WriteString("</package>\n")
	return []byte(b.String())
}

// MediaTypeByExtension maps a cover file extension to its manifest media
// type. Unrecognized extensions fall back to image/jpeg rather than
// failing; producing some valid package always wins.
func MediaTypeByExtension(fileName string) string {
	switch strings.ToLower(path.Ext(fileName)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".svg":
		return "image/svg+xml"
	default:
		return "image/jpeg"
	}
}
