package epub

import (
	"fmt"
	"strings"
)

// BuildNCX renders the EPUB2-compatible NCX navigation document. Modern
// readers use nav.xhtml; the NCX is kept for backward compatibility and
// mirrors the same chapter order, with playOrder counting from 1.
func BuildNCX(book *Book) []byte {
	var b strings.Builder

	b.WriteString(xmlDeclaration)
	b.WriteString(`<ncx xmlns="http://www.daisy.org/z3986/2005/ncx/" version="2005-1">` + "\n")
	b.WriteString("  <head>\n")
	fmt.Fprintf(&b, "    <meta name=\"dtb:uid\" content=\"%s\"/>\n", EscapeXML(book.Identifier))
	b.WriteString("    <meta name=\"dtb:depth\" content=\"1\"/>\n")
	b.WriteString("    <meta name=\"dtb:totalPageCount\" content=\"0\"/>\n")
	b.WriteString("    <meta name=\"dtb:maxPageNumber\" content=\"0\"/>\n")
	b.WriteString("  </head>\n")
	fmt.Fprintf(&b, "  <docTitle><text>%s</text></docTitle>\n", EscapeXML(book.Title))
	b.WriteString("  <navMap>\n")
	for i, ch := range book.Chapters {
		fmt.Fprintf(&b, "    <navPoint id=\"navpoint-%d\" playOrder=\"%d\">\n", i+1, i+1)
		fmt.Fprintf(&b, "      <navLabel><text>%s</text></navLabel>\n", EscapeXML(ch.Title))
		fmt.Fprintf(&b, "      <content src=\"chapter-%d.xhtml\"/>\n", i+1)
		b.WriteString("    </navPoint>\n")
	}
	b.WriteString("  </navMap>\n")
	b.WriteString("</ncx>\n")
	return []byte(b.String())
}
