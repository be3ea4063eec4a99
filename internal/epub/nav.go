package epub

import (
	"fmt"
	"strings"
)

// BuildNav renders the EPUB3 navigation document: one ordered-list link per
// chapter, labeled with the chapter title, in spine order.
func BuildNav(book *Book) []byte {
	var b strings.Builder

	b.WriteString(xmlDeclaration)
	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString(`<html xmlns="http://www.w3.org/1999/xhtml" xmlns:epub="http://www.idpf.org/2007/ops">` + "\n")
	b.WriteString("<head>\n")
	fmt.Fprintf(&b, "  <title>%s</title>\n", EscapeXML(book.Title))
	b.WriteString("  <link rel=\"stylesheet\" type=\"text/css\" href=\"style.css\"/>\n")
	b.WriteString("</head>\n<body>\n")
	b.WriteString("  <nav epub:type=\"toc\" id=\"toc\">\n")
	b.WriteString("    <h1>Table of Contents</h1>\n")
	b.WriteString("    <ol>\n")
	for i, ch := range book.Chapters {
		fmt.Fprintf(&b, "      <li><a href=\"chapter-%d.xhtml\">%s</a></li>\n", i+1, EscapeXML(ch.Title))
	}
	b.WriteString("    </ol>\n")
	b.WriteString("  </nav>\n")
	b.WriteString("</body>\n</html>\n")
	return []byte(b.String())
}
