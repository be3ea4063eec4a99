package epub

import (
	"fmt"
	"strings"
)

// ChapterPath returns the ZIP-internal path of the n-th chapter document
// (1-indexed).
func ChapterPath(n int) string {
	return fmt.Sprintf("OEBPS/chapter-%d.xhtml", n)
}

// BuildChapter renders a complete XHTML content document for the n-th
// chapter (1-indexed). The heading is "Chapter <n>: <title>", followed by
// an optional description subheading and the chapter's normalized content.
// Content is embedded verbatim; it must already be well-formed XHTML.
func BuildChapter(book *Book, n int) []byte {
	ch := book.Chapters[n-1]
	lang := book.Language
	if lang == "" {
		lang = "en"
	}
	heading := fmt.Sprintf("Chapter %d: %s", n, ch.Title)

	var b strings.Builder
	b.WriteString(xmlDeclaration)
	b.WriteString("<!DOCTYPE html>\n")
	fmt.Fprintf(&b, "<html xmlns=\"http://www.w3.org/1999/xhtml\" xml:lang=\"%s\" lang=\"%s\">\n",
		EscapeXML(lang), EscapeXML(lang))
	b.WriteString("<head>\n")
	fmt.Fprintf(&b, "  <title>%s</title>\n", EscapeXML(heading))
	b.WriteString("  <link rel=\"stylesheet\" type=\"text/css\" href=\"style.css\"/>\n")
	b.WriteString("</head>\n<body>\n")
	fmt.Fprintf(&b, "  <h1>%s</h1>\n", EscapeXML(heading))
	if ch.Description != "" {
		fmt.Fprintf(&b, "  <h2>%s</h2>\n", EscapeXML(ch.Description))
	}
	b.WriteString("  <div class=\"chapter-body\">\n")
	if ch.Content != "" {
		b.WriteString(ch.Content)
		b.WriteString("\n")
	}
	b.WriteString("  </div>\n")
	b.WriteString("</body>\n</html>\n")
	return []byte(b.String())
}
