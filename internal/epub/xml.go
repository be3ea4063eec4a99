package epub

import "strings"

// xmlDeclaration opens every generated XML document.
const xmlDeclaration = "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n"

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeXML escapes a caller-supplied string for use in XML text nodes and
// attribute values. Every metadata field placed into a generated document
// goes through here; raw chapter markup does not.
func EscapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
