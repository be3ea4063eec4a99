// Package normalize repairs untrusted HTML fragments into XML-well-formed
// XHTML suitable for embedding in EPUB content documents.
//
// Rich-text editors routinely emit markup that is valid HTML5 but invalid
// XML: unclosed void elements, stray closing tags, script blocks, media
// elements wrapped in redundant paragraphs. E-readers parse EPUB content
// with strict XML parsers, so every fragment must be repaired before it is
// placed inside a content document. Normalization is best-effort by
// contract: it degrades content rather than failing.
package normalize

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// mediaAtoms are the elements that editors commonly wrap in a redundant
// paragraph or div. A wrapper whose only element child is one of these is
// removed, keeping the media element.
var mediaAtoms = map[atom.Atom]bool{
	atom.Img:   true,
	atom.Video: true,
	atom.Audio: true,
}

// wrapperAtoms are the paragraph-like containers considered for unwrapping.
var wrapperAtoms = map[atom.Atom]bool{
	atom.P:   true,
	atom.Div: true,
}

// rawTextSelector matches the HTML raw-text elements: html.Render writes
// their text children literally, without escaping, so any one of them left
// in a fragment can break the surrounding document's XML parse. They have
// no place in EPUB content and are removed with their content.
const rawTextSelector = "script, style, iframe, xmp, plaintext, noembed, noframes, noscript"

// Fragment converts a raw, possibly malformed HTML fragment into an
// XML-well-formed XHTML fragment. The result is safe to embed inside any
// XML element: void elements are self-closed, text and attribute values are
// escaped, and raw-text containers such as script, style and iframe are
// gone.
//
// Fragment never fails; input that cannot be parsed at all yields an empty
// string.
func Fragment(raw string) string {
	raw = strings.TrimSpace(stripBOM(raw))
	if raw == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		// html.Parse recovers from essentially any markup; a failure here
		// means the reader itself broke, so there is nothing to salvage.
		return ""
	}

	// Drop executable blocks and every other raw-text container wholesale,
	// tags and content.
	doc.Find(rawTextSelector).Remove()

	body := doc.Find("body")
	if body.Length() == 0 {
		return ""
	}
	bodyNode := body.Get(0)

	stripComments(bodyNode)
	sanitizeAttributes(bodyNode)
	unwrapMediaWrappers(bodyNode)

	// Stray </p> tags become empty <p></p> elements during HTML parsing,
	// so this also collapses the duplicated-closing-tag editor artifact.
	removeEmptyParagraphs(body)

	out, err := body.Html()
	if err != nil {
		return ""
	}
	return normalizeLines(stripInvalidRunes(out))
}

// stripBOM removes a leading UTF-8 byte-order mark, if present.
func stripBOM(s string) string {
	return strings.TrimPrefix(s, "\uFEFF")
}

// stripComments removes all comment nodes under n. Editor-generated
// comments (e.g. conditional comments) may contain "--", which is invalid
// inside an XML comment.
func stripComments(n *html.Node) {
	var next *html.Node
	for c := n.FirstChild; c != nil; c = next {
		next = c.NextSibling
		if c.Type == html.CommentNode {
			n.RemoveChild(c)
			continue
		}
		stripComments(c)
	}
}

// sanitizeAttributes removes event handler attributes (on*), unsafe URI
// values, duplicate attributes, and attributes whose names are not valid
// XML names from every element under n. The HTML parser tolerates all of
// these; a strict XML parser rejects them.
func sanitizeAttributes(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			cleaned := c.Attr[:0]
			seen := map[string]bool{}
			for _, a := range c.Attr {
				key := strings.ToLower(a.Key)
				if seen[key] || !isXMLName(a.Key) {
					continue
				}
				if strings.HasPrefix(key, "on") {
					continue
				}
				if (key == "href" || key == "src") && hasUnsafeScheme(a.Val) {
					continue
				}
				seen[key] = true
				cleaned = append(cleaned, a)
			}
			c.Attr = cleaned
		}
		sanitizeAttributes(c)
	}
}

// isXMLName reports whether s is usable as an XML attribute name. The check
// is intentionally conservative: ASCII letters, digits, '-', '_', '.' and
// ':' only, starting with a letter or underscore.
func isXMLName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case i > 0 && (r >= '0' && r <= '9' || r == '-' || r == '.' || r == ':'):
		default:
			return false
		}
	}
	return true
}

// hasUnsafeScheme reports whether a URI value uses a scheme that must not
// appear in EPUB content (javascript:, vbscript:, non-image data:).
func hasUnsafeScheme(val string) bool {
	v := strings.ToLower(strings.TrimSpace(val))
	switch {
	case strings.HasPrefix(v, "javascript:"), strings.HasPrefix(v, "vbscript:"):
		return true
	case strings.HasPrefix(v, "data:"):
		return !strings.HasPrefix(v, "data:image/")
	}
	return false
}

// unwrapMediaWrappers removes paragraph-like containers that solely wrap a
// single media element, keeping the media element in place. The pass
// repeats until stable so that nested wrapping (<p><p><img/></p></p> after
// parser recovery, or <div><p><img/></p></div>) is fully flattened.
func unwrapMediaWrappers(root *html.Node) {
	for unwrapOnce(root) {
	}
}

// unwrapOnce performs a single unwrap pass and reports whether any wrapper
// was removed.
func unwrapOnce(n *html.Node) bool {
	changed := false
	var next *html.Node
	for c := n.FirstChild; c != nil; c = next {
		next = c.NextSibling
		if media := soleMediaChild(c); media != nil {
			c.RemoveChild(media)
			n.InsertBefore(media, c)
			n.RemoveChild(c)
			changed = true
			continue
		}
		if unwrapOnce(c) {
			changed = true
		}
	}
	return changed
}

// soleMediaChild returns the single media element directly wrapped by n,
// or nil when n is not a wrapper: n must be a <p> or <div> whose children
// are exactly one media element plus optional whitespace text.
func soleMediaChild(n *html.Node) *html.Node {
	if n.Type != html.ElementNode || !wrapperAtoms[n.DataAtom] {
		return nil
	}
	var media *html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch {
		case c.Type == html.TextNode && strings.TrimSpace(c.Data) == "":
			// whitespace padding around the media element
		case c.Type == html.ElementNode && mediaAtoms[c.DataAtom] && media == nil:
			media = c
		default:
			return nil
		}
	}
	return media
}

// removeEmptyParagraphs deletes <p> elements with no element children and
// only whitespace text content.
func removeEmptyParagraphs(body *goquery.Selection) {
	body.Find("p").Each(func(_ int, s *goquery.Selection) {
		if s.Children().Length() == 0 && strings.TrimSpace(s.Text()) == "" {
			s.Remove()
		}
	})
}

// stripInvalidRunes drops characters that are not allowed anywhere in an
// XML 1.0 document: control characters other than tab, LF and CR, plus the
// two permanently-unassigned noncharacters. The HTML parser lets these
// through in text and attribute values.
func stripInvalidRunes(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			return r
		case r < 0x20, r == 0xFFFE, r == 0xFFFF:
			return -1
		}
		return r
	}, s)
}

// normalizeLines converts CRLF/CR line endings to LF and trims trailing
// whitespace from each line and from the fragment as a whole.
func normalizeLines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
