package normalize

import (
	"encoding/xml"
	"io"
	"strings"
	"testing"
)

// assertWellFormed wraps fragment in a root element and runs it through a
// strict XML parser.
func assertWellFormed(t *testing.T, fragment string) {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader("<root>" + fragment + "</root>"))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			return
		}
		if err != nil {
			t.Fatalf("fragment is not well-formed XML: %v\nfragment: %s", err, fragment)
		}
	}
}

func TestFragment_ScriptAndStyleRemoved(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"script block", `<script>alert(1)</script><p>ok</p>`},
		{"style block", `<style>p { color: red }</style><p>ok</p>`},
		{"multiline script", "<p>before</p><script>\nvar x = 1;\nalert(x);\n</script><p>after</p>"},
		{"uppercase tags", `<SCRIPT>alert(1)</SCRIPT><p>ok</p>`},
		{"script inside content", `<div><p>text</p><script src="evil.js"></script></div>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fragment(tt.input)
			if strings.Contains(got, "<script") || strings.Contains(got, "<style") {
				t.Fatalf("Fragment() = %q, script/style tag survived", got)
			}
			if strings.Contains(got, "alert") || strings.Contains(got, "color: red") {
				t.Fatalf("Fragment() = %q, script/style content survived", got)
			}
			assertWellFormed(t, got)
		})
	}
}

// Raw-text elements are serialized with their text children unescaped, so
// leaving any of them in a fragment breaks the strict XML parse.
func TestFragment_RemovesRawTextElements(t *testing.T) {
	tests := []struct {
		name  string
		input string
		tag   string
	}{
		{"iframe", `<p>a</p><iframe src="x">fallback & text</iframe><p>b</p>`, "<iframe"},
		{"xmp", `<xmp>1 < 2 & 3</xmp><p>ok</p>`, "<xmp"},
		{"plaintext", `<p>a</p><plaintext>raw & <stuff`, "<plaintext"},
		{"noscript", `<noscript>enable & scripts</noscript><p>ok</p>`, "<noscript"},
		{"noembed", `<noembed>fallback & text</noembed><p>ok</p>`, "<noembed"},
		{"noframes", `<noframes>frames & stuff</noframes><p>ok</p>`, "<noframes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fragment(tt.input)
			if strings.Contains(got, tt.tag) {
				t.Fatalf("Fragment(%q) = %q, %s survived", tt.input, got, tt.tag)
			}
			assertWellFormed(t, got)
		})
	}
}

func TestFragment_VoidElementsSelfClosed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare br", `<p>a<br>b</p>`, `<p>a<br/>b</p>`},
		{"bare hr", `before<hr>after`, `before<hr/>after`},
		{"img with attrs", `<p>Hello<img src="a.jpg" alt="x">World</p>`, `<p>Hello<img src="a.jpg" alt="x"/>World</p>`},
		{"already closed", `<p>a<br/>b</p>`, `<p>a<br/>b</p>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fragment(tt.input)
			if got != tt.want {
				t.Fatalf("Fragment(%q) = %q, want %q", tt.input, got, tt.want)
			}
			assertWellFormed(t, got)
		})
	}
}

func TestFragment_UnwrapsMediaWrappers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"p around img", `<p><img src="x.png"/></p>`, `<img src="x.png"/>`},
		{"p around img with whitespace", "<p>  <img src=\"x.png\"/>\n</p>", `<img src="x.png"/>`},
		{"nested div and p", `<div><p><img src="x.png"/></p></div>`, `<img src="x.png"/>`},
		{"p around video", `<p><video src="v.mp4"></video></p>`, `<video src="v.mp4"></video>`},
		{"p around audio", `<p><audio src="a.mp3"></audio></p>`, `<audio src="a.mp3"></audio>`},
		{"p with text kept", `<p>caption <img src="x.png"/></p>`, `<p>caption <img src="x.png"/></p>`},
		{"img between paragraphs", `<p>a</p><p><img src="x.png"/></p><p>b</p>`, `<p>a</p><img src="x.png"/><p>b</p>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fragment(tt.input)
			if got != tt.want {
				t.Fatalf("Fragment(%q) = %q, want %q", tt.input, got, tt.want)
			}
			assertWellFormed(t, got)
		})
	}
}

func TestFragment_RemovesEmptyParagraphs(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty p", `<p>a</p><p></p><p>b</p>`, `<p>a</p><p>b</p>`},
		{"whitespace-only p", "<p>a</p><p> \t </p>", `<p>a</p>`},
		{"stray closing p", `<p>a</p></p>`, `<p>a</p>`},
		{"duplicated closing p", `<p>a</p></p></p><p>b</p>`, `<p>a</p><p>b</p>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fragment(tt.input)
			if got != tt.want {
				t.Fatalf("Fragment(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFragment_SanitizesAttributes(t *testing.T) {
	got := Fragment(`<a href="javascript:steal()" onclick="x()">link</a><img src="ok.png" onerror="y()">`)
	for _, bad := range []string{"javascript:", "onclick", "onerror"} {
		if strings.Contains(got, bad) {
			t.Fatalf("Fragment() = %q, %q survived sanitization", got, bad)
		}
	}
	if !strings.Contains(got, `src="ok.png"`) {
		t.Fatalf("Fragment() = %q, safe src attribute lost", got)
	}
	assertWellFormed(t, got)
}

func TestFragment_StripsComments(t *testing.T) {
	got := Fragment(`<p>a</p><!--[if !supportLists]--><p>b</p>`)
	if strings.Contains(got, "<!--") {
		t.Fatalf("Fragment() = %q, comment survived", got)
	}
	assertWellFormed(t, got)
}

func TestFragment_StripsBOMAndWhitespace(t *testing.T) {
	got := Fragment("\uFEFF  <p>a</p>  ")
	if got != "<p>a</p>" {
		t.Fatalf("Fragment() = %q, want %q", got, "<p>a</p>")
	}
}

func TestFragment_NormalizesLineEndings(t *testing.T) {
	got := Fragment("<p>a</p>\r\n<p>b</p>\r<p>c</p>")
	if strings.Contains(got, "\r") {
		t.Fatalf("Fragment() = %q, carriage return survived", got)
	}
}

func TestFragment_EscapesTextContent(t *testing.T) {
	got := Fragment(`<p>salt & pepper</p>`)
	if got != `<p>salt &amp; pepper</p>` {
		t.Fatalf("Fragment() = %q", got)
	}
	assertWellFormed(t, got)
}

func TestFragment_Empty(t *testing.T) {
	for _, input := range []string{"", "   ", "\uFEFF"} {
		if got := Fragment(input); got != "" {
			t.Fatalf("Fragment(%q) = %q, want empty", input, got)
		}
	}
}

// Arbitrary malformed input must never produce output that breaks the
// surrounding document's XML parse.
func TestFragment_AlwaysWellFormed(t *testing.T) {
	inputs := []string{
		`<p>Hello<img src='a.jpg'><br>World</p>`,
		`<p><img src='x.png'/></p>`,
		`<script>alert(1)</script><p>ok</p>`,
		`<p>unclosed`,
		`</div></div>text`,
		`<p>a<b>bold<i>both</p>`,
		`<table><td>loose cell</table>`,
		`<p class="a" class="b">dup attr</p>`,
		`text with < and & and >`,
		`<input type="text" name="q"><meta charset="utf-8"><link rel="x">`,
		`<p><p><p>deep</p>`,
		"\x00binary\x01junk<p>x</p>",
		`<iframe>a & b</iframe>`,
		`<xmp>1 < 2 & 3</xmp>`,
		`<plaintext>raw & <stuff`,
		`<noscript><p>a & b</p></noscript>`,
		`<noembed>& < ></noembed><p>x</p>`,
	}

	for _, input := range inputs {
		got := Fragment(input)
		assertWellFormed(t, got)
	}
}
