package epubgen

// Request describes one EPUB to generate. The caller owns the request; it
// is not mutated and nothing is retained after Generate returns.
type Request struct {
	// Title and Author are required dc:title / dc:creator metadata.
	Title  string
	Author string

	// Description is optional dc:description metadata.
	Description string

	// Language is a BCP 47 tag for dc:language. Empty means the generator
	// option default.
	Language string

	// Cover is the optional cover image.
	Cover *Cover

	// Chapters is the reading order. It must be non-empty; order is
	// preserved exactly in the spine and both navigation documents.
	Chapters []Chapter

	// DestinationPath is where the finished .epub is written. The parent
	// directory is created if missing.
	DestinationPath string
}

// Chapter is one unit of the reading order.
type Chapter struct {
	// ID identifies the chapter in caller systems. It is carried for
	// traceability only; the generator does not require uniqueness.
	ID string

	// Title labels the chapter in headings and navigation documents.
	Title string

	// Description, when set, is rendered as a subheading under the chapter
	// heading.
	Description string

	// Content is the raw HTML body of the chapter. It is untrusted and may
	// be malformed; it is normalized to well-formed XHTML before embedding.
	Content string
}

// Cover is an optional cover image. The file name's extension selects the
// declared media type (JPEG, PNG or SVG; anything else is declared JPEG).
type Cover struct {
	FileName string
	Data     []byte
}

// validate checks the request's required fields. Content-level problems are
// never errors; only missing input shape fails fast.
func (r *Request) validate() error {
	if r.Title == "" {
		return ErrMissingTitle
	}
	if r.Author == "" {
		return ErrMissingAuthor
	}
	if len(r.Chapters) == 0 {
		return ErrNoChapters
	}
	if r.DestinationPath == "" {
		return ErrMissingDestination
	}
	return nil
}
