// Package epubgen assembles standards-compliant EPUB3 packages from in-memory
// book descriptions: title and author metadata, an optional cover image,
// and an ordered list of chapters containing raw, untrusted HTML.
//
// Chapter content is repaired into well-formed XHTML (unclosed void
// elements self-closed, script and style blocks removed, editor artifacts
// stripped) so that the produced documents always parse in strict XML
// readers. The archive obeys the OCF container rules: the mimetype entry
// comes first, stored uncompressed.
//
//	path, err := epubgen.Generate(epubgen.Request{
//	    Title:           "My Book",
//	    Author:          "Jane Doe",
//	    Chapters:        []epubgen.Chapter{{ID: "1", Title: "One", Content: "<p>Hi</p>"}},
//	    DestinationPath: "out/my-book.epub",
//	})
//
// Generation is synchronous and stateless; concurrent calls are safe as
// long as they write to distinct destination paths.
package epubgen
