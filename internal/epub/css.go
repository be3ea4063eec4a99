package epub

// styleCSS is the generator-owned stylesheet shared by every content
// document. It is intentionally not customizable per book.
const styleCSS = `body {
  font-family: Georgia, "Times New Roman", serif;
  line-height: 1.6;
  margin: 1em;
}

h1, h2, h3, h4, h5, h6 {
  font-family: Georgia, "Times New Roman", serif;
  line-height: 1.3;
  margin: 1em 0 0.5em 0;
}

h1 {
  font-size: 1.6em;
  border-bottom: 1px solid #ccc;
  padding-bottom: 0.3em;
}

h2 {
  font-size: 1.2em;
  color: #555;
  font-weight: normal;
}

p {
  margin: 0.6em 0;
  text-align: justify;
}

img, video {
  max-width: 100%;
  height: auto;
}

blockquote {
  margin: 1em 2em;
  font-style: italic;
}

table {
  border-collapse: collapse;
  width: 100%;
  margin: 1em 0;
}

th, td {
  border: 1px solid #999;
  padding: 0.4em 0.6em;
}

pre, code {
  font-family: "Courier New", monospace;
  font-size: 0.9em;
}
`

// StyleCSS returns the fixed package stylesheet.
func StyleCSS() []byte {
	return []byte(styleCSS)
}
