package epub

// containerXML is the fixed OCF container descriptor. It has a single job:
// pointing readers at the package document.
const containerXML = xmlDeclaration +
	`<container version="1.0" xmlns="urn:oasis:names:tc:opendocument:xmlns:container">
  <rootfiles>
    <rootfile full-path="OEBPS/content.opf" media-type="application/oebps-package+xml"/>
  </rootfiles>
</container>
`

// BuildContainer renders META-INF/container.xml.
func BuildContainer() []byte {
	return []byte(containerXML)
}
