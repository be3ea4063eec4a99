package epub

import (
	"path"

	"github.com/google/uuid"
)

// Assemble builds the complete document set for one book. The result lists
// resources in write order: container descriptor, package document,
// navigation documents, stylesheet, cover image, then chapter documents in
// spine order.
//
// Assemble does not validate business rules; it renders whatever manifest
// and spine the input implies. Input-shape validation belongs to the
// caller.
func Assemble(book *Book) *Package {
	if book.Identifier == "" {
		book.Identifier = "urn:uuid:" + uuid.NewString()
	}

	pkg := &Package{}
	pkg.add(ContainerPath, BuildContainer())
	pkg.add(OPFPath, BuildOPF(book))
	pkg.add(NavPath, BuildNav(book))
	pkg.add(NCXPath, BuildNCX(book))
	pkg.add(StylePath, StyleCSS())
	if book.Cover != nil {
		pkg.add(ImageDir+"/"+path.Base(book.Cover.FileName), book.Cover.Data)
	}
	for i := range book.Chapters {
		pkg.add(ChapterPath(i+1), BuildChapter(book, i+1))
	}
	return pkg
}
