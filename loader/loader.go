// Package loader builds the scan entity tree from a project file.
//
// A project file is read whole and parsed into an XML DOM. Each section
// is then interpreted by its own routine, which checks the section name,
// validates its attributes and children, converts their text and
// descends into the nested sections. The first failure is returned as a
// scanerr trace holding one frame per enclosing section; no part of a
// failed document is returned.
package loader

import (
	"bytes"
	"fmt"
	"io"

	"github.com/andaru/scanogram/fsys"
	"github.com/andaru/scanogram/model"
	"github.com/andaru/scanogram/scanerr"
	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

// RootTag is the name of the document element of a project file
const RootTag = "texel"

var (
	xpRoot  = xpath.MustCompile(`/*`)
	xpScan  = xpath.MustCompile(`scan`)
	xpStage = xpath.MustCompile(`stage`)
	xpStrm  = xpath.MustCompile(`stream`)
)

// Loader reads project files from a filesystem
type Loader struct {
	FS fsys.FS
}

// New returns a Loader reading from fs
func New(fs fsys.FS) *Loader { return &Loader{FS: fs} }

// LoadDocument loads the project file at path from the host filesystem
func LoadDocument(path string) (*model.Document, error) { return New(fsys.OS{}).Load(path) }

func (l *Loader) fs() fsys.FS {
	if l.FS == nil {
		return fsys.OS{}
	}
	return l.FS
}

// Load reads and parses the project file at path. Frame paths in the
// document are resolved against the directory holding the file.
func (l *Loader) Load(path string) (*model.Document, error) {
	b, err := l.fs().ReadFile(path)
	if err != nil {
		return nil, fileError(path, scanerr.At(path, scanerr.ReadFailed(scanerr.WithCause(err))))
	}
	doc, err := l.Parse(bytes.NewReader(b), l.fs().Dir(path))
	if err != nil {
		return nil, fileError(path, err)
	}
	return doc, nil
}

// Parse parses a project document read from r. Frame paths in the
// document are resolved against dir.
func (l *Loader) Parse(r io.Reader, dir string) (*model.Document, error) {
	root, err := xmlquery.Parse(r)
	if err != nil {
		return nil, scanerr.At("/", scanerr.MalformedDocument(scanerr.WithCause(err)))
	}
	b := &builder{fs: l.fs(), dir: dir}
	return b.document(root)
}

func fileError(path string, err error) error {
	return scanerr.Wrap(err, path, fmt.Sprintf("some errors were found when parsing a file ('%s')", path))
}
