// Package finder discovers scan project files and enumerates the
// scanograms they hold.
package finder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/andaru/scanogram/fsys"
	"github.com/andaru/scanogram/loader"
	"github.com/andaru/scanogram/model"
	"github.com/andaru/scanogram/scanerr"
	"github.com/golang/glog"
)

// Ext is the file name extension of scan project files
const Ext = ".scan.xml"

// defaultFiles are the conventional project file names, which add nothing
// to an identifier
var defaultFiles = map[string]bool{"person.scan.xml": true, "Person.scan.xml": true}

// ScanInfo is one scanogram with the person details of its project file
type ScanInfo struct {
	Scan   model.Scanogram
	Name   string
	Group  model.AgeGroup
	Gender model.Gender
	// ID is derived from the project file path, see Identifier
	ID string
}

// EmptyScanInfo is returned by Current before the first call to Next
func EmptyScanInfo() ScanInfo {
	p := model.DefaultPerson()
	return ScanInfo{Name: p.Name, Group: p.AgeGroup, Gender: p.Gender}
}

// Option is a Finder option function
type Option func(*Finder)

// WithFS sets the filesystem project files are read from. The host
// filesystem is used by default.
func WithFS(fs fsys.FS) Option { return func(f *Finder) { f.fs = fs } }

// SkipInvalid makes BindDirectory log and skip files which fail to load
// rather than fail entirely
func SkipInvalid(skip bool) Option { return func(f *Finder) { f.skipInvalid = skip } }

// Finder enumerates the scanograms of the bound project files
type Finder struct {
	fs          fsys.FS
	loader      *loader.Loader
	skipInvalid bool

	scans   []ScanInfo
	cur     int
	skipped []error
}

// New returns a Finder with nothing bound
func New(opts ...Option) *Finder {
	f := &Finder{fs: fsys.OS{}, cur: -1}
	for _, opt := range opts {
		opt(f)
	}
	f.loader = loader.New(f.fs)
	return f
}

// HasScanExt reports whether name carries the project file extension
func HasScanExt(name string) bool { return strings.HasSuffix(name, Ext) }

// BindFile replaces the enumerated scanograms with those of a single
// project file
func (f *Finder) BindFile(name string) error {
	f.clear()
	if !HasScanExt(name) {
		return scanerr.New(name, fmt.Sprintf("'%s' is not a file with pre-recorded scanograms", name))
	}
	scans, err := f.populate(name)
	if err != nil {
		return err
	}
	f.scans = scans
	return nil
}

// BindDirectory replaces the enumerated scanograms with those of every
// project file below dir, in lexical path order
func (f *Finder) BindDirectory(dir string) error {
	f.clear()
	if _, err := f.fs.ReadDir(dir); err != nil {
		return scanerr.At(dir, scanerr.ReadFailed(scanerr.WithCause(err),
			scanerr.WithMessage(fmt.Sprintf("'%s' must refer to a directory", dir))))
	}

	var all []ScanInfo
	var skipped []error
	err := f.fs.WalkFiles(dir, func(name string) error {
		if !HasScanExt(name) {
			return nil
		}
		scans, err := f.populate(name)
		if err != nil {
			if !f.skipInvalid {
				return err
			}
			glog.Warningf("skipping %s: %v", name, err)
			skipped = append(skipped, err)
			return nil
		}
		all = append(all, scans...)
		return nil
	})
	if err != nil {
		return err
	}
	f.scans, f.skipped = all, skipped
	glog.V(1).Infof("found %d scans in %s (%d files skipped)", len(all), dir, len(skipped))
	return nil
}

func (f *Finder) populate(name string) ([]ScanInfo, error) {
	doc, err := f.loader.Load(name)
	if err != nil {
		return nil, scanerr.Wrap(err, name,
			fmt.Sprintf("failed to open pre-recorded scanograms from a file '%s'", name))
	}
	person := doc.Person()
	prefix := Identifier(name)
	scans := doc.Scans()
	out := make([]ScanInfo, len(scans))
	for i, sc := range scans {
		id := prefix
		if len(scans) > 1 {
			id += "_" + strconv.Itoa(i)
		}
		out[i] = ScanInfo{Scan: sc, Name: person.Name, Group: person.AgeGroup, Gender: person.Gender, ID: id}
		glog.V(2).Infof("%s: scan %q", name, id)
	}
	glog.V(1).Infof("%s: loaded %d scans", name, len(scans))
	return out, nil
}

func (f *Finder) clear() {
	f.scans, f.skipped, f.cur = nil, nil, -1
}

// Reset rewinds the enumeration to before the first scanogram
func (f *Finder) Reset() { f.cur = -1 }

// Next advances to the next scanogram, returning false once all have
// been visited
func (f *Finder) Next() bool {
	if f.cur+1 >= len(f.scans) {
		return false
	}
	f.cur++
	return true
}

// Current returns the scanogram Next advanced to
func (f *Finder) Current() ScanInfo {
	if f.cur < 0 || f.cur >= len(f.scans) {
		return EmptyScanInfo()
	}
	return f.scans[f.cur]
}

// Len returns the number of scanograms bound
func (f *Finder) Len() int { return len(f.scans) }

// Skipped returns the load failures of the files BindDirectory skipped
func (f *Finder) Skipped() []error { return append([]error(nil), f.skipped...) }

// Identifier derives a scan identifier from a project file path. Path
// elements carrying no information are dropped, drive colons removed
// and the project file extension stripped; the rest are joined with
// underscores. An empty result becomes "scan".
//
//	Scans/alice/person.scan.xml  ->  alice
//	C:\data\bob\run2.scan.xml    ->  C_data_bob_run2
func Identifier(path string) string {
	var parts []string
	for _, token := range strings.FieldsFunc(path, func(r rune) bool { return r == '/' || r == '\\' }) {
		switch token {
		case ".", "..", "Scans":
			continue
		}
		token = strings.Replace(token, ":", "", 1)
		if defaultFiles[token] {
			continue
		}
		token = strings.TrimSuffix(token, Ext)
		parts = append(parts, token)
	}
	if len(parts) == 0 {
		return "scan"
	}
	return strings.Join(parts, "_")
}
