// Package fsys is the filesystem used to read scan project files and to
// discover them in a directory tree.
package fsys

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// FS provides the filesystem capabilities the loader and finder need
type FS interface {
	// ReadFile returns the whole content of the named file
	ReadFile(name string) ([]byte, error)
	// ReadDir returns the entries of the named directory sorted by name
	ReadDir(name string) ([]fs.DirEntry, error)
	// WalkFiles calls fn for every regular file below root, in lexical
	// order. Returning fs.SkipAll from fn stops the walk without error.
	WalkFiles(root string, fn func(name string) error) error
	// Resolve returns rel interpreted against the base directory
	Resolve(base, rel string) (string, error)
	// Dir returns the directory holding name
	Dir(name string) string
}

// OS is the host operating system filesystem. Resolved paths are
// absolute.
type OS struct{}

var _ FS = OS{}

func (OS) ReadFile(name string) ([]byte, error) { return os.ReadFile(name) }

func (OS) ReadDir(name string) ([]fs.DirEntry, error) { return os.ReadDir(name) }

func (OS) WalkFiles(root string, fn func(name string) error) error {
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		return fn(p)
	})
	if errors.Is(err, fs.SkipAll) {
		return nil
	}
	return err
}

func (OS) Resolve(base, rel string) (string, error) {
	if filepath.IsAbs(rel) {
		return filepath.Clean(rel), nil
	}
	abs, err := filepath.Abs(filepath.Join(base, rel))
	if err != nil {
		return "", errors.Wrapf(err, "resolve %q against %q", rel, base)
	}
	return abs, nil
}

func (OS) Dir(name string) string { return filepath.Dir(name) }

// IOFS adapts an io/fs filesystem. Names are slash separated and
// relative to the filesystem root; resolved paths stay within it.
type IOFS struct {
	FS fs.FS
}

var _ FS = IOFS{}

func (f IOFS) ReadFile(name string) ([]byte, error) { return fs.ReadFile(f.FS, clean(name)) }

func (f IOFS) ReadDir(name string) ([]fs.DirEntry, error) { return fs.ReadDir(f.FS, clean(name)) }

func (f IOFS) WalkFiles(root string, fn func(name string) error) error {
	err := fs.WalkDir(f.FS, clean(root), func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		return fn(p)
	})
	if errors.Is(err, fs.SkipAll) {
		return nil
	}
	return err
}

func (f IOFS) Resolve(base, rel string) (string, error) {
	rel = filepath.ToSlash(rel)
	if path.IsAbs(rel) {
		return clean(rel), nil
	}
	p := path.Join(clean(base), rel)
	if !fs.ValidPath(p) {
		return "", errors.Errorf("resolve %q against %q: path escapes the filesystem root", rel, base)
	}
	return p, nil
}

func (IOFS) Dir(name string) string { return path.Dir(clean(name)) }

// clean converts name to the unrooted form io/fs expects
func clean(name string) string {
	name = strings.TrimPrefix(path.Clean(filepath.ToSlash(name)), "/")
	if name == "" {
		return "."
	}
	return name
}

// CountFiles returns the number of regular files directly within dir
// whose extension is one of exts, compared case-insensitively
func CountFiles(fsys FS, dir string, exts ...string) (int, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		ext := strings.ToLower(path.Ext(e.Name()))
		for _, want := range exts {
			if ext == strings.ToLower(want) {
				count++
				break
			}
		}
	}
	return count, nil
}

