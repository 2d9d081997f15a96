package schema

import (
	"github.com/andaru/scanogram/scanerr"
	"github.com/andaru/scanogram/xmlutil"
	"github.com/antchfx/xmlquery"
)

// Sections maps the name of an allowed child element to whether it may
// occur more than once
type Sections map[string]bool

// CheckAttributes ensures the attributes of n are exactly the required
// names, each given once, and returns their values by name.
func CheckAttributes(n *xmlquery.Node, required ...string) (map[string]string, error) {
	elem := xmlutil.Name(n)
	refs := make(map[string]int, len(required))
	for _, name := range required {
		refs[name] = 0
	}

	values := make(map[string]string, len(required))
	for _, attr := range xmlutil.Attrs(n) {
		count, ok := refs[attr.Name]
		if !ok {
			return nil, scanerr.At(xmlutil.Path(n), scanerr.UnknownAttribute(attr.Name, elem))
		}
		refs[attr.Name] = count + 1
		values[attr.Name] = attr.Value
	}

	for _, name := range required {
		switch count := refs[name]; {
		case count == 0:
			return nil, scanerr.At(xmlutil.Path(n), scanerr.MissingAttribute(name, elem))
		case count > 1:
			return nil, scanerr.At(xmlutil.Path(n), scanerr.DuplicateAttribute(name, elem))
		}
	}
	return values, nil
}

// CheckSections ensures every child element of n is allowed and that
// only repeatable children occur more than once. It returns the text of
// the children by name, in document order.
func CheckSections(n *xmlquery.Node, allowed Sections) (map[string][]string, error) {
	values := map[string][]string{}
	for _, child := range xmlutil.Elements(n) {
		name := xmlutil.Name(child)
		repeatable, ok := allowed[name]
		if !ok {
			return nil, scanerr.At(xmlutil.Path(n), scanerr.UnknownElement(name))
		}
		if !repeatable && len(values[name]) > 0 {
			return nil, scanerr.At(xmlutil.Path(n), scanerr.DuplicateElement(name))
		}
		values[name] = append(values[name], xmlutil.Text(child))
	}
	return values, nil
}

// CheckSingleSections is CheckSections returning the first value of
// each child name present
func CheckSingleSections(n *xmlquery.Node, allowed Sections) (map[string]string, error) {
	multi, err := CheckSections(n, allowed)
	if err != nil {
		return nil, err
	}
	values := make(map[string]string, len(multi))
	for name, v := range multi {
		if len(v) > 0 {
			values[name] = v[0]
		}
	}
	return values, nil
}
