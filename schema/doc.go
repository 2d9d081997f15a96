// Copyright 2018 Andrew Fort

// Package schema validates the shape of scan project elements.
//
// Validation is applied to one element at a time, before any of its
// content is interpreted, so a stray or repeated element is rejected
// before its text is converted to a typed value.
//
// Attribute checks
//
// CheckAttributes performs a closed-world check of an element's
// attributes: every required attribute must appear exactly once and no
// other attribute may appear.
//
//   <bounding_box min_x="0" ... max_z="2"/>   ok with all six names
//   <bounding_box min_x="0" colour="red"/>    unknown-attribute colour
//
// Section checks
//
// CheckSections walks the immediate child elements of an element
// against a Sections allow-list, which maps a child name to whether it
// may repeat:
//
//   Sections{"bounding_box": false, "stream": true}
//
// A child absent from the list, or a non-repeatable child seen twice,
// fails the check. The text of every child is collected per name, in
// document order; CheckSingleSections keeps only the first value per
// name, for elements whose children are all single-valued leaves.
//
// Every failure is returned as a scanerr Trace located at the element
// path, whose innermost cause is a structural *scanerr.Error.
package schema
