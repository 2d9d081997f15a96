// Copyright 2018 Andrew Fort

// Package model holds the scan project entities: the enumerations of the
// project format and the immutable tree a project file is loaded into.
//
// A Document owns a Person and one or more Scanograms; a Scanogram owns
// one or more Stages, and a Stage owns one or more Streams. Entities hold
// no reference to their parent or to the source document, and their
// accessors return copies, so a loaded Document may be shared freely.
//
// Every enumeration converts to and from its wire name through a
// correspondence table, and implements encoding.TextMarshaler and
// encoding.TextUnmarshaler on top of it.
package model
