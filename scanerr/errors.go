package scanerr

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
)

// Kind represents the class of a project-file error
type Kind int

const (
	// KindStructural is a wrong, missing, unknown or duplicated
	// element or attribute
	KindStructural Kind = iota
	// KindValue is text that does not convert to the expected type
	KindValue
	// KindSemantic is a shape rule violated by otherwise valid content
	KindSemantic
	// KindIO is an unreadable file or malformed markup
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindStructural:
		return "structural"
	case KindValue:
		return "value"
	case KindSemantic:
		return "semantic"
	case KindIO:
		return "io"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k *Kind) UnmarshalText(b []byte) error {
	b = bytes.TrimSpace(b)
	switch string(b) {
	case "structural":
		*k = KindStructural
	case "value":
		*k = KindValue
	case "semantic":
		*k = KindSemantic
	case "io":
		*k = KindIO
	default:
		return errors.New("unknown value")
	}
	return nil
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Error tags
const (
	TagMissingAttribute   = "missing-attribute"
	TagDuplicateAttribute = "duplicate-attribute"
	TagUnknownAttribute   = "unknown-attribute"
	TagMissingElement     = "missing-element"
	TagWrongElement       = "wrong-element"
	TagDuplicateElement   = "duplicate-element"
	TagUnknownElement     = "unknown-element"
	TagInvalidValue       = "invalid-value"
	TagInvalidEnum        = "invalid-enum"
	TagConstraint         = "constraint"
	TagReadFailed         = "read-failed"
	TagMalformedDocument  = "malformed-document"
)

// Error represents a single scan project error.
//
// Message always holds a human readable reason; it is what a Trace
// records for the frame that reports the error.
type Error struct {
	XMLName xml.Name   `xml:"scan-error" json:"-"`
	Kind    Kind       `xml:"error-kind" json:"error-kind"`
	Tag     string     `xml:"error-tag" json:"error-tag"`
	Message string     `xml:"error-message,omitempty" json:"error-message,omitempty"`
	Info    *errorInfo `xml:"error-info,omitempty" json:"error-info,omitempty"`

	cause error
}

type errorInfo struct {
	BadAttribute string `xml:"bad-attribute,omitempty" json:"bad-attribute,omitempty"`
	BadElement   string `xml:"bad-element,omitempty" json:"bad-element,omitempty"`
	BadValue     string `xml:"bad-value,omitempty" json:"bad-value,omitempty"`
}

func (e Error) Error() string {
	s := fmt.Sprintf("%s error tag:%s", e.Kind, e.Tag)
	if info := e.Info; info != nil {
		if info.BadAttribute != "" {
			s += " bad-attribute:" + info.BadAttribute
		}
		if info.BadElement != "" {
			s += " bad-element:" + info.BadElement
		}
		if info.BadValue != "" {
			s += " bad-value:" + info.BadValue
		}
	}
	if e.Message != "" {
		s += " " + e.Message
	}
	return s
}

// Unwrap returns the underlying cause, if any
func (e *Error) Unwrap() error { return e.cause }

// BadElement returns the name of the offending element, if known
func (e *Error) BadElement() string {
	if e.Info == nil {
		return ""
	}
	return e.Info.BadElement
}

func newError(kind Kind, tag string, info *errorInfo, msg string, opts []Option) *Error {
	e := &Error{Kind: kind, Tag: tag, Info: info, Message: msg}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func MissingAttribute(attributeName, elementName string, opts ...Option) *Error {
	return newError(KindStructural, TagMissingAttribute,
		&errorInfo{BadAttribute: attributeName, BadElement: elementName},
		fmt.Sprintf("value for the required attribute is not provided ('%s')", attributeName), opts)
}

func DuplicateAttribute(attributeName, elementName string, opts ...Option) *Error {
	return newError(KindStructural, TagDuplicateAttribute,
		&errorInfo{BadAttribute: attributeName, BadElement: elementName},
		fmt.Sprintf("attribute cannot be declared multiple times ('%s')", attributeName), opts)
}

func UnknownAttribute(attributeName, elementName string, opts ...Option) *Error {
	return newError(KindStructural, TagUnknownAttribute,
		&errorInfo{BadAttribute: attributeName, BadElement: elementName},
		fmt.Sprintf("met an unknown attribute ('%s')", attributeName), opts)
}

func MissingElement(elementName string, opts ...Option) *Error {
	return newError(KindStructural, TagMissingElement,
		&errorInfo{BadElement: elementName},
		fmt.Sprintf("section named as '%s' is missing", elementName), opts)
}

// WrongElement reports an element named actual where expected was required
func WrongElement(actual, expected string, opts ...Option) *Error {
	return newError(KindStructural, TagWrongElement,
		&errorInfo{BadElement: actual},
		fmt.Sprintf("wrong name of the section ('%s' instead of '%s')", actual, expected), opts)
}

func DuplicateElement(elementName string, opts ...Option) *Error {
	return newError(KindStructural, TagDuplicateElement,
		&errorInfo{BadElement: elementName},
		fmt.Sprintf("value with the name '%s' cannot be declared multiple times", elementName), opts)
}

func UnknownElement(elementName string, opts ...Option) *Error {
	return newError(KindStructural, TagUnknownElement,
		&errorInfo{BadElement: elementName},
		fmt.Sprintf("section with the name '%s' is not allowed here", elementName), opts)
}

func InvalidValue(value string, opts ...Option) *Error {
	return newError(KindValue, TagInvalidValue,
		&errorInfo{BadValue: value},
		fmt.Sprintf("invalid value '%s'", value), opts)
}

// InvalidEnum reports text that names no value of the enumeration typeName
func InvalidEnum(value, typeName string, opts ...Option) *Error {
	return newError(KindValue, TagInvalidEnum,
		&errorInfo{BadValue: value},
		fmt.Sprintf("failed to cast '%s' value to the type of '%s'", value, typeName), opts)
}

func Constraint(msg string, opts ...Option) *Error {
	return newError(KindSemantic, TagConstraint, nil, msg, opts)
}

func ReadFailed(opts ...Option) *Error {
	return newError(KindIO, TagReadFailed, nil, "failed to open a file with scanograms", opts)
}

func MalformedDocument(opts ...Option) *Error {
	return newError(KindIO, TagMalformedDocument, nil, "failed to recognize XML-based project format", opts)
}
