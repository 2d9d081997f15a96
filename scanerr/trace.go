package scanerr

import (
	"strings"

	"github.com/pkg/errors"
)

// Frame is one (location, reason) pair of a Trace
type Frame struct {
	Location string `json:"location"`
	Reason   string `json:"reason"`
}

func (f Frame) String() string { return f.Location + ": " + f.Reason }

// Trace is an error carrying the path from the innermost failure to
// the outermost context. Frames are ordered innermost first.
//
// A nil error is the empty trace.
type Trace struct {
	frames []Frame
	cause  error
}

// New returns a Trace holding a single frame
func New(location, reason string) *Trace {
	return &Trace{frames: []Frame{{Location: location, Reason: reason}}}
}

// At starts a Trace from err at location. The frame reason is the
// message of a *Error, or err.Error() for any other error. An err
// which is already a Trace is returned as is. Returns nil if err is nil.
func At(location string, err error) error {
	if err == nil {
		return nil
	}
	var t *Trace
	if errors.As(err, &t) {
		return err
	}
	return &Trace{frames: []Frame{{Location: location, Reason: reason(err)}}, cause: err}
}

// Wrap adds an outer frame to err, keeping every frame err already
// carries. Returns nil if err is nil.
func Wrap(err error, location, reason string) error {
	if err == nil {
		return nil
	}
	var inner *Trace
	if !errors.As(At(location, err), &inner) {
		return err
	}
	frames := make([]Frame, 0, len(inner.frames)+1)
	frames = append(frames, inner.frames...)
	frames = append(frames, Frame{Location: location, Reason: reason})
	return &Trace{frames: frames, cause: inner.cause}
}

// Frames returns a copy of the trace frames, innermost first
func (t *Trace) Frames() []Frame { return append([]Frame(nil), t.frames...) }

// Unwrap returns the error that started the trace, if any
func (t *Trace) Unwrap() error { return t.cause }

// Error renders one "location: reason" line per frame, innermost first
func (t *Trace) Error() string {
	if len(t.frames) == 0 {
		return "no errors are detected"
	}
	lines := make([]string, len(t.frames))
	for i, f := range t.frames {
		lines[i] = f.String()
	}
	return strings.Join(lines, "\n")
}

// FramesOf returns the frames of the Trace found in err's chain
func FramesOf(err error) []Frame {
	var t *Trace
	if errors.As(err, &t) {
		return t.Frames()
	}
	if err != nil {
		return []Frame{{Reason: err.Error()}}
	}
	return nil
}

func reason(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return err.Error()
}
