// Package value converts raw project-file text into typed values.
package value

import (
	"encoding"
	"fmt"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/andaru/scanogram/scanerr"
)

// TimeLayout is the only accepted date-time format: ISO-8601 in UTC at
// second resolution
const TimeLayout = "2006-01-02T15:04:05Z"

// Parse converts text into a T. T must be uint, float32, string,
// time.Time, bool (yes/no), or a type whose pointer implements
// encoding.TextUnmarshaler; Parse panics for any other T.
func Parse[T any](text string) (T, error) {
	var v T
	var err error
	switch p := any(&v).(type) {
	case *string:
		*p = text
	case *uint:
		*p, err = ParseUint(text)
	case *float32:
		*p, err = ParseFloat(text)
	case *time.Time:
		*p, err = ParseTime(text)
	case *bool:
		*p, err = ParseYesNo(text)
	case encoding.TextUnmarshaler:
		err = p.UnmarshalText([]byte(text))
	default:
		panic(fmt.Sprintf("value: unsupported type %T", v))
	}
	if err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// ParseUint converts the whole of text to an unsigned integer
func ParseUint(text string) (uint, error) {
	v, err := strconv.ParseUint(text, 10, strconv.IntSize)
	if err != nil {
		return 0, scanerr.InvalidValue(text, scanerr.WithCause(err), scanerr.WithMessage(
			fmt.Sprintf("failed to parse the '%s' (expected to be uint)", text)))
	}
	return uint(v), nil
}

// ParseFloat converts the whole of text to a float32
func ParseFloat(text string) (float32, error) {
	v, err := strconv.ParseFloat(text, 32)
	if err != nil {
		return 0, scanerr.InvalidValue(text, scanerr.WithCause(err), scanerr.WithMessage(
			fmt.Sprintf("failed to parse the '%s' (expected to be float)", text)))
	}
	return float32(v), nil
}

// ParseTime converts text in TimeLayout to a UTC time
func ParseTime(text string) (time.Time, error) {
	var t time.Time
	err := errors.Errorf("length %d differs from the layout", len(text))
	// time.Parse accepts fractional seconds the layout does not name
	if len(text) == len(TimeLayout) {
		t, err = time.Parse(TimeLayout, text)
	}
	if err != nil {
		return time.Time{}, scanerr.InvalidValue(text, scanerr.WithCause(err), scanerr.WithMessage(
			fmt.Sprintf("failed to parse time ('%s'), the ISO-8601 format is expected", text)))
	}
	return t.UTC(), nil
}

// ParseYesNo accepts only the literal tokens "yes" and "no"
func ParseYesNo(text string) (bool, error) {
	switch text {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	}
	return false, scanerr.InvalidValue(text, scanerr.WithMessage(
		fmt.Sprintf("wrong value '%s', only 'yes' and 'no' are supported", text)))
}
