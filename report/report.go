// Package report renders summaries of enumerated scanograms.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/andaru/scanogram/finder"
	"github.com/andaru/scanogram/fsys"
	"github.com/andaru/scanogram/model"
	"github.com/goccy/go-json"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Default frame file extensions. Each recorded frame is one file.
const (
	DefaultDepthExt = ".png"
	DefaultColorExt = ".jpg"
)

// Frames describes the frames of one kind recorded by a stream
type Frames struct {
	Width  uint   `json:"width"`
	Height uint   `json:"height"`
	Path   string `json:"path"`
	// Count is the number of frame files, or nil if the frame
	// directory could not be read
	Count *int `json:"count"`
}

// Summary is the information printed about one scanogram
type Summary struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Gender   model.Gender      `json:"gender"`
	Group    model.AgeGroup    `json:"age_group"`
	Age      *uint             `json:"age,omitempty"`
	Height   *float32          `json:"height,omitempty"`
	Weight   *float32          `json:"weight,omitempty"`
	Tags     model.Tags        `json:"tags"`
	Scanner  model.ScannerType `json:"scanner"`
	Garments []model.Garment   `json:"garments"`
	Stages   int               `json:"stages"`

	// Sensor, Depth and Color are only given for a scanogram holding a
	// single stage with a single stream
	Sensor *model.SensorType `json:"sensor,omitempty"`
	Depth  *Frames           `json:"depth,omitempty"`
	Color  *Frames           `json:"color,omitempty"`
}

// Summarizer builds summaries, counting frame files on FS
type Summarizer struct {
	FS       fsys.FS
	DepthExt string
	ColorExt string
}

// NewSummarizer returns a Summarizer using the default frame extensions
func NewSummarizer(fs fsys.FS) *Summarizer {
	return &Summarizer{FS: fs, DepthExt: DefaultDepthExt, ColorExt: DefaultColorExt}
}

// Summarize returns the summary of info
func (s *Summarizer) Summarize(info finder.ScanInfo) Summary {
	sc := info.Scan
	sum := Summary{
		ID:       info.ID,
		Name:     info.Name,
		Gender:   info.Gender,
		Group:    info.Group,
		Tags:     sc.Tags(),
		Scanner:  sc.Scanner(),
		Garments: sc.Garments(),
	}
	if v, ok := sc.Age(); ok {
		sum.Age = &v
	}
	if v, ok := sc.Height(); ok {
		sum.Height = &v
	}
	if v, ok := sc.Weight(); ok {
		sum.Weight = &v
	}

	stages := sc.Stages()
	sum.Stages = len(stages)
	if len(stages) != 1 || len(stages[0].Streams()) != 1 {
		return sum
	}
	stream := stages[0].Streams()[0]
	sensor := stream.Sensor()
	sum.Sensor = &sensor
	if fs, ok := stream.Depth(); ok {
		sum.Depth = s.frames(fs, s.DepthExt)
	}
	if fs, ok := stream.Color(); ok {
		sum.Color = s.frames(fs, s.ColorExt)
	}
	return sum
}

func (s *Summarizer) frames(set model.FrameSet, ext string) *Frames {
	f := &Frames{Width: set.Camera.Width, Height: set.Camera.Height, Path: set.Path}
	n, err := fsys.CountFiles(s.FS, set.Path, ext)
	if err != nil {
		glog.Warningf("counting %s frames in %s: %v", ext, set.Path, err)
		return f
	}
	f.Count = &n
	return f
}

func formatFloat(v float32) string { return strconv.FormatFloat(float64(v), 'g', -1, 32) }

func (f *Frames) count() string {
	if f.Count == nil {
		return "frames unavailable"
	}
	return strconv.Itoa(*f.Count) + " frames"
}

// Text renders the summary as a few human readable lines
func (s Summary) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "'%s':\n", s.ID)

	b.WriteString("  ")
	if s.Name != model.NAName {
		fmt.Fprintf(&b, "%s (%s)", s.Name, s.Gender.UserFriendly())
	} else {
		b.WriteString(s.Gender.UserFriendly())
	}
	b.WriteString(": " + s.Group.UserFriendly())
	if s.Age != nil {
		fmt.Fprintf(&b, ", %d years old", *s.Age)
	}
	if s.Height != nil {
		fmt.Fprintf(&b, ", %s cm", formatFloat(*s.Height))
	}
	if s.Weight != nil {
		fmt.Fprintf(&b, ", %s kg", formatFloat(*s.Weight))
	}
	b.WriteByte('\n')

	fmt.Fprintf(&b, "  Appearance: %s, %s, %s\n",
		s.Tags.Hairstyle.UserFriendly(), s.Tags.Clothing.UserFriendly(), s.Tags.Shoes.UserFriendly())

	b.WriteString("  " + s.Scanner.UserFriendly())
	if s.Sensor != nil {
		fmt.Fprintf(&b, " (%s): ", s.Sensor.UserFriendly())
		if s.Depth != nil {
			fmt.Fprintf(&b, "depth %dx%d (%s)", s.Depth.Width, s.Depth.Height, s.Depth.count())
		} else {
			b.WriteString("no depth maps")
		}
		if s.Color != nil {
			fmt.Fprintf(&b, ", color %dx%d (%s)", s.Color.Width, s.Color.Height, s.Color.count())
		} else {
			b.WriteString(", no color frames")
		}
		if s.Tags.Placement != model.PlacementNA {
			b.WriteString(", " + s.Tags.Placement.UserFriendly())
		}
	}
	b.WriteByte('\n')
	return b.String()
}

// WriteText writes the text of each summary, separated by blank lines
func WriteText(w io.Writer, summaries ...Summary) error {
	for _, s := range summaries {
		if _, err := io.WriteString(w, "\n"+s.Text()+"\n"); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

// WriteJSON writes the summaries as an indented JSON array
func WriteJSON(w io.Writer, summaries ...Summary) error {
	if summaries == nil {
		summaries = []Summary{}
	}
	b, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal summaries")
	}
	if _, err = w.Write(append(b, '\n')); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// Tally counts scanograms by the gender of the scanned person
type Tally struct {
	Men     int `json:"men"`
	Women   int `json:"women"`
	Neutral int `json:"neutral"`
}

// Add counts one scanogram of a person of gender g
func (t *Tally) Add(g model.Gender) {
	switch g {
	case model.GenderMale:
		t.Men++
	case model.GenderFemale:
		t.Women++
	default:
		t.Neutral++
	}
}

// Total returns the number of scanograms counted
func (t Tally) Total() int { return t.Men + t.Women + t.Neutral }

func (t Tally) String() string {
	return fmt.Sprintf("Found information about %d scans (%d men, %d women)", t.Total(), t.Men, t.Women)
}
