package model

import (
	"sort"
	"time"
)

// Vec3 is a 3D vector
type Vec3 [3]float32

// Sub returns v - u
func (v Vec3) Sub(u Vec3) Vec3 { return Vec3{v[0] - u[0], v[1] - u[1], v[2] - u[2]} }

// Mat3 is a row-major 3x3 matrix
type Mat3 [3][3]float32

// BoundingBox is the region of 3D space which holds the scanned person
type BoundingBox struct {
	// Offset from the origin of the coordinate system
	Offset Vec3
	// Size of the box; expected, but not guaranteed, to be non-negative
	Size Vec3
}

// NewBoundingBox returns the box spanning min to max. The box is not
// rejected when max is below min on some axis.
func NewBoundingBox(min, max Vec3) BoundingBox {
	return BoundingBox{Offset: min, Size: max.Sub(min)}
}

// Camera holds the parameters of a depth, color or infrared sensor
type Camera struct {
	// Width and Height of a frame, in pixels
	Width, Height uint
	// Projection matrix coefficients
	Cx, Cy, Fx, Fy float32
	// Offset from the viewer position, in meters
	Offset Vec3
	// Rotation from the viewer's line of sight, row-based
	Rotation Mat3
}

// Consents lists what the person allowed to be done with their
// biometric data. Every flag defaults to false.
type Consents struct {
	MakeDepthMapsPubliclyAvailable   bool `json:"make_depth_maps_publicly_available"`
	MakeColorFramesPubliclyAvailable bool `json:"make_color_frames_publicly_available"`
	MakeScansPubliclyAvailable       bool `json:"make_scans_publicly_available"`
	DoNotBlurFace                    bool `json:"do_not_blur_face"`
	CommercialUse                    bool `json:"commercial_use"`
}

// Tags is the appearance markup of a scanogram. Zero value is NA for
// every field.
type Tags struct {
	Hairstyle Hairstyle `json:"hairstyle"`
	Clothing  Clothing  `json:"clothing"`
	Shoes     Shoes     `json:"shoes"`
	Lighting  Lighting  `json:"lighting"`
	Placement Placement `json:"placement"`
}

// FrameSet is a directory of recorded frames and the camera that
// recorded them. Path is absolute.
type FrameSet struct {
	Camera Camera
	Path   string
}

// Stream is the output of a single sensor within a stage
type Stream struct {
	sensor     SensorType
	sensorData string
	depth      *FrameSet
	color      *FrameSet
	ir         *FrameSet
}

// NewStream returns a Stream. Any of depth, color and ir may be nil.
func NewStream(sensor SensorType, sensorData string, depth, color, ir *FrameSet) Stream {
	return Stream{
		sensor:     sensor,
		sensorData: sensorData,
		depth:      copyFrameSet(depth),
		color:      copyFrameSet(color),
		ir:         copyFrameSet(ir),
	}
}

func copyFrameSet(fs *FrameSet) *FrameSet {
	if fs == nil {
		return nil
	}
	c := *fs
	return &c
}

func frameSet(fs *FrameSet) (FrameSet, bool) {
	if fs == nil {
		return FrameSet{}, false
	}
	return *fs, true
}

func (s Stream) Sensor() SensorType { return s.sensor }

// SensorData is scanner specific information about the sensor, e.g. an
// internal identifier
func (s Stream) SensorData() string { return s.sensorData }

// Depth returns the depth map frames, if the stream recorded any
func (s Stream) Depth() (FrameSet, bool) { return frameSet(s.depth) }

// Color returns the color frames, if the stream recorded any
func (s Stream) Color() (FrameSet, bool) { return frameSet(s.color) }

// IR returns the infrared frames, if the stream recorded any
func (s Stream) IR() (FrameSet, bool) { return frameSet(s.ir) }

// Stage is one scanning phase, e.g. the body or head pass
type Stage struct {
	pass    ScanPass
	bbox    BoundingBox
	streams []Stream
}

func NewStage(pass ScanPass, bbox BoundingBox, streams []Stream) Stage {
	return Stage{pass: pass, bbox: bbox, streams: append([]Stream(nil), streams...)}
}

func (s Stage) Pass() ScanPass            { return s.pass }
func (s Stage) BoundingBox() BoundingBox { return s.bbox }

// Streams returns the stage streams in document order
func (s Stage) Streams() []Stream { return append([]Stream(nil), s.streams...) }

// Person is the information about the scanned person shared by every
// scanogram of a project file
type Person struct {
	Gender   Gender   `json:"gender"`
	Name     string   `json:"name"`
	AgeGroup AgeGroup `json:"age_group"`
}

// NAName is the person name used when none was given
const NAName = "NA"

// DefaultPerson is the person of a project file without a person section
func DefaultPerson() Person {
	return Person{Gender: GenderNeutral, Name: NAName, AgeGroup: AgeGroupNA}
}

// ScanogramInfo is the content of a Scanogram, used to construct one
type ScanogramInfo struct {
	Age      uint
	Weight   float32
	Height   float32
	DateTime time.Time
	Scanner  ScannerType
	Consents Consents
	Tags     Tags
	Garments []Garment
	Stages   []Stage
}

// Scanogram describes one recorded scan session. It holds no sensor
// data, only the directories the frames were recorded to.
type Scanogram struct {
	age      uint
	weight   float32
	height   float32
	dateTime time.Time
	scanner  ScannerType
	consents Consents
	tags     Tags
	garments map[Garment]struct{}
	stages   []Stage
}

// NewScanogram returns a Scanogram built from info. Repeated garments
// are kept once.
func NewScanogram(info ScanogramInfo) Scanogram {
	s := Scanogram{
		age:      info.Age,
		weight:   info.Weight,
		height:   info.Height,
		dateTime: info.DateTime.UTC().Truncate(time.Second),
		scanner:  info.Scanner,
		consents: info.Consents,
		tags:     info.Tags,
		garments: make(map[Garment]struct{}, len(info.Garments)),
		stages:   append([]Stage(nil), info.Stages...),
	}
	for _, g := range info.Garments {
		s.garments[g] = struct{}{}
	}
	return s
}

// Age returns the person's age, if known
func (s Scanogram) Age() (uint, bool) { return s.age, s.age > 0 }

// Weight returns the person's weight, if known
func (s Scanogram) Weight() (float32, bool) { return s.weight, s.weight > 0 }

// Height returns the person's height, if known
func (s Scanogram) Height() (float32, bool) { return s.height, s.height > 0 }

func (s Scanogram) DateTime() time.Time  { return s.dateTime }
func (s Scanogram) Scanner() ScannerType { return s.scanner }
func (s Scanogram) Consents() Consents   { return s.consents }
func (s Scanogram) Tags() Tags           { return s.tags }

// HasGarment reports whether the person wore g
func (s Scanogram) HasGarment(g Garment) bool {
	_, ok := s.garments[g]
	return ok
}

// Garments returns the garment set, ordered by value
func (s Scanogram) Garments() []Garment {
	out := make([]Garment, 0, len(s.garments))
	for g := range s.garments {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Stages returns the scanning stages in document order
func (s Scanogram) Stages() []Stage { return append([]Stage(nil), s.stages...) }

// Document is the content of a project file
type Document struct {
	person Person
	scans  []Scanogram
}

func NewDocument(person Person, scans []Scanogram) *Document {
	return &Document{person: person, scans: append([]Scanogram(nil), scans...)}
}

func (d *Document) Person() Person { return d.person }

// Scans returns the scanograms in document order
func (d *Document) Scans() []Scanogram { return append([]Scanogram(nil), d.scans...) }
