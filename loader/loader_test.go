package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/andaru/scanogram/fsys"
	"github.com/andaru/scanogram/model"
	"github.com/andaru/scanogram/scanerr"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const camera = `<intrinsics cx="320" cy="240" fx="500.5" fy="501"/>` +
	`<extrinsics rot11="1" rot12="0" rot13="0" rot21="0" rot22="1" rot23="0"` +
	` rot31="0" rot32="0" rot33="1" trans1="0.1" trans2="0.2" trans3="0.3"/>`

const bbox = `<bounding_box min_x="-1" min_y="0" min_z="-1" max_x="1" max_y="2" max_z="1"/>`

const minimal = `<?xml version="1.0" encoding="UTF-8"?>
<texel>
  <person gender="male"><name>Bob</name><group>adult</group></person>
  <scan scanner="portal_mx" date="2020-01-01T12:00:00Z">
    <stage pass="body">
      ` + bbox + `
      <stream sensor="azure_kinect" sensor_data="000123">
        <depth path="frames" width="640" height="576">` + camera + `</depth>
      </stream>
    </stage>
  </scan>
</texel>`

// document wraps scan sections in a project document
func document(scans ...string) string {
	return `<texel><person gender="female"/>` + strings.Join(scans, "") + `</texel>`
}

// scan wraps body in a scan section with valid attributes
func scan(body string) string {
	return `<scan scanner="free_fusion" date="2021-06-30T08:15:00Z">` + body + `</scan>`
}

// stage wraps streams in a stage section with a bounding box
func stage(pass string, streams ...string) string {
	return `<stage pass="` + pass + `">` + bbox + strings.Join(streams, "") + `</stage>`
}

func stream(body string) string {
	return `<stream sensor="syntethic" sensor_data="">` + body + `</stream>`
}

func frames(kind, path string) string {
	return `<` + kind + ` path="` + path + `" width="1" height="2">` + camera + `</` + kind + `>`
}

func load(t *testing.T, content string) (*model.Document, error) {
	l := New(fsys.IOFS{FS: fstest.MapFS{
		"proj/person.scan.xml": {Data: []byte(content)},
	}})
	return l.Load("proj/person.scan.xml")
}

func TestLoadMinimal(t *testing.T) {
	check := assert.New(t)
	doc, err := load(t, minimal)
	require.NoError(t, err)

	check.Equal(model.Person{Gender: model.GenderMale, Name: "Bob", AgeGroup: model.AgeGroupAdult}, doc.Person())
	scans := doc.Scans()
	require.Len(t, scans, 1)
	sc := scans[0]
	check.Equal(model.ScannerPortalMX, sc.Scanner())
	check.True(sc.DateTime().Equal(time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC)))
	_, ok := sc.Age()
	check.False(ok)
	check.Equal(model.Consents{}, sc.Consents())
	check.Equal(model.Tags{}, sc.Tags())
	check.Empty(sc.Garments())

	stages := sc.Stages()
	require.Len(t, stages, 1)
	check.Equal(model.ScanPassBody, stages[0].Pass())
	check.Equal(model.BoundingBox{Offset: model.Vec3{-1, 0, -1}, Size: model.Vec3{2, 2, 2}}, stages[0].BoundingBox())

	streams := stages[0].Streams()
	require.Len(t, streams, 1)
	s := streams[0]
	check.Equal(model.SensorAzureKinect, s.Sensor())
	check.Equal("000123", s.SensorData())
	depth, ok := s.Depth()
	if check.True(ok) {
		check.Equal("proj/frames", depth.Path)
		check.Equal(model.Camera{
			Width: 640, Height: 576,
			Cx: 320, Cy: 240, Fx: 500.5, Fy: 501,
			Offset:   model.Vec3{0.1, 0.2, 0.3},
			Rotation: model.Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		}, depth.Camera)
	}
	_, ok = s.Color()
	check.False(ok)
	_, ok = s.IR()
	check.False(ok)
}

func TestLoadDocumentResolvesAbsolutePaths(t *testing.T) {
	check := assert.New(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "person.scan.xml")
	require.NoError(t, os.WriteFile(path, []byte(minimal), 0o644))

	doc, err := LoadDocument(path)
	require.NoError(t, err)
	depth, ok := doc.Scans()[0].Stages()[0].Streams()[0].Depth()
	if check.True(ok) {
		check.Equal(filepath.Join(dir, "frames"), depth.Path)
		check.True(filepath.IsAbs(depth.Path))
	}
}

func TestLoadScanDetails(t *testing.T) {
	check := assert.New(t)
	doc, err := load(t, document(scan(`
		<person><age>31</age><weight>70.5</weight></person>
		<consents><commercial_use>yes</commercial_use><do_not_blur_face>no</do_not_blur_face></consents>
		<tags><hairstyle>hat</hairstyle><placement>outdoor</placement></tags>
		<garments><item>jeans</item><item>tie</item><item>jeans</item></garments>
		`+stage("head", stream(frames("color", "c")+frames("ir", "/abs/ir")))+`
		`+stage("body", stream(frames("depth", "d")), stream(frames("ir", "i")))+`
	`)))
	require.NoError(t, err)

	check.Equal(model.Person{Gender: model.GenderFemale, Name: model.NAName, AgeGroup: model.AgeGroupNA}, doc.Person())
	sc := doc.Scans()[0]
	age, ok := sc.Age()
	check.True(ok)
	check.Equal(uint(31), age)
	weight, ok := sc.Weight()
	check.True(ok)
	check.Equal(float32(70.5), weight)
	_, ok = sc.Height()
	check.False(ok)

	check.Equal(model.Consents{CommercialUse: true}, sc.Consents())
	check.Equal(model.Tags{Hairstyle: model.HairstyleHat, Placement: model.PlacementOutdoor}, sc.Tags())
	check.Equal([]model.Garment{model.GarmentJeans, model.GarmentTie}, sc.Garments())

	stages := sc.Stages()
	require.Len(t, stages, 2)
	check.Equal(model.ScanPassHead, stages[0].Pass())
	check.Equal(model.ScanPassBody, stages[1].Pass())

	head := stages[0].Streams()
	require.Len(t, head, 1)
	color, ok := head[0].Color()
	check.True(ok)
	check.Equal("proj/c", color.Path)
	ir, ok := head[0].IR()
	check.True(ok)
	check.Equal("abs/ir", ir.Path)
	_, ok = head[0].Depth()
	check.False(ok)

	body := stages[1].Streams()
	require.Len(t, body, 2)
	_, ok = body[0].Depth()
	check.True(ok)
	_, ok = body[1].IR()
	check.True(ok)
}

func TestLoadPersonDefaults(t *testing.T) {
	doc, err := load(t, `<texel>`+scan(stage("body", stream(frames("depth", "d"))))+`</texel>`)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultPerson(), doc.Person())
}

func TestLoadPreservesScanOrder(t *testing.T) {
	check := assert.New(t)
	st := stage("body", stream(frames("depth", "d")))
	doc, err := load(t, document(
		`<scan scanner="portal_rx" date="2020-01-01T00:00:00Z">`+st+`</scan>`,
		`<scan scanner="portal_mx" date="2020-01-02T00:00:00Z">`+st+`</scan>`,
		`<scan scanner="free_fusion" date="2020-01-03T00:00:00Z">`+st+`</scan>`,
	))
	require.NoError(t, err)
	var got []model.ScannerType
	for _, sc := range doc.Scans() {
		got = append(got, sc.Scanner())
	}
	check.Equal([]model.ScannerType{model.ScannerPortalRX, model.ScannerPortalMX, model.ScannerFreeFusion}, got)
}

func TestLoadErrors(t *testing.T) {
	okStage := stage("body", stream(frames("depth", "d")))
	for _, tc := range []struct {
		name  string
		input string

		// wantReasons must each appear in some frame of the trace
		wantReasons []string
		wantKind    scanerr.Kind
		wantTag     string
	}{
		{
			name:  "date is not a date",
			input: document(`<scan scanner="portal_mx" date="not-a-date">` + okStage + `</scan>`),
			wantReasons: []string{
				"failed to parse time ('not-a-date'), the ISO-8601 format is expected",
				"failed to get value from the 'date' attribute",
				"section named as 'scan' has invalid content",
				"section named as 'texel' has invalid content",
				"some errors were found when parsing a file ('proj/person.scan.xml')",
			},
			wantKind: scanerr.KindValue,
			wantTag:  scanerr.TagInvalidValue,
		},
		{
			name:        "consent maybe",
			input:       document(scan(`<consents><commercial_use>maybe</commercial_use></consents>` + okStage)),
			wantReasons: []string{"wrong value 'maybe', only 'yes' and 'no' are supported", "failed to get value from the 'commercial_use' section"},
			wantKind:    scanerr.KindValue,
			wantTag:     scanerr.TagInvalidValue,
		},
		{
			name:        "stream without sensor data",
			input:       document(scan(stage("body", stream(``)))),
			wantReasons: []string{"at least one sensor-data section must be provided", "section named as 'stream' has invalid content"},
			wantKind:    scanerr.KindSemantic,
			wantTag:     scanerr.TagConstraint,
		},
		{
			name:        "stream with intensity",
			input:       document(scan(stage("body", stream(`<intensity/>`)))),
			wantReasons: []string{"section with the name 'intensity' is not allowed here"},
			wantTag:     scanerr.TagUnknownElement,
		},
		{
			name:        "scan without stages",
			input:       document(scan(``)),
			wantReasons: []string{"section named as 'stage' is missing"},
			wantTag:     scanerr.TagMissingElement,
		},
		{
			name:        "stage without streams",
			input:       document(scan(stage("head"))),
			wantReasons: []string{"section named as 'stream' is missing", "section named as 'stage' has invalid content"},
			wantTag:     scanerr.TagMissingElement,
		},
		{
			name:        "stage with duplicate pass",
			input:       document(scan(`<stage pass="body" pass="head">` + bbox + stream(frames("depth", "d")) + `</stage>`)),
			wantReasons: []string{"attribute cannot be declared multiple times ('pass')", "section named as 'stage' has invalid content", "section named as 'scan' has invalid content"},
			wantKind:    scanerr.KindStructural,
			wantTag:     scanerr.TagDuplicateAttribute,
		},
		{
			name:        "stage without bounding box",
			input:       document(scan(`<stage pass="body">` + stream(frames("depth", "d")) + `</stage>`)),
			wantReasons: []string{"section named as 'bounding_box' is missing"},
			wantTag:     scanerr.TagMissingElement,
		},
		{
			name:        "two bounding boxes",
			input:       document(scan(`<stage pass="body">` + bbox + bbox + stream(frames("depth", "d")) + `</stage>`)),
			wantReasons: []string{"value with the name 'bounding_box' cannot be declared multiple times"},
			wantTag:     scanerr.TagDuplicateElement,
		},
		{
			name:        "no scans",
			input:       `<texel><person gender="male"/></texel>`,
			wantReasons: []string{"at least one scan must be provided"},
			wantKind:    scanerr.KindSemantic,
			wantTag:     scanerr.TagConstraint,
		},
		{
			name:        "wrong root",
			input:       `<project/>`,
			wantReasons: []string{"wrong name of the section ('project' instead of 'texel')"},
			wantTag:     scanerr.TagWrongElement,
		},
		{
			name:        "malformed markup",
			input:       `<texel><scan>`,
			wantReasons: []string{"failed to recognize XML-based project format"},
			wantKind:    scanerr.KindIO,
			wantTag:     scanerr.TagMalformedDocument,
		},
		{
			name:        "empty file",
			input:       ``,
			wantReasons: []string{"failed to recognize XML-based project format"},
			wantKind:    scanerr.KindIO,
			wantTag:     scanerr.TagMalformedDocument,
		},
		{
			name:        "unknown gender",
			input:       `<texel><person gender="robot"/>` + scan(okStage) + `</texel>`,
			wantReasons: []string{"failed to cast 'robot' value to the type of 'scanogram.Gender'", "section named as 'person' has invalid content"},
			wantKind:    scanerr.KindValue,
			wantTag:     scanerr.TagInvalidEnum,
		},
		{
			name:        "missing scanner",
			input:       document(`<scan date="2020-01-01T00:00:00Z">` + okStage + `</scan>`),
			wantReasons: []string{"value for the required attribute is not provided ('scanner')"},
			wantTag:     scanerr.TagMissingAttribute,
		},
		{
			name:        "unknown garment",
			input:       document(scan(`<garments><item>crown</item></garments>` + okStage)),
			wantReasons: []string{"failed to get value from the 'item' section"},
			wantKind:    scanerr.KindValue,
			wantTag:     scanerr.TagInvalidEnum,
		},
		{
			name:        "camera without extrinsics",
			input:       document(scan(stage("body", stream(`<depth path="d" width="1" height="1"><intrinsics cx="1" cy="1" fx="1" fy="1"/></depth>`)))),
			wantReasons: []string{"section named as 'extrinsics' is missing", "section named as 'depth' has invalid content"},
			wantTag:     scanerr.TagMissingElement,
		},
		{
			name:        "bad width",
			input:       document(scan(stage("body", stream(`<color path="d" width="-1" height="1">`+camera+`</color>`)))),
			wantReasons: []string{"failed to parse the '-1' (expected to be uint)", "failed to get value from the 'width' attribute"},
			wantKind:    scanerr.KindValue,
			wantTag:     scanerr.TagInvalidValue,
		},
		{
			name:        "bad bounding box",
			input:       document(scan(`<stage pass="body"><bounding_box min_x="a" min_y="0" min_z="0" max_x="1" max_y="1" max_z="1"/>` + stream(frames("ir", "i")) + `</stage>`)),
			wantReasons: []string{"failed to parse the 'a' (expected to be float)", "section named as 'bounding_box' has invalid content"},
			wantKind:    scanerr.KindValue,
			wantTag:     scanerr.TagInvalidValue,
		},
		{
			name:        "path escapes the filesystem",
			input:       document(scan(stage("body", stream(frames("depth", "../../elsewhere"))))),
			wantReasons: []string{"section named as 'depth' has invalid content", "section named as 'stream' has invalid content"},
			wantTag:     "",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			check := assert.New(t)
			doc, err := load(t, tc.input)
			check.Nil(doc)
			require.Error(t, err)

			var reasons []string
			for _, f := range scanerr.FramesOf(err) {
				reasons = append(reasons, f.Reason)
			}
			for _, want := range tc.wantReasons {
				check.Contains(reasons, want)
			}
			frames := scanerr.FramesOf(err)
			check.Equal("some errors were found when parsing a file ('proj/person.scan.xml')", frames[len(frames)-1].Reason)

			var e *scanerr.Error
			if tc.wantTag == "" {
				check.False(errors.As(err, &e))
				return
			}
			if check.True(errors.As(err, &e)) {
				check.Equal(tc.wantTag, e.Tag)
				check.Equal(tc.wantKind, e.Kind)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	check := assert.New(t)
	_, err := New(fsys.IOFS{FS: fstest.MapFS{}}).Load("nowhere.scan.xml")
	require.Error(t, err)
	var e *scanerr.Error
	if check.True(errors.As(err, &e)) {
		check.Equal(scanerr.TagReadFailed, e.Tag)
	}
	check.Equal("nowhere.scan.xml: failed to open a file with scanograms\n"+
		"nowhere.scan.xml: some errors were found when parsing a file ('nowhere.scan.xml')", err.Error())
}

func TestErrorLocations(t *testing.T) {
	_, err := load(t, document(scan(stage("body", stream(``))), scan(stage("head", stream(``)))))
	require.Error(t, err)
	frames := scanerr.FramesOf(err)
	require.NotEmpty(t, frames)
	assert.Equal(t, "/texel/scan[1]/stage/stream", frames[0].Location)
}

func TestParse(t *testing.T) {
	check := assert.New(t)
	doc, err := New(fsys.IOFS{FS: fstest.MapFS{}}).Parse(strings.NewReader(minimal), "a/b")
	require.NoError(t, err)
	depth, _ := doc.Scans()[0].Stages()[0].Streams()[0].Depth()
	check.Equal("a/b/frames", depth.Path)

	_, err = New(nil).Parse(strings.NewReader(`<texel/>`), ".")
	check.EqualError(err, "/texel: at least one scan must be provided\n"+
		"/texel: section named as 'texel' has invalid content")
}
