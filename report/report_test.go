package report

import (
	"bytes"
	"testing"
	"testing/fstest"
	"time"

	"github.com/andaru/scanogram/finder"
	"github.com/andaru/scanogram/fsys"
	"github.com/andaru/scanogram/model"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frameFS() fsys.FS {
	return fsys.IOFS{FS: fstest.MapFS{
		"alice/depth/0.png": {},
		"alice/depth/1.png": {},
		"alice/depth/1.jpg": {},
		"alice/color/0.jpg": {},
	}}
}

func scanInfo(streams ...model.Stream) finder.ScanInfo {
	sc := model.NewScanogram(model.ScanogramInfo{
		Age:      31,
		Height:   172.5,
		DateTime: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		Scanner:  model.ScannerPortalMX,
		Tags:     model.Tags{Hairstyle: model.HairstyleShortHaircut, Placement: model.PlacementIndoor},
		Garments: []model.Garment{model.GarmentTie},
		Stages:   []model.Stage{model.NewStage(model.ScanPassBody, model.BoundingBox{}, streams)},
	})
	return finder.ScanInfo{Scan: sc, Name: "Alice", Gender: model.GenderFemale, Group: model.AgeGroupAdult, ID: "alice"}
}

func TestSummaryText(t *testing.T) {
	depth := &model.FrameSet{Camera: model.Camera{Width: 640, Height: 576}, Path: "alice/depth"}
	color := &model.FrameSet{Camera: model.Camera{Width: 1280, Height: 720}, Path: "alice/color"}
	missing := &model.FrameSet{Camera: model.Camera{Width: 1, Height: 1}, Path: "nowhere"}
	s := NewSummarizer(frameFS())

	for _, tc := range []struct {
		name string
		info finder.ScanInfo
		want string
	}{
		{
			name: "single stream",
			info: scanInfo(model.NewStream(model.SensorAzureKinect, "", depth, color, nil)),
			want: "'alice':\n" +
				"  Alice (female): adult person, 31 years old, 172.5 cm\n" +
				"  Appearance: short haircut, unknown clothes, unknown shoes\n" +
				"  Portal MX (Azure Kinect DK): depth 640x576 (2 frames), color 1280x720 (1 frames), indoor\n",
		},
		{
			name: "no depth and unreadable color",
			info: scanInfo(model.NewStream(model.SensorSynthetic, "", nil, missing, nil)),
			want: "'alice':\n" +
				"  Alice (female): adult person, 31 years old, 172.5 cm\n" +
				"  Appearance: short haircut, unknown clothes, unknown shoes\n" +
				"  Portal MX (software render): no depth maps, color 1x1 (frames unavailable), indoor\n",
		},
		{
			name: "several streams",
			info: scanInfo(model.NewStream(model.SensorAzureKinect, "", depth, nil, nil),
				model.NewStream(model.SensorAzureKinect, "", nil, color, nil)),
			want: "'alice':\n" +
				"  Alice (female): adult person, 31 years old, 172.5 cm\n" +
				"  Appearance: short haircut, unknown clothes, unknown shoes\n" +
				"  Portal MX\n",
		},
		{
			name: "unnamed person",
			info: finder.ScanInfo{
				ID:   "scan",
				Name: model.NAName,
				Scan: model.NewScanogram(model.ScanogramInfo{Scanner: model.ScannerFreeFusion}),
			},
			want: "'scan':\n" +
				"  neutral gender: unknown age group\n" +
				"  Appearance: unknown hairstyle, unknown clothes, unknown shoes\n" +
				"  Free Fusion\n",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, s.Summarize(tc.info).Text())
		})
	}
}

func TestWriteJSON(t *testing.T) {
	check := assert.New(t)
	depth := &model.FrameSet{Camera: model.Camera{Width: 2, Height: 3}, Path: "alice/depth"}
	sum := NewSummarizer(frameFS()).Summarize(scanInfo(model.NewStream(model.SensorAzureKinect, "", depth, nil, nil)))

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sum))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	check.Equal("alice", got[0]["id"])
	check.Equal("female", got[0]["gender"])
	check.Equal("portal_mx", got[0]["scanner"])
	check.Equal("azure_kinect", got[0]["sensor"])
	check.Equal([]any{"tie"}, got[0]["garments"])
	check.Equal(map[string]any{"width": 2.0, "height": 3.0, "path": "alice/depth", "count": 2.0}, got[0]["depth"])
	check.NotContains(got[0], "color")
	check.NotContains(got[0], "weight")

	buf.Reset()
	require.NoError(t, WriteJSON(&buf))
	check.Equal("[]\n", buf.String())
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	sum := Summary{ID: "x", Name: model.NAName}
	require.NoError(t, WriteText(&buf, sum, sum))
	assert.Equal(t, "\n"+sum.Text()+"\n\n"+sum.Text()+"\n", buf.String())
}

func TestTally(t *testing.T) {
	check := assert.New(t)
	var tally Tally
	for _, g := range []model.Gender{model.GenderMale, model.GenderFemale, model.GenderMale, model.GenderNeutral} {
		tally.Add(g)
	}
	check.Equal(Tally{Men: 2, Women: 1, Neutral: 1}, tally)
	check.Equal(4, tally.Total())
	check.Equal("Found information about 4 scans (2 men, 1 women)", tally.String())
}
