package loader

import (
	"fmt"
	"strings"
	"time"

	"github.com/andaru/scanogram/fsys"
	"github.com/andaru/scanogram/model"
	"github.com/andaru/scanogram/scanerr"
	"github.com/andaru/scanogram/schema"
	"github.com/andaru/scanogram/value"
	"github.com/andaru/scanogram/xmlutil"
	"github.com/antchfx/xmlquery"
)

// builder holds what the section routines share for one document
type builder struct {
	fs  fsys.FS
	dir string
}

// expect checks that n is an element with one of the given names
func expect(n *xmlquery.Node, names ...string) error {
	want := strings.Join(names, "|")
	if n == nil {
		return scanerr.At(xmlutil.Path(n), scanerr.MissingElement(want))
	}
	name := xmlutil.Name(n)
	for _, s := range names {
		if name == s {
			return nil
		}
	}
	return scanerr.At(xmlutil.Path(n), scanerr.WrongElement(name, want))
}

// invalid adds the frame of section n to err
func invalid(n *xmlquery.Node, err error) error {
	return scanerr.Wrap(err, xmlutil.Path(n),
		fmt.Sprintf("section named as '%s' has invalid content", xmlutil.Name(n)))
}

// attribute converts the value of a validated attribute
func attribute[T any](n *xmlquery.Node, attrs map[string]string, name string) (T, error) {
	v, err := value.Parse[T](attrs[name])
	if err != nil {
		return v, scanerr.Wrap(err, xmlutil.Path(n),
			fmt.Sprintf("failed to get value from the '%s' attribute", name))
	}
	return v, nil
}

// optional converts the value of the child section name into dst when
// the section is present. An absent section leaves dst unchanged.
func optional[T any](n *xmlquery.Node, values map[string]string, name string, dst *T) error {
	text, ok := values[name]
	if !ok {
		return nil
	}
	v, err := value.Parse[T](text)
	if err != nil {
		return scanerr.Wrap(err, xmlutil.Path(n),
			fmt.Sprintf("failed to get value from the '%s' section", name))
	}
	*dst = v
	return nil
}

// floats converts the named attributes, in order
func floats(n *xmlquery.Node, attrs map[string]string, names ...string) ([]float32, error) {
	out := make([]float32, len(names))
	for i, name := range names {
		v, err := attribute[float32](n, attrs, name)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// person reads the document level person section
func (b *builder) person(n *xmlquery.Node) (p model.Person, err error) {
	if err = expect(n, "person"); err != nil {
		return p, err
	}
	defer func() { err = invalid(n, err) }()

	attrs, err := schema.CheckAttributes(n, "gender")
	if err != nil {
		return p, err
	}
	p = model.DefaultPerson()
	if p.Gender, err = attribute[model.Gender](n, attrs, "gender"); err != nil {
		return model.Person{}, err
	}
	values, err := schema.CheckSingleSections(n, schema.Sections{"name": false, "group": false})
	if err != nil {
		return model.Person{}, err
	}
	if err = optional(n, values, "name", &p.Name); err != nil {
		return model.Person{}, err
	}
	if err = optional(n, values, "group", &p.AgeGroup); err != nil {
		return model.Person{}, err
	}
	return p, nil
}

// scanPerson is the per scan person section, which holds the details
// that change between scans
type scanPerson struct {
	age            uint
	weight, height float32
}

func (b *builder) scanPerson(n *xmlquery.Node) (p scanPerson, err error) {
	if err = expect(n, "person"); err != nil {
		return p, err
	}
	defer func() { err = invalid(n, err) }()

	values, err := schema.CheckSingleSections(n, schema.Sections{"age": false, "weight": false, "height": false})
	if err != nil {
		return p, err
	}
	if err = optional(n, values, "age", &p.age); err != nil {
		return scanPerson{}, err
	}
	if err = optional(n, values, "weight", &p.weight); err != nil {
		return scanPerson{}, err
	}
	if err = optional(n, values, "height", &p.height); err != nil {
		return scanPerson{}, err
	}
	return p, nil
}

func (b *builder) consents(n *xmlquery.Node) (c model.Consents, err error) {
	if err = expect(n, "consents"); err != nil {
		return c, err
	}
	defer func() { err = invalid(n, err) }()

	values, err := schema.CheckSingleSections(n, schema.Sections{
		"make_depth_maps_publicly_available":   false,
		"make_color_frames_publicly_available": false,
		"make_scans_publicly_available":        false,
		"do_not_blur_face":                     false,
		"commercial_use":                       false,
	})
	if err != nil {
		return c, err
	}
	for _, f := range []struct {
		name string
		dst  *bool
	}{
		{"make_depth_maps_publicly_available", &c.MakeDepthMapsPubliclyAvailable},
		{"make_color_frames_publicly_available", &c.MakeColorFramesPubliclyAvailable},
		{"make_scans_publicly_available", &c.MakeScansPubliclyAvailable},
		{"do_not_blur_face", &c.DoNotBlurFace},
		{"commercial_use", &c.CommercialUse},
	} {
		if err = optional(n, values, f.name, f.dst); err != nil {
			return model.Consents{}, err
		}
	}
	return c, nil
}

func (b *builder) tags(n *xmlquery.Node) (t model.Tags, err error) {
	if err = expect(n, "tags"); err != nil {
		return t, err
	}
	defer func() { err = invalid(n, err) }()

	values, err := schema.CheckSingleSections(n, schema.Sections{
		"hairstyle": false,
		"clothing":  false,
		"shoes":     false,
		"lighting":  false,
		"placement": false,
	})
	if err != nil {
		return t, err
	}
	for _, parse := range []func() error{
		func() error { return optional(n, values, "hairstyle", &t.Hairstyle) },
		func() error { return optional(n, values, "clothing", &t.Clothing) },
		func() error { return optional(n, values, "shoes", &t.Shoes) },
		func() error { return optional(n, values, "lighting", &t.Lighting) },
		func() error { return optional(n, values, "placement", &t.Placement) },
	} {
		if err = parse(); err != nil {
			return model.Tags{}, err
		}
	}
	return t, nil
}

func (b *builder) garments(n *xmlquery.Node) (g []model.Garment, err error) {
	if err = expect(n, "garments"); err != nil {
		return nil, err
	}
	defer func() { err = invalid(n, err) }()

	values, err := schema.CheckSections(n, schema.Sections{"item": true})
	if err != nil {
		return nil, err
	}
	for _, text := range values["item"] {
		v, err := value.Parse[model.Garment](text)
		if err != nil {
			return nil, scanerr.Wrap(err, xmlutil.Path(n),
				"failed to get value from the 'item' section")
		}
		g = append(g, v)
	}
	return g, nil
}

// camera reads a depth, color or ir section. The returned path is as
// written in the document.
func (b *builder) camera(n *xmlquery.Node) (c model.Camera, path string, err error) {
	if err = expect(n, "depth", "color", "ir"); err != nil {
		return c, "", err
	}
	defer func() { err = invalid(n, err) }()

	attrs, err := schema.CheckAttributes(n, "path", "width", "height")
	if err != nil {
		return c, "", err
	}
	if c.Width, err = attribute[uint](n, attrs, "width"); err != nil {
		return model.Camera{}, "", err
	}
	if c.Height, err = attribute[uint](n, attrs, "height"); err != nil {
		return model.Camera{}, "", err
	}
	if _, err = schema.CheckSections(n, schema.Sections{"intrinsics": false, "extrinsics": false}); err != nil {
		return model.Camera{}, "", err
	}

	in := xmlutil.FirstElement(n, "intrinsics")
	if in == nil {
		return model.Camera{}, "", scanerr.At(xmlutil.Path(n), scanerr.MissingElement("intrinsics"))
	}
	if err = b.intrinsics(in, &c); err != nil {
		return model.Camera{}, "", err
	}
	ex := xmlutil.FirstElement(n, "extrinsics")
	if ex == nil {
		return model.Camera{}, "", scanerr.At(xmlutil.Path(n), scanerr.MissingElement("extrinsics"))
	}
	if err = b.extrinsics(ex, &c); err != nil {
		return model.Camera{}, "", err
	}
	return c, attrs["path"], nil
}

func (b *builder) intrinsics(n *xmlquery.Node, c *model.Camera) (err error) {
	defer func() { err = invalid(n, err) }()
	attrs, err := schema.CheckAttributes(n, "cx", "cy", "fx", "fy")
	if err != nil {
		return err
	}
	v, err := floats(n, attrs, "cx", "cy", "fx", "fy")
	if err != nil {
		return err
	}
	c.Cx, c.Cy, c.Fx, c.Fy = v[0], v[1], v[2], v[3]
	return nil
}

var (
	rotationAttrs = []string{
		"rot11", "rot12", "rot13",
		"rot21", "rot22", "rot23",
		"rot31", "rot32", "rot33",
	}
	translationAttrs = []string{"trans1", "trans2", "trans3"}
	extrinsicAttrs   = append(append([]string(nil), rotationAttrs...), translationAttrs...)
)

func (b *builder) extrinsics(n *xmlquery.Node, c *model.Camera) (err error) {
	defer func() { err = invalid(n, err) }()
	attrs, err := schema.CheckAttributes(n, extrinsicAttrs...)
	if err != nil {
		return err
	}
	rot, err := floats(n, attrs, rotationAttrs...)
	if err != nil {
		return err
	}
	trans, err := floats(n, attrs, translationAttrs...)
	if err != nil {
		return err
	}
	for i := range rot {
		c.Rotation[i/3][i%3] = rot[i]
	}
	copy(c.Offset[:], trans)
	return nil
}

func (b *builder) stream(n *xmlquery.Node) (s model.Stream, err error) {
	if err = expect(n, "stream"); err != nil {
		return s, err
	}
	defer func() { err = invalid(n, err) }()

	if _, err = schema.CheckSections(n, schema.Sections{"depth": false, "color": false, "ir": false}); err != nil {
		return s, err
	}
	attrs, err := schema.CheckAttributes(n, "sensor", "sensor_data")
	if err != nil {
		return s, err
	}
	sensor, err := attribute[model.SensorType](n, attrs, "sensor")
	if err != nil {
		return s, err
	}

	var sets [3]*model.FrameSet
	for i, name := range []string{"depth", "color", "ir"} {
		c := xmlutil.FirstElement(n, name)
		if c == nil {
			continue
		}
		camera, rel, err := b.camera(c)
		if err != nil {
			return s, err
		}
		path, err := b.fs.Resolve(b.dir, rel)
		if err != nil {
			return s, invalid(c, scanerr.At(xmlutil.Path(c), err))
		}
		sets[i] = &model.FrameSet{Camera: camera, Path: path}
	}
	if sets[0] == nil && sets[1] == nil && sets[2] == nil {
		return s, scanerr.At(xmlutil.Path(n), scanerr.Constraint("at least one sensor-data section must be provided"))
	}
	return model.NewStream(sensor, attrs["sensor_data"], sets[0], sets[1], sets[2]), nil
}

var boundingBoxAttrs = []string{"min_x", "min_y", "min_z", "max_x", "max_y", "max_z"}

func (b *builder) boundingBox(n *xmlquery.Node) (bbox model.BoundingBox, err error) {
	if err = expect(n, "bounding_box"); err != nil {
		return bbox, err
	}
	defer func() { err = invalid(n, err) }()

	attrs, err := schema.CheckAttributes(n, boundingBoxAttrs...)
	if err != nil {
		return bbox, err
	}
	v, err := floats(n, attrs, boundingBoxAttrs...)
	if err != nil {
		return bbox, err
	}
	return model.NewBoundingBox(model.Vec3{v[0], v[1], v[2]}, model.Vec3{v[3], v[4], v[5]}), nil
}

func (b *builder) stage(n *xmlquery.Node) (st model.Stage, err error) {
	if err = expect(n, "stage"); err != nil {
		return st, err
	}
	defer func() { err = invalid(n, err) }()

	attrs, err := schema.CheckAttributes(n, "pass")
	if err != nil {
		return st, err
	}
	pass, err := attribute[model.ScanPass](n, attrs, "pass")
	if err != nil {
		return st, err
	}
	if _, err = schema.CheckSections(n, schema.Sections{"bounding_box": false, "stream": true}); err != nil {
		return st, err
	}

	bn := xmlutil.FirstElement(n, "bounding_box")
	if bn == nil {
		return st, scanerr.At(xmlutil.Path(n), scanerr.MissingElement("bounding_box"))
	}
	bbox, err := b.boundingBox(bn)
	if err != nil {
		return st, err
	}

	nodes := xmlquery.QuerySelectorAll(n, xpStrm)
	if len(nodes) == 0 {
		return st, scanerr.At(xmlutil.Path(n), scanerr.MissingElement("stream"))
	}
	streams := make([]model.Stream, 0, len(nodes))
	for _, sn := range nodes {
		s, err := b.stream(sn)
		if err != nil {
			return st, err
		}
		streams = append(streams, s)
	}
	return model.NewStage(pass, bbox, streams), nil
}

func (b *builder) scan(n *xmlquery.Node) (sc model.Scanogram, err error) {
	if err = expect(n, "scan"); err != nil {
		return sc, err
	}
	defer func() { err = invalid(n, err) }()

	attrs, err := schema.CheckAttributes(n, "scanner", "date")
	if err != nil {
		return sc, err
	}
	var info model.ScanogramInfo
	if info.Scanner, err = attribute[model.ScannerType](n, attrs, "scanner"); err != nil {
		return sc, err
	}
	if info.DateTime, err = attribute[time.Time](n, attrs, "date"); err != nil {
		return sc, err
	}
	if _, err = schema.CheckSections(n, schema.Sections{
		"person":   false,
		"consents": false,
		"tags":     false,
		"garments": false,
		"stage":    true,
	}); err != nil {
		return sc, err
	}

	if c := xmlutil.FirstElement(n, "person"); c != nil {
		p, err := b.scanPerson(c)
		if err != nil {
			return sc, err
		}
		info.Age, info.Weight, info.Height = p.age, p.weight, p.height
	}
	if c := xmlutil.FirstElement(n, "consents"); c != nil {
		if info.Consents, err = b.consents(c); err != nil {
			return sc, err
		}
	}
	if c := xmlutil.FirstElement(n, "tags"); c != nil {
		if info.Tags, err = b.tags(c); err != nil {
			return sc, err
		}
	}
	if c := xmlutil.FirstElement(n, "garments"); c != nil {
		if info.Garments, err = b.garments(c); err != nil {
			return sc, err
		}
	}

	nodes := xmlquery.QuerySelectorAll(n, xpStage)
	if len(nodes) == 0 {
		return sc, scanerr.At(xmlutil.Path(n), scanerr.MissingElement("stage"))
	}
	for _, sn := range nodes {
		st, err := b.stage(sn)
		if err != nil {
			return sc, err
		}
		info.Stages = append(info.Stages, st)
	}
	return model.NewScanogram(info), nil
}

// document interprets the parsed DOM rooted at doc
func (b *builder) document(doc *xmlquery.Node) (d *model.Document, err error) {
	root := xmlquery.QuerySelector(doc, xpRoot)
	if root == nil {
		return nil, scanerr.At("/", scanerr.MalformedDocument())
	}
	if err = expect(root, RootTag); err != nil {
		return nil, err
	}
	defer func() { err = invalid(root, err) }()

	if _, err = schema.CheckSections(root, schema.Sections{"person": false, "scan": true}); err != nil {
		return nil, err
	}
	person := model.DefaultPerson()
	if c := xmlutil.FirstElement(root, "person"); c != nil {
		if person, err = b.person(c); err != nil {
			return nil, err
		}
	}

	nodes := xmlquery.QuerySelectorAll(root, xpScan)
	if len(nodes) == 0 {
		return nil, scanerr.At(xmlutil.Path(root), scanerr.Constraint("at least one scan must be provided"))
	}
	scans := make([]model.Scanogram, 0, len(nodes))
	for _, sn := range nodes {
		sc, err := b.scan(sn)
		if err != nil {
			return nil, err
		}
		scans = append(scans, sc)
	}
	return model.NewDocument(person, scans), nil
}
