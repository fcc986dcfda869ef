// Package scenario loads YAML documents describing batches of geometry queries
// and evaluates them.
package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/akmonengine/geoquery/shape"
	"github.com/akmonengine/geoquery/transform"
	"github.com/akmonengine/geoquery/vector"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownKind    = errors.New("unknown query kind")
	ErrMissingField   = errors.New("missing field")
	ErrInvalidEpsilon = errors.New("epsilon must be positive")
)

type Kind string

const (
	KindProject          Kind = "project"
	KindReject           Kind = "reject"
	KindAngle            Kind = "angle"
	KindSignedAngle      Kind = "signed-angle"
	KindClosestOnLine    Kind = "closest-on-line"
	KindClosestOnSegment Kind = "closest-on-segment"
	KindSegmentSegment   Kind = "segment-segment"
	KindRayRay           Kind = "ray-ray"
	KindPlaneDistance    Kind = "plane-distance"
	KindPlaneProject     Kind = "plane-project"
	KindRayPlane         Kind = "ray-plane"
	KindSegmentPlane     Kind = "segment-plane"
	KindWorldToLocal     Kind = "world-to-local"
)

// Document is one scenario file.
type Document struct {
	Name    string  `yaml:"name"`
	Epsilon float64 `yaml:"epsilon,omitempty"`
	Workers int     `yaml:"workers,omitempty"`
	Queries []Query `yaml:"queries"`
}

// Query describes a single call into one of the query packages.
// Which fields are read depends on Kind.
type Query struct {
	ID   string `yaml:"id,omitempty"`
	Kind Kind   `yaml:"kind"`

	Point  *mgl64.Vec3 `yaml:"point,omitempty"`
	Vector *mgl64.Vec3 `yaml:"vector,omitempty"`
	Onto   *mgl64.Vec3 `yaml:"onto,omitempty"`
	From   *mgl64.Vec3 `yaml:"from,omitempty"`
	To     *mgl64.Vec3 `yaml:"to,omitempty"`
	Axis   *mgl64.Vec3 `yaml:"axis,omitempty"`

	Segment      *shape.Segment `yaml:"segment,omitempty"`
	OtherSegment *shape.Segment `yaml:"other_segment,omitempty"`
	Ray          *shape.Ray     `yaml:"ray,omitempty"`
	OtherRay     *shape.Ray     `yaml:"other_ray,omitempty"`
	Plane        *shape.Plane   `yaml:"plane,omitempty"`
	Frame        *Frame         `yaml:"frame,omitempty"`
}

// Frame is a local coordinate frame: a position and a rotation of Angle degrees around Axis.
type Frame struct {
	Position mgl64.Vec3 `yaml:"position"`
	Axis     mgl64.Vec3 `yaml:"axis"`
	Angle    float64    `yaml:"angle"`
}

// Transform builds the frame's transform. A degenerate axis means no rotation.
func (f Frame) Transform() transform.Transform {
	axis := vector.SafeNormalize(f.Axis, vector.Zero)
	if axis == vector.Zero {
		return transform.New(f.Position, mgl64.QuatIdent())
	}
	return transform.New(f.Position, mgl64.QuatRotate(mgl64.DegToRad(f.Angle), axis))
}

// Load decodes and validates a YAML scenario.
// Queries without an id get a random one.
func Load(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}

	if err := doc.validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// LoadFile loads the scenario at path.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if doc.Name == "" {
		doc.Name = path
	}
	return doc, nil
}

// Tolerance returns the document's epsilon, or vector.Epsilon when unset.
func (d *Document) Tolerance() float64 {
	if d.Epsilon == 0 {
		return vector.Epsilon
	}
	return d.Epsilon
}

func (d *Document) validate() error {
	if d.Epsilon < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidEpsilon, d.Epsilon)
	}

	for i := range d.Queries {
		q := &d.Queries[i]
		if q.ID == "" {
			q.ID = uuid.NewString()
		}
		if err := q.validate(); err != nil {
			return fmt.Errorf("query %s: %w", q.ID, err)
		}
	}
	return nil
}

func (q *Query) validate() error {
	var missing []string
	need := func(name string, present bool) {
		if !present {
			missing = append(missing, name)
		}
	}

	switch q.Kind {
	case KindProject, KindReject:
		need("vector", q.Vector != nil)
		need("onto", q.Onto != nil)
	case KindAngle:
		need("from", q.From != nil)
		need("to", q.To != nil)
	case KindSignedAngle:
		need("from", q.From != nil)
		need("to", q.To != nil)
		need("axis", q.Axis != nil)
	case KindClosestOnLine:
		need("point", q.Point != nil)
		need("ray", q.Ray != nil)
	case KindClosestOnSegment:
		need("point", q.Point != nil)
		need("segment", q.Segment != nil)
	case KindSegmentSegment:
		need("segment", q.Segment != nil)
		need("other_segment", q.OtherSegment != nil)
	case KindRayRay:
		need("ray", q.Ray != nil)
		need("other_ray", q.OtherRay != nil)
	case KindPlaneDistance, KindPlaneProject:
		need("point", q.Point != nil)
		need("plane", q.Plane != nil)
	case KindRayPlane:
		need("ray", q.Ray != nil)
		need("plane", q.Plane != nil)
	case KindSegmentPlane:
		need("segment", q.Segment != nil)
		need("plane", q.Plane != nil)
	case KindWorldToLocal:
		need("point", q.Point != nil)
		need("frame", q.Frame != nil)
	default:
		return fmt.Errorf("%w %q", ErrUnknownKind, q.Kind)
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %v for kind %s", ErrMissingField, missing, q.Kind)
	}
	return nil
}
