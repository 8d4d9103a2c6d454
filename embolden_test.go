package outline

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-4)

// hypotenuse of the triangle (0,0) (100,0) (0,10): its outward unit normal.
var (
	hypLen   = math.Hypot(100, 10)
	hypNX    = float32(10 / hypLen)
	hypNY    = float32(100 / hypLen)
	hypApexY = float32(10 + (1+10/hypLen)/(100/hypLen))
)

func TestEmboldenSquare(t *testing.T) {
	o := square(t).Embolden(1)

	want := [][]Point{{{-1, -1}, {11, -1}, {11, 11}, {-1, 11}}}
	if diff := cmp.Diff(want, allPoints(o)); diff != "" {
		t.Errorf("Embolden(1) mismatch (-want +got):\n%s", diff)
	}
	wantVerbs := []Verb{MoveTo, LineTo, LineTo, LineTo, Close}
	if diff := cmp.Diff(wantVerbs, o.Contour(0).Verbs()); diff != "" {
		t.Errorf("Embolden(1) changed verbs (-want +got):\n%s", diff)
	}
}

func TestEmboldenNegativeStrengthThins(t *testing.T) {
	o := square(t).Embolden(-1)

	want := [][]Point{{{1, 1}, {9, 1}, {9, 9}, {1, 9}}}
	if diff := cmp.Diff(want, allPoints(o)); diff != "" {
		t.Errorf("Embolden(-1) mismatch (-want +got):\n%s", diff)
	}
}

func TestEmboldenZeroIsIdentity(t *testing.T) {
	o, err := Build(recordedSource(glyphEvents), 1)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	before := allPoints(o)
	o.Embolden(0)
	if diff := cmp.Diff(before, allPoints(o)); diff != "" {
		t.Errorf("Embolden(0) changed the outline (-want +got):\n%s", diff)
	}
}

func TestEmboldenWindingIndependent(t *testing.T) {
	cw := polygon(t, []Point{{0, 0}, {0, 10}, {10, 10}, {10, 0}}).Embolden(1)

	want := [][]Point{{{-1, -1}, {-1, 11}, {11, 11}, {11, -1}}}
	if diff := cmp.Diff(want, allPoints(cw)); diff != "" {
		t.Errorf("clockwise Embolden(1) mismatch (-want +got):\n%s", diff)
	}
}

func TestEmboldenHoleShrinks(t *testing.T) {
	outer := []Point{{0, 0}, {100, 0}, {100, 100}, {0, 100}}
	hole := []Point{{25, 25}, {25, 75}, {75, 75}, {75, 25}}
	o := polygon(t, outer, hole).Embolden(1)

	want := [][]Point{
		{{-1, -1}, {101, -1}, {101, 101}, {-1, 101}},
		{{26, 26}, {26, 74}, {74, 74}, {74, 26}},
	}
	if diff := cmp.Diff(want, allPoints(o)); diff != "" {
		t.Errorf("Embolden(1) mismatch (-want +got):\n%s", diff)
	}
}

func TestEmboldenCurvedGlyph(t *testing.T) {
	o, err := Build(recordedSource(glyphEvents), 1)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	outerBefore := o.Contour(0).SignedArea()
	holeBefore := math.Abs(o.Contour(1).SignedArea())

	o.Embolden(DefaultEmboldenStrength)

	if got := o.Contour(0).SignedArea(); got <= outerBefore {
		t.Errorf("outer area = %v, want more than %v", got, outerBefore)
	}
	if got := math.Abs(o.Contour(1).SignedArea()); got >= holeBefore {
		t.Errorf("hole area = %v, want less than %v", got, holeBefore)
	}
	if got := o.NumContours(); got != 2 {
		t.Errorf("NumContours() = %d, want 2", got)
	}
}

func TestEmboldenSplitsSharpCorner(t *testing.T) {
	o := polygon(t, []Point{{0, 0}, {100, 0}, {0, 10}}).Embolden(1)

	wantVerbs := []Verb{MoveTo, LineTo, LineTo, LineTo, Close}
	if diff := cmp.Diff(wantVerbs, o.Contour(0).Verbs()); diff != "" {
		t.Errorf("verbs mismatch (-want +got):\n%s", diff)
	}
	want := [][]Point{{
		{-1, -1},
		{100, -1},
		{100 + hypNX, hypNY},
		{-1, hypApexY},
	}}
	if diff := cmp.Diff(want, allPoints(o), approx); diff != "" {
		t.Errorf("points mismatch (-want +got):\n%s", diff)
	}
}

func TestEmboldenSplitsStartVertex(t *testing.T) {
	want := [][]Point{{
		{100 + hypNX, hypNY},
		{-1, hypApexY},
		{-1, -1},
		{100, -1},
	}}
	wantVerbs := []Verb{MoveTo, LineTo, LineTo, LineTo, Close}

	tests := []struct {
		name string
		pts  []Point
	}{
		{"implicit closing edge", []Point{{100, 0}, {0, 10}, {0, 0}}},
		{"explicit closing edge", []Point{{100, 0}, {0, 10}, {0, 0}, {100, 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := polygon(t, tt.pts).Embolden(1)
			if diff := cmp.Diff(wantVerbs, o.Contour(0).Verbs()); diff != "" {
				t.Errorf("verbs mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(want, allPoints(o), approx); diff != "" {
				t.Errorf("points mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEmboldenClosingDuplicateFollowsStart(t *testing.T) {
	pts := append(append([]Point{}, squarePoints...), Pt(0, 0))
	o := polygon(t, pts).Embolden(1)

	want := [][]Point{{{-1, -1}, {11, -1}, {11, 11}, {-1, 11}, {-1, -1}}}
	if diff := cmp.Diff(want, allPoints(o)); diff != "" {
		t.Errorf("Embolden(1) mismatch (-want +got):\n%s", diff)
	}
}

func TestEmboldenCoincidentPoints(t *testing.T) {
	t.Run("normal corner", func(t *testing.T) {
		o := polygon(t, []Point{{0, 0}, {10, 0}, {10, 0}, {10, 10}, {0, 10}}).Embolden(1)
		want := [][]Point{{{-1, -1}, {11, -1}, {11, -1}, {11, 11}, {-1, 11}}}
		if diff := cmp.Diff(want, allPoints(o)); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("sharp corner splits once", func(t *testing.T) {
		o := polygon(t, []Point{{0, 0}, {100, 0}, {100, 0}, {0, 10}}).Embolden(1)
		want := [][]Point{{
			{-1, -1},
			{100, -1},
			{100, -1},
			{100 + hypNX, hypNY},
			{-1, hypApexY},
		}}
		if diff := cmp.Diff(want, allPoints(o), approx); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestEmboldenSharpControlPointIsMiterLimited(t *testing.T) {
	src := SourceFunc(func(_ GlyphID, sink PathSink) error {
		sink.MoveTo(0, 0)
		sink.QuadTo(100, 0, 0, 10)
		sink.ClosePath()
		return nil
	})
	o, err := Build(src, 1)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	o.Embolden(1)

	c := o.Contour(0)
	if diff := cmp.Diff([]Verb{MoveTo, QuadTo, Close}, c.Verbs()); diff != "" {
		t.Fatalf("control point was split (-want +got):\n%s", diff)
	}
	ctrl := c.Points()[1]
	moved := ctrl.Sub(Pt(100, 0)).Length()
	limit := DefaultCornerPolicy().miterLimit()
	if math.Abs(moved-limit) > 1e-4 {
		t.Errorf("control point moved %v, want the miter limit %v", moved, limit)
	}
}

func TestEmboldenSkipsDegenerateContours(t *testing.T) {
	line := []Point{{20, 0}, {30, 0}}
	o := polygon(t, squarePoints, line).Embolden(1)

	if diff := cmp.Diff(line, o.Contour(1).Points()); diff != "" {
		t.Errorf("degenerate contour changed (-want +got):\n%s", diff)
	}

	flat := polygon(t, []Point{{0, 0}, {5, 0}, {10, 0}}).Embolden(1)
	want := [][]Point{{{0, 0}, {5, 0}, {10, 0}}}
	if diff := cmp.Diff(want, allPoints(flat)); diff != "" {
		t.Errorf("outline without area changed (-want +got):\n%s", diff)
	}
}

func TestEmboldenCornerPolicyOption(t *testing.T) {
	// With the convex threshold at -1 no corner is sharp enough to split.
	policy := CornerPolicy{SharpConvexCos: -1, SharpConcaveCos: 0}
	o := polygon(t, []Point{{0, 0}, {100, 0}, {0, 10}}).Embolden(1, WithCornerPolicy(policy))

	if got := o.NumPoints(); got != 3 {
		t.Errorf("NumPoints() = %d, want 3", got)
	}
}

func TestEmboldenThenOblique(t *testing.T) {
	o := square(t).Embolden(1).Oblique(0.5)

	want := [][]Point{{{-1.5, -1}, {10.5, -1}, {16.5, 11}, {4.5, 11}}}
	if diff := cmp.Diff(want, allPoints(o)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestEmboldenNil(t *testing.T) {
	var o *Outline
	if got := o.Embolden(1); got != nil {
		t.Errorf("nil.Embolden() = %v, want nil", got)
	}
	if got := o.Oblique(1); got != nil {
		t.Errorf("nil.Oblique() = %v, want nil", got)
	}
}
