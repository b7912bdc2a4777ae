package deskscene

import (
	"image/color"
	"testing"
)

func TestClipAgainstNearPlane(t *testing.T) {
	testCases := []struct {
		name     string
		input    []Vector3
		expected []Vector3
	}{
		{
			name: "Polygon fully in front of near plane",
			input: []Vector3{
				Vec3(0, 0, 2),
				Vec3(1, 0, 2),
				Vec3(0, 1, 2),
			},
			expected: []Vector3{
				Vec3(0, 0, 2),
				Vec3(1, 0, 2),
				Vec3(0, 1, 2),
			},
		},
		{
			name: "Polygon fully behind near plane",
			input: []Vector3{
				Vec3(0, 0, 0.1),
				Vec3(1, 0, 0.1),
				Vec3(0, 1, 0.1),
			},
			expected: []Vector3{},
		},
		{
			name: "Polygon with one point in front",
			input: []Vector3{
				Vec3(0, 0, 1),
				Vec3(0, 1, 0),
				Vec3(1, 0, 0),
			},
			expected: []Vector3{
				Vec3(0.5, 0, 0.5),
				Vec3(0, 0, 1),
				Vec3(0, 0.5, 0.5),
			},
		},
		{
			name: "Polygon with two points in front",
			input: []Vector3{
				Vec3(0, 0, 0),
				Vec3(0, 1, 1),
				Vec3(1, 0, 1),
			},
			expected: []Vector3{
				Vec3(0.5, 0, 0.5),
				Vec3(0, 0.5, 0.5),
				Vec3(0, 1, 1),
				Vec3(1, 0, 1),
			},
		},
		{
			name: "Point exactly on the plane is kept",
			input: []Vector3{
				Vec3(0, 0, 0.5),
				Vec3(1, 0, 2),
				Vec3(0, 1, 2),
			},
			expected: []Vector3{
				Vec3(0, 0, 0.5),
				Vec3(1, 0, 2),
				Vec3(0, 1, 2),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := clipAgainstNearPlane(tc.input)
			if len(got) != len(tc.expected) {
				t.Fatalf("got %d points, want %d: %+v", len(got), len(tc.expected), got)
			}
			for i := range got {
				if !vecAlmostEqual(got[i], tc.expected[i]) {
					t.Errorf("point %d: got %+v, want %+v", i, got[i], tc.expected[i])
				}
			}
		})
	}
}

func TestFrameBatchSortsFarToNear(t *testing.T) {
	var b frameBatch
	b.add(framePolygon{depth: 5, col: color.RGBA{R: 1}})
	b.add(framePolygon{depth: 20, col: color.RGBA{R: 2}})
	b.add(framePolygon{depth: 11, col: color.RGBA{R: 3}})

	sorted := b.sorted()
	depths := []float64{sorted[0].depth, sorted[1].depth, sorted[2].depth}
	if depths[0] != 20 || depths[1] != 11 || depths[2] != 5 {
		t.Errorf("order %v", depths)
	}
}

func TestFrameBatchStableAtEqualDepth(t *testing.T) {
	var b frameBatch
	b.add(framePolygon{depth: 7, col: color.RGBA{R: 1}})
	b.add(framePolygon{depth: 7, col: color.RGBA{R: 2}})

	sorted := b.sorted()
	if sorted[0].col.R != 1 || sorted[1].col.R != 2 {
		t.Error("equal-depth polygons reordered")
	}
}

func TestFrameBatchReset(t *testing.T) {
	var b frameBatch
	b.add(framePolygon{depth: 1})
	b.reset()
	if len(b.polys) != 0 {
		t.Errorf("len %d after reset", len(b.polys))
	}
}

func TestProjectPoint(t *testing.T) {
	// A point on the view axis lands dead center.
	x, y := projectPoint(Vec3(0, 0, 10), 960, 720)
	if !almostEqual(float64(x), 480) || !almostEqual(float64(y), 360) {
		t.Errorf("center projected to (%v, %v)", x, y)
	}

	// Camera-space up is screen up, which is smaller y.
	_, yUp := projectPoint(Vec3(0, 1, 10), 960, 720)
	if yUp >= y {
		t.Errorf("up projected downward: %v vs %v", yUp, y)
	}

	// Farther points pull toward center.
	xNear, _ := projectPoint(Vec3(2, 0, 10), 960, 720)
	xFar, _ := projectPoint(Vec3(2, 0, 40), 960, 720)
	if !(xFar < xNear && xFar > 480) {
		t.Errorf("perspective off: near %v, far %v", xNear, xFar)
	}
}
