package deskscene

import (
	"fmt"
	"math"
)

const (
	meshSegments   = 24
	sphereRings    = 12
	torusSides     = 8
	torusTubeR     = 0.25
	taperTopRadius = 0.5
)

// MeshFace is one planar convex face of a generated mesh. Points wind
// counter-clockwise when viewed from the outside.
type MeshFace struct {
	Points []Vector3
	Normal Vector3
}

// MeshGeom holds the unit-space geometry for one primitive kind. Meshes are
// generated once and shared by every draw of that kind.
type MeshGeom struct {
	Kind  MeshKind
	Faces []MeshFace
}

// GenerateMesh builds the unit geometry for a primitive kind.
//
// Unit conventions: the plane spans x,z in [-1,1] at y=0 facing +y; the box
// is centered with half-extent 0.5; the sphere has radius 1; cylinders and
// the cone have radius 1 with y in [0,1]; the torus has ring radius 1 in the
// XY plane.
func GenerateMesh(kind MeshKind) (*MeshGeom, error) {
	var faces []MeshFace
	switch kind {
	case MeshPlane:
		faces = planeFaces()
	case MeshBox:
		faces = boxFaces()
	case MeshSphere:
		faces = sphereFaces()
	case MeshCylinder:
		faces = cylinderFaces(1, 1)
	case MeshTaperedCylinder:
		faces = cylinderFaces(1, taperTopRadius)
	case MeshCone:
		faces = coneFaces()
	case MeshTorus:
		faces = torusFaces()
	default:
		return nil, fmt.Errorf("unknown mesh kind %d", int(kind))
	}
	return &MeshGeom{Kind: kind, Faces: faces}, nil
}

func planeFaces() []MeshFace {
	return []MeshFace{{
		Points: []Vector3{
			Vec3(-1, 0, -1),
			Vec3(-1, 0, 1),
			Vec3(1, 0, 1),
			Vec3(1, 0, -1),
		},
		Normal: Vec3(0, 1, 0),
	}}
}

func boxFaces() []MeshFace {
	const h = 0.5
	quad := func(a, b, c, d, n Vector3) MeshFace {
		return MeshFace{Points: []Vector3{a, b, c, d}, Normal: n}
	}
	return []MeshFace{
		quad(Vec3(-h, -h, -h), Vec3(-h, h, -h), Vec3(h, h, -h), Vec3(h, -h, -h), Vec3(0, 0, -1)),
		quad(Vec3(h, -h, h), Vec3(h, h, h), Vec3(-h, h, h), Vec3(-h, -h, h), Vec3(0, 0, 1)),
		quad(Vec3(-h, -h, h), Vec3(-h, h, h), Vec3(-h, h, -h), Vec3(-h, -h, -h), Vec3(-1, 0, 0)),
		quad(Vec3(h, -h, -h), Vec3(h, h, -h), Vec3(h, h, h), Vec3(h, -h, h), Vec3(1, 0, 0)),
		quad(Vec3(-h, h, -h), Vec3(-h, h, h), Vec3(h, h, h), Vec3(h, h, -h), Vec3(0, 1, 0)),
		quad(Vec3(-h, -h, h), Vec3(-h, -h, -h), Vec3(h, -h, -h), Vec3(h, -h, h), Vec3(0, -1, 0)),
	}
}

func sphereFaces() []MeshFace {
	var faces []MeshFace
	point := func(ring, seg int) Vector3 {
		phi := math.Pi * float64(ring) / sphereRings
		theta := 2 * math.Pi * float64(seg) / meshSegments
		return Vec3(
			math.Sin(phi)*math.Cos(theta),
			math.Cos(phi),
			math.Sin(phi)*math.Sin(theta),
		)
	}
	for ring := 0; ring < sphereRings; ring++ {
		for seg := 0; seg < meshSegments; seg++ {
			a := point(ring, seg)
			b := point(ring+1, seg)
			c := point(ring+1, seg+1)
			d := point(ring, seg+1)
			var pts []Vector3
			switch ring {
			case 0:
				pts = []Vector3{a, b, c} // top cap triangle
			case sphereRings - 1:
				pts = []Vector3{a, b, d} // bottom cap triangle
			default:
				pts = []Vector3{a, b, c, d}
			}
			faces = append(faces, MeshFace{
				Points: pts,
				Normal: faceNormal(pts, Vec3(0, 0, 0)),
			})
		}
	}
	return faces
}

// cylinderFaces builds a capped cylinder with y in [0,1]. topR below botR
// gives the tapered variant; the caps stay single convex polygons.
func cylinderFaces(botR, topR float64) []MeshFace {
	var faces []MeshFace
	rim := func(r, y, theta float64) Vector3 {
		return Vec3(r*math.Cos(theta), y, r*math.Sin(theta))
	}
	interior := Vec3(0, 0.5, 0)
	for seg := 0; seg < meshSegments; seg++ {
		t0 := 2 * math.Pi * float64(seg) / meshSegments
		t1 := 2 * math.Pi * float64(seg+1) / meshSegments
		pts := []Vector3{
			rim(botR, 0, t0),
			rim(topR, 1, t0),
			rim(topR, 1, t1),
			rim(botR, 0, t1),
		}
		faces = append(faces, MeshFace{Points: pts, Normal: faceNormal(pts, interior)})
	}
	bottom := make([]Vector3, meshSegments)
	top := make([]Vector3, meshSegments)
	for seg := 0; seg < meshSegments; seg++ {
		theta := 2 * math.Pi * float64(seg) / meshSegments
		bottom[seg] = rim(botR, 0, theta)
		top[meshSegments-1-seg] = rim(topR, 1, theta)
	}
	faces = append(faces,
		MeshFace{Points: bottom, Normal: Vec3(0, -1, 0)},
		MeshFace{Points: top, Normal: Vec3(0, 1, 0)},
	)
	return faces
}

func coneFaces() []MeshFace {
	var faces []MeshFace
	apex := Vec3(0, 1, 0)
	interior := Vec3(0, 0.25, 0)
	rim := func(theta float64) Vector3 {
		return Vec3(math.Cos(theta), 0, math.Sin(theta))
	}
	base := make([]Vector3, meshSegments)
	for seg := 0; seg < meshSegments; seg++ {
		t0 := 2 * math.Pi * float64(seg) / meshSegments
		t1 := 2 * math.Pi * float64(seg+1) / meshSegments
		pts := []Vector3{rim(t0), apex, rim(t1)}
		faces = append(faces, MeshFace{Points: pts, Normal: faceNormal(pts, interior)})
		base[seg] = rim(t0)
	}
	faces = append(faces, MeshFace{Points: base, Normal: Vec3(0, -1, 0)})
	return faces
}

func torusFaces() []MeshFace {
	var faces []MeshFace
	point := func(seg, side int) Vector3 {
		u := 2 * math.Pi * float64(seg) / meshSegments
		v := 2 * math.Pi * float64(side) / torusSides
		r := 1 + torusTubeR*math.Cos(v)
		return Vec3(r*math.Cos(u), r*math.Sin(u), torusTubeR*math.Sin(v))
	}
	ringCenter := func(seg int) Vector3 {
		u := 2 * math.Pi * float64(seg) / meshSegments
		return Vec3(math.Cos(u), math.Sin(u), 0)
	}
	for seg := 0; seg < meshSegments; seg++ {
		interior := ringCenter(seg)
		for side := 0; side < torusSides; side++ {
			pts := []Vector3{
				point(seg, side),
				point(seg, side+1),
				point(seg+1, side+1),
				point(seg+1, side),
			}
			faces = append(faces, MeshFace{Points: pts, Normal: faceNormal(pts, interior)})
		}
	}
	return faces
}

// faceNormal gives the unit normal of a planar face, flipped if needed so it
// points away from the given interior reference point.
func faceNormal(pts []Vector3, interior Vector3) Vector3 {
	n := pts[1].Sub(pts[0]).Cross(pts[2].Sub(pts[0])).Normalized()
	if n.Dot(pts[0].Sub(interior)) < 0 {
		n = n.Mult(-1)
	}
	return n
}
