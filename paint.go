package deskscene

import (
	"image"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	// nearPlaneZ is the camera-space depth faces are clipped against.
	nearPlaneZ = 0.5
	// conversionFactor scales camera space onto the screen.
	conversionFactor = 700
)

var (
	whiteImage = ebiten.NewImage(3, 3)
	whiteSub   *ebiten.Image
)

func init() {
	whiteImage.Fill(color.White)
	whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// framePolygon is one projected, shaded face waiting to be painted.
type framePolygon struct {
	xs    []float32
	ys    []float32
	depth float64
	col   color.RGBA
}

// frameBatch collects every polygon of a frame so they can be painted in a
// single far-to-near pass.
type frameBatch struct {
	polys []framePolygon
}

func (b *frameBatch) add(p framePolygon) {
	b.polys = append(b.polys, p)
}

func (b *frameBatch) reset() {
	b.polys = b.polys[:0]
}

// sorted orders the batch far to near. The sort is stable so faces at the
// same depth keep their submission order.
func (b *frameBatch) sorted() []framePolygon {
	sort.SliceStable(b.polys, func(i, j int) bool {
		return b.polys[i].depth > b.polys[j].depth
	})
	return b.polys
}

func (b *frameBatch) paint(screen *ebiten.Image, wireframe bool) {
	outline := color.RGBA{R: 40, G: 40, B: 48, A: 255}
	for _, p := range b.sorted() {
		fillConvexPolygon(screen, p.xs, p.ys, p.col)
		if wireframe {
			drawPolygonOutline(screen, p.xs, p.ys, 1, outline)
		}
	}
}

func fillConvexPolygon(screen *ebiten.Image, xp, yp []float32, clr color.RGBA) {
	if len(xp) < 3 {
		return
	}

	indices := make([]uint16, 0, (len(xp)-2)*3)
	for i := 2; i < len(xp); i++ {
		indices = append(indices, 0, uint16(i-1), uint16(i))
	}

	vertices := make([]ebiten.Vertex, len(xp))
	cr := float32(clr.R) / 255.0
	cg := float32(clr.G) / 255.0
	cb := float32(clr.B) / 255.0
	ca := float32(clr.A) / 255.0

	for i := range xp {
		vertices[i] = ebiten.Vertex{
			DstX:   xp[i],
			DstY:   yp[i],
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		}
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	screen.DrawTriangles(vertices, indices, whiteSub, op)
}

// drawPolygonOutline strokes the edges of a polygon, used for the wireframe
// overlay.
func drawPolygonOutline(screen *ebiten.Image, xp, yp []float32, strokeWidth float32, clr color.RGBA) {
	if len(xp) < 2 {
		return
	}

	var path vector.Path
	path.MoveTo(xp[0], yp[0])
	for i := 1; i < len(xp); i++ {
		path.LineTo(xp[i], yp[i])
	}
	path.Close()

	strokeOp := &vector.StrokeOptions{Width: strokeWidth}
	vertices, indices := path.AppendVerticesAndIndicesForStroke(nil, nil, strokeOp)

	cr := float32(clr.R) / 255.0
	cg := float32(clr.G) / 255.0
	cb := float32(clr.B) / 255.0
	ca := float32(clr.A) / 255.0
	for i := range vertices {
		vertices[i].ColorR = cr
		vertices[i].ColorG = cg
		vertices[i].ColorB = cb
		vertices[i].ColorA = ca
		vertices[i].SrcX = 1
		vertices[i].SrcY = 1
	}

	drawOp := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(vertices, indices, whiteSub, drawOp)
}

// clipAgainstNearPlane cuts a camera-space polygon to z >= nearPlaneZ,
// emitting intersection points where edges cross the plane. An empty result
// means the face is entirely behind the camera.
func clipAgainstNearPlane(pts []Vector3) []Vector3 {
	out := make([]Vector3, 0, len(pts)+1)
	for i := range pts {
		cur := pts[i]
		prev := pts[(i+len(pts)-1)%len(pts)]
		curIn := cur.Z >= nearPlaneZ
		prevIn := prev.Z >= nearPlaneZ

		if curIn != prevIn {
			t := (nearPlaneZ - prev.Z) / (cur.Z - prev.Z)
			out = append(out, prev.Add(cur.Sub(prev).Mult(t)))
		}
		if curIn {
			out = append(out, cur)
		}
	}
	return out
}

// projectPoint maps a camera-space point onto the screen. Y is flipped so +y
// in camera space is up on screen.
func projectPoint(p Vector3, width, height int) (float32, float32) {
	x := conversionFactor*p.X/p.Z + float64(width)/2
	y := -conversionFactor*p.Y/p.Z + float64(height)/2
	return float32(x), float32(y)
}
