package assets

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Heart geometry in design units. The heart is 25 units wide and its
// anchor (0, 0) sits between the two lobes.
const (
	heartUnitWidth = 25.0
	heartUnitTop   = -12.0
	heartUnitBot   = 20.0
	heartPx        = 64.0 // pixels per heart width in the cached images
	heartPad       = 4.0
	heartScale     = heartPx / heartUnitWidth
)

var (
	heartFill    *ebiten.Image
	heartOutline *ebiten.Image
	whitePixel   *ebiten.Image
)

// HeartOrigin is the pixel position of the heart anchor inside the heart images
var HeartOrigin = struct{ X, Y float64 }{
	X: heartPx/2 + heartPad,
	Y: -heartUnitTop*heartScale + heartPad,
}

// HeartWidth is the pixel width of the heart inside the heart images
const HeartWidth = heartPx

// HeartFill returns a white filled heart for tinting
func HeartFill() *ebiten.Image {
	if heartFill == nil {
		heartFill, heartOutline = renderHeart()
	}
	return heartFill
}

// HeartOutline returns a white heart outline for tinting
func HeartOutline() *ebiten.Image {
	if heartOutline == nil {
		heartFill, heartOutline = renderHeart()
	}
	return heartOutline
}

func heartPath() *vector.Path {
	ox, oy := float32(HeartOrigin.X), float32(HeartOrigin.Y)
	s := float32(heartScale)
	pt := func(x, y float32) (float32, float32) { return ox + x*s, oy + y*s }

	var p vector.Path
	p.MoveTo(pt(12.5, 2))
	cubic := func(x1, y1, x2, y2, x3, y3 float32) {
		ax, ay := pt(x1, y1)
		bx, by := pt(x2, y2)
		cx, cy := pt(x3, y3)
		p.CubicTo(ax, ay, bx, by, cx, cy)
	}
	cubic(12.5, -5, 6, -12, 0, -7)
	cubic(-6, -12, -12.5, -5, -12.5, 2)
	cubic(-12.5, 12, -5, 20, 0, 18)
	cubic(5, 20, 12.5, 12, 12.5, 2)
	p.Close()
	return &p
}

func renderHeart() (fill, outline *ebiten.Image) {
	if whitePixel == nil {
		base := ebiten.NewImage(3, 3)
		base.Fill(color.White)
		whitePixel = base.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	w := int(heartPx + 2*heartPad)
	hf := (heartUnitBot-heartUnitTop)*heartScale + 2*heartPad
	h := int(hf)
	path := heartPath()

	fill = ebiten.NewImage(w, h)
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	drawWhite(fill, vs, is, ebiten.FillRuleNonZero)

	outline = ebiten.NewImage(w, h)
	vs, is = path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
		Width:    1.5 * heartScale,
		LineJoin: vector.LineJoinRound,
	})
	drawWhite(outline, vs, is, ebiten.FillRuleFillAll)

	return fill, outline
}

func drawWhite(dst *ebiten.Image, vs []ebiten.Vertex, is []uint16, rule ebiten.FillRule) {
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = 1
		vs[i].ColorG = 1
		vs[i].ColorB = 1
		vs[i].ColorA = 1
	}
	dst.DrawTriangles(vs, is, whitePixel, &ebiten.DrawTrianglesOptions{
		FillRule:  rule,
		AntiAlias: true,
	})
}
