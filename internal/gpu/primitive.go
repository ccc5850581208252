// Package gpu defines the drawable primitives of the demo and the ordering
// table that sorts them into depth buckets for one frame.
package gpu

import (
	"fmt"
	"image"

	"github.com/vovakirdan/firescreen/internal/core"
)

// Kind tags the variant held by a Primitive.
type Kind uint8

const (
	KindNone Kind = iota
	KindFillRect
	KindTile
	KindSprite
	KindQuad
	KindDrawArea
	KindDrawOffset
	KindTexPage
)

// String returns the primitive kind name.
func (k Kind) String() string {
	switch k {
	case KindFillRect:
		return "FillRect"
	case KindTile:
		return "Tile"
	case KindSprite:
		return "Sprite"
	case KindQuad:
		return "Quad"
	case KindDrawArea:
		return "DrawArea"
	case KindDrawOffset:
		return "DrawOffset"
	case KindTexPage:
		return "TexPage"
	default:
		return "None"
	}
}

// Primitive is a plain record describing one drawing command. Which fields
// are meaningful depends on Kind:
//
//	FillRect    Rect (absolute VRAM coordinates, ignores the draw area), Color
//	Tile        Rect (relative to the draw offset), Color
//	Sprite      Rect, UV (texel origin inside the current texture page)
//	Quad        Rect, UV, TexSize (texel region scaled onto Rect)
//	DrawArea    Rect (absolute clip rectangle)
//	DrawOffset  Rect.Min (origin added to Tile/Sprite/Quad coordinates)
//	TexPage     UV (absolute VRAM origin of the texture page)
type Primitive struct {
	Kind    Kind
	Rect    image.Rectangle
	UV      image.Point
	TexSize image.Point
	Color   core.RGB

	next int32
}

// String formats the primitive for logs and test failures.
func (p Primitive) String() string {
	return fmt.Sprintf("%s{rect=%v uv=%v color=%v}", p.Kind, p.Rect, p.UV, p.Color)
}

// FillRect clears r in absolute VRAM coordinates.
func FillRect(r image.Rectangle, c core.RGB) Primitive {
	return Primitive{Kind: KindFillRect, Rect: r, Color: c}
}

// Tile is a flat-coloured w×h rectangle at (x, y).
func Tile(x, y, w, h int, c core.RGB) Primitive {
	return Primitive{Kind: KindTile, Rect: image.Rect(x, y, x+w, y+h), Color: c}
}

// Sprite copies a w×h texel block starting at uv of the current texture page
// to (x, y). Black texels are transparent.
func Sprite(x, y, w, h int, uv image.Point) Primitive {
	return Primitive{Kind: KindSprite, Rect: image.Rect(x, y, x+w, y+h), UV: uv}
}

// Quad maps the texel block (uv, texSize) of the current texture page onto
// the w×h rectangle at (x, y).
func Quad(x, y, w, h int, uv, texSize image.Point) Primitive {
	return Primitive{Kind: KindQuad, Rect: image.Rect(x, y, x+w, y+h), UV: uv, TexSize: texSize}
}

// DrawArea sets the clip rectangle for subsequent primitives.
func DrawArea(r image.Rectangle) Primitive {
	return Primitive{Kind: KindDrawArea, Rect: r}
}

// DrawOffset sets the origin for subsequent primitives.
func DrawOffset(p image.Point) Primitive {
	return Primitive{Kind: KindDrawOffset, Rect: image.Rectangle{Min: p, Max: p}}
}

// TexPage selects the texture page whose top-left VRAM corner is base.
func TexPage(base image.Point) Primitive {
	return Primitive{Kind: KindTexPage, UV: base}
}
