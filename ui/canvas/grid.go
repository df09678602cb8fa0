package canvas

import (
	"swatchbook/internal/cms"
	"swatchbook/pkg/geometry"

	"fyne.io/fyne/v2/driver/desktop"
	"github.com/fogleman/gg"
)

const cellCornerRadius = 20

// colorGrid paints the palette colors as a wrapping grid of rounded
// swatches. It is paint-only: its bounding box stays empty, so it
// never takes part in hit-testing.
type colorGrid struct {
	baseObject
}

func newColorGrid(c *Canvas) *colorGrid {
	return &colorGrid{baseObject: newBaseObject(c)}
}

func (o *colorGrid) Paint(dc *gg.Context) {
	c := o.canvas
	cellW := c.style.CellWidth
	cellH := c.style.CellHeight
	border := c.style.Border

	col, row := 0, 0
	for _, entry := range c.doc.Colors {
		clr := cms.DisplayColor(entry)
		name := cms.ColorName(entry)
		x := border + float64(col)*cellW
		y := border + float64(row)*cellH

		dc.SetRGB(clr.R, clr.G, clr.B)
		dc.DrawRoundedRectangle(x+2, y+2, cellW-4, cellH-4, cellCornerRadius)
		dc.Fill()

		if cms.NeedsOutline(clr) {
			dc.SetColor(c.style.CellBorder)
			dc.DrawRoundedRectangle(x+3, y+3, cellW-6, cellH-6, cellCornerRadius)
			dc.SetLineWidth(1)
			dc.SetDash()
			dc.Stroke()
		}

		txt := cms.TextColor(clr)
		dc.SetRGB(txt.R, txt.G, txt.B)
		if c.faceLabel != nil {
			dc.SetFontFace(c.faceLabel)
		}
		dc.DrawStringAnchored(cms.ToHex(clr), x+cellW/2, y+cellH/2, 0.5, 0.5)
		if c.faceName != nil {
			dc.SetFontFace(c.faceName)
		}
		dc.DrawStringAnchored(name, x+cellW/2, y+cellH/1.5, 0.5, 0.5)

		col++
		if col == c.cellsPerRow {
			col = 0
			row++
		}
	}
}

// addButtonObj is the dashed "add color" placeholder occupying the
// next free grid slot after the last color.
type addButtonObj struct {
	baseObject
}

func newAddButtonObj(c *Canvas) *addButtonObj {
	o := &addButtonObj{baseObject: newBaseObject(c)}
	o.cursor = desktop.PointerCursor
	return o
}

func (o *addButtonObj) OnLeftReleased(PointerEvent) {
	if o.canvas.onAddColor != nil {
		o.canvas.onAddColor()
	}
}

func (o *addButtonObj) Paint(dc *gg.Context) {
	c := o.canvas
	cellW := c.style.CellWidth
	cellH := c.style.CellHeight
	border := c.style.Border

	n := c.doc.Len()
	row := 0
	if c.cellsPerRow > 0 {
		row = n / c.cellsPerRow
	}
	col := n - c.cellsPerRow*row

	x := border + float64(col)*cellW
	y := border + float64(row)*cellH

	dc.SetColor(c.style.AddButton)
	rx, ry, rw, rh := x+10, y+10, cellW-20, cellH-20
	// The bounding box is kept in screen coordinates.
	o.bbox = geometry.NewBBox(rx, ry-c.dy, rx+rw, ry+rh-c.dy)
	dc.DrawRoundedRectangle(rx, ry, rw, rh, cellCornerRadius)
	dc.SetLineWidth(4)
	dc.SetDash(15, 8)
	dc.Stroke()

	size := cellH / 3
	dc.SetLineWidth(8)
	dc.SetLineCapRound()
	dc.SetDash()
	dc.DrawLine(x+cellW/2, y+cellH/2-size/2, x+cellW/2, y+cellH/2+size/2)
	dc.Stroke()
	dc.DrawLine(x+cellW/2-size/2, y+cellH/2, x+cellW/2+size/2, y+cellH/2)
	dc.Stroke()
}
