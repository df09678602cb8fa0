package canvas

import (
	"swatchbook/pkg/geometry"

	"fyne.io/fyne/v2/driver/desktop"
	"github.com/fogleman/gg"
)

const (
	logoSize   = 96.0
	logoSwatch = 56.0
)

// logoObj shows the application mark and site link in the lower right
// corner while the palette is empty. Clicking it opens the project
// site.
type logoObj struct {
	baseObject
}

func newLogoObj(c *Canvas) *logoObj {
	o := &logoObj{baseObject: newBaseObject(c)}
	o.cursor = desktop.PointerCursor
	return o
}

func (o *logoObj) OnLeftReleased(PointerEvent) {
	if o.canvas.onOpenSite != nil {
		o.canvas.onOpenSite()
	}
}

func (o *logoObj) Paint(dc *gg.Context) {
	c := o.canvas
	empty := c.doc.Len() == 0

	if empty {
		dx := c.width - logoSize - c.style.Border
		dy := c.height - logoSize - c.style.Border

		// Three overlapping swatches as the application mark.
		dc.SetRGBA(0.95, 0.35, 0.25, 1)
		dc.DrawRoundedRectangle(dx, dy, logoSwatch, logoSwatch, 10)
		dc.Fill()
		dc.SetRGBA(0.25, 0.65, 0.45, 1)
		dc.DrawRoundedRectangle(dx+20, dy+20, logoSwatch, logoSwatch, 10)
		dc.Fill()
		dc.SetRGBA(0.25, 0.45, 0.85, 1)
		dc.DrawRoundedRectangle(dx+40, dy+40, logoSwatch, logoSwatch, 10)
		dc.Fill()

		if c.faceLogo != nil {
			dc.SetFontFace(c.faceLogo)
		}
		dc.SetColor(c.style.Foreground)
		txt := c.style.SiteURL
		tw, th := dc.MeasureString(txt)
		dc.DrawString(txt, dx+logoSize/2-tw/2, dy+logoSize+14)

		o.bbox = geometry.NewBBox(
			dx+logoSize/2-tw/2,
			dy,
			dx+logoSize/2+tw/2,
			dy+logoSize+14+th,
		)
	}

	o.active = empty
}

// backgroundObj fills the canvas and catches any press that reached
// the bottom of the z-order.
type backgroundObj struct {
	baseObject
}

func newBackgroundObj(c *Canvas) *backgroundObj {
	return &backgroundObj{baseObject: newBaseObject(c)}
}

func (o *backgroundObj) Paint(dc *gg.Context) {
	c := o.canvas
	o.bbox = geometry.NewBBox(0, 0, c.width, c.height)
	dc.SetColor(c.style.Background)
	dc.Clear()
}
