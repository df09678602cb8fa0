package canvas

import (
	"math"

	"swatchbook/pkg/geometry"

	"github.com/fogleman/gg"
)

// scrollObj is the scrollbar thumb along the right edge. It is active
// only while the virtual content height exceeds the viewport.
type scrollObj struct {
	baseObject

	// tbbox is the thumb's box; bbox covers the whole track.
	tbbox geometry.BBox
	start geometry.Point2D
	coef  float64
}

func newScrollObj(c *Canvas) *scrollObj {
	return &scrollObj{baseObject: newBaseObject(c), coef: 1}
}

// OnLeftPressed starts a thumb drag, or jumps the scroll offset when
// the press lands on the track above or below the thumb.
func (o *scrollObj) OnLeftPressed(ev PointerEvent) bool {
	o.start = ev.Point
	if !o.IsOver(o.start) {
		return false
	}
	if o.tbbox.Contains(o.start) {
		return true
	}

	var dy float64
	if o.start.Y > o.tbbox.Y1 {
		dy = (o.start.Y - o.tbbox.Y1 + o.tbbox.Y0) / o.coef
	} else {
		dy = o.start.Y / o.coef
	}
	o.canvas.dy = dy // clamped by the next layout pass
	o.canvas.refresh()
	return true
}

// OnMove tracks the drag while the thumb holds capture, scaling
// pointer deltas back into content space.
func (o *scrollObj) OnMove(ev PointerEvent) bool {
	if o.canvas.leftPressed != Object(o) {
		return o.baseObject.OnMove(ev)
	}

	dy := o.canvas.dy + math.Floor((ev.Point.Y-o.start.Y)/o.coef)
	if dy < 0 {
		dy = 0
	}
	if dy > o.canvas.maxDy {
		dy = o.canvas.maxDy
	}
	o.start = ev.Point
	o.canvas.dy = dy
	o.canvas.refresh()
	return true
}

func (o *scrollObj) Paint(dc *gg.Context) {
	c := o.canvas
	w, h := c.width, c.height
	sw := c.style.ScrollNormal
	if o.hover {
		sw = c.style.ScrollHover
	}
	o.bbox = geometry.NewBBox(w-c.style.ScrollHover, 0, w, h)
	o.tbbox = geometry.BBox{}
	o.coef = 1

	if c.virtualH > h {
		o.coef = h / c.virtualH
		thumbH := h * o.coef
		// The context is translated by -dy, so on screen the thumb
		// lands at dy*coef.
		y := c.dy + c.dy*o.coef
		dc.SetColor(c.style.Scrollbar)
		dc.DrawRectangle(w-sw, y, sw, thumbH)
		dc.Fill()
		o.tbbox = geometry.NewBBox(w-sw, y, w, y+thumbH)
	}

	o.active = c.virtualH > h
}
