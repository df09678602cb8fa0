package canvas

import (
	"swatchbook/pkg/geometry"

	"fyne.io/fyne/v2/driver/desktop"
	"github.com/fogleman/gg"
)

// PointerEvent carries a pointer position in widget coordinates.
type PointerEvent struct {
	Point geometry.Point2D
}

// Object is a hit-testable, paintable canvas element. Painting
// recomputes the object's bounding box, so an object is only
// meaningfully hit-testable after it has been painted at least once.
type Object interface {
	// Paint draws the object into the offscreen context and updates
	// its bounding box. The context is translated by the current
	// scroll offset.
	Paint(dc *gg.Context)

	// IsOver reports whether the point is strictly inside the
	// object's bounding box.
	IsOver(p geometry.Point2D) bool

	// OnMove handles a pointer move. Returning true stops dispatch,
	// so at most one object is hovered at a time.
	OnMove(ev PointerEvent) bool

	// OnLeftPressed reports whether the object accepts the press and
	// takes pointer capture.
	OnLeftPressed(ev PointerEvent) bool
	OnLeftReleased(ev PointerEvent)

	// Right-button handlers are reserved extension points.
	OnRightPressed(ev PointerEvent) bool
	OnRightReleased(ev PointerEvent)

	Active() bool
	Cursor() desktop.Cursor
}

// baseObject carries the shared hit-test and hover bookkeeping. The
// concrete objects embed it and override what they need.
type baseObject struct {
	canvas *Canvas
	bbox   geometry.BBox
	cursor desktop.StandardCursor
	active bool
	hover  bool
}

func newBaseObject(c *Canvas) baseObject {
	return baseObject{canvas: c, cursor: desktop.DefaultCursor, active: true}
}

func (o *baseObject) IsOver(p geometry.Point2D) bool {
	return o.bbox.Contains(p)
}

func (o *baseObject) OnMove(ev PointerEvent) bool {
	if !o.active {
		return false
	}
	if o.bbox.Contains(ev.Point) {
		o.canvas.setCursor(o.cursor)
		if !o.hover {
			o.hover = true
			o.canvas.refresh()
		}
		return true
	}
	if o.hover {
		o.hover = false
		o.canvas.refresh()
	}
	return false
}

func (o *baseObject) OnLeftPressed(ev PointerEvent) bool {
	return o.bbox.Contains(ev.Point)
}

func (o *baseObject) OnLeftReleased(PointerEvent) {}

func (o *baseObject) OnRightPressed(PointerEvent) bool {
	return false
}

func (o *baseObject) OnRightReleased(PointerEvent) {}

func (o *baseObject) Active() bool {
	return o.active
}

func (o *baseObject) Cursor() desktop.Cursor {
	return o.cursor
}
