// Package canvas provides the palette canvas: a custom-painted widget
// showing a scrollable grid of color swatches with an undo/redo
// history behind it.
//
// The canvas owns a fixed z-order of objects. Hit-testing walks the
// list front to back; painting walks it back to front into an
// offscreen surface which is then blitted through a Fyne raster.
package canvas

import (
	"image"

	"swatchbook/internal/edit"
	"swatchbook/internal/history"
	"swatchbook/internal/palette"
	"swatchbook/pkg/geometry"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Canvas is the palette viewer/editor widget.
type Canvas struct {
	widget.BaseWidget

	doc    *palette.Document
	hist   *history.History
	editor *edit.Editor
	style  *Style

	// Hit-test order; painted in reverse (first element is topmost).
	objects []Object
	scroll  *scrollObj

	// Scroll virtualization state, recomputed every paint pass.
	dy          float64
	maxDy       float64
	virtualH    float64
	width       float64
	height      float64
	cellsPerRow int

	// Pointer capture
	leftPressed  Object
	rightPressed Object

	cursor desktop.StandardCursor

	// Offscreen surface, reallocated when the viewport size changes.
	surface *image.RGBA
	raster  *fynecanvas.Raster

	// Font faces for swatch labels, color names, and the logo line.
	faceLabel font.Face
	faceName  font.Face
	faceLogo  font.Face

	// Callbacks
	onAddColor func() // add button released
	onOpenSite func() // logo released
	onHistory  func() // history index moved
}

// New creates a palette canvas over the document.
func New(doc *palette.Document, style *Style) *Canvas {
	c := &Canvas{
		doc:         doc,
		style:       style,
		cursor:      desktop.DefaultCursor,
		cellsPerRow: 1,
	}
	c.hist = history.New(doc, c.historyChanged)
	c.editor = edit.New(doc, c.hist)

	if f, err := truetype.Parse(goregular.TTF); err == nil {
		c.faceLabel = truetype.NewFace(f, &truetype.Options{Size: 15})
		c.faceName = truetype.NewFace(f, &truetype.Options{Size: 10})
		c.faceLogo = truetype.NewFace(f, &truetype.Options{Size: 12})
	}

	c.scroll = newScrollObj(c)
	c.objects = []Object{
		newLogoObj(c),
		c.scroll,
		newAddButtonObj(c),
		newColorGrid(c),
		newBackgroundObj(c),
	}

	c.raster = fynecanvas.NewRaster(c.draw)
	c.raster.ScaleMode = fynecanvas.ImageScalePixels
	c.raster.SetMinSize(fyne.NewSize(320, 240))

	c.ExtendBaseWidget(c)
	return c
}

// Document returns the palette document shown by the canvas.
func (c *Canvas) Document() *palette.Document {
	return c.doc
}

// History returns the undo/redo log of the current document.
func (c *Canvas) History() *history.History {
	return c.hist
}

// Editor returns the edit-operation facade over the current document.
func (c *Canvas) Editor() *edit.Editor {
	return c.editor
}

// SetDocument replaces the shown document, resetting history and
// scroll position.
func (c *Canvas) SetDocument(doc *palette.Document) {
	c.doc = doc
	c.hist = history.New(doc, c.historyChanged)
	c.editor = edit.New(doc, c.hist)
	c.dy = 0
	c.leftPressed = nil
	c.rightPressed = nil
	c.historyChanged()
}

// OnAddColor sets the callback fired when the add button is clicked.
func (c *Canvas) OnAddColor(f func()) {
	c.onAddColor = f
}

// OnOpenSite sets the callback fired when the logo is clicked.
func (c *Canvas) OnOpenSite(f func()) {
	c.onOpenSite = f
}

// OnHistoryChange sets the callback fired after every history
// movement, including saves. Used for window title reflection.
func (c *Canvas) OnHistoryChange(f func()) {
	c.onHistory = f
}

func (c *Canvas) historyChanged() {
	if c.onHistory != nil {
		c.onHistory()
	}
	c.refresh()
}

func (c *Canvas) refresh() {
	if c.raster != nil {
		c.raster.Refresh()
	}
}

func (c *Canvas) setCursor(cur desktop.StandardCursor) {
	c.cursor = cur
}

// Scrolling operations, also reachable from menu shortcuts.

// GoHome scrolls to the top of the palette.
func (c *Canvas) GoHome() {
	c.dy = 0
	c.refresh()
}

// GoEnd scrolls to the bottom of the palette.
func (c *Canvas) GoEnd() {
	c.dy = c.maxDy
	c.refresh()
}

// PageUp scrolls one viewport height up.
func (c *Canvas) PageUp() {
	c.dy = max(0, c.dy-c.height)
	c.refresh()
}

// PageDown scrolls one viewport height down.
func (c *Canvas) PageDown() {
	c.dy = min(c.maxDy, c.dy+c.height)
	c.refresh()
}

// ScrollUp scrolls half a cell up.
func (c *Canvas) ScrollUp() {
	c.dy = max(0, c.dy-c.style.CellHeight/2)
	c.refresh()
}

// ScrollDown scrolls half a cell down.
func (c *Canvas) ScrollDown() {
	c.dy = min(c.maxDy, c.dy+c.style.CellHeight/2)
	c.refresh()
}

// scrollBy adjusts the scroll offset by a wheel delta and clamps it
// into the valid range.
func (c *Canvas) scrollBy(delta float64) {
	c.dy += delta * c.style.ScrollSensitivity
	if c.dy < 0 || c.virtualH <= c.height {
		c.dy = 0
	} else if c.dy > c.virtualH-c.height {
		c.dy = c.virtualH - c.height
	}
	c.refresh()
}

// Event dispatch.

func (c *Canvas) pointerMove(ev PointerEvent) {
	if c.leftPressed != nil {
		c.leftPressed.OnMove(ev)
		return
	}
	for _, obj := range c.objects {
		if obj.OnMove(ev) {
			break
		}
	}
}

func (c *Canvas) pointerLeave() {
	if c.scroll.hover && c.leftPressed != Object(c.scroll) {
		c.scroll.hover = false
		c.refresh()
	}
}

func (c *Canvas) leftDown(ev PointerEvent) {
	for _, obj := range c.objects {
		c.leftPressed = nil
		if obj.OnLeftPressed(ev) {
			c.leftPressed = obj
			break
		}
	}
}

func (c *Canvas) leftUp(ev PointerEvent) {
	if c.leftPressed != nil {
		c.leftPressed.OnLeftReleased(ev)
		c.leftPressed = nil
	}
}

// Right-button dispatch is a reserved extension point.

func (c *Canvas) rightDown(PointerEvent) {}

func (c *Canvas) rightUp(PointerEvent) {}

// computeLayout derives the grid and scroll geometry for the given
// viewport size. It runs at the start of every paint pass and must
// run before hit-testing is meaningful for the same frame.
func (c *Canvas) computeLayout(w, h float64) {
	c.width, c.height = w, h

	c.cellsPerRow = int((w - 2*c.style.Border) / c.style.CellWidth)
	if c.cellsPerRow < 1 {
		c.cellsPerRow = 1
	}

	rows := (c.doc.Len() + c.cellsPerRow - 1) / c.cellsPerRow
	c.virtualH = 2*c.style.Border + float64(rows)*c.style.CellHeight

	c.maxDy = c.virtualH - h
	if c.maxDy < 0 {
		c.maxDy = 0
	}
	if c.dy > c.maxDy {
		c.dy = c.maxDy
	}
	if c.dy < 0 {
		c.dy = 0
	}
}

// draw renders the canvas into the offscreen surface. Objects paint
// in reverse z-order, bottom first, into a context translated by the
// scroll offset.
func (c *Canvas) draw(w, h int) image.Image {
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}

	c.computeLayout(float64(w), float64(h))

	if c.surface == nil || c.surface.Bounds().Dx() != w || c.surface.Bounds().Dy() != h {
		c.surface = image.NewRGBA(image.Rect(0, 0, w, h))
	}

	dc := gg.NewContextForRGBA(c.surface)
	dc.Translate(0, -c.dy)

	for i := len(c.objects) - 1; i >= 0; i-- {
		c.objects[i].Paint(dc)
	}

	return c.surface
}

// Fyne plumbing.

// CreateRenderer implements fyne.Widget.
func (c *Canvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(c.raster)
}

func pointOf(ev *desktop.MouseEvent) PointerEvent {
	return PointerEvent{Point: geometry.NewPoint2D(float64(ev.Position.X), float64(ev.Position.Y))}
}

// MouseIn implements desktop.Hoverable.
func (c *Canvas) MouseIn(ev *desktop.MouseEvent) {
	c.pointerMove(pointOf(ev))
}

// MouseMoved implements desktop.Hoverable.
func (c *Canvas) MouseMoved(ev *desktop.MouseEvent) {
	c.pointerMove(pointOf(ev))
}

// MouseOut implements desktop.Hoverable.
func (c *Canvas) MouseOut() {
	c.pointerLeave()
}

// MouseDown implements desktop.Mouseable.
func (c *Canvas) MouseDown(ev *desktop.MouseEvent) {
	switch ev.Button {
	case desktop.MouseButtonPrimary:
		c.leftDown(pointOf(ev))
	case desktop.MouseButtonSecondary:
		c.rightDown(pointOf(ev))
	}
}

// MouseUp implements desktop.Mouseable.
func (c *Canvas) MouseUp(ev *desktop.MouseEvent) {
	switch ev.Button {
	case desktop.MouseButtonPrimary:
		c.leftUp(pointOf(ev))
	case desktop.MouseButtonSecondary:
		c.rightUp(pointOf(ev))
	}
}

// Scrolled implements fyne.Scrollable. Wheel-up carries a positive
// DY in Fyne while the scroll offset grows downward, so the delta is
// negated.
func (c *Canvas) Scrolled(ev *fyne.ScrollEvent) {
	c.scrollBy(-float64(ev.Scrolled.DY))
}

// Cursor implements desktop.Cursorable.
func (c *Canvas) Cursor() desktop.Cursor {
	return c.cursor
}
