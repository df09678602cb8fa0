package canvas

import (
	"os"
	"testing"

	"swatchbook/internal/palette"
	"swatchbook/pkg/geometry"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	test.NewApp()
	os.Exit(m.Run())
}

// testStyle keeps the default geometry but a zero border so scroll
// fixtures come out round.
func testStyle() *Style {
	s := DefaultStyle()
	s.Border = 0
	return s
}

func docWithColors(n int) *palette.Document {
	doc := palette.New()
	for i := 0; i < n; i++ {
		doc.Insert(i, palette.NewGray(float64(i%10)/10))
	}
	return doc
}

func TestComputeLayoutGrid(t *testing.T) {
	c := New(docWithColors(12), DefaultStyle())

	// 790 = 2*20 border + 5*150 cells.
	c.computeLayout(790, 600)

	assert.Equal(t, 5, c.cellsPerRow)
	// 12 colors wrap into 3 rows.
	assert.Equal(t, 2*20+3*100.0, c.virtualH)
}

func TestComputeLayoutNarrowViewportGuard(t *testing.T) {
	c := New(docWithColors(3), DefaultStyle())

	// Viewport narrower than a single cell must not divide by zero.
	c.computeLayout(50, 300)
	assert.Equal(t, 1, c.cellsPerRow)
	assert.Equal(t, 2*20+3*100.0, c.virtualH)
}

func TestComputeLayoutEmptyPalette(t *testing.T) {
	c := New(palette.New(), DefaultStyle())
	c.computeLayout(790, 600)

	assert.Equal(t, 2*20.0, c.virtualH)
	assert.Equal(t, 0.0, c.maxDy)
}

func TestScrollClamp(t *testing.T) {
	// 50 colors at 5 per row is 10 rows: virtual height 1000.
	c := New(docWithColors(50), testStyle())
	c.computeLayout(750, 300)
	require.Equal(t, 1000.0, c.virtualH)
	require.Equal(t, 700.0, c.maxDy)

	c.scrollBy(1e6)
	assert.Equal(t, 700.0, c.dy)

	c.scrollBy(-1e6)
	assert.Equal(t, 0.0, c.dy)

	c.scrollBy(10)
	assert.Equal(t, 10*c.style.ScrollSensitivity, c.dy)
}

func TestScrollNoOverflowPinsToTop(t *testing.T) {
	c := New(docWithColors(2), testStyle())
	c.computeLayout(750, 600)
	require.Equal(t, 0.0, c.maxDy)

	c.scrollBy(50)
	assert.Equal(t, 0.0, c.dy)
}

func TestLayoutClampsScrollAfterResize(t *testing.T) {
	c := New(docWithColors(50), testStyle())
	c.computeLayout(750, 300)
	c.scrollBy(1e6)
	require.Equal(t, 700.0, c.dy)

	// Growing the viewport shrinks the valid range; dy re-clamps.
	c.computeLayout(750, 900)
	assert.Equal(t, 100.0, c.dy)
}

func TestAddButtonOccupiesNextFreeSlot(t *testing.T) {
	c := New(docWithColors(12), DefaultStyle())
	c.draw(790, 600)

	// 12 colors at 5 per row: the next free slot is row 2, column 2.
	var btn *addButtonObj
	for _, obj := range c.objects {
		if b, ok := obj.(*addButtonObj); ok {
			btn = b
		}
	}
	require.NotNil(t, btn)

	x := 20 + 2*150.0
	y := 20 + 2*100.0
	assert.Equal(t, geometry.NewBBox(x+10, y+10, x+150-10, y+100-10), btn.bbox)
}

func TestScrollThumbGeometry(t *testing.T) {
	c := New(docWithColors(50), testStyle())
	c.draw(750, 300)

	require.True(t, c.scroll.active)
	assert.Equal(t, 0.3, c.scroll.coef)
	// Thumb height is viewport * coef; at dy=0 it sits at the top.
	assert.Equal(t, geometry.NewBBox(745, 0, 750, 90), c.scroll.tbbox)
	// Track covers the hover width along the right edge.
	assert.Equal(t, geometry.NewBBox(750-c.style.ScrollHover, 0, 750, 300), c.scroll.bbox)
}

func TestScrollInactiveWithoutOverflow(t *testing.T) {
	c := New(docWithColors(2), testStyle())
	c.draw(750, 600)

	assert.False(t, c.scroll.active)
	assert.Equal(t, geometry.BBox{}, c.scroll.tbbox)
}

func TestLogoActiveOnlyWhenEmpty(t *testing.T) {
	c := New(palette.New(), DefaultStyle())
	c.draw(640, 480)

	logo := c.objects[0].(*logoObj)
	assert.True(t, logo.active)
	assert.True(t, logo.bbox.Width() > 0)

	c.Editor().AddColor(palette.NewRGB(1, 0, 0))
	c.draw(640, 480)
	assert.False(t, logo.active)
}

func TestBackgroundCatchesAllPresses(t *testing.T) {
	c := New(docWithColors(3), DefaultStyle())
	c.draw(790, 600)

	// A point on no interactive object still lands on the background.
	ev := PointerEvent{Point: geometry.NewPoint2D(700, 550)}
	c.leftDown(ev)
	require.NotNil(t, c.leftPressed)
	_, ok := c.leftPressed.(*backgroundObj)
	assert.True(t, ok)

	c.leftUp(ev)
	assert.Nil(t, c.leftPressed)
}

func TestAddButtonPressAndRelease(t *testing.T) {
	c := New(docWithColors(2), DefaultStyle())
	var added int
	c.OnAddColor(func() { added++ })
	c.draw(790, 600)

	// Center of the third cell in row 0, where the add button sits.
	p := geometry.NewPoint2D(20+2*150+75, 20+50)
	c.leftDown(PointerEvent{Point: p})
	require.IsType(t, &addButtonObj{}, c.leftPressed)

	c.leftUp(PointerEvent{Point: p})
	assert.Equal(t, 1, added)
	assert.Nil(t, c.leftPressed)
}

func TestHoverIsExclusive(t *testing.T) {
	c := New(docWithColors(2), DefaultStyle())
	c.draw(790, 600)

	btn := c.objects[2].(*addButtonObj)
	bg := c.objects[4].(*backgroundObj)

	over := geometry.NewPoint2D(20+2*150+75, 20+50)
	c.pointerMove(PointerEvent{Point: over})
	assert.True(t, btn.hover)
	// Dispatch stopped at the add button; the background below never
	// saw the move.
	assert.False(t, bg.hover)

	away := geometry.NewPoint2D(700, 550)
	c.pointerMove(PointerEvent{Point: away})
	assert.False(t, btn.hover)
	assert.True(t, bg.hover)
}

func TestCaptureRoutesMovesExclusively(t *testing.T) {
	c := New(docWithColors(50), testStyle())
	c.draw(750, 300)

	// Press inside the thumb.
	start := geometry.NewPoint2D(747, 40)
	c.leftDown(PointerEvent{Point: start})
	require.Equal(t, Object(c.scroll), c.leftPressed)

	// Drag down 30px: offset grows by 30/coef = 100.
	c.pointerMove(PointerEvent{Point: geometry.NewPoint2D(747, 70)})
	assert.Equal(t, 100.0, c.dy)

	// Moves keep going to the thumb even far away from it.
	c.pointerMove(PointerEvent{Point: geometry.NewPoint2D(10, 71)})
	assert.Equal(t, Object(c.scroll), c.leftPressed)

	c.leftUp(PointerEvent{Point: geometry.NewPoint2D(10, 71)})
	assert.Nil(t, c.leftPressed)
}

func TestScrollThumbDragClamps(t *testing.T) {
	c := New(docWithColors(50), testStyle())
	c.draw(750, 300)

	c.leftDown(PointerEvent{Point: geometry.NewPoint2D(747, 40)})
	require.Equal(t, Object(c.scroll), c.leftPressed)

	c.pointerMove(PointerEvent{Point: geometry.NewPoint2D(747, 4000)})
	assert.Equal(t, 700.0, c.dy)

	c.pointerMove(PointerEvent{Point: geometry.NewPoint2D(747, -4000)})
	assert.Equal(t, 0.0, c.dy)
}

func TestTrackPressBelowThumbJumps(t *testing.T) {
	c := New(docWithColors(50), testStyle())
	c.draw(750, 300)
	require.Equal(t, geometry.NewBBox(745, 0, 750, 90), c.scroll.tbbox)

	// Press on the track well below the thumb.
	c.leftDown(PointerEvent{Point: geometry.NewPoint2D(747, 250)})
	require.Equal(t, Object(c.scroll), c.leftPressed)
	// dy = (250 - 90 + 0) / 0.3; already inside the valid range, so
	// the next layout pass leaves it alone.
	assert.InDelta(t, 160/0.3, c.dy, 1e-9)

	c.draw(750, 300)
	assert.InDelta(t, 160/0.3, c.dy, 1e-9)
}

func TestMouseOutClearsThumbHover(t *testing.T) {
	c := New(docWithColors(50), testStyle())
	c.draw(750, 300)

	c.pointerMove(PointerEvent{Point: geometry.NewPoint2D(747, 40)})
	require.True(t, c.scroll.hover)

	c.pointerLeave()
	assert.False(t, c.scroll.hover)
}

func TestSetDocumentResetsState(t *testing.T) {
	c := New(docWithColors(50), testStyle())
	var changes int
	c.OnHistoryChange(func() { changes++ })
	c.draw(750, 300)
	c.scrollBy(100)
	require.True(t, c.dy > 0)

	fresh := palette.New()
	c.SetDocument(fresh)

	assert.Same(t, fresh, c.Document())
	assert.Equal(t, 0.0, c.dy)
	assert.False(t, c.History().CanUndo())
	assert.Equal(t, 1, changes)
}

func TestMenuScrollOperations(t *testing.T) {
	c := New(docWithColors(50), testStyle())
	c.draw(750, 300)
	require.Equal(t, 700.0, c.maxDy)

	c.GoEnd()
	assert.Equal(t, 700.0, c.dy)

	c.PageUp()
	assert.Equal(t, 400.0, c.dy)

	c.ScrollDown()
	assert.Equal(t, 450.0, c.dy)

	c.ScrollUp()
	assert.Equal(t, 400.0, c.dy)

	c.GoHome()
	assert.Equal(t, 0.0, c.dy)

	c.PageUp() // already at top
	assert.Equal(t, 0.0, c.dy)

	c.PageDown()
	assert.Equal(t, 300.0, c.dy)
}
