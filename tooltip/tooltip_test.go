// Copyright (c) 2026, Hovertip Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tooltip

import (
	"image"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hovergo/hovertip/math32"
	"github.com/hovergo/hovertip/system"
	"github.com/hovergo/hovertip/system/driver/offscreen"
)

// fixedContent is a content stub with a fixed size.
type fixedContent struct {
	w, h float32
}

func (c fixedContent) Size() math32.Vector2 {
	return math32.Vec2(c.w, c.h)
}

func (c fixedContent) Render(dst *image.RGBA, at image.Point) {}

// newTestApp resets the registry and the per-type hook record,
// shortens the process-wide timing constants for the duration of the
// test, and installs a fresh offscreen driver. Cleanup drains any
// running check chains before restoring the timing constants.
func newTestApp(t *testing.T) *offscreen.App {
	t.Helper()
	reg = &registry{}
	installedMu.Lock()
	installed = map[reflect.Type]bool{}
	installedMu.Unlock()
	saveDwell, savePoll := DwellTime, PollInterval
	DwellTime = 20 * time.Millisecond
	PollInterval = 5 * time.Millisecond
	t.Cleanup(func() {
		drainChains()
		DwellTime, PollInterval = saveDwell, savePoll
	})
	return offscreen.NewApp()
}

// drainChains clears every dwell timestamp, which terminates each
// running check chain at its next tick, and waits for them all.
func drainChains() {
	reg.mu.Lock()
	for _, e := range reg.entries {
		e.DwellStart = time.Time{}
	}
	reg.mu.Unlock()
	chains.Wait()
}

// waitVisible polls until the owner's tip is visible.
func waitVisible(t *testing.T, owner system.View) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if IsVisible(owner) {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal("tip did not become visible")
}

func TestEndToEndScenario(t *testing.T) {
	app := newTestApp(t)
	view := offscreen.NewView(app, math32.B2Size(50, 50, 80, 20))

	Attach(view, fixedContent{100, 40})
	MouseEnter(view, math32.Vec2(60, 60))
	waitVisible(t, view)

	ovs := app.Overlays()
	require.Len(t, ovs, 1)
	assert.Equal(t, math32.Vec2(110, 50), ovs[0].Size())
	assert.Equal(t, math32.Vec2(90, 0), ovs[0].Pos())
}

func TestNotVisibleBeforeDwell(t *testing.T) {
	app := newTestApp(t)
	view := offscreen.NewView(app, math32.B2Size(50, 50, 80, 20))

	Attach(view, fixedContent{100, 40})
	MouseEnter(view, math32.Vec2(60, 60))
	assert.False(t, IsVisible(view))
	assert.Equal(t, 0, app.OpenedCount())
	waitVisible(t, view)
}

func TestMoveHidesAndRearms(t *testing.T) {
	app := newTestApp(t)
	view := offscreen.NewView(app, math32.B2Size(50, 50, 80, 20))

	Attach(view, fixedContent{100, 40})
	MouseEnter(view, math32.Vec2(60, 60))
	waitVisible(t, view)

	MouseMove(view, math32.Vec2(65, 60))
	assert.False(t, IsVisible(view))
	assert.Empty(t, app.Overlays())

	// the chain is still running; the tip re-arms without a fresh enter
	waitVisible(t, view)
	assert.Equal(t, 2, app.OpenedCount())
}

func TestExitHidesAndEndsChain(t *testing.T) {
	app := newTestApp(t)
	view := offscreen.NewView(app, math32.B2Size(50, 50, 80, 20))

	Attach(view, fixedContent{100, 40})
	MouseEnter(view, math32.Vec2(60, 60))
	waitVisible(t, view)

	MouseExit(view)
	assert.False(t, IsVisible(view))
	assert.Empty(t, app.Overlays())

	// the cleared dwell timestamp terminates the chain: no re-show
	time.Sleep(5 * DwellTime)
	assert.False(t, IsVisible(view))
	assert.Equal(t, 1, app.OpenedCount())
}

func TestExitWhileDwelling(t *testing.T) {
	app := newTestApp(t)
	view := offscreen.NewView(app, math32.B2Size(50, 50, 80, 20))

	Attach(view, fixedContent{100, 40})
	MouseEnter(view, math32.Vec2(60, 60))
	MouseExit(view)

	time.Sleep(5 * DwellTime)
	assert.False(t, IsVisible(view))
	assert.Equal(t, 0, app.OpenedCount())
}

func TestShowIdempotent(t *testing.T) {
	app := newTestApp(t)
	view := offscreen.NewView(app, math32.B2Size(50, 50, 80, 20))

	Attach(view, fixedContent{100, 40})
	reg.update(view, func(e *Entry) {
		e.DwellStart = time.Now().Add(-DwellTime)
	})
	showTip(view)
	pos := app.Overlays()[0].Pos()
	showTip(view)

	assert.Equal(t, 1, app.OpenedCount())
	require.Len(t, app.Overlays(), 1)
	assert.Equal(t, pos, app.Overlays()[0].Pos())
}

func TestStaleShowAfterMoveSuppressed(t *testing.T) {
	app := newTestApp(t)
	view := offscreen.NewView(app, math32.B2Size(50, 50, 80, 20))

	Attach(view, fixedContent{100, 40})
	MouseEnter(view, math32.Vec2(60, 60))
	MouseMove(view, math32.Vec2(61, 60))

	// a show decision dispatched before the move arrives late:
	// the reset dwell keeps the tip hidden
	showTip(view)
	assert.False(t, IsVisible(view))
	assert.Equal(t, 0, app.OpenedCount())
}

func TestNilContentSuppressesShow(t *testing.T) {
	app := newTestApp(t)
	view := offscreen.NewView(app, math32.B2Size(50, 50, 80, 20))

	Attach(view, nil)
	assert.True(t, Has(view))

	MouseEnter(view, math32.Vec2(60, 60))
	time.Sleep(5 * DwellTime)
	assert.False(t, IsVisible(view))
	assert.Equal(t, 0, app.OpenedCount())
}

func TestNilContentHidesVisibleTip(t *testing.T) {
	app := newTestApp(t)
	view := offscreen.NewView(app, math32.B2Size(50, 50, 80, 20))

	Attach(view, fixedContent{100, 40})
	MouseEnter(view, math32.Vec2(60, 60))
	waitVisible(t, view)

	// clearing the content hides the live overlay, not just future shows
	Attach(view, nil)
	assert.False(t, IsVisible(view))
	assert.Empty(t, app.Overlays())
	assert.True(t, Has(view))
}

func TestChainsEndAfterDetach(t *testing.T) {
	app := newTestApp(t)
	view := offscreen.NewView(app, math32.B2Size(50, 50, 80, 20))

	Attach(view, fixedContent{100, 40})
	MouseEnter(view, math32.Vec2(60, 60))
	waitVisible(t, view)

	Detach(view)
	// the missing entry terminates the chain; drain returns once it has
	drainChains()
	assert.Equal(t, 1, app.OpenedCount())
	assert.Empty(t, app.Overlays())
}

func TestDetachHidesOverlay(t *testing.T) {
	app := newTestApp(t)
	view := offscreen.NewView(app, math32.B2Size(50, 50, 80, 20))

	Attach(view, fixedContent{100, 40})
	MouseEnter(view, math32.Vec2(60, 60))
	waitVisible(t, view)

	Detach(view)
	assert.False(t, Has(view))
	assert.Empty(t, app.Overlays())
}

func TestOwnerTeardownPurges(t *testing.T) {
	app := newTestApp(t)
	view := offscreen.NewView(app, math32.B2Size(50, 50, 80, 20))
	other := offscreen.NewView(app, math32.B2Size(300, 300, 40, 20))

	Attach(view, fixedContent{100, 40})
	MouseEnter(view, math32.Vec2(60, 60))
	waitVisible(t, view)

	view.Destroy()

	// any unrelated registry operation lazily purges the stale entry
	Attach(other, fixedContent{10, 10})
	assert.False(t, Has(view))
	assert.Empty(t, app.Overlays())

	// late-arriving checks after teardown are safe no-ops
	time.Sleep(5 * DwellTime)
	assert.Empty(t, app.Overlays())
}

func TestEventsWithoutEntry(t *testing.T) {
	app := newTestApp(t)
	view := offscreen.NewView(app, math32.B2Size(50, 50, 80, 20))

	MouseEnter(view, math32.Vec2(60, 60))
	MouseMove(view, math32.Vec2(61, 60))
	MouseExit(view)
	assert.False(t, Has(view))
	assert.Equal(t, 0, app.OpenedCount())
}

func TestScreenUnavailableSkipsPlacement(t *testing.T) {
	app := newTestApp(t)
	view := offscreen.NewView(app, math32.B2Size(50, 50, 80, 20))
	view.SetDetached(true)

	Attach(view, fixedContent{100, 40})
	MouseEnter(view, math32.Vec2(60, 60))
	waitVisible(t, view)

	// overlay keeps its default origin when screen bounds are unavailable
	require.Len(t, app.Overlays(), 1)
	assert.Equal(t, math32.Vector2{}, app.Overlays()[0].Pos())
}

func TestAttachUpdatesExisting(t *testing.T) {
	app := newTestApp(t)
	view := offscreen.NewView(app, math32.B2Size(50, 50, 80, 20))

	Attach(view, fixedContent{100, 40})
	MouseEnter(view, math32.Vec2(60, 60))
	waitVisible(t, view)

	// re-attaching reconfigures without clearing live visibility state
	Attach(view, fixedContent{60, 20}, WithMargins(math32.Vec2(10, 10)))
	assert.True(t, IsVisible(view))
	assert.Equal(t, 1, app.OpenedCount())
}

type hookView struct {
	*offscreen.View
}

func TestHooksInstalledOncePerType(t *testing.T) {
	app := newTestApp(t)
	v1 := &hookView{offscreen.NewView(app, math32.B2Size(50, 50, 80, 20))}
	v2 := &hookView{offscreen.NewView(app, math32.B2Size(200, 200, 80, 20))}

	Attach(v1, fixedContent{10, 10})
	Attach(v2, fixedContent{10, 10})
	Attach(v1, fixedContent{20, 20})

	assert.Equal(t, 1, v1.HooksInstalled())
	assert.Equal(t, 0, v2.HooksInstalled())
}

func TestTrackingBoundsChanged(t *testing.T) {
	app := newTestApp(t)
	view := offscreen.NewView(app, math32.B2Size(50, 50, 80, 20))

	Attach(view, fixedContent{100, 40})
	MouseEnter(view, math32.Vec2(60, 60))
	waitVisible(t, view)

	newBounds := math32.B2Size(300, 300, 80, 20)
	view.SetFrame(newBounds)
	TrackingBoundsChanged(view, newBounds)

	assert.Equal(t, newBounds, view.TrackingRegion())
	require.Len(t, app.Overlays(), 1)
	want := place(newBounds, app.VisibleBounds, math32.Vec2(110, 50), math32.Vec2(40, 0), system.LTR, TheSettings.EdgePad)
	assert.Equal(t, want, app.Overlays()[0].Pos())
}

func TestAtCursorPlacement(t *testing.T) {
	app := newTestApp(t)
	view := offscreen.NewView(app, math32.B2Size(50, 50, 300, 200))

	Attach(view, fixedContent{100, 40}, AtCursor())
	MouseEnter(view, math32.Vec2(200, 180))
	waitVisible(t, view)

	anchor := app.Cursor.AnchorRect(math32.Vec2(200, 180), TheSettings.AlphaThreshold)
	want := place(anchor, app.VisibleBounds, math32.Vec2(110, 50),
		math32.Vec2(anchor.Size().X/2, 0), system.LTR, TheSettings.EdgePad)
	require.Len(t, app.Overlays(), 1)
	assert.Equal(t, want, app.Overlays()[0].Pos())
}
