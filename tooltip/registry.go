// Copyright (c) 2026, Hovertip Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tooltip

import (
	"sync"
	"time"

	"github.com/hovergo/hovertip/system"
)

// registry is the process-wide store of tooltip entries, keyed by
// owner identity. A single mutex guards all access; lookup is a linear
// scan, since the number of tooltip-bearing views per application is
// small. Every operation opportunistically purges entries whose owner
// is gone, which acts as lazy garbage collection instead of a
// background sweep.
type registry struct {
	mu      sync.Mutex
	entries []*Entry
}

// reg is the process-wide registry; it lives for the process lifetime.
var reg = &registry{}

// state returns the dwell timestamp and visibility for the given
// owner, and whether an entry exists at all. It is the safe way to
// read entry state from the background check chain.
func (r *registry) state(owner system.View) (dwell time.Time, visible bool, ok bool) {
	r.mu.Lock()
	stale := r.purgeLocked()
	e := r.findLocked(owner)
	if e != nil {
		dwell, visible, ok = e.DwellStart, e.Visible, true
	}
	r.mu.Unlock()
	closeOverlays(stale)
	return
}

// update runs the given function on the owner's entry under the
// registry lock, and reports whether the entry existed. Show and hide
// decisions go through here so that the visibility check and set are
// one structural update.
func (r *registry) update(owner system.View, f func(e *Entry)) bool {
	r.mu.Lock()
	stale := r.purgeLocked()
	e := r.findLocked(owner)
	if e != nil {
		f(e)
	}
	r.mu.Unlock()
	closeOverlays(stale)
	return e != nil
}

// upsert registers the given entry, or folds its configuration into
// the existing entry for the same owner, preserving live mouse and
// visibility state.
func (r *registry) upsert(e *Entry) {
	r.mu.Lock()
	stale := r.purgeLocked()
	if cur := r.findLocked(e.Owner); cur != nil {
		cur.Content = e.Content
		cur.Margins = e.Margins
		cur.Background = e.Background
		cur.Offsets = e.Offsets
		cur.OffsetsSet = e.OffsetsSet
		cur.AtCursor = e.AtCursor
	} else {
		r.entries = append(r.entries, e)
	}
	r.mu.Unlock()
	closeOverlays(stale)
}

// remove deletes the entry for the given owner, returning any live
// overlay for the caller to close on the main thread.
func (r *registry) remove(owner system.View) system.Overlay {
	r.mu.Lock()
	stale := r.purgeLocked()
	var ov system.Overlay
	for i, e := range r.entries {
		if e.Owner == owner {
			ov = e.Overlay
			e.Overlay = nil
			e.Visible = false
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			break
		}
	}
	r.mu.Unlock()
	closeOverlays(stale)
	return ov
}

// findLocked returns the entry for the given owner, or nil.
// The registry mutex must be held.
func (r *registry) findLocked(owner system.View) *Entry {
	for _, e := range r.entries {
		if e.Owner == owner {
			return e
		}
	}
	return nil
}

// purgeLocked drops entries whose owner is gone and returns their
// live overlays, which the caller must close after releasing the lock.
// The registry mutex must be held.
func (r *registry) purgeLocked() []system.Overlay {
	var ovs []system.Overlay
	live := r.entries[:0]
	for _, e := range r.entries {
		if e.Owner != nil && e.Owner.Alive() {
			live = append(live, e)
			continue
		}
		if e.Overlay != nil {
			ovs = append(ovs, e.Overlay)
			e.Overlay = nil
			e.Visible = false
		}
	}
	r.entries = live
	return ovs
}

// closeOverlays closes orphaned overlays on the main thread.
// A nil or empty list is a no-op.
func closeOverlays(ovs []system.Overlay) {
	if len(ovs) == 0 || system.TheApp == nil {
		return
	}
	system.TheApp.RunOnMain(func() {
		for _, ov := range ovs {
			ov.Close()
		}
	})
}
