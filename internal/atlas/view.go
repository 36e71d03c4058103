package atlas

import (
	"math"

	"slimeatlas/internal/geom"
	"slimeatlas/internal/logging"
)

// View redraws whenever center, scale or window size changes.
type View struct {
	store         *Store
	size          *Signal[geom.Size]
	surfaces      SurfaceFunc
	marked        Predicate
	heightPercent int
	onFrame       func(Frame, Surface)

	last   Frame
	unsubs []func()
}

// ViewOptions configures Bind.
type ViewOptions struct {
	// HeightPercent is the share of the window height given to the surface.
	HeightPercent int
	// OnFrame receives every frame together with the surface it was drawn on.
	OnFrame func(Frame, Surface)
}

// Bind subscribes a View to store and size and draws the first frame.
func Bind(store *Store, size *Signal[geom.Size], surfaces SurfaceFunc, marked Predicate, opts ViewOptions) *View {
	if opts.HeightPercent <= 0 || opts.HeightPercent > 100 {
		opts.HeightPercent = 100
	}
	v := &View{
		store:         store,
		size:          size,
		surfaces:      surfaces,
		marked:        marked,
		heightPercent: opts.HeightPercent,
		onFrame:       opts.OnFrame,
	}
	v.unsubs = append(v.unsubs,
		store.Center.Subscribe(func(geom.Point) { v.Redraw() }),
		store.Scale.Subscribe(func(float64) { v.Redraw() }),
		size.Subscribe(func(geom.Size) { v.Redraw() }),
	)
	v.Redraw()
	return v
}

// SurfaceSize is the surface size for a window of the given size.
func (v *View) SurfaceSize(window geom.Size) geom.Size {
	return geom.Size{
		W: window.W,
		H: int(math.Floor(float64(window.H) * float64(v.heightPercent) / 100)),
	}
}

// Redraw renders the current state. Frames without a usable surface are skipped.
func (v *View) Redraw() {
	sz := v.SurfaceSize(v.size.Get())
	if sz.Empty() {
		return
	}
	log := logging.Logger()
	surf, err := v.surfaces(sz)
	if err != nil || surf == nil {
		log.Warn("atlas: surface unavailable, frame skipped", "w", sz.W, "h", sz.H, "err", err)
		return
	}
	f := Render(v.store.Center.Get(), v.store.Scale.Get(), surf, v.marked)
	v.last = f
	log.Debug("atlas: frame", "center_x", f.Center.X, "center_z", f.Center.Z,
		"scale", f.Scale, "visible", len(f.Visible), "marked", len(f.Marked))
	if v.onFrame != nil {
		v.onFrame(f, surf)
	}
}

// Last returns the most recent frame.
func (v *View) Last() Frame { return v.last }

// Close removes every subscription made by Bind.
func (v *View) Close() {
	for _, u := range v.unsubs {
		u()
	}
	v.unsubs = nil
}
