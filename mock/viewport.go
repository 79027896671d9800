package mock

import "github.com/fwojciec/docnav"

var _ docnav.Viewport = (*Viewport)(nil)

// Viewport is a mock implementation of docnav.Viewport.
type Viewport struct {
	AnchorsFn  func(ids []string) []docnav.AnchorBox
	HeightFn   func() float64
	ScrollToFn func(id string, offset float64)
}

func (v *Viewport) Anchors(ids []string) []docnav.AnchorBox {
	return v.AnchorsFn(ids)
}

func (v *Viewport) Height() float64 {
	return v.HeightFn()
}

func (v *Viewport) ScrollTo(id string, offset float64) {
	v.ScrollToFn(id, offset)
}
