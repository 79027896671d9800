package docnav

// Default geometry for outline scroll tracking, in logical pixels.
// The top margin and bottom fraction define the band of the viewport a
// heading must enter to be considered the one currently being read; the
// header offset keeps anchors from hiding under a fixed page header when
// navigating.
const (
	DefaultHeaderOffset   = 100.0
	DefaultTopMargin      = 80.0
	DefaultBottomFraction = 0.8
)

// AnchorBox describes the position of a heading anchor relative to the
// viewport top. Top is negative once the anchor has scrolled past.
type AnchorBox struct {
	ID     string
	Top    float64
	Bottom float64
}

// Viewport abstracts the UI surface a document outline is rendered into,
// so outline logic stays testable without a real DOM. Implementations wrap
// whatever the host platform provides (intersection observers, scroll
// offsets, element geometry).
type Viewport interface {
	// Anchors returns current boxes for the given anchor IDs, in the order
	// given. IDs with no rendered anchor are silently omitted.
	Anchors(ids []string) []AnchorBox

	// Height returns the visible height of the viewport.
	Height() float64

	// ScrollTo scrolls the viewport so the anchor's top sits offset below
	// the viewport top. Unknown IDs are ignored.
	ScrollTo(id string, offset float64)
}
