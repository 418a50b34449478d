// Package layout decides which of the two mall rendering strategies applies:
// a paginated grid with a sidebar filter on wide viewports, or a category rail
// with an infinite list on narrow ones. The cutover is hard; there is no
// in-between layout.
package layout

// BreakpointPx is the viewport width below which the storefront renders in
// mobile mode.
const BreakpointPx = 768

// InfiniteScrollSlackPx is how close to the bottom of the document the scroll
// position must be before the next mobile page is appended.
const InfiniteScrollSlackPx = 500

// Mode is the active layout strategy.
type Mode string

const (
	Desktop Mode = "desktop"
	Mobile  Mode = "mobile"
)

// ModeForWidth classifies a viewport width. Zero or negative widths (unknown
// viewport) default to desktop.
func ModeForWidth(px int) Mode {
	if px > 0 && px < BreakpointPx {
		return Mobile
	}
	return Desktop
}

// IsMobile is a convenience for the boolean flag the state controller stores.
func IsMobile(px int) bool { return ModeForWidth(px) == Mobile }

// ShouldLoadMore reports whether a mobile scroll position is near enough to
// the end of the document to append the next page.
func ShouldLoadMore(viewportHeight, scrollY, documentHeight int) bool {
	return viewportHeight+scrollY >= documentHeight-InfiniteScrollSlackPx
}
