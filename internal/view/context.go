// Package view holds the geometry classifier and the styled row data passed
// between the renderer and the display layer.
package view

const (
	// MinHeight covers title, top pad, one content row, bottom pad and help.
	MinHeight = 5
	// MinCompactWidth is the floor for the abbreviated layout.
	MinCompactWidth = 20
	// MinFullWidth fits the longest fully spelled row prefix.
	MinFullWidth = 34

	// chromeRows is title + two pads + help.
	chromeRows = 4
)

// Context is the viewport size in cells. The derived predicates are
// computed on every call so a resize is never observed stale.
type Context struct {
	Width  int
	Height int
}

func NewContext(width, height int) Context {
	return Context{Width: width, Height: height}
}

// Update records a resize.
func (c *Context) Update(width, height int) {
	c.Width = width
	c.Height = height
}

func (c Context) IsMinimumViewHeight() bool {
	return c.Height > MinHeight
}

func (c Context) IsMinimumViewWidth() bool {
	return c.Width > MinCompactWidth
}

func (c Context) IsFullWidth() bool {
	return c.Width >= MinFullWidth
}

// IsWindowTooSmall is true when either minimum is not met; callers show a
// placeholder instead of content.
func (c Context) IsWindowTooSmall() bool {
	return !c.IsMinimumViewWidth() || !c.IsMinimumViewHeight()
}

// ContentHeight is the number of list rows that fit between the chrome.
func (c Context) ContentHeight() int {
	h := c.Height - chromeRows
	if h < 0 {
		return 0
	}
	return h
}
