package input

// Grab is the cursor grab mode of the window.
type Grab uint8

const (
	GrabNone Grab = iota
	GrabLocked
	GrabConfined
)

func (g Grab) String() string {
	switch g {
	case GrabNone:
		return "none"
	case GrabLocked:
		return "locked"
	case GrabConfined:
		return "confined"
	default:
		return "unknown"
	}
}

// Cursor is the window cursor state owned by the game.
type Cursor struct {
	Grab    Grab
	Visible bool
}

// NewCursor returns a free, visible cursor.
func NewCursor() Cursor {
	return Cursor{Grab: GrabNone, Visible: true}
}

// Toggle flips between a free cursor and a locked one, and flips visibility.
func (c *Cursor) Toggle() {
	switch c.Grab {
	case GrabNone:
		c.Grab = GrabLocked
	default:
		c.Grab = GrabNone
	}
	c.Visible = !c.Visible
}

// CursorBackend pushes cursor state to the display surface.
type CursorBackend interface {
	ApplyCursor(c Cursor)
}

// NopCursor discards cursor changes (headless runs).
type NopCursor struct{}

// ApplyCursor implements CursorBackend.
func (NopCursor) ApplyCursor(Cursor) {}
