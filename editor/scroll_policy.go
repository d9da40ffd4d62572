package editor

// ScrollPolicy controls whether the viewport may scroll away from the cursor.
type ScrollPolicy int

const (
	// ScrollAllowManual lets the mouse wheel scroll the viewport while the
	// cursor stays put.
	ScrollAllowManual ScrollPolicy = iota
	// ScrollFollowCursorOnly ignores the mouse wheel; the viewport moves only
	// to keep the cursor visible.
	ScrollFollowCursorOnly
)
