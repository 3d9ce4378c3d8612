package core

// Color is the role a screen cell plays when it is styled.
// The platform maps roles to concrete terminal colors, so games never
// deal with palettes or player preferences.
type Color uint8

// Color roles used by the board renderer.
const (
	ColorDefault Color = iota
	ColorFrame
	ColorPlayerA
	ColorPlayerB
	ColorEmpty
	ColorHighlight
	ColorDim
	ColorTitle
)
