package core

// Color identifies a palette entry for a screen cell.
// The platform layer decides how each entry maps to terminal colors.
type Color uint8

// Palette entries used by the snake board and HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorWhite
	ColorBrightWhite
	ColorGray
	ColorBoardLight // even checkerboard cells
	ColorBoardDark  // odd checkerboard cells
	ColorSnake
	ColorSnakeHead
	ColorFood
)
