package core

// Color identifies a foreground/background pair for a screen cell.
// The platform layer maps these to actual terminal styles; core only tags
// cells, keeping game logic free of rendering dependencies.
type Color uint8

// Color pairs for game elements.
const (
	ColorDefault Color = iota
	ColorPaddle        // player paddle: white on blue
	ColorBall          // ball: red on default
	ColorTitle         // menus and banners: green on default
	ColorAI            // AI paddle: white on yellow
)
