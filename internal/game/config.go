package game

// Window.
const (
	WindowTitle = "Drift"
)

// Car visual: the sprite is CarLength pixels nose to tail and
// CarAspect times as wide.
const (
	CarLength = 20.0
	CarAspect = 0.5
)
