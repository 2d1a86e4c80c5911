package game

// Key is a keyboard key independent of the windowing library
type Key int

const (
	KeyEscape Key = iota
	KeyQ
	KeyE
	KeyW
	KeyS
	KeyA
	KeyD
	KeyF
	KeyG

	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	KeyComma
	KeyPeriod
	KeyEqual
	KeyMinus
)

// Keyboard is a snapshot of the key state of the current frame
type Keyboard interface {
	Pressed(Key) bool
}

// Step is the amount a held key changes a position, angle or scale per frame
const Step float32 = 0.04

// axis returns +Step if plus is held, -Step if minus is held, 0 for both or none
func axis(k Keyboard, plus, minus Key) float32 {
	var d float32
	if k.Pressed(plus) {
		d += Step
	}
	if k.Pressed(minus) {
		d -= Step
	}
	return d
}
