package input

// Frame is one tick of scripted input.
type Frame struct {
	Down   []Key
	DX, DY float64
}

// Script replays a fixed sequence of frames; after the last frame all keys
// are released. Used in headless runs and tests.
type Script struct {
	frames []Frame
	pos    int
	cur    Frame
}

// NewScript creates a script from frames.
func NewScript(frames ...Frame) *Script {
	return &Script{frames: frames}
}

// Hold returns n frames with keys held down.
func Hold(n int, keys ...Key) []Frame {
	out := make([]Frame, n)
	for i := range out {
		out[i] = Frame{Down: keys}
	}
	return out
}

// Idle returns n frames with nothing pressed.
func Idle(n int) []Frame {
	return make([]Frame, n)
}

// Advance moves to the next frame. Call once per tick before sampling.
func (s *Script) Advance() {
	if s.pos < len(s.frames) {
		s.cur = s.frames[s.pos]
		s.pos++
		return
	}
	s.cur = Frame{}
}

// Append adds frames to the end of the script.
func (s *Script) Append(frames ...Frame) {
	s.frames = append(s.frames, frames...)
}

// KeyDown implements Source.
func (s *Script) KeyDown(k Key) bool {
	for _, d := range s.cur.Down {
		if d == k {
			return true
		}
	}
	return false
}

// MouseDelta implements Source.
func (s *Script) MouseDelta() (dx, dy float64) {
	return s.cur.DX, s.cur.DY
}
