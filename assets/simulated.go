package assets

import "time"

// Simulated is a Backend for headless runs: every texture resolves once
// Delay has elapsed, or fails with Err if set.
type Simulated struct {
	Delay time.Duration
	Err   error

	elapsed  time.Duration
	finished bool
	next     TextureID
	live     map[TextureID]string
}

// NewSimulated creates a backend that resolves after delay.
func NewSimulated(delay time.Duration) *Simulated {
	return &Simulated{Delay: delay, live: make(map[TextureID]string)}
}

// Tick implements Ticker.
func (s *Simulated) Tick(dt time.Duration) {
	s.elapsed += dt
}

// Finish makes every pending load resolve on the next poll.
func (s *Simulated) Finish() {
	s.finished = true
}

// LoadTexture implements Backend.
func (s *Simulated) LoadTexture(path string) (TextureID, error) {
	if !s.finished && s.elapsed < s.Delay {
		return 0, ErrPending
	}
	if s.Err != nil {
		return 0, s.Err
	}
	s.next++
	if s.live == nil {
		s.live = make(map[TextureID]string)
	}
	s.live[s.next] = path
	return s.next, nil
}

// UnloadTexture implements Backend.
func (s *Simulated) UnloadTexture(id TextureID) {
	delete(s.live, id)
}

// Live implements Backend.
func (s *Simulated) Live() int {
	return len(s.live)
}
