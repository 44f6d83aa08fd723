package dice

import (
	"errors"
	"sync"
)

var ErrExhausted = errors.New("dice script exhausted")

// Script replays a fixed list of rolls once
type Script struct {
	mu    sync.Mutex
	rolls []int
}

// NewScript returns a die that yields rolls in order
func NewScript(rolls ...int) *Script {
	return &Script{rolls: rolls}
}

// Roll returns the next scripted value. It panics with ErrExhausted once the
// script has run out, since a test that rolls more than it planned is broken.
func (s *Script) Roll() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.rolls) == 0 {
		panic(ErrExhausted)
	}
	v := s.rolls[0]
	s.rolls = s.rolls[1:]
	return v
}

// Remaining returns how many rolls are left
func (s *Script) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rolls)
}

// Cycle repeats a fixed list of rolls forever
type Cycle struct {
	mu    sync.Mutex
	rolls []int
	next  int
}

// NewCycle returns a die that loops over rolls. It panics if rolls is empty.
func NewCycle(rolls ...int) *Cycle {
	if len(rolls) == 0 {
		panic(ErrExhausted)
	}
	return &Cycle{rolls: rolls}
}

// Roll returns the next value, wrapping around at the end
func (c *Cycle) Roll() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	v := c.rolls[c.next]
	c.next = (c.next + 1) % len(c.rolls)
	return v
}
