// Package guard provides a short-lived in-memory join de-duplication set.
// Rapid repeat join events for the same user are suppressed for a fixed
// window. The set is purely a dedup aid and is safe to lose on restart.
package guard

import (
	"sync"
	"time"
)

// DefaultWindow is how long a join stays debounced
const DefaultWindow = 60 * time.Second

// Config holds configuration for the join guard
type Config struct {
	// Window overrides the debounce window; zero means DefaultWindow
	Window time.Duration
}

// Guard tracks recently seen user IDs. Each entry owns a cancellable timer
// that removes it when the window expires.
type Guard struct {
	window time.Duration

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// New creates a new join guard
func New(cfg *Config) *Guard {
	window := DefaultWindow
	if cfg != nil && cfg.Window > 0 {
		window = cfg.Window
	}

	return &Guard{
		window: window,
		timers: make(map[string]*time.Timer),
	}
}

// Mark records a join for the user and reports whether it was the first one
// within the window. Callers send the welcome only when Mark returns true.
func (g *Guard) Mark(userID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, seen := g.timers[userID]; seen {
		return false
	}

	g.timers[userID] = time.AfterFunc(g.window, func() {
		g.forget(userID)
	})
	return true
}

// Stop cancels all pending timers and clears the set
func (g *Guard) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for userID, timer := range g.timers {
		timer.Stop()
		delete(g.timers, userID)
	}
}

func (g *Guard) forget(userID string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.timers, userID)
}
