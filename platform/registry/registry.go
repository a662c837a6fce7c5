// Package registry keeps the live engine instances. The engine itself
// is single-threaded per match; the registry only serializes access to
// the id -> engine map shared by the HTTP and socket layers.
package registry

import (
	"errors"
	"sync"

	"github.com/DedS3t/monopoly-engine/platform/board"
	"github.com/DedS3t/monopoly-engine/platform/engine"
)

var ErrNotFound = errors.New("no live match with that id")

type Registry struct {
	mu      sync.Mutex
	matches map[string]*engine.Game
}

func New() *Registry {
	return &Registry{matches: make(map[string]*engine.Game)}
}

// Create starts a new match on a fresh canonical board. A zero seed
// means "not reproducible".
func (r *Registry) Create(id string, players int, seed int64) (*engine.Game, error) {
	b, err := board.Load()
	if err != nil {
		return nil, err
	}
	var roller *engine.Roller
	if seed != 0 {
		roller = engine.NewRoller(seed)
	}
	g, err := engine.New(b, players, roller)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.matches[id] = g
	return g, nil
}

func (r *Registry) Get(id string) (*engine.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.matches[id]
	if !ok {
		return nil, ErrNotFound
	}
	return g, nil
}

func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.matches, id)
}
