package registry

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"treehouse-guestlist/internal/models"
)

// Registry is the ordered list of every visitor the treehouse knows about
type Registry struct {
	mu    sync.RWMutex
	store Store
	log   zerolog.Logger
}

// DefaultSeed returns the visitors the treehouse starts with
func DefaultSeed() []models.Visitor {
	return []models.Visitor{
		models.NewVisitor("Bert", models.Accept{}, 45),
		models.NewVisitor("Steve", models.NewAcceptWithNote("Lactose-free milk is in the fridge"), 15),
		models.NewVisitor("Fred", models.Refuse{}, 30),
	}
}

// New creates a registry on top of store and appends seed in order
func New(store Store, log zerolog.Logger, seed ...models.Visitor) (*Registry, error) {
	r := &Registry{
		store: store,
		log:   log.With().Str("component", "registry").Logger(),
	}

	for _, v := range seed {
		if err := r.Add(v); err != nil {
			return nil, fmt.Errorf("failed to seed registry: %w", err)
		}
	}

	return r, nil
}

// Add appends a visitor to the end of the list
func (r *Registry) Add(v models.Visitor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Append(v); err != nil {
		return fmt.Errorf("failed to add visitor %q: %w", v.Name, err)
	}
	r.log.Debug().Str("name", v.Name).Str("action", string(v.Action.Kind())).Msg("Visitor added")
	return nil
}

// Classify returns the first visitor whose name equals name.
// A nil visitor with a nil error means the name is not on the list.
func (r *Registry) Classify(name string) (*models.Visitor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, err := r.store.Find(name)
	if err != nil {
		return nil, fmt.Errorf("failed to look up %q: %w", name, err)
	}
	return v, nil
}

// RegisterUnknown puts a newcomer on probation
func (r *Registry) RegisterUnknown(name string) (models.Visitor, error) {
	v := models.NewVisitor(name, models.Probation{}, 0)
	if err := r.Add(v); err != nil {
		return models.Visitor{}, err
	}
	return v, nil
}

// All returns every visitor in insertion order
func (r *Registry) All() ([]models.Visitor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	visitors, err := r.store.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list visitors: %w", err)
	}
	return visitors, nil
}

// Len returns the number of visitors
func (r *Registry) Len() (int, error) {
	visitors, err := r.All()
	if err != nil {
		return 0, err
	}
	return len(visitors), nil
}

// Close releases the underlying store
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.Close()
}
