package registry

import (
	"errors"
	"fmt"

	"treehouse-guestlist/internal/models"
)

// ErrUnknownStore is returned by NewStore for an unsupported store kind
var ErrUnknownStore = errors.New("unknown store")

const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// Store keeps visitors in insertion order.
// Find returns nil, nil when no visitor matches.
type Store interface {
	Append(v models.Visitor) error
	Find(name string) (*models.Visitor, error)
	List() ([]models.Visitor, error)
	Close() error
}

// NewStore builds the store named by kind
func NewStore(kind string) (Store, error) {
	switch kind {
	case StoreMemory, "":
		return NewMemoryStore(), nil
	case StoreSQLite:
		return NewSQLiteStore()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStore, kind)
	}
}

// memory is a slice-backed Store
type memory struct {
	visitors []models.Visitor
}

// NewMemoryStore returns an empty in-memory Store
func NewMemoryStore() Store {
	return &memory{visitors: make([]models.Visitor, 0)}
}

func (m *memory) Append(v models.Visitor) error {
	m.visitors = append(m.visitors, v)
	return nil
}

func (m *memory) Find(name string) (*models.Visitor, error) {
	for _, v := range m.visitors {
		if v.Name == name {
			return &v, nil
		}
	}
	return nil, nil
}

func (m *memory) List() ([]models.Visitor, error) {
	visitors := make([]models.Visitor, len(m.visitors))
	copy(visitors, m.visitors)
	return visitors, nil
}

func (m *memory) Close() error { return nil }
