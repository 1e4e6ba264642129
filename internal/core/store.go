package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned when a grid side length is not positive.
	ErrInvalidSize = errors.New("grid size must be positive")
	// ErrInvalidDensity is returned for a density outside 0-100.
	ErrInvalidDensity = errors.New("density must be within 0-100")
)

// Store owns the two generation buffers. Current is what the renderer shows
// and what the next step reads after Publish; previous is the staging copy
// the kernel reads while it writes current.
type Store struct {
	prev    *Generation
	curr    *Generation
	version uint64
}

// NewStore allocates both generations with side length size.
func NewStore(size int) (*Store, error) {
	if size <= 0 {
		return nil, fmt.Errorf("new store %d: %w", size, ErrInvalidSize)
	}
	return &Store{prev: NewGeneration(size), curr: NewGeneration(size)}, nil
}

// Size returns the side length of the grid.
func (s *Store) Size() int { return s.curr.N }

// Current returns the generation visible to the renderer.
func (s *Store) Current() *Generation { return s.curr }

// Previous returns the generation the next step reads from.
func (s *Store) Previous() *Generation { return s.prev }

// Version changes whenever the visible state may have changed.
func (s *Store) Version() uint64 { return s.version }

// Initialize seeds the current generation and mirrors it into previous.
func (s *Store) Initialize(seeder Seeder, p SeedParams) error {
	if p.Density < 0 || p.Density > 100 {
		return fmt.Errorf("initialize density %d: %w", p.Density, ErrInvalidDensity)
	}
	seeder.Seed(s.curr, p)
	s.prev.CopyFrom(s.curr)
	s.version++
	return nil
}

// SetCellDead kills a cell in both generations. Out-of-range coordinates and
// already-dead cells leave the store untouched.
func (s *Store) SetCellDead(row, col int) {
	if !s.curr.InBounds(row, col) {
		return
	}
	idx := s.curr.Index(row, col)
	if s.curr.data[idx] == 0 && s.prev.data[idx] == 0 {
		return
	}
	s.curr.data[idx] = 0
	s.prev.data[idx] = 0
	s.version++
}

// Publish copies current into previous so the next step reads a complete
// generation.
func (s *Store) Publish() {
	s.prev.CopyFrom(s.curr)
	s.version++
}
