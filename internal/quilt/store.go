package quilt

import "fmt"

// Store keeps every created or derived patch in insertion order, up to
// MaxPatches.
type Store struct {
	patches  []*Patch
	capacity int
}

func NewStore() *Store {
	return &Store{
		patches:  make([]*Patch, 0),
		capacity: MaxPatches,
	}
}

// Create appends a default-size patch of the given color with no
// coordinates.
func (s *Store) Create(color string) (*Patch, error) {
	patch := &Patch{Size: Square(DefaultPatchSize), Color: color}
	if err := s.Add(patch); err != nil {
		return nil, err
	}
	return patch, nil
}

// Add appends an existing patch, such as a grouped one.
func (s *Store) Add(patch *Patch) error {
	if s.Full() {
		return fmt.Errorf("you can only store up to %d patches: %w", s.capacity, ErrCapacity)
	}
	s.patches = append(s.patches, patch)
	return nil
}

func (s *Store) Full() bool {
	return len(s.patches) >= s.capacity
}

func (s *Store) Len() int {
	return len(s.patches)
}

func (s *Store) At(i int) (*Patch, error) {
	if i < 0 || i >= len(s.patches) {
		return nil, fmt.Errorf("patch %d: %w", i+1, ErrNoSuchPatch)
	}
	return s.patches[i], nil
}

// Patches returns the stored patches in insertion order. The slice is a
// copy; the patches are shared.
func (s *Store) Patches() []*Patch {
	out := make([]*Patch, len(s.patches))
	copy(out, s.patches)
	return out
}
