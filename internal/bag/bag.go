// Package bag implements the weight-bounded container the gifts travel in.
package bag

import (
	"fmt"
	"math"
	"slices"
	"sync"

	"github.com/eugenenazirov/gift-sleigh/internal/gift"
)

// Bag keeps gifts in insertion order and never holds more weight than its
// capacity. Mutations are serialised with a mutex.
type Bag struct {
	mu       sync.Mutex
	capacity float64
	gifts    []gift.Gift
}

// New creates an empty bag with the given weight capacity.
func New(capacity float64) (*Bag, error) {
	if !(capacity > 0) || math.IsInf(capacity, 0) {
		return nil, fmt.Errorf("%w: got %.2f", ErrInvalidCapacity, capacity)
	}
	return &Bag{capacity: capacity}, nil
}

// Add stores the gift unless it is invalid or would exceed the capacity.
// A rejected gift leaves the bag untouched.
func (b *Bag) Add(g gift.Gift) error {
	if err := g.Validate(); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	current := b.totalWeightLocked()
	if current+g.Weight > b.capacity {
		return fmt.Errorf("%w: adding %q (%.2fkg) to %.2fkg of %.2fkg",
			ErrCapacityExceeded, g.Name, g.Weight, current, b.capacity)
	}
	b.gifts = append(b.gifts, g)
	return nil
}

// AddItem is the untyped entry point for loaders that handle arbitrary values.
func (b *Bag) AddItem(item any) error {
	switch v := item.(type) {
	case gift.Gift:
		return b.Add(v)
	case *gift.Gift:
		if v == nil {
			return fmt.Errorf("%w: got nil gift", ErrInvalidType)
		}
		return b.Add(*v)
	default:
		return fmt.Errorf("%w: got %T", ErrInvalidType, item)
	}
}

// Remove drops the first gift equal to g.
func (b *Bag) Remove(g gift.Gift) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	idx := slices.Index(b.gifts, g)
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrGiftNotFound, g.Name)
	}
	b.gifts = slices.Delete(b.gifts, idx, idx+1)
	return nil
}

// FindByName returns the first held gift with the given name.
func (b *Bag) FindByName(name string) (gift.Gift, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	idx := slices.IndexFunc(b.gifts, func(g gift.Gift) bool { return g.Name == name })
	if idx < 0 {
		return gift.Gift{}, false
	}
	return b.gifts[idx], true
}

// TotalWeight returns the combined weight of every gift in the bag.
func (b *Bag) TotalWeight() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.totalWeightLocked()
}

// List returns the gift descriptions in insertion order.
func (b *Bag) List() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]string, 0, len(b.gifts))
	for _, g := range b.gifts {
		out = append(out, g.String())
	}
	return out
}

// Gifts returns a copy of the held gifts in insertion order.
func (b *Bag) Gifts() []gift.Gift {
	b.mu.Lock()
	defer b.mu.Unlock()

	return slices.Clone(b.gifts)
}

func (b *Bag) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.gifts)
}

func (b *Bag) Capacity() float64 {
	return b.capacity
}

// Remaining returns how much weight can still be added.
func (b *Bag) Remaining() float64 {
	return b.capacity - b.TotalWeight()
}

func (b *Bag) totalWeightLocked() float64 {
	var total float64
	for _, g := range b.gifts {
		total += g.Weight
	}
	return total
}
