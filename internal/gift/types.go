package gift

import (
	"fmt"
	"math"
	"strings"
)

// Gift is a single item carried in the bag.
type Gift struct {
	Name     string
	Weight   float64
	MinAge   int
	Category string
}

// Validate reports whether the gift can be stored in a bag.
func (g Gift) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidGift)
	}
	if !(g.Weight > 0) || math.IsInf(g.Weight, 0) {
		return fmt.Errorf("%w: %q weighs %.2f", ErrInvalidGift, g.Name, g.Weight)
	}
	if g.MinAge < 0 {
		return fmt.Errorf("%w: %q has minimum age %d", ErrInvalidGift, g.Name, g.MinAge)
	}
	return nil
}

func (g Gift) String() string {
	category := g.Category
	if category == "" {
		category = "uncategorised"
	}
	return fmt.Sprintf("%s (%s, %.2fkg, ages %d+)", g.Name, category, g.Weight, g.MinAge)
}

// Behavior classifies how a recipient behaved during the year.
type Behavior int

const (
	// BehaviorUnknown is the zero value and is never deserving.
	BehaviorUnknown Behavior = iota
	BehaviorGood
	BehaviorBad
)

// ParseBehavior maps a raw behaviour label to a Behavior. Unrecognised labels
// yield BehaviorUnknown together with ErrUnknownBehavior so callers can warn
// and still carry on.
func ParseBehavior(raw string) (Behavior, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "good", "nice", "jó", "true":
		return BehaviorGood, nil
	case "bad", "naughty", "rossz", "false":
		return BehaviorBad, nil
	default:
		return BehaviorUnknown, fmt.Errorf("%w: %q", ErrUnknownBehavior, raw)
	}
}

// Deserving reports whether the behaviour earns a gift.
func (b Behavior) Deserving() bool {
	return b == BehaviorGood
}

func (b Behavior) String() string {
	switch b {
	case BehaviorGood:
		return "good"
	case BehaviorBad:
		return "bad"
	default:
		return "unknown"
	}
}

// Recipient is a person visited during the run.
type Recipient struct {
	Name     string
	Age      int
	Behavior Behavior
}

// Validate reports whether the recipient can be visited.
func (r Recipient) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidRecipient)
	}
	if r.Age < 0 {
		return fmt.Errorf("%w: %q is %d years old", ErrInvalidRecipient, r.Name, r.Age)
	}
	return nil
}

// CanReceive reports whether the recipient is old enough for the gift.
func (r Recipient) CanReceive(g Gift) bool {
	return g.MinAge <= r.Age
}

func (r Recipient) String() string {
	return fmt.Sprintf("%s (age %d, %s)", r.Name, r.Age, r.Behavior)
}
