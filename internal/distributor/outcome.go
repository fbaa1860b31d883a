package distributor

import (
	"fmt"

	"github.com/eugenenazirov/gift-sleigh/internal/gift"
)

// Status is the terminal state of a single distribution attempt.
type Status int

const (
	// StatusRejected means the recipient is not deserving; the bag is untouched.
	StatusRejected Status = iota
	// StatusNoGift means no gift in the bag suits the recipient; the bag is untouched.
	StatusNoGift
	// StatusAwarded means a gift was handed over and removed from the bag.
	StatusAwarded
)

func (s Status) String() string {
	switch s {
	case StatusRejected:
		return "rejected"
	case StatusNoGift:
		return "no_gift"
	case StatusAwarded:
		return "awarded"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Outcome describes what happened when a recipient was visited.
type Outcome struct {
	Recipient gift.Recipient
	Status    Status
	// Gift is the awarded gift, or the requested one when Give could not hand it over.
	Gift      gift.Gift
	// Warning carries soft problems such as an unrecognised behaviour.
	Warning   error
}

// Awarded reports whether the recipient received a gift.
func (o Outcome) Awarded() bool {
	return o.Status == StatusAwarded
}

// Describe renders the outcome as a single human-readable line.
func (o Outcome) Describe(santa string) string {
	name := o.Recipient.Name
	switch o.Status {
	case StatusAwarded:
		return fmt.Sprintf("%s gives %s a %s", santa, name, o.Gift)
	case StatusNoGift:
		if o.Warning != nil {
			return fmt.Sprintf("%s has no suitable gift for %s (%v)", santa, name, o.Warning)
		}
		return fmt.Sprintf("%s has no suitable gift for %s", santa, name)
	default:
		if o.Warning != nil {
			return fmt.Sprintf("%s receives nothing from %s (%v)", name, santa, o.Warning)
		}
		return fmt.Sprintf("%s receives nothing from %s", name, santa)
	}
}
