package distributor

import (
	"fmt"
	"strings"

	"github.com/eugenenazirov/gift-sleigh/internal/gift"
)

const (
	PolicyLightest = "lightest"
	PolicyFirstFit = "first-fit"
)

// Policy picks one gift among eligible candidates. Candidates are passed in
// bag order and the returned index refers to that slice.
type Policy interface {
	Select(candidates []gift.Gift) (int, bool)
}

type lightestPolicy struct{}

// Lightest selects the gift with the smallest weight. On ties the first
// candidate in bag order wins.
func Lightest() Policy {
	return lightestPolicy{}
}

func (lightestPolicy) Select(candidates []gift.Gift) (int, bool) {
	if len(candidates) == 0 {
		return -1, false
	}
	best := 0
	for i := 1; i < len(candidates); i++ {
		if candidates[i].Weight < candidates[best].Weight {
			best = i
		}
	}
	return best, true
}

type firstFitPolicy struct{}

// FirstFit selects the first candidate in bag order.
func FirstFit() Policy {
	return firstFitPolicy{}
}

func (firstFitPolicy) Select(candidates []gift.Gift) (int, bool) {
	if len(candidates) == 0 {
		return -1, false
	}
	return 0, true
}

// PolicyByName resolves a configured policy name.
func PolicyByName(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", PolicyLightest:
		return Lightest(), nil
	case PolicyFirstFit:
		return FirstFit(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}
