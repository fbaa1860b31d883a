// Package scenario describes the gifts and recipients of a distribution run
// and loads them from YAML.
package scenario

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/gift-sleigh/internal/gift"
)

// ErrEmptyScenario is returned when a scenario lists no recipients.
var ErrEmptyScenario = errors.New("scenario must list at least one recipient")

// GiftRecord is the YAML shape of a gift.
type GiftRecord struct {
	Name     string  `yaml:"name"`
	Weight   float64 `yaml:"weight"`
	MinAge   int     `yaml:"min_age"`
	Category string  `yaml:"category"`
}

// RecipientRecord is the YAML shape of a recipient. Behavior is kept raw so
// unrecognised values survive decoding and are resolved at build time.
// Wish optionally names the gift the recipient should get instead of the
// one the selection policy would pick.
type RecipientRecord struct {
	Name     string `yaml:"name"`
	Age      int    `yaml:"age"`
	Behavior string `yaml:"behavior"`
	Wish     string `yaml:"wish"`
}

// Visit is one stop of the run.
type Visit struct {
	Recipient gift.Recipient
	Wish      string
}

// Scenario is the input of a run: the gifts to load and the recipients to visit, in order.
type Scenario struct {
	Gifts      []GiftRecord      `yaml:"gifts"`
	Recipients []RecipientRecord `yaml:"recipients"`
}

// Default returns the built-in sample scenario.
func Default() Scenario {
	return Scenario{
		Gifts: []GiftRecord{
			{Name: "teddy bear", Weight: 2, MinAge: 3, Category: "toy"},
			{Name: "bicycle", Weight: 5, MinAge: 1, Category: "outdoor"},
			{Name: "board game", Weight: 1.5, MinAge: 8, Category: "game"},
			{Name: "storybook", Weight: 0.8, MinAge: 5, Category: "book"},
			{Name: "rocking horse", Weight: 4, MinAge: 2, Category: "toy"},
		},
		Recipients: []RecipientRecord{
			{Name: "Alice", Age: 4, Behavior: "good"},
			{Name: "Bob", Age: 10, Behavior: "bad"},
			{Name: "Chloe", Age: 9, Behavior: "good"},
			{Name: "Dmitri", Age: 0, Behavior: "good"},
			{Name: "Eve", Age: 7, Behavior: "mischievous"},
			{Name: "Farid", Age: 6, Behavior: "good"},
		},
	}
}

// LoadFile reads and validates a scenario from a YAML file.
func LoadFile(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("read file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML scenario document.
func Parse(data []byte) (Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scenario{}, fmt.Errorf("parse YAML: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Scenario{}, err
	}
	return s, nil
}

// Validate checks every recipient record and reports all problems at once.
// Gifts are not validated here; the bag rejects invalid gifts one by one
// when they are loaded.
func (s Scenario) Validate() error {
	if len(s.Recipients) == 0 {
		return ErrEmptyScenario
	}
	var errs error
	for i, r := range s.Recipients {
		rec := gift.Recipient{Name: r.Name, Age: r.Age}
		if err := rec.Validate(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("recipient %d: %w", i, err))
		}
	}
	return errs
}

// BuildGifts converts the gift records into domain values, in file order.
func (s Scenario) BuildGifts() []gift.Gift {
	out := make([]gift.Gift, 0, len(s.Gifts))
	for _, g := range s.Gifts {
		out = append(out, gift.Gift{
			Name:     g.Name,
			Weight:   g.Weight,
			MinAge:   g.MinAge,
			Category: g.Category,
		})
	}
	return out
}

// BuildVisits converts the recipient records into visits, in file order.
// Unrecognised behaviours become gift.BehaviorUnknown; their parse errors are
// returned combined so the caller can warn about them.
func (s Scenario) BuildVisits() ([]Visit, error) {
	out := make([]Visit, 0, len(s.Recipients))
	var warnings error
	for _, r := range s.Recipients {
		behavior, err := gift.ParseBehavior(r.Behavior)
		if err != nil {
			warnings = multierr.Append(warnings, fmt.Errorf("recipient %s: %w", r.Name, err))
		}
		out = append(out, Visit{
			Recipient: gift.Recipient{Name: r.Name, Age: r.Age, Behavior: behavior},
			Wish:      strings.TrimSpace(r.Wish),
		})
	}
	return out, warnings
}

// BuildRecipients is BuildVisits without the wishes.
func (s Scenario) BuildRecipients() ([]gift.Recipient, error) {
	visits, warnings := s.BuildVisits()
	out := make([]gift.Recipient, 0, len(visits))
	for _, v := range visits {
		out = append(out, v.Recipient)
	}
	return out, warnings
}
