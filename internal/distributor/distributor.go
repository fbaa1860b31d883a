// Package distributor matches recipients with gifts from a bag.
package distributor

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/eugenenazirov/gift-sleigh/internal/bag"
	"github.com/eugenenazirov/gift-sleigh/internal/gift"
)

// Award records a gift handed to a recipient.
type Award struct {
	Recipient string
	Gift      gift.Gift
}

// Distributor hands out gifts from a single bag and remembers who received what.
type Distributor struct {
	name   string
	bag    *bag.Bag
	policy Policy
	logger *zap.Logger
	awards []Award
}

// Option configures Distributor behaviour.
type Option func(*Distributor)

// WithPolicy overrides the default lightest-gift policy.
func WithPolicy(p Policy) Option {
	return func(d *Distributor) {
		if p != nil {
			d.policy = p
		}
	}
}

// WithLogger attaches a logger for warnings and awards.
func WithLogger(logger *zap.Logger) Option {
	return func(d *Distributor) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// New creates a Distributor named name that draws from b.
func New(name string, b *bag.Bag, opts ...Option) (*Distributor, error) {
	if b == nil {
		return nil, ErrNilBag
	}
	d := &Distributor{
		name:   name,
		bag:    b,
		policy: Lightest(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

func (d *Distributor) Name() string {
	return d.name
}

// Distribute visits one recipient. Deserving recipients receive at most one
// gift they are old enough for; the chosen gift is removed from the bag.
// Any other outcome leaves the bag unchanged.
func (d *Distributor) Distribute(r gift.Recipient) Outcome {
	out, ok := d.checkDeserving(r)
	if !ok {
		return out
	}

	held := d.bag.Gifts()
	candidates := make([]gift.Gift, 0, len(held))
	for _, g := range held {
		if r.CanReceive(g) {
			candidates = append(candidates, g)
		}
	}

	idx, ok := d.policy.Select(candidates)
	if !ok || idx < 0 || idx >= len(candidates) {
		out.Status = StatusNoGift
		return out
	}

	chosen := candidates[idx]
	if err := d.bag.Remove(chosen); err != nil {
		// only reachable if the bag changed between the snapshot and removal
		d.logger.Error("selected gift vanished from bag",
			zap.String("recipient", r.Name),
			zap.String("gift", chosen.Name),
			zap.Error(err),
		)
		out.Status = StatusNoGift
		return out
	}

	return d.award(out, chosen)
}

// Give hands a specific gift to the recipient under the same rules as
// Distribute: the recipient must be deserving, old enough, and the gift must
// still be in the bag. Otherwise the bag is left unchanged.
func (d *Distributor) Give(r gift.Recipient, g gift.Gift) Outcome {
	out, ok := d.checkDeserving(r)
	if !ok {
		return out
	}

	out.Status = StatusNoGift
	out.Gift = g
	if !r.CanReceive(g) {
		out.Warning = fmt.Errorf("%w: %s needs age %d, %s is %d", ErrTooYoung, g.Name, g.MinAge, r.Name, r.Age)
		return out
	}
	if err := d.bag.Remove(g); err != nil {
		out.Warning = err
		return out
	}

	return d.award(out, g)
}

// Awards returns every gift handed out so far, in order.
func (d *Distributor) Awards() []Award {
	return slices.Clone(d.awards)
}

// Received returns the gifts handed to the named recipient, in order.
func (d *Distributor) Received(recipient string) []gift.Gift {
	var out []gift.Gift
	for _, a := range d.awards {
		if a.Recipient == recipient {
			out = append(out, a.Gift)
		}
	}
	return out
}

// checkDeserving returns a rejected outcome and false for recipients who do
// not earn a gift. Unknown behaviour is logged and carried as a warning.
func (d *Distributor) checkDeserving(r gift.Recipient) (Outcome, bool) {
	out := Outcome{Recipient: r, Status: StatusRejected}

	switch r.Behavior {
	case gift.BehaviorGood:
		return out, true
	case gift.BehaviorBad:
		return out, false
	default:
		out.Warning = fmt.Errorf("%w for %s", gift.ErrUnknownBehavior, r.Name)
		d.logger.Warn("unrecognised behaviour, treating recipient as undeserving",
			zap.String("recipient", r.Name),
			zap.Stringer("behavior", r.Behavior),
		)
		return out, false
	}
}

func (d *Distributor) award(out Outcome, g gift.Gift) Outcome {
	d.awards = append(d.awards, Award{Recipient: out.Recipient.Name, Gift: g})
	d.logger.Debug("gift awarded",
		zap.String("recipient", out.Recipient.Name),
		zap.String("gift", g.Name),
		zap.Float64("weight", g.Weight),
	)
	out.Status = StatusAwarded
	out.Gift = g
	out.Warning = nil
	return out
}
