// Package report prints human-readable run output. It is the only place
// that writes descriptions out; everything it prints is produced by pure
// description methods on the domain types.
package report

import (
	"fmt"
	"io"

	"github.com/eugenenazirov/gift-sleigh/internal/bag"
	"github.com/eugenenazirov/gift-sleigh/internal/distributor"
	"github.com/eugenenazirov/gift-sleigh/internal/gift"
)

// Printer writes run output line by line. The first write error is kept and
// every later call becomes a no-op.
type Printer struct {
	w     io.Writer
	santa string
	err   error
}

// NewPrinter creates a Printer that attributes outcomes to santa.
func NewPrinter(w io.Writer, santa string) *Printer {
	return &Printer{w: w, santa: santa}
}

// Header announces the start of a run.
func (p *Printer) Header(capacity float64) {
	p.printf("%s sets off with a bag holding up to %.2fkg\n", p.santa, capacity)
}

// Loaded reports a gift stored in the bag.
func (p *Printer) Loaded(g gift.Gift) {
	p.printf("packed %s\n", g)
}

// LoadRejected reports a gift the bag refused.
func (p *Printer) LoadRejected(g gift.Gift, reason error) {
	p.printf("could not pack %s: %v\n", g, reason)
}

// Outcome reports a single visit.
func (p *Printer) Outcome(o distributor.Outcome) {
	p.printf("%s\n", o.Describe(p.santa))
}

// BagState reports what is left in the bag.
func (p *Printer) BagState(b *bag.Bag) {
	if b.Len() == 0 {
		p.printf("bag is empty (capacity %.2fkg)\n", b.Capacity())
		return
	}
	p.printf("bag holds %d gift(s), %.2fkg of %.2fkg\n", b.Len(), b.TotalWeight(), b.Capacity())
	for _, line := range b.List() {
		p.printf("  - %s\n", line)
	}
}

// Err returns the first write error, if any.
func (p *Printer) Err() error {
	return p.err
}

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	if _, err := fmt.Fprintf(p.w, format, args...); err != nil {
		p.err = fmt.Errorf("write report: %w", err)
	}
}
