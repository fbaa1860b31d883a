// Package gift defines the value types exchanged during a distribution run:
// gifts carried in the sleigh and the recipients visited along the way.
// Every type here is immutable and its descriptions are pure functions.
package gift
