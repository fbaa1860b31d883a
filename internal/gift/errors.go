package gift

import "errors"

var (
	// ErrInvalidGift is returned when a gift has a blank name, a non-positive weight, or a negative minimum age.
	ErrInvalidGift = errors.New("gift must have a name, a positive weight and a non-negative minimum age")
	// ErrInvalidRecipient is returned when a recipient has a blank name or a negative age.
	ErrInvalidRecipient = errors.New("recipient must have a name and a non-negative age")
	// ErrUnknownBehavior is returned when a behaviour value is not recognised.
	ErrUnknownBehavior = errors.New("unknown behaviour")
)
