package distributor

import "errors"

var (
	// ErrUnknownPolicy is returned when a selection policy name is not recognised.
	ErrUnknownPolicy = errors.New("unknown selection policy")
	// ErrNilBag is returned when a Distributor is created without a bag.
	ErrNilBag = errors.New("distributor needs a bag")
	// ErrTooYoung is reported when a named gift's minimum age is above the recipient's age.
	ErrTooYoung = errors.New("recipient is too young for the gift")
)
