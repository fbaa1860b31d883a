package bag

import "errors"

var (
	// ErrInvalidCapacity is returned when a bag is created with a non-positive capacity.
	ErrInvalidCapacity = errors.New("bag capacity must be positive")
	// ErrCapacityExceeded is returned when adding a gift would push the bag over its capacity.
	ErrCapacityExceeded = errors.New("bag capacity exceeded")
	// ErrInvalidType is returned when something other than a gift is put in the bag.
	ErrInvalidType = errors.New("only gifts can be added to the bag")
	// ErrGiftNotFound is returned when removing a gift the bag does not hold.
	ErrGiftNotFound = errors.New("gift not found in bag")
)
