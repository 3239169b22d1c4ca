package domain

import "errors"

// MaxPartySize is the largest party the restaurant can seat at a single table
const MaxPartySize = 10

// ErrCapacityExceeded is returned when no capacity tier fits the party size
var ErrCapacityExceeded = errors.New("domain: maximum table capacity exceeded")

// capacityTiers are the fixed table sizes the floor is stocked with,
// in ascending order
var capacityTiers = []int{2, 4, 8, 10}

// RequiredCapacity maps a party size to the smallest capacity tier that
// seats it: 1-2 -> 2, 3-4 -> 4, 5-8 -> 8, 9-10 -> 10.
// Party sizes above MaxPartySize fail with ErrCapacityExceeded.
func RequiredCapacity(guests int) (int, error) {
	for _, tier := range capacityTiers {
		if guests <= tier {
			return tier, nil
		}
	}
	return 0, ErrCapacityExceeded
}
