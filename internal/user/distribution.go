package user

import "fmt"

// RoleWeight is a relative weight for one role.
type RoleWeight struct {
	Role   Role
	Weight float64
}

// Distribution is a weight table for role sampling. Weights are relative and
// need not sum to 1.
type Distribution []RoleWeight

// DefaultDistribution is 20% vip, 30% trial, 50% normal.
func DefaultDistribution() Distribution {
	return Distribution{
		{Role: RoleVIP, Weight: 0.20},
		{Role: RoleTrial, Weight: 0.30},
		{Role: RoleNormal, Weight: 0.50},
	}
}

// Validate checks that every role is known, no weight is negative and the
// total is positive.
func (d Distribution) Validate() error {
	if len(d) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidDistribution)
	}

	var total float64
	for _, w := range d {
		if !w.Role.Valid() {
			return fmt.Errorf("%w: unknown role %q", ErrInvalidDistribution, w.Role)
		}
		if w.Weight < 0 {
			return fmt.Errorf("%w: negative weight for %s", ErrInvalidDistribution, w.Role)
		}
		total += w.Weight
	}

	if total <= 0 {
		return fmt.Errorf("%w: weights sum to zero", ErrInvalidDistribution)
	}
	return nil
}

// total sums all weights.
func (d Distribution) total() float64 {
	var t float64
	for _, w := range d {
		t += w.Weight
	}
	return t
}

// pick draws one role. d must be valid.
func (d Distribution) pick(src Source) Role {
	r := src.Float64() * d.total()

	var last Role
	for _, w := range d {
		if w.Weight <= 0 {
			continue
		}
		if r < w.Weight {
			return w.Role
		}
		r -= w.Weight
		last = w.Role
	}

	// float rounding can leave r just past the final bucket
	return last
}
