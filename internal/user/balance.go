package user

// balance bounds in CLP
const (
	TrialBalance     int64 = 100_000
	VIPMinBalance    int64 = 100_000
	VIPMaxBalance    int64 = 1_000_000
	NormalMinBalance int64 = 0
	NormalMaxBalance int64 = 50_000
)

// BalanceRange is an inclusive balance interval. Min == Max means fixed.
type BalanceRange struct {
	Min int64
	Max int64
}

// Fixed reports whether the range holds a single value.
func (b BalanceRange) Fixed() bool {
	return b.Min == b.Max
}

// Contains reports whether v lies inside the range.
func (b BalanceRange) Contains(v int64) bool {
	return v >= b.Min && v <= b.Max
}

// BalanceRangeFor returns the balance rule for a role.
func BalanceRangeFor(r Role) BalanceRange {
	switch r {
	case RoleTrial:
		return BalanceRange{Min: TrialBalance, Max: TrialBalance}
	case RoleVIP:
		return BalanceRange{Min: VIPMinBalance, Max: VIPMaxBalance}
	default:
		return BalanceRange{Min: NormalMinBalance, Max: NormalMaxBalance}
	}
}

// balance draws a balance for the role. fixed ranges consume no randomness.
func balance(r Role, src Source) int64 {
	rng := BalanceRangeFor(r)
	if rng.Fixed() {
		return rng.Min
	}
	return rng.Min + src.Int64N(rng.Max-rng.Min+1)
}
