package xidach

// balanceMultiplier is how many stakes the balance must cover before a round can start
// A round can cost up to two stakes.
const balanceMultiplier = 2

// Options contains options for creating a new round of Xì Dách
type Options struct {
	// Denominations are the stakes a player may commit
	Denominations []int64
}

// DefaultOptions returns the default set of options
func DefaultOptions() Options {
	return Options{
		Denominations: []int64{1000, 5000, 10000, 100000, 500000, 1000000},
	}
}

// IsDenomination returns true if the stake is one of the configured denominations
func (o Options) IsDenomination(stake int64) bool {
	for _, d := range o.Denominations {
		if d == stake {
			return true
		}
	}

	return false
}

// RequiredBalance returns the balance needed to commit the stake
func RequiredBalance(stake int64) int64 {
	return balanceMultiplier * stake
}
