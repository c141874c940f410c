package room

import "errors"

// ErrRoundNotFound is returned when the account has no round with the UUID
var ErrRoundNotFound = errors.New("round not found")

// ErrRoundInProgress is returned when a new round is committed before the last one is settled
var ErrRoundInProgress = errors.New("a round is already in progress")

// ErrSettlementFailed is returned when the outcome could not be applied to the wallet
// The outcome is kept and the settlement can be retried.
var ErrSettlementFailed = errors.New("settlement failed")

// ErrNothingToSettle is returned when a retry is requested for a settled or unresolved round
var ErrNothingToSettle = errors.New("round has nothing to settle")
