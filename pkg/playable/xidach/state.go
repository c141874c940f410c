package xidach

// RoundState is the state of the current round
type RoundState string

// RoundState constants
const (
	// RoundStateBetting means the stake is committed and no cards have been dealt
	RoundStateBetting RoundState = "betting"

	// RoundStateDealing means the opening cards are being dealt
	RoundStateDealing RoundState = "dealing"

	// RoundStatePlayerTurn means the player may hit or stand
	RoundStatePlayerTurn RoundState = "player-turn"

	// RoundStateDealerTurn means the player stood and the dealer is drawing
	RoundStateDealerTurn RoundState = "dealer-turn"

	// RoundStateResolved means the outcome is final. There are no transitions out of it.
	RoundStateResolved RoundState = "resolved"
)

// IsPlayerTurnOver returns true once the player can no longer act
func (s RoundState) IsPlayerTurnOver() bool {
	return s == RoundStateDealerTurn || s == RoundStateResolved
}
