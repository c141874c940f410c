package xidach

import "fmt"

// OutcomeKind is how a round ended for the player
type OutcomeKind string

// OutcomeKind constants
const (
	OutcomeWin            OutcomeKind = "win"
	OutcomeLose           OutcomeKind = "lose"
	OutcomeDraw           OutcomeKind = "draw"
	OutcomePlayerBonusWin OutcomeKind = "player-bonus-win"
	OutcomeDealerBonusWin OutcomeKind = "dealer-bonus-win"
	OutcomeDoubleLoss     OutcomeKind = "double-loss"
)

// IsWin returns true if the player won money
func (o OutcomeKind) IsWin() bool {
	return o == OutcomeWin || o == OutcomePlayerBonusWin
}

// IsLoss returns true if the player lost money
func (o OutcomeKind) IsLoss() bool {
	return o == OutcomeLose || o == OutcomeDealerBonusWin || o == OutcomeDoubleLoss
}

// Outcome is the resolution of a round
// The stake was debited when the round was committed. Payout is credited back and
// Penalty is debited on top of the stake.
type Outcome struct {
	Kind        OutcomeKind `json:"kind"`
	PlayerValue int         `json:"playerValue"`
	DealerValue int         `json:"dealerValue"`
	PlayerClass HandClass   `json:"playerClass"`
	DealerClass HandClass   `json:"dealerClass"`
	Stake       int64       `json:"stake"`
	Payout      int64       `json:"payout"`
	Penalty     int64       `json:"penalty"`
	Message     string      `json:"message"`
}

// Net returns the change to the balance compared to before the stake was committed
func (o *Outcome) Net() int64 {
	return o.Payout - o.Stake - o.Penalty
}

// Detail returns the scores in the format shown to players
func (o *Outcome) Detail() string {
	return fmt.Sprintf("Player: %d — Dealer: %d", o.PlayerValue, o.DealerValue)
}

func (o *Outcome) String() string {
	return fmt.Sprintf("%s (%s) net %d", o.Kind, o.Detail(), o.Net())
}
