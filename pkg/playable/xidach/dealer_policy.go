package xidach

import "xidach-server/pkg/deck"

// PlayerSnapshot is what the dealer knows about the player's final hand
// It is taken once, when the player stands, and never recomputed while the dealer draws.
type PlayerSnapshot struct {
	Size  int       `json:"size"`
	Class HandClass `json:"class"`
}

// NewPlayerSnapshot returns a snapshot of the hand
func NewPlayerSnapshot(hand deck.Hand) PlayerSnapshot {
	return PlayerSnapshot{
		Size:  len(hand),
		Class: Classify(hand),
	}
}

// DealerShouldDraw decides whether the dealer takes another card
// The rules are checked in order and the first match decides.
func DealerShouldDraw(dealerValue int, player PlayerSnapshot) bool {
	if dealerValue < 15 {
		return true
	}

	// chase a bonus hand
	if player.Class.IsBonus() && dealerValue <= 18 {
		return true
	}

	if player.Size == 2 && dealerValue <= 16 {
		return true
	}

	if player.Size >= 3 && dealerValue >= 15 {
		return false
	}

	return false
}
