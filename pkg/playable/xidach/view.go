package xidach

import (
	"time"

	"xidach-server/pkg/deck"
)

// RoundView is a copy of a round that is safe to hand to another goroutine
// Hidden cards are nil.
type RoundView struct {
	UUID           string       `json:"uuid"`
	AccountID      int64        `json:"accountId"`
	Stake          int64        `json:"stake"`
	State          RoundState   `json:"state"`
	PlayerHand     []*deck.Card `json:"playerHand"`
	DealerHand     []*deck.Card `json:"dealerHand"`
	PlayerValue    int          `json:"playerValue"`
	PlayerClass    HandClass    `json:"playerClass"`
	DealerValue    int          `json:"dealerValue"`
	HoleRevealed   bool         `json:"holeRevealed"`
	CardsRemaining int          `json:"cardsRemaining"`
	Outcome        *Outcome     `json:"outcome,omitempty"`
	Created        time.Time    `json:"created"`
}

// View returns a snapshot of the round as the player is allowed to see it
func (r *Round) View() RoundView {
	visible := r.visibleDealerHand()

	v := RoundView{
		UUID:           r.UUID,
		AccountID:      r.AccountID,
		Stake:          r.Stake,
		State:          r.State,
		PlayerHand:     r.PlayerHand.Clone(),
		DealerHand:     r.maskedDealerHand(),
		PlayerValue:    HandValue(r.PlayerHand),
		PlayerClass:    Classify(r.PlayerHand),
		DealerValue:    HandValue(visible),
		HoleRevealed:   r.HoleRevealed,
		CardsRemaining: r.CardsRemaining(),
		Created:        r.Created,
	}

	if r.Outcome != nil {
		o := *r.Outcome
		v.Outcome = &o
	}

	return v
}

func (r *Round) isHoleHidden() bool {
	return !r.HoleRevealed && len(r.DealerHand) > holeCardPosition
}

func (r *Round) maskedDealerHand() []*deck.Card {
	cards := r.DealerHand.Clone()
	if r.isHoleHidden() {
		cards[holeCardPosition] = nil
	}

	return cards
}

func (r *Round) visibleDealerHand() deck.Hand {
	if !r.isHoleHidden() {
		return r.DealerHand
	}

	visible := make(deck.Hand, 0, len(r.DealerHand)-1)
	for i, card := range r.DealerHand {
		if i != holeCardPosition {
			visible = append(visible, card)
		}
	}

	return visible
}
