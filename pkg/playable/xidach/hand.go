package xidach

import (
	"xidach-server/pkg/deck"
)

// bustValue is the highest value a hand can have without busting
const bustValue = 21

// HandClass is the special-hand classification of a hand
type HandClass string

// HandClass constants
const (
	// HandClassNormal is any hand that is not a bonus hand, busted hands included
	HandClassNormal HandClass = "normal"

	// HandClassFiveCardBonus (Ngũ Linh) is exactly five cards worth 21 or less
	HandClassFiveCardBonus HandClass = "five-card-bonus"

	// HandClassPairAcesBonus (Nhà Hoàng) is exactly two cards, both aces
	HandClassPairAcesBonus HandClass = "pair-aces-bonus"
)

// IsBonus returns true for either bonus hand
func (h HandClass) IsBonus() bool {
	return h == HandClassFiveCardBonus || h == HandClassPairAcesBonus
}

// String returns the name players know the hand by
func (h HandClass) String() string {
	switch h {
	case HandClassFiveCardBonus:
		return "Ngũ Linh"
	case HandClassPairAcesBonus:
		return "Nhà Hoàng"
	}

	return "Normal"
}

// evaluate returns the hand value and how many aces are still counted as 11
func evaluate(hand deck.Hand) (value int, softAces int) {
	for _, card := range hand {
		value += card.Points()
		if card.IsAce() {
			softAces++
		}
	}

	for value > bustValue && softAces > 0 {
		value -= 10
		softAces--
	}

	return value, softAces
}

// HandValue returns the value of the hand
// Aces count 11 until the hand would bust, then 1, one ace at a time.
func HandValue(hand deck.Hand) int {
	value, _ := evaluate(hand)
	return value
}

// IsSoft returns true if at least one ace is still counted as 11
func IsSoft(hand deck.Hand) bool {
	_, softAces := evaluate(hand)
	return softAces > 0
}

// IsBust returns true if the hand is worth more than 21
func IsBust(hand deck.Hand) bool {
	return HandValue(hand) > bustValue
}

// Classify returns the special-hand classification
func Classify(hand deck.Hand) HandClass {
	if len(hand) == 2 && hand.CountRank(deck.Ace) == 2 {
		return HandClassPairAcesBonus
	}

	if len(hand) == 5 && HandValue(hand) <= bustValue {
		return HandClassFiveCardBonus
	}

	return HandClassNormal
}
