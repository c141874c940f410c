package xidach

import "xidach-server/pkg/deck"

// forfeit ("đền bài") thresholds
const (
	forfeitHighValue  = 28
	forfeitStandValue = 16
)

// isForfeit returns true if the player's hand is so far over, or so far under when standing,
// that they pay double
func isForfeit(playerValue int, stood bool) bool {
	return playerValue >= forfeitHighValue || (stood && playerValue < forfeitStandValue)
}

// Resolve determines the outcome of a round from the final hands
// The first rule that matches wins. Resolve never modifies the hands.
func Resolve(stake int64, player, dealer deck.Hand, stood bool) *Outcome {
	o := &Outcome{
		PlayerValue: HandValue(player),
		DealerValue: HandValue(dealer),
		PlayerClass: Classify(player),
		DealerClass: Classify(dealer),
		Stake:       stake,
	}

	switch {
	case o.PlayerClass == HandClassFiveCardBonus:
		if o.DealerClass == HandClassFiveCardBonus {
			return o.draw("Both hands are Ngũ Linh. Draw.")
		}

		return o.playerBonusWin("Ngũ Linh! You win.")

	case o.PlayerClass == HandClassPairAcesBonus:
		switch o.DealerClass {
		case HandClassFiveCardBonus:
			return o.doubleLoss(OutcomeDoubleLoss, "Dealer Ngũ Linh beats your Nhà Hoàng. You lose double.")
		case HandClassPairAcesBonus:
			return o.draw("Both hands are Nhà Hoàng. Draw.")
		}

		return o.playerBonusWin("Nhà Hoàng! You win.")

	case isForfeit(o.PlayerValue, stood):
		return o.doubleLoss(OutcomeDoubleLoss, "Đền bài! You lose double.")

	case o.DealerClass == HandClassFiveCardBonus:
		return o.doubleLoss(OutcomeDealerBonusWin, "Dealer Ngũ Linh! You lose double.")

	case o.DealerClass == HandClassPairAcesBonus:
		return o.doubleLoss(OutcomeDealerBonusWin, "Dealer Nhà Hoàng! You lose double.")

	case o.PlayerValue > bustValue:
		return o.lose("Bust! You lose.")

	case o.DealerValue > bustValue:
		return o.win("Dealer busts. You win!")

	case o.PlayerValue > o.DealerValue:
		return o.win("You win!")

	case o.PlayerValue < o.DealerValue:
		return o.lose("You lose.")
	}

	return o.draw("Draw.")
}

func (o *Outcome) win(message string) *Outcome {
	o.Kind = OutcomeWin
	o.Payout = 2 * o.Stake
	o.Message = message
	return o
}

func (o *Outcome) playerBonusWin(message string) *Outcome {
	o.win(message)
	o.Kind = OutcomePlayerBonusWin
	return o
}

func (o *Outcome) draw(message string) *Outcome {
	o.Kind = OutcomeDraw
	o.Payout = o.Stake
	o.Message = message
	return o
}

func (o *Outcome) lose(message string) *Outcome {
	o.Kind = OutcomeLose
	o.Message = message
	return o
}

// doubleLoss costs the player a second stake on top of the one collected at commit
func (o *Outcome) doubleLoss(kind OutcomeKind, message string) *Outcome {
	o.Kind = kind
	o.Penalty = o.Stake
	o.Message = message
	return o
}
