package xidach

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

const testStake = int64(10000)

func TestResolve(t *testing.T) {
	test := func(t *testing.T, player, dealer string, stood bool, kind OutcomeKind, payout, penalty int64) *Outcome {
		t.Helper()
		a := assert.New(t)

		p, d := hand(player), hand(dealer)
		o := Resolve(testStake, p, d, stood)

		a.Equal(kind, o.Kind, "%s vs %s", player, dealer)
		a.Equal(payout, o.Payout, "%s vs %s", player, dealer)
		a.Equal(penalty, o.Penalty, "%s vs %s", player, dealer)
		a.Equal(HandValue(p), o.PlayerValue)
		a.Equal(HandValue(d), o.DealerValue)
		a.NotEmpty(o.Message)

		// resolution is read-only
		a.Equal(player, p.String())
		a.Equal(dealer, d.String())

		return o
	}

	// five card bonus
	test(t, "2c,3c,4c,5c,6c", "10d,8d", true, OutcomePlayerBonusWin, 20000, 0)
	test(t, "2c,3c,4c,5c,6c", "14c,2d,3d,4d,10d", true, OutcomeDraw, 10000, 0)
	test(t, "2c,3c,4c,5c,6c", "14c,14d", true, OutcomePlayerBonusWin, 20000, 0)

	// a five card bonus under 16 still wins
	test(t, "2c,2d,3c,3d,5c", "10d,10h", true, OutcomePlayerBonusWin, 20000, 0)

	// pair of aces
	test(t, "14s,14h", "14c,2d,3d,4d,10d", true, OutcomeDoubleLoss, 0, 10000)
	test(t, "14s,14h", "2d,3d,4d,5d,6d", true, OutcomeDoubleLoss, 0, 10000)
	test(t, "14s,14h", "14c,14d", true, OutcomeDraw, 10000, 0)
	test(t, "14s,14h", "10d,11d", true, OutcomePlayerBonusWin, 20000, 0)
	test(t, "14s,14h", "10d,11d,5c", true, OutcomePlayerBonusWin, 20000, 0)

	// forfeit
	test(t, "10c,10d,8c", "10h,6d,9s", true, OutcomeDoubleLoss, 0, 10000)
	test(t, "10c,5d", "10h,8d", true, OutcomeDoubleLoss, 0, 10000)
	test(t, "10c,5d", "2d,3d,4d,5d,6d", true, OutcomeDoubleLoss, 0, 10000)
	test(t, "10c,5d", "10h,8d", false, OutcomeLose, 0, 0)
	test(t, "10c,6d", "10h,8d", true, OutcomeLose, 0, 0)

	// dealer bonus hands
	test(t, "10c,10d", "2d,3d,4d,5d,6d", true, OutcomeDealerBonusWin, 0, 10000)
	test(t, "10c,10d", "14c,14d", true, OutcomeDealerBonusWin, 0, 10000)
	test(t, "10c,5c,8c", "14c,14d", true, OutcomeDealerBonusWin, 0, 10000)

	// numeric comparison
	test(t, "10c,5c,8c", "10d,6d,9s", true, OutcomeLose, 0, 0)
	test(t, "10c,8c", "10d,6d,9s", true, OutcomeWin, 20000, 0)
	test(t, "10c,9c", "10d,7d", true, OutcomeWin, 20000, 0)
	test(t, "10c,7c", "10d,9d", true, OutcomeLose, 0, 0)
	test(t, "10c,9c", "10d,9d", true, OutcomeDraw, 10000, 0)

	// five cards worth 22 is not a bonus
	test(t, "2c,3c,4c,5c,8c", "10d,8d", true, OutcomeLose, 0, 0)
}

func TestResolve_pairAcesAlwaysLosesToFiveCardBonus(t *testing.T) {
	fives := []string{
		"2d,3d,4d,5d,6d",
		"14c,2d,3d,4d,10d",
		"2d,2h,3d,3h,4d",
		"14c,14d,2h,3h,4h",
	}

	for _, dealer := range fives {
		o := Resolve(testStake, hand("14s,14h"), hand(dealer), true)
		assert.Equal(t, OutcomeDoubleLoss, o.Kind, dealer)
		assert.Equal(t, int64(-20000), o.Net(), dealer)
	}
}

func TestResolve_scenarios(t *testing.T) {
	a := assert.New(t)

	// A: ace-king is 21 but not a bonus hand
	o := Resolve(testStake, hand("14s,13d"), hand("10c,9c"), true)
	a.Equal(HandClassNormal, o.PlayerClass)
	a.Equal(21, o.PlayerValue)
	a.Equal(19, o.DealerValue)
	a.Equal(OutcomeWin, o.Kind)
	a.Equal(int64(20000), o.Payout)

	// B
	o = Resolve(testStake, hand("2c,3c,4c,5c,6c"), hand("10d,8d"), true)
	a.Equal(OutcomePlayerBonusWin, o.Kind)
	a.Equal(int64(20000), o.Payout)
	a.Equal(int64(10000), o.Net())

	// C
	o = Resolve(testStake, hand("10c,5d"), hand("10d,8d"), true)
	a.Equal(OutcomeDoubleLoss, o.Kind)
	a.Equal(int64(0), o.Payout)
	a.Equal(int64(10000), o.Penalty)
	a.Equal(int64(-20000), o.Net())

	// D
	o = Resolve(testStake, hand("14s,14h"), hand("14c,14d"), true)
	a.Equal(OutcomeDraw, o.Kind)
	a.Equal(int64(10000), o.Payout)
	a.Equal(int64(0), o.Net())
}

func TestOutcome(t *testing.T) {
	a := assert.New(t)
	o := Resolve(testStake, hand("10c,9c"), hand("10d,7d"), true)
	a.Equal("Player: 19 — Dealer: 17", o.Detail())
	a.Equal("win (Player: 19 — Dealer: 17) net 10000", o.String())

	a.True(OutcomeWin.IsWin())
	a.True(OutcomePlayerBonusWin.IsWin())
	a.False(OutcomeDraw.IsWin())
	a.False(OutcomeDraw.IsLoss())
	a.True(OutcomeDoubleLoss.IsLoss())
	a.True(OutcomeDealerBonusWin.IsLoss())
	a.True(OutcomeLose.IsLoss())
}
