package commands

import (
	"bytes"
	"context"
	"testing"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"xidach-server/internal/rng"
	"xidach-server/pkg/deck"
	"xidach-server/pkg/playable/xidach"
	"xidach-server/pkg/room"
	"xidach-server/pkg/wallet"
)

func newTestDealer(balance int64) (*room.Dealer, *wallet.Memory) {
	memory := wallet.NewMemory()
	memory.Open(1, balance)

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	pitBoss := room.NewPitBoss(logger, xidach.DefaultOptions(), memory, nil)
	gen := rng.NewSeeded(99)
	pitBoss.SetDeckFactory(func() *deck.Deck {
		return deck.NewShuffled(gen)
	})

	return pitBoss.Dealer(1), memory
}

func TestSimulate(t *testing.T) {
	a := assert.New(t)

	dealer, memory := newTestDealer(1000000)
	result, err := simulate(context.Background(), dealer, 1000, 200, thresholdStrategy(16))
	a.NoError(err)
	a.Equal(200, result.rounds)
	a.False(result.stoppedEarly)

	total := 0
	for _, count := range result.outcomes {
		total += count
	}
	a.Equal(200, total)

	balance, err := memory.Balance(context.Background(), 1)
	a.NoError(err)
	a.Equal(1000000+result.net, balance)

	data := result.tableData()
	a.Equal([]string{"Outcome", "Rounds", "Share"}, data[0])
	a.Equal("total", data[len(data)-1][0])
	a.Equal("200", data[len(data)-1][1])
}

func TestSimulate_OutOfFunds(t *testing.T) {
	a := assert.New(t)

	dealer, _ := newTestDealer(1999)
	result, err := simulate(context.Background(), dealer, 1000, 10, thresholdStrategy(16))
	a.NoError(err)
	a.Equal(0, result.rounds)
	a.True(result.stoppedEarly)
	a.Contains(result.tableData()[1][2], "out of funds")
}

func TestSimulate_InvalidStake(t *testing.T) {
	dealer, _ := newTestDealer(1000000)
	_, err := simulate(context.Background(), dealer, 1234, 10, thresholdStrategy(16))
	assert.ErrorIs(t, err, xidach.ErrInvalidStake)
}

func TestThresholdStrategy(t *testing.T) {
	a := assert.New(t)

	hit := thresholdStrategy(16)
	a.True(hit(xidach.RoundView{PlayerValue: 15}))
	a.False(hit(xidach.RoundView{PlayerValue: 16}))
	a.False(hit(xidach.RoundView{PlayerValue: 21}))
}

func TestAffordableStakes(t *testing.T) {
	a := assert.New(t)

	options := xidach.DefaultOptions()
	a.Empty(affordableStakes(options, 1999))
	a.Equal([]int64{1000}, affordableStakes(options, 2000))
	a.Equal([]int64{1000, 5000, 10000}, affordableStakes(options, 199999))
}

func TestTablePresenter(t *testing.T) {
	a := assert.New(t)
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	buf := &bytes.Buffer{}
	p := newTablePresenter("Lucky Tiger", 0, buf)

	p.OnCardDealt(xidach.CardDealt{Owner: xidach.OwnerPlayer, Card: deck.CardFromString("7s")})
	p.OnCardDealt(xidach.CardDealt{Owner: xidach.OwnerDealer, Card: deck.CardFromString("14h"), Position: 1, FaceDown: true})
	p.OnCardDealt(xidach.CardDealt{Owner: xidach.OwnerDealer, Card: deck.CardFromString("10d"), Position: 2})
	p.OnRoundResolved(xidach.RoundResolved{Outcome: &xidach.Outcome{
		Kind:        xidach.OutcomeWin,
		PlayerValue: 20,
		DealerValue: 18,
		Message:     "You win!",
	}})

	out := buf.String()
	a.Contains(out, "Lucky Tiger draws 7♠")
	a.Contains(out, "Dealer takes a face-down card")
	a.NotContains(out, "A♥")
	a.Contains(out, "Dealer draws 10♦")
	a.Contains(out, "You win!")
	a.Contains(out, "Player: 20")
}

func TestHandsPanel(t *testing.T) {
	a := assert.New(t)
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	view := xidach.RoundView{
		Stake:       1000,
		PlayerHand:  deck.CardsFromString("14s,14h"),
		DealerHand:  []*deck.Card{deck.CardFromString("10c"), nil},
		PlayerValue: 12,
		PlayerClass: xidach.HandClassPairAcesBonus,
		DealerValue: 10,
	}

	panel := handsPanel("Lucky Tiger", view)
	a.Contains(panel, "10♣ ??")
	a.Contains(panel, "(10+?)")
	a.Contains(panel, "Nhà Hoàng")
}
