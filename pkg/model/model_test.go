package model

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"xidach-server/pkg/db/dbtest"
	"xidach-server/pkg/deck"
	"xidach-server/pkg/playable/xidach"
)

var cbg = context.Background()

func testStore(t *testing.T) *Store {
	return NewStore(dbtest.Open(t))
}

// resolvedRound plays a round where the player stands on the opening hand
func resolvedRound(t *testing.T, accountID int64, cards string) *xidach.Round {
	t.Helper()

	d := deck.New()
	d.Stack(deck.CardsFromString(cards)...)

	r, err := xidach.NewRound(logrus.StandardLogger(), xidach.DefaultOptions(), accountID, 10000, d)
	require.NoError(t, err)
	require.NoError(t, r.Deal())
	require.NoError(t, r.Stand())
	require.True(t, r.IsResolved())
	return r
}

func TestStore_CreateAccount(t *testing.T) {
	a := assert.New(t)
	s := testStore(t)

	account, err := s.CreateAccount(cbg, 1, 50000)
	a.NoError(err)
	a.Equal(int64(1), account.ID)
	a.Equal(int64(50000), account.Balance)
	a.False(account.Created.IsZero())

	_, err = s.CreateAccount(cbg, 1, 50000)
	a.ErrorIs(err, ErrDuplicateKey)

	_, err = s.CreateAccount(cbg, 2, -1)
	a.EqualError(err, "opening balance cannot be negative")

	account, err = s.GetAccountByID(cbg, 1)
	a.NoError(err)
	a.Equal(int64(50000), account.Balance)

	_, err = s.GetAccountByID(cbg, 2)
	a.Equal(ErrAccountNotFound, err)
}

func TestStore_GetAccounts(t *testing.T) {
	a := assert.New(t)
	s := testStore(t)

	for i := int64(1); i <= 3; i++ {
		_, err := s.CreateAccount(cbg, i, i*1000)
		a.NoError(err)
	}

	accounts, err := s.GetAccounts(cbg, 1, 10)
	a.NoError(err)
	if a.Len(accounts, 2) {
		a.Equal(int64(2), accounts[0].ID)
		a.Equal(int64(3), accounts[1].ID)
	}
}

func TestStore_SaveRound(t *testing.T) {
	a := assert.New(t)
	s := testStore(t)
	_, err := s.CreateAccount(cbg, 1, 50000)
	a.NoError(err)

	r := resolvedRound(t, 1, "10c,10d,9c,8d")
	a.NoError(s.SaveRound(cbg, r))
	// saving twice is a no-op
	a.NoError(s.SaveRound(cbg, r))

	saved, err := s.GetRoundByUUID(cbg, 1, r.UUID)
	if !a.NoError(err) {
		return
	}

	a.Equal(r.UUID, saved.UUID)
	a.Equal(int64(10000), saved.Stake)
	a.Equal("10c,9c", deck.CardsToString(saved.PlayerHand))
	a.Equal("10d,8d", deck.CardsToString(saved.DealerHand))
	a.Equal(xidach.OutcomeWin, saved.Outcome)
	a.Equal(19, saved.PlayerValue)
	a.Equal(18, saved.DealerValue)
	a.Equal(int64(20000), saved.Payout)
	a.Equal(int64(0), saved.Penalty)
	a.Equal(int64(10000), saved.Net())
	a.Equal("You win!", saved.Message)
	a.Equal(r.DeckHash, saved.DeckHash)

	_, err = s.GetRoundByUUID(cbg, 2, r.UUID)
	a.Equal(ErrRoundNotFound, err)
}

func TestStore_SaveRound_Unresolved(t *testing.T) {
	s := testStore(t)

	r, err := xidach.NewRound(logrus.StandardLogger(), xidach.DefaultOptions(), 1, 10000, deck.New())
	require.NoError(t, err)
	assert.Error(t, s.SaveRound(cbg, r))
}

func TestStore_GetRoundsByAccount(t *testing.T) {
	a := assert.New(t)
	s := testStore(t)
	_, _ = s.CreateAccount(cbg, 1, 50000)
	_, _ = s.CreateAccount(cbg, 2, 50000)

	for i := 0; i < 3; i++ {
		a.NoError(s.SaveRound(cbg, resolvedRound(t, 1, "10c,10d,9c,8d")))
	}
	a.NoError(s.SaveRound(cbg, resolvedRound(t, 2, "10c,10d,9c,8d")))

	rounds, err := s.GetRoundsByAccount(cbg, 1, 0, 10)
	a.NoError(err)
	a.Len(rounds, 3)
	for _, r := range rounds {
		a.Equal(int64(1), r.AccountID)
	}

	rounds, err = s.GetRoundsByAccount(cbg, 1, 2, 10)
	a.NoError(err)
	a.Len(rounds, 1)

	rounds, err = s.GetRoundsByAccount(cbg, 3, 0, 10)
	a.NoError(err)
	a.Len(rounds, 0)
}
