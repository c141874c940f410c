package model

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"xidach-server/pkg/db"
	"xidach-server/pkg/deck"
	"xidach-server/pkg/playable/xidach"
)

// ErrRoundNotFound is returned when no archived round has the UUID
var ErrRoundNotFound = UserError("round not found")

const roundColumns = `
rounds.uuid,
rounds.account_id,
rounds.stake,
rounds.player_cards,
rounds.dealer_cards,
rounds.outcome,
rounds.player_value,
rounds.dealer_value,
rounds.payout,
rounds.penalty,
rounds.message,
rounds.deck_hash,
rounds.created,
rounds.resolved`

// Round is a record in the `rounds` table
// Only resolved rounds are archived, so both hands are complete.
type Round struct {
	UUID        string             `json:"uuid"`
	AccountID   int64              `json:"accountId"`
	Stake       int64              `json:"stake"`
	PlayerHand  deck.Hand          `json:"playerHand"`
	DealerHand  deck.Hand          `json:"dealerHand"`
	Outcome     xidach.OutcomeKind `json:"outcome"`
	PlayerValue int                `json:"playerValue"`
	DealerValue int                `json:"dealerValue"`
	Payout      int64              `json:"payout"`
	Penalty     int64              `json:"penalty"`
	Message     string             `json:"message"`
	DeckHash    string             `json:"deckHash"`
	Created     time.Time          `json:"created"`
	Resolved    time.Time          `json:"resolved"`
}

// Net returns the change to the balance the round caused
func (r *Round) Net() int64 {
	return r.Payout - r.Stake - r.Penalty
}

func getRoundByRow(row db.Scanner) (*Round, error) {
	var r Round
	var playerCards, dealerCards string
	if err := row.Scan(&r.UUID, &r.AccountID, &r.Stake, &playerCards, &dealerCards, &r.Outcome, &r.PlayerValue, &r.DealerValue, &r.Payout, &r.Penalty, &r.Message, &r.DeckHash, &r.Created, &r.Resolved); err != nil {
		return nil, err
	}

	r.PlayerHand = deck.CardsFromString(playerCards)
	r.DealerHand = deck.CardsFromString(dealerCards)
	return &r, nil
}

// SaveRound archives a resolved round
// Saving the same round twice is a no-op.
func (s *Store) SaveRound(ctx context.Context, round *xidach.Round) error {
	if !round.IsResolved() {
		return fmt.Errorf("cannot archive round %s in state: %s", round.UUID, round.State)
	}

	const query = `
INSERT INTO rounds (uuid, account_id, stake, player_cards, dealer_cards, outcome, player_value, dealer_value, payout, penalty, message, deck_hash, created, resolved)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
ON CONFLICT (uuid) DO NOTHING`

	o := round.Outcome
	_, err := s.db.ExecContext(ctx, query,
		round.UUID,
		round.AccountID,
		round.Stake,
		deck.CardsToString(round.PlayerHand),
		deck.CardsToString(round.DealerHand),
		string(o.Kind),
		o.PlayerValue,
		o.DealerValue,
		o.Payout,
		o.Penalty,
		o.Message,
		round.DeckHash,
		round.Created.UTC(),
		round.Resolved.UTC(),
	)

	return err
}

// GetRoundByUUID returns an archived round
// accountID restricts the lookup to the owner of the round.
func (s *Store) GetRoundByUUID(ctx context.Context, accountID int64, uuid string) (*Round, error) {
	const query = `
SELECT ` + roundColumns + `
FROM rounds
WHERE uuid = $1 AND account_id = $2`

	r, err := getRoundByRow(s.db.QueryRowContext(ctx, query, uuid, accountID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoundNotFound
		}

		return nil, err
	}

	return r, nil
}

// GetRoundsByAccount returns the account's archived rounds, newest first
func (s *Store) GetRoundsByAccount(ctx context.Context, accountID int64, offset int64, limit int) ([]*Round, error) {
	const query = `
SELECT ` + roundColumns + `
FROM rounds
WHERE account_id = $1
ORDER BY created DESC, uuid ASC
LIMIT $2
OFFSET $3`

	rows, err := s.db.QueryContext(ctx, query, accountID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rounds := make([]*Round, 0)
	for rows.Next() {
		r, err := getRoundByRow(rows)
		if err != nil {
			return nil, err
		}

		rounds = append(rounds, r)
	}

	return rounds, rows.Err()
}
