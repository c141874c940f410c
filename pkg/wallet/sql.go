package wallet

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sirupsen/logrus"
	"xidach-server/pkg/db"
)

// SQLGateway is a Gateway backed by the accounts and wallet_transactions tables
// Every movement is recorded once per Key in wallet_transactions.
type SQLGateway struct {
	db *sql.DB
}

// NewSQLGateway returns a gateway that uses the database handle
func NewSQLGateway(db *sql.DB) *SQLGateway {
	return &SQLGateway{db: db}
}

// Balance implements Gateway
func (s *SQLGateway) Balance(ctx context.Context, accountID int64) (int64, error) {
	return getBalance(ctx, s.db, accountID)
}

// Debit implements Gateway
func (s *SQLGateway) Debit(ctx context.Context, key Key, accountID int64, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	return s.apply(ctx, key, accountID, -amount)
}

// Credit implements Gateway
func (s *SQLGateway) Credit(ctx context.Context, key Key, accountID int64, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	return s.apply(ctx, key, accountID, amount)
}

func (s *SQLGateway) apply(ctx context.Context, key Key, accountID int64, delta int64) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer db.Rollback(tx)

	applied, err := isApplied(ctx, tx, key)
	if err != nil {
		return 0, err
	}

	if applied {
		return getBalance(ctx, tx, accountID)
	}

	const updateQuery = `
UPDATE accounts
SET balance = balance + $1, updated = CURRENT_TIMESTAMP
WHERE id = $2 AND balance + $1 >= 0
RETURNING balance`

	var balance int64
	if err := tx.QueryRowContext(ctx, updateQuery, delta, accountID).Scan(&balance); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return 0, err
		}

		// either the account is missing or the balance is too low
		current, err := getBalance(ctx, tx, accountID)
		if err != nil {
			return 0, err
		}

		return current, ErrInsufficientFunds
	}

	const insertQuery = `
INSERT INTO wallet_transactions (account_id, round_uuid, entry, amount, balance_after)
VALUES ($1, $2, $3, $4, $5)`

	if _, err := tx.ExecContext(ctx, insertQuery, accountID, key.RoundUUID, string(key.Entry), delta, balance); err != nil {
		if db.IsDuplicateKey(err) {
			// a concurrent call applied the same key first
			logrus.WithFields(logrus.Fields{
				"roundId": key.RoundUUID,
				"entry":   key.Entry,
			}).Warn("wallet transaction already applied")

			db.Rollback(tx)
			return s.Balance(ctx, accountID)
		}

		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return balance, nil
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

func getBalance(ctx context.Context, q queryRower, accountID int64) (int64, error) {
	const query = `
SELECT balance
FROM accounts
WHERE id = $1`

	var balance int64
	if err := q.QueryRowContext(ctx, query, accountID).Scan(&balance); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrAccountNotFound
		}

		return 0, err
	}

	return balance, nil
}

func isApplied(ctx context.Context, q queryRower, key Key) (bool, error) {
	const query = `
SELECT COUNT(*)
FROM wallet_transactions
WHERE round_uuid = $1 AND entry = $2`

	var count int
	if err := q.QueryRowContext(ctx, query, key.RoundUUID, string(key.Entry)).Scan(&count); err != nil {
		return false, err
	}

	return count > 0, nil
}
