package model

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"xidach-server/pkg/db"
)

// ErrAccountNotFound is returned when no account has the ID
var ErrAccountNotFound = UserError("account not found")

const accountColumns = `
accounts.id,
accounts.balance,
accounts.created,
accounts.updated`

// Account is a record in the `accounts` table
// Balance is only changed through the wallet gateway.
type Account struct {
	ID      int64     `json:"id"`
	Balance int64     `json:"balance"`
	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`
}

func getAccountByRow(row db.Scanner) (*Account, error) {
	var account Account
	if err := row.Scan(&account.ID, &account.Balance, &account.Created, &account.Updated); err != nil {
		return nil, err
	}

	return &account, nil
}

// CreateAccount creates an account with an opening balance
func (s *Store) CreateAccount(ctx context.Context, id int64, balance int64) (*Account, error) {
	if balance < 0 {
		return nil, UserError("opening balance cannot be negative")
	}

	const query = `
INSERT INTO accounts (id, balance)
VALUES ($1, $2)
RETURNING ` + accountColumns

	account, err := getAccountByRow(s.db.QueryRowContext(ctx, query, id, balance))
	if err != nil {
		if db.IsDuplicateKey(err) {
			return nil, ErrDuplicateKey
		}

		return nil, err
	}

	return account, nil
}

// GetAccountByID returns the account based on the ID
func (s *Store) GetAccountByID(ctx context.Context, id int64) (*Account, error) {
	const query = `
SELECT ` + accountColumns + `
FROM accounts
WHERE id = $1`

	account, err := getAccountByRow(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAccountNotFound
		}

		return nil, err
	}

	return account, nil
}

// GetAccounts returns a list of accounts
func (s *Store) GetAccounts(ctx context.Context, offset int64, limit int) ([]*Account, error) {
	const query = `
SELECT ` + accountColumns + `
FROM accounts
ORDER BY id ASC
LIMIT $1
OFFSET $2`

	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := make([]*Account, 0)
	for rows.Next() {
		account, err := getAccountByRow(rows)
		if err != nil {
			return nil, err
		}

		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}
