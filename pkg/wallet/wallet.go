package wallet

import (
	"context"
	"errors"
	"fmt"
)

// ErrInsufficientFunds is returned when a debit would take the balance below zero
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrAccountNotFound is returned when the account does not exist
var ErrAccountNotFound = errors.New("account not found")

// ErrInvalidAmount is returned for zero or negative amounts
var ErrInvalidAmount = errors.New("amount must be greater than zero")

// Entry identifies which movement of a round a transaction is
type Entry string

// Entry constants
const (
	// EntryStake is the stake debited when the round is committed
	EntryStake Entry = "stake"

	// EntryPayout is the amount credited back when the round is resolved
	EntryPayout Entry = "payout"

	// EntryPenalty is the second stake debited by a double loss
	EntryPenalty Entry = "penalty"
)

// Direction returns whether the entry is a debit or a credit
func (e Entry) Direction() Direction {
	if e == EntryPayout {
		return DirectionCredit
	}

	return DirectionDebit
}

// Direction is which way money moves
type Direction string

// Direction constants
const (
	DirectionDebit  Direction = "debit"
	DirectionCredit Direction = "credit"
)

// Key makes a debit or credit idempotent
// Applying the same key twice returns the current balance and changes nothing.
type Key struct {
	RoundUUID string
	Entry     Entry
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%s", k.RoundUUID, k.Entry)
}

// Gateway applies balance changes for rounds
type Gateway interface {
	// Balance returns the account's current balance
	Balance(ctx context.Context, accountID int64) (int64, error)

	// Debit subtracts amount and returns the new balance
	// It fails with ErrInsufficientFunds instead of going negative.
	Debit(ctx context.Context, key Key, accountID int64, amount int64) (int64, error)

	// Credit adds amount and returns the new balance
	Credit(ctx context.Context, key Key, accountID int64, amount int64) (int64, error)
}
