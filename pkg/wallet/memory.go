package wallet

import (
	"context"
	"sync"
)

// Memory is an in-process Gateway
// It is used by the CLI and by tests.
type Memory struct {
	mu       sync.Mutex
	balances map[int64]int64
	applied  map[Key]int64
}

// NewMemory returns an empty in-memory wallet
func NewMemory() *Memory {
	return &Memory{
		balances: make(map[int64]int64),
		applied:  make(map[Key]int64),
	}
}

// Open creates the account with a starting balance
func (m *Memory) Open(accountID int64, balance int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.balances[accountID] = balance
}

// Balance implements Gateway
func (m *Memory) Balance(_ context.Context, accountID int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	balance, ok := m.balances[accountID]
	if !ok {
		return 0, ErrAccountNotFound
	}

	return balance, nil
}

// Debit implements Gateway
func (m *Memory) Debit(_ context.Context, key Key, accountID int64, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	return m.apply(key, accountID, -amount)
}

// Credit implements Gateway
func (m *Memory) Credit(_ context.Context, key Key, accountID int64, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	return m.apply(key, accountID, amount)
}

func (m *Memory) apply(key Key, accountID int64, delta int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	balance, ok := m.balances[accountID]
	if !ok {
		return 0, ErrAccountNotFound
	}

	if _, found := m.applied[key]; found {
		return balance, nil
	}

	if balance+delta < 0 {
		return balance, ErrInsufficientFunds
	}

	balance += delta
	m.balances[accountID] = balance
	m.applied[key] = balance
	return balance, nil
}
