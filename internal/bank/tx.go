package bank

import (
	"errors"

	"wordplay/internal/domain"
	"wordplay/internal/ports"
)

// ErrTxClosed is returned when a finished transaction is used again
var ErrTxClosed = errors.New("transaction already closed")

// bankTx implements ports.BankTx
type bankTx struct {
	bank   *Bank
	state  *state
	closed bool
}

// Ensure bankTx implements BankTx
var _ ports.BankTx = (*bankTx)(nil)

// BeginTx locks the bank and loads a working snapshot
func (b *Bank) BeginTx() (ports.BankTx, error) {
	b.mu.Lock()
	s, err := b.load()
	if err != nil {
		b.mu.Unlock()
		return nil, err
	}
	return &bankTx{bank: b, state: s}, nil
}

// Folders returns the working folder collection
func (t *bankTx) Folders() domain.Folders {
	return t.state.folders
}

// ResolveOrCreate resolves path against the working snapshot
func (t *bankTx) ResolveOrCreate(path string) (*domain.Folder, error) {
	if t.closed {
		return nil, ErrTxClosed
	}
	return t.bank.resolveOrCreate(t.state, path)
}

// AddQuestion appends a question to the working snapshot
func (t *bankTx) AddQuestion(draft domain.QuestionDraft) (*domain.Question, error) {
	if t.closed {
		return nil, ErrTxClosed
	}
	q := t.bank.appendQuestion(t.state, draft)
	return &q, nil
}

// Commit persists the snapshot in one store write and releases the bank
func (t *bankTx) Commit() error {
	if t.closed {
		return ErrTxClosed
	}
	t.closed = true
	defer t.bank.mu.Unlock()
	return t.bank.save(t.state)
}

// Rollback discards the snapshot and releases the bank
func (t *bankTx) Rollback() error {
	if t.closed {
		return ErrTxClosed
	}
	t.closed = true
	t.bank.mu.Unlock()
	return nil
}
