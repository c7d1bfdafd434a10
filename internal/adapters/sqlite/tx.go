package sqlite

import (
	"database/sql"

	"wordplay/internal/ports"
)

// collectionTx wraps the single transaction behind one Save call
type collectionTx struct {
	tx *sql.Tx
}

func (s *Store) begin() (*collectionTx, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	return &collectionTx{tx: tx}, nil
}

// put inserts or replaces a collection row
func (t *collectionTx) put(c ports.Collection, value []byte, updatedAt int64) error {
	_, err := t.tx.Exec(`
		INSERT INTO collections (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, string(c), string(value), updatedAt)
	return err
}

func (t *collectionTx) commit() error {
	return t.tx.Commit()
}

func (t *collectionTx) rollback() {
	_ = t.tx.Rollback()
}
