package ports

import "time"

// Collection names one independently persisted list of records
type Collection string

const (
	CollectionQuestions Collection = "english_learning_questions"
	CollectionFolders   Collection = "english_learning_folders"
)

// Store is durable key-value persistence of serialized collections.
// Implementations must make Save all-or-nothing from the caller's view:
// no reader may observe a subset of the collections passed to one call.
type Store interface {
	// Load returns the serialized collection, or nil if it was never written
	Load(c Collection) ([]byte, error)

	// Save overwrites every given collection
	Save(data map[Collection][]byte) error

	Close() error
}

// Timestamped is implemented by stores that know when a collection was last
// written. A zero time means never.
type Timestamped interface {
	UpdatedAt(c Collection) (time.Time, error)
}
