package bank

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"wordplay/internal/domain"
	"wordplay/internal/ports"
)

// Bank implements ports.QuestionBank on top of a ports.Store.
// Every operation runs load → compute → save under one mutex, so closure
// computation and mutation never interleave with another caller.
type Bank struct {
	mu     sync.Mutex
	store  ports.Store
	newID  func() string
	now    func() time.Time
	logger *slog.Logger
}

// Ensure Bank implements QuestionBank
var _ ports.QuestionBank = (*Bank)(nil)

// Option configures a Bank
type Option func(*Bank)

// WithClock overrides the timestamp source
func WithClock(now func() time.Time) Option {
	return func(b *Bank) { b.now = now }
}

// WithIDGenerator overrides id generation
func WithIDGenerator(gen func() string) Option {
	return func(b *Bank) { b.newID = gen }
}

// WithLogger sets the logger used for mutation events
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bank) { b.logger = logger }
}

// New creates a Bank over store
func New(store ports.Store, opts ...Option) *Bank {
	b := &Bank{
		store:  store,
		newID:  NewID,
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// state is one loaded snapshot of both collections
type state struct {
	folders   domain.Folders
	questions []domain.Question
}

// load reads both collections. Must be called with b.mu held.
func (b *Bank) load() (*state, error) {
	folderData, err := b.store.Load(ports.CollectionFolders)
	if err != nil {
		return nil, fmt.Errorf("failed to load folders: %w", err)
	}
	folders, err := decodeFolders(folderData)
	if err != nil {
		return nil, err
	}

	questionData, err := b.store.Load(ports.CollectionQuestions)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}
	questions, migrated, err := decodeQuestions(questionData)
	if err != nil {
		return nil, err
	}

	s := &state{folders: folders, questions: questions}
	if migrated {
		data, err := encodeQuestions(questions)
		if err != nil {
			return nil, err
		}
		if err := b.store.Save(map[ports.Collection][]byte{ports.CollectionQuestions: data}); err != nil {
			return nil, fmt.Errorf("failed to persist migrated questions: %w", err)
		}
		b.logger.Info("migrated untyped questions", "collection", ports.CollectionQuestions)
	}
	return s, nil
}

// save writes both collections in a single store call. Must be called with b.mu held.
func (b *Bank) save(s *state) error {
	folderData, err := encodeFolders(s.folders)
	if err != nil {
		return err
	}
	questionData, err := encodeQuestions(s.questions)
	if err != nil {
		return err
	}
	if err := b.store.Save(map[ports.Collection][]byte{
		ports.CollectionFolders:   folderData,
		ports.CollectionQuestions: questionData,
	}); err != nil {
		return fmt.Errorf("failed to save bank: %w", err)
	}
	return nil
}

func (b *Bank) read(fn func(s *state) error) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	s, err := b.load()
	if err != nil {
		return err
	}
	return fn(s)
}

func (b *Bank) write(fn func(s *state) error) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	s, err := b.load()
	if err != nil {
		return err
	}
	if err := fn(s); err != nil {
		return err
	}
	return b.save(s)
}

func (b *Bank) timestamp() int64 {
	return nowMillis(b.now)
}
