package data

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/iudanet/flashkeeper/internal/clock"
	"github.com/iudanet/flashkeeper/internal/idgen"
	"github.com/iudanet/flashkeeper/internal/models"
	"github.com/iudanet/flashkeeper/internal/notify"
	"github.com/iudanet/flashkeeper/internal/storage"
	"github.com/iudanet/flashkeeper/pkg/api"
)

// maxIDAttempts ограничивает повторную генерацию id при коллизии
const maxIDAttempts = 5

// Service is the flashcard repository: the single source of truth for
// the collection stored under storage.KeyFlashcards.
//
// Every mutating call reads the whole collection, changes it, writes it
// back and sends a confirmation through the Notifier.
type Service interface {
	// List returns the whole collection in creation order. Absent or
	// unreadable data is reported as an empty collection.
	List(ctx context.Context) []models.Flashcard
	// Get returns the flashcard with id, or false if there is none.
	Get(ctx context.Context, id string) (models.Flashcard, bool)
	// Search returns flashcards whose title, content or explanation
	// contains query, ignoring case.
	Search(ctx context.Context, query string) []models.Flashcard

	Create(ctx context.Context, title string, fields []models.Field) (models.Flashcard, error)
	// Update reports false without writing anything if id is unknown.
	Update(ctx context.Context, id, title string, fields []models.Field) (bool, error)
	// Delete is a no-op for an unknown id.
	Delete(ctx context.Context, id string) error
	// DeleteMany returns the number of removed flashcards.
	DeleteMany(ctx context.Context, ids []string) (int, error)

	// Import appends records with fresh ids and timestamps.
	Import(ctx context.Context, records []api.FlashcardRecord) (int, error)
	// Export projects the collection to title and fields only.
	Export(ctx context.Context) []api.FlashcardRecord
}

// Options carries the collaborators of the service. Zero values are
// replaced with defaults.
type Options struct {
	IDs      idgen.Generator
	Clock    *clock.Clock
	Notifier notify.Notifier
	Logger   *slog.Logger
}

// service implements Service on top of a key-value store
type service struct {
	kv       storage.KeyValueStorage
	ids      idgen.Generator
	clock    *clock.Clock
	notifier notify.Notifier
	logger   *slog.Logger
	mu       sync.Mutex
}

// NewService creates a new flashcard repository
func NewService(kv storage.KeyValueStorage, opts Options) Service {
	s := &service{
		kv:       kv,
		ids:      opts.IDs,
		clock:    opts.Clock,
		notifier: opts.Notifier,
		logger:   opts.Logger,
	}
	if s.ids == nil {
		gen, _ := idgen.New(idgen.SchemeNanoID)
		s.ids = gen
	}
	if s.clock == nil {
		s.clock = clock.New()
	}
	if s.notifier == nil {
		s.notifier = notify.Discard
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// List returns the whole collection
func (s *service) List(ctx context.Context) []models.Flashcard {
	s.mu.Lock()
	defer s.mu.Unlock()

	cards, err := s.load(ctx)
	if err != nil {
		// Нечитаемое хранилище неотличимо для пользователя от пустого
		s.logger.Warn("flashcard collection unreadable, showing empty list", "error", err)
		return []models.Flashcard{}
	}
	return cards
}

// Get returns a flashcard by id (linear scan)
func (s *service) Get(ctx context.Context, id string) (models.Flashcard, bool) {
	for _, fc := range s.List(ctx) {
		if fc.ID == id {
			return fc, true
		}
	}
	return models.Flashcard{}, false
}

// Search filters the collection by query
func (s *service) Search(ctx context.Context, query string) []models.Flashcard {
	all := s.List(ctx)
	out := make([]models.Flashcard, 0, len(all))
	for i := range all {
		if all[i].Matches(query) {
			out = append(out, all[i])
		}
	}
	return out
}

// Create appends a new flashcard
func (s *service) Create(ctx context.Context, title string, fields []models.Field) (models.Flashcard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cards, err := s.loadForWrite(ctx)
	if err != nil {
		return models.Flashcard{}, err
	}

	id, err := s.newID(existingIDs(cards))
	if err != nil {
		return models.Flashcard{}, err
	}

	now := s.clock.Tick()
	fc := models.Flashcard{
		ID:        id,
		Title:     title,
		Fields:    models.CloneFields(fields),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.save(ctx, append(cards, fc)); err != nil {
		return models.Flashcard{}, err
	}

	s.logger.Debug("flashcard created", "id", fc.ID, "fields", len(fc.Fields))
	s.notifier.Notify(notify.MsgCreated)
	return fc.Clone(), nil
}

// Update replaces title and fields of an existing flashcard
func (s *service) Update(ctx context.Context, id, title string, fields []models.Field) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cards, err := s.loadForWrite(ctx)
	if err != nil {
		return false, err
	}

	idx := indexOf(cards, id)
	if idx < 0 {
		s.logger.Debug("update skipped, flashcard not found", "id", id)
		return false, nil
	}

	// updatedAt должен строго вырасти, даже если часы не сдвинулись
	s.clock.Observe(cards[idx].UpdatedAt)
	cards[idx].Title = title
	cards[idx].Fields = models.CloneFields(fields)
	cards[idx].UpdatedAt = s.clock.Tick()

	if err := s.save(ctx, cards); err != nil {
		return false, err
	}

	s.logger.Debug("flashcard updated", "id", id)
	s.notifier.Notify(notify.MsgUpdated)
	return true, nil
}

// Delete removes one flashcard
func (s *service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cards, err := s.loadForWrite(ctx)
	if err != nil {
		return err
	}

	rest, removed := filterOut(cards, map[string]struct{}{id: {}})
	if removed == 0 {
		s.logger.Debug("delete skipped, flashcard not found", "id", id)
		return nil
	}

	if err := s.save(ctx, rest); err != nil {
		return err
	}

	s.logger.Debug("flashcard deleted", "id", id)
	s.notifier.Notify(notify.MsgDeleted)
	return nil
}

// DeleteMany removes every flashcard whose id is in ids
func (s *service) DeleteMany(ctx context.Context, ids []string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cards, err := s.loadForWrite(ctx)
	if err != nil {
		return 0, err
	}

	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	rest, removed := filterOut(cards, set)
	if removed == 0 {
		return 0, nil
	}

	if err := s.save(ctx, rest); err != nil {
		return 0, err
	}

	s.logger.Debug("flashcards deleted", "count", removed)
	s.notifier.Notify(notify.MsgBulkDeleted)
	return removed, nil
}

// Import appends validated records after the existing collection
func (s *service) Import(ctx context.Context, records []api.FlashcardRecord) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cards, err := s.loadForWrite(ctx)
	if err != nil {
		return 0, err
	}

	used := existingIDs(cards)
	for _, rec := range records {
		id, err := s.newID(used)
		if err != nil {
			return 0, err
		}
		used[id] = struct{}{}

		fields := make([]models.Field, 0, len(rec.Fields))
		for _, f := range rec.Fields {
			fields = append(fields, models.Field{Content: f.Content, Explanation: f.Explanation})
		}

		now := s.clock.Tick()
		cards = append(cards, models.Flashcard{
			ID:        id,
			Title:     rec.Title,
			Fields:    fields,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	if err := s.save(ctx, cards); err != nil {
		return 0, err
	}

	s.logger.Info("flashcards imported", "count", len(records))
	s.notifier.Notify(notify.MsgImported)
	return len(records), nil
}

// Export returns {title, fields} projections of the collection
func (s *service) Export(ctx context.Context) []api.FlashcardRecord {
	all := s.List(ctx)
	out := make([]api.FlashcardRecord, 0, len(all))
	for _, fc := range all {
		rec := api.FlashcardRecord{
			Title:  fc.Title,
			Fields: make([]api.FieldRecord, 0, len(fc.Fields)),
		}
		for _, f := range fc.Fields {
			rec.Fields = append(rec.Fields, api.FieldRecord{Content: f.Content, Explanation: f.Explanation})
		}
		out = append(out, rec)
	}
	return out
}

// load читает и десериализует коллекцию целиком
func (s *service) load(ctx context.Context) ([]models.Flashcard, error) {
	raw, err := s.kv.GetItem(ctx, storage.KeyFlashcards)
	if errors.Is(err, storage.ErrItemNotFound) {
		return []models.Flashcard{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read collection: %w", err)
	}

	var cards []models.Flashcard
	if err := json.Unmarshal(raw, &cards); err != nil {
		return nil, fmt.Errorf("failed to unmarshal collection: %w", err)
	}

	// fields всегда массив, даже если в хранилище оказался null
	for i := range cards {
		if cards[i].Fields == nil {
			cards[i].Fields = []models.Field{}
		}
	}
	if cards == nil {
		cards = []models.Flashcard{}
	}
	return cards, nil
}

// loadForWrite как load, но отказывает, если данные есть и не читаются
func (s *service) loadForWrite(ctx context.Context) ([]models.Flashcard, error) {
	cards, err := s.load(ctx)
	if err != nil {
		s.logger.Error("refusing to overwrite unreadable collection", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrCollectionUnreadable, err)
	}
	return cards, nil
}

// save сериализует и записывает коллекцию целиком
func (s *service) save(ctx context.Context, cards []models.Flashcard) error {
	data, err := json.Marshal(cards)
	if err != nil {
		return fmt.Errorf("failed to marshal collection: %w", err)
	}
	if err := s.kv.SetItem(ctx, storage.KeyFlashcards, data); err != nil {
		return fmt.Errorf("failed to save collection: %w", err)
	}
	return nil
}

// newID генерирует id, отсутствующий в used
func (s *service) newID(used map[string]struct{}) (string, error) {
	for range maxIDAttempts {
		id, err := s.ids.NewID()
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrIDGeneration, err)
		}
		if _, taken := used[id]; !taken && id != "" {
			return id, nil
		}
	}
	return "", ErrIDGeneration
}

func existingIDs(cards []models.Flashcard) map[string]struct{} {
	ids := make(map[string]struct{}, len(cards))
	for _, fc := range cards {
		ids[fc.ID] = struct{}{}
	}
	return ids
}

func indexOf(cards []models.Flashcard, id string) int {
	for i := range cards {
		if cards[i].ID == id {
			return i
		}
	}
	return -1
}

func filterOut(cards []models.Flashcard, ids map[string]struct{}) ([]models.Flashcard, int) {
	rest := make([]models.Flashcard, 0, len(cards))
	for _, fc := range cards {
		if _, drop := ids[fc.ID]; drop {
			continue
		}
		rest = append(rest, fc)
	}
	return rest, len(cards) - len(rest)
}
