// Package storage provides the device-local key-value store backing every
// persisted collection.
//
// Values live in a badger database under the application data directory.
// When the primary store misbehaves, operations quietly retry against a
// flat tier of per-key JSON files so the application keeps working on
// whatever data it can reach.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dgraph-io/badger"
)

// Storage keys, one per persisted collection. Keys for the finance,
// shopping, transport, and assistant domains are reserved but unused.
const (
	KeyUser                = "mypills_user"
	KeyMedications         = "mypills_medications"
	KeySchedules           = "mypills_schedules"
	KeyMedicationLogs      = "mypills_medication_logs"
	KeyReminders           = "mypills_reminders"
	KeyAccounts            = "mypills_accounts"
	KeyTransactions        = "mypills_transactions"
	KeyShoppingLists       = "mypills_shopping_lists"
	KeyConversations       = "mypills_conversations"
	KeyFavoriteRoutes      = "mypills_favorite_routes"
	KeyOnboardingCompleted = "mypills_onboarding_completed"
	KeySettings            = "mypills_settings"
)

// primaryTier is the structured store underneath Store. Tests stand in
// failing implementations to drive traffic onto the fallback tier.
type primaryTier interface {
	set(key string, data []byte) error
	setAll(values map[string][]byte) error
	get(key string) (data []byte, found bool, err error)
	delete(key string) error
	dropAll() error
	close() error
}

type badgerTier struct {
	db *badger.DB
}

func (b badgerTier) set(key string, data []byte) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

func (b badgerTier) setAll(values map[string][]byte) error {
	return b.db.Update(func(txn *badger.Txn) error {
		for key, data := range values {
			if err := txn.Set([]byte(key), data); err != nil {
				return err
			}
		}
		return nil
	})
}

func (b badgerTier) get(key string) ([]byte, bool, error) {
	var data []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (b badgerTier) delete(key string) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

func (b badgerTier) dropAll() error {
	return b.db.DropAll()
}

func (b badgerTier) close() error {
	return b.db.Close()
}

// Store is the two-tier device-local key-value store.
type Store struct {
	primary     primaryTier
	fallbackDir string
}

// Open opens the store rooted at dataDir, creating it if necessary.
func Open(dataDir string) (*Store, error) {
	opts := badger.DefaultOptions(filepath.Join(dataDir, "kv"))
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("while opening badger kv dir: %w", err)
	}

	fallbackDir := filepath.Join(dataDir, "fallback")
	if err := os.MkdirAll(fallbackDir, 0700); err != nil {
		db.Close()
		return nil, fmt.Errorf("while creating fallback dir %q: %w", fallbackDir, err)
	}

	return &Store{
		primary:     badgerTier{db: db},
		fallbackDir: fallbackDir,
	}, nil
}

func (s *Store) Close() error {
	if err := s.primary.close(); err != nil {
		return fmt.Errorf("while closing primary store: %w", err)
	}
	return nil
}

func (s *Store) fallbackPath(key string) string {
	return filepath.Join(s.fallbackDir, key+".json")
}

// Set serializes value under key. A primary-tier failure is logged and the
// value is written to the fallback tier instead; an error is returned only
// when both tiers fail.
func (s *Store) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("while marshaling value for key %q: %w", key, err)
	}

	if err := s.primary.set(key, data); err != nil {
		slog.ErrorContext(ctx, "Primary store write failed, falling back", slog.String("key", key), slog.Any("err", err))

		if err := os.WriteFile(s.fallbackPath(key), data, 0600); err != nil {
			return fmt.Errorf("while writing fallback file for key %q: %w", key, err)
		}
	}
	return nil
}

// SetMulti serializes every entry of values inside a single primary-tier
// transaction, so a domain operation spanning several collections commits
// all of its keys or none of them. On a primary-tier failure each key is
// written to the fallback tier independently.
func (s *Store) SetMulti(ctx context.Context, values map[string]any) error {
	encoded := make(map[string][]byte, len(values))
	for key, value := range values {
		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("while marshaling value for key %q: %w", key, err)
		}
		encoded[key] = data
	}

	if err := s.primary.setAll(encoded); err != nil {
		slog.ErrorContext(ctx, "Primary store multi-write failed, falling back", slog.Any("err", err))

		for key, data := range encoded {
			if err := os.WriteFile(s.fallbackPath(key), data, 0600); err != nil {
				return fmt.Errorf("while writing fallback file for key %q: %w", key, err)
			}
		}
	}
	return nil
}

// Get deserializes the value under key into out. It reports found == false
// for an absent key. A primary-tier failure is logged and the fallback
// tier is consulted instead; when the fallback tier has nothing either,
// the primary failure surfaces as the error.
func (s *Store) Get(ctx context.Context, key string, out any) (found bool, err error) {
	data, found, primaryErr := s.primary.get(key)
	if primaryErr != nil {
		slog.ErrorContext(ctx, "Primary store read failed, falling back", slog.String("key", key), slog.Any("err", primaryErr))

		var fallbackErr error
		data, fallbackErr = os.ReadFile(s.fallbackPath(key))
		if os.IsNotExist(fallbackErr) {
			return false, fmt.Errorf("while reading key %q from primary store: %w", key, primaryErr)
		}
		if fallbackErr != nil {
			return false, fmt.Errorf("while reading fallback file for key %q: %w", key, fallbackErr)
		}
	} else if !found {
		return false, nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("while unmarshaling value for key %q: %w", key, err)
	}
	return true, nil
}

// Remove deletes the value under key. Removing an absent key is not an
// error.
func (s *Store) Remove(ctx context.Context, key string) error {
	if err := s.primary.delete(key); err != nil {
		slog.ErrorContext(ctx, "Primary store delete failed, falling back", slog.String("key", key), slog.Any("err", err))

		if err := os.Remove(s.fallbackPath(key)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("while removing fallback file for key %q: %w", key, err)
		}
	}
	return nil
}

// Clear purges both tiers unconditionally. A failure in one tier does not
// stop the purge of the other; both failures are reported.
func (s *Store) Clear(ctx context.Context) error {
	var primaryErr error
	if err := s.primary.dropAll(); err != nil {
		slog.ErrorContext(ctx, "Primary store purge failed", slog.Any("err", err))
		primaryErr = fmt.Errorf("while purging primary store: %w", err)
	}

	var fallbackErr error
	entries, err := os.ReadDir(s.fallbackDir)
	if err != nil {
		fallbackErr = fmt.Errorf("while listing fallback dir: %w", err)
	} else {
		for _, entry := range entries {
			if err := os.Remove(filepath.Join(s.fallbackDir, entry.Name())); err != nil {
				fallbackErr = fmt.Errorf("while removing fallback file %q: %w", entry.Name(), err)
				break
			}
		}
	}

	return errors.Join(primaryErr, fallbackErr)
}
