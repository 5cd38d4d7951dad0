package dblayer

import (
	"context"
	"fmt"
	"slices"

	"mypills/dbtypes"
	"mypills/storage"
)

// Reminders is the repository for the reminder collection.
type Reminders struct {
	store *storage.Store

	reminders []dbtypes.Reminder
}

func NewReminders(store *storage.Store) *Reminders {
	return &Reminders{store: store}
}

// LoadFromStorage refreshes the in-memory collection from the store.
// Safe to call repeatedly; a stored value that fails to decode is ignored
// and the collection keeps its prior contents.
func (r *Reminders) LoadFromStorage(ctx context.Context) {
	loadKey(ctx, r.store, storage.KeyReminders, &r.reminders,
		allHaveIDs(func(rem dbtypes.Reminder) string { return rem.ID }))
}

// Get returns the reminder with the given id.
func (r *Reminders) Get(id string) (dbtypes.Reminder, bool) {
	for _, rem := range r.reminders {
		if rem.ID == id {
			return rem, true
		}
	}
	return dbtypes.Reminder{}, false
}

// Add appends reminder and persists the collection.
func (r *Reminders) Add(ctx context.Context, reminder dbtypes.Reminder) error {
	r.reminders = append(r.reminders, reminder)
	if err := r.store.Set(ctx, storage.KeyReminders, r.reminders); err != nil {
		return fmt.Errorf("while persisting reminders: %w", err)
	}
	return nil
}

// Update replaces the reminder with reminder's id. Updating an unknown id
// is a silent no-op.
func (r *Reminders) Update(ctx context.Context, reminder dbtypes.Reminder) error {
	i := slices.IndexFunc(r.reminders, func(cur dbtypes.Reminder) bool { return cur.ID == reminder.ID })
	if i == -1 {
		return nil
	}
	r.reminders[i] = reminder
	if err := r.store.Set(ctx, storage.KeyReminders, r.reminders); err != nil {
		return fmt.Errorf("while persisting reminders: %w", err)
	}
	return nil
}

// Delete removes the reminder with the given id.
func (r *Reminders) Delete(ctx context.Context, id string) error {
	r.reminders = slices.DeleteFunc(r.reminders, func(rem dbtypes.Reminder) bool { return rem.ID == id })
	if err := r.store.Set(ctx, storage.KeyReminders, r.reminders); err != nil {
		return fmt.Errorf("while persisting reminders: %w", err)
	}
	return nil
}

// Complete marks the reminder with the given id as completed. Completion
// is one-way and idempotent; completing an unknown id is a silent no-op.
func (r *Reminders) Complete(ctx context.Context, id string) error {
	i := slices.IndexFunc(r.reminders, func(rem dbtypes.Reminder) bool { return rem.ID == id })
	if i == -1 {
		return nil
	}
	r.reminders[i].IsCompleted = true
	if err := r.store.Set(ctx, storage.KeyReminders, r.reminders); err != nil {
		return fmt.Errorf("while persisting reminders: %w", err)
	}
	return nil
}

// Reminders returns a snapshot copy of the reminder collection in
// insertion order.
func (r *Reminders) Reminders() []dbtypes.Reminder {
	return slices.Clone(r.reminders)
}
