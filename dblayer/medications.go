package dblayer

import (
	"context"
	"fmt"
	"slices"
	"time"

	"mypills/dbtypes"
	"mypills/storage"
)

// Medications is the repository for the medication collection and its two
// satellite collections, intake schedules and intake logs.
type Medications struct {
	store *storage.Store

	medications []dbtypes.Medication
	schedules   []dbtypes.MedicationSchedule
	logs        []dbtypes.MedicationLog
}

func NewMedications(store *storage.Store) *Medications {
	return &Medications{store: store}
}

// LoadFromStorage refreshes the in-memory collections from the store.
// Safe to call repeatedly; stored values that fail to decode are ignored
// and the corresponding collection keeps its prior contents.
func (m *Medications) LoadFromStorage(ctx context.Context) {
	loadKey(ctx, m.store, storage.KeyMedications, &m.medications,
		allHaveIDs(func(med dbtypes.Medication) string { return med.ID }))
	loadKey(ctx, m.store, storage.KeySchedules, &m.schedules,
		allHaveIDs(func(s dbtypes.MedicationSchedule) string { return s.ID }))
	loadKey(ctx, m.store, storage.KeyMedicationLogs, &m.logs,
		allHaveIDs(func(l dbtypes.MedicationLog) string { return l.ID }))
}

// Get returns the medication with the given id.
func (m *Medications) Get(id string) (dbtypes.Medication, bool) {
	for _, med := range m.medications {
		if med.ID == id {
			return med, true
		}
	}
	return dbtypes.Medication{}, false
}

// Add appends med and persists the collection.
func (m *Medications) Add(ctx context.Context, med dbtypes.Medication) error {
	m.medications = append(m.medications, med)
	if err := m.store.Set(ctx, storage.KeyMedications, m.medications); err != nil {
		return fmt.Errorf("while persisting medications: %w", err)
	}
	return nil
}

// Update replaces the medication with med's id. Updating an unknown id is
// a silent no-op.
func (m *Medications) Update(ctx context.Context, med dbtypes.Medication) error {
	i := slices.IndexFunc(m.medications, func(cur dbtypes.Medication) bool { return cur.ID == med.ID })
	if i == -1 {
		return nil
	}
	m.medications[i] = med
	if err := m.store.Set(ctx, storage.KeyMedications, m.medications); err != nil {
		return fmt.Errorf("while persisting medications: %w", err)
	}
	return nil
}

// Delete removes the medication with the given id together with every
// schedule referencing it. Intake logs are history and are kept. Both
// affected collections are persisted in one write.
func (m *Medications) Delete(ctx context.Context, id string) error {
	m.medications = slices.DeleteFunc(m.medications, func(med dbtypes.Medication) bool { return med.ID == id })
	m.schedules = slices.DeleteFunc(m.schedules, func(s dbtypes.MedicationSchedule) bool { return s.MedicationID == id })

	err := m.store.SetMulti(ctx, map[string]any{
		storage.KeyMedications: m.medications,
		storage.KeySchedules:   m.schedules,
	})
	if err != nil {
		return fmt.Errorf("while persisting medications and schedules: %w", err)
	}
	return nil
}

// Take records that a dose of the given medication was taken: it appends
// a "taken" log and, when the medication exists with stock remaining,
// decrements the current quantity. Both collections are persisted in one
// write.
func (m *Medications) Take(ctx context.Context, medicationID string, scheduledFor time.Time, notes string) error {
	now := time.Now()

	m.logs = append(m.logs, dbtypes.MedicationLog{
		ID:           dbtypes.NewID(),
		MedicationID: medicationID,
		TakenAt:      now,
		ScheduledFor: scheduledFor,
		Status:       dbtypes.LogTaken,
		Notes:        notes,
	})

	i := slices.IndexFunc(m.medications, func(med dbtypes.Medication) bool { return med.ID == medicationID })
	if i != -1 && m.medications[i].CurrentQuantity > 0 {
		m.medications[i].CurrentQuantity--
		m.medications[i].UpdatedAt = now
	}

	err := m.store.SetMulti(ctx, map[string]any{
		storage.KeyMedicationLogs: m.logs,
		storage.KeyMedications:    m.medications,
	})
	if err != nil {
		return fmt.Errorf("while persisting intake: %w", err)
	}
	return nil
}

// AddSchedule appends schedule and persists the schedule collection.
func (m *Medications) AddSchedule(ctx context.Context, schedule dbtypes.MedicationSchedule) error {
	m.schedules = append(m.schedules, schedule)
	if err := m.store.Set(ctx, storage.KeySchedules, m.schedules); err != nil {
		return fmt.Errorf("while persisting schedules: %w", err)
	}
	return nil
}

// UpdateSchedule replaces the schedule with schedule's id; unknown ids are
// a silent no-op.
func (m *Medications) UpdateSchedule(ctx context.Context, schedule dbtypes.MedicationSchedule) error {
	i := slices.IndexFunc(m.schedules, func(cur dbtypes.MedicationSchedule) bool { return cur.ID == schedule.ID })
	if i == -1 {
		return nil
	}
	m.schedules[i] = schedule
	if err := m.store.Set(ctx, storage.KeySchedules, m.schedules); err != nil {
		return fmt.Errorf("while persisting schedules: %w", err)
	}
	return nil
}

// DeleteSchedule removes the schedule with the given id.
func (m *Medications) DeleteSchedule(ctx context.Context, id string) error {
	m.schedules = slices.DeleteFunc(m.schedules, func(s dbtypes.MedicationSchedule) bool { return s.ID == id })
	if err := m.store.Set(ctx, storage.KeySchedules, m.schedules); err != nil {
		return fmt.Errorf("while persisting schedules: %w", err)
	}
	return nil
}

// AddLog appends an intake log. Logs are append-only; there is no update
// or delete.
func (m *Medications) AddLog(ctx context.Context, log dbtypes.MedicationLog) error {
	m.logs = append(m.logs, log)
	if err := m.store.Set(ctx, storage.KeyMedicationLogs, m.logs); err != nil {
		return fmt.Errorf("while persisting medication logs: %w", err)
	}
	return nil
}

// Medications returns a snapshot copy of the medication collection in
// insertion order.
func (m *Medications) Medications() []dbtypes.Medication {
	return slices.Clone(m.medications)
}

// Schedules returns a snapshot copy of the schedule collection.
func (m *Medications) Schedules() []dbtypes.MedicationSchedule {
	return slices.Clone(m.schedules)
}

// Logs returns a snapshot copy of the intake log collection.
func (m *Medications) Logs() []dbtypes.MedicationLog {
	return slices.Clone(m.logs)
}
