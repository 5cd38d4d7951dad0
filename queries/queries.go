// Package queries holds the derived views over repository snapshots.
// Every function is pure and recomputes from the slice it is given; there
// is no caching or incremental maintenance.
package queries

import (
	"time"

	"mypills/dbtypes"
	"mypills/dateutil"
)

// LowStockThreshold is the stock count at or below which a medication is
// considered low on stock.
const LowStockThreshold = 5

// ActiveMedications returns the medications with status ACTIVE, in input
// order.
func ActiveMedications(meds []dbtypes.Medication) []dbtypes.Medication {
	var out []dbtypes.Medication
	for _, med := range meds {
		if med.Status == dbtypes.MedicationActive {
			out = append(out, med)
		}
	}
	return out
}

// ExpiredMedications returns the medications with status EXPIRED.
func ExpiredMedications(meds []dbtypes.Medication) []dbtypes.Medication {
	var out []dbtypes.Medication
	for _, med := range meds {
		if med.Status == dbtypes.MedicationExpired {
			out = append(out, med)
		}
	}
	return out
}

// LowStockMedications returns the medications whose current quantity is
// at or below LowStockThreshold.
func LowStockMedications(meds []dbtypes.Medication) []dbtypes.Medication {
	var out []dbtypes.Medication
	for _, med := range meds {
		if med.CurrentQuantity <= LowStockThreshold {
			out = append(out, med)
		}
	}
	return out
}

// PartitionReminders splits reminders into completed and incomplete,
// each in input order.
func PartitionReminders(reminders []dbtypes.Reminder) (completed, incomplete []dbtypes.Reminder) {
	for _, rem := range reminders {
		if rem.IsCompleted {
			completed = append(completed, rem)
		} else {
			incomplete = append(incomplete, rem)
		}
	}
	return completed, incomplete
}

// RemindersDueToday returns the reminders whose due date falls on the
// same local calendar day as now.
func RemindersDueToday(reminders []dbtypes.Reminder, now time.Time) []dbtypes.Reminder {
	var out []dbtypes.Reminder
	for _, rem := range reminders {
		if dateutil.IsToday(now, rem.DueDate) {
			out = append(out, rem)
		}
	}
	return out
}

// OverdueReminders returns the incomplete reminders whose due date has
// passed.
func OverdueReminders(reminders []dbtypes.Reminder, now time.Time) []dbtypes.Reminder {
	var out []dbtypes.Reminder
	for _, rem := range reminders {
		if !rem.IsCompleted && dateutil.IsOverdue(now, rem.DueDate) {
			out = append(out, rem)
		}
	}
	return out
}
