package validation

import (
	"slices"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"mypills/dbtypes"
)

func validMedication() dbtypes.Medication {
	return dbtypes.Medication{
		ID:              "m1",
		Name:            "Paracetamol",
		Dosage:          "500mg",
		CurrentQuantity: 30,
		TotalQuantity:   30,
		Status:          dbtypes.MedicationActive,
	}
}

func TestValidateMedication(t *testing.T) {
	negativePrice := decimal.NewFromInt(-1)
	zeroPrice := decimal.Zero

	tests := []struct {
		name      string
		mutate    func(*dbtypes.Medication)
		wantValid bool
		wantError string
	}{
		{
			name:      "valid",
			mutate:    func(m *dbtypes.Medication) {},
			wantValid: true,
		},
		{
			name:      "valid with price",
			mutate:    func(m *dbtypes.Medication) { m.Price = &zeroPrice },
			wantValid: true,
		},
		{
			name:      "partial stock",
			mutate:    func(m *dbtypes.Medication) { m.CurrentQuantity = 1 },
			wantValid: true,
		},
		{
			name:      "name too short",
			mutate:    func(m *dbtypes.Medication) { m.Name = "P" },
			wantError: "Name must be at least 2 characters",
		},
		{
			name:      "name only whitespace",
			mutate:    func(m *dbtypes.Medication) { m.Name = "   " },
			wantError: "Name must be at least 2 characters",
		},
		{
			name:      "missing dosage",
			mutate:    func(m *dbtypes.Medication) { m.Dosage = "" },
			wantError: "Dosage is required",
		},
		{
			name:      "negative current quantity",
			mutate:    func(m *dbtypes.Medication) { m.CurrentQuantity = -1 },
			wantError: "Current quantity cannot be negative",
		},
		{
			name: "current exceeds total",
			mutate: func(m *dbtypes.Medication) {
				m.CurrentQuantity = 31
				m.TotalQuantity = 30
			},
			wantError: "Current quantity cannot exceed total quantity",
		},
		{
			name:      "zero total quantity",
			mutate:    func(m *dbtypes.Medication) { m.TotalQuantity = 0; m.CurrentQuantity = 0 },
			wantError: "Total quantity must be greater than zero",
		},
		{
			name:      "negative price",
			mutate:    func(m *dbtypes.Medication) { m.Price = &negativePrice },
			wantError: "Price cannot be negative",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			med := validMedication()
			tc.mutate(&med)

			result := ValidateMedication(med)
			if result.IsValid != tc.wantValid {
				t.Errorf("IsValid = %v, want %v (errors: %v)", result.IsValid, tc.wantValid, result.Errors)
			}
			if tc.wantValid && len(result.Errors) != 0 {
				t.Errorf("expected no errors, got %v", result.Errors)
			}
			if tc.wantError != "" && !slices.Contains(result.Errors, tc.wantError) {
				t.Errorf("errors %v missing %q", result.Errors, tc.wantError)
			}
		})
	}
}

func TestValidateReminder(t *testing.T) {
	now := time.Date(2024, 6, 15, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		reminder  dbtypes.Reminder
		wantValid bool
		wantError string
	}{
		{
			name:      "valid",
			reminder:  dbtypes.Reminder{Title: "Consulta", DueDate: now.Add(time.Hour)},
			wantValid: true,
		},
		{
			name:      "title too short",
			reminder:  dbtypes.Reminder{Title: "Ok", DueDate: now.Add(time.Hour)},
			wantError: "Title must be at least 3 characters",
		},
		{
			name:      "missing due date",
			reminder:  dbtypes.Reminder{Title: "Consulta"},
			wantError: "Due date is required",
		},
		{
			name:      "due date in the past",
			reminder:  dbtypes.Reminder{Title: "Consulta", DueDate: now.Add(-time.Hour)},
			wantError: "Due date cannot be in the past",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := ValidateReminder(tc.reminder, now)
			if result.IsValid != tc.wantValid {
				t.Errorf("IsValid = %v, want %v (errors: %v)", result.IsValid, tc.wantValid, result.Errors)
			}
			if tc.wantError != "" && !slices.Contains(result.Errors, tc.wantError) {
				t.Errorf("errors %v missing %q", result.Errors, tc.wantError)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	for email, want := range map[string]bool{
		"ana@example.com": true,
		"not-an-email":    false,
		"@example.com":    false,
		"":                false,
	} {
		if got := ValidateEmail(email); got != want {
			t.Errorf("ValidateEmail(%q) = %v, want %v", email, got, want)
		}
	}
}
