// Package validation holds the stateless predicate batteries run before a
// repository mutation is issued. Repositories accept entities at face
// value, so every entry path is expected to check the Result first.
package validation

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"mypills/dbtypes"
)

var validate = validator.New()

// Result is the outcome of one validation battery. Errors holds one
// human-readable message per failed rule, suitable for inline display.
type Result struct {
	IsValid bool
	Errors  []string
}

type medicationRules struct {
	Name            string `validate:"required,min=2"`
	Dosage          string `validate:"required"`
	CurrentQuantity int64  `validate:"gte=0,ltefield=TotalQuantity"`
	TotalQuantity   int64  `validate:"gt=0"`
}

// ValidateMedication checks med against the medication entry rules:
// name of at least 2 characters, non-empty dosage, non-negative current
// quantity no greater than the total, positive total quantity, and a
// non-negative price when one is set.
func ValidateMedication(med dbtypes.Medication) Result {
	errs := messages(validate.Struct(medicationRules{
		Name:            strings.TrimSpace(med.Name),
		Dosage:          strings.TrimSpace(med.Dosage),
		CurrentQuantity: med.CurrentQuantity,
		TotalQuantity:   med.TotalQuantity,
	}))

	if med.Price != nil && med.Price.IsNegative() {
		errs = append(errs, "Price cannot be negative")
	}

	return Result{IsValid: len(errs) == 0, Errors: errs}
}

type reminderRules struct {
	Title string `validate:"required,min=3"`
}

// ValidateReminder checks rem against the reminder entry rules: title of
// at least 3 characters and a due date that is set and not in the past.
func ValidateReminder(rem dbtypes.Reminder, now time.Time) Result {
	errs := messages(validate.Struct(reminderRules{
		Title: strings.TrimSpace(rem.Title),
	}))

	if rem.DueDate.IsZero() {
		errs = append(errs, "Due date is required")
	} else if rem.DueDate.Before(now) {
		errs = append(errs, "Due date cannot be in the past")
	}

	return Result{IsValid: len(errs) == 0, Errors: errs}
}

// ValidateEmail reports whether email looks like an email address.
func ValidateEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

func messages(err error) []string {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{"Invalid value"}
	}
	out := make([]string, 0, len(verrs))
	for _, e := range verrs {
		out = append(out, message(e))
	}
	return out
}

// message maps a failed rule to its display string.
func message(e validator.FieldError) string {
	switch e.StructField() {
	case "Name":
		return "Name must be at least 2 characters"
	case "Dosage":
		return "Dosage is required"
	case "CurrentQuantity":
		if e.Tag() == "ltefield" {
			return "Current quantity cannot exceed total quantity"
		}
		return "Current quantity cannot be negative"
	case "TotalQuantity":
		return "Total quantity must be greater than zero"
	case "Title":
		return "Title must be at least 3 characters"
	}
	return "Invalid value"
}
