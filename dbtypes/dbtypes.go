package dbtypes

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User represents the person using the application.
//
// There is exactly one user per device. The record is created at first
// login, mutated in place by preference updates, and removed from storage
// at logout.
type User struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email,omitempty"`
	Avatar      string          `json:"avatar,omitempty"`
	Preferences UserPreferences `json:"preferences"`
}

type UserPreferences struct {
	Theme         Theme  `json:"theme"`
	Language      string `json:"language"`
	Notifications bool   `json:"notifications"`
	BiometricAuth bool   `json:"biometricAuth"`
	DataBackup    bool   `json:"dataBackup"`
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
	ThemeAuto  Theme = "auto"
)

type MedicationStatus string

const (
	MedicationActive   MedicationStatus = "ACTIVE"
	MedicationPaused   MedicationStatus = "PAUSED"
	MedicationFinished MedicationStatus = "FINISHED"
	MedicationExpired  MedicationStatus = "EXPIRED"
)

type Medication struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Dosage string `json:"dosage"`

	// The current count of stock. Taking a dose decrements this, floored
	// at zero.
	CurrentQuantity int64 `json:"currentQuantity"`

	// The count of stock in a full package.
	TotalQuantity int64 `json:"totalQuantity"`

	ExpirationDate *time.Time       `json:"expirationDate,omitempty"`
	Price          *decimal.Decimal `json:"price,omitempty"`
	Barcode        string           `json:"barcode,omitempty"`
	Instructions   string           `json:"instructions,omitempty"`
	Status         MedicationStatus `json:"status"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

type DayOfWeek string

const (
	Monday    DayOfWeek = "MONDAY"
	Tuesday   DayOfWeek = "TUESDAY"
	Wednesday DayOfWeek = "WEDNESDAY"
	Thursday  DayOfWeek = "THURSDAY"
	Friday    DayOfWeek = "FRIDAY"
	Saturday  DayOfWeek = "SATURDAY"
	Sunday    DayOfWeek = "SUNDAY"
)

// MedicationSchedule describes a recurring intake slot for a medication.
// MedicationID is a lookup reference; schedules are removed when their
// medication is deleted.
type MedicationSchedule struct {
	ID           string      `json:"id"`
	MedicationID string      `json:"medicationId"`
	TimeOfDay    string      `json:"timeOfDay"` // HH:mm
	DaysOfWeek   []DayOfWeek `json:"daysOfWeek"`
	IsActive     bool        `json:"isActive"`
}

type LogStatus string

const (
	LogTaken   LogStatus = "taken"
	LogMissed  LogStatus = "missed"
	LogSkipped LogStatus = "skipped"
)

// MedicationLog records one intake event. Logs are append-only and are
// never mutated or cascade-deleted; MedicationID is a lookup reference
// that may point at a medication that no longer exists.
type MedicationLog struct {
	ID           string    `json:"id"`
	MedicationID string    `json:"medicationId"`
	TakenAt      time.Time `json:"takenAt"`
	ScheduledFor time.Time `json:"scheduledFor"`
	Status       LogStatus `json:"status"`
	Notes        string    `json:"notes,omitempty"`
}

type ReminderType string

const (
	ReminderMedication  ReminderType = "MEDICATION"
	ReminderAppointment ReminderType = "APPOINTMENT"
	ReminderRefill      ReminderType = "REFILL"
	ReminderExercise    ReminderType = "EXERCISE"
	ReminderGeneral     ReminderType = "GENERAL"
)

type ReminderPriority string

const (
	PriorityLow    ReminderPriority = "LOW"
	PriorityMedium ReminderPriority = "MEDIUM"
	PriorityHigh   ReminderPriority = "HIGH"
	PriorityUrgent ReminderPriority = "URGENT"
)

type Reminder struct {
	ID                string             `json:"id"`
	Title             string             `json:"title"`
	Description       string             `json:"description,omitempty"`
	DueDate           time.Time          `json:"dueDate"`
	Type              ReminderType       `json:"type"`
	Priority          ReminderPriority   `json:"priority"`
	IsCompleted       bool               `json:"isCompleted"`
	IsRecurring       bool               `json:"isRecurring"`
	RecurrencePattern *RecurrencePattern `json:"recurrencePattern,omitempty"`
	CreatedAt         time.Time          `json:"createdAt"`
}

type Frequency string

const (
	Daily   Frequency = "daily"
	Weekly  Frequency = "weekly"
	Monthly Frequency = "monthly"
)

// RecurrencePattern is stored on recurring reminders. It is descriptive
// only; nothing in the data layer evaluates recurrences.
type RecurrencePattern struct {
	Frequency  Frequency   `json:"frequency"`
	Interval   int         `json:"interval"`
	DaysOfWeek []DayOfWeek `json:"daysOfWeek,omitempty"`
	EndDate    *time.Time  `json:"endDate,omitempty"`
}

// NewID returns an opaque globally-unique identifier. Identifiers are
// generated by the context creating an entity, not by repositories.
func NewID() string {
	return uuid.NewString()
}
