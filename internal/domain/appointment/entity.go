package appointment

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusSettled    Status = "settled"
)

// Appointment is one time-slotted grooming visit for a dog
type Appointment struct {
	ID              string
	ShopID          string
	DogID           string
	CreatedByUserID string
	AssignedUserID  *string
	ScheduledDate   time.Time
	StartTime       string // "HH:MM"
	EndTime         *string
	GroomingType    *string // legacy free-text service label
	Memo            *string
	TotalAmount     decimal.Decimal
	Status          Status
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ServiceLine attaches one catalog entry to an appointment with the price
// captured at booking time, decoupled from the catalog's current default.
type ServiceLine struct {
	ID            string
	AppointmentID string
	ServiceTypeID string
	AppliedPrice  decimal.Decimal
}

// ServiceLineWithName carries the joined catalog name for read projections
type ServiceLineWithName struct {
	ServiceLine
	ServiceTypeName string
}

// ValidatedLine is the output of service-line validation: a resolved catalog
// reference with its applied price, ready to persist.
type ValidatedLine struct {
	ServiceTypeID   string
	ServiceTypeName string
	AppliedPrice    decimal.Decimal
}

// AppointmentWithDetails is the read model with joins for list/detail views
type AppointmentWithDetails struct {
	Appointment
	DogName      string
	CustomerID   string
	CustomerName string
	AssigneeName *string
	Lines        []ServiceLineWithName
}
