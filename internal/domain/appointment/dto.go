package appointment

import (
	"github.com/groomday/groomday-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ServiceLineRequest references one catalog entry; AppliedPrice nil means
// "use the catalog default", while an explicit zero is honored as zero.
type ServiceLineRequest struct {
	GroomingTypeID string           `json:"grooming_type_id"`
	AppliedPrice   *decimal.Decimal `json:"applied_price,omitempty"`
}

type CreateRequest struct {
	DogID          string               `json:"dog_id"`
	AssignedUserID *string              `json:"assigned_user_id,omitempty"`
	ScheduledDate  string               `json:"scheduled_date"`
	StartTime      string               `json:"start_time"`
	EndTime        *string              `json:"end_time,omitempty"`
	GroomingType   *string              `json:"grooming_type,omitempty"` // legacy free text
	Memo           *string              `json:"memo,omitempty"`
	TotalAmount    *decimal.Decimal     `json:"total_amount,omitempty"`
	GroomingTypes  []ServiceLineRequest `json:"grooming_types,omitempty"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DogID) {
		errs = append(errs, validator.ValidationError{
			Field:   "dog_id",
			Message: "dog_id is required",
		})
	}
	if validator.IsEmpty(r.ScheduledDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "scheduled_date",
			Message: "scheduled_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.ScheduledDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "scheduled_date",
			Message: "scheduled_date must be in YYYY-MM-DD format",
		})
	}
	if validator.IsEmpty(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time is required",
		})
	} else if _, ok := validator.IsValidTimeOfDay(r.StartTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}
	if r.EndTime != nil {
		if _, ok := validator.IsValidTimeOfDay(*r.EndTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: "end_time must be in HH:MM format",
			})
		}
	}
	if r.TotalAmount != nil && r.TotalAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "total_amount",
			Message: "total_amount must not be negative",
		})
	}
	for _, line := range r.GroomingTypes {
		if validator.IsEmpty(line.GroomingTypeID) {
			errs = append(errs, validator.ValidationError{
				Field:   "grooming_types",
				Message: "grooming_type_id is required for every line",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateRequest: a nil GroomingTypes leaves existing service lines untouched;
// a non-nil (even empty) slice fully replaces them.
type UpdateRequest struct {
	AssignedUserID *string               `json:"assigned_user_id,omitempty"`
	ScheduledDate  *string               `json:"scheduled_date,omitempty"`
	StartTime      *string               `json:"start_time,omitempty"`
	EndTime        *string               `json:"end_time,omitempty"`
	GroomingType   *string               `json:"grooming_type,omitempty"`
	Memo           *string               `json:"memo,omitempty"`
	TotalAmount    *decimal.Decimal      `json:"total_amount,omitempty"`
	GroomingTypes  *[]ServiceLineRequest `json:"grooming_types,omitempty"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ScheduledDate != nil {
		if _, ok := validator.IsValidDate(*r.ScheduledDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "scheduled_date",
				Message: "scheduled_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.StartTime != nil {
		if _, ok := validator.IsValidTimeOfDay(*r.StartTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_time",
				Message: "start_time must be in HH:MM format",
			})
		}
	}
	if r.EndTime != nil && *r.EndTime != "" {
		if _, ok := validator.IsValidTimeOfDay(*r.EndTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: "end_time must be in HH:MM format",
			})
		}
	}
	if r.TotalAmount != nil && r.TotalAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "total_amount",
			Message: "total_amount must not be negative",
		})
	}
	if r.GroomingTypes != nil {
		for _, line := range *r.GroomingTypes {
			if validator.IsEmpty(line.GroomingTypeID) {
				errs = append(errs, validator.ValidationError{
					Field:   "grooming_types",
					Message: "grooming_type_id is required for every line",
				})
				break
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type StatusRequest struct {
	Status string `json:"status"`
}

func (r *StatusRequest) Validate() error {
	var errs validator.ValidationErrors

	valid := []string{
		string(StatusScheduled), string(StatusInProgress), string(StatusCompleted),
		string(StatusCancelled), string(StatusSettled),
	}
	if !validator.IsInSlice(r.Status, valid) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: scheduled, in_progress, completed, cancelled, settled",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ServiceLineResponse struct {
	GroomingTypeID string          `json:"grooming_type_id"`
	Name           string          `json:"name"`
	AppliedPrice   decimal.Decimal `json:"applied_price"`
}

type ListFilter struct {
	Date   string
	Status string
	Page   int
	Limit  int
}

type Response struct {
	ID                string                `json:"id"`
	DogID             string                `json:"dog_id"`
	DogName           string                `json:"dog_name"`
	CustomerID        string                `json:"customer_id"`
	CustomerName      string                `json:"customer_name"`
	AssignedUserID    *string               `json:"assigned_user_id,omitempty"`
	AssigneeName      *string               `json:"assignee_name,omitempty"`
	ScheduledDate     string                `json:"scheduled_date"`
	StartTime         string                `json:"start_time"`
	EndTime           *string               `json:"end_time,omitempty"`
	GroomingTypeLabel string                `json:"grooming_type_label,omitempty"`
	Memo              *string               `json:"memo,omitempty"`
	TotalAmount       decimal.Decimal       `json:"total_amount"`
	Status            string                `json:"status"`
	ServiceLines      []ServiceLineResponse `json:"service_lines"`
	CreatedAt         string                `json:"created_at"`
	UpdatedAt         string                `json:"updated_at"`
}
