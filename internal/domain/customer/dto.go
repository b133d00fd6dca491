package customer

import (
	"github.com/groomday/groomday-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateRequest struct {
	Name  string  `json:"name"`
	Phone string  `json:"phone"`
	Email *string `json:"email,omitempty"`
	Memo  *string `json:"memo,omitempty"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone is required",
		})
	} else if !validator.IsValidPhoneNumber(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone format is invalid",
		})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRequest struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty"`
	Memo  *string `json:"memo,omitempty"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone format is invalid",
		})
	}
	if r.Email != nil && *r.Email != "" && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DogRequest struct {
	Name      string           `json:"name"`
	Breed     *string          `json:"breed,omitempty"`
	WeightKg  *decimal.Decimal `json:"weight_kg,omitempty"`
	BirthDate *string          `json:"birth_date,omitempty"`
	Sex       *string          `json:"sex,omitempty"`
	Memo      *string          `json:"memo,omitempty"`
}

func (r *DogRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if r.BirthDate != nil {
		if _, ok := validator.IsValidDate(*r.BirthDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "birth_date",
				Message: "birth_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.Sex != nil && !validator.IsInSlice(*r.Sex, []string{string(DogSexMale), string(DogSexFemale)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "sex",
			Message: "sex must be one of: male, female",
		})
	}
	if r.WeightKg != nil && r.WeightKg.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "weight_kg",
			Message: "weight_kg must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DogResponse struct {
	ID        string           `json:"id"`
	CustomerID string          `json:"customer_id"`
	Name      string           `json:"name"`
	Breed     *string          `json:"breed,omitempty"`
	WeightKg  *decimal.Decimal `json:"weight_kg,omitempty"`
	BirthDate *string          `json:"birth_date,omitempty"`
	Sex       *string          `json:"sex,omitempty"`
	PhotoURL  *string          `json:"photo_url,omitempty"`
	Memo      *string          `json:"memo,omitempty"`
}

type Response struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Phone     string        `json:"phone"`
	Email     *string       `json:"email,omitempty"`
	Memo      *string       `json:"memo,omitempty"`
	Dogs      []DogResponse `json:"dogs,omitempty"`
	CreatedAt string        `json:"created_at"`
	UpdatedAt string        `json:"updated_at"`
}
