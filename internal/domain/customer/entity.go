package customer

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is a dog owner registered at one shop
type Customer struct {
	ID        string
	ShopID    string
	Name      string
	Phone     string
	Email     *string
	Memo      *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type DogSex string

const (
	DogSexMale   DogSex = "male"
	DogSexFemale DogSex = "female"
)

// Dog belongs to one customer; appointments reference dogs
type Dog struct {
	ID         string
	ShopID     string
	CustomerID string
	Name       string
	Breed      *string
	WeightKg   *decimal.Decimal
	BirthDate  *time.Time
	Sex        *DogSex
	PhotoURL   *string
	Memo       *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CustomerWithDogs is the detail view
type CustomerWithDogs struct {
	Customer
	Dogs []Dog
}
