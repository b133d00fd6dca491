package appointment

import "context"

// AppointmentService defines the interface for appointment business logic,
// including service-line validation and pricing resolution
type AppointmentService interface {
	Create(ctx context.Context, shopID, createdByUserID string, req CreateRequest) (Response, error)
	Get(ctx context.Context, shopID, appointmentID string) (Response, error)
	List(ctx context.Context, shopID string, filter ListFilter) ([]Response, int64, error)
	Update(ctx context.Context, shopID, appointmentID string, req UpdateRequest) (Response, error)
	UpdateStatus(ctx context.Context, shopID, appointmentID string, req StatusRequest) (Response, error)

	// Cancel marks the appointment cancelled
	Cancel(ctx context.Context, shopID, appointmentID string) error
}
