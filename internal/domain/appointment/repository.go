package appointment

import "context"

// AppointmentRepository defines the interface for appointment data access
type AppointmentRepository interface {
	Create(ctx context.Context, a Appointment) (Appointment, error)
	GetByID(ctx context.Context, id string) (AppointmentWithDetails, error)
	List(ctx context.Context, shopID string, filter ListFilter) ([]AppointmentWithDetails, error)
	Count(ctx context.Context, shopID string, filter ListFilter) (int64, error)
	Update(ctx context.Context, a Appointment) (Appointment, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
}

// ServiceLineRepository defines the interface for appointment service lines
type ServiceLineRepository interface {
	// Insert adds one join row per validated line
	Insert(ctx context.Context, appointmentID string, lines []ValidatedLine) error

	// DeleteByAppointment removes all lines of an appointment (replace path)
	DeleteByAppointment(ctx context.Context, appointmentID string) error

	ListByAppointment(ctx context.Context, appointmentID string) ([]ServiceLineWithName, error)
}
