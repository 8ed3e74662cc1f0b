package booking

import "time"

// Status de una reserva. El backend es la fuente de verdad; la web solo lee.
type Status string

const (
	StatusPendingPayment Status = "pending_payment"
	StatusConfirmed      Status = "confirmed"
	StatusInProgress     Status = "in_progress"
	StatusCompleted      Status = "completed"
	StatusCancelled      Status = "cancelled"
)

// Badge es la etiqueta de estado de /mis-reservas. Estados desconocidos caen en pendiente.
func (s Status) Badge() (text, color string) {
	switch s {
	case StatusConfirmed:
		return "Confirmada", "#10B981"
	case StatusInProgress:
		return "En progreso", "#3B82F6"
	case StatusCompleted:
		return "Completada", "#6B7280"
	case StatusCancelled:
		return "Cancelada", "#EF4444"
	default:
		return "Pendiente pago", "#F59E0B"
	}
}

type Booking struct {
	ID          string      `json:"id"`
	OwnerID     string      `json:"owner_id,omitempty"`
	WalkerID    string      `json:"walker_id"`
	DogID       string      `json:"dog_id"`
	ServiceType ServiceType `json:"service_type"`
	Date        string      `json:"date"`
	Time        string      `json:"time"`
	Duration    int         `json:"duration"`
	Amount      float64     `json:"amount"`
	Location    string      `json:"location,omitempty"`
	Notes       string      `json:"notes,omitempty"`
	Status      Status      `json:"status"`

	RefundAmount      *float64 `json:"refund_amount,omitempty"`
	RefundDescription string   `json:"refund_description,omitempty"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// CreateRequest es el cuerpo de POST /api/bookings.
type CreateRequest struct {
	WalkerID    string      `json:"walker_id"`
	DogID       string      `json:"dog_id"`
	ServiceType ServiceType `json:"service_type"`
	Date        string      `json:"date"`
	Time        string      `json:"time"`
	Duration    int         `json:"duration"`
	Amount      float64     `json:"amount"`
	Location    string      `json:"location,omitempty"`
	Notes       string      `json:"notes"`
}

// CheckoutRequest es el cuerpo de POST /api/payments/checkout/session.
type CheckoutRequest struct {
	BookingID string `json:"booking_id"`
	OriginURL string `json:"origin_url"`
}

type CheckoutSession struct {
	URL       string `json:"url"`
	SessionID string `json:"session_id,omitempty"`
}

// Cancellation es la respuesta de PATCH /api/bookings/{id}/cancel.
type Cancellation struct {
	Message           string  `json:"message"`
	RefundAmount      float64 `json:"refund_amount"`
	RefundDescription string  `json:"refund_description"`
	HoursUntilBooking float64 `json:"hours_until_booking"`
}
