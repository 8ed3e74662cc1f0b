package payment

import "context"

// CheckoutStatus es la respuesta de GET /api/payments/checkout/status/{session_id}.
type CheckoutStatus struct {
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
	AmountTotal   int64  `json:"amount_total,omitempty"`
	Currency      string `json:"currency,omitempty"`
}

const (
	PaymentPaid    = "paid"
	SessionExpired = "expired"
)

// StatusFunc consulta el estado de una sesión de checkout.
type StatusFunc func(ctx context.Context, token, sessionID string) (CheckoutStatus, error)
