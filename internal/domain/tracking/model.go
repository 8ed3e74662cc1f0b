package tracking

import (
	"context"
	"errors"
	"time"

	"paseos-lugo/internal/domain/booking"
)

var ErrNotFound = errors.New("walk not found")

type WalkStatus string

const (
	WalkPending    WalkStatus = "pending"
	WalkInProgress WalkStatus = "in_progress"
	WalkCompleted  WalkStatus = "completed"
)

// Label en castellano, como en la ficha del paseo.
func (s WalkStatus) Label() string {
	switch s {
	case WalkInProgress:
		return "En progreso"
	case WalkCompleted:
		return "Completado"
	default:
		return "Pendiente"
	}
}

// Point es una muestra GPS. El backend puede añadir timestamp.
type Point struct {
	Lat       float64  `json:"lat"`
	Lng       float64  `json:"lng"`
	Timestamp *float64 `json:"timestamp,omitempty"`
}

// Walk la produce la app del paseador; aquí solo se lee.
// RouteData es cronológica y solo crece mientras el paseo está en curso.
type Walk struct {
	ID         string     `json:"id,omitempty"`
	BookingID  string     `json:"booking_id"`
	Status     WalkStatus `json:"status"`
	RouteData  []Point    `json:"route_data"`
	StartTime  *time.Time `json:"start_time,omitempty"`
	EndTime    *time.Time `json:"end_time,omitempty"`
	ReportText string     `json:"report_text,omitempty"`
	Photos     []string   `json:"photos"`
}

// MapsConfig sale de GET /api/config.
type MapsConfig struct {
	GoogleMapsAPIKey string `json:"google_maps_api_key"`
}

// Source reúne las lecturas que hace el seguimiento.
type Source interface {
	GetBooking(ctx context.Context, token, id string) (booking.Booking, error)
	GetWalk(ctx context.Context, bookingID string) (Walk, error)
	PublicConfig(ctx context.Context) (MapsConfig, error)
}
