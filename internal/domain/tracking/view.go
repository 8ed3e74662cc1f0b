package tracking

import (
	"time"

	"paseos-lugo/internal/domain/booking"
)

// HomeCenter es el centro por defecto del mapa (Lugo) cuando aún no hay ruta.
var HomeCenter = Point{Lat: 43.0097, Lng: -7.5567}

const DefaultZoom = 15

// Snapshot es la última respuesta completa del servidor. Se reemplaza entera.
type Snapshot struct {
	Booking   booking.Booking
	Walk      Walk
	FetchedAt time.Time
}

type View struct {
	BookingID   string          `json:"booking_id"`
	Booking     booking.Booking `json:"booking"`
	Status      WalkStatus      `json:"status"`
	StatusLabel string          `json:"status_label"`

	Center  Point   `json:"center"`
	Zoom    int     `json:"zoom"`
	Path    []Point `json:"path"`
	Start   *Point  `json:"start,omitempty"`
	Current *Point  `json:"current,omitempty"`

	StartTime  *time.Time `json:"start_time,omitempty"`
	EndTime    *time.Time `json:"end_time,omitempty"`
	ReportText string     `json:"report_text,omitempty"`
	Photos     []string   `json:"photos"`

	MapsAPIKey string    `json:"maps_api_key,omitempty"`
	FetchedAt  time.Time `json:"fetched_at"`
}

// BuildView pinta el snapshot: la ruta va tal cual llegó, el centro es el
// último punto (o HomeCenter si no hay ruta).
func BuildView(s Snapshot, mapsKey string) View {
	path := make([]Point, len(s.Walk.RouteData))
	copy(path, s.Walk.RouteData)

	photos := s.Walk.Photos
	if photos == nil {
		photos = []string{}
	}

	v := View{
		BookingID:   s.Booking.ID,
		Booking:     s.Booking,
		Status:      s.Walk.Status,
		StatusLabel: s.Walk.Status.Label(),
		Center:      HomeCenter,
		Zoom:        DefaultZoom,
		Path:        path,
		StartTime:   s.Walk.StartTime,
		EndTime:     s.Walk.EndTime,
		ReportText:  s.Walk.ReportText,
		Photos:      photos,
		MapsAPIKey:  mapsKey,
		FetchedAt:   s.FetchedAt,
	}
	if v.BookingID == "" {
		v.BookingID = s.Walk.BookingID
	}

	if n := len(path); n > 0 {
		first := path[0]
		last := path[n-1]
		v.Start = &first
		v.Current = &last
		v.Center = Point{Lat: last.Lat, Lng: last.Lng}
	}
	return v
}
