package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"paseos-lugo/internal/domain/dogs"
	"paseos-lugo/internal/domain/walkers"
	"paseos-lugo/internal/platform/logger"
)

const dateLayout = "2006-01-02"

var (
	ErrNoDogs       = errors.New("no dogs registered")
	ErrDogRequired  = errors.New("dog required")
	ErrDateRequired = errors.New("date required")
	ErrInvalidDate  = errors.New("date must be YYYY-MM-DD")
	ErrPastDate     = errors.New("date is in the past")
	ErrInvalidTime  = errors.New("invalid time slot")
	ErrUnauthorized = errors.New("unauthorized")

	ErrCreateBooking = errors.New("create booking failed")
	ErrCheckout      = errors.New("checkout session failed")
)

// IsValidation indica errores que se resuelven en el formulario, sin red.
func IsValidation(err error) bool {
	switch {
	case errors.Is(err, ErrNoDogs),
		errors.Is(err, ErrDogRequired),
		errors.Is(err, ErrDateRequired),
		errors.Is(err, ErrInvalidDate),
		errors.Is(err, ErrPastDate),
		errors.Is(err, ErrInvalidTime),
		errors.Is(err, ErrUnknownService):
		return true
	default:
		return false
	}
}

// Form es el estado del wizard. Se devuelve tal cual si el envío falla.
type Form struct {
	WalkerID    string      `json:"walker_id"`
	DogID       string      `json:"dog_id"`
	ServiceType ServiceType `json:"service_type"`
	Date        string      `json:"date"`
	Time        string      `json:"time"`
	Location    string      `json:"location"`
	Notes       string      `json:"notes"`
}

// Redirect es la salida dura hacia la pasarela de pago.
type Redirect struct {
	URL       string `json:"url"`
	BookingID string `json:"booking_id"`
}

type Wizard struct {
	api API
	log logger.Logger
	now func() time.Time
	loc *time.Location
}

func NewWizard(api API, log logger.Logger) *Wizard {
	if log == nil {
		log = logger.Nop()
	}
	return &Wizard{
		api: api,
		log: log,
		now: time.Now,
		loc: time.Local,
	}
}

// WithClock fija reloj y zona (tests).
func (w *Wizard) WithClock(now func() time.Time, loc *time.Location) *Wizard {
	if now != nil {
		w.now = now
	}
	if loc != nil {
		w.loc = loc
	}
	return w
}

// Defaults arma el formulario inicial: estándar a las 10:00, primer perro
// seleccionado, y lo que haya dejado el borrador de la portada.
func (w *Wizard) Defaults(walkerID string, myDogs []dogs.Dog, draft *Draft) Form {
	f := Form{
		WalkerID:    walkerID,
		ServiceType: DefaultService,
		Time:        DefaultTime,
	}
	if len(myDogs) > 0 {
		f.DogID = myDogs[0].ID
	}
	if draft != nil {
		if _, err := LookupService(draft.ServiceType); err == nil {
			f.ServiceType = draft.ServiceType
		}
		if validSlot(draft.Time) {
			f.Time = draft.Time
		}
		if _, err := w.parseDate(draft.Date); err == nil {
			f.Date = draft.Date
		}
	}
	return f
}

// Validate no toca la red.
func (w *Wizard) Validate(f Form, myDogs []dogs.Dog) error {
	if len(myDogs) == 0 {
		return ErrNoDogs
	}
	if strings.TrimSpace(f.DogID) == "" || !ownsDog(myDogs, f.DogID) {
		return ErrDogRequired
	}
	if strings.TrimSpace(f.Date) == "" {
		return ErrDateRequired
	}
	day, err := w.parseDate(f.Date)
	if err != nil {
		return err
	}
	// Igual que el calendario: se deshabilita todo día cuyo inicio ya pasó.
	if day.Before(w.now()) {
		return ErrPastDate
	}
	if !validSlot(f.Time) {
		return ErrInvalidTime
	}
	if _, err := LookupService(f.ServiceType); err != nil {
		return err
	}
	return nil
}

// Submit crea la reserva en pending_payment y pide la sesión de checkout.
// El llamador debe navegar a Redirect.URL; no hay continuación local.
func (w *Wizard) Submit(ctx context.Context, token string, walker walkers.Walker, f Form, myDogs []dogs.Dog, origin string) (Redirect, error) {
	if strings.TrimSpace(token) == "" {
		return Redirect{}, ErrUnauthorized
	}
	if err := w.Validate(f, myDogs); err != nil {
		return Redirect{}, err
	}
	svc, _ := LookupService(f.ServiceType)

	location := strings.TrimSpace(f.Location)
	if location == "" {
		location = walker.Location
	}

	walkerID := walker.ID
	if walkerID == "" {
		walkerID = f.WalkerID
	}

	b, err := w.api.CreateBooking(ctx, token, CreateRequest{
		WalkerID:    walkerID,
		DogID:       f.DogID,
		ServiceType: svc.Type,
		Date:        f.Date,
		Time:        f.Time,
		Duration:    svc.Duration,
		Amount:      svc.Price,
		Location:    location,
		Notes:       f.Notes,
	})
	if err != nil {
		w.log.Warn("booking create failed", map[string]any{"walker_id": walkerID, "err": err})
		return Redirect{}, fmt.Errorf("%w: %w", ErrCreateBooking, err)
	}

	cs, err := w.api.CreateCheckoutSession(ctx, token, CheckoutRequest{
		BookingID: b.ID,
		OriginURL: strings.TrimRight(origin, "/"),
	})
	if err != nil {
		w.log.Warn("checkout session failed", map[string]any{"booking_id": b.ID, "err": err})
		return Redirect{}, fmt.Errorf("%w: %w", ErrCheckout, err)
	}
	if strings.TrimSpace(cs.URL) == "" {
		return Redirect{}, fmt.Errorf("%w: empty checkout url", ErrCheckout)
	}

	w.log.Info("booking handed to checkout", map[string]any{
		"booking_id": b.ID,
		"service":    string(svc.Type),
		"amount":     svc.Price,
	})
	return Redirect{URL: cs.URL, BookingID: b.ID}, nil
}

func (w *Wizard) parseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, strings.TrimSpace(s), w.loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func ownsDog(myDogs []dogs.Dog, id string) bool {
	for _, d := range myDogs {
		if d.ID == id {
			return true
		}
	}
	return false
}
