package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paseos-lugo/internal/domain/dogs"
	"paseos-lugo/internal/domain/walkers"
)

type fakeAPI struct {
	created     []CreateRequest
	checkouts   []CheckoutRequest
	createErr   error
	checkoutErr error
	checkoutURL string
}

func (f *fakeAPI) CreateBooking(_ context.Context, _ string, in CreateRequest) (Booking, error) {
	if f.createErr != nil {
		return Booking{}, f.createErr
	}
	f.created = append(f.created, in)
	return Booking{ID: "b-42", Status: StatusPendingPayment}, nil
}

func (f *fakeAPI) CreateCheckoutSession(_ context.Context, _ string, in CheckoutRequest) (CheckoutSession, error) {
	if f.checkoutErr != nil {
		return CheckoutSession{}, f.checkoutErr
	}
	f.checkouts = append(f.checkouts, in)
	return CheckoutSession{URL: f.checkoutURL, SessionID: "cs_1"}, nil
}

func (f *fakeAPI) ListBookings(context.Context, string) ([]Booking, error) { return nil, nil }
func (f *fakeAPI) GetBooking(context.Context, string, string) (Booking, error) {
	return Booking{}, ErrNotFound
}
func (f *fakeAPI) CancelBooking(context.Context, string, string) (Cancellation, error) {
	return Cancellation{}, nil
}

var (
	now    = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	myDogs = []dogs.Dog{{ID: "d1", Name: "Rex", Size: dogs.SizeMedium}, {ID: "d2", Name: "Luna"}}
	walker = walkers.Walker{ID: "w1", UserName: "Lucía", Location: "Lugo Centro"}
)

func newTestWizard(api API) *Wizard {
	return NewWizard(api, nil).WithClock(func() time.Time { return now }, time.UTC)
}

func validForm() Form {
	return Form{WalkerID: "w1", DogID: "d1", ServiceType: ServiceBasico, Date: "2025-06-11", Time: "09:00"}
}

func TestSubmit_CreatesBookingThenCheckout(t *testing.T) {
	api := &fakeAPI{checkoutURL: "https://checkout.example/cs_1"}

	red, err := newTestWizard(api).Submit(context.Background(), "tok", walker, validForm(), myDogs, "https://paseos.example/")
	require.NoError(t, err)
	assert.Equal(t, Redirect{URL: "https://checkout.example/cs_1", BookingID: "b-42"}, red)

	require.Len(t, api.created, 1)
	got := api.created[0]
	assert.Equal(t, 6.0, got.Amount)
	assert.Equal(t, 30, got.Duration)
	assert.Equal(t, "Lugo Centro", got.Location, "sin ubicación se usa la del paseador")

	require.Len(t, api.checkouts, 1)
	assert.Equal(t, CheckoutRequest{BookingID: "b-42", OriginURL: "https://paseos.example"}, api.checkouts[0])
}

func TestSubmit_PriceComesFromTariff(t *testing.T) {
	api := &fakeAPI{checkoutURL: "https://checkout.example/x"}
	f := validForm()
	f.ServiceType = ServiceEspecial
	f.Location = "Rúa Nova 1"

	_, err := newTestWizard(api).Submit(context.Background(), "tok", walker, f, myDogs, "https://paseos.example")
	require.NoError(t, err)
	assert.Equal(t, 25.0, api.created[0].Amount)
	assert.Equal(t, 45, api.created[0].Duration)
	assert.Equal(t, "Rúa Nova 1", api.created[0].Location)
}

func TestValidate(t *testing.T) {
	w := newTestWizard(&fakeAPI{})

	cases := []struct {
		name   string
		mutate func(*Form)
		dogs   []dogs.Dog
		want   error
	}{
		{"sin perros", func(*Form) {}, nil, ErrNoDogs},
		{"perro ajeno", func(f *Form) { f.DogID = "otro" }, myDogs, ErrDogRequired},
		{"sin fecha", func(f *Form) { f.Date = "" }, myDogs, ErrDateRequired},
		{"fecha mal formada", func(f *Form) { f.Date = "11/06/2025" }, myDogs, ErrInvalidDate},
		{"ayer", func(f *Form) { f.Date = "2025-06-09" }, myDogs, ErrPastDate},
		{"hoy ya empezó", func(f *Form) { f.Date = "2025-06-10" }, myDogs, ErrPastDate},
		{"hora fuera de franja", func(f *Form) { f.Time = "07:30" }, myDogs, ErrInvalidTime},
		{"servicio desconocido", func(f *Form) { f.ServiceType = "vip" }, myDogs, ErrUnknownService},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := validForm()
			tc.mutate(&f)
			err := w.Validate(f, tc.dogs)
			require.ErrorIs(t, err, tc.want)
			assert.True(t, IsValidation(err))
		})
	}

	require.NoError(t, w.Validate(validForm(), myDogs))
}

func TestSubmit_ValidationDoesNotCallBackend(t *testing.T) {
	api := &fakeAPI{}
	f := validForm()
	f.Date = "2025-06-01"

	_, err := newTestWizard(api).Submit(context.Background(), "tok", walker, f, myDogs, "https://paseos.example")
	require.ErrorIs(t, err, ErrPastDate)
	assert.Empty(t, api.created)
}

func TestSubmit_Failures(t *testing.T) {
	boom := errors.New("boom")

	_, err := newTestWizard(&fakeAPI{}).Submit(context.Background(), "", walker, validForm(), myDogs, "o")
	require.ErrorIs(t, err, ErrUnauthorized)

	_, err = newTestWizard(&fakeAPI{createErr: boom}).Submit(context.Background(), "tok", walker, validForm(), myDogs, "o")
	require.ErrorIs(t, err, ErrCreateBooking)
	require.ErrorIs(t, err, boom)
	assert.False(t, IsValidation(err))

	_, err = newTestWizard(&fakeAPI{checkoutErr: boom}).Submit(context.Background(), "tok", walker, validForm(), myDogs, "o")
	require.ErrorIs(t, err, ErrCheckout)

	_, err = newTestWizard(&fakeAPI{}).Submit(context.Background(), "tok", walker, validForm(), myDogs, "o")
	require.ErrorIs(t, err, ErrCheckout, "una URL vacía no sirve de salida")
}

func TestDefaults(t *testing.T) {
	w := newTestWizard(&fakeAPI{})

	f := w.Defaults("w1", myDogs, nil)
	assert.Equal(t, Form{WalkerID: "w1", DogID: "d1", ServiceType: ServiceEstandar, Time: "10:00"}, f)

	f = w.Defaults("w1", nil, &Draft{ServiceType: ServicePremium, Date: "2025-06-20", Time: "18:00"})
	assert.Equal(t, ServicePremium, f.ServiceType)
	assert.Equal(t, "2025-06-20", f.Date)
	assert.Equal(t, "18:00", f.Time)
	assert.Empty(t, f.DogID)

	f = w.Defaults("w1", myDogs, &Draft{ServiceType: "vip", Date: "mañana", Time: "03:00"})
	assert.Equal(t, ServiceEstandar, f.ServiceType)
	assert.Empty(t, f.Date)
	assert.Equal(t, "10:00", f.Time)
}

func TestStatusBadge(t *testing.T) {
	text, color := StatusCancelled.Badge()
	assert.Equal(t, "Cancelada", text)
	assert.Equal(t, "#EF4444", color)

	text, _ = Status("weird").Badge()
	assert.Equal(t, "Pendiente pago", text)
}

func TestTier_PriceLabel(t *testing.T) {
	especial, err := LookupService(ServiceEspecial)
	require.NoError(t, err)
	assert.Equal(t, "25.00 € · 45 min", especial.PriceLabel())
}
