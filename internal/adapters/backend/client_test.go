package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paseos-lugo/internal/domain/booking"
	"paseos-lugo/internal/domain/session"
	"paseos-lugo/internal/domain/tracking"
	"paseos-lugo/internal/domain/walkers"
)

func newTestClient(t *testing.T, h http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := New(Config{BaseURL: srv.URL, Timeout: time.Second})
	require.NoError(t, err)
	return c
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestExchangeSession_SendsHeader(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/session", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "sess-1", r.Header.Get("X-Session-ID"))
		writeJSON(w, 200, map[string]any{"token": "T", "user": map[string]any{"id": "u1", "name": "Ana", "role": "owner"}})
	})
	c := newTestClient(t, mux)

	res, err := c.ExchangeSession(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "T", res.Token)
	assert.Equal(t, session.RoleOwner, res.User.Role)
}

func TestMe_UnauthorizedMapsToSentinel(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer expired", r.Header.Get("Authorization"))
		writeJSON(w, 401, map[string]string{"detail": "Not authenticated"})
	})
	c := newTestClient(t, mux)

	_, err := c.Me(context.Background(), "expired")
	require.ErrorIs(t, err, session.ErrUnauthorized)
}

func TestGetWalker_NotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/walkers/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 404, map[string]string{"detail": "Walker not found"})
	})
	c := newTestClient(t, mux)

	_, err := c.GetWalker(context.Background(), "nope")
	require.ErrorIs(t, err, walkers.ErrNotFound)
}

func TestUpstreamError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/walkers", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	c := newTestClient(t, mux)

	_, err := c.ListWalkers(context.Background())
	require.ErrorIs(t, err, ErrUpstream)
	assert.False(t, errors.Is(err, walkers.ErrNotFound))
}

func TestBookingFlowEndpoints(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/bookings", func(w http.ResponseWriter, r *http.Request) {
		var in booking.CreateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, booking.ServiceBasico, in.ServiceType)
		assert.Equal(t, 6.0, in.Amount)
		writeJSON(w, 200, map[string]any{"id": "b1", "status": "pending_payment", "service_type": in.ServiceType})
	})
	mux.HandleFunc("POST /api/payments/checkout/session", func(w http.ResponseWriter, r *http.Request) {
		var in booking.CheckoutRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "b1", in.BookingID)
		writeJSON(w, 200, map[string]any{"url": "https://pay.example/cs_1", "session_id": "cs_1"})
	})
	mux.HandleFunc("PATCH /api/bookings/{id}/cancel", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "b1", r.PathValue("id"))
		writeJSON(w, 200, map[string]any{"message": "ok", "refund_amount": 6.0, "refund_description": "100%"})
	})
	mux.HandleFunc("GET /api/payments/checkout/status/{sid}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, map[string]any{"status": "complete", "payment_status": "paid", "amount_total": 600, "currency": "eur"})
	})
	c := newTestClient(t, mux)
	ctx := context.Background()

	b, err := c.CreateBooking(ctx, "T", booking.CreateRequest{ServiceType: booking.ServiceBasico, Amount: 6.0, Duration: 30})
	require.NoError(t, err)
	assert.Equal(t, "b1", b.ID)

	cs, err := c.CreateCheckoutSession(ctx, "T", booking.CheckoutRequest{BookingID: b.ID, OriginURL: "http://x"})
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example/cs_1", cs.URL)

	cancel, err := c.CancelBooking(ctx, "T", "b1")
	require.NoError(t, err)
	assert.Equal(t, 6.0, cancel.RefundAmount)

	st, err := c.CheckoutStatus(ctx, "", "cs_1")
	require.NoError(t, err)
	assert.Equal(t, "paid", st.PaymentStatus)
}

func TestGetWalk(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/walks/{id}", func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(w, 200, map[string]any{
			"booking_id": r.PathValue("id"),
			"status":     "in_progress",
			"route_data": []map[string]any{{"lat": 43.01, "lng": -7.55, "timestamp": 1.5}, {"lat": 43.02, "lng": -7.56}},
			"photos":     []string{},
		})
	})
	c := newTestClient(t, mux)

	w, err := c.GetWalk(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, tracking.WalkInProgress, w.Status)
	require.Len(t, w.RouteData, 2)
	require.NotNil(t, w.RouteData[0].Timestamp)
	assert.Nil(t, w.RouteData[1].Timestamp)
}

func TestObserveCalled(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/config", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, map[string]string{"google_maps_api_key": "k"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	var routes []string
	c, err := New(Config{BaseURL: srv.URL, Observe: func(method, route string, status int, _ time.Duration) {
		routes = append(routes, method+" "+route)
		assert.Equal(t, 200, status)
	}})
	require.NoError(t, err)

	cfg, err := c.PublicConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "k", cfg.GoogleMapsAPIKey)
	assert.Equal(t, []string{"GET /api/config"}, routes)
}
