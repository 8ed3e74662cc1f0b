package router

import (
	"context"
	"net/http"
	"time"

	"paseos-lugo/internal/adapters/mailrelay"
	"paseos-lugo/internal/adapters/storage/memory"
	"paseos-lugo/internal/domain/booking"
	"paseos-lugo/internal/domain/contact"
	"paseos-lugo/internal/domain/dogs"
	"paseos-lugo/internal/domain/i18n"
	"paseos-lugo/internal/domain/leads"
	"paseos-lugo/internal/domain/legal"
	"paseos-lugo/internal/domain/messages"
	"paseos-lugo/internal/domain/payment"
	"paseos-lugo/internal/domain/session"
	"paseos-lugo/internal/domain/tracking"
	"paseos-lugo/internal/domain/walkers"
	"paseos-lugo/internal/middleware"
	"paseos-lugo/internal/platform/logger"
	"paseos-lugo/internal/ports/auth"
	"paseos-lugo/internal/ports/clientstate"

	_ "paseos-lugo/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Backend agrupa los puertos que cubre la API REST. backend.Client lo cumple.
type Backend interface {
	session.AuthAPI
	walkers.Source
	dogs.Repository
	booking.API
	tracking.Source
	messages.Source
	leads.Sink
	CheckoutStatus(ctx context.Context, token, sessionID string) (payment.CheckoutStatus, error)
}

type Options struct {
	Backend Backend
	OAuth   auth.LoginProvider
	// Relay es opcional: sin él, los mensajes de contacto solo se registran.
	Relay  contact.Relay
	Logger logger.Logger

	// State es opcional: sin él, el estado de cliente vive en memoria.
	State clientstate.Store
	// Sessions es opcional; si viene, se comparte con quien lo creó (sweeper).
	Sessions *session.Manager
	Catalog  *i18n.Catalog

	VisitorSecret   string
	SecureCookies   bool
	Origin          string
	DraftTTL        time.Duration
	DefaultLanguage string

	Payment  payment.Options
	Tracking tracking.Options
}

// NewSessions arma el Manager de sesiones por visitante sobre state.
func NewSessions(api session.AuthAPI, state clientstate.Store, oauth auth.LoginProvider, log logger.Logger) *session.Manager {
	return session.NewManager(func(visitorID string) *session.Store {
		tokens := session.ScopeTokens{State: clientstate.Scope{Store: state, VisitorID: visitorID}}
		return session.NewStore(api, tokens, oauth, log.With(map[string]any{"visitor_id": visitorID}))
	})
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	state := opts.State
	if state == nil {
		state = memory.NewClientState()
	}
	catalog := opts.Catalog
	if catalog == nil {
		catalog = i18n.Default()
	}
	lang := opts.DefaultLanguage
	if !catalog.Supports(lang) {
		lang = i18n.DefaultLanguage
	}
	sessions := opts.Sessions
	if sessions == nil {
		sessions = NewSessions(opts.Backend, state, opts.OAuth, log)
	}
	relay := opts.Relay
	if relay == nil {
		relay = mailrelay.LogRelay{Log: log}
	}
	if opts.Payment.Logger == nil {
		opts.Payment.Logger = log
	}
	if opts.Tracking.Logger == nil {
		opts.Tracking.Logger = log
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Services por módulo
	walkersSvc := walkers.NewService(opts.Backend)
	dogsSvc := dogs.NewService(opts.Backend)
	bookingsSvc := booking.NewService(opts.Backend)
	wizard := booking.NewWizard(opts.Backend, log)
	poller := payment.NewPoller(opts.Backend.CheckoutStatus, opts.Payment)
	tracker := tracking.NewTracker(opts.Backend, opts.Tracking)
	messagesSvc := messages.NewService(opts.Backend)
	leadsSvc := leads.NewService(opts.Backend)
	contactSvc := contact.NewService(relay, log)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Visitor(middleware.NewVisitorTokens(opts.VisitorSecret), opts.SecureCookies))
		r.Use(middleware.Session(sessions, log))
		r.Use(middleware.Language(catalog, state, lang))

		// Rutas por módulo
		i18n.RegisterRoutes(r, catalog, func(req *http.Request) clientstate.Scope {
			return middleware.State(req, state)
		}, lang)
		session.RegisterRoutes(r, session.HandlerDeps{Dogs: dogsSvc, Origin: opts.Origin})
		walkers.RegisterRoutes(r, walkersSvc)
		dogs.RegisterRoutes(r, dogsSvc, middleware.Token)
		booking.RegisterRoutes(r, booking.HandlerDeps{
			Wizard:   wizard,
			Bookings: bookingsSvc,
			Walkers:  walkersSvc,
			Dogs:     dogsSvc,
			State:    state,
			DraftTTL: opts.DraftTTL,
			Origin:   opts.Origin,
		})
		payment.RegisterRoutes(r, poller, log)
		tracking.RegisterRoutes(r, tracker, log)
		messages.RegisterRoutes(r, messagesSvc)
		leads.RegisterRoutes(r, leadsSvc)
		contact.RegisterRoutes(r, contactSvc)
		legal.RegisterRoutes(r)
	})

	return r
}
