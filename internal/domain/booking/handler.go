package booking

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strings"
	"time"

	"paseos-lugo/internal/domain/dogs"
	"paseos-lugo/internal/domain/i18n"
	"paseos-lugo/internal/domain/walkers"
	"paseos-lugo/internal/middleware"
	"paseos-lugo/internal/ports/clientstate"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Wizard   *Wizard
	Bookings *Service
	Walkers  *walkers.Service
	Dogs     *dogs.Service
	State    clientstate.Store
	DraftTTL time.Duration
	// Origin es el origen público; el checkout vuelve a {Origin}/pago-exitoso.
	Origin string
}

func RegisterRoutes(r chi.Router, d HandlerDeps) {
	// Portada: tarifa + borrador de reserva
	r.Get("/", landingHandler(d))
	r.Post("/", saveDraftHandler(d))

	r.Route("/reservar/{walkerID}", func(rr chi.Router) {
		rr.Get("/", wizardHandler(d))
		rr.Post("/", submitHandler(d))
	})

	r.Get("/mis-reservas", myBookingsHandler(d))
	r.Post("/mis-reservas/{bookingID}/cancelar", cancelHandler(d))
}

type landingResponse struct {
	Services    []Tier   `json:"services"`
	TimeSlots   []string `json:"time_slots"`
	DefaultTime string   `json:"default_time"`
	Draft       *Draft   `json:"draft,omitempty"`
}

func landingHandler(d HandlerDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		draft, _ := NewDraftStore(middleware.State(r, d.State), d.DraftTTL).Load(r.Context())
		writeJSON(w, http.StatusOK, landingResponse{
			Services:    Services(),
			TimeSlots:   TimeSlots(),
			DefaultTime: DefaultTime,
			Draft:       draft,
		})
	}
}

func saveDraftHandler(d HandlerDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var draft Draft
		if isJSON(r) {
			if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
				writeError(w, http.StatusBadRequest, "invalid json")
				return
			}
		} else {
			if err := r.ParseForm(); err != nil {
				writeError(w, http.StatusBadRequest, "invalid form")
				return
			}
			draft = Draft{
				ServiceType: ServiceType(r.PostForm.Get("service_type")),
				Date:        r.PostForm.Get("date"),
				Time:        r.PostForm.Get("time"),
			}
		}
		if draft.ServiceType != "" {
			if _, err := LookupService(draft.ServiceType); err != nil {
				writeError(w, http.StatusUnprocessableEntity, err.Error())
				return
			}
		}

		if err := NewDraftStore(middleware.State(r, d.State), d.DraftTTL).Save(r.Context(), draft); err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		http.Redirect(w, r, "/paseadores", http.StatusSeeOther)
	}
}

type wizardResponse struct {
	Walker    walkers.Walker `json:"walker"`
	Dogs      []dogs.Dog     `json:"dogs"`
	Services  []Tier         `json:"services"`
	TimeSlots []string       `json:"time_slots"`
	Form      Form           `json:"form"`
	// Sin perros no se puede enviar; la vista enlaza al alta.
	CanSubmit    bool   `json:"can_submit"`
	RegisterHref string `json:"register_href,omitempty"`
	PriceLabel   string `json:"price_label"`
}

// RegisterDogHref es donde se dan de alta los perros.
const RegisterDogHref = "/mis-reservas"

func wizardHandler(d HandlerDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t := i18n.From(r.Context())
		token := middleware.Token(r)
		if token == "" {
			writeError(w, http.StatusUnauthorized, t("booking.errors.unauthorized"))
			return
		}

		walker, err := d.Walkers.Get(r.Context(), chi.URLParam(r, "walkerID"))
		if err != nil {
			writeWalkerError(w, t, err)
			return
		}
		myDogs, err := d.Dogs.ListMine(r.Context(), token)
		if err != nil {
			writeDogsError(w, t, err)
			return
		}
		draft, _ := NewDraftStore(middleware.State(r, d.State), d.DraftTTL).Load(r.Context())

		if myDogs == nil {
			myDogs = []dogs.Dog{}
		}
		form := d.Wizard.Defaults(walker.ID, myDogs, draft)
		resp := wizardResponse{
			Walker:    walker,
			Dogs:      myDogs,
			Services:  Services(),
			TimeSlots: TimeSlots(),
			Form:      form,
			CanSubmit: len(myDogs) > 0,
		}
		if !resp.CanSubmit {
			resp.RegisterHref = RegisterDogHref
		}
		if tier, err := LookupService(form.ServiceType); err == nil {
			resp.PriceLabel = tier.PriceLabel()
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

type submitFailure struct {
	Error string `json:"error"`
	Code  string `json:"code"`
	Form  Form   `json:"form"`
}

func submitHandler(d HandlerDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t := i18n.From(r.Context())
		token := middleware.Token(r)
		if token == "" {
			writeError(w, http.StatusUnauthorized, t("booking.errors.unauthorized"))
			return
		}

		form, err := decodeForm(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		form.WalkerID = chi.URLParam(r, "walkerID")

		walker, err := d.Walkers.Get(r.Context(), form.WalkerID)
		if err != nil {
			writeWalkerError(w, t, err)
			return
		}
		myDogs, err := d.Dogs.ListMine(r.Context(), token)
		if err != nil {
			writeDogsError(w, t, err)
			return
		}

		redirect, err := d.Wizard.Submit(r.Context(), token, walker, form, myDogs, d.Origin)
		if err != nil {
			code := errorKey(err)
			status := http.StatusBadGateway
			switch {
			case IsValidation(err):
				status = http.StatusUnprocessableEntity
			case errors.Is(err, ErrUnauthorized):
				status = http.StatusUnauthorized
			}
			writeJSON(w, status, submitFailure{Error: t(code), Code: code, Form: form})
			return
		}

		_ = NewDraftStore(middleware.State(r, d.State), d.DraftTTL).Clear(r.Context())

		// Salida dura a la pasarela: no hay continuación local.
		w.Header().Set("Location", redirect.URL)
		writeJSON(w, http.StatusSeeOther, redirect)
	}
}

type bookingItem struct {
	Booking
	BadgeText  string `json:"badge_text"`
	BadgeColor string `json:"badge_color"`
}

type myBookingsResponse struct {
	Bookings []bookingItem `json:"bookings"`
	Dogs     []dogs.Dog    `json:"dogs"`
	Sizes    []dogs.Size   `json:"sizes"`
}

func myBookingsHandler(d HandlerDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := middleware.Token(r)
		if token == "" {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		t := i18n.From(r.Context())

		list, err := d.Bookings.ListMine(r.Context(), token)
		if err != nil {
			if errors.Is(err, ErrUnauthorized) {
				writeError(w, http.StatusUnauthorized, t("errors.unauthorized"))
				return
			}
			writeError(w, http.StatusBadGateway, t("errors.generic"))
			return
		}
		myDogs, err := d.Dogs.ListMine(r.Context(), token)
		if err != nil {
			writeDogsError(w, t, err)
			return
		}
		if myDogs == nil {
			myDogs = []dogs.Dog{}
		}

		items := make([]bookingItem, 0, len(list))
		for _, b := range list {
			text, color := b.Status.Badge()
			items = append(items, bookingItem{Booking: b, BadgeText: text, BadgeColor: color})
		}
		writeJSON(w, http.StatusOK, myBookingsResponse{Bookings: items, Dogs: myDogs, Sizes: dogs.Sizes()})
	}
}

type cancelResponse struct {
	Cancellation
	Toast string `json:"toast"`
}

func cancelHandler(d HandlerDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t := i18n.From(r.Context())
		res, err := d.Bookings.Cancel(r.Context(), middleware.Token(r), chi.URLParam(r, "bookingID"))
		switch {
		case errors.Is(err, ErrUnauthorized):
			writeError(w, http.StatusUnauthorized, t("errors.unauthorized"))
			return
		case errors.Is(err, ErrNotFound):
			writeError(w, http.StatusNotFound, t("errors.notFound"))
			return
		case err != nil:
			writeError(w, http.StatusBadGateway, t("errors.generic"))
			return
		}
		writeJSON(w, http.StatusOK, cancelResponse{Cancellation: res, Toast: t("bookings.cancelled")})
	}
}

// errorKey traduce errores del wizard a claves del catálogo.
func errorKey(err error) string {
	switch {
	case errors.Is(err, ErrNoDogs):
		return "booking.errors.noDogs"
	case errors.Is(err, ErrDogRequired):
		return "booking.errors.dogRequired"
	case errors.Is(err, ErrDateRequired), errors.Is(err, ErrInvalidDate):
		return "booking.errors.dateRequired"
	case errors.Is(err, ErrPastDate):
		return "booking.errors.pastDate"
	case errors.Is(err, ErrInvalidTime), errors.Is(err, ErrUnknownService):
		return "booking.errors.invalidTime"
	case errors.Is(err, ErrUnauthorized):
		return "booking.errors.unauthorized"
	case errors.Is(err, ErrCreateBooking):
		return "booking.errors.create"
	case errors.Is(err, ErrCheckout):
		return "booking.errors.checkout"
	default:
		return "errors.generic"
	}
}

func decodeForm(r *http.Request) (Form, error) {
	var f Form
	if isJSON(r) {
		if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
			return Form{}, errors.New("invalid json")
		}
		return f, nil
	}
	if err := r.ParseForm(); err != nil {
		return Form{}, errors.New("invalid form")
	}
	return Form{
		DogID:       r.PostForm.Get("dog_id"),
		ServiceType: ServiceType(r.PostForm.Get("service_type")),
		Date:        r.PostForm.Get("date"),
		Time:        r.PostForm.Get("time"),
		Location:    r.PostForm.Get("location"),
		Notes:       r.PostForm.Get("notes"),
	}, nil
}

func isJSON(r *http.Request) bool {
	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return strings.EqualFold(mt, "application/json")
}

func writeWalkerError(w http.ResponseWriter, t i18n.Translator, err error) {
	if errors.Is(err, walkers.ErrNotFound) {
		writeError(w, http.StatusNotFound, t("errors.notFound"))
		return
	}
	writeError(w, http.StatusBadGateway, t("errors.generic"))
}

func writeDogsError(w http.ResponseWriter, t i18n.Translator, err error) {
	if errors.Is(err, dogs.ErrUnauthorized) {
		writeError(w, http.StatusUnauthorized, t("errors.unauthorized"))
		return
	}
	writeError(w, http.StatusBadGateway, t("errors.generic"))
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
