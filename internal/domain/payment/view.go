package payment

// Action es un botón de la página de confirmación.
type Action struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

type View struct {
	Snapshot
	TitleKey     string   `json:"title_key"`
	MessageKey   string   `json:"message_key"`
	SessionShort string   `json:"session_short,omitempty"`
	Actions      []Action `json:"actions"`
}

const supportHref = "/contacto"

// BuildView arma la vista de /pago-exitoso para un snapshot.
func BuildView(s Snapshot) View {
	v := View{Snapshot: s, SessionShort: shorten(s.SessionID)}
	switch s.State {
	case StateSuccess:
		v.TitleKey = "payment.success.title"
		v.MessageKey = "payment.success.message"
		v.Actions = []Action{
			{Label: "payment.actions.myBookings", Href: "/mis-reservas"},
			{Label: "payment.actions.newBooking", Href: "/paseadores"},
		}
	case StateTimeout:
		// Aviso, no error: la confirmación puede llegar por email.
		v.TitleKey = "payment.timeout.title"
		v.MessageKey = "payment.timeout.message"
		v.Actions = []Action{
			{Label: "payment.actions.myBookings", Href: "/mis-reservas"},
			{Label: "payment.actions.contact", Href: supportHref},
		}
	case StateFailed:
		v.TitleKey = "payment.failed.title"
		v.MessageKey = "payment.failed.message"
		v.Actions = []Action{
			{Label: "payment.actions.retry", Href: "/paseadores"},
			{Label: "payment.actions.contact", Href: supportHref},
		}
	default:
		v.TitleKey = "payment.checking.title"
		v.MessageKey = "payment.checking.message"
		v.Actions = []Action{}
	}
	return v
}

func shorten(id string) string {
	const max = 20
	if id == "" {
		return ""
	}
	r := []rune(id)
	if len(r) <= max {
		return id
	}
	return string(r[:max]) + "..."
}
