package booking

import (
	"errors"
	"fmt"
)

type ServiceType string

const (
	ServiceBasico   ServiceType = "basico"
	ServiceEstandar ServiceType = "estandar"
	ServicePremium  ServiceType = "premium"
	ServiceEspecial ServiceType = "especial"
)

// DefaultService es la opción marcada al abrir el wizard.
const DefaultService = ServiceEstandar

var ErrUnknownService = errors.New("unknown service type")

// Tier es una fila de la tarifa fija. Precio en euros, duración en minutos.
type Tier struct {
	Type     ServiceType `json:"type"`
	Name     string      `json:"name"`
	Price    float64     `json:"price"`
	Duration int         `json:"duration"`
}

// La tarifa es cerrada: precio y duración solo salen de aquí.
var catalog = []Tier{
	{Type: ServiceBasico, Name: "Paseo Básico", Price: 6.0, Duration: 30},
	{Type: ServiceEstandar, Name: "Paseo Estándar", Price: 8.0, Duration: 45},
	{Type: ServicePremium, Name: "Paseo Premium", Price: 10.0, Duration: 60},
	{Type: ServiceEspecial, Name: "Cuidado Especial", Price: 25.0, Duration: 45},
}

// Services devuelve una copia de la tarifa en orden de presentación.
func Services() []Tier {
	out := make([]Tier, len(catalog))
	copy(out, catalog)
	return out
}

// PriceLabel es el resumen que acompaña al botón de pago: "8.00 € · 45 min".
func (t Tier) PriceLabel() string {
	return fmt.Sprintf("%.2f € · %d min", t.Price, t.Duration)
}

func LookupService(t ServiceType) (Tier, error) {
	for _, s := range catalog {
		if s.Type == t {
			return s, nil
		}
	}
	return Tier{}, ErrUnknownService
}

// TimeSlots son las horas que ofrece el selector.
func TimeSlots() []string {
	return []string{
		"08:00", "09:00", "10:00", "11:00", "12:00", "13:00",
		"14:00", "15:00", "16:00", "17:00", "18:00", "19:00",
	}
}

// DefaultTime es la hora preseleccionada.
const DefaultTime = "10:00"

func validSlot(t string) bool {
	for _, s := range TimeSlots() {
		if s == t {
			return true
		}
	}
	return false
}
