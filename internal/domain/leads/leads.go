// Package leads cubre la reserva rápida de la portada: una solicitud sin
// cuenta que el equipo confirma por teléfono.
package leads

import (
	"context"
	"errors"
	"strings"
)

const (
	DefaultServiceType = "Paseo de perro"
	StatusPending      = "pending"
)

var (
	ErrMissingSchedule = errors.New("date and time required")
	ErrMissingContact  = errors.New("name, phone and email required")
)

type Contact struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type Request struct {
	ServiceType string  `json:"service_type"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Contact     Contact `json:"contact"`
	PetDetails  string  `json:"pet_details"`
	Status      string  `json:"status"`
}

// Normalize aplica los mismos dos pasos del formulario: primero fecha y hora,
// después los datos de contacto obligatorios.
func (r Request) Normalize() (Request, error) {
	r.ServiceType = strings.TrimSpace(r.ServiceType)
	r.Date = strings.TrimSpace(r.Date)
	r.Time = strings.TrimSpace(r.Time)
	r.Contact.Name = strings.TrimSpace(r.Contact.Name)
	r.Contact.Phone = strings.TrimSpace(r.Contact.Phone)
	r.Contact.Email = strings.TrimSpace(r.Contact.Email)
	r.Contact.Address = strings.TrimSpace(r.Contact.Address)
	r.PetDetails = strings.TrimSpace(r.PetDetails)

	if r.Date == "" || r.Time == "" {
		return Request{}, ErrMissingSchedule
	}
	if r.Contact.Name == "" || r.Contact.Phone == "" || r.Contact.Email == "" {
		return Request{}, ErrMissingContact
	}
	if r.ServiceType == "" {
		r.ServiceType = DefaultServiceType
	}
	r.Status = StatusPending
	return r, nil
}

// Sink es POST /api/simple-bookings.
type Sink interface {
	CreateLead(ctx context.Context, r Request) error
}

type Service struct {
	sink Sink
}

func NewService(sink Sink) *Service {
	return &Service{sink: sink}
}

func (s *Service) Submit(ctx context.Context, r Request) error {
	r, err := r.Normalize()
	if err != nil {
		return err
	}
	return s.sink.CreateLead(ctx, r)
}
