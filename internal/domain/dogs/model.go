package dogs

// Size define los tamaños que acepta el backend.
// @Enum Pequeño, Mediano, Grande
type Size string

const (
	SizeSmall  Size = "Pequeño"
	SizeMedium Size = "Mediano"
	SizeLarge  Size = "Grande"
)

func (s Size) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	default:
		return false
	}
}

// Sizes en el orden del selector.
func Sizes() []Size {
	return []Size{SizeSmall, SizeMedium, SizeLarge}
}

// Dog es un perro registrado por su dueño. La web no expone edición ni borrado.
type Dog struct {
	ID           string   `json:"id"`
	OwnerID      string   `json:"owner_id,omitempty"`
	Name         string   `json:"name"`
	Breed        string   `json:"breed,omitempty"`
	Size         Size     `json:"size"`
	Age          *int     `json:"age,omitempty"`
	SpecialNeeds []string `json:"special_needs"`
	PhotoURL     string   `json:"photo_url,omitempty"`
}

// Label es lo que muestra el selector del wizard: "Rex - Labrador" o "Rex - Mediano".
func (d Dog) Label() string {
	if d.Breed != "" {
		return d.Name + " - " + d.Breed
	}
	return d.Name + " - " + string(d.Size)
}
