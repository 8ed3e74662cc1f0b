package walkers

import (
	"sort"
	"strings"
)

// AllLocations es el valor del selector que desactiva el filtro por zona.
const AllLocations = "all"

type Criteria struct {
	Search   string `json:"search"`
	Location string `json:"location"`
}

// Filter aplica búsqueda por nombre/especialidad (case-insensitive, substring)
// y zona exacta. Devuelve un slice nuevo; el orden de entrada se conserva.
func Filter(in []Walker, c Criteria) []Walker {
	term := strings.ToLower(strings.TrimSpace(c.Search))
	loc := strings.TrimSpace(c.Location)
	if loc == AllLocations {
		loc = ""
	}

	out := make([]Walker, 0, len(in))
	for _, w := range in {
		if term != "" && !matchesTerm(w, term) {
			continue
		}
		if loc != "" && w.Location != loc {
			continue
		}
		out = append(out, w)
	}
	return out
}

func matchesTerm(w Walker, term string) bool {
	if strings.Contains(strings.ToLower(w.UserName), term) {
		return true
	}
	for _, s := range w.Specialties {
		if strings.Contains(strings.ToLower(s), term) {
			return true
		}
	}
	return false
}

// Locations devuelve las zonas distintas, ordenadas, para el selector.
func Locations(in []Walker) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0)
	for _, w := range in {
		l := strings.TrimSpace(w.Location)
		if l == "" {
			continue
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}
