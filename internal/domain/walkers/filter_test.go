package walkers

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var sample = []Walker{
	{ID: "1", UserName: "Lucía Pérez", Location: "Lugo Centro", Specialties: []string{"Cachorros"}},
	{ID: "2", UserName: "Marcos", Location: "A Milagrosa", Specialties: []string{"Perros grandes"}},
	{ID: "3", UserName: "Sara", Location: "Lugo Centro", Specialties: []string{"Perros mayores"}},
	{ID: "4", UserName: "Xoán", Location: ""},
}

func ids(ws []Walker) []string {
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	cases := []struct {
		name string
		c    Criteria
		want []string
	}{
		{"sin criterios", Criteria{}, []string{"1", "2", "3", "4"}},
		{"todas las zonas", Criteria{Location: AllLocations}, []string{"1", "2", "3", "4"}},
		{"nombre sin mayúsculas", Criteria{Search: "lucía"}, []string{"1"}},
		{"especialidad", Criteria{Search: "PERROS"}, []string{"2", "3"}},
		{"zona exacta", Criteria{Location: "Lugo Centro"}, []string{"1", "3"}},
		{"búsqueda y zona", Criteria{Search: "perros", Location: "Lugo Centro"}, []string{"3"}},
		{"zona no es substring", Criteria{Location: "Lugo"}, []string{}},
		{"espacios", Criteria{Search: "  sara "}, []string{"3"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(Filter(sample, tc.c))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("filter mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilter_DoesNotAliasInput(t *testing.T) {
	in := append([]Walker(nil), sample...)
	out := Filter(in, Criteria{})
	out[0].UserName = "otro"
	if in[0].UserName != "Lucía Pérez" {
		t.Fatalf("filter must return a new slice")
	}
}

func TestLocations(t *testing.T) {
	got := Locations(sample)
	if diff := cmp.Diff([]string{"A Milagrosa", "Lugo Centro"}, got); diff != "" {
		t.Fatalf("locations mismatch (-want +got):\n%s", diff)
	}
}

type fakeSource struct {
	list []Walker
	err  error
}

func (f fakeSource) ListWalkers(context.Context) ([]Walker, error) { return f.list, f.err }
func (f fakeSource) GetWalker(_ context.Context, id string) (Walker, error) {
	for _, w := range f.list {
		if w.ID == id {
			return w, nil
		}
	}
	return Walker{}, ErrNotFound
}

func TestService_Browse(t *testing.T) {
	svc := NewService(fakeSource{list: sample})

	cat, err := svc.Browse(context.Background(), Criteria{Search: "perros"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cat.Total != 4 || len(cat.Walkers) != 2 {
		t.Fatalf("unexpected catalog: total=%d shown=%d", cat.Total, len(cat.Walkers))
	}
	if cat.Criteria.Location != AllLocations {
		t.Fatalf("empty location defaults to all, got %q", cat.Criteria.Location)
	}

	boom := errors.New("boom")
	if _, err := NewService(fakeSource{err: boom}).Browse(context.Background(), Criteria{}); !errors.Is(err, boom) {
		t.Fatalf("expected backend error, got %v", err)
	}
}

func TestService_Get(t *testing.T) {
	svc := NewService(fakeSource{list: sample})
	if _, err := svc.Get(context.Background(), " "); !errors.Is(err, ErrNotFound) {
		t.Fatalf("blank id must be not found, got %v", err)
	}
	w, err := svc.Get(context.Background(), "2")
	if err != nil || w.UserName != "Marcos" {
		t.Fatalf("unexpected result %+v %v", w, err)
	}
}
