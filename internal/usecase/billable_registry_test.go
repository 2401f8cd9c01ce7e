package usecase

import (
	"context"
	"errors"
	"testing"

	"mangopay_billable/internal/domain/entities"
)

func TestPersonTypes_For(t *testing.T) {
	p := PersonTypes{ByType: map[string]entities.PersonType{"User": entities.PersonTypeNatural}}
	if got := p.For("User"); got != entities.PersonTypeNatural {
		t.Fatalf("expected NATURAL, got %s", got)
	}
	if got := p.For("Organization"); got != entities.PersonTypeLegal {
		t.Fatalf("expected LEGAL fallback, got %s", got)
	}
	p.Default = entities.PersonTypeNatural
	if got := p.For("Organization"); got != entities.PersonTypeNatural {
		t.Fatalf("expected configured default, got %s", got)
	}
}

func TestParsePersonTypes(t *testing.T) {
	got, err := ParsePersonTypes(" Organization=legal , User=NATURAL,")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["Organization"] != entities.PersonTypeLegal || got["User"] != entities.PersonTypeNatural {
		t.Fatalf("unexpected mapping %v", got)
	}

	for _, bad := range []string{"Organization", "=LEGAL", "User=ROBOT"} {
		if _, err := ParsePersonTypes(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestBillableRegistry(t *testing.T) {
	r := NewBillableRegistry()
	r.Register("Organization", func(_ context.Context, id string) (entities.Billable, error) {
		if id == "missing" {
			return nil, errors.New("no such organization")
		}
		return organization(id), nil
	})

	b, err := r.Resolve(context.Background(), entities.BillableRef{Type: "Organization", ID: "42"})
	if err != nil || b.BillableRef().ID != "42" {
		t.Fatalf("unexpected result %v %v", b, err)
	}
	if _, err := r.Resolve(context.Background(), entities.BillableRef{Type: "Organization", ID: "missing"}); err == nil {
		t.Fatalf("expected resolver error")
	}
	if _, err := r.Resolve(context.Background(), entities.BillableRef{Type: "Team", ID: "1"}); !errors.Is(err, ErrUnknownBillableType) {
		t.Fatalf("expected ErrUnknownBillableType, got %v", err)
	}

	var nilRegistry *BillableRegistry
	if _, err := nilRegistry.Resolve(context.Background(), entities.BillableRef{Type: "Organization", ID: "42"}); !errors.Is(err, ErrUnknownBillableType) {
		t.Fatalf("expected ErrUnknownBillableType from nil registry, got %v", err)
	}
}
