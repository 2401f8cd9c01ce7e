package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"mangopay_billable/internal/domain/entities"
)

// PersonTypes selects the remote user shape per billable type. Types not
// listed use Default; LEGAL when Default is empty.

type PersonTypes struct {
	Default entities.PersonType
	ByType  map[string]entities.PersonType
}

func (p PersonTypes) For(billableType string) entities.PersonType {
	if pt, ok := p.ByType[billableType]; ok {
		return pt
	}
	if p.Default != "" {
		return p.Default
	}
	return entities.PersonTypeLegal
}

// ParsePersonTypes reads "Organization=LEGAL,User=NATURAL".
func ParsePersonTypes(raw string) (map[string]entities.PersonType, error) {
	out := map[string]entities.PersonType{}
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, value, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("invalid person type mapping %q", pair)
		}
		pt, ok := entities.ParsePersonType(value)
		if !ok {
			return nil, fmt.Errorf("invalid person type %q for %s", value, name)
		}
		out[strings.TrimSpace(name)] = pt
	}
	return out, nil
}

// BillableResolver loads the concrete entity behind a billable id.
type BillableResolver func(ctx context.Context, id string) (entities.Billable, error)

// BillableRegistry maps billable types to their resolvers, so a link can be
// followed back to its owner without reflection. It is set up by programs that
// embed the use case next to their own entities.

type BillableRegistry struct {
	mu        sync.RWMutex
	resolvers map[string]BillableResolver
}

func NewBillableRegistry() *BillableRegistry {
	return &BillableRegistry{resolvers: make(map[string]BillableResolver)}
}

func (r *BillableRegistry) Register(billableType string, resolver BillableResolver) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resolvers[billableType] = resolver
}

func (r *BillableRegistry) Resolve(ctx context.Context, ref entities.BillableRef) (entities.Billable, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBillableType, ref.Type)
	}
	r.mu.RLock()
	resolver, ok := r.resolvers[ref.Type]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBillableType, ref.Type)
	}
	return resolver(ctx, ref.ID)
}
