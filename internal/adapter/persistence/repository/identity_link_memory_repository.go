package repository

import (
	"context"
	"sync"
	"time"

	"mangopay_billable/internal/domain/entities"
	"mangopay_billable/internal/usecase/interfaces"
)

// IdentityLinkMemoryRepository keeps links in process memory. Used for local
// runs (LINK_STORE=memory) and tests; the check and insert happen under one
// lock so Create is insert-if-absent like the durable stores.

type IdentityLinkMemoryRepository struct {
	mu       sync.RWMutex
	links    map[string]entities.IdentityLink
	byRemote map[string]string
}

var _ interfaces.IIdentityLinkRepository = (*IdentityLinkMemoryRepository)(nil)

func NewIdentityLinkMemoryRepository() *IdentityLinkMemoryRepository {
	return &IdentityLinkMemoryRepository{
		links:    make(map[string]entities.IdentityLink),
		byRemote: make(map[string]string),
	}
}

func (r *IdentityLinkMemoryRepository) Create(_ context.Context, link entities.IdentityLink) (entities.IdentityLink, error) {
	key := link.Ref().Key()
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.links[key]; ok {
		return entities.IdentityLink{}, interfaces.ErrDuplicateLink
	}
	r.links[key] = link
	r.byRemote[link.RemoteUserID] = key
	return link, nil
}

func (r *IdentityLinkMemoryRepository) FindByBillable(_ context.Context, ref entities.BillableRef) (entities.IdentityLink, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.links[ref.Key()], nil
}

func (r *IdentityLinkMemoryRepository) FindByRemoteID(_ context.Context, remoteUserID string) (entities.IdentityLink, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	key, ok := r.byRemote[remoteUserID]
	if !ok {
		return entities.IdentityLink{}, nil
	}
	return r.links[key], nil
}

func (r *IdentityLinkMemoryRepository) UpdateStatus(_ context.Context, link entities.IdentityLink, status entities.RemoteStatus, touchedAt time.Time) (entities.IdentityLink, error) {
	key := link.Ref().Key()
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.links[key]
	if !ok || stored.RemoteUserID != link.RemoteUserID {
		return entities.IdentityLink{}, nil
	}
	stored.Status = status
	stored.UpdatedAt = touchedAt.UTC()
	r.links[key] = stored
	return stored, nil
}
