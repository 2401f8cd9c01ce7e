package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"mangopay_billable/internal/domain/entities"
	"mangopay_billable/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLink(billableID, remoteID string) entities.IdentityLink {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return entities.IdentityLink{
		ID:           "link-" + billableID,
		BillableType: "Organization",
		BillableID:   billableID,
		RemoteUserID: remoteID,
		PersonType:   entities.PersonTypeLegal,
		Status:       entities.RemoteStatus{KYCLevel: "LIGHT", UserCategory: "OWNER"},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestIdentityLinkMemoryRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewIdentityLinkMemoryRepository()

	link := sampleLink("42", "user_1")
	created, err := repo.Create(ctx, link)
	require.NoError(t, err)
	assert.Equal(t, link, created)

	got, err := repo.FindByBillable(ctx, entities.BillableRef{Type: "Organization", ID: "42"})
	require.NoError(t, err)
	assert.Equal(t, "user_1", got.RemoteUserID)

	byRemote, err := repo.FindByRemoteID(ctx, "user_1")
	require.NoError(t, err)
	assert.Equal(t, "42", byRemote.BillableID)

	missing, err := repo.FindByBillable(ctx, entities.BillableRef{Type: "Organization", ID: "43"})
	require.NoError(t, err)
	assert.False(t, missing.Exists())

	missing, err = repo.FindByRemoteID(ctx, "user_2")
	require.NoError(t, err)
	assert.False(t, missing.Exists())
}

func TestIdentityLinkMemoryRepository_CreateDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewIdentityLinkMemoryRepository()

	_, err := repo.Create(ctx, sampleLink("42", "user_1"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, sampleLink("42", "user_2"))
	require.ErrorIs(t, err, interfaces.ErrDuplicateLink)

	got, err := repo.FindByBillable(ctx, entities.BillableRef{Type: "Organization", ID: "42"})
	require.NoError(t, err)
	assert.Equal(t, "user_1", got.RemoteUserID, "first link must not be overwritten")

	orphan, err := repo.FindByRemoteID(ctx, "user_2")
	require.NoError(t, err)
	assert.False(t, orphan.Exists())
}

func TestIdentityLinkMemoryRepository_ConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	repo := NewIdentityLinkMemoryRepository()

	const attempts = 16
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := repo.Create(ctx, sampleLink("42", fmt.Sprintf("user_%d", i))); err == nil {
				mu.Lock()
				success++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 1, success)
}

func TestIdentityLinkMemoryRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewIdentityLinkMemoryRepository()
	link := sampleLink("42", "user_1")
	_, err := repo.Create(ctx, link)
	require.NoError(t, err)

	touched := link.UpdatedAt.Add(time.Second)
	updated, err := repo.UpdateStatus(ctx, link, entities.RemoteStatus{KYCLevel: "REGULAR", UserCategory: "OWNER", TermsAccepted: true}, touched)
	require.NoError(t, err)
	assert.Equal(t, "REGULAR", updated.Status.KYCLevel)
	assert.True(t, updated.Status.TermsAccepted)
	assert.Equal(t, "user_1", updated.RemoteUserID)
	assert.True(t, updated.UpdatedAt.Equal(touched))
	assert.True(t, updated.CreatedAt.Equal(link.CreatedAt))

	t.Run("remote id mismatch leaves link untouched", func(t *testing.T) {
		other := link
		other.RemoteUserID = "user_9"
		got, err := repo.UpdateStatus(ctx, other, entities.RemoteStatus{KYCLevel: "LIGHT"}, touched.Add(time.Second))
		require.NoError(t, err)
		assert.False(t, got.Exists())

		stored, err := repo.FindByBillable(ctx, link.Ref())
		require.NoError(t, err)
		assert.Equal(t, "REGULAR", stored.Status.KYCLevel)
		assert.Equal(t, "user_1", stored.RemoteUserID)
	})

	t.Run("missing link", func(t *testing.T) {
		got, err := repo.UpdateStatus(ctx, sampleLink("99", "user_99"), entities.RemoteStatus{}, touched)
		require.NoError(t, err)
		assert.False(t, got.Exists())
	})
}

func TestIdentityLinkMemoryRepository_SeparatorInType(t *testing.T) {
	ctx := context.Background()
	repo := NewIdentityLinkMemoryRepository()

	team := sampleLink("1", "user_1")
	team.BillableType = "Org#Team"
	_, err := repo.Create(ctx, team)
	require.NoError(t, err)

	other, err := repo.FindByBillable(ctx, entities.BillableRef{Type: "Org", ID: "Team#1"})
	require.NoError(t, err)
	assert.False(t, other.Exists())

	second := sampleLink("Team#1", "user_2")
	second.ID = "link-other"
	second.BillableType = "Org"
	_, err = repo.Create(ctx, second)
	require.NoError(t, err)

	got, err := repo.FindByBillable(ctx, entities.BillableRef{Type: "Org#Team", ID: "1"})
	require.NoError(t, err)
	assert.Equal(t, "user_1", got.RemoteUserID)
}
