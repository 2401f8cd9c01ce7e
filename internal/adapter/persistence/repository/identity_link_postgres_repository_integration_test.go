//go:build integration

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"mangopay_billable/internal/domain/entities"
	"mangopay_billable/internal/usecase/interfaces"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

func newPostgresRepository(t *testing.T) *IdentityLinkPostgresRepository {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("billable"),
		tcpostgres.WithUsername("billable"),
		tcpostgres.WithPassword("billable"),
		tcpostgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, container)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get postgres connection string: %v", err)
	}

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.PingContext(ctx))

	repo := NewIdentityLinkPostgresRepository(db)
	require.NoError(t, repo.EnsureSchema(ctx))
	return repo
}

func TestIdentityLinkPostgresRepository(t *testing.T) {
	repo := newPostgresRepository(t)
	ctx := context.Background()

	link := sampleLink("42", "user_1")
	created, err := repo.Create(ctx, link)
	require.NoError(t, err)
	assert.Equal(t, "user_1", created.RemoteUserID)
	assert.True(t, created.CreatedAt.Equal(link.CreatedAt))

	_, err = repo.Create(ctx, sampleLink("42", "user_2"))
	require.ErrorIs(t, err, interfaces.ErrDuplicateLink)

	got, err := repo.FindByBillable(ctx, link.Ref())
	require.NoError(t, err)
	assert.Equal(t, "user_1", got.RemoteUserID)
	assert.Equal(t, entities.PersonTypeLegal, got.PersonType)

	byRemote, err := repo.FindByRemoteID(ctx, "user_1")
	require.NoError(t, err)
	assert.Equal(t, "42", byRemote.BillableID)

	missing, err := repo.FindByBillable(ctx, entities.BillableRef{Type: "Organization", ID: "7"})
	require.NoError(t, err)
	assert.False(t, missing.Exists())

	touched := link.UpdatedAt.Add(time.Second)
	updated, err := repo.UpdateStatus(ctx, link, entities.RemoteStatus{KYCLevel: "REGULAR", TermsAccepted: true}, touched)
	require.NoError(t, err)
	assert.Equal(t, "REGULAR", updated.Status.KYCLevel)
	assert.True(t, updated.UpdatedAt.Equal(touched))

	stale := link
	stale.RemoteUserID = "user_9"
	none, err := repo.UpdateStatus(ctx, stale, entities.RemoteStatus{KYCLevel: "LIGHT"}, touched.Add(time.Second))
	require.NoError(t, err)
	assert.False(t, none.Exists())
}

func TestIdentityLinkPostgresRepository_ConcurrentCreate(t *testing.T) {
	repo := newPostgresRepository(t)
	ctx := context.Background()

	const attempts = 8
	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		success    int
		duplicates int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			l := sampleLink("42", fmt.Sprintf("user_%d", i))
			l.ID = fmt.Sprintf("link-%d", i)
			_, err := repo.Create(ctx, l)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				success++
			case err == interfaces.ErrDuplicateLink:
				duplicates++
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 1, success)
	assert.Equal(t, attempts-1, duplicates)
}
