package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"mangopay_billable/internal/domain/entities"
	"mangopay_billable/internal/usecase/interfaces"

	"github.com/lib/pq"
)

// pqUniqueViolation is the SQLSTATE for unique_violation.
const pqUniqueViolation = "23505"

// IdentityLinksSchema creates the link table. The unique key is what makes
// concurrent creates for one billable safe.
const IdentityLinksSchema = `
CREATE TABLE IF NOT EXISTS identity_links (
	id             TEXT PRIMARY KEY,
	billable_type  TEXT NOT NULL,
	billable_id    TEXT NOT NULL,
	remote_user_id TEXT NOT NULL,
	person_type    TEXT NOT NULL,
	kyc_level      TEXT NOT NULL DEFAULT '',
	user_category  TEXT NOT NULL DEFAULT '',
	terms_accepted BOOLEAN NOT NULL DEFAULT FALSE,
	created_at     TIMESTAMPTZ NOT NULL,
	updated_at     TIMESTAMPTZ NOT NULL,
	CONSTRAINT identity_links_billable_key UNIQUE (billable_type, billable_id)
);
CREATE INDEX IF NOT EXISTS identity_links_remote_user_id_idx ON identity_links (remote_user_id);
`

const identityLinkColumns = `id, billable_type, billable_id, remote_user_id, person_type,
	kyc_level, user_category, terms_accepted, created_at, updated_at`

// IdentityLinkPostgresRepository persists IdentityLink rows in PostgreSQL.

type IdentityLinkPostgresRepository struct {
	db *sql.DB
}

var _ interfaces.IIdentityLinkRepository = (*IdentityLinkPostgresRepository)(nil)

func NewIdentityLinkPostgresRepository(db *sql.DB) *IdentityLinkPostgresRepository {
	return &IdentityLinkPostgresRepository{db: db}
}

// EnsureSchema applies IdentityLinksSchema.
func (r *IdentityLinkPostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, IdentityLinksSchema); err != nil {
		return fmt.Errorf("ensure identity_links schema: %w", err)
	}
	return nil
}

func (r *IdentityLinkPostgresRepository) Create(ctx context.Context, link entities.IdentityLink) (entities.IdentityLink, error) {
	query := `
		INSERT INTO identity_links (` + identityLinkColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (billable_type, billable_id) DO NOTHING
		RETURNING ` + identityLinkColumns
	row := r.db.QueryRowContext(ctx, query,
		link.ID, link.BillableType, link.BillableID, link.RemoteUserID, string(link.PersonType),
		link.Status.KYCLevel, link.Status.UserCategory, link.Status.TermsAccepted,
		link.CreatedAt.UTC(), link.UpdatedAt.UTC(),
	)
	created, err := scanIdentityLink(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.IdentityLink{}, interfaces.ErrDuplicateLink
		}
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return entities.IdentityLink{}, interfaces.ErrDuplicateLink
		}
		return entities.IdentityLink{}, fmt.Errorf("insert identity link: %w", err)
	}
	return created, nil
}

func (r *IdentityLinkPostgresRepository) FindByBillable(ctx context.Context, ref entities.BillableRef) (entities.IdentityLink, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+identityLinkColumns+` FROM identity_links WHERE billable_type = $1 AND billable_id = $2`,
		ref.Type, ref.ID,
	)
	return r.scanOptional(row, "find identity link by billable")
}

func (r *IdentityLinkPostgresRepository) FindByRemoteID(ctx context.Context, remoteUserID string) (entities.IdentityLink, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+identityLinkColumns+` FROM identity_links WHERE remote_user_id = $1 ORDER BY created_at LIMIT 1`,
		remoteUserID,
	)
	return r.scanOptional(row, "find identity link by remote id")
}

func (r *IdentityLinkPostgresRepository) UpdateStatus(ctx context.Context, link entities.IdentityLink, status entities.RemoteStatus, touchedAt time.Time) (entities.IdentityLink, error) {
	query := `
		UPDATE identity_links
		SET kyc_level = $1, user_category = $2, terms_accepted = $3, updated_at = $4
		WHERE billable_type = $5 AND billable_id = $6 AND remote_user_id = $7
		RETURNING ` + identityLinkColumns
	row := r.db.QueryRowContext(ctx, query,
		status.KYCLevel, status.UserCategory, status.TermsAccepted, touchedAt.UTC(),
		link.BillableType, link.BillableID, link.RemoteUserID,
	)
	return r.scanOptional(row, "update identity link status")
}

func (r *IdentityLinkPostgresRepository) scanOptional(row *sql.Row, op string) (entities.IdentityLink, error) {
	link, err := scanIdentityLink(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.IdentityLink{}, nil
		}
		return entities.IdentityLink{}, fmt.Errorf("%s: %w", op, err)
	}
	return link, nil
}

func scanIdentityLink(row *sql.Row) (entities.IdentityLink, error) {
	var (
		l          entities.IdentityLink
		personType string
	)
	err := row.Scan(
		&l.ID, &l.BillableType, &l.BillableID, &l.RemoteUserID, &personType,
		&l.Status.KYCLevel, &l.Status.UserCategory, &l.Status.TermsAccepted,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return entities.IdentityLink{}, err
	}
	l.PersonType = entities.PersonType(personType)
	l.CreatedAt = l.CreatedAt.UTC()
	l.UpdatedAt = l.UpdatedAt.UTC()
	return l, nil
}
