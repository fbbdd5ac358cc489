package contact

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/folio/internal/dbx"
	"github.com/dmitrijs2005/folio/internal/server/models"
)

const singletonID = 1

// socialLinks maps []models.SocialLink onto the social_links JSONB column.
type socialLinks []models.SocialLink

func (l socialLinks) Value() (driver.Value, error) {
	if l == nil {
		l = socialLinks{}
	}
	b, err := json.Marshal([]models.SocialLink(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *socialLinks) Scan(src any) error {
	var b []byte
	switch v := src.(type) {
	case nil:
		*l = socialLinks{}
		return nil
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("scan social links: unsupported type %T", src)
	}
	var links []models.SocialLink
	if err := json.Unmarshal(b, &links); err != nil {
		return fmt.Errorf("scan social links: %w", err)
	}
	if links == nil {
		links = []models.SocialLink{}
	}
	*l = links
	return nil
}

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context) (*models.ContactInfo, error) {

	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO contact_info (id) VALUES ($1) ON CONFLICT (id) DO NOTHING`, singletonID); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	query :=
		`SELECT id, intro_text, email, social_links, created_at, updated_at
		 FROM contact_info
		 WHERE id = $1
		 `

	info := &models.ContactInfo{}
	var links socialLinks
	err := r.db.QueryRowContext(ctx, query, singletonID).Scan(
		&info.ID, &info.IntroText, &info.Email, &links, &info.CreatedAt, &info.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	info.SocialLinks = links
	return info, nil
}

func (r *PostgresRepository) Save(ctx context.Context, info *models.ContactInfo) (*models.ContactInfo, error) {

	query :=
		`UPDATE contact_info
		 SET intro_text = $2, email = $3, social_links = $4, updated_at = now()
		 WHERE id = $1
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query, singletonID,
		info.IntroText, info.Email, socialLinks(info.SocialLinks),
	).Scan(&info.CreatedAt, &info.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	info.ID = singletonID
	return info, nil
}
