package about

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/folio/internal/dbx"
	"github.com/dmitrijs2005/folio/internal/server/models"
)

// singletonID is the fixed primary key of the only about_info row.
const singletonID = 1

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context) (*models.AboutInfo, error) {

	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO about_info (id) VALUES ($1) ON CONFLICT (id) DO NOTHING`, singletonID); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	query :=
		`SELECT id, greeting, name, tagline_strings, profile_image_url, profile_image_public_id,
		        resume_url, resume_public_id, bio, created_at, updated_at
		 FROM about_info
		 WHERE id = $1
		 `

	info := &models.AboutInfo{}
	var taglines dbx.TextArray
	err := r.db.QueryRowContext(ctx, query, singletonID).Scan(
		&info.ID, &info.Greeting, &info.Name, &taglines, &info.ProfileImageURL, &info.ProfileImagePublicID,
		&info.ResumeURL, &info.ResumePublicID, &info.Bio, &info.CreatedAt, &info.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	info.TaglineStrings = taglines
	return info, nil
}

func (r *PostgresRepository) Save(ctx context.Context, info *models.AboutInfo) (*models.AboutInfo, error) {

	query :=
		`UPDATE about_info
		 SET greeting = $2, name = $3, tagline_strings = $4, profile_image_url = $5,
		     profile_image_public_id = $6, resume_url = $7, resume_public_id = $8, bio = $9,
		     updated_at = now()
		 WHERE id = $1
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query, singletonID,
		info.Greeting, info.Name, dbx.TextArray(info.TaglineStrings), info.ProfileImageURL,
		info.ProfileImagePublicID, info.ResumeURL, info.ResumePublicID, info.Bio,
	).Scan(&info.CreatedAt, &info.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	info.ID = singletonID
	return info, nil
}
