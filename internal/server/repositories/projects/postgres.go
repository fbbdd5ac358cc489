package projects

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/folio/internal/common"
	"github.com/dmitrijs2005/folio/internal/dbx"
	"github.com/dmitrijs2005/folio/internal/server/models"
	"github.com/google/uuid"
)

const selectColumns = `id, title, description, technologies, screenshots, live_link, github_link, display_order, created_at, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProject(s scanner) (*models.Project, error) {
	p := &models.Project{}
	var technologies, screenshots dbx.TextArray
	err := s.Scan(&p.ID, &p.Title, &p.Description, &technologies, &screenshots,
		&p.LiveLink, &p.GithubLink, &p.DisplayOrder, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.Technologies = technologies
	p.Screenshots = screenshots
	return p, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Project, error) {
	query := `SELECT ` + selectColumns + ` FROM projects ORDER BY display_order ASC, created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []models.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, common.ErrNotFound
	}

	p, err := scanProject(r.db.QueryRowContext(ctx, `SELECT `+selectColumns+` FROM projects WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return p, nil
}

func (r *PostgresRepository) Create(ctx context.Context, p *models.Project) (*models.Project, error) {

	query :=
		`INSERT INTO projects (title, description, technologies, screenshots, live_link, github_link, display_order)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		p.Title, p.Description, dbx.TextArray(p.Technologies), dbx.TextArray(p.Screenshots),
		p.LiveLink, p.GithubLink, p.DisplayOrder,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return p, nil
}

func (r *PostgresRepository) Update(ctx context.Context, p *models.Project) (*models.Project, error) {
	if _, err := uuid.Parse(p.ID); err != nil {
		return nil, common.ErrNotFound
	}

	query :=
		`UPDATE projects
		 SET title = $2, description = $3, technologies = $4, screenshots = $5, live_link = $6,
		     github_link = $7, display_order = $8, updated_at = now()
		 WHERE id = $1
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		p.ID, p.Title, p.Description, dbx.TextArray(p.Technologies), dbx.TextArray(p.Screenshots),
		p.LiveLink, p.GithubLink, p.DisplayOrder,
	).Scan(&p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return p, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return common.ErrNotFound
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}

	return nil
}
