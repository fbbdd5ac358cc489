package experiences

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

const selectColumns = `id, role, company, dates, description, sort_order, created_at, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanExperience(s scanner) (*models.Experience, error) {
	e := &models.Experience{}
	var description dbx.TextArray
	if err := s.Scan(&e.ID, &e.Role, &e.Company, &e.Dates, &description, &e.Order, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	e.Description = description
	return e, nil
}

// List returns experiences by order ascending, newest first within an order.
func (r *PostgresRepository) List(ctx context.Context) ([]models.Experience, error) {
	query := `SELECT ` + selectColumns + ` FROM experiences ORDER BY sort_order ASC, created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []models.Experience{}
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, *e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Experience, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, common.ErrNotFound
	}

	query := `SELECT ` + selectColumns + ` FROM experiences WHERE id = $1`

	e, err := scanExperience(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return e, nil
}

func (r *PostgresRepository) Create(ctx context.Context, e *models.Experience) (*models.Experience, error) {

	query :=
		`INSERT INTO experiences (role, company, dates, description, sort_order)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		e.Role, e.Company, e.Dates, dbx.TextArray(e.Description), e.Order,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return e, nil
}

func (r *PostgresRepository) Update(ctx context.Context, e *models.Experience) (*models.Experience, error) {
	if _, err := uuid.Parse(e.ID); err != nil {
		return nil, common.ErrNotFound
	}

	query :=
		`UPDATE experiences
		 SET role = $2, company = $3, dates = $4, description = $5, sort_order = $6, updated_at = now()
		 WHERE id = $1
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		e.ID, e.Role, e.Company, e.Dates, dbx.TextArray(e.Description), e.Order,
	).Scan(&e.CreatedAt, &e.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return e, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return common.ErrNotFound
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM experiences WHERE id = $1`, id)
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
