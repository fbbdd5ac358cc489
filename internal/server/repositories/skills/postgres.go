package skills

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

const selectColumns = `id, name, level, category, icon_url, sort_order, is_public, created_at, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSkill(s scanner) (*models.Skill, error) {
	sk := &models.Skill{}
	err := s.Scan(&sk.ID, &sk.Name, &sk.Level, &sk.Category, &sk.IconURL, &sk.Order, &sk.IsPublic, &sk.CreatedAt, &sk.UpdatedAt)
	return sk, err
}

func (r *PostgresRepository) List(ctx context.Context, publicOnly bool) ([]models.Skill, error) {
	query := `SELECT ` + selectColumns + ` FROM skills`
	if publicOnly {
		query += ` WHERE is_public`
	}
	query += ` ORDER BY sort_order ASC, name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []models.Skill{}
	for rows.Next() {
		sk, err := scanSkill(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, *sk)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Skill, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, common.ErrNotFound
	}

	sk, err := scanSkill(r.db.QueryRowContext(ctx, `SELECT `+selectColumns+` FROM skills WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return sk, nil
}

func (r *PostgresRepository) Create(ctx context.Context, s *models.Skill) (*models.Skill, error) {

	query :=
		`INSERT INTO skills (name, level, category, icon_url, sort_order, is_public)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		s.Name, s.Level, s.Category, s.IconURL, s.Order, s.IsPublic,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrConflict
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return s, nil
}

func (r *PostgresRepository) Update(ctx context.Context, s *models.Skill) (*models.Skill, error) {
	if _, err := uuid.Parse(s.ID); err != nil {
		return nil, common.ErrNotFound
	}

	query :=
		`UPDATE skills
		 SET name = $2, level = $3, category = $4, icon_url = $5, sort_order = $6, is_public = $7,
		     updated_at = now()
		 WHERE id = $1
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		s.ID, s.Name, s.Level, s.Category, s.IconURL, s.Order, s.IsPublic,
	).Scan(&s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.ErrNotFound
		case dbx.IsUniqueViolation(err):
			return nil, common.ErrConflict
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return s, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return common.ErrNotFound
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM skills WHERE id = $1`, id)
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
