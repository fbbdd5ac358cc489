package projects

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/folio/internal/common"
	"github.com/dmitrijs2005/folio/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const projectID = "9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d"

var columns = []string{"id", "title", "description", "technologies", "screenshots", "live_link", "github_link",
	"display_order", "created_at", "updated_at"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewPostgresRepository(db), mock, db
}

func TestList(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`(?s)FROM\s+projects\s+ORDER\s+BY\s+display_order\s+ASC,\s*created_at\s+DESC$`).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(projectID, "Folio", "API", "{Go,Postgres}", "{https://cdn/a.png}", "", "", 0, now, now))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"Go", "Postgres"}, got[0].Technologies)
	assert.Equal(t, []string{"https://cdn/a.png"}, got[0].Screenshots)
}

func TestList_ScanError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`FROM\s+projects`).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(projectID, "Folio", "API", "not an array", "{}", "", "", 0, now, now))

	_, err := repo.List(context.Background())
	assert.ErrorContains(t, err, "db error")
}

func TestCreateThenGet(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+projects\s*\(title,\s*description,\s*technologies,\s*screenshots,\s*live_link,\s*github_link,\s*display_order\)`).
		WithArgs("Folio", "API", "{Go}", "{}", "https://folio.dev", "", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(projectID, now, now))
	mock.ExpectQuery(`FROM\s+projects\s+WHERE\s+id\s*=\s*\$1$`).WithArgs(projectID).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(projectID, "Folio", "API", "{Go}", "{}", "https://folio.dev", "", 1, now, now))

	created, err := repo.Create(context.Background(), &models.Project{
		Title: "Folio", Description: "API", Technologies: []string{"Go"}, LiveLink: "https://folio.dev", DisplayOrder: 1,
	})
	require.NoError(t, err)

	got, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Folio", got.Title)
	assert.Equal(t, []string{}, got.Screenshots)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+projects\s+SET\s+title\s*=\s*\$2,.*WHERE\s+id\s*=\s*\$1\s+RETURNING\s+created_at,\s*updated_at\s*$`
	now := time.Now()
	mock.ExpectQuery(q).
		WithArgs(projectID, "Folio", "API", "{Go}", "{https://cdn/b.png}", "", "", 0).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
	mock.ExpectQuery(q).WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(context.Background(), &models.Project{
		ID: projectID, Title: "Folio", Description: "API", Technologies: []string{"Go"},
		Screenshots: []string{"https://cdn/b.png"},
	})
	require.NoError(t, err)

	_, err = repo.Update(context.Background(), &models.Project{ID: projectID})
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDelete(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `^DELETE\s+FROM\s+projects\s+WHERE\s+id\s*=\s*\$1$`
	mock.ExpectExec(q).WithArgs(projectID).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).WithArgs(projectID).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(q).WithArgs(projectID).WillReturnError(errors.New("db down"))

	require.NoError(t, repo.Delete(context.Background(), projectID))
	assert.ErrorIs(t, repo.Delete(context.Background(), projectID), common.ErrNotFound)
	assert.ErrorContains(t, repo.Delete(context.Background(), projectID), "db error: db down")
	assert.ErrorIs(t, repo.Delete(context.Background(), "zzz"), common.ErrNotFound)
}
