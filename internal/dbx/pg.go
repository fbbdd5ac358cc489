package dbx

import (
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// uniqueViolation is the SQLSTATE Postgres reports for a unique index clash.
const uniqueViolation = "23505"

// IsUniqueViolation reports whether err is a Postgres unique constraint error.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// TextArray binds a []string to a Postgres text[] column through
// database/sql. It encodes to the array literal form ({a,b}) and scans from
// either the literal string or raw bytes.
type TextArray []string

func (a TextArray) Value() (driver.Value, error) {
	src := []string(a)
	if src == nil {
		src = []string{}
	}
	buf, err := pgtype.NewMap().Encode(pgtype.TextArrayOID, pgtype.TextFormatCode, src, nil)
	if err != nil {
		return nil, fmt.Errorf("encode text array: %w", err)
	}
	return string(buf), nil
}

func (a *TextArray) Scan(src any) error {
	if src == nil {
		*a = TextArray{}
		return nil
	}
	var dst []string
	if err := pgtype.NewMap().SQLScanner(&dst).Scan(src); err != nil {
		return fmt.Errorf("scan text array: %w", err)
	}
	if dst == nil {
		dst = []string{}
	}
	*a = dst
	return nil
}
