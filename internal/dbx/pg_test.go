package dbx

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "skills_name_key"}

	assert.True(t, IsUniqueViolation(pgErr))
	assert.True(t, IsUniqueViolation(fmt.Errorf("db error: %w", pgErr)))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
}

func TestTextArray_Value(t *testing.T) {
	v, err := TextArray{"Go", "SQL"}.Value()
	require.NoError(t, err)
	assert.Equal(t, "{Go,SQL}", v)

	v, err = TextArray(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "{}", v)
}

func TestTextArray_Scan(t *testing.T) {
	var a TextArray
	require.NoError(t, a.Scan("{Go,SQL}"))
	assert.Equal(t, TextArray{"Go", "SQL"}, a)

	require.NoError(t, a.Scan([]byte(`{"hello world",x}`)))
	assert.Equal(t, TextArray{"hello world", "x"}, a)

	require.NoError(t, a.Scan("{}"))
	assert.Equal(t, TextArray{}, a)

	require.NoError(t, a.Scan(nil))
	assert.Equal(t, TextArray{}, a)
}

func TestTextArray_RoundTrip(t *testing.T) {
	in := TextArray{"I build things for the web.", "I'm a Full Stack Developer.", `quote " and \ slash`}
	v, err := in.Value()
	require.NoError(t, err)

	var out TextArray
	require.NoError(t, out.Scan(v))
	assert.Equal(t, in, out)
}
