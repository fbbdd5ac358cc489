package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("hello world\n"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	assert.Error(t, err)
}

func TestGetLines(t *testing.T) {
	var out bytes.Buffer
	got, err := GetLines(rdr("a\n  b \n\nignored\n"), "Lines", &out)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)

	got, err = GetLines(rdr("only"), "Lines", &out)
	require.NoError(t, err)
	assert.Equal(t, []string{"only"}, got)
}

func TestGetPassword(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()

	readPassword = func(int) ([]byte, error) { return []byte("pw"), nil }
	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	assert.Equal(t, "pw", pw)

	readPassword = func(int) ([]byte, error) { return nil, errors.New("boom") }
	_, err = GetPassword(&out)
	assert.Error(t, err)
}

func TestGetOptional(t *testing.T) {
	var out bytes.Buffer

	f, err := GetOptional(rdr("\n"), "Name", &out)
	require.NoError(t, err)
	assert.False(t, f.Set)

	f, err = GetOptional(rdr("-\n"), "Name", &out)
	require.NoError(t, err)
	assert.True(t, f.Set)
	assert.Empty(t, f.Value)

	f, err = GetOptional(rdr("Ada\n"), "Name", &out)
	require.NoError(t, err)
	assert.Equal(t, "Ada", f.Value)
}

func TestGetOptionalListAndInt(t *testing.T) {
	var out bytes.Buffer

	l, err := GetOptionalList(rdr("Go, SQL ,,\n"), "Tech", &out)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "SQL"}, l.Value)

	l, err = GetOptionalList(rdr("-\n"), "Tech", &out)
	require.NoError(t, err)
	assert.True(t, l.Set)
	assert.Equal(t, []string{}, l.Value)

	n, err := GetOptionalInt(rdr("7\n"), "Order", &out)
	require.NoError(t, err)
	assert.Equal(t, 7, n.Value)

	_, err = GetOptionalInt(rdr("seven\n"), "Order", &out)
	assert.Error(t, err)
}
