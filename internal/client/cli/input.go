package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/folio/internal/cryptox"
	"github.com/dmitrijs2005/folio/internal/patch"
	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// clearToken, typed at an optional prompt, clears the field.
const clearToken = "-"

// GetSimpleText prints a prompt to w and reads a single trimmed line from
// reader. A partial line before EOF is returned as is.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword reads a password from the terminal without echo.
func GetPassword(w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return "", err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	defer cryptox.Wipe(pw)
	return string(pw), nil
}

// GetLines reads lines until an empty one and returns them trimmed.
func GetLines(reader *bufio.Reader, prompt string, w io.Writer) ([]string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n(press Enter on an empty line to finish)\n"); err != nil {
		return nil, err
	}

	var lines []string
	for {
		line, err := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
		if line == "" || err != nil {
			break
		}
	}
	return lines, nil
}

// GetOptional reads a patch field: an empty answer leaves the value
// untouched and "-" clears it.
func GetOptional(reader *bufio.Reader, prompt string, w io.Writer) (patch.Field[string], error) {
	v, err := GetSimpleText(reader, prompt+" (Enter to keep, - to clear)", w)
	if err != nil {
		return patch.Field[string]{}, err
	}
	switch v {
	case "":
		return patch.Field[string]{}, nil
	case clearToken:
		return patch.Of(""), nil
	default:
		return patch.Of(v), nil
	}
}

// GetOptionalList reads a comma separated list with GetOptional semantics.
func GetOptionalList(reader *bufio.Reader, prompt string, w io.Writer) (patch.Field[[]string], error) {
	f, err := GetOptional(reader, prompt+", comma separated", w)
	if err != nil || !f.Set {
		return patch.Field[[]string]{}, err
	}
	return patch.Of(splitList(f.Value)), nil
}

// GetOptionalInt reads an integer with GetOptional semantics; "-" resets to 0.
func GetOptionalInt(reader *bufio.Reader, prompt string, w io.Writer) (patch.Field[int], error) {
	f, err := GetOptional(reader, prompt, w)
	if err != nil || !f.Set {
		return patch.Field[int]{}, err
	}
	if f.Value == "" {
		return patch.Of(0), nil
	}
	n, err := strconv.Atoi(f.Value)
	if err != nil {
		return patch.Field[int]{}, fmt.Errorf("%q is not a number", f.Value)
	}
	return patch.Of(n), nil
}

func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetOptionalBool reads a yes/no answer with GetOptional semantics.
func GetOptionalBool(reader *bufio.Reader, prompt string, w io.Writer) (patch.Field[bool], error) {
	v, err := GetSimpleText(reader, prompt+" [y/n] (Enter to keep)", w)
	if err != nil {
		return patch.Field[bool]{}, err
	}
	switch strings.ToLower(v) {
	case "":
		return patch.Field[bool]{}, nil
	case "y", "yes", "true":
		return patch.Of(true), nil
	case "n", "no", "false":
		return patch.Of(false), nil
	default:
		return patch.Field[bool]{}, fmt.Errorf("%q is not y or n", v)
	}
}
