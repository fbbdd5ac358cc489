// Package services holds the folio business rules: credential checks, patch
// merging and validation, and coordination between repositories and the
// object store.
package services

import (
	"errors"
	"strings"

	"github.com/dmitrijs2005/folio/internal/common"
)

// mapNotFound turns a repository miss into a client-facing 404 message.
func mapNotFound(err error, msg string) error {
	if errors.Is(err, common.ErrNotFound) {
		return common.NotFound(msg)
	}
	return err
}

// cleanStrings trims every element and drops the empty ones.
func cleanStrings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
