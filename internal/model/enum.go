package model

import (
	"slices"
	"strings"

	"github.com/Veraticus/silhouette/internal/common"
)

func isMember[T ~string](v T, all []T) bool {
	return slices.Contains(all, v)
}

// parseEnum normalizes s and matches it against the allowed values.
// Hyphens and spaces are accepted in place of underscores ("formal event", "inverted-triangle").
func parseEnum[T ~string](field, s string, all []T) (T, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)

	if i := slices.Index(all, T(normalized)); i >= 0 {
		return all[i], nil
	}

	var zero T
	return zero, invalid(field, s)
}

func invalid(field, value string) error {
	return common.InvalidEnumError(field, value)
}
