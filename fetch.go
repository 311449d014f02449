package bingo

import (
	"fmt"
	"strings"
	"unicode"
)

type FetchMode string

const (
	FetchAll    FetchMode = "fetchAll"
	FetchRow    FetchMode = "fetch"
	FetchColumn FetchMode = "fetchColumn"
)

// ParseFetchMode turns a human name such as "fetch-all" or "Fetch Column" into a FetchMode.
// Hyphens and spaces separate words, and the result is lower camel case.
func ParseFetchMode(name string) (FetchMode, error) {
	words := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return r == '-' || unicode.IsSpace(r)
	})

	sb := strings.Builder{}
	for i, w := range words {
		if i > 0 {
			// Upper case only the first letter of every following word.
			sb.WriteString(strings.ToUpper(w[:1]) + w[1:])
			continue
		}
		sb.WriteString(w)
	}

	// Names written without separators, such as "fetchall", still match.
	for _, mode := range []FetchMode{FetchAll, FetchRow, FetchColumn} {
		if strings.EqualFold(sb.String(), string(mode)) {
			return mode, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFetchMode, name)
}
