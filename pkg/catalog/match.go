package catalog

import (
	"strings"

	"github.com/arthur-debert/meshdeps/pkg/errors"
)

// AllToken selects a whole catalog when contained in a request
const AllToken = "all"

// Match returns the first entry whose Curving+Type occurs in token.
//
// "Curved" is a substring of "ToBeCurved", so when the token asks for a
// ToBeCurved variant, entries whose curving is not ToBeCurved are skipped.
func Match(token string, entries []Entry) (Entry, error) {
	wantsToBeCurved := strings.Contains(token, CurvingToBeCurved)

	for _, e := range entries {
		if !strings.Contains(token, e.Key()) {
			continue
		}
		if wantsToBeCurved && !strings.Contains(e.Curving, CurvingToBeCurved) {
			continue
		}
		return e, nil
	}

	return Entry{}, errors.Newf(errors.ErrMeshTypeNotFound, "did not find the mesh type for %q", token).
		WithDetail("token", token).
		WithDetail("catalog", describe(entries))
}

// Select returns every entry, in order, when token contains "all", and the
// single matching entry otherwise
func Select(token string, entries []Entry) ([]Entry, error) {
	if strings.Contains(token, AllToken) {
		return append([]Entry(nil), entries...), nil
	}

	e, err := Match(token, entries)
	if err != nil {
		return nil, err
	}
	return []Entry{e}, nil
}

func describe(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.String()
	}
	return out
}
