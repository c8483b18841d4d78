package cli

import (
	"fmt"
	"strings"

	"github.com/iudanet/flashkeeper/internal/models"
)

// fieldSeparator разделяет content и explanation во флаге --field
const fieldSeparator = "::"

// parseFieldFlags parses --field values of the form CONTENT::EXPLANATION.
// The explanation may itself contain the separator.
func parseFieldFlags(values []string) ([]models.Field, error) {
	fields := make([]models.Field, 0, len(values))
	for i, v := range values {
		content, explanation, ok := strings.Cut(v, fieldSeparator)
		if !ok {
			return nil, fmt.Errorf("field %d: expected CONTENT%sEXPLANATION, got %q", i+1, fieldSeparator, v)
		}
		fields = append(fields, models.Field{Content: content, Explanation: explanation})
	}
	return fields, nil
}

// dedupe keeps the first occurrence of every id
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
