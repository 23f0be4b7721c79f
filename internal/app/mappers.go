package app

import (
	"encoding/json"
	"errors"
	"strings"

	"tonestats/internal/domain"
)

// Catalog payloads arrive as loose JSON objects; pull out the fields we
// persist and keep the raw payload for future columns.

func mapProduct(id int64, m map[string]any) (domain.Product, error) {
	company := str(m, "company", "platform", "vendor")
	if company == "" {
		return domain.Product{}, errors.New("payload missing company")
	}
	p := domain.Product{
		ID:            id,
		Company:       company,
		Category:      str(m, "category"),
		Name:          str(m, "name", "title"),
		IntroduceText: str(m, "introduce_text", "introduceText", "description"),
		Tone:          strings.ToLower(str(m, "tone", "introduce_text_category")),
	}
	if raw, err := json.Marshal(m); err == nil {
		p.RawJSON = raw
	}
	return p, nil
}

// str returns the first non-empty string value among the given keys.
func str(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k].(string); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
