package repository

import "strings"

// orderBy resolves a caller-supplied sort key ("field" or "field,desc")
// against the resource's column whitelist. Unknown or empty keys fall back
// to the resource's default ordering, so the parameter can never inject SQL.
func orderBy(sort string, allowed map[string]string, fallback string) string {
	field := strings.TrimSpace(sort)
	direction := "asc"

	if name, dir, ok := strings.Cut(field, ","); ok {
		field = strings.TrimSpace(name)
		if strings.EqualFold(strings.TrimSpace(dir), "desc") {
			direction = "desc"
		}
	}

	column, ok := allowed[field]
	if !ok {
		return fallback
	}
	return column + " " + direction
}
