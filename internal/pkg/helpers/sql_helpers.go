package helpers

import "database/sql"

// GetNullString converts a string pointer to sql.NullString.
// A nil pointer maps to SQL NULL.
func GetNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
