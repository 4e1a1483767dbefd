package sqlite

import "database/sql"

// SQLite has no boolean column type; in_stock is stored as 0/1 and converted
// at the scan boundary.

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func intToBool(i int64) bool {
	return i != 0
}

// nullToString converts a nullable text column (like description) to a plain
// string, treating NULL as empty.
func nullToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
