package repository

import "fmt"

// publishedOrder builds an ORDER BY clause that sorts a publish timestamp
// descending with NULL values (scheduled-but-unpublished records) last, then
// by last update descending. Both columns carry the CASE guard because
// postgres puts NULLs first on DESC while sqlite puts them last; the guard
// makes the engines agree.
func publishedOrder(column string) string {
	return fmt.Sprintf(
		"CASE WHEN %s IS NULL THEN 1 ELSE 0 END, %s DESC, CASE WHEN updated_at IS NULL THEN 1 ELSE 0 END, updated_at DESC",
		column, column,
	)
}
