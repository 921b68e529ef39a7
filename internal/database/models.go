package database

import "time"

// taskRow is a row of the tasks table. The id only orders rows; it is never
// exposed outside the package.
type taskRow struct {
	ID          int64     `db:"id"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}
