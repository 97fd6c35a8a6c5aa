package db

import "database/sql"

// DB wraps the shared connection pool so packages depend on a
// project type rather than database/sql directly.
type DB struct {
	*sql.DB
}
