package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories. The
// record store is read-only, so there are no transaction helpers here;
// inserts belong to the data-entry surface, not this engine.
type BaseRepository struct {
	Pool *pgxpool.Pool
}
