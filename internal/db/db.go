// db.go
package db

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/sukalov/songform/internal/logger"
	"github.com/sukalov/songform/internal/utils"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

var (
	Database *sql.DB
	once     sync.Once
	initErr  error
)

const schema = `
CREATE TABLE IF NOT EXISTS song_forms (
	id         TEXT PRIMARY KEY,
	user_id    TEXT NOT NULL,
	song_name  TEXT NOT NULL,
	structure  TEXT NOT NULL,
	lyrics     TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL,
	UNIQUE (song_name, user_id)
)`

// Init opens the libsql database configured by TURSO_DATABASE_URL and
// TURSO_AUTH_TOKEN and makes sure the song_forms table exists.
func Init() (*sql.DB, error) {
	once.Do(func() {
		env, err := utils.LoadEnv([]string{"TURSO_DATABASE_URL", "TURSO_AUTH_TOKEN"})
		if err != nil {
			initErr = fmt.Errorf("failed to load db env: %w", err)
			return
		}
		url := fmt.Sprintf("%s?authToken=%s", env["TURSO_DATABASE_URL"], env["TURSO_AUTH_TOKEN"])

		Database, initErr = sql.Open("libsql", url)
		if initErr != nil {
			initErr = fmt.Errorf("failed to open db %s: %w", env["TURSO_DATABASE_URL"], initErr)
			return
		}

		Database.SetMaxOpenConns(25)
		Database.SetMaxIdleConns(25)
		Database.SetConnMaxLifetime(5 * time.Minute)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if pingErr := Database.PingContext(ctx); pingErr != nil {
			initErr = fmt.Errorf("failed to ping database: %w", pingErr)
			return
		}
		initErr = Migrate(ctx, Database)
	})

	return Database, initErr
}

// Migrate creates the tables the store needs.
func Migrate(ctx context.Context, database *sql.DB) error {
	if _, err := database.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create song_forms table: %w", err)
	}
	return nil
}

// Close closes the database connection safely
func Close() {
	if Database != nil {
		if err := Database.Close(); err != nil {
			logger.Error(fmt.Sprintf("error closing database: %v", err))
		}
	}
}
