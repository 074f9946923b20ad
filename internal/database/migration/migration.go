package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
  id            UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  email         TEXT        NOT NULL UNIQUE,
  password_hash TEXT        NOT NULL,
  name          TEXT        NOT NULL DEFAULT '',
  role          TEXT        NOT NULL DEFAULT 'USER',
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_categories",
		SQL: `CREATE TABLE IF NOT EXISTS categories (
  id          UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  name        TEXT        NOT NULL,
  slug        TEXT        NOT NULL UNIQUE,
  description TEXT        NOT NULL DEFAULT '',
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_products",
		SQL: `CREATE TABLE IF NOT EXISTS products (
  id          UUID             PRIMARY KEY DEFAULT uuid_generate_v4(),
  name        TEXT             NOT NULL,
  slug        TEXT             NOT NULL UNIQUE,
  description TEXT             NOT NULL DEFAULT '',
  price       DOUBLE PRECISION NOT NULL CHECK (price >= 0),
  stock       INTEGER          NOT NULL CHECK (stock >= 0),
  images      JSONB            NOT NULL DEFAULT '[]',
  is_active   BOOLEAN          NOT NULL DEFAULT TRUE,
  category_id UUID             NOT NULL REFERENCES categories (id),
  created_at  TIMESTAMPTZ      NOT NULL DEFAULT now(),
  updated_at  TIMESTAMPTZ      NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_posts",
		SQL: `CREATE TABLE IF NOT EXISTS posts (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  title      TEXT        NOT NULL,
  slug       TEXT        NOT NULL UNIQUE,
  excerpt    TEXT        NOT NULL DEFAULT '',
  content    TEXT        NOT NULL,
  cover_url  TEXT        NOT NULL DEFAULT '',
  published  BOOLEAN     NOT NULL DEFAULT FALSE,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_gallery_images",
		SQL: `CREATE TABLE IF NOT EXISTS gallery_images (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  title      TEXT        NOT NULL,
  image_url  TEXT        NOT NULL,
  caption    TEXT        NOT NULL DEFAULT '',
  visible    BOOLEAN     NOT NULL DEFAULT TRUE,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_quotes",
		SQL: `CREATE TABLE IF NOT EXISTS quotes (
  id             UUID             PRIMARY KEY DEFAULT uuid_generate_v4(),
  customer_name  TEXT             NOT NULL,
  customer_email TEXT             NOT NULL,
  customer_phone TEXT             NOT NULL DEFAULT '',
  message        TEXT             NOT NULL DEFAULT '',
  files          JSONB            NOT NULL DEFAULT '[]',
  status         TEXT             NOT NULL DEFAULT 'pending',
  notes          TEXT             NOT NULL DEFAULT '',
  quoted_price   DOUBLE PRECISION,
  created_at     TIMESTAMPTZ      NOT NULL DEFAULT now(),
  updated_at     TIMESTAMPTZ      NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_orders",
		SQL: `CREATE TABLE IF NOT EXISTS orders (
  id             UUID             PRIMARY KEY DEFAULT uuid_generate_v4(),
  customer_name  TEXT             NOT NULL,
  customer_email TEXT             NOT NULL,
  items          JSONB            NOT NULL DEFAULT '[]',
  total          DOUBLE PRECISION NOT NULL CHECK (total >= 0),
  status         TEXT             NOT NULL DEFAULT 'pending',
  notes          TEXT             NOT NULL DEFAULT '',
  created_at     TIMESTAMPTZ      NOT NULL DEFAULT now(),
  updated_at     TIMESTAMPTZ      NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_products_category_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_products_category_id ON products (category_id);`,
	},
	{
		Name: "create_index_products_is_active",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_products_is_active ON products (is_active);`,
	},
	{
		Name: "create_index_posts_published",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_posts_published ON posts (published);`,
	},
	{
		Name: "create_index_quotes_status",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_quotes_status ON quotes (status);`,
	},
	{
		Name: "create_index_quotes_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_quotes_created_at ON quotes (created_at);`,
	},
	{
		Name: "create_index_orders_status",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_orders_status ON orders (status);`,
	},
}

// EnsureMigrated checks if the 'users' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string) error {
	start := time.Now()

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	query := "SELECT to_regclass('public.users') IS NOT NULL"
	err := db.QueryRowContext(ctx, query).Scan(&exists)
	if err != nil {
		logJSON(loc, map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logJSON(loc, map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_start",
		"status":    "in_progress",
		"db_host":   dbHost,
	})

	for _, step := range steps {
		stepStart := time.Now()
		_, err := db.ExecContext(ctx, step.SQL)
		if err != nil {
			logJSON(loc, map[string]any{
				"component":        "database",
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   step.Name,
				"error_message":    err.Error(),
				"db_host":          dbHost,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logJSON(loc, map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logJSON(loc, map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

func logJSON(loc *time.Location, data map[string]any) {
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal migration log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
