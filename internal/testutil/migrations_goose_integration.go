//go:build integration

package testutil

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/sku_upload/internal/repo/postgres"
)

// ApplyMigrationsGoose — применяет встроенные миграции (тот же путь, что и при старте сервиса).
func ApplyMigrationsGoose(dsn string) error {
	if err := postgres.Migrate(context.Background(), dsn); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
