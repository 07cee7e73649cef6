package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/coursecast/coursecast/internal/catalog"
)

// SeedCatalog makes sure the default category set exists. Safe to run on
// every boot; existing categories are left untouched.
func SeedCatalog(ctx context.Context, catalogService catalog.Service) error {
	if err := catalogService.EnsureDefaultCategories(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSeedCatalog, err)
	}
	slog.Info(LogMsgCatalogSeeded)
	return nil
}
