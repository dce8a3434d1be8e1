package upload

import (
	"context"
	"log/slog"
)

// Cleaner removes the staged object once the pipeline is done with it.
type Cleaner struct {
	store  S3API
	logger *slog.Logger
}

func NewCleaner(store S3API, logger *slog.Logger) *Cleaner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cleaner{store: store, logger: logger}
}

// Delete removes the staged object. Deletion is best-effort: failures are
// logged with a manual-cleanup hint and never fail the run.
func (c *Cleaner) Delete(ctx context.Context, loc Location) {
	c.logger.Info("cleaning up staged S3 object", "uri", loc.URI())
	if err := c.store.DeleteObject(ctx, loc.Key); err != nil {
		c.logger.Warn("failed to delete staged S3 object, please remove it manually",
			"uri", loc.URI(), "error", err)
		return
	}
	c.logger.Info("staged S3 object deleted", "uri", loc.URI())
}
