package lookup

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/zoff-tech/status-reconciler/pkg/config"
)

var sqlOpen = sql.Open

// NewLookup creates the configured lookup backend.
func NewLookup(ctx context.Context, cfg config.LookupSettings) (RequestLookup, error) {
	switch cfg.Type {
	case "http":
		return NewHTTPLookup(cfg.URL, cfg.Timeout), nil
	case "dynamodb":
		return NewDynamoLookup(ctx, cfg.Region, cfg.Table)
	case "postgres":
		db, err := sqlOpen("postgres", cfg.DSN)
		if err != nil {
			return nil, err
		}
		if err := db.PingContext(ctx); err != nil {
			return nil, err
		}
		return &PostgresLookup{db: db}, nil
	default:
		return nil, fmt.Errorf("unsupported lookup type: %s", cfg.Type)
	}
}
