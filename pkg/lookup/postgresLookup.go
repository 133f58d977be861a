package lookup

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"

	_ "github.com/lib/pq"

	"github.com/zoff-tech/status-reconciler/pkg/event"
)

// PostgresLookup queries the original-request table over SQL, for
// deployments where the lookup store is reachable directly.
type PostgresLookup struct {
	db *sql.DB
}

func (p *PostgresLookup) Lookup(ctx context.Context, snsID string) (*event.OriginalRequest, error) {
	row := p.db.QueryRowContext(ctx,
		`SELECT transaction_id, ap_id, token, platform, payload, retry_cnt
         FROM push_requests WHERE sns_id=$1`, snsID)

	var original event.OriginalRequest
	var payload []byte
	err := row.Scan(&original.TransactionID, &original.ApID, &original.Token,
		&original.Platform, &payload, &original.RetryCount)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		log.Printf("Postgres lookup failed for sns_id %s: %v", snsID, err)
		return nil, ErrNotFound
	}

	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &original.Payload); err != nil {
			log.Printf("Postgres payload for sns_id %s does not unmarshal: %v", snsID, err)
			return nil, ErrNotFound
		}
	}
	return &original, nil
}

func (p *PostgresLookup) Close() error {
	return p.db.Close()
}
