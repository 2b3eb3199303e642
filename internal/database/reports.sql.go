package database

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
)

const upsertMatchReports = `-- name: UpsertMatchReports :exec
INSERT INTO match_reports (reports, session_id)
VALUES ($1, $2)
ON CONFLICT (session_id)
DO UPDATE SET
    reports = EXCLUDED.reports,
    updated_at = CURRENT_TIMESTAMP
`

type UpsertMatchReportsParams struct {
	Reports   json.RawMessage
	SessionID uuid.UUID
}

func (q *Queries) UpsertMatchReports(ctx context.Context, arg UpsertMatchReportsParams) error {
	_, err := q.db.ExecContext(ctx, upsertMatchReports, arg.Reports, arg.SessionID)
	return err
}
