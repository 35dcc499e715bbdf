package audit

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// createEventsTable is applied on sink construction; the audit trail is an
// append-only table, so no migration machinery is needed.
const createEventsTable = `
CREATE TABLE IF NOT EXISTS audit_events (
	id           TEXT PRIMARY KEY,
	execution_id TEXT NOT NULL,
	event        TEXT NOT NULL,
	data         TEXT,
	created_at   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_audit_events_execution
	ON audit_events (execution_id, created_at);
`

// insertTimeout bounds each fire-and-forget insert so a locked database
// cannot stall the execution pipeline.
const insertTimeout = 2 * time.Second

// SQLiteSink appends audit events to a SQLite table.
type SQLiteSink struct {
	db     *sql.DB
	logger Logger
}

// NewSQLiteSink creates the audit_events table if needed and returns a
// sink writing to it.
func NewSQLiteSink(db *sql.DB, logger Logger) (*SQLiteSink, error) {
	if _, err := db.Exec(createEventsTable); err != nil {
		return nil, fmt.Errorf("creating audit_events table: %w", err)
	}
	return &SQLiteSink{db: db, logger: logger}, nil
}

// Emit implements Sink. Insert failures are logged, never surfaced.
func (s *SQLiteSink) Emit(evt Event) {
	ctx, cancel := context.WithTimeout(context.Background(), insertTimeout)
	defer cancel()

	var dataJSON *string
	if len(evt.Data) > 0 {
		b, err := json.Marshal(evt.Data)
		if err != nil {
			s.logger.Error("marshalling audit event data", "error", err)
			return
		}
		str := string(b)
		dataJSON = &str
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO audit_events (id, execution_id, event, data, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		"aev-"+uuid.NewString()[:8], evt.ExecutionID, evt.Event, dataJSON, evt.Timestamp,
	)
	if err != nil {
		s.logger.Error("inserting audit event", "error", err, "event", evt.Event)
	}
}

// Filter controls which audit events List returns.
type Filter struct {
	ExecutionID string // optional: restrict to one execution
	Event       string // optional: restrict to one event name
	Limit       int    // default 50, max 200
}

// List returns stored events matching the filter, oldest first so the
// stage ordering of an execution reads top to bottom.
func (s *SQLiteSink) List(ctx context.Context, filter Filter) ([]Event, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	if filter.Limit > 200 {
		filter.Limit = 200
	}

	var conditions []string
	var args []any
	if filter.ExecutionID != "" {
		conditions = append(conditions, "execution_id = ?")
		args = append(args, filter.ExecutionID)
	}
	if filter.Event != "" {
		conditions = append(conditions, "event = ?")
		args = append(args, filter.Event)
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf( //nolint:gosec // WHERE built from parameterised conditions, not user input
		"SELECT execution_id, event, data, created_at FROM audit_events %s ORDER BY created_at ASC, rowid ASC LIMIT ?",
		where,
	)
	args = append(args, filter.Limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying audit events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var evt Event
		var dataJSON sql.NullString
		if err := rows.Scan(&evt.ExecutionID, &evt.Event, &dataJSON, &evt.Timestamp); err != nil {
			return nil, fmt.Errorf("scanning audit event: %w", err)
		}
		if dataJSON.Valid && dataJSON.String != "" {
			var data map[string]any
			if json.Unmarshal([]byte(dataJSON.String), &data) == nil {
				evt.Data = data
			}
		}
		events = append(events, evt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating audit events: %w", err)
	}

	return events, nil
}
