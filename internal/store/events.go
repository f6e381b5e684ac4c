package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// GuidanceEventData captures one request to the guidance provider.
type GuidanceEventData struct {
	SessionID    string
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// GuidanceEventRecord is a stored guidance event row.
type GuidanceEventRecord struct {
	ID        int64
	Timestamp time.Time
	GuidanceEventData
}

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit int // max results, newest first (0 = unlimited)
}

// ModelUsage aggregates token usage per model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to guidance request events.
type EventRepo interface {
	// AppendGuidanceRequest records a guidance API call.
	AppendGuidanceRequest(ctx context.Context, data GuidanceEventData) error

	// QueryGuidanceEvents returns recorded events, newest first.
	QueryGuidanceEvents(ctx context.Context, opts QueryOpts) ([]GuidanceEventRecord, error)

	// GetGuidanceEvent returns one event by id, or nil if not found.
	GetGuidanceEvent(ctx context.Context, id int64) (*GuidanceEventRecord, error)

	// UsageByModel aggregates token usage per model.
	UsageByModel(ctx context.Context) ([]ModelUsage, error)
}

type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) AppendGuidanceRequest(ctx context.Context, data GuidanceEventData) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO guidance_events
			(timestamp, session_id, provider, model, purpose, input_tokens,
			 output_tokens, latency_ms, success, error_message, request_body, response_body)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().Unix(), data.SessionID, data.Provider, data.Model, data.Purpose,
		data.InputTokens, data.OutputTokens, data.LatencyMs, boolToInt(data.Success),
		data.ErrorMessage, data.RequestBody, data.ResponseBody)
	if err != nil {
		return fmt.Errorf("append guidance event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryGuidanceEvents(ctx context.Context, opts QueryOpts) ([]GuidanceEventRecord, error) {
	q := `SELECT id, timestamp, session_id, provider, model, purpose, input_tokens,
		output_tokens, latency_ms, success, error_message, request_body, response_body
		FROM guidance_events ORDER BY id DESC`
	args := []any{}
	if opts.Limit > 0 {
		q += ` LIMIT ?`
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query guidance events: %w", err)
	}
	defer rows.Close()

	var out []GuidanceEventRecord
	for rows.Next() {
		rec, err := scanGuidanceEvent(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

func (r *eventRepo) GetGuidanceEvent(ctx context.Context, id int64) (*GuidanceEventRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, timestamp, session_id, provider, model, purpose, input_tokens,
			output_tokens, latency_ms, success, error_message, request_body, response_body
		FROM guidance_events WHERE id = ?`, id)

	rec, err := scanGuidanceEvent(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get guidance event %d: %w", id, err)
	}
	return rec, nil
}

func (r *eventRepo) UsageByModel(ctx context.Context) ([]ModelUsage, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT model, COUNT(*), COALESCE(SUM(input_tokens), 0),
			COALESCE(SUM(output_tokens), 0), COALESCE(AVG(latency_ms), 0)
		FROM guidance_events GROUP BY model ORDER BY model`)
	if err != nil {
		return nil, fmt.Errorf("query usage by model: %w", err)
	}
	defer rows.Close()

	var out []ModelUsage
	for rows.Next() {
		var u ModelUsage
		var avg float64
		if err := rows.Scan(&u.Model, &u.Calls, &u.InputTokens, &u.OutputTokens, &avg); err != nil {
			return nil, err
		}
		u.AvgLatencyMs = int64(avg)
		out = append(out, u)
	}
	return out, rows.Err()
}

func scanGuidanceEvent(scan func(...any) error) (*GuidanceEventRecord, error) {
	var rec GuidanceEventRecord
	var ts int64
	var success int
	err := scan(&rec.ID, &ts, &rec.SessionID, &rec.Provider, &rec.Model, &rec.Purpose,
		&rec.InputTokens, &rec.OutputTokens, &rec.LatencyMs, &success,
		&rec.ErrorMessage, &rec.RequestBody, &rec.ResponseBody)
	if err != nil {
		return nil, err
	}
	rec.Timestamp = time.Unix(ts, 0)
	rec.Success = success != 0
	return &rec, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
