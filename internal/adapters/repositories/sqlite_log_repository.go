package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"hos-trip-service/internal/domain"
)

// SQLite-backed implementation of the LogRepository port. Entry lists
// and totals are stored as JSON in the wire format the frontend reads.
type SqliteLogRepository struct{ DB *sql.DB }

func NewSqliteLogRepository(db *sql.DB) *SqliteLogRepository {
	return &SqliteLogRepository{DB: db}
}

// SaveTripLogs stores every daily log of one planned trip in a single
// transaction. Re-planning a trip id replaces its previous logs.
func (s *SqliteLogRepository) SaveTripLogs(ctx context.Context, tripID string, driverID int, logs []domain.DailyLog) error {
	if s.DB == nil {
		return errors.New("sqlite log repository: DB is nil")
	}
	if tripID == "" {
		return errors.New("save trip logs: tripID must not be empty")
	}
	if len(logs) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save trip logs: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO daily_logs (trip_id, driver_id, log_date, entries, totals)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT (trip_id, log_date) DO UPDATE
	SET driver_id = excluded.driver_id,
		entries = excluded.entries,
		totals = excluded.totals;
	`)
	if err != nil {
		return fmt.Errorf("save trip logs: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, l := range logs {
		entries, err := json.Marshal(l.Entries)
		if err != nil {
			return fmt.Errorf("save trip logs: encode entries for %s: %w", l.Date, err)
		}
		totals, err := json.Marshal(l.Totals)
		if err != nil {
			return fmt.Errorf("save trip logs: encode totals for %s: %w", l.Date, err)
		}

		if _, err := stmt.ExecContext(ctx, tripID, driverID, l.Date, string(entries), string(totals)); err != nil {
			return fmt.Errorf("save trip logs: insert date=%s: %w", l.Date, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save trip logs: commit tx: %w", err)
	}

	return nil
}

// ListDriverLogs returns all stored logs for a driver, oldest first.
func (s *SqliteLogRepository) ListDriverLogs(ctx context.Context, driverID int) ([]domain.DailyLog, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite log repository: DB is nil")
	}

	query := `
	SELECT log_date, entries, totals
	FROM daily_logs
	WHERE driver_id = ?
	ORDER BY log_date, trip_id;
	`
	rows, err := s.DB.QueryContext(ctx, query, driverID)
	if err != nil {
		return nil, fmt.Errorf("list driver logs: query daily_logs table: %w", err)
	}
	defer rows.Close()

	logs := make([]domain.DailyLog, 0, 32)
	for rows.Next() {
		var l domain.DailyLog
		var entriesJSON, totalsJSON string

		if err := rows.Scan(&l.Date, &entriesJSON, &totalsJSON); err != nil {
			return nil, fmt.Errorf("list driver logs: scan row: %w", err)
		}
		if err := json.Unmarshal([]byte(entriesJSON), &l.Entries); err != nil {
			return nil, fmt.Errorf("list driver logs: decode entries for %s: %w", l.Date, err)
		}
		if err := json.Unmarshal([]byte(totalsJSON), &l.Totals); err != nil {
			return nil, fmt.Errorf("list driver logs: decode totals for %s: %w", l.Date, err)
		}

		logs = append(logs, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list driver logs: row iteration: %w", err)
	}

	return logs, nil
}
