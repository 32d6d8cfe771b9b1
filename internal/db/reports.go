package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-fit/internal/scoring"
)

// ErrReportNotFound indicates the requested report does not exist.
var ErrReportNotFound = errors.New("report not found")

// ReportSummary is a listing row for the report history.
type ReportSummary struct {
	ID        uuid.UUID `json:"id"`
	JobTitle  string    `json:"jobTitle"`
	Company   string    `json:"company"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"createdAt"`
}

// StoredReport is one persisted scoring run.
type StoredReport struct {
	ReportSummary
	Report scoring.FitReport `json:"report"`
}

// SaveReport persists a fit report and returns its ID.
func (db *DB) SaveReport(ctx context.Context, jobTitle, company string, report *scoring.FitReport) (uuid.UUID, error) {
	payload, err := json.Marshal(report)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal report: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO fit_reports (job_title, company, score, report)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		jobTitle, company, report.Score, payload,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save report: %w", err)
	}
	return id, nil
}

// ListReports returns the most recent report summaries, newest first.
func (db *DB) ListReports(ctx context.Context, limit int) ([]ReportSummary, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, job_title, company, score, created_at
		 FROM fit_reports
		 ORDER BY created_at DESC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	var summaries []ReportSummary
	for rows.Next() {
		var s ReportSummary
		if err := rows.Scan(&s.ID, &s.JobTitle, &s.Company, &s.Score, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// GetReport fetches one persisted report by ID.
func (db *DB) GetReport(ctx context.Context, id uuid.UUID) (*StoredReport, error) {
	var (
		stored  StoredReport
		payload []byte
	)
	err := db.pool.QueryRow(ctx,
		`SELECT id, job_title, company, score, report, created_at
		 FROM fit_reports
		 WHERE id = $1`, id,
	).Scan(&stored.ID, &stored.JobTitle, &stored.Company, &stored.Score, &payload, &stored.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrReportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	if err := json.Unmarshal(payload, &stored.Report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stored report: %w", err)
	}
	return &stored, nil
}
