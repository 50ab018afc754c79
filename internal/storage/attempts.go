package storage

import (
	"fmt"
	"time"
)

// Attempt is one timed execution of a case.
type Attempt struct {
	AttemptID int64
	SessionID string
	CaseID    string
	Rotation  string
	Duration  time.Duration
	Failed    bool
	CreatedAt time.Time
}

// CaseStats summarizes the attempts at one case. Best and Mean only count
// successful attempts.
type CaseStats struct {
	CaseID   string
	Attempts int
	Failures int
	Best     time.Duration
	Mean     time.Duration
	Last     time.Time
}

// AttemptRepository provides access to attempts.
type AttemptRepository struct {
	db *DB
}

// NewAttemptRepository creates a new attempt repository.
func NewAttemptRepository(db *DB) *AttemptRepository {
	return &AttemptRepository{db: db}
}

// Record stores an attempt and returns its ID.
func (r *AttemptRepository) Record(sessionID, caseID, rotation string, d time.Duration, failed bool) (int64, error) {
	res, err := r.db.Exec(`
		INSERT INTO attempts (session_id, case_id, rotation, duration_ms, failed, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, sessionID, caseID, rotation, d.Milliseconds(), failed, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return 0, fmt.Errorf("failed to record attempt: %w", err)
	}
	return res.LastInsertId()
}

// ListByCase returns the latest attempts at a case in the order they were
// made. An empty caseID lists attempts at every case.
func (r *AttemptRepository) ListByCase(caseID string, limit int) ([]Attempt, error) {
	rows, err := r.db.Query(`
		SELECT attempt_id, session_id, case_id, rotation, duration_ms, failed, created_at
		FROM (
			SELECT * FROM attempts
			WHERE ? = '' OR case_id = ?
			ORDER BY attempt_id DESC
			LIMIT ?
		)
		ORDER BY attempt_id ASC
	`, caseID, caseID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list attempts: %w", err)
	}
	defer rows.Close()

	var attempts []Attempt
	for rows.Next() {
		var a Attempt
		var durationMs int64
		var createdAtStr string
		if err := rows.Scan(&a.AttemptID, &a.SessionID, &a.CaseID, &a.Rotation, &durationMs, &a.Failed, &createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan attempt: %w", err)
		}
		a.Duration = time.Duration(durationMs) * time.Millisecond
		a.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAtStr)
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}

// CountBySession returns the number of attempts in a session.
func (r *AttemptRepository) CountBySession(sessionID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM attempts WHERE session_id = ?", sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count attempts: %w", err)
	}
	return count, nil
}

// Stats summarizes every practiced case, ordered by case id.
func (r *AttemptRepository) Stats() ([]CaseStats, error) {
	rows, err := r.db.Query(`
		SELECT case_id,
		       COUNT(*),
		       SUM(failed),
		       COALESCE(MIN(CASE WHEN failed = 0 THEN duration_ms END), 0),
		       COALESCE(AVG(CASE WHEN failed = 0 THEN duration_ms END), 0),
		       MAX(created_at)
		FROM attempts
		GROUP BY case_id
		ORDER BY case_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query stats: %w", err)
	}
	defer rows.Close()

	var stats []CaseStats
	for rows.Next() {
		var s CaseStats
		var bestMs int64
		var meanMs float64
		var lastStr string
		if err := rows.Scan(&s.CaseID, &s.Attempts, &s.Failures, &bestMs, &meanMs, &lastStr); err != nil {
			return nil, fmt.Errorf("failed to scan stats: %w", err)
		}
		s.Best = time.Duration(bestMs) * time.Millisecond
		s.Mean = time.Duration(meanMs * float64(time.Millisecond))
		s.Last, _ = time.Parse(time.RFC3339Nano, lastStr)
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

// StatsFor summarizes one case. A case with no attempts has zero stats.
func (r *AttemptRepository) StatsFor(caseID string) (CaseStats, error) {
	all, err := r.Stats()
	if err != nil {
		return CaseStats{}, err
	}
	for _, s := range all {
		if s.CaseID == caseID {
			return s, nil
		}
	}
	return CaseStats{CaseID: caseID}, nil
}
