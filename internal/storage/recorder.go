package storage

import "time"

// SessionRecorder writes the attempts of one drill run into a session.
type SessionRecorder struct {
	sessions  *SessionRepository
	attempts  *AttemptRepository
	sessionID string
}

// NewSessionRecorder opens a session for sectionID.
func NewSessionRecorder(db *DB, sectionID string) (*SessionRecorder, error) {
	sessions := NewSessionRepository(db)
	id, err := sessions.Create(sectionID, "")
	if err != nil {
		return nil, err
	}
	return &SessionRecorder{
		sessions:  sessions,
		attempts:  NewAttemptRepository(db),
		sessionID: id,
	}, nil
}

// SessionID returns the id of the open session.
func (r *SessionRecorder) SessionID() string { return r.sessionID }

// RecordAttempt stores one attempt in the session.
func (r *SessionRecorder) RecordAttempt(caseID, rotation string, d time.Duration, failed bool) error {
	_, err := r.attempts.Record(r.sessionID, caseID, rotation, d, failed)
	return err
}

// Close ends the session.
func (r *SessionRecorder) Close() error {
	return r.sessions.End(r.sessionID)
}
