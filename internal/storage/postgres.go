package storage

import (
	"database/sql"

	"food-console/internal/domain"
)

// PostgresAuditStore persists the operator action trail.
type PostgresAuditStore struct {
	DB *sql.DB
}

func NewPostgresAuditStore(db *sql.DB) *PostgresAuditStore {
	return &PostgresAuditStore{DB: db}
}

// EnsureSchema creates the audit table when it does not exist yet.
func (s *PostgresAuditStore) EnsureSchema() error {
	_, err := s.DB.Exec(`
		CREATE TABLE IF NOT EXISTS audit_events (
			id BIGSERIAL PRIMARY KEY,
			action TEXT NOT NULL,
			resource TEXT NOT NULL,
			resource_id TEXT NOT NULL DEFAULT '',
			detail TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL
		)
	`)
	return err
}

func (s *PostgresAuditStore) InsertEvent(event *domain.AuditEvent) error {
	return s.DB.QueryRow(`
		INSERT INTO audit_events (action, resource, resource_id, detail, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, event.Action, event.Resource, event.ResourceID, event.Detail, event.Timestamp).Scan(&event.ID)
}

// RecentEvents returns the newest audit entries, newest first.
func (s *PostgresAuditStore) RecentEvents(limit int) ([]domain.AuditEvent, error) {
	rows, err := s.DB.Query(`
		SELECT id, action, resource, resource_id, detail, created_at
		FROM audit_events
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.AuditEvent
	for rows.Next() {
		var event domain.AuditEvent
		if err := rows.Scan(&event.ID, &event.Action, &event.Resource, &event.ResourceID, &event.Detail, &event.Timestamp); err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}
