// Package repository holds the Postgres persistence layer. Only the
// transition audit trail lives here; live attendance state is in the
// record store and the roster is held in memory.
package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/cms-preschool/checkin-api/internal/models"
)

// AuditRepository persists the transition trail.
type AuditRepository struct {
	db *sqlx.DB
}

// NewAuditRepository creates a new audit repository.
func NewAuditRepository(db *sqlx.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// Insert appends one transition event.
func (r *AuditRepository) Insert(ctx context.Context, event models.TransitionEvent) error {
	const query = `INSERT INTO attendance_events (id, day, student, action, from_status, to_status, campus, classroom, occurred_at)
        VALUES (:id, :day, :student, :action, :from_status, :to_status, :campus, :classroom, :occurred_at)`
	if _, err := r.db.NamedExecContext(ctx, query, event); err != nil {
		return fmt.Errorf("insert attendance event: %w", err)
	}
	return nil
}

// ListByDay returns one page of the day's events, newest first, plus
// the day's total count.
func (r *AuditRepository) ListByDay(ctx context.Context, day string, limit, offset int) ([]models.TransitionEvent, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM attendance_events WHERE day = $1`, day); err != nil {
		return nil, 0, fmt.Errorf("count attendance events: %w", err)
	}

	const query = `SELECT id, day, student, action, from_status, to_status, campus, classroom, occurred_at
        FROM attendance_events
        WHERE day = $1
        ORDER BY occurred_at DESC
        LIMIT $2 OFFSET $3`
	var events []models.TransitionEvent
	if err := r.db.SelectContext(ctx, &events, query, day, limit, offset); err != nil {
		return nil, 0, fmt.Errorf("list attendance events: %w", err)
	}
	return events, total, nil
}
