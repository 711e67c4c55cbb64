package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cms-preschool/checkin-api/internal/dto"
	"github.com/cms-preschool/checkin-api/internal/models"
)

// AuditRepository persists and lists transition events.
type AuditRepository interface {
	Insert(ctx context.Context, event models.TransitionEvent) error
	ListByDay(ctx context.Context, day string, limit, offset int) ([]models.TransitionEvent, int, error)
}

// AuditService keeps the transition trail. Recording is best-effort: a
// trail insert failure is logged and swallowed so it can never fail the
// tap that produced it.
type AuditService struct {
	repo   AuditRepository
	logger *zap.Logger
}

func NewAuditService(repo AuditRepository, logger *zap.Logger) *AuditService {
	return &AuditService{repo: repo, logger: logger}
}

// Record appends one event, assigning its ID.
func (s *AuditService) Record(ctx context.Context, event models.TransitionEvent) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if err := s.repo.Insert(ctx, event); err != nil {
		s.logger.Warn("audit insert failed",
			zap.String("student", event.Student),
			zap.String("action", string(event.Action)),
			zap.Error(err))
	}
}

// ListByDay returns one page of the day's trail, newest first.
func (s *AuditService) ListByDay(ctx context.Context, day string, page, pageSize int) ([]dto.AuditEvent, models.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 50
	}

	events, total, err := s.repo.ListByDay(ctx, day, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, models.Pagination{}, err
	}

	out := make([]dto.AuditEvent, 0, len(events))
	for _, ev := range events {
		out = append(out, dto.AuditEvent{
			ID:         ev.ID,
			Day:        ev.Day,
			Student:    ev.Student,
			Action:     string(ev.Action),
			FromStatus: string(ev.FromStatus),
			ToStatus:   string(ev.ToStatus),
			Campus:     ev.Campus,
			Classroom:  ev.Classroom,
			OccurredAt: ev.OccurredAt.Format(time.RFC3339),
		})
	}
	return out, models.Pagination{Page: page, PageSize: pageSize, TotalCount: total}, nil
}
