package roster

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cms-preschool/checkin-api/internal/models"
	apperrors "github.com/cms-preschool/checkin-api/pkg/errors"
)

// HTTPSource fetches the roster from the enrollment web service. The
// service exposes a single action-style endpoint returning a JSON array
// of rows.
type HTTPSource struct {
	endpoint string
	client   *http.Client
}

func NewHTTPSource(endpoint string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

func (s *HTTPSource) Fetch(ctx context.Context) ([]models.Student, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint+"?action=roster", nil)
	if err != nil {
		return nil, fmt.Errorf("build roster request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, apperrors.ErrRosterUnavailable.WithError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.ErrRosterUnavailable.WithError(fmt.Errorf("roster service returned %d", resp.StatusCode))
	}

	var rows []wireStudent
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, apperrors.ErrRosterUnavailable.WithError(fmt.Errorf("decode roster payload: %w", err))
	}
	return toStudents(rows), nil
}
