package roster

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/cms-preschool/checkin-api/pkg/errors"
)

func TestHTTPSourceFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "roster", r.URL.Query().Get("action"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"child":"Ada Mitchell","campus":"Main","classroom":"Toddler A","monAM":"Toddler A"},
			{"child":"","campus":"Main"},
			{"child":"Ben Okafor","campus":"North","classroom":"Preschool 1","friPM":"Preschool 1"}
		]`))
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL, 5*time.Second)
	students, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Equal(t, "Ada Mitchell", students[0].Name)
	assert.Equal(t, "Ben Okafor", students[1].Name)
}

func TestHTTPSourceUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL, 5*time.Second)
	_, err := src.Fetch(context.Background())
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrRosterUnavailable.Code, apperrors.FromError(err).Code)
}

func TestHTTPSourceBadPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"not":"an array"}`))
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL, 5*time.Second)
	_, err := src.Fetch(context.Background())
	require.Error(t, err)
}
