package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetWeightOf(t *testing.T) {
	d := Dataset{
		Headers: []string{"Name", "Status"},
		Widths:  map[string]float64{"Name": 2, "Status": -1},
	}
	assert.Equal(t, 2.0, d.weightOf("Name"))
	assert.Equal(t, 1.0, d.weightOf("Status"), "non-positive weights fall back to 1")
	assert.Equal(t, 1.0, d.weightOf("Campus"), "unlisted columns weigh 1")
}

func TestPDFRenderWithWeightedColumns(t *testing.T) {
	d := Dataset{
		Headers: []string{"Name", "Status"},
		Rows:    []map[string]string{{"Name": "Ada Mitchell", "Status": "Here"}},
		Widths:  map[string]float64{"Name": 2},
	}

	out, err := NewPDFExporter().Render(d, "Attendance 2026-03-02")
	require.NoError(t, err)
	assert.True(t, len(out) > 4 && string(out[:4]) == "%PDF")
}

func TestCSVRenderRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	require.Error(t, err)
}
