package roster

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/cms-preschool/checkin-api/internal/models"
	apperrors "github.com/cms-preschool/checkin-api/pkg/errors"
)

// ExcelSource reads the roster from a local spreadsheet, used for
// offline and development setups where the enrollment service is not
// reachable. The first sheet must carry the same column names as the
// web payload in its header row.
type ExcelSource struct {
	path string
}

func NewExcelSource(path string) *ExcelSource {
	return &ExcelSource{path: path}
}

func (s *ExcelSource) Fetch(_ context.Context) ([]models.Student, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, apperrors.ErrRosterUnavailable.WithError(fmt.Errorf("open roster workbook: %w", err))
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.ErrRosterUnavailable.WithError(fmt.Errorf("roster workbook %s has no sheets", s.path))
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, apperrors.ErrRosterUnavailable.WithError(fmt.Errorf("read roster sheet: %w", err))
	}
	if len(rows) == 0 {
		return nil, apperrors.ErrRosterUnavailable.WithError(fmt.Errorf("roster sheet %s is empty", sheets[0]))
	}

	cols := make(map[string]int, len(rows[0]))
	for i, header := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(header))] = i
	}
	if _, ok := cols["child"]; !ok {
		return nil, apperrors.ErrRosterUnavailable.WithError(fmt.Errorf("roster sheet %s is missing a child column", sheets[0]))
	}

	cell := func(row []string, name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	wire := make([]wireStudent, 0, len(rows)-1)
	for _, row := range rows[1:] {
		wire = append(wire, wireStudent{
			Child:     cell(row, "child"),
			Campus:    cell(row, "campus"),
			Classroom: cell(row, "classroom"),
			MonAM:     cell(row, "monam"),
			MonPM:     cell(row, "monpm"),
			TueAM:     cell(row, "tueam"),
			TuePM:     cell(row, "tuepm"),
			WedAM:     cell(row, "wedam"),
			WedPM:     cell(row, "wedpm"),
			ThuAM:     cell(row, "thuam"),
			ThuPM:     cell(row, "thupm"),
			FriAM:     cell(row, "friam"),
			FriPM:     cell(row, "fripm"),
		})
	}
	return toStudents(wire), nil
}

var _ Source = (*ExcelSource)(nil)
var _ Source = (*HTTPSource)(nil)
