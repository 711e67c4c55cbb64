// Package roster loads and holds the current enrollment snapshot. The
// roster lives in an external system; this package fetches it on demand
// and serves a cached copy to everything else.
package roster

import (
	"context"
	"strings"

	"github.com/cms-preschool/checkin-api/internal/models"
)

// Source produces a full roster snapshot.
type Source interface {
	Fetch(ctx context.Context) ([]models.Student, error)
}

// wireStudent is the row shape both sources share: the roster service's
// JSON payload and the spreadsheet header use the same column names.
type wireStudent struct {
	Child     string `json:"child"`
	Campus    string `json:"campus"`
	Classroom string `json:"classroom"`
	MonAM     string `json:"monAM"`
	MonPM     string `json:"monPM"`
	TueAM     string `json:"tueAM"`
	TuePM     string `json:"tuePM"`
	WedAM     string `json:"wedAM"`
	WedPM     string `json:"wedPM"`
	ThuAM     string `json:"thuAM"`
	ThuPM     string `json:"thuPM"`
	FriAM     string `json:"friAM"`
	FriPM     string `json:"friPM"`
}

// toStudent converts a wire row. Rows without a child name carry no
// identity and are dropped by callers.
func (w wireStudent) toStudent() models.Student {
	schedule := make(map[models.Weekday]models.SessionAssignment, len(models.Weekdays))
	add := func(day models.Weekday, am, pm string) {
		am, pm = strings.TrimSpace(am), strings.TrimSpace(pm)
		if am == "" && pm == "" {
			return
		}
		schedule[day] = models.SessionAssignment{AM: am, PM: pm}
	}
	add(models.Monday, w.MonAM, w.MonPM)
	add(models.Tuesday, w.TueAM, w.TuePM)
	add(models.Wednesday, w.WedAM, w.WedPM)
	add(models.Thursday, w.ThuAM, w.ThuPM)
	add(models.Friday, w.FriAM, w.FriPM)

	return models.Student{
		Name:      strings.TrimSpace(w.Child),
		Campus:    strings.TrimSpace(w.Campus),
		Classroom: strings.TrimSpace(w.Classroom),
		Schedule:  schedule,
	}
}

func toStudents(rows []wireStudent) []models.Student {
	students := make([]models.Student, 0, len(rows))
	for _, row := range rows {
		if strings.TrimSpace(row.Child) == "" {
			continue
		}
		students = append(students, row.toStudent())
	}
	return students
}
