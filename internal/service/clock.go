package service

import (
	"fmt"
	"time"

	"github.com/cms-preschool/checkin-api/internal/models"
)

// Clock provides the school's wall clock. All day partitioning and
// timestamp formatting happens in the configured attendance timezone,
// never in server-local time.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

func NewClock(timezone string) (*Clock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load attendance timezone %q: %w", timezone, err)
	}
	return &Clock{loc: loc, now: time.Now}, nil
}

// Now returns the current instant in the attendance timezone.
func (c *Clock) Now() time.Time {
	return c.now().In(c.loc)
}

// Day returns today's partition key.
func (c *Clock) Day() string {
	return models.DayKey(c.Now())
}

// SchoolDay returns today's school weekday, weekends mapping to Monday.
func (c *Clock) SchoolDay() models.Weekday {
	return models.WeekdayOf(c.Now())
}
