package timeline

import (
	"math"

	"cloud.google.com/go/civil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mmynk/lifecubes/internal/weekgrid"
)

// AverageWeeksPerYear is the calendar average used for life statistics,
// unlike the grid which draws exactly 52 cells per year.
const AverageWeeksPerYear = 52.1429

// Stats summarizes a life against a horizon.
type Stats struct {
	HorizonYears   int
	WeeksLived     int
	TotalWeeks     int
	WeeksRemaining int
	// Progress is the lived share of the horizon in percent, one decimal.
	Progress       float64
	YearsLived     float64
	YearsRemaining float64
}

// ComputeStats computes Stats for a person born on birth as of now. Weeks
// lived are clamped to zero; weeks remaining may go negative past the
// horizon.
func ComputeStats(birth, now civil.Date, horizonYears int) (Stats, error) {
	lived, err := weekgrid.WeeksLived(birth, now)
	if err != nil {
		return Stats{}, err
	}
	if horizonYears <= 0 {
		horizonYears = weekgrid.DefaultHorizonYears
	}
	lived = weekgrid.ClampWeeks(lived)
	total := int(math.Floor(float64(horizonYears) * AverageWeeksPerYear))
	remaining := total - lived

	return Stats{
		HorizonYears:   horizonYears,
		WeeksLived:     lived,
		TotalWeeks:     total,
		WeeksRemaining: remaining,
		Progress:       roundTenth(float64(lived) / float64(total) * 100),
		YearsLived:     roundTenth(float64(lived) / AverageWeeksPerYear),
		YearsRemaining: roundTenth(float64(remaining) / AverageWeeksPerYear),
	}, nil
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// StatsText is Stats rendered for display.
type StatsText struct {
	WeeksLived     string
	WeeksRemaining string
	Progress       string
	YearsLived     string
	YearsRemaining string
	Horizon        string
}

// Text formats s with the number conventions of tag, e.g. "1,613".
func (s Stats) Text(tag language.Tag) StatsText {
	p := message.NewPrinter(tag)
	return StatsText{
		WeeksLived:     p.Sprintf("%d", s.WeeksLived),
		WeeksRemaining: p.Sprintf("%d", s.WeeksRemaining),
		Progress:       p.Sprintf("%.1f%%", s.Progress),
		YearsLived:     p.Sprintf("(%.1f years)", s.YearsLived),
		YearsRemaining: p.Sprintf("(%.1f years)", s.YearsRemaining),
		Horizon:        p.Sprintf("of %d years", s.HorizonYears),
	}
}
