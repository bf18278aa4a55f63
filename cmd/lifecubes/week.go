package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"cloud.google.com/go/civil"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/mmynk/lifecubes/internal/timeline"
	"github.com/mmynk/lifecubes/internal/weekgrid"
)

type weekOptions struct {
	birth     string
	date      string
	weekStart string
	horizon   int
}

func newWeekCmd() *cobra.Command {
	opts := &weekOptions{}
	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show where a date falls on the week grid",
		Example: `  lifecubes week --birth 1990-01-01 --date 2020-12-01
  lifecubes week --birth 1990-01-01 --week-start monday`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd.OutOrStdout(), weekgrid.Today(time.Now()))
		},
	}
	cmd.Flags().StringVar(&opts.birth, "birth", "", "birth date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.date, "date", "", "date to locate (default today)")
	cmd.Flags().StringVar(&opts.weekStart, "week-start", "birthday", `"birthday" or the weekday weeks start on`)
	cmd.Flags().IntVar(&opts.horizon, "horizon", weekgrid.DefaultHorizonYears, "life expectancy in years")
	_ = cmd.MarkFlagRequired("birth")
	return cmd
}

func (o *weekOptions) run(w io.Writer, today civil.Date) error {
	birth, err := weekgrid.ParseDate(o.birth)
	if err != nil {
		return err
	}
	target := today
	if o.date != "" {
		if target, err = weekgrid.ParseDate(o.date); err != nil {
			return err
		}
	}
	weekStart, err := weekgrid.ParseWeekStart(o.weekStart)
	if err != nil {
		return err
	}
	model := weekgrid.Model{WeekStart: weekStart}

	p, err := model.PlaceEvent(birth, weekgrid.ExplicitDate{Date: target})
	if err != nil {
		return err
	}
	coords := weekgrid.CoordinatesOf(p.WeekIndex)
	start, end := weekgrid.DateRangeOf(birth, p.WeekIndex)
	stats, err := timeline.ComputeStats(birth, target, o.horizon)
	if err != nil {
		return err
	}
	text := stats.Text(language.English)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Date:\t%s (%s)\n", target, target.In(time.UTC).Weekday())
	fmt.Fprintf(tw, "Week index:\t%d\n", p.WeekIndex)
	fmt.Fprintf(tw, "Position:\t%s, %s, %s\n", weekgrid.DecadeLabel(coords.Decade), coords.YearLabel(), coords.WeekLabel())
	fmt.Fprintf(tw, "Day of week:\t%d (weeks start: %s)\n", p.DayOfWeek, weekStart)
	fmt.Fprintf(tw, "Week dates:\t%s to %s\n", start, end.AddDays(-1))
	fmt.Fprintf(tw, "Age:\t%d\n", weekgrid.AgeAt(p.WeekIndex))
	for i, d := range weekgrid.WeekDates(birth, p.WeekIndex) {
		day, err := model.DayNumber(birth, d)
		if err != nil {
			return err
		}
		label, mark := "", ""
		if i == 0 {
			label = "Days:"
		}
		if d == target {
			mark = " <"
		}
		fmt.Fprintf(tw, "%s\t%s %s  day %d%s\n", label, d, d.In(time.UTC).Weekday().String()[:3], day, mark)
	}
	fmt.Fprintf(tw, "Weeks lived:\t%s %s\n", text.WeeksLived, text.YearsLived)
	fmt.Fprintf(tw, "Weeks left:\t%s %s, %s\n", text.WeeksRemaining, text.YearsRemaining, text.Horizon)
	fmt.Fprintf(tw, "Progress:\t%s\n", text.Progress)
	return tw.Flush()
}
