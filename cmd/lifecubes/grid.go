package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"cloud.google.com/go/civil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mmynk/lifecubes/internal/render"
	"github.com/mmynk/lifecubes/internal/storage"
	"github.com/mmynk/lifecubes/internal/storage/sqlite"
	"github.com/mmynk/lifecubes/internal/timeline"
	"github.com/mmynk/lifecubes/internal/weekgrid"
)

type gridOptions struct {
	birth       string
	now         string
	decade      int
	all         bool
	weekStart   string
	horizon     int
	username    string
	interactive bool
}

// life is what a grid is drawn from.
type life struct {
	birth  civil.Date
	model  weekgrid.Model
	events *timeline.EventSet
}

func newGridCmd(root *rootOptions) *cobra.Command {
	opts := &gridOptions{}
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Draw decade panels of the week grid",
		Example: `  lifecubes grid --birth 1990-01-01
  lifecubes grid --birth 1990-01-01 --decade 2 --now 2020-12-01
  lifecubes grid --user alice --interactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := opts.load(cmd.Context(), root)
			if err != nil {
				return err
			}
			today := weekgrid.Today(time.Now())
			if opts.now != "" {
				if today, err = weekgrid.ParseDate(opts.now); err != nil {
					return err
				}
			}
			if opts.interactive {
				return opts.browse(l, today)
			}
			return opts.print(cmd.OutOrStdout(), l, today)
		},
	}
	cmd.Flags().StringVar(&opts.birth, "birth", "", "birth date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.now, "now", "", "date treated as today")
	cmd.Flags().IntVar(&opts.decade, "decade", -1, "decade panel to draw (default: the current one)")
	cmd.Flags().BoolVar(&opts.all, "all", false, "draw every decade of the horizon")
	cmd.Flags().StringVar(&opts.weekStart, "week-start", "birthday", `"birthday" or the weekday weeks start on`)
	cmd.Flags().IntVar(&opts.horizon, "horizon", weekgrid.DefaultHorizonYears, "life expectancy in years")
	cmd.Flags().StringVar(&opts.username, "user", "", "draw a stored user's grid and events from the database")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "browse the grid with the keyboard")
	cmd.MarkFlagsOneRequired("birth", "user")
	cmd.MarkFlagsMutuallyExclusive("birth", "user")
	return cmd
}

func (o *gridOptions) load(ctx context.Context, root *rootOptions) (life, error) {
	if o.username == "" {
		birth, err := weekgrid.ParseDate(o.birth)
		if err != nil {
			return life{}, err
		}
		weekStart, err := weekgrid.ParseWeekStart(o.weekStart)
		if err != nil {
			return life{}, err
		}
		return life{birth: birth, model: weekgrid.Model{WeekStart: weekStart}}, nil
	}

	cfg, err := root.load()
	if err != nil {
		return life{}, err
	}
	store, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		return life{}, err
	}
	defer store.Close()
	return loadLife(ctx, store, o.username)
}

func loadLife(ctx context.Context, store storage.Store, username string) (life, error) {
	user, err := store.GetUserByUsername(ctx, username)
	if err != nil {
		return life{}, fmt.Errorf("user %q: %w", username, err)
	}
	profile, err := store.GetProfile(ctx, user.ID)
	if err != nil {
		return life{}, err
	}
	settings, err := store.GetSettings(ctx, user.ID)
	if err != nil {
		return life{}, err
	}
	events, err := store.ListEvents(ctx, user.ID, storage.EventQuery{})
	if err != nil {
		return life{}, err
	}
	return life{
		birth:  profile.BirthDate,
		model:  settings.Model(),
		events: timeline.NewEventSet(events...),
	}, nil
}

func (o *gridOptions) print(w io.Writer, l life, today civil.Date) error {
	lived, err := weekgrid.WeeksLived(l.birth, today)
	if err != nil {
		return err
	}
	count := weekgrid.DecadeCount(o.horizon)
	if count == 0 {
		return fmt.Errorf("horizon must be positive, got %d", o.horizon)
	}

	var decades []int
	switch {
	case o.all:
		for d := range count {
			decades = append(decades, d)
		}
	case o.decade >= 0:
		if o.decade >= count {
			return fmt.Errorf("decade %d outside 0..%d", o.decade, count-1)
		}
		decades = []int{o.decade}
	default:
		decades = []int{min(weekgrid.DecadeOf(weekgrid.ClampWeeks(lived)), count-1)}
	}

	styles := render.NewStyles(nil)
	for _, d := range decades {
		panel := styles.Render(render.Panel{Decade: d, WeeksLived: lived, Events: l.events, Cursor: -1})
		if _, err := fmt.Fprintln(w, panel); err != nil {
			return err
		}
	}
	return nil
}

func (o *gridOptions) browse(l life, today civil.Date) error {
	lived, err := weekgrid.WeeksLived(l.birth, today)
	if err != nil {
		return err
	}
	browser := render.NewBrowser(render.NewStyles(nil), l.birth, l.model, l.events, lived, o.horizon)
	_, err = tea.NewProgram(browser, tea.WithAltScreen()).Run()
	return err
}
