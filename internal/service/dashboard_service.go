package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/lifecubes/internal/storage"
	"github.com/mmynk/lifecubes/internal/timeline"
	"github.com/mmynk/lifecubes/internal/weekgrid"
	"github.com/mmynk/lifecubes/pkg/api"
	"github.com/mmynk/lifecubes/pkg/api/apiconnect"
)

// RecentEventsLimit is how many events the dashboard lists.
const RecentEventsLimit = 5

var (
	_ apiconnect.DashboardServiceHandler = (*DashboardService)(nil)
	_ apiconnect.GridServiceHandler      = (*GridService)(nil)
)

// DashboardService implements the DashboardService RPC interface.
type DashboardService struct {
	store        storage.Store
	clock        Clock
	horizonYears int
	logger       *slog.Logger
}

// NewDashboardService creates a new DashboardService. horizonYears is the
// life expectancy statistics are computed against.
func NewDashboardService(store storage.Store, clock Clock, horizonYears int, logger *slog.Logger) *DashboardService {
	return &DashboardService{store: store, clock: clock, horizonYears: horizonYears, logger: logger}
}

// GetDashboard summarizes the caller's account.
func (s *DashboardService) GetDashboard(ctx context.Context, req *connect.Request[api.GetDashboardRequest]) (*connect.Response[api.GetDashboardResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, toConnectError(err)
	}
	life, err := loadLifeContext(ctx, s.store, userID)
	if err != nil {
		return nil, toConnectError(err)
	}
	recent, err := s.store.ListEvents(ctx, userID, storage.EventQuery{Ordering: "-created_at", Limit: RecentEventsLimit})
	if err != nil {
		return nil, toConnectError(err)
	}
	total, err := s.store.CountEvents(ctx, userID)
	if err != nil {
		return nil, toConnectError(err)
	}
	tags, err := s.store.ListTags(ctx, userID, "")
	if err != nil {
		return nil, toConnectError(err)
	}
	stats, err := timeline.ComputeStats(life.birth, s.clock.today(), s.horizonYears)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.GetDashboardResponse{
		Username:     user.Username,
		Email:        user.Email,
		RecentEvents: toAPIEvents(recent, life),
		Tags:         toAPITags(tags),
		TotalEvents:  total,
		TotalTags:    len(tags),
		Stats:        toAPIStats(stats),
	}), nil
}

// GridService implements the GridService RPC interface.
type GridService struct {
	store        storage.Store
	clock        Clock
	horizonYears int
	logger       *slog.Logger
}

// NewGridService creates a new GridService drawing horizonYears of weeks.
func NewGridService(store storage.Store, clock Clock, horizonYears int, logger *slog.Logger) *GridService {
	if horizonYears <= 0 {
		horizonYears = weekgrid.DefaultHorizonYears
	}
	return &GridService{store: store, clock: clock, horizonYears: horizonYears, logger: logger}
}

// GetDecade returns the 520 cells of one decade panel with the caller's
// events.
func (s *GridService) GetDecade(ctx context.Context, req *connect.Request[api.GetDecadeRequest]) (*connect.Response[api.GetDecadeResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	decade := req.Msg.DecadeIndex
	if count := weekgrid.DecadeCount(s.horizonYears); decade < 0 || decade >= count {
		return nil, invalidArgument("decade_index %d outside 0..%d", decade, count-1)
	}

	life, err := loadLifeContext(ctx, s.store, userID)
	if err != nil {
		return nil, toConnectError(err)
	}
	current, err := weekgrid.WeeksLived(life.birth, s.clock.today())
	if err != nil {
		return nil, toConnectError(err)
	}

	from := decade * weekgrid.WeeksPerDecade
	to := from + weekgrid.WeeksPerDecade - 1
	events, err := s.store.ListEvents(ctx, userID, storage.EventQuery{
		Filter: timeline.Filter{FromWeek: &from, ToWeek: &to},
	})
	if err != nil {
		return nil, toConnectError(err)
	}

	set := timeline.NewEventSet(events...)
	gridCells := timeline.DecadeCells(set, decade, current)
	cells := make([]api.Cell, len(gridCells))
	for i, c := range gridCells {
		cells[i] = toAPICell(c, current)
	}

	return connect.NewResponse(&api.GetDecadeResponse{
		DecadeIndex:   decade,
		Label:         weekgrid.DecadeLabel(decade),
		WeeksLived:    weekgrid.ClampWeeks(current),
		LivedInDecade: weekgrid.LivedInDecade(decade, current),
		Cells:         cells,
		Events:        toAPIEvents(set.All(), life),
	}), nil
}
