package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/lifecubes/internal/models"
	"github.com/mmynk/lifecubes/internal/storage"
	"github.com/mmynk/lifecubes/internal/timeline"
	"github.com/mmynk/lifecubes/internal/weekgrid"
	"github.com/mmynk/lifecubes/pkg/api"
	"github.com/mmynk/lifecubes/pkg/api/apiconnect"
)

var _ apiconnect.EventServiceHandler = (*EventService)(nil)

// EventService implements the EventService RPC interface.
type EventService struct {
	store  storage.Store
	logger *slog.Logger
}

// NewEventService creates a new EventService with the given storage backend.
func NewEventService(store storage.Store, logger *slog.Logger) *EventService {
	return &EventService{store: store, logger: logger}
}

// resolvePlacement runs event placement for a request. ok is false when the
// request selects no cell at all.
func resolvePlacement(life lifeContext, p api.Placement) (placement weekgrid.Placement, ok bool, err error) {
	var mode weekgrid.Mode
	switch {
	case p.Date != "":
		explicit, err := weekgrid.ParseExplicitDate(p.Date)
		if err != nil {
			return weekgrid.Placement{}, false, err
		}
		mode = explicit
	case p.WeekIndex != nil:
		day := 0
		if p.DayOfWeek != nil {
			day = *p.DayOfWeek
		}
		mode = weekgrid.WeekAndDay{WeekIndex: *p.WeekIndex, DayOfWeek: day}
	default:
		return weekgrid.Placement{}, false, nil
	}

	placement, err = life.model().PlaceEvent(life.birth, mode)
	if err != nil {
		return weekgrid.Placement{}, false, err
	}
	return placement, true, nil
}

// CreateEvent stores a new event on the cell selected by date or by week
// and day.
func (s *EventService) CreateEvent(ctx context.Context, req *connect.Request[api.CreateEventRequest]) (*connect.Response[api.CreateEventResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("CreateEvent request received", "user_id", userID, "title", req.Msg.Title)

	life, err := loadLifeContext(ctx, s.store, userID)
	if err != nil {
		return nil, toConnectError(err)
	}
	placement, ok, err := resolvePlacement(life, req.Msg.Placement)
	if err != nil {
		return nil, toConnectError(err)
	}
	if !ok {
		return nil, invalidArgument("date or week_index is required")
	}

	event := &models.Event{
		UserID:      userID,
		Title:       req.Msg.Title,
		Description: req.Msg.Description,
		Icon:        req.Msg.Icon,
		Color:       req.Msg.Color,
		Tags:        req.Msg.Tags,
	}
	event.SetPlacement(placement)
	event.Normalize()
	if err := event.Validate(); err != nil {
		return nil, toConnectError(err)
	}

	if err := s.store.CreateEvent(ctx, event); err != nil {
		s.logger.Error("CreateEvent failed", "user_id", userID, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Event created", "event_id", event.ID, "week_index", event.WeekIndex, "day_of_week", event.DayOfWeek)
	return connect.NewResponse(&api.CreateEventResponse{Event: toAPIEvent(event, life)}), nil
}

// UpdateEvent applies a partial update. Tags are replaced only when the
// request carries them.
func (s *EventService) UpdateEvent(ctx context.Context, req *connect.Request[api.UpdateEventRequest]) (*connect.Response[api.UpdateEventResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("UpdateEvent request received", "user_id", userID, "event_id", req.Msg.ID)

	event, err := s.store.GetEvent(ctx, userID, req.Msg.ID)
	if err != nil {
		return nil, toConnectError(err)
	}
	life, err := loadLifeContext(ctx, s.store, userID)
	if err != nil {
		return nil, toConnectError(err)
	}

	msg := req.Msg
	if msg.Placement.Date == "" && msg.Placement.WeekIndex == nil && msg.Placement.DayOfWeek != nil {
		// Moving inside the current week.
		week := event.WeekIndex
		msg.Placement.WeekIndex = &week
	}
	placement, ok, err := resolvePlacement(life, msg.Placement)
	if err != nil {
		return nil, toConnectError(err)
	}
	if ok {
		event.SetPlacement(placement)
	}

	if msg.Title != nil {
		event.Title = *msg.Title
	}
	if msg.Description != nil {
		event.Description = *msg.Description
	}
	if msg.Icon != nil && strings.TrimSpace(*msg.Icon) != event.Icon {
		// A new category brings its color unless the event had a custom one.
		if old, found := models.CategoryByID(event.Icon); found && old.Color == event.Color && msg.Color == nil {
			event.Color = ""
		}
		event.Icon = *msg.Icon
	}
	if msg.Color != nil {
		event.Color = *msg.Color
	}
	if msg.Tags != nil {
		event.Tags = *msg.Tags
	}

	event.Normalize()
	if err := event.Validate(); err != nil {
		return nil, toConnectError(err)
	}
	if err := s.store.UpdateEvent(ctx, event); err != nil {
		s.logger.Error("UpdateEvent failed", "event_id", event.ID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.UpdateEventResponse{Event: toAPIEvent(event, life)}), nil
}

// DeleteEvent removes one of the caller's events.
func (s *EventService) DeleteEvent(ctx context.Context, req *connect.Request[api.DeleteEventRequest]) (*connect.Response[api.DeleteEventResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.store.DeleteEvent(ctx, userID, req.Msg.ID); err != nil {
		return nil, toConnectError(err)
	}

	s.logger.Info("Event deleted", "user_id", userID, "event_id", req.Msg.ID)
	return connect.NewResponse(&api.DeleteEventResponse{}), nil
}

// GetEvent returns one of the caller's events.
func (s *EventService) GetEvent(ctx context.Context, req *connect.Request[api.GetEventRequest]) (*connect.Response[api.GetEventResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	event, err := s.store.GetEvent(ctx, userID, req.Msg.ID)
	if err != nil {
		return nil, toConnectError(err)
	}
	life, err := loadLifeContext(ctx, s.store, userID)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.GetEventResponse{Event: toAPIEvent(event, life)}), nil
}

// ListEvents returns the caller's events matching the filters.
func (s *EventService) ListEvents(ctx context.Context, req *connect.Request[api.ListEventsRequest]) (*connect.Response[api.ListEventsResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.Limit < 0 {
		return nil, invalidArgument("limit must not be negative")
	}

	events, err := s.store.ListEvents(ctx, userID, storage.EventQuery{
		Filter: timeline.Filter{
			Text:      strings.TrimSpace(req.Msg.Search),
			Category:  req.Msg.Category,
			Tag:       req.Msg.Tag,
			WeekIndex: req.Msg.WeekIndex,
			DayOfWeek: req.Msg.DayOfWeek,
		},
		Ordering: req.Msg.Ordering,
		Limit:    req.Msg.Limit,
	})
	if err != nil {
		return nil, toConnectError(err)
	}
	life, err := loadLifeContext(ctx, s.store, userID)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.ListEventsResponse{
		Events: toAPIEvents(events, life),
		Count:  len(events),
	}), nil
}

// WeekRange returns the caller's events between two week indices, inclusive.
func (s *EventService) WeekRange(ctx context.Context, req *connect.Request[api.WeekRangeRequest]) (*connect.Response[api.WeekRangeResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.StartWeek == nil || req.Msg.EndWeek == nil {
		return nil, invalidArgument("start_week and end_week are required")
	}
	if *req.Msg.StartWeek > *req.Msg.EndWeek {
		return nil, invalidArgument("start_week %d is after end_week %d", *req.Msg.StartWeek, *req.Msg.EndWeek)
	}

	events, err := s.store.ListEvents(ctx, userID, storage.EventQuery{
		Filter: timeline.Filter{FromWeek: req.Msg.StartWeek, ToWeek: req.Msg.EndWeek},
	})
	if err != nil {
		return nil, toConnectError(err)
	}
	life, err := loadLifeContext(ctx, s.store, userID)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.WeekRangeResponse{Events: toAPIEvents(events, life)}), nil
}

// PlaceEvent resolves where an event would go without storing it.
func (s *EventService) PlaceEvent(ctx context.Context, req *connect.Request[api.PlaceEventRequest]) (*connect.Response[api.PlaceEventResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	life, err := loadLifeContext(ctx, s.store, userID)
	if err != nil {
		return nil, toConnectError(err)
	}
	placement, ok, err := resolvePlacement(life, req.Msg.Placement)
	if err != nil {
		return nil, toConnectError(err)
	}
	if !ok {
		return nil, invalidArgument("date or week_index is required")
	}

	return connect.NewResponse(toAPIPlacement(placement, life)), nil
}

// ListCategories returns the event catalogue.
func (s *EventService) ListCategories(ctx context.Context, req *connect.Request[api.ListCategoriesRequest]) (*connect.Response[api.ListCategoriesResponse], error) {
	return connect.NewResponse(&api.ListCategoriesResponse{Categories: toAPICategories()}), nil
}
