package service

import (
	"github.com/mmynk/lifecubes/internal/models"
	"github.com/mmynk/lifecubes/internal/timeline"
	"github.com/mmynk/lifecubes/internal/weekgrid"
	"github.com/mmynk/lifecubes/pkg/api"
)

func toAPIUser(u *models.User, p *models.Profile) *api.User {
	out := &api.User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
	}
	if p != nil {
		out.BirthDate = p.BirthDate.String()
	}
	return out
}

func toAPIProfile(p *models.Profile, weeksLived int) *api.Profile {
	return &api.Profile{
		UserID:     p.UserID,
		BirthDate:  p.BirthDate.String(),
		WeeksLived: weeksLived,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func toAPISettings(s *models.Settings) api.Settings {
	return api.Settings{
		Theme:     string(s.Theme),
		WeekStart: s.WeekStart.String(),
	}
}

func toAPIEvent(e *models.Event, life lifeContext) *api.Event {
	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}
	return &api.Event{
		ID:          e.ID,
		WeekIndex:   e.WeekIndex,
		DayOfWeek:   e.DayOfWeek,
		Date:        life.model().DateOf(life.birth, e.Placement()).String(),
		Title:       e.Title,
		Description: e.Description,
		Icon:        e.Icon,
		Color:       e.Color,
		Tags:        tags,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func toAPIEvents(events []models.Event, life lifeContext) []*api.Event {
	out := make([]*api.Event, len(events))
	for i := range events {
		out[i] = toAPIEvent(&events[i], life)
	}
	return out
}

func toAPITags(tags []models.Tag) []api.Tag {
	out := make([]api.Tag, len(tags))
	for i, t := range tags {
		out[i] = api.Tag{ID: t.ID, Name: t.Name}
	}
	return out
}

func toAPIStats(s timeline.Stats) *api.Stats {
	return &api.Stats{
		HorizonYears:   s.HorizonYears,
		WeeksLived:     s.WeeksLived,
		TotalWeeks:     s.TotalWeeks,
		WeeksRemaining: s.WeeksRemaining,
		Progress:       s.Progress,
		YearsLived:     s.YearsLived,
		YearsRemaining: s.YearsRemaining,
	}
}

func toAPICategories() []api.Category {
	out := make([]api.Category, len(models.Categories))
	for i, c := range models.Categories {
		out[i] = api.Category{ID: c.ID, Name: c.Name, Description: c.Description, Color: c.Color}
	}
	return out
}

func toAPICell(c timeline.GridCell, currentWeek int) api.Cell {
	coords := c.Coordinates()
	cell := api.Cell{
		WeekIndex:  c.WeekIndex,
		Lived:      c.Lived,
		Current:    c.WeekIndex == currentWeek,
		YearOfLife: coords.YearOfLife(),
		WeekInYear: coords.WeekInYear + 1,
	}
	if color, ok := c.Color(); ok {
		cell.Color = color
	}
	for _, e := range c.Events {
		cell.EventIDs = append(cell.EventIDs, e.ID)
	}
	return cell
}

func toAPIPlacement(p weekgrid.Placement, life lifeContext) *api.PlaceEventResponse {
	coords := weekgrid.CoordinatesOf(p.WeekIndex)
	return &api.PlaceEventResponse{
		WeekIndex: p.WeekIndex,
		DayOfWeek: p.DayOfWeek,
		Date:      life.model().DateOf(life.birth, p).String(),
		WeekStart: life.settings.WeekStart.String(),
		WeekLabel: coords.WeekLabel(),
		YearLabel: coords.YearLabel(),
	}
}
