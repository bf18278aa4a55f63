package api

// Event is an annotation on a week cell. Date is the calendar date the
// placement stands for under the owner's settings.
type Event struct {
	ID          string   `json:"id"`
	WeekIndex   int      `json:"week_index"`
	DayOfWeek   int      `json:"day_of_week"`
	Date        string   `json:"date"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Icon        string   `json:"icon"`
	Color       string   `json:"color"`
	Tags        []string `json:"tags"`
	CreatedAt   int64    `json:"created_at"`
	UpdatedAt   int64    `json:"updated_at"`
}

// Placement selects a cell either by calendar Date or by WeekIndex and
// DayOfWeek. Date wins when both are given.
type Placement struct {
	Date      string `json:"date,omitempty"`
	WeekIndex *int   `json:"week_index,omitempty"`
	DayOfWeek *int   `json:"day_of_week,omitempty"`
}

type CreateEventRequest struct {
	Placement
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Icon        string   `json:"icon,omitempty"`
	Color       string   `json:"color,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type CreateEventResponse struct {
	Event *Event `json:"event"`
}

// UpdateEventRequest changes the fields that are set. Tags are replaced
// only when present; an empty list clears them.
type UpdateEventRequest struct {
	Placement
	ID          string    `json:"id"`
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Icon        *string   `json:"icon,omitempty"`
	Color       *string   `json:"color,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
}

type UpdateEventResponse struct {
	Event *Event `json:"event"`
}

type GetEventRequest struct {
	ID string `json:"id"`
}

type GetEventResponse struct {
	Event *Event `json:"event"`
}

type DeleteEventRequest struct {
	ID string `json:"id"`
}

type DeleteEventResponse struct{}

// ListEventsRequest filters the caller's events. Ordering is week_index,
// day_of_week or created_at, optionally prefixed with "-".
type ListEventsRequest struct {
	WeekIndex *int   `json:"week_index,omitempty"`
	DayOfWeek *int   `json:"day_of_week,omitempty"`
	Search    string `json:"search,omitempty"`
	Category  string `json:"category,omitempty"`
	Tag       string `json:"tag,omitempty"`
	Ordering  string `json:"ordering,omitempty"`
	Limit     int    `json:"limit,omitempty"`
}

type ListEventsResponse struct {
	Events []*Event `json:"events"`
	Count  int      `json:"count"`
}

// WeekRangeRequest selects events with StartWeek <= week_index <= EndWeek.
// Both bounds are required.
type WeekRangeRequest struct {
	StartWeek *int `json:"start_week,omitempty"`
	EndWeek   *int `json:"end_week,omitempty"`
}

type WeekRangeResponse struct {
	Events []*Event `json:"events"`
}

type PlaceEventRequest struct {
	Placement
}

// PlaceEventResponse resolves a placement without storing anything.
type PlaceEventResponse struct {
	WeekIndex int    `json:"week_index"`
	DayOfWeek int    `json:"day_of_week"`
	Date      string `json:"date"`
	WeekStart string `json:"week_start"`
	WeekLabel string `json:"week_label"`
	YearLabel string `json:"year_label"`
}

// Category is one entry of the fixed event catalogue.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

type ListCategoriesRequest struct{}

type ListCategoriesResponse struct {
	Categories []Category `json:"categories"`
}

type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ListTagsRequest struct {
	Search string `json:"search,omitempty"`
}

type ListTagsResponse struct {
	Tags []Tag `json:"tags"`
}
