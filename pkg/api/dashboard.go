package api

// Stats summarizes a life against its horizon.
type Stats struct {
	HorizonYears   int     `json:"horizon_years"`
	WeeksLived     int     `json:"weeks_lived"`
	TotalWeeks     int     `json:"total_weeks"`
	WeeksRemaining int     `json:"weeks_remaining"`
	Progress       float64 `json:"progress"`
	YearsLived     float64 `json:"years_lived"`
	YearsRemaining float64 `json:"years_remaining"`
}

type GetDashboardRequest struct{}

type GetDashboardResponse struct {
	Username     string   `json:"username"`
	Email        string   `json:"email,omitempty"`
	RecentEvents []*Event `json:"recent_events"`
	Tags         []Tag    `json:"tags"`
	TotalEvents  int      `json:"total_events"`
	TotalTags    int      `json:"total_tags"`
	Stats        *Stats   `json:"stats"`
}

// Cell is one week of a decade panel.
type Cell struct {
	WeekIndex  int      `json:"week_index"`
	Lived      bool     `json:"lived"`
	Current    bool     `json:"current,omitempty"`
	YearOfLife int      `json:"year_of_life"`
	WeekInYear int      `json:"week_in_year"`
	Color      string   `json:"color,omitempty"`
	EventIDs   []string `json:"event_ids,omitempty"`
}

type GetDecadeRequest struct {
	DecadeIndex int `json:"decade_index"`
}

type GetDecadeResponse struct {
	DecadeIndex   int      `json:"decade_index"`
	Label         string   `json:"label"`
	WeeksLived    int      `json:"weeks_lived"`
	LivedInDecade int      `json:"lived_in_decade"`
	Cells         []Cell   `json:"cells"`
	Events        []*Event `json:"events"`
}
