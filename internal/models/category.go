package models

// Category groups events; its ID is stored as the event icon.
type Category struct {
	ID          string
	Name        string
	Description string
	Color       string
}

// Categories is the fixed catalogue offered when adding an event.
var Categories = []Category{
	{
		ID:          "personal",
		Name:        "Personal & Relationships",
		Description: "Family, friends, relationships, and personal milestones",
		Color:       "#EC4899",
	},
	{
		ID:          "career",
		Name:        "Career & Education",
		Description: "Work, studies, and professional achievements",
		Color:       "#3B82F6",
	},
	{
		ID:          "growth",
		Name:        "Personal Growth",
		Description: "Learning, hobbies, and self-improvement",
		Color:       "#10B981",
	},
	{
		ID:          "experiences",
		Name:        "Experiences & Travel",
		Description: "Travel, adventures, and memorable experiences",
		Color:       "#F59E0B",
	},
}

// DefaultCategory is preselected for new events.
var DefaultCategory = Categories[0]

// CategoryByID looks up a category.
func CategoryByID(id string) (Category, bool) {
	for _, c := range Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}
