package api

// Profile carries the birth date the grid is drawn from.
type Profile struct {
	UserID     string `json:"user_id"`
	BirthDate  string `json:"birth_date"`
	WeeksLived int    `json:"weeks_lived"`
	CreatedAt  int64  `json:"created_at"`
	UpdatedAt  int64  `json:"updated_at"`
}

type GetProfileRequest struct{}

type GetProfileResponse struct {
	User    *User    `json:"user"`
	Profile *Profile `json:"profile"`
}

// UpdateProfileRequest changes the fields that are set.
type UpdateProfileRequest struct {
	BirthDate *string `json:"birth_date,omitempty"`
	Email     *string `json:"email,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

type UpdateProfileResponse struct {
	User    *User    `json:"user"`
	Profile *Profile `json:"profile"`
}

// Settings are display preferences. WeekStart is "birthday" or a lowercase
// English weekday.
type Settings struct {
	Theme     string `json:"theme"`
	WeekStart string `json:"week_start"`
}

type GetSettingsRequest struct{}

type GetSettingsResponse struct {
	Settings Settings `json:"settings"`
}

// UpdateSettingsRequest changes the fields that are set.
type UpdateSettingsRequest struct {
	Theme     *string `json:"theme,omitempty"`
	WeekStart *string `json:"week_start,omitempty"`
}

type UpdateSettingsResponse struct {
	Settings Settings `json:"settings"`
}
