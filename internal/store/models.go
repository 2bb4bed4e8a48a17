package store

// Resource models for the demo dataset. JSON tags define the REST wire
// shape; YAML tags bind the embedded seed file.

type Character struct {
	ID                string   `json:"id" yaml:"id"`
	Name              string   `json:"name" yaml:"name"`
	Role              string   `json:"role" yaml:"role"`
	TeamID            string   `json:"team_id,omitempty" yaml:"team_id"`
	DateOfBirth       string   `json:"date_of_birth,omitempty" yaml:"date_of_birth"`
	Email             string   `json:"email,omitempty" yaml:"email"`
	ProfileImageURL   string   `json:"profile_image_url,omitempty" yaml:"profile_image_url"`
	SalaryGBP         string   `json:"salary_gbp,omitempty" yaml:"salary_gbp"`
	HeightMeters      float64  `json:"height_meters,omitempty" yaml:"height_meters"`
	Background        string   `json:"background" yaml:"background"`
	PersonalityTraits []string `json:"personality_traits" yaml:"personality_traits"`
	SignatureQuotes   []string `json:"signature_quotes" yaml:"signature_quotes"`
}

type Team struct {
	ID                string  `json:"id" yaml:"id"`
	Name              string  `json:"name" yaml:"name"`
	Nickname          string  `json:"nickname,omitempty" yaml:"nickname"`
	Stadium           string  `json:"stadium" yaml:"stadium"`
	League            string  `json:"league" yaml:"league"`
	FoundedYear       int     `json:"founded_year" yaml:"founded_year"`
	Website           string  `json:"website,omitempty" yaml:"website"`
	ContactEmail      string  `json:"contact_email,omitempty" yaml:"contact_email"`
	AnnualBudgetGBP   string  `json:"annual_budget_gbp,omitempty" yaml:"annual_budget_gbp"`
	AverageAttendance float64 `json:"average_attendance,omitempty" yaml:"average_attendance"`
	WinPercentage     float64 `json:"win_percentage,omitempty" yaml:"win_percentage"`
	CultureScore      int     `json:"culture_score" yaml:"culture_score"`
	IsActive          bool    `json:"is_active" yaml:"is_active"`
	TeamMotto         string  `json:"team_motto,omitempty" yaml:"team_motto"`
}

type Match struct {
	ID             string  `json:"id" yaml:"id"`
	HomeTeamID     string  `json:"home_team_id" yaml:"home_team_id"`
	AwayTeamID     string  `json:"away_team_id" yaml:"away_team_id"`
	HomeScore      int     `json:"home_score" yaml:"home_score"`
	AwayScore      int     `json:"away_score" yaml:"away_score"`
	KickoffAt      string  `json:"kickoff_at" yaml:"kickoff_at"`
	MatchType      string  `json:"match_type" yaml:"match_type"` // league, cup, friendly, playoff, final
	Attendance     int     `json:"attendance,omitempty" yaml:"attendance"`
	PossessionHome float64 `json:"possession_home,omitempty" yaml:"possession_home"`
	TurningPoint   string  `json:"turning_point,omitempty" yaml:"turning_point"`
	LessonLearned  string  `json:"lesson_learned,omitempty" yaml:"lesson_learned"`
}

type Episode struct {
	ID             string  `json:"id" yaml:"id"`
	Title          string  `json:"title" yaml:"title"`
	Season         int     `json:"season" yaml:"season"`
	EpisodeNumber  int     `json:"episode_number" yaml:"episode_number"`
	AirDate        string  `json:"air_date" yaml:"air_date"`
	ViewerRating   float64 `json:"viewer_rating,omitempty" yaml:"viewer_rating"`
	Synopsis       string  `json:"synopsis" yaml:"synopsis"`
	TedsWisdom     string  `json:"teds_wisdom,omitempty" yaml:"teds_wisdom"`
}

type Quote struct {
	ID              string  `json:"id" yaml:"id"`
	Text            string  `json:"text" yaml:"text"`
	CharacterID     string  `json:"character_id" yaml:"character_id"`
	EpisodeID       string  `json:"episode_id,omitempty" yaml:"episode_id"`
	Context         string  `json:"context,omitempty" yaml:"context"`
	Theme           string  `json:"theme,omitempty" yaml:"theme"`
	IsInspirational bool    `json:"is_inspirational" yaml:"is_inspirational"`
	IsFunny         bool    `json:"is_funny" yaml:"is_funny"`
	PopularityScore float64 `json:"popularity_score,omitempty" yaml:"popularity_score"`
	TimesShared     int     `json:"times_shared,omitempty" yaml:"times_shared"`
}
