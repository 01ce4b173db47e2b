package entity

// ActivityStats are the dashboard aggregates.
type ActivityStats struct {
	TotalActivities int     `json:"total_activities"`
	TotalHours      float64 `json:"total_hours"`
	TotalDistance   float64 `json:"total_distance"`
	HoursThisYear   float64 `json:"hours_this_year"`

	WeeklyActivity  []WeeklyBucket   `json:"weekly_activity"`
	WeatherPatterns []WeatherPattern `json:"weather_patterns"`
}

// WeeklyBucket is one week of activity counts, last 12 weeks.
type WeeklyBucket struct {
	Week  string `json:"week"`
	Count int    `json:"count"`
}

// WeatherPattern is the share of activities logged under one condition.
type WeatherPattern struct {
	Condition  string `json:"condition"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}
