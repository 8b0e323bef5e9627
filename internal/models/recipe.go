package models

import "time"

// Recipe is the result of a single generation
type Recipe struct {
	ID           string              `json:"id"`
	Title        string              `json:"title"`
	Text         string              `json:"text"`
	Ingredients  []string            `json:"ingredients"`
	Restrictions DietaryRestrictions `json:"restrictions"`
	GeneratedAt  time.Time           `json:"generated_at"`
}

// GetID lets output formatters print just the identifier in quiet mode
func (r *Recipe) GetID() string {
	return r.ID
}
