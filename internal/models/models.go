// Package models defines the data records stored and returned by CoffeeTime.
package models

import "time"

// User is a registered account. PasswordHash holds an encoded digest produced
// by a cryptox.PasswordHasher; DisplayName is optional.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	DisplayName  string
}

// Name returns the display name, falling back to the username.
func (u User) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}

// Recipe is a catalog entry. Image is a file name resolved against the assets
// directory by the presentation layer.
type Recipe struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Ingredients string `json:"ingredients"`
	Steps       string `json:"steps"`
	Image       string `json:"image"`
}

// RecipeSummary is the (id, name) pair used in listings.
type RecipeSummary struct {
	ID   int64
	Name string
}

func (r RecipeSummary) String() string {
	return r.Name
}

// Favorite associates a user with a recipe, at most once per pair.
type Favorite struct {
	UserID    int64
	RecipeID  int64
	CreatedAt time.Time
}
