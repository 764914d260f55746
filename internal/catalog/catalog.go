// Package catalog provides the recipe fixture seeded into an empty store:
// the built-in list of coffee recipes or a JSON file with the same shape.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/coffeetime/internal/common"
	"github.com/dmitrijs2005/coffeetime/internal/models"
)

// Default returns a fresh copy of the built-in recipes.
func Default() []models.Recipe {
	return []models.Recipe{
		{
			Name:        "Café Latte",
			Description: "Smooth coffee with frothed milk.",
			Ingredients: "Espresso\nWhole milk\nMilk foam",
			Steps:       "1. Brew the espresso.\n2. Heat the milk.\n3. Add the foam and serve.",
			Image:       "latte.jpg",
		},
		{
			Name:        "Capuccino",
			Description: "Espresso with equal parts milk and foam.",
			Ingredients: "Espresso\nMilk\nCocoa powder",
			Steps:       "1. Brew the espresso.\n2. Add hot milk and foam.\n3. Dust with cocoa.",
			Image:       "capuccino.jpg",
		},
		{
			Name:        "Moka",
			Description: "Coffee with milk and chocolate.",
			Ingredients: "Espresso\nMilk\nChocolate powder\nSugar to taste",
			Steps:       "1. Brew the espresso.\n2. Heat the milk with the chocolate.\n3. Mix and serve hot.",
			Image:       "moka.jpg",
		},
	}
}

// LoadFile reads a JSON array of recipes from path. Ids in the file are
// ignored; the store assigns them.
func LoadFile(path string) ([]models.Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read recipe fixture: %w", err)
	}

	var list []models.Recipe
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("decode recipe fixture %s: %w", path, err)
	}

	for i := range list {
		list[i].ID = 0
		if strings.TrimSpace(list[i].Name) == "" {
			return nil, fmt.Errorf("recipe #%d has no name: %w", i+1, common.ErrorValidation)
		}
	}
	return list, nil
}

// Load returns the fixture from path, or Default when path is empty.
func Load(path string) ([]models.Recipe, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
