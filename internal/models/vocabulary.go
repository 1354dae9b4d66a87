// vocabulary.go
//
// Drink Trail, a dashboard service for recording trails, locations and drinks
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of drink-trail.
// drink-trail is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// drink-trail is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with drink-trail.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package models

import "slices"

// DrinkCategory is the top level drink classification
type DrinkCategory string

const (
	CategoryBeer      DrinkCategory = "beer"
	CategoryCocktail  DrinkCategory = "cocktail"
	CategorySoftDrink DrinkCategory = "soft-drink"
)

// DrinkSize is one of the fixed volume labels
type DrinkSize string

const (
	Size200ml DrinkSize = "0.2L"
	Size330ml DrinkSize = "0.33L"
	Size500ml DrinkSize = "0.5L"
	Size1L    DrinkSize = "1L"
)

var DrinkCategories = []DrinkCategory{CategoryBeer, CategoryCocktail, CategorySoftDrink}

var DrinkSizes = []DrinkSize{Size200ml, Size330ml, Size500ml, Size1L}

var BeerTypes = []string{
	"Agustiner",
	"Berliner Kindl",
	"Bitburger",
	"Kölsch",
	"Erdinger",
	"Franziskaner",
	"Krombacher",
	"Paulaner",
	"Warsteiner",
}

var CocktailTypes = []string{
	"Mojito",
	"Margarita",
	"Aperol Spritz",
	"Limoncello Spritz",
	"Pina Colada",
	"Cosmopolitan",
	"Old Fashioned",
	"Negroni",
}

var SoftDrinkTypes = []string{
	"Cola",
	"Sprite",
	"Orange Juice",
	"Apple Juice",
}

// Alcohol by volume, as a fraction
var BeerAlcoholPercentage = map[string]float64{
	"Agustiner":      0.052,
	"Berliner Kindl": 0.05,
	"Bitburger":      0.048,
	"Kölsch":         0.048,
	"Erdinger":       0.055,
	"Franziskaner":   0.054,
	"Krombacher":     0.049,
	"Paulaner":       0.051,
	"Warsteiner":     0.049,
}

var CocktailAlcoholPercentage = map[string]float64{
	"Mojito":            0.13,
	"Margarita":         0.15,
	"Aperol Spritz":     0.11,
	"Limoncello Spritz": 0.12,
	"Pina Colada":       0.17,
	"Cosmopolitan":      0.2,
	"Old Fashioned":     0.32,
	"Negroni":           0.24,
}

func (c DrinkCategory) Valid() bool {
	return slices.Contains(DrinkCategories, c)
}

// SourceField names the form field that carries the specific type for this category
func (c DrinkCategory) SourceField() string {
	switch c {
	case CategoryBeer:
		return "beerType"
	case CategoryCocktail:
		return "cocktailType"
	case CategorySoftDrink:
		return "softDrinkType"
	}
	return ""
}

// Label is the human facing category name
func (c DrinkCategory) Label() string {
	switch c {
	case CategoryBeer:
		return "Beer"
	case CategoryCocktail:
		return "Cocktail"
	case CategorySoftDrink:
		return "Soft Drink"
	}
	return string(c)
}

// Types returns the specific type vocabulary of the category
func (c DrinkCategory) Types() []string {
	switch c {
	case CategoryBeer:
		return BeerTypes
	case CategoryCocktail:
		return CocktailTypes
	case CategorySoftDrink:
		return SoftDrinkTypes
	}
	return nil
}

func (c DrinkCategory) HasType(specificType string) bool {
	return slices.Contains(c.Types(), specificType)
}

// AlcoholPercentage looks up the alcohol fraction of a specific type, zero when unknown
func (c DrinkCategory) AlcoholPercentage(specificType string) float64 {
	switch c {
	case CategoryBeer:
		return BeerAlcoholPercentage[specificType]
	case CategoryCocktail:
		return CocktailAlcoholPercentage[specificType]
	}
	return 0
}

func (s DrinkSize) Valid() bool {
	return slices.Contains(DrinkSizes, s)
}
