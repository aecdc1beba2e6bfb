package parser

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/HitsujiNeko/BulkCart/internal/domain"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// GoogleSheetsCatalogParser reads the recipe catalog from a spreadsheet with
// an "ingredients" sheet and a "recipes" sheet.
//
// ingredients columns: id, name, aliases (JSON array), category, unit,
// avg_price_per_unit.
// recipes columns: id, name, protein_g, fat_g, carb_g, calories,
// cooking_time, difficulty, tags (JSON array),
// ingredients ("id:amount:unit|id:amount:unit|..."), description.
type GoogleSheetsCatalogParser struct {
	service *sheets.Service
}

type Config struct {
	CredentialsJSON []byte
}

func New(cfg Config) (*GoogleSheetsCatalogParser, error) {
	ctx := context.Background()

	service, err := sheets.NewService(ctx, option.WithCredentialsJSON(cfg.CredentialsJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &GoogleSheetsCatalogParser{
		service: service,
	}, nil
}

func (p *GoogleSheetsCatalogParser) ParseCatalog(ctx context.Context, spreadsheetID string) ([]domain.Ingredient, []domain.Recipe, error) {
	ingredients, err := p.parseIngredients(ctx, spreadsheetID)
	if err != nil {
		return nil, nil, err
	}

	recipes, err := p.parseRecipes(ctx, spreadsheetID)
	if err != nil {
		return nil, nil, err
	}

	return ingredients, recipes, nil
}

func (p *GoogleSheetsCatalogParser) parseIngredients(ctx context.Context, spreadsheetID string) ([]domain.Ingredient, error) {
	resp, err := p.service.Spreadsheets.Values.Get(spreadsheetID, "ingredients!A:F").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read ingredients sheet: %w", err)
	}

	if len(resp.Values) == 0 {
		return nil, fmt.Errorf("no data found in ingredients sheet")
	}

	ingredients := []domain.Ingredient{}

	// skip header
	for i := 1; i < len(resp.Values); i++ {
		row := resp.Values[i]
		if len(row) < 2 || cellString(row, 0) == "" {
			continue
		}

		ingredient := domain.Ingredient{
			ID:       cellString(row, 0),
			Name:     cellString(row, 1),
			Aliases:  parseJSONArray(cellString(row, 2)),
			Category: parseCategory(cellString(row, 3)),
			Unit:     cellString(row, 4),
		}
		if ingredient.Unit == "" {
			ingredient.Unit = "g"
		}

		if priceStr := cellString(row, 5); priceStr != "" {
			if price, err := strconv.Atoi(strings.TrimSpace(priceStr)); err == nil {
				ingredient.AvgPricePerUnit = &price
			}
		}

		ingredients = append(ingredients, ingredient)
	}

	return ingredients, nil
}

func (p *GoogleSheetsCatalogParser) parseRecipes(ctx context.Context, spreadsheetID string) ([]domain.Recipe, error) {
	resp, err := p.service.Spreadsheets.Values.Get(spreadsheetID, "recipes!A:K").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read recipes sheet: %w", err)
	}

	if len(resp.Values) == 0 {
		return nil, fmt.Errorf("no data found in recipes sheet")
	}

	recipes := []domain.Recipe{}

	// skip header
	for i := 1; i < len(resp.Values); i++ {
		row := resp.Values[i]
		if len(row) < 2 || cellString(row, 0) == "" {
			continue
		}

		recipe := domain.Recipe{
			ID:          cellString(row, 0),
			Name:        cellString(row, 1),
			ProteinG:    parseFloatCell(row, 2),
			FatG:        parseFloatCell(row, 3),
			CarbG:       parseFloatCell(row, 4),
			Calories:    parseIntCell(row, 5),
			CookingTime: parseIntCell(row, 6),
			Difficulty:  parseDifficulty(cellString(row, 7)),
			Tags:        parseJSONArray(cellString(row, 8)),
			Ingredients: parseUsages(cellString(row, 9)),
			Description: cellString(row, 10),
		}

		recipes = append(recipes, recipe)
	}

	return recipes, nil
}

func cellString(row []interface{}, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(fmt.Sprintf("%v", row[idx]))
}

func parseFloatCell(row []interface{}, idx int) float64 {
	v, err := strconv.ParseFloat(cellString(row, idx), 64)
	if err != nil {
		return 0
	}
	return v
}

func parseIntCell(row []interface{}, idx int) int {
	v, err := strconv.Atoi(cellString(row, idx))
	if err != nil {
		return 0
	}
	return v
}

func parseJSONArray(cell string) []string {
	if cell == "" {
		return []string{}
	}

	var values []string
	if err := json.Unmarshal([]byte(cell), &values); err != nil {
		// tolerate plain comma-separated cells
		for _, v := range strings.Split(cell, ",") {
			if trimmed := strings.TrimSpace(v); trimmed != "" {
				values = append(values, trimmed)
			}
		}
	}
	return values
}

// parseUsages decodes "ingredient_id:amount:unit" entries joined by "|".
func parseUsages(cell string) []domain.RecipeIngredient {
	usages := []domain.RecipeIngredient{}
	if cell == "" {
		return usages
	}

	for _, entry := range strings.Split(cell, "|") {
		parts := strings.Split(strings.TrimSpace(entry), ":")
		if len(parts) < 2 || parts[0] == "" {
			continue
		}

		amount, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			continue
		}

		unit := "g"
		if len(parts) > 2 && parts[2] != "" {
			unit = parts[2]
		}

		usages = append(usages, domain.RecipeIngredient{
			IngredientID: parts[0],
			Amount:       amount,
			Unit:         unit,
		})
	}

	return usages
}

func parseCategory(cell string) domain.IngredientCategory {
	category := domain.IngredientCategory(cell)
	for _, known := range domain.CategoryOrder {
		if category == known {
			return category
		}
	}
	return domain.CategoryOther
}

func parseDifficulty(cell string) domain.Difficulty {
	switch domain.Difficulty(cell) {
	case domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard:
		return domain.Difficulty(cell)
	default:
		return domain.DifficultyMedium
	}
}
