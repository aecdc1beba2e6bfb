package main

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/HitsujiNeko/BulkCart/internal/domain"
)

// listRecipesHandler godoc
//
//	@Summary		List recipes
//	@Description	Returns the full recipe catalog
//	@Tags			recipes
//	@Produce		json
//	@Success		200	{array}		domain.Recipe
//	@Failure		500	{object}	map[string]string
//	@Router			/recipes [get]
func (app *application) listRecipesHandler(w http.ResponseWriter, r *http.Request) {
	recipes, err := app.catalogService.ListRecipes(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, recipes); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getRecipeHandler godoc
//
//	@Summary		Get recipe
//	@Description	Returns a single recipe by ID
//	@Tags			recipes
//	@Produce		json
//	@Param			recipe_id	path		string	true	"Recipe ID"
//	@Success		200			{object}	domain.Recipe
//	@Failure		404			{object}	map[string]string
//	@Failure		500			{object}	map[string]string
//	@Router			/recipes/{recipe_id} [get]
func (app *application) getRecipeHandler(w http.ResponseWriter, r *http.Request) {
	recipeID := chi.URLParam(r, "recipe_id")
	if recipeID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	recipe, err := app.catalogService.GetRecipe(r.Context(), recipeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, recipe); err != nil {
		app.internalServerError(w, r, err)
	}
}
