package main

import (
	"errors"
	"net/http"

	"github.com/HitsujiNeko/BulkCart/internal/domain"
)

// getGroceryListHandler godoc
//
//	@Summary		Get grocery list
//	@Description	Aggregates the plan's recipes into a categorized, priced shopping list
//	@Tags			grocery
//	@Produce		json
//	@Param			plan_id	path		string	true	"Plan ID"
//	@Success		200		{object}	domain.GroceryList
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/plans/{plan_id}/grocery [get]
func (app *application) getGroceryListHandler(w http.ResponseWriter, r *http.Request) {
	planID, ok := app.planIDParam(w, r)
	if !ok {
		return
	}

	list, err := app.groceryService.BuildGroceryList(r.Context(), planID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, list); err != nil {
		app.internalServerError(w, r, err)
	}
}
