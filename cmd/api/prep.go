package main

import (
	"errors"
	"net/http"

	"github.com/HitsujiNeko/BulkCart/internal/domain"
)

// getPrepTimelineHandler godoc
//
//	@Summary		Get prep timeline
//	@Description	Builds a Sunday batch-cooking schedule for the plan's batchable recipes
//	@Tags			prep
//	@Produce		json
//	@Param			plan_id	path		string	true	"Plan ID"
//	@Success		200		{object}	domain.PrepTimeline
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/plans/{plan_id}/prep [get]
func (app *application) getPrepTimelineHandler(w http.ResponseWriter, r *http.Request) {
	planID, ok := app.planIDParam(w, r)
	if !ok {
		return
	}

	timeline, err := app.prepService.BuildPrepTimeline(r.Context(), planID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, timeline); err != nil {
		app.internalServerError(w, r, err)
	}
}
