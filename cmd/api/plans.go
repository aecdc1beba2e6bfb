package main

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/HitsujiNeko/BulkCart/internal/domain"
	"github.com/HitsujiNeko/BulkCart/internal/planner"
	"github.com/go-chi/chi"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GeneratePlanRequest struct {
	WeekStartDate string `json:"week_start_date" validate:"omitempty,datetime=2006-01-02"`
}

type GeneratePlanResponse struct {
	Plan    *domain.Plan `json:"plan"`
	Message string       `json:"message"`
}

// generatePlanHandler godoc
//
//	@Summary		Generate weekly plan
//	@Description	Generates a 7-day, 2-meals-per-day plan for the user
//	@Tags			plans
//	@Accept			json
//	@Produce		json
//	@Param			X-User-ID	header		string				true	"User ID"
//	@Param			request		body		GeneratePlanRequest	false	"Generation request"
//	@Success		201			{object}	GeneratePlanResponse
//	@Failure		400			{object}	map[string]string
//	@Failure		401			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Failure		422			{object}	map[string]string
//	@Failure		500			{object}	map[string]string
//	@Router			/plans [post]
func (app *application) generatePlanHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-ID")
	if userID == "" {
		app.unauthorizedErrorResponse(w, r, errors.New("missing X-User-ID header"))
		return
	}

	var req GeneratePlanRequest
	if r.ContentLength > 0 {
		if err := readJson(w, r, &req); err != nil {
			app.badRequestResponse(w, r, err)
			return
		}

		if err := Validate.Struct(req); err != nil {
			app.badRequestResponse(w, r, err)
			return
		}
	}

	// default to the Monday of the current week
	weekStartDate := req.WeekStartDate
	if weekStartDate == "" {
		weekStartDate = planner.WeekStartDate(time.Now())
	}

	plan, err := app.planService.GeneratePlan(r.Context(), userID, weekStartDate)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			app.badRequestResponse(w, r, err)
		case errors.Is(err, domain.ErrGenerationFailed):
			app.unprocessableEntityResponse(w, r, err)
		case errors.Is(err, domain.ErrNotFound):
			app.notFoundError(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	response := GeneratePlanResponse{
		Plan: plan,
		Message: fmt.Sprintf("献立生成完了: %dレシピ（週合計 P: %.1fg, Calories: %dkcal）",
			len(plan.Items), plan.TotalProteinG, plan.TotalCalories),
	}

	if err := app.jsonRespone(w, http.StatusCreated, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getPlanHandler godoc
//
//	@Summary		Get plan by ID
//	@Description	Get a plan with its 14 items
//	@Tags			plans
//	@Produce		json
//	@Param			plan_id	path		string	true	"Plan ID"
//	@Success		200		{object}	domain.Plan
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/plans/{plan_id} [get]
func (app *application) getPlanHandler(w http.ResponseWriter, r *http.Request) {
	planID, ok := app.planIDParam(w, r)
	if !ok {
		return
	}

	plan, err := app.planService.GetPlan(r.Context(), planID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, plan); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) planIDParam(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	planIDStr := chi.URLParam(r, "plan_id")
	if planIDStr == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return primitive.NilObjectID, false
	}

	planID, err := primitive.ObjectIDFromHex(planIDStr)
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return primitive.NilObjectID, false
	}

	return planID, true
}
