package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/HitsujiNeko/BulkCart/internal/domain"
	"github.com/HitsujiNeko/BulkCart/internal/planner"
)

type UpdateProfileRequest struct {
	Goal                domain.Goal `json:"goal" validate:"required,oneof=bulk cut maintain"`
	WeightKG            *float64    `json:"weight_kg" validate:"omitempty,gt=0,lte=300"`
	TrainingDaysPerWeek int         `json:"training_days_per_week" validate:"gte=0,lte=7"`
	CookingTimeWeekday  int         `json:"cooking_time_weekday" validate:"gte=0,lte=240"`
	CookingTimeWeekend  int         `json:"cooking_time_weekend" validate:"gte=0,lte=240"`
	Allergies           []string    `json:"allergies" validate:"max=20,dive,max=50"`
	Dislikes            []string    `json:"dislikes" validate:"max=50,dive,max=50"`
}

type TargetsResponse struct {
	Daily   planner.NutritionTarget `json:"daily"`
	PerMeal planner.NutritionTarget `json:"per_meal"`
	Weekly  planner.NutritionTarget `json:"weekly"`
}

// getProfileHandler godoc
//
//	@Summary		Get user profile
//	@Description	Returns the planning profile for a user
//	@Tags			profiles
//	@Produce		json
//	@Param			user_id	path		string	true	"User ID"
//	@Success		200		{object}	domain.UserProfile
//	@Failure		404		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/profiles/{user_id} [get]
func (app *application) getProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")
	if userID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	profile, err := app.profileRepo.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, profile); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateProfileHandler godoc
//
//	@Summary		Upsert user profile
//	@Description	Creates or replaces the planning profile for a user
//	@Tags			profiles
//	@Accept			json
//	@Produce		json
//	@Param			user_id	path		string					true	"User ID"
//	@Param			payload	body		UpdateProfileRequest	true	"Profile fields"
//	@Success		200		{object}	domain.UserProfile
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/profiles/{user_id} [put]
func (app *application) updateProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")
	if userID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	var req UpdateProfileRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	now := time.Now()
	profile := &domain.UserProfile{
		ID:                  userID,
		Goal:                req.Goal,
		WeightKG:            req.WeightKG,
		TrainingDaysPerWeek: req.TrainingDaysPerWeek,
		CookingTimeWeekday:  req.CookingTimeWeekday,
		CookingTimeWeekend:  req.CookingTimeWeekend,
		Allergies:           req.Allergies,
		Dislikes:            req.Dislikes,
		UpdatedAt:           now,
	}

	if err := app.profileRepo.Upsert(r.Context(), profile); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, profile); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getTargetsHandler godoc
//
//	@Summary		Get nutrition targets
//	@Description	Returns daily, per-meal and weekly PFC targets for the user's goal and weight
//	@Tags			profiles
//	@Produce		json
//	@Param			user_id	path		string	true	"User ID"
//	@Success		200		{object}	TargetsResponse
//	@Failure		404		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/profiles/{user_id}/targets [get]
func (app *application) getTargetsHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")
	if userID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	profile, err := app.profileRepo.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	resp := TargetsResponse{
		Daily:   planner.CalculateDailyTarget(profile.Goal, profile.WeightKG),
		PerMeal: planner.CalculatePerMealTarget(profile.Goal, profile.WeightKG),
		Weekly:  planner.CalculateWeeklyTarget(profile.Goal, profile.WeightKG),
	}

	if err := app.jsonRespone(w, http.StatusOK, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}
