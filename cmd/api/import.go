package main

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/HitsujiNeko/BulkCart/internal/domain"
)

type CreateImportTaskRequest struct {
	SpreadsheetID string `json:"spreadsheet_id" validate:"required"`
}

type CreateImportTaskResponse struct {
	TaskID string `json:"task_id"`
	Status string `json:"status"`
}

// createImportTaskHandler godoc
//
//	@Summary		Queue catalog import
//	@Description	Queues a spreadsheet import for processing by the catalog worker
//	@Tags			import
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CreateImportTaskRequest	true	"Spreadsheet ID"
//	@Success		201		{object}	CreateImportTaskResponse
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Failure		503		{object}	map[string]string
//	@Router			/import [post]
func (app *application) createImportTaskHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateImportTaskRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	taskID, err := app.catalogService.CreateImportTask(r.Context(), req.SpreadsheetID)
	if err != nil {
		if errors.Is(err, domain.ErrImportUnavailable) {
			app.serviceUnavailableResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	resp := CreateImportTaskResponse{
		TaskID: taskID.Hex(),
		Status: string(domain.StatusQueued),
	}

	if err := app.jsonRespone(w, http.StatusCreated, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getImportTaskHandler godoc
//
//	@Summary		Get import task status
//	@Description	Returns the status and counts of a catalog import task
//	@Tags			import
//	@Produce		json
//	@Param			task_id	path		string	true	"Task ID"
//	@Success		200		{object}	domain.ImportTask
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/import/{task_id} [get]
func (app *application) getImportTaskHandler(w http.ResponseWriter, r *http.Request) {
	taskID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "task_id"))
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	task, err := app.catalogService.GetTaskStatus(r.Context(), taskID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, task); err != nil {
		app.internalServerError(w, r, err)
	}
}
