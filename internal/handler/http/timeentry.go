package http

import (
	"encoding/json"
	"net/http"

	"github.com/corepay/payroll-backend-go/internal/domain/timeentry"
	"github.com/corepay/payroll-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type TimeEntryHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	Import(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	ListForEmployee(w http.ResponseWriter, r *http.Request)
	ListForDepartment(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	AggregateHours(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type timeEntryHandlerImpl struct {
	timeEntryService timeentry.TimeEntryService
}

func NewTimeEntryHandler(timeEntryService timeentry.TimeEntryService) TimeEntryHandler {
	return &timeEntryHandlerImpl{timeEntryService: timeEntryService}
}

func (h *timeEntryHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	var req timeentry.RecordTimeEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.timeEntryService.Record(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Time entry recorded", result)
}

func (h *timeEntryHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	var req timeentry.ImportTimeEntriesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.timeEntryService.Import(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Time entries imported", result)
}

func (h *timeEntryHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	result, err := h.timeEntryService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *timeEntryHandlerImpl) ListForEmployee(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")
	if start == "" || end == "" {
		response.BadRequest(w, "start and end query parameters are required", nil)
		return
	}

	result, err := h.timeEntryService.ListForEmployee(
		r.Context(),
		chi.URLParam(r, "employeeId"),
		start, end,
		r.URL.Query().Get("status"),
	)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *timeEntryHandlerImpl) ListForDepartment(w http.ResponseWriter, r *http.Request) {
	result, err := h.timeEntryService.ListForDepartment(r.Context(), chi.URLParam(r, "departmentId"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *timeEntryHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req timeentry.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.timeEntryService.UpdateStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *timeEntryHandlerImpl) AggregateHours(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")
	if start == "" || end == "" {
		response.BadRequest(w, "start and end query parameters are required", nil)
		return
	}

	result, err := h.timeEntryService.AggregateApprovedHours(r.Context(), chi.URLParam(r, "employeeId"), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *timeEntryHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.timeEntryService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time entry deleted", nil)
}
