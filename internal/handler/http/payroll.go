package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/corepay/payroll-backend-go/internal/domain/payroll"
	"github.com/corepay/payroll-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	Process(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	ListByDepartment(w http.ResponseWriter, r *http.Request)

	IssuePaySlip(w http.ResponseWriter, r *http.Request)
	GetPaySlipByPayroll(w http.ResponseWriter, r *http.Request)
	GetPaySlip(w http.ResponseWriter, r *http.Request)
	ListPaySlips(w http.ResponseWriter, r *http.Request)
	ListPaySlipsByEmployee(w http.ResponseWriter, r *http.Request)
	GetLatestPaySlipByEmployee(w http.ResponseWriter, r *http.Request)
	ExportPaySlipPDF(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// ========== PAYROLL RECORDS ==========

func (h *payrollHandlerImpl) Process(w http.ResponseWriter, r *http.Request) {
	var req payroll.ProcessPayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.Process(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll processed", result)
}

func (h *payrollHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.ListByEmployee(r.Context(), chi.URLParam(r, "employeeId"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ListByDepartment(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.ListByDepartment(r.Context(), chi.URLParam(r, "departmentId"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== PAYSLIPS ==========

func (h *payrollHandlerImpl) IssuePaySlip(w http.ResponseWriter, r *http.Request) {
	var req payroll.IssuePaySlipRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request body", nil)
			return
		}
	}
	req.PayrollID = chi.URLParam(r, "id")

	result, err := h.payrollService.IssuePaySlip(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payslip issued", result)
}

func (h *payrollHandlerImpl) GetPaySlipByPayroll(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.GetPaySlipByPayroll(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) GetPaySlip(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.GetPaySlip(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ListPaySlips(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.ListPaySlips(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ListPaySlipsByEmployee(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.ListPaySlipsByEmployee(r.Context(), chi.URLParam(r, "employeeId"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) GetLatestPaySlipByEmployee(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.GetLatestPaySlipByEmployee(r.Context(), chi.URLParam(r, "employeeId"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ExportPaySlipPDF(w http.ResponseWriter, r *http.Request) {
	pdf, filename, err := h.payrollService.ExportPaySlipPDF(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
