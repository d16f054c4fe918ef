package http

import (
	"net/http"

	"github.com/flexidesk/wfh-backend-go/internal/domain/period"
	"github.com/flexidesk/wfh-backend-go/internal/domain/report"
	"github.com/flexidesk/wfh-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ReportHandler interface {
	CompanyWide(w http.ResponseWriter, r *http.Request)
	DepartmentDetail(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

func (h *ReportHandlerImpl) CompanyWide(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		response.BadRequest(w, "Missing 'date' query parameter", nil)
		return
	}
	day, err := period.ParseDateTime(date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.reportService.CompanyWide(r.Context(), day)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func (h *ReportHandlerImpl) DepartmentDetail(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		response.BadRequest(w, "Missing 'date' query parameter", nil)
		return
	}
	day, err := period.ParseDateTime(date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.reportService.DepartmentDetail(r.Context(), day, chi.URLParam(r, "department"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
