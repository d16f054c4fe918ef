package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/flexidesk/wfh-backend-go/internal/domain/application"
	"github.com/flexidesk/wfh-backend-go/internal/handler/http/middleware"
	"github.com/flexidesk/wfh-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ApplicationHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListMySchedules(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	RequestWithdrawal(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
}

type ApplicationHandlerImpl struct {
	applicationService application.ApplicationService
}

func NewApplicationHandler(applicationService application.ApplicationService) ApplicationHandler {
	return &ApplicationHandlerImpl{applicationService: applicationService}
}

func (h *ApplicationHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req application.CreateApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UserID = middleware.UserID(r)

	created, err := h.applicationService.Submit(r.Context(), req)
	if err != nil {
		slog.Error("Submit service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Application submitted", created)
}

func (h *ApplicationHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	app, err := h.applicationService.GetByID(r.Context(), middleware.UserID(r), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, app)
}

func (h *ApplicationHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	apps, err := h.applicationService.ListMine(r.Context(), middleware.UserID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, apps)
}

func (h *ApplicationHandlerImpl) ListMySchedules(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.applicationService.ListMySchedules(r.Context(), middleware.UserID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, schedules)
}

func (h *ApplicationHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	apps, err := h.applicationService.ListPendingForManager(r.Context(), middleware.UserID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, apps)
}

func (h *ApplicationHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.applicationService.Approve, "Application approved")
}

func (h *ApplicationHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.applicationService.Reject, "Application rejected")
}

type decideFunc func(ctx context.Context, managerUserID string, req application.DecideApplicationRequest) (application.Application, error)

func (h *ApplicationHandlerImpl) decide(w http.ResponseWriter, r *http.Request, fn decideFunc, message string) {
	var req application.DecideApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ApplicationID = chi.URLParam(r, "id")

	app, err := fn(r.Context(), middleware.UserID(r), req)
	if err != nil {
		slog.Error("Decide service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, app)
}

func (h *ApplicationHandlerImpl) RequestWithdrawal(w http.ResponseWriter, r *http.Request) {
	var req application.WithdrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ApplicationID = chi.URLParam(r, "id")

	err := h.applicationService.RequestWithdrawal(r.Context(), middleware.UserID(r), req)
	if err != nil {
		slog.Error("RequestWithdrawal service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Withdrawal requested", nil)
}

func (h *ApplicationHandlerImpl) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req application.WithdrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ApplicationID = chi.URLParam(r, "id")

	replacements, err := h.applicationService.Withdraw(r.Context(), middleware.UserID(r), req)
	if err != nil {
		slog.Error("Withdraw service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Application withdrawn", replacements)
}
