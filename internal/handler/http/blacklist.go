package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/flexidesk/wfh-backend-go/internal/domain/blacklist"
	"github.com/flexidesk/wfh-backend-go/internal/domain/period"
	"github.com/flexidesk/wfh-backend-go/internal/handler/http/middleware"
	"github.com/flexidesk/wfh-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type BlacklistHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type BlacklistHandlerImpl struct {
	windowService blacklist.WindowService
}

func NewBlacklistHandler(windowService blacklist.WindowService) BlacklistHandler {
	return &BlacklistHandlerImpl{windowService: windowService}
}

func (h *BlacklistHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req blacklist.CreateWindowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ManagerID = middleware.UserID(r)

	created, err := h.windowService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Blacklist create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Blacklist window created", created)
}

func (h *BlacklistHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	from, err := queryDate(r, "from")
	if err != nil {
		response.BadRequest(w, "Invalid 'from' date", nil)
		return
	}
	to, err := queryDate(r, "to")
	if err != nil {
		response.BadRequest(w, "Invalid 'to' date", nil)
		return
	}

	windows, err := h.windowService.List(r.Context(), middleware.UserID(r), from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, windows)
}

func (h *BlacklistHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req blacklist.UpdateWindowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")
	req.ManagerID = middleware.UserID(r)

	updated, err := h.windowService.Update(r.Context(), req)
	if err != nil {
		slog.Error("Blacklist update service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Blacklist window updated", updated)
}

func (h *BlacklistHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.windowService.Delete(r.Context(), middleware.UserID(r), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Blacklist window deleted", nil)
}

func queryDate(r *http.Request, key string) (*time.Time, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	t, err := period.ParseDateTime(raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
