package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/roamops/roamops/application/port/inbound"
	"github.com/roamops/roamops/domain"
	"github.com/roamops/roamops/infrastructure/http/middleware"
	"github.com/roamops/roamops/infrastructure/http/response"
	"github.com/roamops/roamops/infrastructure/http/validator"
	"github.com/roamops/roamops/infrastructure/service/logger"
)

// PayrollHandler exposes the correction and conflict-resolution workflows.
// All mutating routes sit behind the admin middleware; the acting admin is
// taken from the token claims, never from the request body.
type PayrollHandler struct {
	payrollUseCase inbound.PayrollUseCase
	logger         logger.Logger
}

func NewPayrollHandler(payrollUseCase inbound.PayrollUseCase, log logger.Logger) *PayrollHandler {
	return &PayrollHandler{
		payrollUseCase: payrollUseCase,
		logger:         log,
	}
}

type approveRequestBody struct {
	ForceOverride bool `json:"force_override"`
}

type deleteEntryBody struct {
	Reason string `json:"reason"`
}

func (h *PayrollHandler) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	requestID := mux.Vars(r)["id"]

	var body approveRequestBody
	if r.Body != nil && r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			response.BadRequest(w, "Invalid request body")
			return
		}
	}

	result := h.payrollUseCase.ApproveRequest(r.Context(), h.actorID(r), requestID, body.ForceOverride)
	if result.Success {
		logger.LogAuditAction(r.Context(), h.logger, domain.ActionApproveTimeRequest, h.actorID(r), requestID, map[string]interface{}{
			"force_override": body.ForceOverride,
		})
	}
	writeResult(w, result)
}

func (h *PayrollHandler) DenyRequest(w http.ResponseWriter, r *http.Request) {
	requestID := mux.Vars(r)["id"]

	result := h.payrollUseCase.DenyRequest(r.Context(), h.actorID(r), requestID)
	if result.Success {
		logger.LogAuditAction(r.Context(), h.logger, domain.ActionDenyTimeRequest, h.actorID(r), requestID, nil)
	}
	writeResult(w, result)
}

func (h *PayrollHandler) ManualEdit(w http.ResponseWriter, r *http.Request) {
	entryID := mux.Vars(r)["id"]

	var req inbound.ManualEditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	req.EntryID = entryID

	if !validator.ValidateRequired(req.Reason) {
		response.UnprocessableEntity(w, "Reason is required")
		return
	}
	if req.NewStart.IsZero() {
		response.UnprocessableEntity(w, "start_time is required")
		return
	}

	result := h.payrollUseCase.ManualEdit(r.Context(), h.actorID(r), req)
	if result.Success {
		logger.LogAuditAction(r.Context(), h.logger, domain.ActionManualTimeEdit, h.actorID(r), entryID, nil)
	}
	writeResult(w, result)
}

func (h *PayrollHandler) AddEntry(w http.ResponseWriter, r *http.Request) {
	var req inbound.AddEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if !validator.ValidateRequired(req.EmployeeID) {
		response.UnprocessableEntity(w, "user_id is required")
		return
	}
	if !validator.ValidateRequired(req.Reason) {
		response.UnprocessableEntity(w, "Reason is required")
		return
	}
	if req.Start.IsZero() {
		response.UnprocessableEntity(w, "start_time is required")
		return
	}

	result := h.payrollUseCase.AddEntry(r.Context(), h.actorID(r), req)
	if result.Success {
		logger.LogAuditAction(r.Context(), h.logger, domain.ActionManualEntryCreate, h.actorID(r), req.EmployeeID, nil)
	}
	writeResult(w, result)
}

func (h *PayrollHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	entryID := mux.Vars(r)["id"]

	var body deleteEntryBody
	if r.Body != nil && r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			response.BadRequest(w, "Invalid request body")
			return
		}
	}
	if !validator.ValidateRequired(body.Reason) {
		response.UnprocessableEntity(w, "Reason is required")
		return
	}

	result := h.payrollUseCase.DeleteEntry(r.Context(), h.actorID(r), entryID, body.Reason)
	if result.Success {
		logger.LogAuditAction(r.Context(), h.logger, domain.ActionDeleteTimeEntry, h.actorID(r), entryID, nil)
	}
	writeResult(w, result)
}

func (h *PayrollHandler) ToggleLock(w http.ResponseWriter, r *http.Request) {
	var req inbound.ToggleLockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if req.WeekStart.IsZero() {
		response.UnprocessableEntity(w, "week_start is required")
		return
	}
	if req.Action != inbound.LockActionLock && req.Action != inbound.LockActionUnlock {
		response.UnprocessableEntity(w, "action must be lock or unlock")
		return
	}

	result := h.payrollUseCase.ToggleLock(r.Context(), h.actorID(r), req)
	writeResult(w, result)
}

func (h *PayrollHandler) ListPendingRequests(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r, 50)

	requests, err := h.payrollUseCase.ListPendingRequests(r.Context(), limit)
	if err != nil {
		h.logger.Error(r.Context(), "Failed to list pending requests", err, nil)
		response.InternalServerError(w, "Internal server error")
		return
	}
	response.Success(w, http.StatusOK, "success", requests)
}

func (h *PayrollHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("user_id")
	if employeeID == "" {
		response.UnprocessableEntity(w, "user_id is required")
		return
	}

	from, err := parseTimeParam(r, "from", time.Now().UTC().AddDate(0, 0, -7))
	if err != nil {
		response.UnprocessableEntity(w, "from must be RFC 3339")
		return
	}
	to, err := parseTimeParam(r, "to", time.Now().UTC())
	if err != nil {
		response.UnprocessableEntity(w, "to must be RFC 3339")
		return
	}

	entries, err := h.payrollUseCase.ListEntries(r.Context(), employeeID, from, to)
	if err != nil {
		h.logger.Error(r.Context(), "Failed to list time entries", err, map[string]interface{}{
			"user_id": employeeID,
		})
		response.InternalServerError(w, "Internal server error")
		return
	}
	response.Success(w, http.StatusOK, "success", entries)
}

func (h *PayrollHandler) LockStatus(w http.ResponseWriter, r *http.Request) {
	date, err := parseTimeParam(r, "date", time.Now().UTC())
	if err != nil {
		response.UnprocessableEntity(w, "date must be RFC 3339")
		return
	}

	status, err := h.payrollUseCase.LockStatus(r.Context(), date)
	if err != nil {
		h.logger.Error(r.Context(), "Failed to read lock status", err, nil)
		response.InternalServerError(w, "Internal server error")
		return
	}
	response.Success(w, http.StatusOK, "success", status)
}

func (h *PayrollHandler) ListAuditLogs(w http.ResponseWriter, r *http.Request) {
	tableName := r.URL.Query().Get("table")
	recordID := r.URL.Query().Get("record_id")
	if tableName == "" || recordID == "" {
		response.UnprocessableEntity(w, "table and record_id are required")
		return
	}

	entries, err := h.payrollUseCase.ListAuditLogs(r.Context(), tableName, recordID, parseLimit(r, 50))
	if err != nil {
		h.logger.Error(r.Context(), "Failed to list audit logs", err, nil)
		response.InternalServerError(w, "Internal server error")
		return
	}
	response.Success(w, http.StatusOK, "success", entries)
}

func (h *PayrollHandler) actorID(r *http.Request) string {
	claims := middleware.GetUserClaims(r.Context())
	if claims == nil {
		return ""
	}
	return claims.UserID
}

// writeResult maps the uniform workflow result onto HTTP statuses.
// Conflicts get 409 so clients can branch on status alone; other expected
// failures get 422 with the message intact.
func writeResult(w http.ResponseWriter, result *inbound.PayrollResult) {
	statusCode := http.StatusOK
	if !result.Success {
		statusCode = http.StatusUnprocessableEntity
		if result.IsConflict {
			statusCode = http.StatusConflict
		}
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(result)
}

func parseLimit(r *http.Request, fallback int) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return fallback
	}
	return limit
}

func parseTimeParam(r *http.Request, name string, fallback time.Time) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	return time.Parse(time.RFC3339, raw)
}
