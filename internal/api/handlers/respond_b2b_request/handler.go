package respond_b2b_request

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/vlkhvnn/DJ-BookingService/internal/api/handlers"
	"github.com/vlkhvnn/DJ-BookingService/internal/api/middleware"
	respondB2B "github.com/vlkhvnn/DJ-BookingService/internal/usecase/respond_b2b_request"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRequestID   = "некорректный ID запроса"
	msgInvalidAction      = "некорректное действие, ожидается accept, decline или leave"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "B2B запрос не найден"
	msgNotAuthorized      = "пользователь не может выполнить это действие"
	msgInvalidState       = "действие недопустимо в текущем статусе запроса"
)

type Handler struct {
	useCase RespondB2BRequestUseCase
	logger  Logger
}

func NewHandler(useCase RespondB2BRequestUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/b2b-requests/{requestId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	requestIDStr := vars["requestId"]

	requestID, err := strconv.ParseInt(requestIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /b2b-requests/{id} - Invalid request ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestID)
		return
	}

	var req RespondB2BRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /b2b-requests/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	actingUserID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /b2b-requests/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(requestID, actingUserID)
	if err != nil {
		h.logger.Warn("PATCH /b2b-requests/{id} - Invalid action %q: %v", req.Action, err)
		handlers.RespondBadRequest(w, msgInvalidAction)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, respondB2B.ErrRequestNotFound):
			h.logger.Warn("PATCH /b2b-requests/{id} - Request not found: request_id=%d", requestID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, respondB2B.ErrNotAuthorized):
			h.logger.Warn("PATCH /b2b-requests/{id} - Not authorized: request_id=%d, user_id=%d, action=%s",
				requestID, actingUserID, req.Action)
			handlers.RespondForbidden(w, msgNotAuthorized)

		case errors.Is(err, respondB2B.ErrInvalidState):
			h.logger.Warn("PATCH /b2b-requests/{id} - Invalid state: request_id=%d, action=%s",
				requestID, req.Action)
			handlers.RespondError(w, http.StatusConflict, msgInvalidState)

		case errors.Is(err, respondB2B.ErrInvalidInput):
			h.logger.Warn("PATCH /b2b-requests/{id} - Invalid input: request_id=%d, error=%v", requestID, err)
			handlers.RespondBadRequest(w, msgInvalidAction)

		default:
			h.logger.Error("PATCH /b2b-requests/{id} - Failed to apply action: request_id=%d, action=%s, error=%v",
				requestID, req.Action, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /b2b-requests/{id} - Action applied successfully: request_id=%d, action=%s, status=%s",
		requestID, req.Action, result.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
