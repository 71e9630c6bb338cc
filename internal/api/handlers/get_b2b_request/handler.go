package get_b2b_request

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/vlkhvnn/DJ-BookingService/internal/api/handlers"
	"github.com/vlkhvnn/DJ-BookingService/internal/service/b2b"
)

const (
	msgInvalidRequestID = "некорректный ID запроса"
	msgNotFound         = "B2B запрос не найден"
)

type Handler struct {
	service B2BService
	logger  Logger
}

func NewHandler(service B2BService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/b2b-requests/{requestId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	requestIDStr := vars["requestId"]

	requestID, err := strconv.ParseInt(requestIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /b2b-requests/{id} - Invalid request ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestID)
		return
	}

	result, err := h.service.GetByID(r.Context(), requestID)
	if err != nil {
		switch {
		case errors.Is(err, b2b.ErrRequestNotFound):
			h.logger.Warn("GET /b2b-requests/{id} - Request not found: request_id=%d", requestID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /b2b-requests/{id} - Failed to get request: request_id=%d, error=%v",
				requestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /b2b-requests/{id} - Request retrieved successfully: request_id=%d", requestID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
