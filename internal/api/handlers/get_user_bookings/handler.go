package get_user_bookings

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/vlkhvnn/DJ-BookingService/internal/api/handlers"
	"github.com/vlkhvnn/DJ-BookingService/internal/api/middleware"
)

const (
	msgInvalidDJID   = "некорректный ID диджея"
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{djId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	djIDStr := vars["djId"]

	djID, err := strconv.ParseInt(djIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /users/{djId}/bookings - Invalid DJ ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDJID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{djId}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Историю бронирований диджей видит только свою
	if userID != djID {
		h.logger.Warn("GET /users/{djId}/bookings - Access denied: dj_id=%d, user_id=%d", djID, userID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	result, err := h.service.GetUserBookings(r.Context(), djID)
	if err != nil {
		h.logger.Error("GET /users/{djId}/bookings - Failed to get bookings: dj_id=%d, error=%v",
			djID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/{djId}/bookings - Bookings retrieved successfully: dj_id=%d, count=%d",
		djID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
