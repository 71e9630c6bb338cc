package create_b2b_request

import (
	"errors"
	"net/http"

	"github.com/vlkhvnn/DJ-BookingService/internal/api/handlers"
	"github.com/vlkhvnn/DJ-BookingService/internal/api/middleware"
	createB2B "github.com/vlkhvnn/DJ-BookingService/internal/usecase/create_b2b_request"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInitiatedBy = "некорректное значение initiatedBy, ожидается requester или requestee"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgBookingNotFound    = "бронирование не найдено"
	msgDuplicateRequest   = "для бронирования уже существует активный B2B запрос"
	msgNotAuthorized      = "пользователь не может создать запрос для этого бронирования"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase CreateB2BRequestUseCase
	logger  Logger
}

func NewHandler(useCase CreateB2BRequestUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/b2b-requests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateB2BRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /b2b-requests - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Инициатор запроса - всегда аутентифицированный пользователь
	requesterID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /b2b-requests - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(requesterID)
	if err != nil {
		h.logger.Warn("POST /b2b-requests - Invalid initiatedBy: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInitiatedBy)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createB2B.ErrBookingNotFound):
			h.logger.Warn("POST /b2b-requests - Booking not found: booking_id=%d", req.BookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, createB2B.ErrDuplicateActiveRequest):
			h.logger.Warn("POST /b2b-requests - Duplicate active request: booking_id=%d", req.BookingID)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateRequest)

		case errors.Is(err, createB2B.ErrNotAuthorized):
			h.logger.Warn("POST /b2b-requests - Not authorized: booking_id=%d, requester_id=%d",
				req.BookingID, requesterID)
			handlers.RespondForbidden(w, msgNotAuthorized)

		case errors.Is(err, createB2B.ErrInvalidInput):
			h.logger.Warn("POST /b2b-requests - Invalid input: booking_id=%d, error=%v", req.BookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /b2b-requests - Failed to create request: booking_id=%d, error=%v",
				req.BookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /b2b-requests - Request created successfully: request_id=%d, booking_id=%d, requester_id=%d",
		result.ID, req.BookingID, requesterID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
