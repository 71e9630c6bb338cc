package book_slots

import (
	"errors"
	"net/http"

	"github.com/vlkhvnn/DJ-BookingService/internal/api/handlers"
	"github.com/vlkhvnn/DJ-BookingService/internal/api/middleware"
	bookSlots "github.com/vlkhvnn/DJ-BookingService/internal/usecase/book_slots"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgSlotNotFound        = "один или несколько слотов не найдены"
	msgSlotUnavailable     = "один или несколько слотов недоступны для бронирования"
	msgPerformerIneligible = "диджей не может бронировать слоты"
	msgInvalidInput        = "некорректные данные запроса"
)

type Handler struct {
	useCase BookSlotsUseCase
	logger  Logger
}

func NewHandler(useCase BookSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Бронирует всегда аутентифицированный диджей
	djID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(djID))
	if err != nil {
		switch {
		case errors.Is(err, bookSlots.ErrSlotNotFound):
			h.logger.Warn("POST /bookings - Slot not found: dj_id=%d, slot_ids=%v", djID, req.SlotIDs)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, bookSlots.ErrSlotUnavailable):
			h.logger.Warn("POST /bookings - Slot unavailable: dj_id=%d, slot_ids=%v", djID, req.SlotIDs)
			handlers.RespondError(w, http.StatusConflict, msgSlotUnavailable)

		case errors.Is(err, bookSlots.ErrPerformerIneligible):
			h.logger.Warn("POST /bookings - Performer ineligible: dj_id=%d", djID)
			handlers.RespondForbidden(w, msgPerformerIneligible)

		case errors.Is(err, bookSlots.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: dj_id=%d, error=%v", djID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to book slots: dj_id=%d, error=%v", djID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Slots booked successfully: dj_id=%d, count=%d",
		djID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
