package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/vlkhvnn/DJ-BookingService/internal/infra/storage/booking"
	"github.com/vlkhvnn/DJ-BookingService/internal/service/bookings/models"
)

// Service сервис чтения бронирований
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID.
// Бронирование видно только его участникам (букеру или принятому партнеру).
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %w", ErrInternal, err)
	}

	if !booking.IsOccupant(userID) {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований диджея, включая слоты,
// где он участвует как принятый партнер
func (s *Service) GetUserBookings(ctx context.Context, djID int64) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for dj=%d", djID)

	bookings, err := s.bookingRepo.GetByDJID(ctx, djID)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for dj=%d: %v", djID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: fetched %d bookings for dj=%d", len(bookings), djID)
	return models.FromDomainBookingList(bookings), nil
}
