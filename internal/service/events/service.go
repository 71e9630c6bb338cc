package events

import (
	"context"
	"errors"
	"fmt"

	eventRepo "github.com/vlkhvnn/DJ-BookingService/internal/infra/storage/event"
	"github.com/vlkhvnn/DJ-BookingService/internal/service/events/models"
)

// Service сервис публикации и чтения событий.
// До публикации слоты события не видны и не бронируются.
type Service struct {
	eventRepo EventRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса событий
func NewService(eventRepo EventRepository, logger Logger) *Service {
	return &Service{
		eventRepo: eventRepo,
		logger:    logger,
	}
}

// GetByID получает событие по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.EventResponse, error) {
	s.logger.Info("GetByID: fetching event id=%d", id)

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			s.logger.Warn("GetByID: event id=%d not found", id)
			return nil, ErrEventNotFound
		}
		s.logger.Error("GetByID: repository error for event id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %w", ErrInternal, err)
	}

	return models.FromDomainEvent(event), nil
}

// Publish переводит событие из draft в published.
// Идемпотентна: повторная публикация уже опубликованного события - не ошибка,
// возвращается текущее состояние. Публиковать может только организатор.
func (s *Service) Publish(ctx context.Context, eventID int64, actingUserID int64) (*models.EventResponse, error) {
	s.logger.Info("Publish: publishing event id=%d by user=%d", eventID, actingUserID)

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			s.logger.Warn("Publish: event id=%d not found", eventID)
			return nil, ErrEventNotFound
		}
		s.logger.Error("Publish: repository error for event id=%d: %v", eventID, err)
		return nil, fmt.Errorf("%w: Publish - repository error: %w", ErrInternal, err)
	}

	if event.HostID != actingUserID {
		s.logger.Warn("Publish: user=%d is not the host of event id=%d", actingUserID, eventID)
		return nil, ErrAccessDenied
	}

	if event.IsPublished() {
		s.logger.Info("Publish: event id=%d already published, no-op", eventID)
		return models.FromDomainEvent(event), nil
	}

	updated, err := s.eventRepo.Publish(ctx, eventID)
	if err != nil {
		s.logger.Error("Publish: failed to publish event id=%d: %v", eventID, err)
		return nil, fmt.Errorf("%w: Publish - repository error: %w", ErrInternal, err)
	}

	// Условный UPDATE мог не затронуть строку (конкурентная публикация) -
	// для идемпотентной операции это тоже успех
	if !updated {
		s.logger.Info("Publish: event id=%d published concurrently, no-op", eventID)
	}

	// Перечитываем актуальное состояние
	event, err = s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		s.logger.Error("Publish: failed to reload event id=%d: %v", eventID, err)
		return nil, fmt.Errorf("%w: Publish - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("Publish: event id=%d is published", eventID)
	return models.FromDomainEvent(event), nil
}
