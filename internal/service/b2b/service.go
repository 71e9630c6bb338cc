package b2b

import (
	"context"
	"errors"
	"fmt"

	b2bRepo "github.com/vlkhvnn/DJ-BookingService/internal/infra/storage/b2b"
	"github.com/vlkhvnn/DJ-BookingService/internal/service/b2b/models"
)

// Service сервис чтения B2B запросов
type Service struct {
	b2bRepo B2BRepository
	logger  Logger
}

// NewService создает новый экземпляр сервиса B2B запросов
func NewService(b2bRepo B2BRepository, logger Logger) *Service {
	return &Service{
		b2bRepo: b2bRepo,
		logger:  logger,
	}
}

// GetByID получает B2B запрос по ID.
// Отсутствие запроса - штатная ситуация, вызывающие ветвятся по
// ErrRequestNotFound.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.B2BRequestResponse, error) {
	s.logger.Info("GetByID: fetching b2b request id=%d", id)

	req, err := s.b2bRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, b2bRepo.ErrRequestNotFound) {
			s.logger.Warn("GetByID: b2b request id=%d not found", id)
			return nil, ErrRequestNotFound
		}
		s.logger.Error("GetByID: repository error for b2b request id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %w", ErrInternal, err)
	}

	return models.FromDomainRequest(req), nil
}
