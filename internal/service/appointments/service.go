package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	apptRepo "github.com/m04kA/CMG-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/CMG-AppointmentService/internal/service/appointments/models"
)

// Service сервис чтения записей на приём для панели оператора
type Service struct {
	apptRepo AppointmentRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(apptRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		apptRepo: apptRepo,
		logger:   logger,
	}
}

// GetByID получает запись на приём по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s", id)

	appt, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// ListAll получает все записи на приём, сначала самые свежие заявки
func (s *Service) ListAll(ctx context.Context) (*models.AppointmentListResponse, error) {
	s.logger.Info("ListAll: fetching all appointments")

	appointments, err := s.apptRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAll: successfully fetched %d appointments", len(appointments))
	return models.FromDomainAppointmentList(appointments), nil
}
