package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SBM-BookingService/internal/domain"
	reservationRepo "github.com/m04kA/SBM-BookingService/internal/infra/storage/reservation"
	"github.com/m04kA/SBM-BookingService/internal/service/reservations/models"
)

// Service сервис для работы с существующими бронированиями
// Создание бронирования живёт в usecase/create_booking - там нужна
// транзакционная связка доступности и цены, здесь только чтение и отмена
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: reservation id must be positive", ErrInvalidInput)
	}

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(res), nil
}

// Cancel отменяет бронирование с указанием причины
// Отменить можно только подтверждённое бронирование; отмена освобождает
// слот для новых бронирований
func (s *Service) Cancel(ctx context.Context, id int64, reason string) error {
	if id <= 0 {
		return fmt.Errorf("%w: reservation id must be positive", ErrInvalidInput)
	}
	if len(reason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason too long (max %d)", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !res.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation id=%d in status %s cannot be cancelled", id, res.Status)
		return ErrCannotCancel
	}

	if err := s.reservationRepo.Cancel(ctx, id, reason); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%d", id)
	return nil
}

// GetByClient получает историю бронирований клиента
func (s *Service) GetByClient(ctx context.Context, clientID int64, status *domain.ReservationStatus) (*models.ReservationListResponse, error) {
	if clientID <= 0 {
		return nil, fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.GetByClientID(ctx, clientID, status)
	if err != nil {
		s.logger.Error("GetByClient: repository error for client=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: GetByClient - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByClient: fetched %d reservations for client=%d", len(reservations), clientID)
	return models.FromDomainReservationList(reservations), nil
}

// GetByRoom получает бронирования комнаты за период
func (s *Service) GetByRoom(ctx context.Context, req *models.RoomReservationsRequest) (*models.ReservationListResponse, error) {
	if req.RoomID <= 0 {
		return nil, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}
	if req.WindowStart != nil && req.WindowEnd != nil && !req.WindowEnd.After(*req.WindowStart) {
		return nil, fmt.Errorf("%w: window end must be after window start", ErrInvalidInput)
	}

	filter := domain.RoomReservationsFilter{
		RoomID:          req.RoomID,
		WindowStart:     req.WindowStart,
		WindowEnd:       req.WindowEnd,
		Status:          req.Status,
		IncludeInactive: req.IncludeInactive,
	}

	reservations, err := s.reservationRepo.GetByRoomWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetByRoom: repository error for room=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: GetByRoom - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByRoom: fetched %d reservations for room=%d", len(reservations), req.RoomID)
	return models.FromDomainReservationList(reservations), nil
}
