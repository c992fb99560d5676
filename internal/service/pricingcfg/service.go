package pricingcfg

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SBM-BookingService/internal/domain"
	configRepo "github.com/m04kA/SBM-BookingService/internal/infra/storage/pricingconfig"
	"github.com/m04kA/SBM-BookingService/internal/service/pricing"
	"github.com/m04kA/SBM-BookingService/internal/service/pricingcfg/models"
)

// Service сервис конфигурации цен
// Инвариант: ровно одна конфигурация на владельца; при первом чтении
// отсутствующая конфигурация создаётся лениво с дефолтными значениями
type Service struct {
	configRepo ConfigRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса конфигурации цен
func NewService(configRepo ConfigRepository, logger Logger) *Service {
	return &Service{
		configRepo: configRepo,
		logger:     logger,
	}
}

// Get возвращает конфигурацию владельца, создавая её с дефолтами при отсутствии
func (s *Service) Get(ctx context.Context, ownerID int64) (*models.PricingConfigResponse, error) {
	if ownerID <= 0 {
		return nil, fmt.Errorf("%w: ownerID must be positive", ErrInvalidInput)
	}

	cfg, err := s.GetDomain(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return models.FromDomainConfig(cfg), nil
}

// GetDomain возвращает domain-модель конфигурации владельца
// Используется use case-ами, которым нужна конфигурация для расчётов,
// а не DTO для ответа
func (s *Service) GetDomain(ctx context.Context, ownerID int64) (*domain.PricingConfig, error) {
	cfg, err := s.configRepo.GetByOwner(ctx, ownerID)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, configRepo.ErrConfigNotFound) {
		s.logger.Error("Get: repository error for owner=%d: %v", ownerID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	// Конфигурации ещё нет - создаём с дефолтами
	s.logger.Info("Get: no config for owner=%d, creating defaults", ownerID)

	created, err := s.configRepo.Create(ctx, defaultConfig(ownerID))
	if err != nil {
		// Параллельный запрос мог успеть создать конфигурацию первым -
		// в этом случае перечитываем существующую
		if errors.Is(err, configRepo.ErrDuplicateConfig) {
			return s.retryGet(ctx, ownerID)
		}
		s.logger.Error("Get: failed to create default config for owner=%d: %v", ownerID, err)
		return nil, fmt.Errorf("%w: Get - failed to create defaults: %v", ErrInternal, err)
	}

	s.logger.Info("Get: created default config id=%d for owner=%d", created.ID, ownerID)
	return created, nil
}

// Save валидирует и сохраняет конфигурацию владельца целиком
// При нарушениях валидации возвращает pricing.ValidationErrors со списком
// полей; некорректная конфигурация не персистится ни частично, ни целиком
func (s *Service) Save(ctx context.Context, ownerID int64, req *models.SavePricingConfigRequest) (*models.PricingConfigResponse, error) {
	if ownerID <= 0 {
		return nil, fmt.Errorf("%w: ownerID must be positive", ErrInvalidInput)
	}

	cfg := req.ToDomainConfig(ownerID)

	if errs := pricing.ValidateConfig(cfg); errs.HasErrors() {
		s.logger.Warn("Save: validation failed for owner=%d: %v", ownerID, errs)
		return nil, errs
	}

	// Конфигурация могла ещё не существовать - Get создаст её с дефолтами,
	// после чего обновление по owner_id гарантированно находит строку
	if _, err := s.GetDomain(ctx, ownerID); err != nil {
		return nil, err
	}

	updated, err := s.configRepo.UpdateByOwner(ctx, ownerID, cfg)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Warn("Save: config for owner=%d disappeared during update", ownerID)
			return nil, ErrConfigNotFound
		}
		s.logger.Error("Save: repository error for owner=%d: %v", ownerID, err)
		return nil, fmt.Errorf("%w: Save - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Save: successfully saved config id=%d for owner=%d", updated.ID, ownerID)
	return models.FromDomainConfig(updated), nil
}

// retryGet перечитывает конфигурацию после проигрыша гонки создания
func (s *Service) retryGet(ctx context.Context, ownerID int64) (*domain.PricingConfig, error) {
	cfg, err := s.configRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("Get: re-read after duplicate failed for owner=%d: %v", ownerID, err)
		return nil, fmt.Errorf("%w: Get - re-read after duplicate: %v", ErrInternal, err)
	}
	return cfg, nil
}

// defaultConfig возвращает дефолтную конфигурацию владельца
func defaultConfig(ownerID int64) *domain.PricingConfig {
	return &domain.PricingConfig{
		OwnerID:                  ownerID,
		DeadHoursStart:           domain.DefaultDeadHoursStart,
		DeadHoursEnd:             domain.DefaultDeadHoursEnd,
		DeadHourDiscount:         domain.DefaultDeadHourDiscount,
		BaseRatePhysiotherapy:    domain.DefaultBaseRatePhysiotherapy,
		BaseRatePersonalTraining: domain.DefaultBaseRatePersonalTraining,
		BaseRateOther:            domain.DefaultBaseRateOther,
		WeekdayMultiplier:        domain.DefaultWeekdayMultiplier,
		WeekendMultiplier:        domain.DefaultWeekendMultiplier,
		Timezone:                 domain.DefaultTimezone,
	}
}
