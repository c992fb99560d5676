package pricingconfig

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SBM-BookingService/internal/domain"
	"github.com/m04kA/SBM-BookingService/pkg/dbmetrics"
	"github.com/m04kA/SBM-BookingService/pkg/psqlbuilder"
)

// pq-код нарушения unique constraint
const pqUniqueViolation = "23505"

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

var configColumns = []string{
	"id",
	"owner_id",
	"dead_hours_start",
	"dead_hours_end",
	"dead_hour_discount",
	"base_rate_physiotherapy",
	"base_rate_personal_training",
	"base_rate_other",
	"weekday_multiplier",
	"weekend_multiplier",
	"timezone",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с конфигурацией цен
// Уникальность конфигурации на владельца обеспечивается
// unique constraint на owner_id
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации цен
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByOwner получает конфигурацию по ID владельца
func (r *Repository) GetByOwner(ctx context.Context, ownerID int64) (*domain.PricingConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(configColumns...).
		From("pricing_config").
		Where(squirrel.Eq{"owner_id": ownerID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByOwner - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanConfig(executor.QueryRowContext(ctx, query, args...), "GetByOwner")
}

// Create создает новую конфигурацию владельца
// При уже существующей конфигурации возвращает ErrDuplicateConfig
func (r *Repository) Create(ctx context.Context, cfg *domain.PricingConfig) (*domain.PricingConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("pricing_config").
		Columns(
			"owner_id",
			"dead_hours_start",
			"dead_hours_end",
			"dead_hour_discount",
			"base_rate_physiotherapy",
			"base_rate_personal_training",
			"base_rate_other",
			"weekday_multiplier",
			"weekend_multiplier",
			"timezone",
		).
		Values(
			cfg.OwnerID,
			cfg.DeadHoursStart,
			cfg.DeadHoursEnd,
			cfg.DeadHourDiscount,
			cfg.BaseRatePhysiotherapy,
			cfg.BaseRatePersonalTraining,
			cfg.BaseRateOther,
			cfg.WeekdayMultiplier,
			cfg.WeekendMultiplier,
			cfg.Timezone,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateConfig
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return cfg, nil
}

// UpdateByOwner целиком заменяет конфигурацию владельца
func (r *Repository) UpdateByOwner(ctx context.Context, ownerID int64, cfg *domain.PricingConfig) (*domain.PricingConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("pricing_config").
		Set("dead_hours_start", cfg.DeadHoursStart).
		Set("dead_hours_end", cfg.DeadHoursEnd).
		Set("dead_hour_discount", cfg.DeadHourDiscount).
		Set("base_rate_physiotherapy", cfg.BaseRatePhysiotherapy).
		Set("base_rate_personal_training", cfg.BaseRatePersonalTraining).
		Set("base_rate_other", cfg.BaseRateOther).
		Set("weekday_multiplier", cfg.WeekdayMultiplier).
		Set("weekend_multiplier", cfg.WeekendMultiplier).
		Set("timezone", cfg.Timezone).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"owner_id": ownerID}).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateByOwner - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.ID,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateByOwner - execute update: %v", ErrExecQuery, err)
	}

	cfg.OwnerID = ownerID
	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return cfg, nil
}

// scanConfig сканирует одну строку конфигурации
func (r *Repository) scanConfig(row *sql.Row, op string) (*domain.PricingConfig, error) {
	var cfg domain.PricingConfig
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&cfg.ID,
		&cfg.OwnerID,
		&cfg.DeadHoursStart,
		&cfg.DeadHoursEnd,
		&cfg.DeadHourDiscount,
		&cfg.BaseRatePhysiotherapy,
		&cfg.BaseRatePersonalTraining,
		&cfg.BaseRateOther,
		&cfg.WeekdayMultiplier,
		&cfg.WeekendMultiplier,
		&cfg.Timezone,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan config: %v", ErrScanRow, op, err)
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return &cfg, nil
}

// isUniqueViolation проверяет, что ошибка - нарушение unique constraint
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pqUniqueViolation
	}
	return false
}
