package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/backoffice/core/internal/domain/partner"
	"github.com/backoffice/core/internal/domain/shared"
	"github.com/backoffice/core/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCounterpartyRepository implements CounterpartyRepository using GORM
type GormCounterpartyRepository struct {
	db *gorm.DB
}

// NewGormCounterpartyRepository creates a new GormCounterpartyRepository
func NewGormCounterpartyRepository(db *gorm.DB) *GormCounterpartyRepository {
	return &GormCounterpartyRepository{db: db}
}

// FindByID finds a counterparty by its ID
func (r *GormCounterpartyRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Counterparty, error) {
	var model models.CounterpartyModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all counterparties matching the filter
func (r *GormCounterpartyRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Counterparty, error) {
	var list []models.CounterpartyModel
	query := applyFilter(r.db.WithContext(ctx).Model(&models.CounterpartyModel{}), filter, "name ASC")

	if err := query.Find(&list).Error; err != nil {
		return nil, err
	}
	return toCounterparties(list), nil
}

// FindByType finds all counterparties of the given type, ordered by name
func (r *GormCounterpartyRepository) FindByType(ctx context.Context, cpType partner.CounterpartyType) ([]partner.Counterparty, error) {
	var list []models.CounterpartyModel
	if err := r.db.WithContext(ctx).
		Where("type = ?", cpType.String()).
		Order("name ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return toCounterparties(list), nil
}

// Save creates or updates a counterparty
func (r *GormCounterpartyRepository) Save(ctx context.Context, counterparty *partner.Counterparty) error {
	var model models.CounterpartyModel
	model.FromDomain(counterparty)
	return r.db.WithContext(ctx).Save(&model).Error
}

// Delete deletes a counterparty
func (r *GormCounterpartyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.CounterpartyModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func toCounterparties(list []models.CounterpartyModel) []partner.Counterparty {
	result := make([]partner.Counterparty, 0, len(list))
	for i := range list {
		result = append(result, *list[i].ToDomain())
	}
	return result
}

// applyFilter applies ordering and limit options shared by list queries
func applyFilter(query *gorm.DB, filter shared.Filter, defaultOrder string) *gorm.DB {
	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	} else if defaultOrder != "" {
		query = query.Order(defaultOrder)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	return query
}

// Ensure GormCounterpartyRepository implements CounterpartyRepository
var _ partner.CounterpartyRepository = (*GormCounterpartyRepository)(nil)
