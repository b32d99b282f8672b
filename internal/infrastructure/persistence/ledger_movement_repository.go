package persistence

import (
	"context"
	"time"

	"github.com/backoffice/core/internal/domain/partner"
	"github.com/backoffice/core/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormLedgerMovementRepository implements LedgerMovementRepository using GORM.
// Movements are append-only; no update or delete methods exist.
type GormLedgerMovementRepository struct {
	db *gorm.DB
}

// NewGormLedgerMovementRepository creates a new GormLedgerMovementRepository
func NewGormLedgerMovementRepository(db *gorm.DB) *GormLedgerMovementRepository {
	return &GormLedgerMovementRepository{db: db}
}

// Append persists a new ledger movement record
func (r *GormLedgerMovementRepository) Append(ctx context.Context, movement *partner.LedgerMovement) error {
	var model models.LedgerMovementModel
	model.FromDomain(movement)
	return r.db.WithContext(ctx).Create(&model).Error
}

// FindByCounterparty finds all movements of a counterparty, newest first
func (r *GormLedgerMovementRepository) FindByCounterparty(ctx context.Context, counterpartyID uuid.UUID) ([]partner.LedgerMovement, error) {
	var list []models.LedgerMovementModel
	if err := r.db.WithContext(ctx).
		Where("counterparty_id = ?", counterpartyID).
		Order("movement_date DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return toLedgerMovements(list), nil
}

// FindByKindsBetween finds movements of the given kinds within the optional
// date window, newest first. Nil bounds leave that side open.
func (r *GormLedgerMovementRepository) FindByKindsBetween(ctx context.Context, kinds []partner.MovementKind, from, to *time.Time) ([]partner.LedgerMovement, error) {
	query := r.db.WithContext(ctx).Model(&models.LedgerMovementModel{})

	if len(kinds) > 0 {
		kindStrings := make([]string, 0, len(kinds))
		for _, kind := range kinds {
			kindStrings = append(kindStrings, kind.String())
		}
		query = query.Where("kind IN ?", kindStrings)
	}
	if from != nil {
		query = query.Where("movement_date >= ?", *from)
	}
	if to != nil {
		query = query.Where("movement_date <= ?", *to)
	}

	var list []models.LedgerMovementModel
	if err := query.Order("movement_date DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return toLedgerMovements(list), nil
}

func toLedgerMovements(list []models.LedgerMovementModel) []partner.LedgerMovement {
	result := make([]partner.LedgerMovement, 0, len(list))
	for i := range list {
		result = append(result, *list[i].ToDomain())
	}
	return result
}

// Ensure GormLedgerMovementRepository implements LedgerMovementRepository
var _ partner.LedgerMovementRepository = (*GormLedgerMovementRepository)(nil)
