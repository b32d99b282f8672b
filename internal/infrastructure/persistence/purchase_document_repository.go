package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/backoffice/core/internal/domain/shared"
	"github.com/backoffice/core/internal/domain/trade"
	"github.com/backoffice/core/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPurchaseDocumentRepository implements PurchaseDocumentRepository using
// GORM. Lines are loaded and saved with the document.
type GormPurchaseDocumentRepository struct {
	db *gorm.DB
}

// NewGormPurchaseDocumentRepository creates a new GormPurchaseDocumentRepository
func NewGormPurchaseDocumentRepository(db *gorm.DB) *GormPurchaseDocumentRepository {
	return &GormPurchaseDocumentRepository{db: db}
}

// FindByID finds a purchase document with its lines
func (r *GormPurchaseDocumentRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.PurchaseDocument, error) {
	var model models.PurchaseDocumentModel
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindBetween finds documents within the optional date window, newest first.
// Nil bounds leave that side open.
func (r *GormPurchaseDocumentRepository) FindBetween(ctx context.Context, from, to *time.Time) ([]trade.PurchaseDocument, error) {
	query := r.db.WithContext(ctx).Preload("Lines")
	if from != nil {
		query = query.Where("doc_date >= ?", *from)
	}
	if to != nil {
		query = query.Where("doc_date <= ?", *to)
	}

	var list []models.PurchaseDocumentModel
	if err := query.Order("doc_date DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return toPurchaseDocuments(list), nil
}

// FindBySupplier finds all documents of a supplier, newest first
func (r *GormPurchaseDocumentRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]trade.PurchaseDocument, error) {
	var list []models.PurchaseDocumentModel
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		Where("supplier_id = ?", supplierID).
		Order("doc_date DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return toPurchaseDocuments(list), nil
}

// Save creates or updates a document together with its line set. Lines
// removed from the aggregate are removed from storage.
func (r *GormPurchaseDocumentRepository) Save(ctx context.Context, document *trade.PurchaseDocument) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model models.PurchaseDocumentModel
		model.FromDomain(document)

		if err := tx.Omit("Lines").Save(&model).Error; err != nil {
			return err
		}

		currentLineIDs := make([]uuid.UUID, 0, len(model.Lines))
		for i := range model.Lines {
			currentLineIDs = append(currentLineIDs, model.Lines[i].ID)
		}

		deleteStale := tx.Where("document_id = ?", model.ID)
		if len(currentLineIDs) > 0 {
			deleteStale = deleteStale.Where("id NOT IN ?", currentLineIDs)
		}
		if err := deleteStale.Delete(&models.PurchaseLineModel{}).Error; err != nil {
			return err
		}

		for i := range model.Lines {
			if err := tx.Save(&model.Lines[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete deletes a document and its lines
func (r *GormPurchaseDocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.PurchaseLineModel{}, "document_id = ?", id).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.PurchaseDocumentModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

func toPurchaseDocuments(list []models.PurchaseDocumentModel) []trade.PurchaseDocument {
	result := make([]trade.PurchaseDocument, 0, len(list))
	for i := range list {
		result = append(result, *list[i].ToDomain())
	}
	return result
}

// Ensure GormPurchaseDocumentRepository implements PurchaseDocumentRepository
var _ trade.PurchaseDocumentRepository = (*GormPurchaseDocumentRepository)(nil)
