package trade

import (
	"context"
	"fmt"
	"time"

	"github.com/backoffice/core/internal/application/validation"
	"github.com/backoffice/core/internal/domain/partner"
	"github.com/backoffice/core/internal/domain/shared"
	"github.com/backoffice/core/internal/domain/shared/valueobject"
	"github.com/backoffice/core/internal/domain/trade"
	"github.com/backoffice/core/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// PurchaseService manages supplier documents and their side effects. Creating
// an invoice increments stock per line and credits the supplier's balance;
// editing applies only the net difference between the old and new line sets;
// deleting undoes the stored effects. Each compound operation runs in one
// transaction.
//
// Lines whose product reference no longer resolves carry no stock effect;
// they are reported back as skipped lines, never silently dropped. Their
// amount still counts toward the document total.
type PurchaseService struct {
	scope   TransactionScope
	logger  *zap.Logger
	metrics *telemetry.BusinessMetrics
}

// NewPurchaseService creates a new PurchaseService
func NewPurchaseService(scope TransactionScope, logger *zap.Logger) *PurchaseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PurchaseService{
		scope:  scope,
		logger: logger,
	}
}

// SetMetrics sets the business metrics recorder
func (s *PurchaseService) SetMetrics(metrics *telemetry.BusinessMetrics) {
	s.metrics = metrics
}

// Create persists a new purchase document, increments stock for each
// resolvable line, and credits the supplier when the document is an invoice
func (s *PurchaseService) Create(ctx context.Context, req CreatePurchaseRequest) (*PurchaseDocumentResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	doc, err := trade.NewPurchaseDocument(req.SupplierID, trade.PurchaseDocType(req.DocType), req.DocNumber, req.DocDate, req.Description)
	if err != nil {
		return nil, err
	}
	for _, line := range req.Lines {
		if _, err := doc.AddLine(line.ProductID, line.ProductName, line.Quantity, line.Price); err != nil {
			return nil, err
		}
	}

	var skipped []SkippedLine
	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.DocumentRepo().Save(ctx, doc); err != nil {
			return err
		}

		skipped, err = s.applyStockEffects(ctx, repos, doc.Lines, decimal.NewFromInt(1), req.RecordLastBuyPrice)
		if err != nil {
			return err
		}

		if doc.AffectsLedger() && doc.TotalAmount.IsPositive() {
			note := fmt.Sprintf("Purchase %s", doc.DocNumber)
			if err := s.applyLedgerMovement(ctx, repos, *doc.SupplierID, partner.MovementKindCredit, doc.TotalAmount, note); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RecordPurchaseDocument(ctx, doc.DocType.String(), doc.TotalAmount)
	s.logger.Info("purchase document created",
		zap.String("document_id", doc.ID.String()),
		zap.String("doc_type", doc.DocType.String()),
		zap.String("total", doc.TotalAmount.String()),
		zap.Int("skipped_lines", len(skipped)))

	return NewPurchaseDocumentResponse(doc, skipped), nil
}

// Update replaces a document's header and line set. Stock is adjusted by the
// net per-product quantity difference between the old and new lines; the
// supplier's ledger receives a single movement for the total difference when
// the supplier is unchanged, or a full reversal and re-application when it is
// not. An update with identical lines changes nothing.
func (s *PurchaseService) Update(ctx context.Context, docID uuid.UUID, req UpdatePurchaseRequest) (*PurchaseDocumentResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	var (
		doc     *trade.PurchaseDocument
		skipped []SkippedLine
	)
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		doc, err = repos.DocumentRepo().FindByID(ctx, docID)
		if err != nil {
			return err
		}

		oldLines := doc.Lines
		oldTotal := doc.TotalAmount
		oldAffects := doc.AffectsLedger()
		oldSupplier := doc.SupplierID

		newLines := make([]trade.PurchaseLine, 0, len(req.Lines))
		for _, line := range req.Lines {
			newLine, err := trade.NewPurchaseLine(doc.ID, line.ProductID, line.ProductName, line.Quantity, line.Price)
			if err != nil {
				return err
			}
			newLines = append(newLines, *newLine)
		}

		if err := doc.UpdateHeader(req.SupplierID, req.DocNumber, req.DocDate, req.Description); err != nil {
			return err
		}
		doc.ReplaceLines(newLines)

		if err := repos.DocumentRepo().Save(ctx, doc); err != nil {
			return err
		}

		skipped, err = s.applyLineDeltas(ctx, repos, oldLines, newLines, req.RecordLastBuyPrice)
		if err != nil {
			return err
		}

		return s.applyLedgerDelta(ctx, repos, doc, oldAffects, oldSupplier, oldTotal)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("purchase document updated",
		zap.String("document_id", doc.ID.String()),
		zap.String("total", doc.TotalAmount.String()),
		zap.Int("skipped_lines", len(skipped)))

	return NewPurchaseDocumentResponse(doc, skipped), nil
}

// Delete undoes a document's stored effects and removes it. Stock is
// decremented per resolvable line and, for invoices, the supplier is debited
// by the stored total.
func (s *PurchaseService) Delete(ctx context.Context, docID uuid.UUID) (*DeletePurchaseResponse, error) {
	var skipped []SkippedLine
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		doc, err := repos.DocumentRepo().FindByID(ctx, docID)
		if err != nil {
			return err
		}

		skipped, err = s.applyStockEffects(ctx, repos, doc.Lines, decimal.NewFromInt(-1), false)
		if err != nil {
			return err
		}

		if doc.AffectsLedger() && doc.TotalAmount.IsPositive() {
			note := fmt.Sprintf("Purchase %s (delete)", doc.DocNumber)
			if err := s.applyLedgerMovement(ctx, repos, *doc.SupplierID, partner.MovementKindDebt, doc.TotalAmount, note); err != nil {
				return err
			}
		}

		return repos.DocumentRepo().Delete(ctx, docID)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("purchase document deleted",
		zap.String("document_id", docID.String()),
		zap.Int("skipped_lines", len(skipped)))

	return &DeletePurchaseResponse{ID: docID, SkippedLines: skipped}, nil
}

// Get returns one purchase document with its lines
func (s *PurchaseService) Get(ctx context.Context, docID uuid.UUID) (*PurchaseDocumentResponse, error) {
	var doc *trade.PurchaseDocument
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		doc, err = repos.DocumentRepo().FindByID(ctx, docID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return NewPurchaseDocumentResponse(doc, nil), nil
}

// ListBetween returns documents within the optional date window
func (s *PurchaseService) ListBetween(ctx context.Context, from, to *time.Time) ([]PurchaseDocumentResponse, error) {
	var docs []trade.PurchaseDocument
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		docs, err = repos.DocumentRepo().FindBetween(ctx, from, to)
		return err
	})
	if err != nil {
		return nil, err
	}

	responses := make([]PurchaseDocumentResponse, 0, len(docs))
	for i := range docs {
		responses = append(responses, *NewPurchaseDocumentResponse(&docs[i], nil))
	}
	return responses, nil
}

// applyStockEffects increments stock by each line quantity times direction.
// Lines whose product no longer resolves are collected as skipped.
func (s *PurchaseService) applyStockEffects(ctx context.Context, repos TransactionalRepositories, lines []trade.PurchaseLine, direction decimal.Decimal, recordBuyPrice bool) ([]SkippedLine, error) {
	var skipped []SkippedLine
	for i := range lines {
		line := &lines[i]
		if line.ProductID == nil {
			continue
		}

		product, err := repos.ProductRepo().FindByID(ctx, *line.ProductID)
		if err != nil {
			if shared.IsNotFound(err) {
				skipped = append(skipped, SkippedLine{
					ProductName: line.ProductName,
					Quantity:    line.Quantity,
					Reason:      "product not found",
				})
				continue
			}
			return skipped, err
		}

		product.IncrementStock(line.Quantity.Mul(direction))
		if recordBuyPrice {
			product.RecordBuyPrice(line.Price)
		}
		if err := repos.ProductRepo().Save(ctx, product); err != nil {
			return skipped, err
		}
	}
	return skipped, nil
}

// applyLineDeltas adjusts stock by the net quantity difference per product
// between the old and new line sets
func (s *PurchaseService) applyLineDeltas(ctx context.Context, repos TransactionalRepositories, oldLines, newLines []trade.PurchaseLine, recordBuyPrice bool) ([]SkippedLine, error) {
	deltas := trade.LineQuantityDeltas(oldLines, newLines)

	var skipped []SkippedLine
	handled := make(map[uuid.UUID]bool)

	for i := range newLines {
		line := &newLines[i]
		if line.ProductID == nil || handled[*line.ProductID] {
			continue
		}
		handled[*line.ProductID] = true

		product, err := repos.ProductRepo().FindByID(ctx, *line.ProductID)
		if err != nil {
			if shared.IsNotFound(err) {
				skipped = append(skipped, SkippedLine{
					ProductName: line.ProductName,
					Quantity:    line.Quantity,
					Reason:      "product not found",
				})
				continue
			}
			return skipped, err
		}

		if delta, ok := deltas[*line.ProductID]; ok {
			product.IncrementStock(delta)
		}
		if recordBuyPrice {
			product.RecordBuyPrice(line.Price)
		}
		if err := repos.ProductRepo().Save(ctx, product); err != nil {
			return skipped, err
		}
	}

	// Products only referenced by removed lines: their delta is the full
	// negative of the old quantity.
	for i := range oldLines {
		line := &oldLines[i]
		if line.ProductID == nil || handled[*line.ProductID] {
			continue
		}
		handled[*line.ProductID] = true

		delta, ok := deltas[*line.ProductID]
		if !ok {
			continue
		}

		product, err := repos.ProductRepo().FindByID(ctx, *line.ProductID)
		if err != nil {
			if shared.IsNotFound(err) {
				skipped = append(skipped, SkippedLine{
					ProductName: line.ProductName,
					Quantity:    line.Quantity,
					Reason:      "product not found",
				})
				continue
			}
			return skipped, err
		}

		product.IncrementStock(delta)
		if err := repos.ProductRepo().Save(ctx, product); err != nil {
			return skipped, err
		}
	}

	return skipped, nil
}

// applyLedgerDelta reconciles the supplier ledger after a header/line update.
// When the document kept the same supplier and stayed an invoice, only the
// total difference moves the balance. Otherwise the old effect is debited
// back and the new one credited.
func (s *PurchaseService) applyLedgerDelta(ctx context.Context, repos TransactionalRepositories, doc *trade.PurchaseDocument, oldAffects bool, oldSupplier *uuid.UUID, oldTotal decimal.Decimal) error {
	newAffects := doc.AffectsLedger()
	note := fmt.Sprintf("Purchase %s (update)", doc.DocNumber)

	sameSupplier := oldAffects && newAffects && oldSupplier != nil && doc.SupplierID != nil && *oldSupplier == *doc.SupplierID
	if sameSupplier {
		delta := doc.TotalAmount.Sub(oldTotal)
		switch {
		case delta.IsPositive():
			return s.applyLedgerMovement(ctx, repos, *doc.SupplierID, partner.MovementKindCredit, delta, note)
		case delta.IsNegative():
			return s.applyLedgerMovement(ctx, repos, *doc.SupplierID, partner.MovementKindDebt, delta.Abs(), note)
		}
		return nil
	}

	if oldAffects && oldTotal.IsPositive() {
		if err := s.applyLedgerMovement(ctx, repos, *oldSupplier, partner.MovementKindDebt, oldTotal, note); err != nil {
			return err
		}
	}
	if newAffects && doc.TotalAmount.IsPositive() {
		return s.applyLedgerMovement(ctx, repos, *doc.SupplierID, partner.MovementKindCredit, doc.TotalAmount, note)
	}
	return nil
}

func (s *PurchaseService) applyLedgerMovement(ctx context.Context, repos TransactionalRepositories, supplierID uuid.UUID, kind partner.MovementKind, amount decimal.Decimal, note string) error {
	counterparty, err := repos.CounterpartyRepo().FindByID(ctx, supplierID)
	if err != nil {
		return err
	}

	movement, err := counterparty.ApplyMovement(kind, valueobject.NewMoneyTRY(amount), note)
	if err != nil {
		return err
	}

	if err := repos.CounterpartyRepo().Save(ctx, counterparty); err != nil {
		return err
	}
	return repos.LedgerMovementRepo().Append(ctx, movement)
}
