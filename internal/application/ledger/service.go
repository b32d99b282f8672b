package ledger

import (
	"context"
	"fmt"

	"github.com/backoffice/core/internal/application/validation"
	"github.com/backoffice/core/internal/domain/partner"
	"github.com/backoffice/core/internal/domain/shared"
	"github.com/backoffice/core/internal/domain/shared/valueobject"
	"github.com/backoffice/core/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Service handles counterparty ledger operations
type Service struct {
	scope            TransactionScope
	counterpartyRepo partner.CounterpartyRepository
	movementRepo     partner.LedgerMovementRepository
	logger           *zap.Logger
	metrics          *telemetry.BusinessMetrics
}

// NewService creates a new ledger Service
func NewService(
	scope TransactionScope,
	counterpartyRepo partner.CounterpartyRepository,
	movementRepo partner.LedgerMovementRepository,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		scope:            scope,
		counterpartyRepo: counterpartyRepo,
		movementRepo:     movementRepo,
		logger:           logger,
	}
}

// SetMetrics sets the business metrics recorder
func (s *Service) SetMetrics(metrics *telemetry.BusinessMetrics) {
	s.metrics = metrics
}

// CreateCounterparty creates a counterparty with an initial balance. An
// unknown type falls back to receivable; a malformed balance string fails
// with a validation error.
func (s *Service) CreateCounterparty(ctx context.Context, req CreateCounterpartyRequest) (*CounterpartyResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	balance := valueobject.ZeroTRY()
	if req.InitialBalance != "" {
		parsed, err := valueobject.NewMoneyTRYFromString(req.InitialBalance)
		if err != nil {
			return nil, shared.NewValidationError(fmt.Sprintf("Invalid initial balance: %s", req.InitialBalance))
		}
		balance = parsed
	}

	counterparty, err := partner.NewCounterparty(req.Name, req.Phone, req.Address, balance, partner.CounterpartyType(req.Type))
	if err != nil {
		return nil, err
	}

	if err := s.counterpartyRepo.Save(ctx, counterparty); err != nil {
		return nil, err
	}

	s.logger.Info("counterparty created",
		zap.String("counterparty_id", counterparty.ID.String()),
		zap.String("type", counterparty.Type.String()))

	return NewCounterpartyResponse(counterparty), nil
}

// UpdateCounterparty updates name and contact details
func (s *Service) UpdateCounterparty(ctx context.Context, id uuid.UUID, req UpdateCounterpartyRequest) (*CounterpartyResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	counterparty, err := s.counterpartyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := counterparty.Rename(req.Name); err != nil {
		return nil, err
	}
	counterparty.UpdateContact(req.Phone, req.Address)

	if err := s.counterpartyRepo.Save(ctx, counterparty); err != nil {
		return nil, err
	}
	return NewCounterpartyResponse(counterparty), nil
}

// ApplyMovement applies a movement to a counterparty's balance and appends
// the movement record, atomically.
func (s *Service) ApplyMovement(ctx context.Context, req ApplyMovementRequest) (*MovementResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	amount, err := valueobject.NewMoneyTRYFromString(req.Amount)
	if err != nil {
		return nil, shared.NewValidationError(fmt.Sprintf("Invalid amount: %s", req.Amount))
	}
	if !amount.IsPositive() {
		return nil, shared.NewValidationError("Movement amount must be positive")
	}

	kind := partner.MovementKind(req.Kind)

	var response *MovementResponse
	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		counterparty, err := repos.CounterpartyRepo().FindByID(ctx, req.CounterpartyID)
		if err != nil {
			return err
		}

		movement, err := counterparty.ApplyMovement(kind, amount, req.Note)
		if err != nil {
			return err
		}

		if err := repos.CounterpartyRepo().Save(ctx, counterparty); err != nil {
			return err
		}
		if err := repos.MovementRepo().Append(ctx, movement); err != nil {
			return err
		}

		response = NewMovementResponse(movement)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RecordLedgerMovement(ctx, kind.String())
	s.logger.Info("ledger movement applied",
		zap.String("counterparty_id", req.CounterpartyID.String()),
		zap.String("kind", kind.String()),
		zap.String("amount", amount.Amount().String()))

	return response, nil
}

// GetCounterparty returns one counterparty
func (s *Service) GetCounterparty(ctx context.Context, id uuid.UUID) (*CounterpartyResponse, error) {
	counterparty, err := s.counterpartyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewCounterpartyResponse(counterparty), nil
}

// ListCounterparties returns counterparties matching the filter
func (s *Service) ListCounterparties(ctx context.Context, filter shared.Filter) ([]CounterpartyResponse, error) {
	list, err := s.counterpartyRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]CounterpartyResponse, 0, len(list))
	for i := range list {
		responses = append(responses, *NewCounterpartyResponse(&list[i]))
	}
	return responses, nil
}

// ListMovements returns all movements of a counterparty, newest first
func (s *Service) ListMovements(ctx context.Context, counterpartyID uuid.UUID) ([]MovementResponse, error) {
	movements, err := s.movementRepo.FindByCounterparty(ctx, counterpartyID)
	if err != nil {
		return nil, err
	}

	responses := make([]MovementResponse, 0, len(movements))
	for i := range movements {
		responses = append(responses, *NewMovementResponse(&movements[i]))
	}
	return responses, nil
}

// Totals returns the aggregate receivable and payable sums. The receivable
// total sums positive balances of receivable-type counterparties; the payable
// total sums absolute negative balances of payable-type counterparties. A
// receivable-type counterparty with a negative balance contributes to neither.
func (s *Service) Totals(ctx context.Context) (*TotalsResponse, error) {
	receivables, err := s.counterpartyRepo.FindByType(ctx, partner.CounterpartyTypeReceivable)
	if err != nil {
		return nil, err
	}
	payables, err := s.counterpartyRepo.FindByType(ctx, partner.CounterpartyTypePayable)
	if err != nil {
		return nil, err
	}

	totalReceivable := decimal.Zero
	for i := range receivables {
		if receivables[i].Balance.IsPositive() {
			totalReceivable = totalReceivable.Add(receivables[i].Balance)
		}
	}

	totalPayable := decimal.Zero
	for i := range payables {
		if payables[i].Balance.IsNegative() {
			totalPayable = totalPayable.Add(payables[i].Balance.Abs())
		}
	}

	return &TotalsResponse{
		TotalReceivable: totalReceivable,
		TotalPayable:    totalPayable,
	}, nil
}

// DeleteCounterparty removes a counterparty
func (s *Service) DeleteCounterparty(ctx context.Context, id uuid.UUID) error {
	if err := s.counterpartyRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("counterparty deleted", zap.String("counterparty_id", id.String()))
	return nil
}
