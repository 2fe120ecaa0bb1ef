package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/money_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_tracker/internal/core/ports/services"
	"github.com/SscSPs/money_tracker/internal/dto"
)

// CounterpartyService manages sources of income and expense categories.
type CounterpartyService struct {
	BaseService
	counterpartyRepo portsrepo.CounterpartyRepositoryFacade
	txnRepo          portsrepo.TransactionReader
}

// NewCounterpartyService creates a new CounterpartyService.
func NewCounterpartyService(counterpartyRepo portsrepo.CounterpartyRepositoryFacade, txnRepo portsrepo.TransactionReader, options ...ServiceOption) *CounterpartyService {
	return &CounterpartyService{
		BaseService:      newBaseService(options...),
		counterpartyRepo: counterpartyRepo,
		txnRepo:          txnRepo,
	}
}

var _ portssvc.CounterpartySvcFacade = (*CounterpartyService)(nil)

func (s *CounterpartyService) CreateCounterparty(ctx context.Context, ownerID string, kind domain.TransactionKind, req dto.CreateCounterpartyRequest) (*domain.Counterparty, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown kind %q", apperrors.ErrValidation, kind)
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}

	now := s.now()
	cp := domain.Counterparty{
		CounterpartyID: s.newID(),
		OwnerID:        ownerID,
		Kind:           kind,
		Name:           name,
		Description:    normalizeRemarks(req.Description),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}
	if err := s.counterpartyRepo.SaveCounterparty(ctx, cp); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save counterparty", slog.String("kind", string(kind)))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Counterparty created",
		slog.String("counterparty_id", cp.CounterpartyID),
		slog.String("kind", string(kind)))
	return &cp, nil
}

func (s *CounterpartyService) GetCounterparty(ctx context.Context, ownerID string, kind domain.TransactionKind, counterpartyID string) (*domain.Counterparty, error) {
	cp, err := s.counterpartyRepo.FindCounterpartyByID(ctx, counterpartyID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find counterparty", slog.String("counterparty_id", counterpartyID))
		}
		return nil, err
	}
	if cp.OwnerID != ownerID || cp.Kind != kind {
		return nil, apperrors.NewNotFoundError("counterparty " + counterpartyID)
	}
	return cp, nil
}

func (s *CounterpartyService) ListCounterparties(ctx context.Context, ownerID string, kind domain.TransactionKind) ([]domain.Counterparty, error) {
	cps, err := s.counterpartyRepo.ListCounterparties(ctx, ownerID, kind)
	if err != nil {
		s.LogError(ctx, err, "Failed to list counterparties", slog.String("kind", string(kind)))
		return nil, fmt.Errorf("failed to list counterparties: %w", err)
	}
	if cps == nil {
		return []domain.Counterparty{}, nil
	}
	return cps, nil
}

func (s *CounterpartyService) UpdateCounterparty(ctx context.Context, ownerID string, kind domain.TransactionKind, counterpartyID string, req dto.UpdateCounterpartyRequest) (*domain.Counterparty, error) {
	cp, err := s.GetCounterparty(ctx, ownerID, kind, counterpartyID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidation)
		}
		cp.Name = name
	}
	if req.Description != nil {
		cp.Description = normalizeRemarks(req.Description)
	}
	cp.LastUpdatedAt = s.now()
	cp.LastUpdatedBy = ownerID

	if err := s.counterpartyRepo.UpdateCounterparty(ctx, *cp); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to update counterparty", slog.String("counterparty_id", counterpartyID))
		}
		return nil, err
	}
	return cp, nil
}

// DeleteCounterparty refuses while live transactions still reference the counterparty.
func (s *CounterpartyService) DeleteCounterparty(ctx context.Context, ownerID string, kind domain.TransactionKind, counterpartyID string) error {
	if _, err := s.GetCounterparty(ctx, ownerID, kind, counterpartyID); err != nil {
		return err
	}
	inUse, err := s.txnRepo.CountTransactionsByCounterparty(ctx, counterpartyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count transactions for counterparty", slog.String("counterparty_id", counterpartyID))
		return err
	}
	if inUse > 0 {
		return fmt.Errorf("%w: %d transactions still reference %s", apperrors.ErrConflict, inUse, counterpartyID)
	}
	if err := s.counterpartyRepo.DeleteCounterparty(ctx, counterpartyID, ownerID, s.now()); err != nil {
		s.LogFailure(ctx, err, "Failed to delete counterparty", slog.String("counterparty_id", counterpartyID))
		return err
	}
	return nil
}
