package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/middleware"
	"github.com/google/uuid"
)

const (
	defaultPageSize         = 20
	defaultLedgerWindowDays = 30
)

// BaseService provides common functionality for all services
type BaseService struct {
	clock            func() time.Time
	idGenerator      func() string
	pageSize         int
	ledgerWindowDays int
}

// ServiceOption is a functional option shared by every service constructor.
type ServiceOption func(*BaseService)

// WithClock replaces time.Now, mainly for tests.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.clock = clock
	}
}

// WithIDGenerator replaces uuid.NewString for entity and group ids.
func WithIDGenerator(gen func() string) ServiceOption {
	return func(s *BaseService) {
		s.idGenerator = gen
	}
}

// WithPageSize sets the listing page size used when a request does not carry one.
func WithPageSize(size int) ServiceOption {
	return func(s *BaseService) {
		if size > 0 {
			s.pageSize = size
		}
	}
}

// WithLedgerWindow sets how many days back the ledger looks when no start date is given.
func WithLedgerWindow(days int) ServiceOption {
	return func(s *BaseService) {
		if days > 0 {
			s.ledgerWindowDays = days
		}
	}
}

func newBaseService(options ...ServiceOption) BaseService {
	base := BaseService{
		clock:            time.Now,
		idGenerator:      uuid.NewString,
		pageSize:         defaultPageSize,
		ledgerWindowDays: defaultLedgerWindowDays,
	}
	for _, option := range options {
		option(&base)
	}
	return base
}

func (s *BaseService) now() time.Time {
	return s.clock().UTC()
}

func (s *BaseService) newID() string {
	return s.idGenerator()
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// LogFailure logs err at error level unless it is a rejection the caller caused
// (validation, not found, settled, duplicate, in use), which is only worth a debug line.
func (s *BaseService) LogFailure(ctx context.Context, err error, msg string, keyvals ...any) {
	if isRejection(err) {
		args := make([]any, 0, len(keyvals)+1)
		args = append(args, slog.String("reason", err.Error()))
		args = append(args, keyvals...)
		s.LogDebug(ctx, msg, args...)
		return
	}
	s.LogError(ctx, err, msg, keyvals...)
}

func isRejection(err error) bool {
	for _, target := range []error{apperrors.ErrValidation, apperrors.ErrNotFound, apperrors.ErrImmutable, apperrors.ErrDuplicate, apperrors.ErrConflict} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
