package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"moneyman/internal/cache"
	"moneyman/internal/model"
	"moneyman/internal/repository"
)

// RolloverTitle names the opening-balance transaction the month-end job
// inserts.
const RolloverTitle = "Previous Month Balance"

// RolloverService performs the month-end rollover: each user's income for the
// closing month is carried forward as next month's opening balance and the
// month's expense records are discarded.
type RolloverService struct {
	userRepo repository.UserRepository
	txnRepo  repository.TransactionRepository
	cache    *cache.Client
	logger   *zap.Logger
}

// NewRolloverService creates a new rollover service.
func NewRolloverService(userRepo repository.UserRepository, txnRepo repository.TransactionRepository, cacheClient *cache.Client, logger *zap.Logger) *RolloverService {
	return &RolloverService{
		userRepo: userRepo,
		txnRepo:  txnRepo,
		cache:    cacheClient,
		logger:   logger,
	}
}

// RunAt executes the rollover as of the given instant. It is a no-op unless
// now falls on the true last calendar day of its month, so calling it early
// or repeatedly within a month is safe. Errors are isolated per user: a
// failing user is logged and skipped, the rest of the batch still runs.
func (s *RolloverService) RunAt(ctx context.Context, now time.Time) error {
	lastDay := lastDayOfMonth(now)
	if now.Day() != lastDay {
		s.logger.Info("rollover skipped, not the last day of the month",
			zap.Int("day", now.Day()),
			zap.Int("last_day", lastDay))
		return nil
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format(model.DateLayout)
	monthEnd := now.Format(model.DateLayout)
	nextMonthFirst := time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, now.Location()).Format(model.DateLayout)

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}

	for _, user := range users {
		if err := s.rolloverUser(ctx, user.ID.String(), monthStart, monthEnd, nextMonthFirst); err != nil {
			s.logger.Error("rollover failed for user",
				zap.String("user_id", user.ID.String()),
				zap.Error(err))
			continue
		}
		s.logger.Info("rollover completed for user", zap.String("user_id", user.ID.String()))
	}

	return nil
}

// rolloverUser aggregates the month's income, posts it as next month's
// opening balance, then purges the month's expenses. Income transactions are
// never removed.
func (s *RolloverService) rolloverUser(ctx context.Context, userID, monthStart, monthEnd, nextMonthFirst string) error {
	income, err := s.txnRepo.SumByTypeInRange(ctx, userID, model.TypeIncome, monthStart, monthEnd)
	if err != nil {
		return fmt.Errorf("sum income: %w", err)
	}

	carry := &model.Transaction{
		TransactionID: uuid.New().String(),
		Title:         RolloverTitle,
		Amount:        income,
		Type:          model.TypeIncome,
		Date:          nextMonthFirst,
		UserID:        userID,
	}
	if err := s.txnRepo.Create(ctx, carry); err != nil {
		return fmt.Errorf("insert opening balance: %w", err)
	}

	if _, err := s.txnRepo.DeleteByTypeInRange(ctx, userID, model.TypeExpenses, monthStart, monthEnd); err != nil {
		return fmt.Errorf("purge expenses: %w", err)
	}

	_ = s.cache.Delete(ctx, transactionsCacheKey(userID))
	return nil
}

// lastDayOfMonth computes the number of days in t's month as day 0 of the
// following month.
func lastDayOfMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
