package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"moneyman/internal/cache"
	"moneyman/internal/errors"
	"moneyman/internal/model"
	"moneyman/internal/repository"
)

const transactionCacheTTL = 5 * time.Minute

// TransactionService handles per-user transaction CRUD.
type TransactionService interface {
	List(ctx context.Context, userID string) ([]model.Transaction, error)
	Create(ctx context.Context, userID, title string, amount float64, txnType string) (string, error)
	Update(ctx context.Context, userID, transactionID, title string, amount float64, txnType string) error
	Delete(ctx context.Context, userID, transactionID string) error
	Clear(ctx context.Context, userID string) error
}

type transactionService struct {
	repo  repository.TransactionRepository
	cache *cache.Client
	now   func() time.Time
}

// NewTransactionService creates a new transaction service. The clock is
// injected so creation dates are deterministic under test; production wiring
// passes time.Now.
func NewTransactionService(repo repository.TransactionRepository, cacheClient *cache.Client, now func() time.Time) TransactionService {
	return &transactionService{
		repo:  repo,
		cache: cacheClient,
		now:   now,
	}
}

func transactionsCacheKey(userID string) string {
	return fmt.Sprintf("transactions:%s", userID)
}

// List returns all of the user's transactions, in no particular order.
func (s *transactionService) List(ctx context.Context, userID string) ([]model.Transaction, error) {
	if data, _ := s.cache.Get(ctx, transactionsCacheKey(userID)); data != nil {
		var cached []model.Transaction
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	txns, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	if payload, err := json.Marshal(txns); err == nil {
		_ = s.cache.Set(ctx, transactionsCacheKey(userID), payload, transactionCacheTTL)
	}

	return txns, nil
}

// Create stores a new transaction stamped with the current calendar day and a
// fresh client-visible id. Fractional amounts are truncated toward zero.
func (s *transactionService) Create(ctx context.Context, userID, title string, amount float64, txnType string) (string, error) {
	if title == "" || txnType == "" {
		return "", errors.ErrMissingFields
	}

	txn := &model.Transaction{
		TransactionID: uuid.New().String(),
		Title:         title,
		Amount:        int64(amount),
		Type:          txnType,
		Date:          s.now().UTC().Format(model.DateLayout),
		UserID:        userID,
	}
	if err := s.repo.Create(ctx, txn); err != nil {
		return "", fmt.Errorf("create transaction: %w", err)
	}

	s.invalidate(ctx, userID)
	return txn.TransactionID, nil
}

// Update overwrites title, amount, and type of an owned transaction. The
// existence read comes first so an unowned or absent id is reported as not
// found rather than silently matching nothing.
func (s *transactionService) Update(ctx context.Context, userID, transactionID, title string, amount float64, txnType string) error {
	if title == "" || txnType == "" {
		return errors.ErrMissingFields
	}

	if _, err := s.repo.FindByID(ctx, userID, transactionID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrTransactionNotFound
		}
		return fmt.Errorf("find transaction: %w", err)
	}

	if err := s.repo.Update(ctx, userID, transactionID, title, int64(amount), txnType); err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}

	s.invalidate(ctx, userID)
	return nil
}

// Delete removes exactly one owned transaction.
func (s *transactionService) Delete(ctx context.Context, userID, transactionID string) error {
	if _, err := s.repo.FindByID(ctx, userID, transactionID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrTransactionNotFound
		}
		return fmt.Errorf("find transaction: %w", err)
	}

	deleted, err := s.repo.Delete(ctx, userID, transactionID)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	// A concurrent delete may have won the race between the read and the
	// delete; both callers end in "not present".
	if deleted == 0 {
		return errors.ErrTransactionNotFound
	}

	s.invalidate(ctx, userID)
	return nil
}

// Clear removes all of the user's transactions. Zero matches is an error, not
// a no-op success.
func (s *transactionService) Clear(ctx context.Context, userID string) error {
	deleted, err := s.repo.DeleteAllByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("clear transactions: %w", err)
	}
	if deleted == 0 {
		return errors.ErrNoTransactions
	}

	s.invalidate(ctx, userID)
	return nil
}

func (s *transactionService) invalidate(ctx context.Context, userID string) {
	_ = s.cache.Delete(ctx, transactionsCacheKey(userID))
}
