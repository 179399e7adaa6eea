package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"moneyman/internal/model"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

// MockTransactionRepository is a mock implementation of
// repository.TransactionRepository.
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, txn *model.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) ListByUser(ctx context.Context, userID string) ([]model.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListByUserDateAsc(ctx context.Context, userID string) ([]model.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindByID(ctx context.Context, userID, transactionID string) (*model.Transaction, error) {
	args := m.Called(ctx, userID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) Update(ctx context.Context, userID, transactionID, title string, amount int64, txnType string) error {
	args := m.Called(ctx, userID, transactionID, title, amount, txnType)
	return args.Error(0)
}

func (m *MockTransactionRepository) Delete(ctx context.Context, userID, transactionID string) (int64, error) {
	args := m.Called(ctx, userID, transactionID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) DeleteAllByUser(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) SumByTypeInRange(ctx context.Context, userID, txnType, from, to string) (int64, error) {
	args := m.Called(ctx, userID, txnType, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) DeleteByTypeInRange(ctx context.Context, userID, txnType, from, to string) (int64, error) {
	args := m.Called(ctx, userID, txnType, from, to)
	return args.Get(0).(int64), args.Error(1)
}
