package handler

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"moneyman/internal/model"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, username, email, password string) error {
	args := m.Called(ctx, username, email, password)
	return args.Error(0)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*model.User), args.Error(2)
}

// MockTransactionService is a mock implementation of
// service.TransactionService.
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) List(ctx context.Context, userID string) ([]model.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Transaction), args.Error(1)
}

func (m *MockTransactionService) Create(ctx context.Context, userID, title string, amount float64, txnType string) (string, error) {
	args := m.Called(ctx, userID, title, amount, txnType)
	return args.String(0), args.Error(1)
}

func (m *MockTransactionService) Update(ctx context.Context, userID, transactionID, title string, amount float64, txnType string) error {
	args := m.Called(ctx, userID, transactionID, title, amount, txnType)
	return args.Error(0)
}

func (m *MockTransactionService) Delete(ctx context.Context, userID, transactionID string) error {
	args := m.Called(ctx, userID, transactionID)
	return args.Error(0)
}

func (m *MockTransactionService) Clear(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockReportService is a mock implementation of service.ReportService.
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Generate(ctx context.Context, userID string, w io.Writer) error {
	args := m.Called(ctx, userID, w)
	return args.Error(0)
}
