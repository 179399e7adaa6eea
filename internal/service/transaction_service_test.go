package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"moneyman/internal/errors"
	"moneyman/internal/model"
)

// fixedClock pins creation dates to 2025-03-10.
func fixedClock() time.Time {
	return time.Date(2025, 3, 10, 12, 30, 0, 0, time.UTC)
}

func newTransactionService(repo *MockTransactionRepository) TransactionService {
	return NewTransactionService(repo, nil, fixedClock)
}

func TestTransactionService_Create(t *testing.T) {
	tests := []struct {
		name           string
		title          string
		amount         float64
		txnType        string
		setupMock      func(*MockTransactionRepository)
		expectedError  error
		expectedAmount int64
	}{
		{
			name:    "stamps date and generates id",
			title:   "Salary",
			amount:  500,
			txnType: model.TypeIncome,
			setupMock: func(m *MockTransactionRepository) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(txn *model.Transaction) bool {
					return txn.Date == "2025-03-10" && txn.TransactionID != "" && txn.UserID == "user-1"
				})).Return(nil)
			},
			expectedAmount: 500,
		},
		{
			name:    "fractional amount truncated toward zero",
			title:   "Groceries",
			amount:  99.99,
			txnType: model.TypeExpenses,
			setupMock: func(m *MockTransactionRepository) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(txn *model.Transaction) bool {
					return txn.Amount == 99
				})).Return(nil)
			},
			expectedAmount: 99,
		},
		{
			name:    "negative fractional amount truncated toward zero",
			title:   "Adjustment",
			amount:  -5.7,
			txnType: model.TypeExpenses,
			setupMock: func(m *MockTransactionRepository) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(txn *model.Transaction) bool {
					return txn.Amount == -5
				})).Return(nil)
			},
			expectedAmount: -5,
		},
		{
			name:          "missing title",
			title:         "",
			amount:        10,
			txnType:       model.TypeIncome,
			setupMock:     func(m *MockTransactionRepository) {},
			expectedError: errors.ErrMissingFields,
		},
		{
			name:          "missing type",
			title:         "Salary",
			amount:        10,
			txnType:       "",
			setupMock:     func(m *MockTransactionRepository) {},
			expectedError: errors.ErrMissingFields,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockTransactionRepository)
			tt.setupMock(mockRepo)

			svc := newTransactionService(mockRepo)
			id, err := svc.Create(context.Background(), "user-1", tt.title, tt.amount, tt.txnType)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, id)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, id)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestTransactionService_CreateThenListRoundTrips(t *testing.T) {
	mockRepo := new(MockTransactionRepository)

	var stored model.Transaction
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Transaction")).
		Run(func(args mock.Arguments) {
			stored = *args.Get(1).(*model.Transaction)
		}).Return(nil)

	svc := newTransactionService(mockRepo)

	id, err := svc.Create(context.Background(), "user-1", "Salary", 500, model.TypeIncome)
	require.NoError(t, err)

	mockRepo.On("ListByUser", mock.Anything, "user-1").Return([]model.Transaction{stored}, nil)

	txns, err := svc.List(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, id, txns[0].TransactionID)
	assert.Equal(t, "Salary", txns[0].Title)
	assert.Equal(t, int64(500), txns[0].Amount)
	assert.Equal(t, model.TypeIncome, txns[0].Type)
	assert.Equal(t, "2025-03-10", txns[0].Date)
}

func TestTransactionService_Update(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(*MockTransactionRepository)
		expectedError error
	}{
		{
			name: "successful update",
			setupMock: func(m *MockTransactionRepository) {
				m.On("FindByID", mock.Anything, "user-1", "txn-1").Return(&model.Transaction{TransactionID: "txn-1"}, nil)
				m.On("Update", mock.Anything, "user-1", "txn-1", "Rent", int64(1200), model.TypeExpenses).Return(nil)
			},
		},
		{
			name: "not found",
			setupMock: func(m *MockTransactionRepository) {
				m.On("FindByID", mock.Anything, "user-1", "txn-1").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrTransactionNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockTransactionRepository)
			tt.setupMock(mockRepo)

			svc := newTransactionService(mockRepo)
			err := svc.Update(context.Background(), "user-1", "txn-1", "Rent", 1200, model.TypeExpenses)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestTransactionService_Delete(t *testing.T) {
	t.Run("successful delete", func(t *testing.T) {
		mockRepo := new(MockTransactionRepository)
		mockRepo.On("FindByID", mock.Anything, "user-1", "txn-1").Return(&model.Transaction{TransactionID: "txn-1"}, nil)
		mockRepo.On("Delete", mock.Anything, "user-1", "txn-1").Return(int64(1), nil)

		svc := newTransactionService(mockRepo)
		assert.NoError(t, svc.Delete(context.Background(), "user-1", "txn-1"))
		mockRepo.AssertExpectations(t)
	})

	t.Run("nonexistent id is not found", func(t *testing.T) {
		mockRepo := new(MockTransactionRepository)
		mockRepo.On("FindByID", mock.Anything, "user-1", "missing").Return(nil, gorm.ErrRecordNotFound)

		svc := newTransactionService(mockRepo)
		assert.ErrorIs(t, svc.Delete(context.Background(), "user-1", "missing"), errors.ErrTransactionNotFound)
		mockRepo.AssertExpectations(t)
	})

	t.Run("repeat delete is not found", func(t *testing.T) {
		mockRepo := new(MockTransactionRepository)
		mockRepo.On("FindByID", mock.Anything, "user-1", "txn-1").Return(&model.Transaction{TransactionID: "txn-1"}, nil).Once()
		mockRepo.On("Delete", mock.Anything, "user-1", "txn-1").Return(int64(1), nil).Once()
		mockRepo.On("FindByID", mock.Anything, "user-1", "txn-1").Return(nil, gorm.ErrRecordNotFound).Once()

		svc := newTransactionService(mockRepo)
		assert.NoError(t, svc.Delete(context.Background(), "user-1", "txn-1"))
		assert.ErrorIs(t, svc.Delete(context.Background(), "user-1", "txn-1"), errors.ErrTransactionNotFound)
		mockRepo.AssertExpectations(t)
	})

	t.Run("race loser is not found", func(t *testing.T) {
		// The read succeeds but a concurrent delete wins before ours runs.
		mockRepo := new(MockTransactionRepository)
		mockRepo.On("FindByID", mock.Anything, "user-1", "txn-1").Return(&model.Transaction{TransactionID: "txn-1"}, nil)
		mockRepo.On("Delete", mock.Anything, "user-1", "txn-1").Return(int64(0), nil)

		svc := newTransactionService(mockRepo)
		assert.ErrorIs(t, svc.Delete(context.Background(), "user-1", "txn-1"), errors.ErrTransactionNotFound)
		mockRepo.AssertExpectations(t)
	})
}

func TestTransactionService_Clear(t *testing.T) {
	t.Run("removes all transactions", func(t *testing.T) {
		mockRepo := new(MockTransactionRepository)
		mockRepo.On("DeleteAllByUser", mock.Anything, "user-1").Return(int64(4), nil)

		svc := newTransactionService(mockRepo)
		assert.NoError(t, svc.Clear(context.Background(), "user-1"))
		mockRepo.AssertExpectations(t)
	})

	t.Run("zero matches is an error, not a no-op", func(t *testing.T) {
		mockRepo := new(MockTransactionRepository)
		mockRepo.On("DeleteAllByUser", mock.Anything, "user-1").Return(int64(0), nil)

		svc := newTransactionService(mockRepo)
		assert.ErrorIs(t, svc.Clear(context.Background(), "user-1"), errors.ErrNoTransactions)
		mockRepo.AssertExpectations(t)
	})
}
