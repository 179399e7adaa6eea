package repository

import (
	"context"

	"gorm.io/gorm"

	"moneyman/internal/model"
)

// TransactionRepository defines transaction persistence operations. Every
// query that touches a single transaction filters on the (transactionId,
// userId) pair; ownership is enforced by query scoping, not by the store.
type TransactionRepository interface {
	Create(ctx context.Context, txn *model.Transaction) error
	ListByUser(ctx context.Context, userID string) ([]model.Transaction, error)
	ListByUserDateAsc(ctx context.Context, userID string) ([]model.Transaction, error)
	FindByID(ctx context.Context, userID, transactionID string) (*model.Transaction, error)
	Update(ctx context.Context, userID, transactionID, title string, amount int64, txnType string) error
	Delete(ctx context.Context, userID, transactionID string) (int64, error)
	DeleteAllByUser(ctx context.Context, userID string) (int64, error)
	SumByTypeInRange(ctx context.Context, userID, txnType, from, to string) (int64, error)
	DeleteByTypeInRange(ctx context.Context, userID, txnType, from, to string) (int64, error)
}

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository builds a GORM-backed repository.
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, txn *model.Transaction) error {
	return r.db.WithContext(ctx).Create(txn).Error
}

func (r *transactionRepository) ListByUser(ctx context.Context, userID string) ([]model.Transaction, error) {
	var txns []model.Transaction
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&txns).Error; err != nil {
		return nil, err
	}
	return txns, nil
}

// ListByUserDateAsc returns the user's transactions ordered by date
// ascending, as the report renders them.
func (r *transactionRepository) ListByUserDateAsc(ctx context.Context, userID string) ([]model.Transaction, error) {
	var txns []model.Transaction
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&txns).Error; err != nil {
		return nil, err
	}
	return txns, nil
}

func (r *transactionRepository) FindByID(ctx context.Context, userID, transactionID string) (*model.Transaction, error) {
	var txn model.Transaction
	if err := r.db.WithContext(ctx).
		Where("transaction_id = ? AND user_id = ?", transactionID, userID).
		First(&txn).Error; err != nil {
		return nil, err
	}
	return &txn, nil
}

// Update overwrites title, amount, and type. The date is left untouched.
func (r *transactionRepository) Update(ctx context.Context, userID, transactionID, title string, amount int64, txnType string) error {
	return r.db.WithContext(ctx).
		Model(&model.Transaction{}).
		Where("transaction_id = ? AND user_id = ?", transactionID, userID).
		Updates(map[string]interface{}{
			"title":  title,
			"amount": amount,
			"type":   txnType,
		}).Error
}

func (r *transactionRepository) Delete(ctx context.Context, userID, transactionID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("transaction_id = ? AND user_id = ?", transactionID, userID).
		Delete(&model.Transaction{})
	return res.RowsAffected, res.Error
}

func (r *transactionRepository) DeleteAllByUser(ctx context.Context, userID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.Transaction{})
	return res.RowsAffected, res.Error
}

// SumByTypeInRange totals amounts of the given type dated within [from, to]
// inclusive. Returns 0 when nothing matches.
func (r *transactionRepository) SumByTypeInRange(ctx context.Context, userID, txnType, from, to string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.Transaction{}).
		Where("user_id = ? AND type = ? AND date >= ? AND date <= ?", userID, txnType, from, to).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *transactionRepository) DeleteByTypeInRange(ctx context.Context, userID, txnType, from, to string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND type = ? AND date >= ? AND date <= ?", userID, txnType, from, to).
		Delete(&model.Transaction{})
	return res.RowsAffected, res.Error
}
