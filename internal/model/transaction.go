package model

// Transaction types. The sign of Amount is implied by the type.
const (
	TypeIncome   = "Income"
	TypeExpenses = "Expenses"
)

// DateLayout is the day-granularity ISO 8601 form transactions are dated with.
// Storing dates as strings keeps range filters lexical, which for this layout
// is also chronological.
const DateLayout = "2006-01-02"

// Transaction is a single income or expense entry owned by one user.
// TransactionID is the client-visible identifier, generated at creation and
// independent of the store's internal key. Every read, update, and delete is
// scoped by the (TransactionID, UserID) pair.
type Transaction struct {
	ID            uint   `json:"-" gorm:"primaryKey"`
	TransactionID string `json:"transactionId" gorm:"uniqueIndex;type:char(36);not null"`
	Title         string `json:"title" gorm:"size:255;not null"`
	Amount        int64  `json:"amount" gorm:"not null"`
	Type          string `json:"type" gorm:"size:20;not null;index"`
	Date          string `json:"date" gorm:"type:char(10);not null;index"`
	UserID        string `json:"userId" gorm:"type:char(36);not null;index"`
}
