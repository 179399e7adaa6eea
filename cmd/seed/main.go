package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"moneyman/internal/config"
	"moneyman/internal/db"
	"moneyman/internal/model"
	"moneyman/internal/repository"
)

// seedPassword is the known login password for every generated user.
const seedPassword = "password123"

func main() {
	users := flag.Int("users", 3, "number of demo users to create")
	txns := flag.Int("transactions", 20, "transactions per user, spread over the current month")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := gormDB.AutoMigrate(&model.User{}, &model.Transaction{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	userRepo := repository.NewUserRepository(gormDB)
	txnRepo := repository.NewTransactionRepository(gormDB)

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), 10)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	ctx := context.Background()
	now := time.Now()

	for i := 0; i < *users; i++ {
		user := &model.User{
			Username:     gofakeit.Name(),
			Email:        gofakeit.Email(),
			PasswordHash: string(hash),
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create user: %v", err)
		}

		for j := 0; j < *txns; j++ {
			day := rand.Intn(now.Day()) + 1
			date := time.Date(now.Year(), now.Month(), day, 0, 0, 0, 0, time.UTC)
			txn := &model.Transaction{
				TransactionID: uuid.New().String(),
				Title:         gofakeit.ProductName(),
				Amount:        int64(rand.Intn(900) + 100),
				Type:          randomType(),
				Date:          date.Format(model.DateLayout),
				UserID:        user.ID.String(),
			}
			if err := txnRepo.Create(ctx, txn); err != nil {
				log.Fatalf("Failed to create transaction: %v", err)
			}
		}

		fmt.Printf("Seeded user %s (%s) with %d transactions, password %q\n",
			user.Username, user.Email, *txns, seedPassword)
	}
}

func randomType() string {
	if rand.Intn(2) == 0 {
		return model.TypeExpenses
	}
	return model.TypeIncome
}
