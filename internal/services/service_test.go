package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"goxu-service/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Wallet{},
		&models.WalletTransaction{},
		&models.ArchivedTransaction{},
		&models.Bank{},
		&models.CompanyBankAccount{},
		&models.TripRequest{},
		&models.Contract{},
		&models.SupportTicket{},
		&models.Notification{},
		&models.ChatMessage{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, role string, balance float64) models.User {
	t.Helper()

	user := models.User{
		ID:       uuid.NewString(),
		Username: "u-" + uuid.NewString()[:8],
		Role:     role,
		Active:   true,
	}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&models.Wallet{
		UserID:   user.ID,
		Username: user.Username,
		Balance:  balance,
	}).Error)
	return user
}

func balanceOf(t *testing.T, db *gorm.DB, userID string) float64 {
	t.Helper()

	var wallet models.Wallet
	require.NoError(t, db.Where("user_id = ?", userID).First(&wallet).Error)
	return wallet.Balance
}
