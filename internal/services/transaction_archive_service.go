package services

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"goxu-service/internal/models"
)

// Resolved transactions older than this are moved to the archive table.
const archiveRetention = 4 * 30 * 24 * time.Hour

type TransactionArchiveService struct {
	DB *gorm.DB
}

func NewTransactionArchiveService(db *gorm.DB) *TransactionArchiveService {
	return &TransactionArchiveService{DB: db}
}

// ArchiveTransactions moves resolved rows past retention into
// archived_transactions. PENDING rows are never archived: they must stay
// resolvable through the admin flow.
func (s *TransactionArchiveService) ArchiveTransactions() {
	cutoff := time.Now().Add(-archiveRetention)

	var old []models.WalletTransaction
	err := s.DB.
		Where("status != ? AND created_at < ?", models.StatusPending, cutoff).
		Find(&old).Error
	if err != nil {
		log.Printf("archive: scan failed: %v", err)
		return
	}
	if len(old) == 0 {
		return
	}

	archived := make([]models.ArchivedTransaction, 0, len(old))
	ids := make([]int, 0, len(old))
	for _, t := range old {
		archived = append(archived, models.ArchivedTransaction{
			TransactionNo: t.TransactionNo,
			SenderID:      t.SenderID,
			ReceiverID:    t.ReceiverID,
			Amount:        t.Amount,
			Type:          t.Type,
			Bill:          t.Bill,
			Status:        t.Status,
			EmployeeID:    t.EmployeeID,
			Reason:        t.Reason,
			CreatedAt:     t.CreatedAt,
		})
		ids = append(ids, t.ID)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&archived).Error; err != nil {
			return err
		}
		return tx.Delete(&models.WalletTransaction{}, ids).Error
	})
	if err != nil {
		log.Printf("archive: move failed: %v", err)
		return
	}
	log.Printf("archive: moved %d transactions", len(archived))
}

// StartScheduler runs the archiver daily at midnight.
func (s *TransactionArchiveService) StartScheduler() {
	c := cron.New()
	if _, err := c.AddFunc("0 0 * * *", s.ArchiveTransactions); err != nil {
		log.Printf("archive: scheduling failed: %v", err)
		return
	}
	c.Start()
	log.Println("Transaction archive scheduler started (daily at 00:00)")
}
