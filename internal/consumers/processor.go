package consumers

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log"
	"os"

	"gorm.io/gorm"

	"goxu-service/internal/models"
	"goxu-service/internal/services"
)

// Processor executes the queued side work: persisting notifications and
// fingerprinting uploaded deposit receipts.
type Processor struct {
	DB *gorm.DB
}

func NewProcessor(db *gorm.DB) *Processor {
	return &Processor{DB: db}
}

func (p *Processor) ProcessNotifyDispatch(payload services.NotifyPayload) error {
	n := models.Notification{
		UserID: payload.UserID,
		Title:  payload.Title,
		Body:   payload.Body,
	}
	if err := p.DB.Create(&n).Error; err != nil {
		log.Printf("notify: persist failed for user %s: %v", payload.UserID, err)
		return err
	}
	return nil
}

// ProcessReceipt stores a checksum of the uploaded receipt so a later
// dispute can prove what file the deposit request carried.
func (p *Processor) ProcessReceipt(payload services.ReceiptPayload) error {
	f, err := os.Open(payload.BillPath)
	if err != nil {
		log.Printf("receipt: open %s failed: %v", payload.BillPath, err)
		return err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return err
	}
	checksum := hex.EncodeToString(h.Sum(nil))

	return p.DB.Model(&models.WalletTransaction{}).
		Where("id = ?", payload.TransactionID).
		UpdateColumn("bill_checksum", checksum).Error
}
