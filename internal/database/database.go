package database

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"goxu-service/internal/models"
)

var DB *gorm.DB

func Connect() {
	var err error
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
	)

	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	log.Println("Database connection established")
}

func Migrate() {
	err := DB.AutoMigrate(
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
	)
	if err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}
	log.Println("Database migration completed")
}

// SeedBanks loads the static bank directory if the table is empty. The list
// mirrors the VietQR-supported banks the dashboard displays.
func SeedBanks(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Bank{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	banks := []models.Bank{
		{Name: "Ngân hàng TMCP Ngoại Thương Việt Nam", Code: "VCB", Bin: "970436", ShortName: "Vietcombank"},
		{Name: "Ngân hàng TMCP Công thương Việt Nam", Code: "ICB", Bin: "970415", ShortName: "VietinBank"},
		{Name: "Ngân hàng TMCP Kỹ thương Việt Nam", Code: "TCB", Bin: "970407", ShortName: "Techcombank"},
		{Name: "Ngân hàng TMCP Đầu tư và Phát triển Việt Nam", Code: "BIDV", Bin: "970418", ShortName: "BIDV"},
		{Name: "Ngân hàng TMCP Quân đội", Code: "MB", Bin: "970422", ShortName: "MBBank"},
		{Name: "Ngân hàng TMCP Á Châu", Code: "ACB", Bin: "970416", ShortName: "ACB"},
		{Name: "Ngân hàng TMCP Việt Nam Thịnh Vượng", Code: "VPB", Bin: "970432", ShortName: "VPBank"},
		{Name: "Ngân hàng TMCP Tiên Phong", Code: "TPB", Bin: "970423", ShortName: "TPBank"},
		{Name: "Ngân hàng TMCP Sài Gòn Thương Tín", Code: "STB", Bin: "970403", ShortName: "Sacombank"},
		{Name: "Ngân hàng Nông nghiệp và Phát triển Nông thôn Việt Nam", Code: "VBA", Bin: "970405", ShortName: "Agribank"},
	}

	return db.Create(&banks).Error
}
