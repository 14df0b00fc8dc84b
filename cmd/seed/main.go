package main

import (
	"log"
	"os"
	"time"

	"nexum-inventory-be/internal/model"
	"nexum-inventory-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		color.Red("Error: DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}

	color.Cyan("Seeding Nexum demo data\n")

	seedUsers(db)
	seedProducts(db)
	seedPurchaseOrders(db)

	color.Green("\nDone.")
}

func seedUsers(db *gorm.DB) {
	color.Yellow("[1/3] Users")

	hash, _ := bcrypt.GenerateFromPassword([]byte("nexum-demo"), bcrypt.DefaultCost)
	users := []model.User{
		{
			Id:                 uuid.New(),
			Email:              "admin@nexum.local",
			PasswordHash:       string(hash),
			FullName:           "Nexum Admin",
			Role:               "admin",
			Status:             "active",
			AlertEmailsEnabled: true,
		},
		{
			Id:                 uuid.New(),
			Email:              "buyer@nexum.local",
			PasswordHash:       string(hash),
			FullName:           "Demo Buyer",
			Role:               "user",
			Status:             "active",
			AlertEmailsEnabled: false,
		},
	}

	for _, u := range users {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).Create(&u).Error
		if err != nil {
			color.Red("  failed: %s: %v", u.Email, err)
			continue
		}
		color.Green("  %s", u.Email)
	}
}

func seedProducts(db *gorm.DB) {
	color.Yellow("[2/3] Products")

	products := []model.Product{
		{Code: "PRD-001", Description: "Hydraulic pump seal kit", Category: "Maintenance", AbcClass: "A", Unit: "UN", OnHand: 4, InTransit: 0, Cmm: 12, MaxStock: 40, CoverageDays: 10, AveragePrice: decimal.NewFromFloat(89.90), Status: "CRITICO", Location: "A-01-03", PrimarySupplier: "HidroParts"},
		{Code: "PRD-002", Description: "Bearing 6205-2RS", Category: "Maintenance", AbcClass: "A", Unit: "UN", OnHand: 25, InTransit: 10, Cmm: 18, MaxStock: 60, CoverageDays: 41, AveragePrice: decimal.NewFromFloat(14.50), Status: "NORMAL", Location: "A-02-01", PrimarySupplier: "RollTech"},
		{Code: "PRD-003", Description: "Synthetic gear oil 220 (20L)", Category: "Lubricants", AbcClass: "B", Unit: "GL", OnHand: 2, InTransit: 0, Cmm: 6, MaxStock: 18, CoverageDays: 9, AveragePrice: decimal.NewFromFloat(310.00), Status: "CRITICO", Location: "B-01-04", PrimarySupplier: "LubriMax"},
		{Code: "PRD-004", Description: "V-belt AX-45", Category: "Maintenance", AbcClass: "B", Unit: "UN", OnHand: 60, InTransit: 0, Cmm: 4, MaxStock: 50, CoverageDays: 450, AveragePrice: decimal.NewFromFloat(22.75), Status: "EXCESSO", Location: "A-03-02", PrimarySupplier: "RollTech"},
		{Code: "PRD-005", Description: "Safety glove nitrile (pair)", Category: "Safety", AbcClass: "C", Unit: "PR", OnHand: 110, InTransit: 50, Cmm: 90, MaxStock: 300, CoverageDays: 36, AveragePrice: decimal.NewFromFloat(8.30), Status: "ATENCAO", Location: "C-01-01", PrimarySupplier: "SafeWork"},
	}

	for _, p := range products {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			DoNothing: true,
		}).Create(&p).Error
		if err != nil {
			color.Red("  failed: %s: %v", p.Code, err)
			continue
		}
		color.Green("  %s %s", p.Code, p.Description)
	}
}

func seedPurchaseOrders(db *gorm.DB) {
	color.Yellow("[3/3] Purchase orders")

	orderId := uuid.New()
	order := model.PurchaseOrder{
		Id:          orderId,
		OrderNumber: "PO-2026-0001",
		Supplier:    "HidroParts",
		Status:      "open",
		IssuedAt:    time.Now().AddDate(0, 0, -7),
		Lines: []model.PurchaseOrderLine{
			{Id: uuid.New(), OrderId: orderId, ItemCode: "PRD-001", Quantity: decimal.NewFromInt(20), UnitPrice: decimal.NewFromFloat(87.00)},
			{Id: uuid.New(), OrderId: orderId, ItemCode: "PRD-003", Quantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromFloat(305.00)},
		},
	}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "order_number"}},
		DoNothing: true,
	}).Create(&order).Error
	if err != nil {
		color.Red("  failed: %s: %v", order.OrderNumber, err)
		return
	}
	color.Green("  %s (%d lines)", order.OrderNumber, len(order.Lines))
}
