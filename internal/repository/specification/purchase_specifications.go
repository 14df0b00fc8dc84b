package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByRequestStatus struct {
	Status string
}

func (s ByRequestStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

type ByUrgency struct {
	Urgency string
}

func (s ByUrgency) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("urgency = ?", s.Urgency)
}

type RequestedBy struct {
	UserID uuid.UUID
}

func (s RequestedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("requester_id = ?", s.UserID)
}

type BySupplier struct {
	Supplier string
}

func (s BySupplier) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("supplier = ?", s.Supplier)
}

type ByOrderStatus struct {
	Status string
}

func (s ByOrderStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}
