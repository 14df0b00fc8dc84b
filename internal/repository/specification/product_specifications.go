package specification

import "gorm.io/gorm"

type ByCode struct {
	Code string
}

func (s ByCode) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("code = ?", s.Code)
}

type ByStockStatus struct {
	Status string
}

func (s ByStockStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

type ByCategory struct {
	Category string
}

func (s ByCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category = ?", s.Category)
}

type ByAbcClass struct {
	AbcClass string
}

func (s ByAbcClass) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("abc_class = ?", s.AbcClass)
}

// ProductSearch matches code or description against a term
type ProductSearch struct {
	Term string
}

func (s ProductSearch) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Term + "%"
	return db.Where("code ILIKE ? OR description ILIKE ?", pattern, pattern)
}

// WithDemand selects products with positive monthly consumption
type WithDemand struct{}

func (s WithDemand) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("cmm > 0")
}
