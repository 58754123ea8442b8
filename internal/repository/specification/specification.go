package specification

import "gorm.io/gorm"

// Specification narrows a query. Implementations stay tiny and composable;
// repositories apply them in order.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}

// ByID filters by numeric primary key.
type ByID struct {
	ID uint
}

func (s ByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

// ByIDs filters by a set of numeric primary keys.
type ByIDs struct {
	IDs []uint
}

func (s ByIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id IN ?", s.IDs)
}

// Limit caps the result set.
type Limit struct {
	N int
}

func (s Limit) Apply(db *gorm.DB) *gorm.DB {
	return db.Limit(s.N)
}

// OrderBy applies a raw ordering clause.
type OrderBy struct {
	Clause string
}

func (s OrderBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Order(s.Clause)
}
