package specification

import (
	"fmt"

	"gorm.io/gorm"
)

// ColumnEquals filters by exact column match.
type ColumnEquals struct {
	Column string
	Value  string
}

func (s ColumnEquals) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(fmt.Sprintf("%s = ?", s.Column), s.Value)
}

// ColumnContains filters by substring match on a column.
type ColumnContains struct {
	Column string
	Value  string
}

func (s ColumnContains) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(fmt.Sprintf("%s LIKE ?", s.Column), "%"+s.Value+"%")
}

// OrderBy applies ordering
type OrderBy struct {
	Field string
	Desc  bool
}

func (s OrderBy) Apply(db *gorm.DB) *gorm.DB {
	direction := "ASC"
	if s.Desc {
		direction = "DESC"
	}
	return db.Order(fmt.Sprintf("%s %s", s.Field, direction))
}

// Limit caps the number of returned rows.
type Limit struct {
	Count int
}

func (s Limit) Apply(db *gorm.DB) *gorm.DB {
	return db.Limit(s.Count)
}
