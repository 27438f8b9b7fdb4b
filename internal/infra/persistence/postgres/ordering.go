package postgres

import "gorm.io/gorm"

// newestFirst orders by creation time descending. Rows created in the same instant fall back to id
// so repeated reads of a catalog return the same sequence.
func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC").Order("id DESC")
}

// byQuestionOrder orders questions by position, then creation time, then id.
func byQuestionOrder(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC").Order("created_at ASC").Order("id ASC")
}
