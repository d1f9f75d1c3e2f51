package service

import "gorm.io/gorm"

// checkExists is the single existence check every service uses before touching
// a foreign key. A count query avoids loading the row.
func checkExists(db *gorm.DB, model interface{}, id uint) bool {
	var count int64
	db.Model(model).Where("id = ?", id).Count(&count)
	return count > 0
}
