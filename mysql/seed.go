package mysql

import (
	"councilbet/typefile"

	"github.com/jinzhu/gorm"
)

var events = []string{
	"春季学園祭 e-Sports 大会",
	"秋季学園祭 e-Sports 大会",
}

// Seed はイベントのマスタデータを登録する
func Seed(db *gorm.DB) error {
	for _, name := range events {
		// 同じ名前が存在する場合はスキップ
		var count int
		if err := db.Model(&typefile.Event{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		if err := db.Create(&typefile.Event{Name: name}).Error; err != nil {
			return err
		}
	}
	return nil
}
