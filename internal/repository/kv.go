package repository

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// StoreEntry 键值持久化条目，每个实体种类一行，值为JSON序列化的集合
type StoreEntry struct {
	Kind  string `gorm:"primaryKey;size:32"`
	Value string `gorm:"type:text;not null"`
}

func (StoreEntry) TableName() string {
	return "store_entries"
}

// Open 打开本地存储数据库
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	if err := db.AutoMigrate(&StoreEntry{}); err != nil {
		return nil, fmt.Errorf("migrate store: %w", err)
	}

	return db, nil
}
