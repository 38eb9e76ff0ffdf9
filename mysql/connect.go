package mysql

import (
	"councilbet/typefile"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jinzhu/gorm"
)

const connectRetries = 10

// SqlConnect はコンテナの起動待ちのため数回リトライする
func SqlConnect(dsn string) (*gorm.DB, error) {
	var lastErr error
	for i := 0; i < connectRetries; i++ {
		db, err := gorm.Open("mysql", dsn)
		if err == nil {
			fmt.Println("DB接続成功")
			return db, nil
		}
		lastErr = err
		fmt.Printf("DB接続失敗 (%d/%d): %v\n", i+1, connectRetries, err)
		time.Sleep(2 * time.Second)
	}
	return nil, fmt.Errorf("connect mysql: %w", lastErr)
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&typefile.Event{},
		&typefile.Team{},
		&typefile.Member{},
		&typefile.Bet{},
		&typefile.TeamResult{},
	).Error
}
