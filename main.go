package main

import (
	"councilbet/config"
	"councilbet/mysql"
	"councilbet/redisClient"
	"councilbet/router"
	"councilbet/seed"
	"log"

	"github.com/bwmarrin/snowflake"
)

func main() {
	cfg := config.Load()

	db, err := mysql.SqlConnect(cfg.MysqlDSN)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := mysql.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	if err := mysql.Seed(db); err != nil {
		log.Fatalf("seed events: %v", err)
	}

	rdb, err := redisClient.RedisConnect(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}
	defer rdb.Close()

	node, err := snowflake.NewNode(cfg.SnowflakeNode)
	if err != nil {
		log.Fatalf("snowflake node: %v", err)
	}

	repo := mysql.NewRepository(db)
	if cfg.Seed.Enabled {
		if err := seed.Seed(repo, node, cfg.Seed); err != nil {
			log.Fatalf("seed fake data: %v", err)
		}
	}

	h := router.NewHandler(repo, redisClient.NewLeaderboard(rdb), node)
	r := router.NewRouter(h)

	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
