package database

import (
	"fmt"
	"log"

	"edupath_backend/internal/config"
	"edupath_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dbCfg := &cfg.Database
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		dbCfg.User,
		dbCfg.Password,
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.DBName,
		dbCfg.Charset,
		dbCfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	// release 模式默认不迁移，除非显式 --migrate
	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		err = db.AutoMigrate(
			&model.User{},
			&model.LearnerProfile{},
			&model.LearningObjective{},
			&model.ObjectiveProgress{},
			&model.LearningPlanRecord{},
			&model.ResourceItem{},
		)
		if err != nil {
			return nil, fmt.Errorf("auto migrate: %w", err)
		}
		log.Println("Database migration completed")
	}

	return db, nil
}
