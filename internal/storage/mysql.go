package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"resume-match-go/internal/config"
	appLogger "resume-match-go/internal/logger"
	"resume-match-go/internal/storage/models"
)

// MySQL 提供打分记录的持久化功能
type MySQL struct {
	db  *gorm.DB
	cfg *config.MySQLConfig
}

// NewMySQL 创建MySQL客户端
func NewMySQL(cfg *config.MySQLConfig) (*MySQL, error) {
	if cfg == nil {
		return nil, fmt.Errorf("MySQL配置不能为空")
	}

	// 构建DSN，附带超时设置
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local&timeout=%ds&readTimeout=%ds&writeTimeout=%ds",
		cfg.Username, cfg.Password, cfg.Host, cfg.Port, cfg.Database,
		cfg.ConnectTimeoutSeconds, cfg.ReadTimeoutSeconds, cfg.WriteTimeoutSeconds)

	// 配置GORM日志级别
	var logLevel logger.LogLevel
	switch cfg.LogLevel {
	case 1:
		logLevel = logger.Silent
	case 2:
		logLevel = logger.Error
	case 3:
		logLevel = logger.Warn
	case 4:
		logLevel = logger.Info
	default:
		logLevel = logger.Warn
	}

	gormConfig := &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logger.Default.LogMode(logLevel),
		PrepareStmt:                              true,
		NowFunc: func() time.Time {
			return time.Now().Local()
		},
	}

	db, err := gorm.Open(mysql.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("连接MySQL失败: %w", err)
	}

	// 设置连接池参数
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取底层 sql.DB 失败: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute)
	sqlDB.SetConnMaxIdleTime(time.Duration(cfg.ConnMaxIdleTimeMinutes) * time.Minute)

	m := &MySQL{
		db:  db,
		cfg: cfg,
	}

	if err := m.autoMigrateSchema(); err != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			sqlDB.Close()
		}
		return nil, fmt.Errorf("自动迁移数据库结构失败: %w", err)
	}

	appLogger.Info().Msg("成功连接到MySQL并自动迁移数据库结构")
	return m, nil
}

// autoMigrateSchema 使用GORM自动迁移数据库表结构
func (m *MySQL) autoMigrateSchema() error {
	return m.db.AutoMigrate(&models.ResumeScore{})
}

// DB 返回GORM数据库连接实例
func (m *MySQL) DB() *gorm.DB {
	return m.db
}

// Close 关闭数据库连接
func (m *MySQL) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SaveScore 插入一条打分记录，记录无ID时生成UUIDv7
func (m *MySQL) SaveScore(ctx context.Context, record *models.ResumeScore) error {
	if record == nil {
		return fmt.Errorf("打分记录不能为空")
	}
	if record.ScoreID == "" {
		uuidV7, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("生成UUIDv7失败: %w", err)
		}
		record.ScoreID = uuidV7.String()
	}
	if record.AnalyzedAt.IsZero() {
		record.AnalyzedAt = time.Now()
	}
	if err := m.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("保存打分记录失败: %w", err)
	}
	return nil
}

// ListRecentScores 按分析时间倒序返回最近n条打分记录
func (m *MySQL) ListRecentScores(ctx context.Context, n int) ([]models.ResumeScore, error) {
	if n <= 0 {
		n = 10
	}
	var records []models.ResumeScore
	err := m.db.WithContext(ctx).
		Order("analyzed_at DESC").
		Limit(n).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("查询历史打分记录失败: %w", err)
	}
	return records, nil
}
