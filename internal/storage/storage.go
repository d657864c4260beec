package storage

import (
	"context"
	"fmt"
	"strings"

	"resume-match-go/internal/config"
	"resume-match-go/internal/logger"
)

// Storage 存储管理器，聚合所有存储相关依赖
type Storage struct {
	// 关系型数据库（打分记录）
	MySQL *MySQL

	// 键值存储（关键词缓存，可选）
	Redis *Redis
}

// NewStorage 创建存储管理器。
// MySQL是必需组件；Redis可选，初始化失败时记录告警并继续。
func NewStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	if cfg == nil {
		return nil, fmt.Errorf("配置不能为空")
	}

	storage := &Storage{}
	var err error
	var initErrors []string

	// 初始化MySQL
	if cfg.MySQL.Host != "" {
		logger.Info().Msg("初始化MySQL...")
		storage.MySQL, err = NewMySQL(&cfg.MySQL)
		if err != nil {
			logger.Warn().Err(err).Msg("初始化MySQL失败")
			initErrors = append(initErrors, fmt.Sprintf("MySQL: %v", err))
		}
	}

	// 初始化Redis（如果配置了）
	if cfg.Redis.Address != "" {
		logger.Info().Str("address", cfg.Redis.Address).Msg("初始化Redis...")
		storage.Redis, err = NewRedisAdapter(&cfg.Redis)
		if err != nil {
			// 关键词缓存是可选的，失败时降级为每次重新计算
			logger.Warn().Err(err).Msg("初始化Redis失败，关键词缓存不可用")
			initErrors = append(initErrors, fmt.Sprintf("Redis: %v", err))
		}
	} else {
		logger.Info().Msg("Redis未配置, 跳过初始化")
	}

	if storage.MySQL == nil {
		return nil, fmt.Errorf("存储组件初始化失败: %s", strings.Join(initErrors, "; "))
	}

	if len(initErrors) > 0 {
		logger.Warn().Str("errors", strings.Join(initErrors, "; ")).Msg("部分存储组件初始化失败")
	}
	return storage, nil
}

// Close 关闭所有存储连接
func (s *Storage) Close() {
	if s.MySQL != nil {
		if err := s.MySQL.Close(); err != nil {
			logger.Error().Err(err).Msg("关闭MySQL连接失败")
		}
	}
	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			logger.Error().Err(err).Msg("关闭Redis连接失败")
		}
	}
}
