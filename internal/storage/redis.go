package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"resume-match-go/internal/config"
	"resume-match-go/internal/constants"
)

// Redis 提供岗位关键词的按内容寻址缓存。
// 缓存键为JD文本的MD5，命中与否不影响打分结果的正确性。
type Redis struct {
	Client *redis.Client
	config *config.RedisConfig
}

// NewRedisAdapter 创建Redis客户端连接
func NewRedisAdapter(cfg *config.RedisConfig) (*Redis, error) {
	if cfg == nil {
		return nil, fmt.Errorf("redis配置不能为空")
	}
	if cfg.Address == "" {
		return nil, fmt.Errorf("redis地址不能为空")
	}

	opt := &redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,

		// 连接池设置
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,

		// 超时设置
		DialTimeout:  time.Duration(cfg.DialTimeoutSeconds) * time.Second,
		ReadTimeout:  time.Duration(cfg.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeoutSeconds) * time.Second,

		// 重试设置
		MaxRetries:      cfg.MaxRetries,
		MinRetryBackoff: time.Duration(cfg.MinRetryBackoffMS) * time.Millisecond,
		MaxRetryBackoff: time.Duration(cfg.MaxRetryBackoffMS) * time.Millisecond,
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("连接Redis失败 (%s): %w", cfg.Address, err)
	}

	return &Redis{
		Client: client,
		config: cfg,
	}, nil
}

// Close 关闭Redis连接
func (r *Redis) Close() error {
	if r.Client != nil {
		return r.Client.Close()
	}
	return nil
}

// Ping 检查Redis连接
func (r *Redis) Ping(ctx context.Context) error {
	if r.Client == nil {
		return fmt.Errorf("redis客户端未初始化")
	}
	return r.Client.Ping(ctx).Err()
}

// keywordCacheTTL 返回配置的关键词缓存过期时间
func (r *Redis) keywordCacheTTL() time.Duration {
	hours := r.config.KeywordCacheTTLHours
	if hours <= 0 {
		return constants.KeywordCacheDuration
	}
	return time.Duration(hours) * time.Hour
}

// SetJobKeywords 缓存JD关键词JSON，键为JD文本的MD5
func (r *Redis) SetJobKeywords(ctx context.Context, textMD5 string, keywordsJSON string) error {
	if r.Client == nil {
		return fmt.Errorf("redis客户端未初始化")
	}
	key := fmt.Sprintf(constants.KeyJobKeywords, textMD5)
	return r.Client.Set(ctx, key, keywordsJSON, r.keywordCacheTTL()).Err()
}

// GetJobKeywords 读取缓存的JD关键词JSON，未命中时返回空串且无错误
func (r *Redis) GetJobKeywords(ctx context.Context, textMD5 string) (string, error) {
	if r.Client == nil {
		return "", fmt.Errorf("redis客户端未初始化")
	}
	key := fmt.Sprintf(constants.KeyJobKeywords, textMD5)
	val, err := r.Client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return val, nil
}
