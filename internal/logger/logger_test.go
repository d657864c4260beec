package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitSetsGlobalLevel(t *testing.T) {
	Init(Config{Level: "debug"})
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel(), "配置的级别应生效")

	Init(Config{Level: "warn"})
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

func TestInitInvalidLevelFallsBack(t *testing.T) {
	Init(Config{Level: "nonsense"})
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel(), "无法解析的级别应回退为info")
}

func TestInitFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	Init(Config{Level: "info", Format: "json", File: path})

	Warn().Str("component", "logger_test").Msg("写入日志文件")

	data, err := os.ReadFile(path)
	require.NoError(t, err, "配置了日志文件时应创建文件")
	assert.Contains(t, string(data), "写入日志文件")
}

func TestInitUnwritableFileDegrades(t *testing.T) {
	// 日志文件不可写时降级为仅控制台输出，不应panic
	Init(Config{Level: "info", File: filepath.Join(t.TempDir(), "no", "such", "dir", "app.log")})
	Info().Msg("控制台输出")
	Error().Msg("控制台输出")
}
