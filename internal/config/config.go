package config

import (
	"os"
	"strconv"
	"time"
)

// Config buildsense-issues（HTTP API）配置
type Config struct {
	HTTP struct {
		Addr string
	}
	EventsAPI EventsAPIConfig
	Redis     struct {
		Enabled    bool
		Addr       string
		Password   string
		DB         int
		SessionKey string // 持久化会话对象所在的 key
	}
	Log struct {
		Level  string
		Format string
	}
}

// EventsAPIConfig 外部事件聚类 API 配置
type EventsAPIConfig struct {
	BaseURL      string        // 事件库地址
	Timeout      time.Duration // 常规请求超时
	ProbeTimeout time.Duration // 探活超时（更短）
	RetryCount   int           // 列表拉取重试预算（不含首次）
	RetryWait    time.Duration // 重试固定等待
	Token        string        // 静态凭证（未启用 Redis 会话时使用，可为空）
	TokenType    string        // 凭证 scheme，缺省 Bearer
}

func Load() *Config {
	cfg := &Config{}
	cfg.HTTP.Addr = getEnv("HTTP_ADDR", ":8080")

	cfg.EventsAPI.BaseURL = getEnv("EVENTS_API_BASE_URL", "http://localhost:8000")
	cfg.EventsAPI.Timeout = time.Duration(parseInt(getEnv("EVENTS_API_TIMEOUT_SECONDS", "10"), 10)) * time.Second
	cfg.EventsAPI.ProbeTimeout = time.Duration(parseInt(getEnv("EVENTS_API_PROBE_TIMEOUT_SECONDS", "5"), 5)) * time.Second
	cfg.EventsAPI.RetryCount = parseInt(getEnv("EVENTS_API_RETRY_COUNT", "2"), 2)
	cfg.EventsAPI.RetryWait = time.Duration(parseInt(getEnv("EVENTS_API_RETRY_WAIT_MS", "1000"), 1000)) * time.Millisecond
	cfg.EventsAPI.Token = getEnv("EVENTS_API_TOKEN", "")
	cfg.EventsAPI.TokenType = getEnv("EVENTS_API_TOKEN_TYPE", "Bearer")

	// Redis 会话读取默认关闭：本地联调只需要静态 token（或匿名）
	cfg.Redis.Enabled = getEnv("REDIS_ENABLED", "false") == "true"
	cfg.Redis.Addr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = parseInt(getEnv("REDIS_DB", "0"), 0)
	cfg.Redis.SessionKey = getEnv("REDIS_SESSION_KEY", "buildsense:session")

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
