// Package auth 提供窄接口的"当前凭证"读取，调用方只拿到
// Authorization 头需要的内容，不感知凭证的存储方式。
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// ErrNoSession 没有可用的会话凭证（不是故障，请求将以匿名方式发出）
var ErrNoSession = errors.New("no session credential")

// Credential 会话凭证
type Credential struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType"`
}

// HeaderValue 拼出 Authorization 头的值，scheme 缺省为 Bearer
// Token 为空时返回空串，表示不带认证头
func (c Credential) HeaderValue() string {
	if c.Token == "" {
		return ""
	}
	scheme := c.TokenType
	if scheme == "" {
		scheme = "Bearer"
	}
	return scheme + " " + c.Token
}

// TokenProvider 当前凭证提供者
type TokenProvider interface {
	Credential(ctx context.Context) (Credential, error)
}

// StaticProvider 固定凭证（来自配置/环境变量）
type StaticProvider struct {
	token     string
	tokenType string
}

func NewStaticProvider(token, tokenType string) *StaticProvider {
	return &StaticProvider{token: token, tokenType: tokenType}
}

func (p *StaticProvider) Credential(ctx context.Context) (Credential, error) {
	if p.token == "" {
		return Credential{}, ErrNoSession
	}
	return Credential{Token: p.token, TokenType: p.tokenType}, nil
}

// SessionProvider 从 Redis 读取持久化的会话对象（JSON: {token, tokenType}）
type SessionProvider struct {
	rdb *redis.Client
	key string
}

func NewSessionProvider(rdb *redis.Client, key string) *SessionProvider {
	return &SessionProvider{rdb: rdb, key: key}
}

func (p *SessionProvider) Credential(ctx context.Context) (Credential, error) {
	raw, err := p.rdb.Get(ctx, p.key).Result()
	if err != nil {
		if err == redis.Nil {
			return Credential{}, ErrNoSession
		}
		return Credential{}, fmt.Errorf("failed to read session from redis: %w", err)
	}

	var cred Credential
	if err := json.Unmarshal([]byte(raw), &cred); err != nil {
		return Credential{}, fmt.Errorf("failed to decode session blob: %w", err)
	}
	if cred.Token == "" {
		return Credential{}, ErrNoSession
	}
	return cred, nil
}
