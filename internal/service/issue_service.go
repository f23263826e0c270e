package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/buildsense-ai/v0-buildsense/internal/adapter"
	"github.com/buildsense-ai/v0-buildsense/internal/auth"
	"github.com/buildsense-ai/v0-buildsense/internal/models"
)

// EventsAPI 事件库客户端需要的能力（测试里用 fake 替换）
type EventsAPI interface {
	FetchEvents(ctx context.Context, authorization string) ([]models.ExternalEvent, error)
	Probe(ctx context.Context) (int, error)
}

// IssueCardService 问题卡片服务
// 拉取上游事件 → 逐条适配成卡片；任何失败都降级为内置演示数据，
// 调用方永远拿不到错误，只能通过 Source 区分真实数据和降级数据
type IssueCardService struct {
	api    EventsAPI
	tokens auth.TokenProvider
	logger *zap.Logger
}

func NewIssueCardService(api EventsAPI, tokens auth.TokenProvider, logger *zap.Logger) *IssueCardService {
	return &IssueCardService{api: api, tokens: tokens, logger: logger}
}

// GetIssueCards 拉取并适配问题卡片列表，不缓存，每次调用都重新请求
// 返回值不携带 error："卡片列表永远能渲染" 是对前端的硬承诺
func (s *IssueCardService) GetIssueCards(ctx context.Context) models.IssueCardList {
	authz := ""
	if s.tokens != nil {
		cred, err := s.tokens.Credential(ctx)
		switch {
		case err == nil:
			authz = cred.HeaderValue()
		case errors.Is(err, auth.ErrNoSession):
			// 没有会话不算故障，匿名请求
		default:
			s.logger.Warn("Failed to resolve credential, requesting anonymously", zap.Error(err))
		}
	}

	events, err := s.api.FetchEvents(ctx, authz)
	if err != nil {
		s.logger.Warn("Fetching events failed, falling back to built-in demo cards", zap.Error(err))
		return models.IssueCardList{Items: FallbackCards(), Source: models.SourceFallback}
	}

	items := make([]models.IssueCard, 0, len(events))
	for _, ev := range events {
		items = append(items, adapter.EventToCard(ev))
	}
	return models.IssueCardList{Items: items, Source: models.SourceLive}
}

// APIStatus 事件 API 探活结果
type APIStatus struct {
	Available bool   `json:"available"`
	Message   string `json:"message"`
	ElapsedMS int64  `json:"elapsed_ms"`
	Timestamp string `json:"timestamp"`
}

// CheckAPIStatus 单次探活（短超时、不重试），永远不返回错误
func (s *IssueCardService) CheckAPIStatus(ctx context.Context) APIStatus {
	start := time.Now()
	code, err := s.api.Probe(ctx)
	status := APIStatus{
		ElapsedMS: time.Since(start).Milliseconds(),
		Timestamp: time.Now().Format(time.RFC3339),
	}

	switch {
	case err != nil:
		status.Message = "无法连接事件API: " + err.Error()
	case code < 200 || code > 299:
		status.Message = fmt.Sprintf("事件API返回异常状态: %d", code)
	default:
		status.Available = true
		status.Message = "事件API正常"
	}
	return status
}
