// Package client 封装对外部事件聚类 API 的访问。
// 列表拉取走带重试的客户端（固定间隔、固定预算）；
// 删除和探活走无重试客户端，终态由调用方处理。
package client

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/buildsense-ai/v0-buildsense/internal/models"
)

// Options 客户端参数，测试里可以把超时/等待调小
type Options struct {
	BaseURL      string
	Timeout      time.Duration // 常规请求超时
	ProbeTimeout time.Duration // 探活请求超时（更短）
	RetryCount   int           // 重试预算（不含首次请求）
	RetryWait    time.Duration // 重试固定等待，不做指数退避
}

// DefaultOptions 与看板前端约定一致的缺省值
func DefaultOptions(baseURL string) Options {
	return Options{
		BaseURL:      baseURL,
		Timeout:      10 * time.Second,
		ProbeTimeout: 5 * time.Second,
		RetryCount:   2,
		RetryWait:    1 * time.Second,
	}
}

// EventsClient 事件库 API 客户端
type EventsClient struct {
	fetch  *resty.Client // 带重试，只用于事件列表
	direct *resty.Client // 无重试，用于删除和探活
	opts   Options
	logger *zap.Logger
}

// NewEventsClient 创建事件库客户端
// 重试策略：网络错误或非 2xx 都重试，等待固定为 opts.RetryWait
// （wait == maxWait 时 resty 不做退避增长）
func NewEventsClient(opts Options, logger *zap.Logger) *EventsClient {
	fetch := resty.New().
		SetBaseURL(opts.BaseURL).
		SetTimeout(opts.Timeout).
		SetRetryCount(opts.RetryCount).
		SetRetryWaitTime(opts.RetryWait).
		SetRetryMaxWaitTime(opts.RetryWait).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || !r.IsSuccess()
		}).
		SetHeader("Accept", "application/json")

	direct := resty.New().
		SetBaseURL(opts.BaseURL).
		SetTimeout(opts.Timeout).
		SetHeader("Accept", "application/json")

	return &EventsClient{fetch: fetch, direct: direct, opts: opts, logger: logger}
}

// FetchEvents GET /events-db，返回事件列表
// authorization 非空时原样放进 Authorization 头
// 响应体缺少 events 字段视为畸形响应，按硬失败处理
func (c *EventsClient) FetchEvents(ctx context.Context, authorization string) ([]models.ExternalEvent, error) {
	var payload struct {
		Events *[]models.ExternalEvent `json:"events"`
	}

	req := c.fetch.R().SetContext(ctx).SetResult(&payload)
	if authorization != "" {
		req.SetHeader("Authorization", authorization)
	}

	resp, err := req.Get("/events-db")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("events API returned status %d", resp.StatusCode())
	}
	if payload.Events == nil {
		return nil, fmt.Errorf("malformed events response: missing events field")
	}

	c.logger.Info("Fetched events from events-db",
		zap.Int("event_count", len(*payload.Events)),
	)
	return *payload.Events, nil
}

// DeleteResult 上游删除接口的终态，状态码和响应体透传给代理层
type DeleteResult struct {
	StatusCode int
	Body       []byte
}

// DeleteImage DELETE /events-db/{eventID}/images/{messageID}
// 不重试；只有传输层失败才返回 error，上游拒绝走 DeleteResult
func (c *EventsClient) DeleteImage(ctx context.Context, eventID, messageID string) (*DeleteResult, error) {
	path := fmt.Sprintf("/events-db/%s/images/%s",
		url.PathEscape(eventID), url.PathEscape(messageID))

	resp, err := c.direct.R().SetContext(ctx).Delete(path)
	if err != nil {
		c.logger.Error("Delete image request failed",
			zap.String("event_id", eventID),
			zap.String("message_id", messageID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to call events API: %w", err)
	}

	c.logger.Info("Delete image forwarded",
		zap.String("event_id", eventID),
		zap.String("message_id", messageID),
		zap.Int("status_code", resp.StatusCode()),
	)
	return &DeleteResult{StatusCode: resp.StatusCode(), Body: resp.Body()}, nil
}

// Probe 单次 GET /events-db，用更短的超时，不重试
// 返回 HTTP 状态码；传输层失败返回 error
func (c *EventsClient) Probe(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.opts.ProbeTimeout)
	defer cancel()

	resp, err := c.direct.R().SetContext(ctx).Get("/events-db")
	if err != nil {
		return 0, fmt.Errorf("events API unreachable: %w", err)
	}
	return resp.StatusCode(), nil
}
