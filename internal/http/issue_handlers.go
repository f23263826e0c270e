package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/buildsense-ai/v0-buildsense/internal/cards"
	"github.com/buildsense-ai/v0-buildsense/internal/client"
	"github.com/buildsense-ai/v0-buildsense/internal/models"
	"github.com/buildsense-ai/v0-buildsense/internal/service"
)

// CardService 卡片服务需要的能力（测试里用 fake 替换）
type CardService interface {
	GetIssueCards(ctx context.Context) models.IssueCardList
	CheckAPIStatus(ctx context.Context) service.APIStatus
}

// ImageDeleteAPI 图片删除上游接口
type ImageDeleteAPI interface {
	DeleteImage(ctx context.Context, eventID, messageID string) (*client.DeleteResult, error)
}

// IssueHandler 问题卡片看板 HTTP 接口
type IssueHandler struct {
	svc     CardService
	deleter ImageDeleteAPI
	states  *cards.StateManager
	logger  *zap.Logger
}

func NewIssueHandler(svc CardService, deleter ImageDeleteAPI, states *cards.StateManager, logger *zap.Logger) *IssueHandler {
	return &IssueHandler{svc: svc, deleter: deleter, states: states, logger: logger}
}

// GET /issues/api/v1/cards
// 永远 200：上游失败时服务层已经降级成演示数据，source 字段标明来源
func (h *IssueHandler) GetCards(w http.ResponseWriter, r *http.Request) {
	list := h.svc.GetIssueCards(r.Context())
	writeJSON(w, http.StatusOK, Ok(list))
}

// GET /issues/api/v1/status
func (h *IssueHandler) GetAPIStatus(w http.ResponseWriter, r *http.Request) {
	status := h.svc.CheckAPIStatus(r.Context())
	writeJSON(w, http.StatusOK, Ok(status))
}

// proxyError 图片删除代理的错误体
// error 区分 "连不上上游" 和 "上游拒绝"；status 只在上游拒绝时携带上游状态码
type proxyError struct {
	Error   string `json:"error"`
	Status  int    `json:"status,omitempty"`
	Message string `json:"message"`
}

type deleteImageRequest struct {
	EventID   string `json:"eventId"`
	MessageID string `json:"messageId"`
}

// POST /issues/api/v1/images/delete
// 入参 eventId/messageId 都必填，缺失直接 400，不会触发上游调用；
// 同一张卡片同时最多一个删除在途，冲突返回 409
func (h *IssueHandler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	var req deleteImageRequest
	if err := readBodyJSON(r, 1<<20, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, proxyError{
			Error:   "invalid request",
			Message: "请求体不是合法的 JSON",
		})
		return
	}
	if req.EventID == "" || req.MessageID == "" {
		writeJSON(w, http.StatusBadRequest, proxyError{
			Error:   "invalid request",
			Message: "eventId 和 messageId 都是必填字段",
		})
		return
	}

	if !h.states.TryBeginDelete(req.EventID) {
		writeJSON(w, http.StatusConflict, proxyError{
			Error:   "delete in progress",
			Message: "该卡片已有删除操作在进行中",
		})
		return
	}
	defer h.states.EndDelete(req.EventID)

	res, err := h.deleter.DeleteImage(r.Context(), req.EventID, req.MessageID)
	if err != nil {
		// 传输层失败：连不上上游
		writeJSON(w, http.StatusBadGateway, proxyError{
			Error:   "events API unreachable",
			Message: "无法连接事件API: " + err.Error(),
		})
		return
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		// 上游拒绝：镜像上游状态码，带上游错误体（如果有）
		msg := string(res.Body)
		if msg == "" {
			msg = fmt.Sprintf("事件API拒绝了该请求 (status %d)", res.StatusCode)
		}
		writeJSON(w, res.StatusCode, proxyError{
			Error:   "events API rejected the request",
			Status:  res.StatusCode,
			Message: msg,
		})
		return
	}

	// 成功：上游响应体原样透传
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.StatusCode)
	if len(res.Body) > 0 {
		_, _ = w.Write(res.Body)
	} else {
		_, _ = w.Write([]byte(`{"success":true}`))
	}
}

// GET /issues/api/v1/cards/export
// 把当前卡片列表导出成 xlsx 下载
func (h *IssueHandler) ExportCards(w http.ResponseWriter, r *http.Request) {
	list := h.svc.GetIssueCards(r.Context())

	data, err := GenerateIssueCardExport(list.Items)
	if err != nil {
		h.logger.Error("Failed to generate issue card export", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, Fail("生成导出文件失败"))
		return
	}

	filename := fmt.Sprintf("issue-cards-%s.xlsx", time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	_, _ = w.Write(data)
}
