// Package adapter 把上游事件库的事件记录转换成看板的问题卡片。
// 全部是纯函数：无 I/O、无副作用，一个事件产出一张卡片。
package adapter

import (
	"github.com/buildsense-ai/v0-buildsense/internal/models"
)

// EventToCard ExternalEvent → IssueCard
// 透传 id/类别/时间戳/合并标记，派生位置、责任单位和状态枚举；
// 首条消息作为原始输入文本，没有消息时为空、上报人取 ReporterUnknown
func EventToCard(ev models.ExternalEvent) models.IssueCard {
	rawText := ""
	reporter := models.ReporterUnknown
	if len(ev.Messages) > 0 {
		rawText = ev.Messages[0].Content
		if ev.Messages[0].SenderID != "" {
			reporter = ev.Messages[0].SenderID
		}
	}

	messageIDs := make([]string, 0, len(ev.Messages))
	for _, msg := range ev.Messages {
		messageIDs = append(messageIDs, msg.MessageID)
	}

	imageURLs := make([]string, 0, len(ev.CandidateImages))
	for _, img := range ev.CandidateImages {
		imageURLs = append(imageURLs, img.ImageData)
	}

	return models.IssueCard{
		ID:               ev.ID,
		Category:         ev.Category,
		Summary:          ev.Summary,
		RawTextInput:     rawText,
		ReporterUserID:   reporter,
		Location:         ExtractLocation(ev.Summary, ev.Messages),
		ResponsibleParty: ResponsibleParty(ev.Category),
		Status:           StatusFromCode(ev.Status),
		CreateTime:       ev.CreateTime,
		UpdateTime:       ev.UpdateTime,
		IsMerged:         ev.IsMerged,
		ImageURLs:        imageURLs,
		CandidateImages:  append([]models.CandidateImage(nil), ev.CandidateImages...),
		MessageIDs:       messageIDs,
	}
}
