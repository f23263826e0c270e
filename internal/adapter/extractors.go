package adapter

import (
	"regexp"

	"github.com/buildsense-ai/v0-buildsense/internal/models"
)

// locationPattern 匹配两类工地位置写法：
// - "<数字>号楼"，如 "3号楼"
// - 单个汉字/字母/数字 + "区" 或 "座"，如 "A区"、"南区"、"B座"
var locationPattern = regexp.MustCompile(`\d+号楼|[0-9A-Za-z\p{Han}][区座]`)

// ExtractLocation 从事件摘要和消息原文里提取位置
// 优先级：summary 优先于消息；消息之间按列表顺序取第一个命中
// 都没有命中时返回 LocationUnspecified
func ExtractLocation(summary string, messages []models.EventMessage) string {
	if loc := locationPattern.FindString(summary); loc != "" {
		return loc
	}
	for _, msg := range messages {
		if loc := locationPattern.FindString(msg.Content); loc != "" {
			return loc
		}
	}
	return models.LocationUnspecified
}

// responsibleParties 事件类别 → 责任单位映射表
var responsibleParties = map[string]string{
	"安全隐患": "安全部",
	"质量问题": "质量部",
	"进度延误": "工程部",
	"材料问题": "物资部",
	"设备故障": "机电部",
	"文明施工": "综合办",
}

// ResponsibleParty 按类别查责任单位，未知类别返回 PartyUnassigned
func ResponsibleParty(category string) string {
	if party, ok := responsibleParties[category]; ok {
		return party
	}
	return models.PartyUnassigned
}

// StatusFromCode 上游状态码 → 状态枚举
// 未知状态码静默回落到 StatusPending（最早的生命周期状态），不视为错误
func StatusFromCode(code string) models.IssueStatus {
	switch code {
	case "0":
		return models.StatusPending
	case "1":
		return models.StatusInRemediation
	case "2":
		return models.StatusPendingReview
	case "3":
		return models.StatusClosed
	default:
		return models.StatusPending
	}
}
