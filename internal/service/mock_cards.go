package service

import "github.com/buildsense-ai/v0-buildsense/internal/models"

// fallbackCards 上游不可用时的内置演示卡片
// id 固定、内容稳定，前端演示和联调都依赖这份数据不要随手改
var fallbackCards = []models.IssueCard{
	{
		ID:               "demo-001",
		Category:         "安全隐患",
		Summary:          "3号楼临边防护缺失",
		RawTextInput:     "三号楼五层临边防护栏杆缺了一段，工人经常从这里过",
		ReporterUserID:   "demo-user-01",
		Location:         "3号楼",
		ResponsibleParty: "安全部",
		Status:           models.StatusPending,
		CreateTime:       "2025-05-12T09:20:00Z",
		UpdateTime:       "2025-05-12T09:20:00Z",
		ImageURLs:        []string{},
		CandidateImages:  []models.CandidateImage{},
		MessageIDs:       []string{"demo-msg-001"},
	},
	{
		ID:               "demo-002",
		Category:         "质量问题",
		Summary:          "A区地下室墙面渗水",
		RawTextInput:     "A区地下室负一层墙面有明显渗水痕迹，面积还在扩大",
		ReporterUserID:   "demo-user-02",
		Location:         "A区",
		ResponsibleParty: "质量部",
		Status:           models.StatusInRemediation,
		CreateTime:       "2025-05-10T14:05:00Z",
		UpdateTime:       "2025-05-13T08:40:00Z",
		ImageURLs:        []string{},
		CandidateImages:  []models.CandidateImage{},
		MessageIDs:       []string{"demo-msg-002"},
	},
	{
		ID:               "demo-003",
		Category:         "设备故障",
		Summary:          "B座塔吊限位器失灵",
		RawTextInput:     "B座塔吊回转限位器没反应了，已经通知停用",
		ReporterUserID:   "demo-user-03",
		Location:         "B座",
		ResponsibleParty: "机电部",
		Status:           models.StatusClosed,
		CreateTime:       "2025-05-08T07:55:00Z",
		UpdateTime:       "2025-05-09T16:30:00Z",
		ImageURLs:        []string{},
		CandidateImages:  []models.CandidateImage{},
		MessageIDs:       []string{"demo-msg-003"},
	},
}

// FallbackCards 返回演示卡片的副本，调用方可以放心改自己那份
func FallbackCards() []models.IssueCard {
	out := make([]models.IssueCard, len(fallbackCards))
	copy(out, fallbackCards)
	return out
}
