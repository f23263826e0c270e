package models

// IssueStatus 问题卡片生命周期状态（人读枚举）
// 上游事件库用数字字符串表示状态，适配层负责翻译；
// 未知状态码一律落到 StatusPending，不报错
type IssueStatus string

const (
	StatusPending       IssueStatus = "pending"        // 待整改 ("0")
	StatusInRemediation IssueStatus = "in-remediation" // 整改中 ("1")
	StatusPendingReview IssueStatus = "pending-review" // 待复核 ("2")
	StatusClosed        IssueStatus = "closed"         // 已闭环 ("3")
)

// 派生字段缺省值
const (
	LocationUnspecified = "位置待定" // summary 和消息里都找不到位置
	PartyUnassigned     = "待分配"  // 类别不在责任单位映射表里
	ReporterUnknown     = "unknown" // 事件没有任何消息时的上报人
)

// CardSource 标记卡片列表的数据来源
// 上游不可用时服务层返回内置演示数据，调用方通过该字段区分
type CardSource string

const (
	SourceLive     CardSource = "live"
	SourceFallback CardSource = "fallback"
)

// EventMessage 事件聚类 API 里的单条原始消息
type EventMessage struct {
	Type      string `json:"type"`
	Content   string `json:"content"`
	SenderID  string `json:"sender_id"`
	Timestamp string `json:"timestamp"`
	MessageID string `json:"message_id"`
}

// CandidateImage 事件关联的候选图片
// MessageID 是删除操作的唯一键（上游按消息删图）
type CandidateImage struct {
	ImageKey  string `json:"image_key"`
	SenderID  string `json:"sender_id"`
	Timestamp string `json:"timestamp"`
	ImageData string `json:"image_data"` // 图片 URL
	MessageID string `json:"message_id"`
}

// ExternalEvent 上游事件库返回的事件记录（只读）
// 字段归上游所有，时间戳保持原样的字符串，不做本地解析
type ExternalEvent struct {
	ID              string           `json:"id"`
	Category        string           `json:"category"`
	Summary         string           `json:"summary"`
	Status          string           `json:"status"` // 状态码的字符串形式，如 "0"
	CreateTime      string           `json:"create_time"`
	UpdateTime      string           `json:"update_time"`
	IsMerged        bool             `json:"is_merged"`
	CandidateImages []CandidateImage `json:"candidate_images"`
	Messages        []EventMessage   `json:"messages"`
}

// IssueCard 看板使用的内部投影，每个 ExternalEvent 对应一张卡片
// ImageURLs 与 CandidateImages 保持一一对应（URL 相等，退而求其次文件名相等），
// 删除图片时两个切片必须同步过滤
type IssueCard struct {
	ID               string           `json:"id"`
	Category         string           `json:"category"`
	Summary          string           `json:"summary"`
	RawTextInput     string           `json:"raw_text_input"` // 首条消息的原文，没有消息则为空
	ReporterUserID   string           `json:"reporter_user_id"`
	Location         string           `json:"location"`
	ResponsibleParty string           `json:"responsible_party"`
	Status           IssueStatus      `json:"status"`
	CreateTime       string           `json:"create_time"`
	UpdateTime       string           `json:"update_time"`
	IsMerged         bool             `json:"is_merged"`
	ImageURLs        []string         `json:"image_urls"`
	CandidateImages  []CandidateImage `json:"candidate_images"`
	MessageIDs       []string         `json:"message_ids"`
}

// IssueCardList 卡片列表 + 数据来源标记
type IssueCardList struct {
	Items  []IssueCard `json:"items"`
	Source CardSource  `json:"source"`
}
