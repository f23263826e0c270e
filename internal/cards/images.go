// Package cards 维护问题卡片的图片匹配、同步删除和每张卡片的
// 本地视图状态（预览下标、删除在途标志）。
package cards

import (
	"path"
	"strings"

	"github.com/buildsense-ai/v0-buildsense/internal/models"
)

// fileName 取 URL 最后一段路径（文件名），忽略 query/fragment
func fileName(rawURL string) string {
	if i := strings.IndexAny(rawURL, "?#"); i >= 0 {
		rawURL = rawURL[:i]
	}
	name := path.Base(rawURL)
	if name == "." || name == "/" {
		return ""
	}
	return name
}

// FindCandidateImageByURL 按展示 URL 找对应的候选图片
// 先精确匹配 ImageData，再按文件名（路径末段）匹配；
// 都没命中返回 ok=false，由调用方决定拦截还是提示——
// 绝不猜测性地退回第一张图，避免拿错 message_id 删掉无关图片
func FindCandidateImageByURL(card models.IssueCard, url string) (models.CandidateImage, bool) {
	for _, img := range card.CandidateImages {
		if img.ImageData == url {
			return img, true
		}
	}

	if name := fileName(url); name != "" {
		for _, img := range card.CandidateImages {
			if fileName(img.ImageData) == name {
				return img, true
			}
		}
	}
	return models.CandidateImage{}, false
}

// RemoveImage 按 messageID 从卡片里删掉一张图
// ImageURLs 和 CandidateImages 同步过滤，幸存条目保持原顺序；
// messageID 不存在时不做任何修改，返回 false
func RemoveImage(card *models.IssueCard, messageID string) bool {
	idx := -1
	for i, img := range card.CandidateImages {
		if img.MessageID == messageID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	removedURL := card.CandidateImages[idx].ImageData
	card.CandidateImages = append(card.CandidateImages[:idx], card.CandidateImages[idx+1:]...)

	// URL 列表与候选图片保持一一对应：先按 URL 相等删一条，
	// 没有相等项时退到文件名相等（对应关系允许后缀匹配）
	if !removeFirstURL(card, func(u string) bool { return u == removedURL }) {
		name := fileName(removedURL)
		if name != "" {
			removeFirstURL(card, func(u string) bool { return fileName(u) == name })
		}
	}
	return true
}

func removeFirstURL(card *models.IssueCard, match func(string) bool) bool {
	for i, u := range card.ImageURLs {
		if match(u) {
			card.ImageURLs = append(card.ImageURLs[:i], card.ImageURLs[i+1:]...)
			return true
		}
	}
	return false
}
