package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildsense-ai/v0-buildsense/internal/models"
)

func testCard() models.IssueCard {
	return models.IssueCard{
		ID: "ev-1",
		ImageURLs: []string{
			"https://img.example.com/a/wall-01.jpg",
			"https://cdn.example.com/b/crack-02.jpg",
			"https://img.example.com/a/rebar-03.jpg",
		},
		CandidateImages: []models.CandidateImage{
			{ImageData: "https://img.example.com/a/wall-01.jpg", MessageID: "m1"},
			{ImageData: "https://img.example.com/b/crack-02.jpg", MessageID: "m2"},
			{ImageData: "https://img.example.com/a/rebar-03.jpg", MessageID: "m3"},
		},
	}
}

func TestFindCandidateImageByURL_ExactMatch(t *testing.T) {
	img, ok := FindCandidateImageByURL(testCard(), "https://img.example.com/b/crack-02.jpg")
	require.True(t, ok)
	assert.Equal(t, "m2", img.MessageID)
}

func TestFindCandidateImageByURL_FilenameMatch(t *testing.T) {
	// 展示 URL 走了 CDN 域名，只有文件名一致
	img, ok := FindCandidateImageByURL(testCard(), "https://cdn.example.com/b/crack-02.jpg")
	require.True(t, ok)
	assert.Equal(t, "m2", img.MessageID)
}

func TestFindCandidateImageByURL_QueryStringIgnored(t *testing.T) {
	img, ok := FindCandidateImageByURL(testCard(), "https://cdn.example.com/b/crack-02.jpg?w=640")
	require.True(t, ok)
	assert.Equal(t, "m2", img.MessageID)
}

func TestFindCandidateImageByURL_NoMatchIsExplicit(t *testing.T) {
	// 没有命中就明确返回 false，绝不退回第一张图
	_, ok := FindCandidateImageByURL(testCard(), "https://img.example.com/zzz/other.jpg")
	assert.False(t, ok)
}

func TestRemoveImage_RemovesExactlyOneInTandem(t *testing.T) {
	card := testCard()

	require.True(t, RemoveImage(&card, "m2"))

	// 两个切片各少一条，剩余条目保序
	assert.Equal(t, []string{
		"https://img.example.com/a/wall-01.jpg",
		"https://img.example.com/a/rebar-03.jpg",
	}, card.ImageURLs)
	require.Len(t, card.CandidateImages, 2)
	assert.Equal(t, "m1", card.CandidateImages[0].MessageID)
	assert.Equal(t, "m3", card.CandidateImages[1].MessageID)
}

func TestRemoveImage_FilenameFallback(t *testing.T) {
	// ImageURLs 里 crack-02 挂在 CDN 域名下，URL 不相等但文件名相等
	card := testCard()

	require.True(t, RemoveImage(&card, "m2"))
	assert.NotContains(t, card.ImageURLs, "https://cdn.example.com/b/crack-02.jpg")
}

func TestRemoveImage_UnknownIDIsNoop(t *testing.T) {
	card := testCard()

	assert.False(t, RemoveImage(&card, "m-unknown"))
	assert.Len(t, card.ImageURLs, 3)
	assert.Len(t, card.CandidateImages, 3)
}
