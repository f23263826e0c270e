package httpapi

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/buildsense-ai/v0-buildsense/internal/models"
)

// IssueCardExportHeader 导出表头
var IssueCardExportHeader = []string{
	"问题ID",
	"类别",
	"摘要",
	"位置",
	"责任单位",
	"状态",
	"上报人",
	"创建时间",
	"更新时间",
	"图片数",
}

// statusDisplay 状态枚举的中文展示
var statusDisplay = map[models.IssueStatus]string{
	models.StatusPending:       "待整改",
	models.StatusInRemediation: "整改中",
	models.StatusPendingReview: "待复核",
	models.StatusClosed:        "已闭环",
}

// GenerateIssueCardExport 生成问题卡片导出 Excel 文件
// cards 为空时只生成表头
func GenerateIssueCardExport(cardList []models.IssueCard) ([]byte, error) {
	f := excelize.NewFile()
	// Note: 不要在这里 defer Close()，WriteTo 需要文件保持打开

	sheetName := "问题卡片"
	f.SetSheetName("Sheet1", sheetName)

	for col, header := range IssueCardExportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to build header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for row, card := range cardList {
		values := []any{
			card.ID,
			card.Category,
			card.Summary,
			card.Location,
			card.ResponsibleParty,
			statusDisplay[card.Status],
			card.ReporterUserID,
			card.CreateTime,
			card.UpdateTime,
			len(card.ImageURLs),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, fmt.Errorf("failed to build cell name: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("failed to write cell: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	_ = f.Close()
	return buf.Bytes(), nil
}
