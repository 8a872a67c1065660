package exporter

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	_interface "github.com/bizlead/bizlead-go/pkg/interfaces"
	constants "github.com/bizlead/bizlead-go/pkg/types"
	structure "github.com/bizlead/bizlead-go/pkg/types/structures"
	"github.com/bizlead/bizlead-go/pkg/utils"
	"github.com/xuri/excelize/v2"
)

// 내보내기 열 순서는 고정입니다
var exportHeaders = []string{
	"Name",
	"Address",
	"Rating",
	"User Ratings",
	"Has Website",
	"Website",
	"Phone",
	"Business Type",
}

// ExportImpl는 엑셀 내보내기 서비스 구현체입니다
type ExportImpl struct{}

// NewExportService는 새 엑셀 내보내기 서비스를 생성합니다
func NewExportService() _interface.ExportService {
	return &ExportImpl{}
}

// BuildWorkbook은 장소 목록으로 엑셀 워크북을 생성하여 메모리 버퍼로 반환합니다.
func (e *ExportImpl) BuildWorkbook(places []structure.Place) (*bytes.Buffer, error) {
	start := time.Now()

	f := excelize.NewFile()
	defer f.Close()

	sheet := constants.EXPORT_SHEET_NAME
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("시트 생성 실패: %v", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	// 헤더 행 작성 (굵게 + 배경색)
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
	})
	if err != nil {
		return nil, fmt.Errorf("헤더 스타일 생성 실패: %v", err)
	}

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	lastCol, _ := excelize.ColumnNumberToName(len(exportHeaders))
	headerRange := fmt.Sprintf("A1:%s1", lastCol)
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, fmt.Errorf("헤더 스타일 적용 실패: %v", err)
	}

	// 데이터 행 작성
	for r, place := range places {
		row := []interface{}{
			place.Name,
			exportAddress(place),
			formatRating(place.Rating),
			ratingsTotal(place.UserRatingsTotal),
			hasWebsite(place.Website),
			place.Website,
			place.Phone,
			BusinessType(place.Types),
		}

		for col, value := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, r+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("셀 작성 실패 (%s): %v", cell, err)
			}
		}
	}

	// 헤더 범위 자동 필터 + 첫 행 고정
	if err := f.AutoFilter(sheet, headerRange, nil); err != nil {
		return nil, fmt.Errorf("자동 필터 설정 실패: %v", err)
	}
	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("행 고정 설정 실패: %v", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("워크북 직렬화 실패: %v", err)
	}

	utils.RecordExportTime(time.Since(start).Seconds())

	return buf, nil
}

// exportAddress는 전체 주소가 없으면 검색 결과의 요약 주소로 대체합니다
func exportAddress(place structure.Place) string {
	if place.FormattedAddress != "" {
		return place.FormattedAddress
	}
	return place.Vicinity
}

// formatRating은 평점을 소수 첫째 자리 문자열로, 없으면 "N/A"로 변환합니다
func formatRating(rating *float64) string {
	if rating == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.1f", *rating)
}

// ratingsTotal은 평점 수가 없으면 0을 반환합니다
func ratingsTotal(total *int) int {
	if total == nil {
		return 0
	}
	return *total
}

// hasWebsite는 웹사이트 보유 여부를 Yes/No 문자열로 변환합니다
func hasWebsite(website string) string {
	if website != "" {
		return "Yes"
	}
	return "No"
}

// BusinessType은 일반 태그를 제외한 업종 태그를 쉼표로 연결합니다.
// 태그의 밑줄은 공백으로 바꿔서 표기합니다.
func BusinessType(placeTypes []string) string {
	var kept []string

	for _, t := range placeTypes {
		generic := false
		for _, g := range constants.GENERIC_PLACE_TYPES {
			if t == g {
				generic = true
				break
			}
		}
		if generic {
			continue
		}
		kept = append(kept, strings.ReplaceAll(t, "_", " "))
	}

	return strings.Join(kept, ", ")
}
