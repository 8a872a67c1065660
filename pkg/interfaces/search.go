package _interface

import (
	"bytes"

	request "github.com/bizlead/bizlead-go/pkg/types/dtos/requests"
	structure "github.com/bizlead/bizlead-go/pkg/types/structures"
)

// SearchService는 장소 수집 서비스 인터페이스입니다
type SearchService interface {
	// CollectPlaces는 업종과 지역으로 주변 장소를 수집합니다
	CollectPlaces(req request.SearchBody) ([]structure.Place, error)
}

// ExportService는 수집 결과를 엑셀 문서로 변환하는 인터페이스입니다
type ExportService interface {
	// BuildWorkbook은 장소 목록으로 엑셀 워크북을 생성합니다
	BuildWorkbook(places []structure.Place) (*bytes.Buffer, error)
}
