package constants

import (
	"errors"
	"time"
)

// 구글 플레이스 API 응답 상태값
const (
	STATUS_OK           = "OK"
	STATUS_ZERO_RESULTS = "ZERO_RESULTS"
)

// 업종 컬럼에서 제외할 일반 태그
var GENERIC_PLACE_TYPES = []string{
	"point_of_interest",
	"establishment",
}

// 외부 API 타임아웃 시간
var TIMEOUT = 10 * time.Second

// 검색 기본 설정
const (
	DEFAULT_MAX_PAGES     = 3
	DEFAULT_RADIUS_METERS = 5000
)

// 내보내기 시트 이름
const EXPORT_SHEET_NAME = "Places"

// 서비스 공통 오류
var (
	// ErrLocationNotFound는 지오코딩 결과가 없을 때 반환됩니다
	ErrLocationNotFound = errors.New("위치를 찾을 수 없습니다")

	// ErrAPIKeyMissing은 구글 지도 API 키가 설정되지 않았을 때 반환됩니다
	ErrAPIKeyMissing = errors.New("GOOGLE_MAPS_API_KEY가 설정되지 않았습니다")
)
