package utils

import (
	"sync"

	structure "github.com/bizlead/bizlead-go/pkg/types/structures"
)

// DetailFunc는 장소 ID로 상세 정보를 조회하는 함수 타입입니다
type DetailFunc func(placeID string) (*structure.PlaceDetail, error)

// EnrichPlaces는 한 페이지의 장소들을 동시에 상세 조회로 보강합니다.
// 결과는 입력 순서대로 반환되며, 개별 상세 조회가 실패해도 해당 장소는
// 빈 보강 필드로 유지되고 전체 처리는 계속됩니다.
func EnrichPlaces(items []structure.NearbyPlace, detail DetailFunc) []structure.Place {
	// 결과를 저장할 슬라이스 초기화 (원본 순서 유지)
	results := make([]structure.Place, len(items))

	// 동시성 제어를 위한 WaitGroup과 뮤텍스
	var wg sync.WaitGroup
	var mu sync.Mutex

	for i, item := range items {
		wg.Add(1)

		// 고루틴으로 상세 조회 (병렬 처리)
		go func(index int, place structure.NearbyPlace) {
			defer wg.Done()

			enriched := structure.Place{NearbyPlace: place}

			detailResult, err := detail(place.PlaceID)
			if err != nil {
				// 상세 조회 실패는 기본값으로 계속 진행 - 전체 검색을 중단하지 않음
				Warn("search", "상세 조회 실패 (%s): %v", place.PlaceID, err)
			} else {
				enriched.Website = detailResult.Website
				enriched.Phone = detailResult.FormattedPhoneNumber
				enriched.FormattedAddress = detailResult.FormattedAddress
			}

			// 결과 저장
			mu.Lock()
			results[index] = enriched
			mu.Unlock()
		}(i, item)
	}

	// 모든 고루틴이 완료될 때까지 대기
	wg.Wait()

	return results
}
