package api

import (
	"fmt"
	"time"

	client "github.com/bizlead/bizlead-go/pkg/clients"
	"github.com/bizlead/bizlead-go/pkg/configs"
	_interface "github.com/bizlead/bizlead-go/pkg/interfaces"
	constants "github.com/bizlead/bizlead-go/pkg/types"
	request "github.com/bizlead/bizlead-go/pkg/types/dtos/requests"
	structure "github.com/bizlead/bizlead-go/pkg/types/structures"
	"github.com/bizlead/bizlead-go/pkg/utils"
)

// SearchImpl는 장소 수집 서비스 구현체입니다
type SearchImpl struct {
	_interface.Service
	mapsClient *client.GoogleMapsAPIClient
}

// NewSearchService는 새 장소 수집 서비스를 생성합니다
func NewSearchService(config *configs.EnvConfig) _interface.SearchService {
	return &SearchImpl{
		Service:    _interface.Service{Config: config},
		mapsClient: client.NewGoogleMapsAPIClient(config),
	}
}

// CollectPlaces는 업종과 지역으로 주변 장소를 수집합니다.
// 지오코딩 1회 후 페이지 상한까지 순차적으로 검색하고, 페이지마다 모든
// 장소를 동시에 상세 조회로 보강한 뒤 원본 순서대로 누적합니다.
func (s *SearchImpl) CollectPlaces(req request.SearchBody) ([]structure.Place, error) {
	if s.mapsClient == nil {
		return nil, fmt.Errorf("구글 지도 API 클라이언트가 초기화되지 않았습니다")
	}

	// 1. 지역 문자열을 좌표로 변환
	coords, err := s.mapsClient.Geocode(req.Location)
	if err != nil {
		return nil, err
	}

	maxPages := s.Config.Search.MaxPages
	if maxPages <= 0 {
		maxPages = constants.DEFAULT_MAX_PAGES
	}
	pageDelay := time.Duration(s.Config.Search.PageDelaySeconds) * time.Second

	var places []structure.Place
	pageToken := ""

	// 2. 페이지 상한까지 순차 검색 - 다음 페이지 요청은 현재 페이지 보강이 끝난 뒤에만 실행
	for page := 1; page <= maxPages; page++ {
		var searchResp *structure.NearbySearchResponse

		if pageToken == "" {
			// 첫 페이지는 좌표+키워드 모드
			searchResp, err = s.mapsClient.NearbySearch(coords.Lat, coords.Lng, req.ServiceType)
		} else {
			// 토큰이 상류에 전파될 때까지 대기 후 토큰 모드로 요청
			time.Sleep(pageDelay)
			searchResp, err = s.mapsClient.NearbySearchPage(pageToken)
		}
		if err != nil {
			return nil, err
		}

		// ZERO_RESULTS는 빈 페이지로 취급, 그 외 비정상 상태는 검색 전체를 중단
		if searchResp.Status != constants.STATUS_OK && searchResp.Status != constants.STATUS_ZERO_RESULTS {
			return nil, fmt.Errorf("주변 검색 실패 (상태: %s)", searchResp.Status)
		}

		utils.Debug("search", "페이지 %d: %d개 장소 수신", page, len(searchResp.Results))

		// 3. 페이지 내 모든 장소를 동시에 상세 조회로 보강
		enriched := utils.EnrichPlaces(searchResp.Results, s.mapsClient.PlaceDetails)
		places = append(places, enriched...)

		// 다음 페이지 토큰이 없으면 종료
		pageToken = searchResp.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return places, nil
}
