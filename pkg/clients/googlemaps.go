package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/bizlead/bizlead-go/pkg/configs"
	_interface "github.com/bizlead/bizlead-go/pkg/interfaces"
	constants "github.com/bizlead/bizlead-go/pkg/types"
	structure "github.com/bizlead/bizlead-go/pkg/types/structures"
	"github.com/bizlead/bizlead-go/pkg/utils"
)

// GoogleMapsAPIClient는 구글 지도 API 요청을 처리하는 클라이언트입니다.
type GoogleMapsAPIClient struct {
	_interface.Service
}

// NewGoogleMapsAPIClient는 새로운 구글 지도 API 클라이언트를 생성합니다.
func NewGoogleMapsAPIClient(config *configs.EnvConfig) *GoogleMapsAPIClient {
	return &GoogleMapsAPIClient{
		Service: _interface.Service{
			Client: &http.Client{
				Timeout: constants.TIMEOUT,
			},
			Config: config,
		},
	}
}

// get은 GET 요청을 실행하고 응답 본문을 반환합니다.
func (c *GoogleMapsAPIClient) get(apiName string, reqURL string) ([]byte, error) {
	start := time.Now()

	resp, err := c.Client.Get(reqURL)
	if err != nil {
		utils.RecordApiCall(apiName, 0, time.Since(start).Seconds())
		return nil, fmt.Errorf("요청 실행 실패: %v", err)
	}
	defer resp.Body.Close()

	// 응답 본문 읽기
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("응답 읽기 실패: %v", err)
	}

	utils.RecordApiCall(apiName, resp.StatusCode, time.Since(start).Seconds())

	// 응답 상태 확인
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API 오류 (%d): %s", resp.StatusCode, string(body))
	}

	return body, nil
}

// Geocode는 지역 문자열을 좌표로 변환합니다.
// 결과가 없거나 상태가 정상이 아니면 ErrLocationNotFound를 반환합니다.
func (c *GoogleMapsAPIClient) Geocode(address string) (*structure.Coordinates, error) {
	params := url.Values{}
	params.Add("address", address)
	params.Add("key", c.Config.Google.APIKey)

	body, err := c.get("geocode", c.Config.Google.GeocodeURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	// 응답 JSON 파싱
	var geocodeResp structure.GeocodeResponse
	if err := json.Unmarshal(body, &geocodeResp); err != nil {
		return nil, fmt.Errorf("응답 파싱 실패: %v", err)
	}

	if geocodeResp.Status != constants.STATUS_OK || len(geocodeResp.Results) == 0 {
		return nil, fmt.Errorf("%w (상태: %s)", constants.ErrLocationNotFound, geocodeResp.Status)
	}

	// 첫 번째 후보의 좌표 사용
	location := geocodeResp.Results[0].Geometry.Location
	return &location, nil
}

// NearbySearch는 좌표와 키워드로 주변 장소 한 페이지를 검색합니다.
func (c *GoogleMapsAPIClient) NearbySearch(lat float64, lng float64, keyword string) (*structure.NearbySearchResponse, error) {
	radius := c.Config.Search.RadiusMeters
	if radius <= 0 {
		radius = constants.DEFAULT_RADIUS_METERS
	}

	params := url.Values{}
	params.Add("location", fmt.Sprintf("%f,%f", lat, lng))
	params.Add("radius", fmt.Sprintf("%d", radius))
	params.Add("keyword", keyword)
	params.Add("key", c.Config.Google.APIKey)

	return c.nearby(params)
}

// NearbySearchPage는 페이지 토큰으로 다음 페이지를 검색합니다.
// 토큰 모드에서는 좌표와 키워드를 사용하지 않습니다.
func (c *GoogleMapsAPIClient) NearbySearchPage(pageToken string) (*structure.NearbySearchResponse, error) {
	params := url.Values{}
	params.Add("pagetoken", pageToken)
	params.Add("key", c.Config.Google.APIKey)

	return c.nearby(params)
}

func (c *GoogleMapsAPIClient) nearby(params url.Values) (*structure.NearbySearchResponse, error) {
	body, err := c.get("nearbysearch", c.Config.Google.NearbySearchURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	// 응답 JSON 파싱
	var searchResp structure.NearbySearchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		return nil, fmt.Errorf("응답 파싱 실패: %v", err)
	}

	return &searchResp, nil
}

// PlaceDetails는 장소 ID로 웹사이트/전화번호/전체 주소를 조회합니다.
func (c *GoogleMapsAPIClient) PlaceDetails(placeID string) (*structure.PlaceDetail, error) {
	params := url.Values{}
	params.Add("place_id", placeID)
	params.Add("fields", "website,formatted_phone_number,formatted_address")
	params.Add("key", c.Config.Google.APIKey)

	body, err := c.get("placedetails", c.Config.Google.PlaceDetailsURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	// 응답 JSON 파싱
	var detailsResp structure.PlaceDetailsResponse
	if err := json.Unmarshal(body, &detailsResp); err != nil {
		return nil, fmt.Errorf("응답 파싱 실패: %v", err)
	}

	if detailsResp.Status != constants.STATUS_OK {
		return nil, fmt.Errorf("상세 조회 실패 (상태: %s)", detailsResp.Status)
	}

	return &detailsResp.Result, nil
}
