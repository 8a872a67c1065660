package structure

// Coordinates는 위도/경도 좌표쌍입니다
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// GeocodeResponse는 지오코딩 API 응답입니다
type GeocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location Coordinates `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// NearbyPlace는 주변 검색 결과의 장소 요약 레코드입니다
type NearbyPlace struct {
	PlaceID          string   `json:"place_id"`
	Name             string   `json:"name"`
	Vicinity         string   `json:"vicinity"`
	Rating           *float64 `json:"rating,omitempty"`
	UserRatingsTotal *int     `json:"user_ratings_total,omitempty"`
	Types            []string `json:"types"`
}

// NearbySearchResponse는 주변 검색 API 응답입니다
type NearbySearchResponse struct {
	Status        string        `json:"status"`
	NextPageToken string        `json:"next_page_token"`
	Results       []NearbyPlace `json:"results"`
}

// PlaceDetail은 상세 조회로 얻는 추가 속성입니다
type PlaceDetail struct {
	Website              string `json:"website"`
	FormattedPhoneNumber string `json:"formatted_phone_number"`
	FormattedAddress     string `json:"formatted_address"`
}

// PlaceDetailsResponse는 상세 조회 API 응답입니다
type PlaceDetailsResponse struct {
	Status string      `json:"status"`
	Result PlaceDetail `json:"result"`
}

// Place는 검색 결과와 상세 조회 결과를 병합한 최종 레코드입니다.
// 상세 조회가 실패한 경우 보강 필드는 빈 문자열로 유지됩니다.
type Place struct {
	NearbyPlace
	Website          string `json:"website"`
	Phone            string `json:"phone"`
	FormattedAddress string `json:"formattedAddress"`
}
