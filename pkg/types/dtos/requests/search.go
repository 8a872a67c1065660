package request

// SearchBody는 업종/지역 검색 요청 본문입니다.
type SearchBody struct {
	ServiceType string `json:"serviceType" validate:"required,max=100"`
	Location    string `json:"location" validate:"required,max=200"`
}
