package response

// Error는 실패 응답 본문을 나타냅니다.
type Error struct {
	Message string `json:"message"`
}
