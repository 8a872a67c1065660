package utils

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ParseBodyAndValidate는 JSON 요청 본문을 DTO로 변환하고 검증합니다.
// dto: 변환될 DTO 구조체 포인터 (빈 구조체 전달)
// 반환값: 파싱/검증 오류가 있으면 error, 성공 시 nil
func ParseBodyAndValidate(c *fiber.Ctx, dto interface{}) error {
	if err := c.BodyParser(dto); err != nil {
		return fmt.Errorf("요청 본문 파싱 실패: %v", err)
	}

	validate := NewValidator()
	errors := validate.Validate(dto)
	if errors.HasErrors() {
		return fmt.Errorf("%s", errors.Error())
	}

	return nil
}
