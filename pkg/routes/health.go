package routes

import (
	"github.com/gofiber/fiber/v2"

	controller "github.com/bizlead/bizlead-go/pkg/controllers"
)

// SetupHealthRoutes는 상태 확인 관련 라우트를 설정합니다
func SetupHealthRoutes(app *fiber.App, isServerless bool) {
	app.Get("/health", controller.Health())

	// 서버리스 환경에서는 메트릭 엔드포인트를 노출하지 않습니다
	if !isServerless {
		app.Get("/metrics", controller.Metrics())
	}
}
