package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bizlead/bizlead-go/pkg/configs"
	controller "github.com/bizlead/bizlead-go/pkg/controllers"
	_interface "github.com/bizlead/bizlead-go/pkg/interfaces"
)

// SetupSearchRoutes는 검색 관련 라우트를 설정합니다
func SetupSearchRoutes(endpoint string, api fiber.Router, services *_interface.ServiceContainer) {
	// 이미 초기화된 서비스 사용
	api.Post(endpoint, controller.Search(configs.GetConfig(), services.SearchService, services.ExportService))
}
