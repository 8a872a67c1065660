package service

import (
	"github.com/bizlead/bizlead-go/pkg/configs"
	_interface "github.com/bizlead/bizlead-go/pkg/interfaces"
	"github.com/bizlead/bizlead-go/pkg/services/api"
	"github.com/bizlead/bizlead-go/pkg/services/internal/exporter"
)

// NewServiceContainer는 새로운 서비스 컨테이너를 생성합니다
func NewServiceContainer() *_interface.ServiceContainer {
	config := configs.GetConfig()
	searchService := api.NewSearchService(config)
	exportService := exporter.NewExportService()

	return &_interface.ServiceContainer{
		SearchService: searchService,
		ExportService: exportService,
	}
}
