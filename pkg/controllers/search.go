package controller

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/bizlead/bizlead-go/pkg/configs"
	_interface "github.com/bizlead/bizlead-go/pkg/interfaces"
	constants "github.com/bizlead/bizlead-go/pkg/types"
	requestDto "github.com/bizlead/bizlead-go/pkg/types/dtos/requests"
	responseDto "github.com/bizlead/bizlead-go/pkg/types/dtos/responses"
	"github.com/bizlead/bizlead-go/pkg/utils"
)

// 엑셀(xlsx) 응답 Content-Type
const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// 결과 행 수를 전달하는 응답 헤더
const resultCountHeader = "X-Result-Count"

// Search는 업종/지역 검색 요청을 처리하고 엑셀 문서를 반환하는 핸들러입니다
func Search(config *configs.EnvConfig, searchService _interface.SearchService, exportService _interface.ExportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req requestDto.SearchBody
		if err := utils.ParseBodyAndValidate(c, &req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(responseDto.Error{
				Message: err.Error(),
			})
		}

		// 네트워크 호출 전에 자격 증명 확인
		if config.Google.APIKey == "" {
			utils.Error("search", "%v", constants.ErrAPIKeyMissing)
			return c.Status(fiber.StatusInternalServerError).JSON(responseDto.Error{
				Message: constants.ErrAPIKeyMissing.Error(),
			})
		}

		places, err := searchService.CollectPlaces(req)
		if err != nil {
			utils.Error("search", "장소 수집 실패: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(responseDto.Error{
				Message: "검색 중 오류 발생: " + err.Error(),
			})
		}

		// 빈 결과는 오류가 아닌 별도 상태로 응답
		if len(places) == 0 {
			return c.Status(fiber.StatusNotFound).JSON(responseDto.Error{
				Message: "검색 결과가 없습니다",
			})
		}

		buf, err := exportService.BuildWorkbook(places)
		if err != nil {
			utils.Error("export", "엑셀 생성 실패: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(responseDto.Error{
				Message: "엑셀 생성 중 오류 발생: " + err.Error(),
			})
		}

		utils.Info("search", "%s / %s: %d개 장소 내보내기 완료", req.ServiceType, req.Location, len(places))

		fileName := fmt.Sprintf("places_%s.xlsx", uuid.New().String())
		c.Set(fiber.HeaderContentType, xlsxContentType)
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", fileName))
		c.Set(resultCountHeader, strconv.Itoa(len(places)))

		return c.Send(buf.Bytes())
	}
}
