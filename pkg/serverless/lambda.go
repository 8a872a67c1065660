package serverless

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	fiberadapter "github.com/awslabs/aws-lambda-go-api-proxy/fiber"

	"github.com/bizlead/bizlead-go/pkg/utils"
)

var fiberLambda *fiberadapter.FiberLambda

// Handler는 API Gateway 프록시 요청을 Fiber 앱으로 전달하는 Lambda 핸들러입니다
func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	// 콜드 스타트 시 한 번만 어댑터 생성, 이후 호출에서 재사용
	if fiberLambda == nil {
		utils.Info("serverless", "Lambda 콜드 스타트: BIZLEAD-GO 앱 어댑터 연결")
		fiberLambda = fiberadapter.New(GetApp())
	}

	return fiberLambda.ProxyWithContext(ctx, req)
}

// LambdaMain은 AWS Lambda 진입점입니다
func LambdaMain() {
	lambda.Start(Handler)
}
