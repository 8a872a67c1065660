package utils

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// 직접 등록할 수 있도록 메트릭을 promauto 대신 일반 prometheus로 선언
var (
	// RequestCounter는 총 요청 수를 추적합니다
	RequestCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bizlead_http_requests_total",
		Help: "총 HTTP 요청 수",
	}, []string{"method", "path", "status"})

	// ResponseTime은 응답 시간을 측정합니다
	ResponseTime = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bizlead_http_response_time_seconds",
		Help:    "HTTP 요청 응답 시간(초)",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"method", "path", "status"})

	// ApiCallCounter는 외부 API 호출 수를 추적합니다
	ApiCallCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bizlead_api_calls_total",
		Help: "외부 API 호출 수",
	}, []string{"api", "status"})

	// ApiResponseTime은 외부 API 응답 시간을 측정합니다
	ApiResponseTime = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bizlead_api_response_time_seconds",
		Help:    "외부 API 응답 시간(초)",
		Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 15, 20, 30},
	}, []string{"api"})

	// ExportBuildTime은 엑셀 워크북 생성 시간을 측정합니다
	ExportBuildTime = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "bizlead_export_build_time_seconds",
		Help:    "엑셀 워크북 생성 시간(초)",
		Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	})

	// ErrorCounter는 오류 발생 수를 추적합니다
	ErrorCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bizlead_error_total",
		Help: "오류 발생 수",
	}, []string{"service", "type"})

	// ServerMetric은 서버 부하/상태 게이지입니다
	ServerMetric = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "bizlead_server_status",
		Help: "서버 상태 게이지 (load/healthy/capacity)",
	}, []string{"server", "metric"})
)

// InitMetrics는 모든 메트릭을 등록합니다
func InitMetrics() {
	// 모든 메트릭을 기본 레지스트리에 등록
	prometheus.MustRegister(RequestCounter)
	prometheus.MustRegister(ResponseTime)
	prometheus.MustRegister(ApiCallCounter)
	prometheus.MustRegister(ApiResponseTime)
	prometheus.MustRegister(ExportBuildTime)
	prometheus.MustRegister(ErrorCounter)
	prometheus.MustRegister(ServerMetric)

	fmt.Println("메트릭 초기화 완료")
}

// RecordRequest는 HTTP 요청 메트릭을 기록합니다
func RecordRequest(method string, path string, statusCode int, duration float64) {
	status := strconv.Itoa(statusCode)
	RequestCounter.WithLabelValues(method, path, status).Inc()
	ResponseTime.WithLabelValues(method, path, status).Observe(duration)
}

// RecordApiCall은 외부 API 호출 메트릭을 기록합니다
func RecordApiCall(apiName string, statusCode int, duration float64) {
	status := "success"
	if statusCode < 200 || statusCode >= 400 {
		status = "error"
	}
	ApiCallCounter.WithLabelValues(apiName, status).Inc()
	ApiResponseTime.WithLabelValues(apiName).Observe(duration)
}

// RecordError는 오류 발생을 기록합니다
func RecordError(service string, errorType string) {
	ErrorCounter.WithLabelValues(service, errorType).Inc()
}

// RecordExportTime은 엑셀 생성 시간을 기록합니다
func RecordExportTime(duration float64) {
	ExportBuildTime.Observe(duration)
}

// UpdateServerMetric은 서버 상태 게이지를 갱신합니다
func UpdateServerMetric(serverName string, metric string, value float64) {
	ServerMetric.WithLabelValues(serverName, metric).Set(value)
}

// GetSystemMetrics는 현재 CPU/메모리 사용률을 0~1 범위로 반환합니다
func GetSystemMetrics() (float64, float64) {
	cpuUsage := 0.0
	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		cpuUsage = percents[0] / 100
	}

	memoryUsage := 0.0
	if vm, err := mem.VirtualMemory(); err == nil {
		memoryUsage = vm.UsedPercent / 100
	}

	return cpuUsage, memoryUsage
}
