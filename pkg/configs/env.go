package configs

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// 앱 버전을 저장하는 전역 변수
var AppVersion string

type EnvConfig struct {
	Server struct {
		Port    string `mapstructure:"PORT"`
		AppName string `mapstructure:"APP_NAME"`
	}
	Google struct {
		APIKey          string `mapstructure:"GOOGLE_MAPS_API_KEY"`
		GeocodeURL      string `mapstructure:"GOOGLE_GEOCODE_URL"`
		NearbySearchURL string `mapstructure:"GOOGLE_NEARBY_URL"`
		PlaceDetailsURL string `mapstructure:"GOOGLE_PLACE_DETAILS_URL"`
	}
	Search struct {
		MaxPages         int `mapstructure:"SEARCH_MAX_PAGES"`
		PageDelaySeconds int `mapstructure:"SEARCH_PAGE_DELAY_SECONDS"`
		RadiusMeters     int `mapstructure:"SEARCH_RADIUS_METERS"`
	}
}

var (
	configInstance *EnvConfig
	once           sync.Once
)

// init 함수에서 VERSION 환경 변수 로드
func init() {
	// Makefile 또는 환경에서 설정된 VERSION 환경 변수 사용
	AppVersion = os.Getenv("VERSION")
	if AppVersion == "" {
		AppVersion = "dev" // 기본값 설정
	}

	// 개발 환경일 경우 항상 "dev"로 설정
	if os.Getenv("APP_ENV") == "dev" {
		AppVersion = "dev"
	}
}

// loadConfig는 환경 변수를 로드하고 검증하는 내부 함수
func loadConfig() *EnvConfig {
	viper.SetConfigFile(".env")
	viper.ReadInConfig()
	viper.AutomaticEnv()

	// 필수 환경 변수 확인
	// GOOGLE_MAPS_API_KEY는 여기서 중단하지 않고 요청 시점에 확인합니다
	requiredEnvVars := []string{
		"PORT",
		"APP_NAME",
	}

	missingVars := []string{}
	for _, envVar := range requiredEnvVars {
		if !viper.IsSet(envVar) {
			missingVars = append(missingVars, envVar)
		}
	}

	if len(missingVars) > 0 {
		log.Fatalf("필수 환경 변수가 설정되지 않았습니다: %s", strings.Join(missingVars, ", "))
	}

	// 기본값 설정
	viper.SetDefault("GOOGLE_GEOCODE_URL", "https://maps.googleapis.com/maps/api/geocode/json")
	viper.SetDefault("GOOGLE_NEARBY_URL", "https://maps.googleapis.com/maps/api/place/nearbysearch/json")
	viper.SetDefault("GOOGLE_PLACE_DETAILS_URL", "https://maps.googleapis.com/maps/api/place/details/json")
	viper.SetDefault("SEARCH_MAX_PAGES", 3)
	viper.SetDefault("SEARCH_PAGE_DELAY_SECONDS", 2)
	viper.SetDefault("SEARCH_RADIUS_METERS", 5000)

	// 환경 변수 키-구조체 필드 매핑 정의
	config := &EnvConfig{}
	envMapping := map[string]*string{
		"PORT":                     &config.Server.Port,
		"APP_NAME":                 &config.Server.AppName,
		"GOOGLE_MAPS_API_KEY":      &config.Google.APIKey,
		"GOOGLE_GEOCODE_URL":       &config.Google.GeocodeURL,
		"GOOGLE_NEARBY_URL":        &config.Google.NearbySearchURL,
		"GOOGLE_PLACE_DETAILS_URL": &config.Google.PlaceDetailsURL,
	}

	// 필드에 환경 변수 값 매핑 - 문자열 필드
	for key, field := range envMapping {
		*field = viper.GetString(key)
	}

	// 검색 설정 - 숫자 필드
	config.Search.MaxPages = viper.GetInt("SEARCH_MAX_PAGES")
	config.Search.PageDelaySeconds = viper.GetInt("SEARCH_PAGE_DELAY_SECONDS")
	config.Search.RadiusMeters = viper.GetInt("SEARCH_RADIUS_METERS")

	return config
}

// GetConfig는 EnvConfig의 싱글톤 인스턴스를 반환합니다.
// 처음 호출 시에만 환경 변수를 로드하고 이후 호출에서는 캐시된 인스턴스를 반환합니다.
func GetConfig() *EnvConfig {
	once.Do(func() {
		configInstance = loadConfig()
		fmt.Printf("환경 변수 로드 완료 (앱 버전: %s)\n", AppVersion)
	})
	return configInstance
}
