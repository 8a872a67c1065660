package serverless

import (
	"log"
	"os"
)

// CloudRunMain은 GCP Cloud Run 진입점 함수입니다
func CloudRunMain() {
	app := GetApp()
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Fatal(app.Listen(":" + port))
}
