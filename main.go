// @title Opiol 留学申请后端 API
// @version 1.0
// @description Opiol 留学申请平台的后端服务：资料设置向导、路线图、往届档案和 AI 顾问。

// @host localhost:8080
// @BasePath /

package main

import (
	"flag"
	"log"

	"opiol_backend/internal/app"
	"opiol_backend/internal/config"
	"opiol_backend/pkg/logger"
)

func main() {
	// 命令行参数
	configDir := flag.String("config", "configs", "配置文件所在目录")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}
	defer logger.Log.Sync()

	if err := application.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
