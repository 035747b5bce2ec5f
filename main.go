// @title EduCatalog 后端 API
// @version 1.0
// @description 教育题库目录服务：按年级、科目、章节浏览题目。
// @termsOfService http://swagger.io/terms/

// @contact.name API支持
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api

package main

import (
	"context"
	"edu_catalog_backend/internal/app"
	"edu_catalog_backend/internal/config"
	"edu_catalog_backend/pkg/logger"
	"flag"
	"log"
	"os"
)

func main() {
	// 命令行参数
	configDir := flag.String("config", "configs", "配置文件目录")
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	migrate := flag.Bool("migrate", false, "启动时强制执行数据库迁移（即使是 release 模式）")
	seed := flag.Bool("seed", false, "数据库为空时写入内置示例目录")
	checkCounts := flag.Bool("check-counts", false, "核对冗余计数与实际行数，不一致时以非零状态退出")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 设置运行时标志
	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly
	cfg.Seed = *seed
	cfg.CheckCounts = *checkCounts

	application := app.NewApp(cfg)
	application.ConfigPath = *configDir
	defer logger.Log.Sync()

	// 迁移完成后直接退出
	if *migrateOnly {
		log.Println("数据库迁移完成，退出程序")
		return
	}

	if *checkCounts {
		code := application.CheckCounts(context.Background())
		_ = logger.Log.Sync()
		os.Exit(code)
	}

	application.Run()
}
