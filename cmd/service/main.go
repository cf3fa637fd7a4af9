package main

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	httpapi "github.com/albait/assistant/cmd/http"
	"github.com/albait/assistant/internal/catalog"
	"github.com/albait/assistant/internal/config"
	"github.com/albait/assistant/internal/engine"
	"github.com/albait/assistant/internal/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("ASSISTANT_CONFIG"))
	if err != nil {
		l := logger.New("info", "console")
		l.Fatal().Err(err).Msg("load config")
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	items, err := catalog.LoadItems(cfg.Data.CatalogPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load catalog")
	}
	pages, err := catalog.LoadPages(cfg.Data.PagesPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load pages")
	}
	log.Info().Int("items", len(items)).Int("pages", len(pages)).Msg("catalog loaded")

	manager := engine.NewManager(items, pages, cfg.Engine, cfg.Server.SessionTTL, log)

	app := fiber.New(fiber.Config{AppName: "assistant"})
	httpapi.New(manager, log).Register(app)

	log.Info().Str("addr", cfg.Server.Addr()).Msg("listening")
	if err := app.Listen(cfg.Server.Addr()); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
