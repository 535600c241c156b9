//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"faqpilot/internal/bootstrap"
	"faqpilot/internal/domain/qa"
	"faqpilot/internal/infra/config"
	httpiface "faqpilot/internal/interface/http"
	"faqpilot/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideQAConfig,
		provideOpenAIClient,
		provideEmbedder,
		provideResponder,
		provideStore,
		provideAnswerCache,
		provideSeed,
		qa.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
