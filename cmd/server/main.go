package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aigrade/submit-api/internal/httpapi"
	"github.com/aigrade/submit-api/internal/submission"
	"github.com/aigrade/submit-api/pkg/config"
	"github.com/aigrade/submit-api/pkg/email"
	"github.com/aigrade/submit-api/pkg/httpserver"
	"github.com/aigrade/submit-api/pkg/logger"
)

func main() {
	var (
		logCfg    logger.Config
		emailCfg  email.Config
		svcCfg    submission.Config
		apiCfg    httpapi.Config
		serverCfg httpserver.Config
	)
	config.MustLoad(&logCfg)
	config.MustLoad(&emailCfg)
	config.MustLoad(&svcCfg)
	config.MustLoad(&apiCfg)
	config.MustLoad(&serverCfg)

	log := logger.NewFromConfig(logCfg, logger.WithAttr(slog.String("service", "submit-api")))

	var sender email.EmailSender
	switch emailCfg.Driver {
	case "dev":
		sender = email.NewDevSender(emailCfg.DevOutputDir)
		log.Info("Using dev email sender", slog.String("dir", emailCfg.DevOutputDir))
	default:
		sender = email.MustNewPostmarkClient(emailCfg)
	}

	svc := submission.NewService(sender, svcCfg, log)

	handler, err := httpapi.NewSubmitHandler(svc, apiCfg, log)
	if err != nil {
		log.Error("Invalid handler configuration", logger.Error(err))
		os.Exit(1)
	}

	srv := httpserver.NewFromConfig(serverCfg, httpserver.WithLogger(log))
	if err := srv.Run(context.Background(), httpapi.Router(handler, log)); err != nil {
		log.Error("Server exited with error", logger.Error(err))
		os.Exit(1)
	}
}
