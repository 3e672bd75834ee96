package main

import (
	"errors"
	"io"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	startuptext "github.com/berezovskyivalerii/formgateway/internal/adapter/presenter/startup"
	"github.com/berezovskyivalerii/formgateway/internal/app"
	"github.com/berezovskyivalerii/formgateway/internal/config"
	"github.com/berezovskyivalerii/formgateway/internal/infra/logx"
	usehealth "github.com/berezovskyivalerii/formgateway/internal/usecase/health"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load(args, os.Getenv, stderr)
	if errors.Is(err, config.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	logger := logx.New(cfg.LogLevel, cfg.LogFormat, stderr)
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	a, err := app.Build(cfg, logger, usehealth.SysClock{})
	if err != nil {
		return err
	}
	defer a.Close()

	hl := startuptext.NewHighlighter(startuptext.ProfileFor(cfg.Color, stdout))
	if err := a.Startup(stdout, hl); err != nil {
		logger.Error("startup report not written", "err", err)
	}

	logger.Info("listening", "addr", cfg.Addr(), "version", config.Version)
	return a.Router.Run(cfg.Addr())
}
