package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/olzhass/smena/pkg/config"
	"github.com/olzhass/smena/pkg/server"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		Prefix:          "smena",
	})

	var (
		port   = flag.String("port", "3000", "Server port")
		format = flag.String("format", "", "Download format: csv or xlsx")
	)
	flag.Parse()

	cfg, err := config.Build("", nil)
	if err != nil {
		logger.Fatal("config error", "err", err)
	}
	if *format != "" {
		cfg.Format = *format
	}

	srv := server.New(cfg, logger)
	addr := fmt.Sprintf("0.0.0.0:%s", *port)
	logger.Info("starting server", "addr", addr)
	if err := srv.Start(addr); err != nil {
		logger.Fatal("server error", "err", err)
	}
}
