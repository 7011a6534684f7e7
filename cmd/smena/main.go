package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/olzhass/smena/pkg/config"
	"github.com/olzhass/smena/pkg/export"
	"github.com/olzhass/smena/pkg/manifest"
	"github.com/olzhass/smena/pkg/report"
	"github.com/olzhass/smena/pkg/service"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "smena",
	Short: "Shift report block extraction",
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Show help when no subcommand is provided
		return cmd.Help()
	},
}

var extractCmd = &cobra.Command{
	Use:   "extract [flags] <path|glob>",
	Short: "Extract blocks from shift report files",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Build(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}
		logger := newLogger(cfg.LogLevel)
		processor := service.NewProcessor(cfg, logger)
		parser := report.New(logger)
		dump, _ := cmd.Flags().GetBool("dump")

		matches, err := filepath.Glob(args[0])
		if err != nil {
			return err
		}
		if len(matches) == 0 {
			return fmt.Errorf("no files found matching pattern %s", args[0])
		}

		for _, match := range matches {
			fileInfo, err := os.Stat(match)
			if err != nil {
				logger.Warn("failed to stat file", "error", err, "file", match)
				continue
			}

			if fileInfo.IsDir() {
				if err := processor.ProcessDirectory(match); err != nil {
					logger.Warn("failed to process directory", "error", err, "dir", match)
				}
				continue
			}

			data, err := os.ReadFile(match)
			if err != nil {
				logger.Warn("failed to read file", "error", err, "file", match)
				continue
			}
			rep, err := parser.Extract(data)
			if err != nil {
				logger.Warn("failed to extract report", "error", err, "file", match)
				continue
			}

			fmt.Println(fileHeader(match))
			printSummary(rep)
			if dump {
				pp.Println(rep)
			}

			if _, err := processor.ProcessFile(match); err != nil {
				logger.Warn("failed to write output", "error", err, "file", match)
			}
		}
		return nil
	},
}

var batchCmd = &cobra.Command{
	Use:   "batch <manifest.yaml>",
	Short: "Extract every report listed in a YAML manifest",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Build(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}
		logger := newLogger(cfg.LogLevel)
		parser := report.New(logger)

		m, err := manifest.Load(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Processing %d reports from %s\n", len(m.Reports), args[0])
		for _, entry := range m.Reports {
			data, err := entry.Bytes()
			if err != nil {
				logger.Warn("failed to read report", "error", err, "club", entry.Club, "date", entry.Date)
				continue
			}
			rep, err := parser.Extract(data)
			if err != nil {
				logger.Warn("failed to extract report", "error", err, "club", entry.Club, "date", entry.Date)
				continue
			}

			fmt.Println(fileHeader(fmt.Sprintf("%s %s", entry.Club, entry.Date)))
			printSummary(rep)

			if cfg.OutputPath != "" {
				meta := export.Meta{Club: entry.Club, Date: entry.Date}
				output, err := service.Render(rep, cfg.Format, meta)
				if err != nil {
					logger.Warn("failed to render report", "error", err, "club", entry.Club)
					continue
				}
				name := fmt.Sprintf("%s-%s.%s", entry.Club, entry.Date, outputExt(cfg.Format))
				path := filepath.Join(cfg.OutputPath, name)
				if err := os.WriteFile(path, output, 0644); err != nil {
					logger.Warn("failed to write output", "error", err, "path", path)
				}
			}
		}
		return nil
	},
}

func newLogger(level string) *log.Logger {
	parsed, err := log.ParseLevel(level)
	if err != nil {
		parsed = log.InfoLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		Prefix:          "smena",
		Level:           parsed,
	})
}

func outputExt(format string) string {
	if format == "" {
		return "json"
	}
	return format
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default is config.yaml)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output directory (default: next to input)")
	rootCmd.PersistentFlags().String("format", "", "Output format: json, csv or xlsx")
	rootCmd.PersistentFlags().String("log-level", "", "Log level")

	extractCmd.Flags().Bool("dump", false, "Pretty-print the full extracted report")

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(batchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
