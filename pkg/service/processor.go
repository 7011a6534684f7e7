// Package service runs extraction over directories of report files and
// writes the results in the configured output format.
package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/olzhass/smena/pkg/config"
	"github.com/olzhass/smena/pkg/csv"
	"github.com/olzhass/smena/pkg/export"
	"github.com/olzhass/smena/pkg/report"
)

type Processor struct {
	config *config.Config
	logger *log.Logger
	parser *report.Parser
}

func NewProcessor(cfg *config.Config, logger *log.Logger) *Processor {
	return &Processor{
		config: cfg,
		logger: logger,
		parser: report.New(logger),
	}
}

// ProcessDirectory extracts every report file in dir. Per-file failures
// are logged and skipped so one broken sheet does not sink the batch.
func (p *Processor) ProcessDirectory(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("error reading directory: %w", err)
	}

	for _, entry := range entries {
		if err := p.processEntry(dir, entry); err != nil {
			p.logger.Error("failed to process entry", "file", entry.Name(), "error", err)
		}
	}

	return nil
}

func (p *Processor) processEntry(dir string, entry os.DirEntry) error {
	if entry.IsDir() {
		return nil
	}
	if !supportedFile(entry.Name()) {
		return nil
	}

	inputPath := filepath.Join(dir, entry.Name())
	p.logger.Info("processing file", "path", inputPath)

	outputPath, err := p.ProcessFile(inputPath)
	if err != nil {
		return err
	}

	p.logger.Info("processed file successfully", "input", inputPath, "output", outputPath)
	return nil
}

// ProcessFile extracts one report file and writes the result next to the
// input (or under the configured output path). Returns the output path.
func (p *Processor) ProcessFile(inputPath string) (string, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return "", fmt.Errorf("error reading file: %w", err)
	}

	rep, err := p.parser.Extract(data)
	if err != nil {
		return "", fmt.Errorf("error extracting report: %w", err)
	}
	if rep.Empty() {
		p.logger.Warn("no report blocks found", "file", inputPath)
	}
	for _, warning := range rep.Warnings() {
		p.logger.Warn("total mismatch", "file", inputPath, "detail", warning)
	}

	output, err := Render(rep, p.config.Format, export.Meta{})
	if err != nil {
		return "", err
	}

	outputPath := p.outputPath(inputPath)
	if err := os.WriteFile(outputPath, output, 0644); err != nil {
		return "", fmt.Errorf("error writing output file: %w", err)
	}
	return outputPath, nil
}

func (p *Processor) outputPath(inputPath string) string {
	fileName := filepath.Base(inputPath)
	ext := filepath.Ext(fileName)
	baseName := strings.TrimSuffix(fileName, ext)
	suffix := "-smena." + formatExt(p.config.Format)
	if p.config.OutputPath != "" {
		return filepath.Join(p.config.OutputPath, baseName+suffix)
	}
	return strings.TrimSuffix(inputPath, ext) + suffix
}

// Render serializes a report in the requested format.
func Render(rep *report.Report, format string, meta export.Meta) ([]byte, error) {
	switch format {
	case "", "json":
		out, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("error encoding json: %w", err)
		}
		return out, nil
	case "csv":
		return RenderCSV(rep), nil
	case "xlsx":
		out, err := export.Workbook(rep, meta)
		if err != nil {
			return nil, fmt.Errorf("error building workbook: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// RenderCSV stacks every non-empty block into one CSV file, one titled
// section per block.
func RenderCSV(rep *report.Report) []byte {
	var buf bytes.Buffer
	csv.Section(&buf, "Доходы", []string{"Категория", "Сумма"}, rep.Income)
	csv.Section(&buf, "Входные билеты", []string{"Позиция", "Цена", "Количество", "Сумма"}, rep.Tickets.Records)
	csv.Section(&buf, "Типы оплат", []string{"Тип оплаты", "Сумма"}, rep.Payments.Records)
	csv.Section(&buf, "Статистика персонала", []string{"Роль", "Количество"}, rep.Staff)
	csv.Section(&buf, "Расходы", []string{"Статья", "Сумма"}, rep.Expenses.Records)
	csv.Section(&buf, "Инкассация", []string{"Валюта", "Количество", "Курс", "Сумма"}, rep.Cash.Records)
	csv.Section(&buf, "Долги по персоналу", []string{"Тип долга", "Сумма"}, rep.Debts.Records)
	csv.Section(&buf, "Примечания (безнал)", []string{"Текст", "Сумма"}, rep.Notes.NoCash)
	csv.Section(&buf, "Примечания (нал)", []string{"Текст", "Сумма"}, rep.Notes.Cash)
	csv.Section(&buf, "Итоговый баланс", []string{"Тип оплаты", "Доход", "Расход", "Прибыль"}, rep.Totals)
	return buf.Bytes()
}

func supportedFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm", ".xls", ".csv":
		return true
	}
	return false
}

func formatExt(format string) string {
	if format == "" {
		return "json"
	}
	return format
}
