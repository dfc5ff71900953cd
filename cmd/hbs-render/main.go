package main

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/aescanero/dago-collection-helpers/internal/config"
	"github.com/aescanero/dago-collection-helpers/internal/eval/cel"
	"github.com/aescanero/dago-collection-helpers/internal/eval/template"
)

var (
	// Version is set at build time
	Version = "dev"
	// BuildTime is set at build time
	BuildTime = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	logger.Debug("starting hbs-render",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
	)
	logger.Debug("configuration loaded", zap.String("config", cfg.String()))

	engine, err := newEngine(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize engine", zap.Error(err))
	}

	if err := run(cfg, engine, logger); err != nil {
		logger.Fatal("render failed", zap.Error(err))
	}
}

// initLogger initializes the logger; output goes to stderr so stdout stays free for the rendered text
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}

// newEngine builds the template engine with the configured CEL functions registered
func newEngine(cfg *config.Config, logger *zap.Logger) (*template.Engine, error) {
	engine := template.NewEngine(logger)
	evaluator := cel.NewEvaluator()

	for name, expression := range cfg.Mappers {
		fn, err := evaluator.Mapper(expression)
		if err != nil {
			return nil, fmt.Errorf("mapper %s: %w", name, err)
		}
		engine.RegisterMapper(name, fn)
	}

	for name, expression := range cfg.Comparators {
		fn, err := evaluator.Comparator(expression)
		if err != nil {
			return nil, fmt.Errorf("comparator %s: %w", name, err)
		}
		engine.RegisterComparator(name, fn)
	}

	return engine, nil
}

// run renders the configured template against the configured data file
func run(cfg *config.Config, engine *template.Engine, logger *zap.Logger) error {
	source, err := os.ReadFile(cfg.TemplatePath)
	if err != nil {
		return fmt.Errorf("failed to read template: %w", err)
	}

	data, err := loadData(cfg.DataPath)
	if err != nil {
		return err
	}

	result, err := engine.Render(string(source), data)
	if err != nil {
		return err
	}

	if cfg.OutputPath == "" {
		_, err = fmt.Fprint(os.Stdout, result)
		return err
	}

	if err := os.WriteFile(cfg.OutputPath, []byte(result), 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	logger.Info("template rendered",
		zap.String("template", cfg.TemplatePath),
		zap.String("output", cfg.OutputPath),
		zap.Int("bytes", len(result)),
	)

	return nil
}

// loadData reads a JSON document to use as the render context; no path means an empty context
func loadData(path string) (interface{}, error) {
	if path == "" {
		return map[string]interface{}{}, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data: %w", err)
	}

	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("data file %s is not valid JSON", path)
	}

	return gjson.ParseBytes(raw).Value(), nil
}
