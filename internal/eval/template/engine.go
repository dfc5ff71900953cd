package template

import (
	"fmt"

	"github.com/aymerick/raymond"
	"go.uber.org/zap"

	"github.com/aescanero/dago-collection-helpers/internal/collection"
)

// Engine renders Handlebars templates with the collection helpers installed
type Engine struct {
	funcs  *Funcs
	logger *zap.Logger
}

// NewEngine creates a new template engine
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Engine{
		funcs:  NewFuncs(),
		logger: logger,
	}
}

// RegisterMapper makes fn available to the map helper under name
func (e *Engine) RegisterMapper(name string, fn collection.Mapper) {
	e.funcs.RegisterMapper(name, fn)
	e.logger.Debug("registered mapper", zap.String("name", name))
}

// RegisterComparator makes fn available to the sortBy helper under name
func (e *Engine) RegisterComparator(name string, fn collection.Comparator) {
	e.funcs.RegisterComparator(name, fn)
	e.logger.Debug("registered comparator", zap.String("name", name))
}

// Render renders a template with the given data
func (e *Engine) Render(templateStr string, data interface{}) (string, error) {
	// Parse the template and bind helpers to it only
	tmpl, err := raymond.Parse(templateStr)
	if err != nil {
		e.logger.Debug("template parse failed", zap.Error(err))
		return "", fmt.Errorf("failed to parse template: %w", err)
	}
	RegisterHelpers(tmpl, e.funcs)

	// Execute the template
	result, err := tmpl.Exec(data)
	if err != nil {
		e.logger.Error("template execution failed", zap.Error(err))
		return "", fmt.Errorf("template execution failed: %w", err)
	}

	return result, nil
}

// ValidateTemplate validates a template without rendering it
func (e *Engine) ValidateTemplate(templateStr string) error {
	_, err := raymond.Parse(templateStr)
	return err
}
