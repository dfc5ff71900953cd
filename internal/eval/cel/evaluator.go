package cel

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/checker/decls"

	"github.com/aescanero/dago-collection-helpers/internal/collection"
)

// Evaluator evaluates CEL expressions over collection elements
type Evaluator struct {
	env   *cel.Env
	cache map[string]cel.Program
	mu    sync.RWMutex
}

// NewEvaluator creates a new CEL evaluator
func NewEvaluator() *Evaluator {
	// item is bound for mappers, a and b for comparators
	env, err := cel.NewEnv(
		cel.Declarations(
			decls.NewVar("item", decls.Dyn),
			decls.NewVar("a", decls.Dyn),
			decls.NewVar("b", decls.Dyn),
		),
	)
	if err != nil {
		panic(fmt.Sprintf("failed to create CEL environment: %v", err))
	}

	return &Evaluator{
		env:   env,
		cache: make(map[string]cel.Program),
	}
}

// Evaluate evaluates a CEL expression with the given variables
func (e *Evaluator) Evaluate(ctx context.Context, expression string, vars map[string]interface{}) (interface{}, error) {
	// Get or compile program
	program, err := e.getProgram(expression)
	if err != nil {
		return nil, fmt.Errorf("failed to compile expression: %w", err)
	}

	// Evaluate the program
	out, _, err := program.ContextEval(ctx, vars)
	if err != nil {
		return nil, fmt.Errorf("evaluation failed: %w", err)
	}

	return out.Value(), nil
}

// Mapper compiles expression into a collection.Mapper that binds each element to item.
// Evaluation errors are raised as error panics for the host renderer to report.
func (e *Evaluator) Mapper(expression string) (collection.Mapper, error) {
	if _, err := e.getProgram(expression); err != nil {
		return nil, fmt.Errorf("invalid mapper: %w", err)
	}

	return func(item interface{}) interface{} {
		result, err := e.Evaluate(context.Background(), expression, map[string]interface{}{
			"item": item,
		})
		if err != nil {
			panic(fmt.Errorf("mapper %q: %w", expression, err))
		}
		return result
	}, nil
}

// Comparator compiles expression into a collection.Comparator that binds the operands to a and b.
//
// An integer result is used as the ordering directly. A boolean result is read as "a sorts
// before b" and evaluated in both directions.
func (e *Evaluator) Comparator(expression string) (collection.Comparator, error) {
	if _, err := e.getProgram(expression); err != nil {
		return nil, fmt.Errorf("invalid comparator: %w", err)
	}

	compare := func(a, b interface{}) interface{} {
		result, err := e.Evaluate(context.Background(), expression, map[string]interface{}{
			"a": a,
			"b": b,
		})
		if err != nil {
			panic(fmt.Errorf("comparator %q: %w", expression, err))
		}
		return result
	}

	return func(a, b interface{}) int {
		switch result := compare(a, b).(type) {
		case int64:
			return sign(result)
		case uint64:
			if result > 0 {
				return 1
			}
			return 0
		case float64:
			switch {
			case result < 0:
				return -1
			case result > 0:
				return 1
			}
			return 0
		case bool:
			if result {
				return -1
			}
			if less, _ := compare(b, a).(bool); less {
				return 1
			}
			return 0
		default:
			panic(fmt.Errorf("comparator %q: result must be int or bool, got %T", expression, result))
		}
	}, nil
}

// getProgram gets a compiled program from cache or compiles it
func (e *Evaluator) getProgram(expression string) (cel.Program, error) {
	// Check cache first (read lock)
	e.mu.RLock()
	if program, ok := e.cache[expression]; ok {
		e.mu.RUnlock()
		return program, nil
	}
	e.mu.RUnlock()

	// Compile the expression (write lock)
	e.mu.Lock()
	defer e.mu.Unlock()

	// Check again in case another goroutine compiled it
	if program, ok := e.cache[expression]; ok {
		return program, nil
	}

	// Parse the expression
	ast, issues := e.env.Compile(expression)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("parse error: %w", issues.Err())
	}

	// Generate the program
	program, err := e.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program generation error: %w", err)
	}

	// Cache the program
	e.cache[expression] = program

	return program, nil
}

// ValidateExpression validates a CEL expression without evaluating it
func (e *Evaluator) ValidateExpression(expression string) error {
	_, issues := e.env.Compile(expression)
	if issues != nil && issues.Err() != nil {
		return issues.Err()
	}
	return nil
}

// ClearCache clears the compiled program cache
func (e *Evaluator) ClearCache() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cache = make(map[string]cel.Program)
}

func sign(n int64) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
