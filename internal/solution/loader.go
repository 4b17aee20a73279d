package solution

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

const (
	partOneFuncName = "PartOne"
	partTwoFuncName = "PartTwo"
)

// LoadDayFile interprets a days/dayNN.go file and wires its conventional
// entry points into a Solution. PartOne is required; a missing PartTwo is
// tolerated so a freshly generated file can run its first half immediately.
func LoadDayFile(path string, day int) (Solution, error) {
	code, err := os.ReadFile(path)
	if err != nil {
		return Solution{}, fmt.Errorf("solution: read %s: %w", path, err)
	}
	if len(strings.TrimSpace(string(code))) == 0 {
		return Solution{}, fmt.Errorf("solution: %s is empty", path)
	}
	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return Solution{}, fmt.Errorf("solution: load stdlib symbols: %w", err)
	}
	if _, err := i.EvalPath(path); err != nil {
		return Solution{}, fmt.Errorf("solution: interpret %s: %w", path, err)
	}

	s := Solution{Day: day}

	oneValue, err := i.Eval(partOneFuncName)
	if err != nil {
		return Solution{}, fmt.Errorf("solution: %s must define %s(input string): %w", path, partOneFuncName, err)
	}
	s.PartOne, err = wrapEntryPoint(oneValue)
	if err != nil {
		return Solution{}, fmt.Errorf("solution: %s: %s: %w", path, partOneFuncName, err)
	}

	if twoValue, err := i.Eval(partTwoFuncName); err == nil {
		s.PartTwo, err = wrapEntryPoint(twoValue)
		if err != nil {
			return Solution{}, fmt.Errorf("solution: %s: %s: %w", path, partTwoFuncName, err)
		}
	}

	return s, nil
}

// wrapEntryPoint adapts an interpreted function into a Func. Entry points
// take the raw input string and return either a value or (value, error).
func wrapEntryPoint(value reflect.Value) (Func, error) {
	if !value.IsValid() {
		return nil, fmt.Errorf("missing entry point")
	}
	fn := value
	if fn.Kind() != reflect.Func {
		return nil, fmt.Errorf("not a function")
	}
	t := fn.Type()
	if t.NumIn() != 1 || t.In(0).Kind() != reflect.String {
		return nil, fmt.Errorf("must take a single string argument")
	}
	if t.NumOut() == 0 || t.NumOut() > 2 {
		return nil, fmt.Errorf("must return a value or (value, error)")
	}
	return func(input string) (any, error) {
		results := fn.Call([]reflect.Value{reflect.ValueOf(input)})
		if len(results) == 2 {
			if !results[1].IsNil() {
				if e, ok := results[1].Interface().(error); ok && e != nil {
					return nil, e
				}
				return nil, fmt.Errorf("second return value is not an error")
			}
		}
		return results[0].Interface(), nil
	}, nil
}
