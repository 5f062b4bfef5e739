package entity

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/sacredfruit/prefabs"
)

// Host receives the calls a touch script makes.
type Host interface {
	ShowText(text string)
	FinishLevel()
}

// touchDispatchScript is appended to every entity script. Scripts define
// on_touch(engine, entity).
const touchDispatchScript = `
if __event == "touch" {
	on_touch(__engine, __entity)
}
`

type scriptRuntime struct {
	path     string
	compiled *tengo.Compiled
}

func loadScript(path string) (*scriptRuntime, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("entity: empty script path")
	}
	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, fmt.Errorf("entity: load script %s: %w", path, err)
	}
	return compileScript(path, src)
}

func compileScript(path string, src []byte) (*scriptRuntime, error) {
	script := tengo.NewScript([]byte(string(src) + "\n" + touchDispatchScript))
	_ = script.Add("__event", "")
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__entity", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("entity: compile script %s: %w", path, err)
	}
	return &scriptRuntime{path: path, compiled: compiled}, nil
}

func (rt *scriptRuntime) touch(e *Entity, host Host) error {
	if err := rt.compiled.Set("__event", "touch"); err != nil {
		return err
	}
	if err := rt.compiled.Set("__engine", buildEngine(host)); err != nil {
		return err
	}
	if err := rt.compiled.Set("__entity", entityObject(e)); err != nil {
		return err
	}
	if err := rt.compiled.Run(); err != nil {
		return fmt.Errorf("entity: run script %s: %w", rt.path, err)
	}
	return nil
}

func buildEngine(host Host) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["show_text"] = &tengo.UserFunction{Name: "show_text", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if host == nil || len(args) < 1 {
			return tengo.FalseValue, nil
		}
		s, ok := tengo.ToString(args[0])
		if !ok {
			return tengo.FalseValue, nil
		}
		host.ShowText(s)
		return tengo.TrueValue, nil
	}}

	values["finish_level"] = &tengo.UserFunction{Name: "finish_level", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if host == nil {
			return tengo.FalseValue, nil
		}
		host.FinishLevel()
		return tengo.TrueValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func entityObject(e *Entity) *tengo.ImmutableMap {
	return &tengo.ImmutableMap{Value: map[string]tengo.Object{
		"name": &tengo.String{Value: e.Name},
		"kind": &tengo.Int{Value: int64(e.Kind)},
		"text": &tengo.String{Value: e.Text},
		"x":    &tengo.Float{Value: e.Pos.X},
		"y":    &tengo.Float{Value: e.Pos.Y},
	}}
}
