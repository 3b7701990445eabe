// Package templating renders prompt templates with the velty engine.
// Variables use the ${name} form. Values are bound after compilation, so
// template syntax occurring inside a value stays inert.
package templating

import (
	"github.com/viant/velty"
)

// Expand renders template with the supplied variables.
func Expand(template string, variables map[string]interface{}) (string, error) {
	planner := velty.New()
	for name, value := range variables {
		if err := planner.DefineVariable(name, value); err != nil {
			return "", err
		}
	}
	execution, newState, err := planner.Compile([]byte(template))
	if err != nil {
		return "", err
	}
	state := newState()
	for name, value := range variables {
		if err := state.SetValue(name, value); err != nil {
			return "", err
		}
	}
	if err := execution.Exec(state); err != nil {
		return "", err
	}
	return string(state.Buffer.Bytes()), nil
}
