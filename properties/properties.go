// Package properties provides the dotted-key configuration source the engine
// reads its runtime settings from.
//
// Files are TOML. Nested tables flatten into dotted keys, and quoted keys may
// carry dots themselves, so both spellings address the same namespace:
//
//	"runtime.log" = "velocity.log"
//
//	["runtime.log.logsystem.zerolog"]
//	logger = "app"
package properties

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// Properties is a flat string map keyed by dotted property names. The zero
// value is usable.
type Properties struct {
	values map[string]string
}

func New() *Properties {
	return &Properties{values: map[string]string{}}
}

// Property returns the value for key, or "" when unset.
func (p *Properties) Property(key string) string {
	if p == nil {
		return ""
	}
	return p.values[key]
}

func (p *Properties) Set(key, value string) {
	if p.values == nil {
		p.values = map[string]string{}
	}
	p.values[key] = value
}

// Load reads a TOML properties file.
func Load(path string) (*Properties, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "properties: read %s", path)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "properties: %s", path)
	}
	return p, nil
}

// Parse decodes TOML data into flattened dotted-key properties. Non-string
// scalars are stringified.
func Parse(data []byte) (*Properties, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "parse")
	}
	p := New()
	flatten("", raw, p.values)
	return p, nil
}

func flatten(prefix string, node map[string]any, out map[string]string) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch t := v.(type) {
		case map[string]any:
			flatten(key, t, out)
		case string:
			out[key] = t
		default:
			out[key] = fmt.Sprint(t)
		}
	}
}
