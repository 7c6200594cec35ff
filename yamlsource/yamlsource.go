// Package yamlsource loads YAML documents as flat property sources.
//
// Nested mappings are flattened to dotted keys, so a "server" mapping with a "port" key is exposed as "server.port".
// Sequence elements are exposed by index like "hosts[0]", and the whole sequence is also exposed as a comma separated "hosts" value when every element is a scalar.
package yamlsource

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/saylorsolutions/cliprops/propsource"
	"os"
	"sigs.k8s.io/yaml"
	"strconv"
	"strings"
)

var (
	ErrLoad = errors.New("failed to load YAML properties")
)

// Load reads and parses the YAML file at path.
// The source name defaults to the path if not given.
func Load(path string, name ...string) (*propsource.MapSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	srcName := path
	if len(name) > 0 {
		srcName = name[0]
	}
	return Parse(srcName, data)
}

// Parse flattens a YAML document into a [propsource.MapSource] with the given name.
// An empty document produces an empty source, and a document that isn't a mapping at the top level is an error.
func Parse(name string, data []byte) (*propsource.MapSource, error) {
	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	dec := json.NewDecoder(bytes.NewReader(jsonData))
	dec.UseNumber()
	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	props := map[string]string{}
	switch doc := root.(type) {
	case nil:
	case map[string]any:
		flattenMap("", doc, props)
	default:
		return nil, fmt.Errorf("%w: top level of '%s' must be a mapping", ErrLoad, name)
	}
	return propsource.NewMapSource(name, props), nil
}

func flattenMap(prefix string, m map[string]any, props map[string]string) {
	for key, val := range m {
		if len(prefix) > 0 {
			key = prefix + "." + key
		}
		flatten(key, val, props)
	}
}

func flatten(key string, val any, props map[string]string) {
	switch v := val.(type) {
	case map[string]any:
		flattenMap(key, v, props)
	case []any:
		scalars := make([]string, 0, len(v))
		for i, elem := range v {
			flatten(key+"["+strconv.Itoa(i)+"]", elem, props)
			if s, ok := scalar(elem); ok {
				scalars = append(scalars, s)
			}
		}
		if len(scalars) == len(v) {
			props[key] = strings.Join(scalars, ",")
		}
	default:
		s, _ := scalar(v)
		props[key] = s
	}
}

func scalar(val any) (string, bool) {
	switch v := val.(type) {
	case nil:
		return "", true
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		return "", false
	}
}
