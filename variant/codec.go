package variant

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/smartwalle/linkedlist"
)

// MarshalJSON writes floats with a decimal point or exponent so that they
// decode back as floats.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.isFloat && !math.IsNaN(v.f) && !math.IsInf(v.f, 0) {
		return []byte(floatText(v.f)), nil
	}
	return json.Marshal(v.Interface())
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var dec = json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	if n, ok := raw.(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			*v = Int(i)
			return nil
		}
		var f, err = n.Float64()
		if err != nil {
			return fmt.Errorf("%w: %w", linkedlist.ErrTypeMismatch, err)
		}
		*v = Float(f)
		return nil
	}

	var x, err = Of(raw)
	if err != nil {
		return err
	}
	*v = x
	return nil
}

func (v Value) MarshalYAML() (interface{}, error) {
	if v.isFloat && v.f == math.Trunc(v.f) && !math.IsInf(v.f, 0) {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: floatText(v.f)}, nil
	}
	return v.Interface(), nil
}

func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: variant must be a YAML scalar, line %d", linkedlist.ErrTypeMismatch, node.Line)
	}

	var raw any
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("%w: %w", linkedlist.ErrTypeMismatch, err)
	}
	var x, err = Of(raw)
	if err != nil {
		return err
	}
	*v = x
	return nil
}

func floatText(f float64) string {
	var s = strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
