package linkedlist

import (
	"encoding/json"
	"fmt"

	"github.com/emirpasic/gods/containers"
	"gopkg.in/yaml.v3"
)

var (
	_ containers.Container        = (*List[int])(nil)
	_ containers.JSONSerializer   = (*List[int])(nil)
	_ containers.JSONDeserializer = (*List[int])(nil)
	_ json.Marshaler              = (*List[int])(nil)
	_ json.Unmarshaler            = (*List[int])(nil)
	_ yaml.Marshaler              = (*List[int])(nil)
	_ yaml.Unmarshaler            = (*List[int])(nil)
)

func (l *List[T]) Empty() bool {
	return l.Len() == 0
}

func (l *List[T]) Size() int {
	return l.Len()
}

func (l *List[T]) Clear() {
	l.Init()
}

// Values returns the values of l boxed for gods containers.
func (l *List[T]) Values() []interface{} {
	var values = make([]interface{}, 0, l.Len())
	for _, v := range l.All() {
		values = append(values, v)
	}
	return values
}

func (l *List[T]) ToJSON() ([]byte, error) {
	return json.Marshal(l.Slice())
}

// FromJSON replaces the content of l with the values of a JSON array.
func (l *List[T]) FromJSON(data []byte) error {
	var values []T
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("%w: %w", ErrTypeMismatch, err)
	}
	l.reset(values)
	return nil
}

func (l *List[T]) MarshalJSON() ([]byte, error) {
	return l.ToJSON()
}

func (l *List[T]) UnmarshalJSON(data []byte) error {
	return l.FromJSON(data)
}

func (l *List[T]) MarshalYAML() (interface{}, error) {
	return l.Slice(), nil
}

// UnmarshalYAML replaces the content of l with the items of a YAML sequence.
func (l *List[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		l.reset(nil)
		return nil
	}
	if node.Kind != yaml.SequenceNode {
		return typeMismatch("expected a YAML sequence at line %d, got %s", node.Line, node.Tag)
	}

	var values []T
	if err := node.Decode(&values); err != nil {
		return fmt.Errorf("%w: %w", ErrTypeMismatch, err)
	}
	l.reset(values)
	return nil
}

func (l *List[T]) reset(values []T) {
	l.Init()
	l.extend(values)
}
