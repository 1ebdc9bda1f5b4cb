// Package marshaller provides serialization of configuration models.
package marshaller

import (
	"fmt"

	"sigs.k8s.io/yaml"
)

// Marshaller serializes and deserializes models of type T.
type Marshaller[T any] interface {
	Marshal(model T) (string, error)
	Unmarshal(data []byte, model *T) error
}

// YAMLMarshaller marshals models as YAML using their json struct tags.
type YAMLMarshaller[T any] struct{}

// NewYAMLMarshaller creates a new YAMLMarshaller instance.
func NewYAMLMarshaller[T any]() *YAMLMarshaller[T] {
	return &YAMLMarshaller[T]{}
}

// Marshal serializes the model into a YAML string.
func (m *YAMLMarshaller[T]) Marshal(model T) (string, error) {
	data, err := yaml.Marshal(model)
	if err != nil {
		return "", fmt.Errorf("marshal yaml: %w", err)
	}

	return string(data), nil
}

// Unmarshal deserializes YAML data into the model.
func (m *YAMLMarshaller[T]) Unmarshal(data []byte, model *T) error {
	err := yaml.UnmarshalStrict(data, model)
	if err != nil {
		return fmt.Errorf("unmarshal yaml: %w", err)
	}

	return nil
}
