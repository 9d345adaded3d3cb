// Package codec converts configuration trees to and from YAML.
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/quickstart/pkg/document"
	"github.com/aretw0/quickstart/pkg/domain"
)

// Indent is the indentation used for nested YAML blocks.
const Indent = 4

// Marshal encodes content as YAML with the version key first and the
// remaining keys sorted.
func Marshal(content map[string]any) ([]byte, error) {
	var node yaml.Node
	if err := node.Encode(document.Normalize(content)); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	hoistVersion(&node)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(Indent)
	if err := enc.Encode(&node); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes YAML into a configuration tree.
// Content that is empty or not a mapping yields domain.ErrDocumentMalformed.
func Unmarshal(data []byte) (map[string]any, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, domain.ErrDocumentMalformed
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrDocumentMalformed, err)
	}
	content, ok := document.Normalize(raw).(map[string]any)
	if !ok {
		return nil, domain.ErrDocumentMalformed
	}
	return content, nil
}

func hoistVersion(node *yaml.Node) {
	if node.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value != document.VersionKey || i == 0 {
			continue
		}
		pair := []*yaml.Node{node.Content[i], node.Content[i+1]}
		rest := append(append([]*yaml.Node{}, node.Content[:i]...), node.Content[i+2:]...)
		node.Content = append(pair, rest...)
		return
	}
}
