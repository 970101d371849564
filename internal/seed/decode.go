// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package seed

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type format int

const (
	formatJSON format = iota + 1
	formatYAML
)

func formatOf(path string) (format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return formatJSON, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

func readFile(path string) ([]byte, format, error) {
	if path == "" {
		return nil, 0, ErrEmptyPath
	}

	f, err := formatOf(path)
	if err != nil {
		return nil, 0, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w %s: %w", ErrReadingFile, path, err)
	}

	return data, f, nil
}

// decode strictly decodes data into out.
func decode(data []byte, f format, out any) error {
	switch f {
	case formatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		return dec.Decode(out)
	case formatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		return dec.Decode(out)
	default:
		return ErrUnsupportedFormat
	}
}

// isSequence reports whether the top-level value of data is an array.
func isSequence(data []byte, f format) (bool, error) {
	switch f {
	case formatJSON:
		trimmed := bytes.TrimLeft(data, " \t\r\n")
		return len(trimmed) > 0 && trimmed[0] == '[', nil
	case formatYAML:
		var node yaml.Node
		if err := yaml.Unmarshal(data, &node); err != nil {
			return false, err
		}
		if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
			return node.Content[0].Kind == yaml.SequenceNode, nil
		}
		return false, nil
	default:
		return false, ErrUnsupportedFormat
	}
}

func readInto(path string, out any) error {
	data, f, err := readFile(path)
	if err != nil {
		return err
	}
	if err = decode(data, f, out); err != nil {
		return fmt.Errorf("%w %s: %w", ErrDecoding, path, err)
	}
	return nil
}
