package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"treedrag.dev/treedrag/internal/engine"
	"treedrag.dev/treedrag/internal/errors"
	"treedrag.dev/treedrag/internal/utils"
)

const (
	idKey       = "id"
	subRowsKey  = "subRows"
	stdinMarker = "-"
)

// Format is an output encoding
type Format string

const (
	// FormatYAML writes YAML
	FormatYAML Format = "yaml"
	// FormatJSON writes indented JSON
	FormatJSON Format = "json"
)

// ParseFormat accepts yaml, yml or json
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown format %q (want yaml or json)", s)
	}
}

// FormatFor guesses a format from a file extension, defaulting to YAML
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Load reads a document from path, or from r when path is "-"
func Load(path string, r io.Reader) (Forest, error) {
	var (
		data []byte
		err  error
	)
	if path == stdinMarker {
		data, err = utils.ReadFromStdin(r)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	forest, err := Parse(data)
	if err != nil {
		var docErr *errors.DocumentError
		if errors.As(err, &docErr) && path != stdinMarker {
			docErr.Path = path
		}
		return nil, err
	}
	return forest, nil
}

// Parse decodes a YAML or JSON document and validates its ids
func Parse(data []byte) (Forest, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.NewDocumentError("", err)
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return Forest{}, nil
	}

	top := root.Content[0]
	if top.Kind == yaml.ScalarNode && top.Tag == "!!null" {
		return Forest{}, nil
	}
	if top.Kind != yaml.SequenceNode {
		return nil, errors.NewDocumentError("", fmt.Errorf("line %d: expected a sequence of rows", top.Line))
	}

	forest, err := parseRows(top)
	if err != nil {
		return nil, errors.NewDocumentError("", err)
	}
	if err := forest.Validate(); err != nil {
		return nil, errors.NewDocumentError("", err)
	}
	return forest, nil
}

func parseRows(seq *yaml.Node) (Forest, error) {
	forest := make(Forest, 0, len(seq.Content))
	for _, item := range seq.Content {
		node, err := parseRow(item)
		if err != nil {
			return nil, err
		}
		forest = append(forest, node)
	}
	return forest, nil
}

func parseRow(item *yaml.Node) (engine.Node[Row], error) {
	if item.Kind != yaml.MappingNode {
		return engine.Node[Row]{}, fmt.Errorf("line %d: expected a row mapping", item.Line)
	}

	row := Row{Fields: make(map[string]any)}
	var children []engine.Node[Row]
	hasID := false

	for i := 0; i+1 < len(item.Content); i += 2 {
		key, value := item.Content[i], item.Content[i+1]
		switch key.Value {
		case idKey:
			if value.Kind != yaml.ScalarNode || value.Tag == "!!null" {
				return engine.Node[Row]{}, fmt.Errorf("line %d: row id must be a string or number", value.Line)
			}
			row.Key = value.Value
			hasID = true
		case subRowsKey:
			if value.Tag == "!!null" {
				continue
			}
			if value.Kind != yaml.SequenceNode {
				return engine.Node[Row]{}, fmt.Errorf("line %d: subRows must be a sequence", value.Line)
			}
			sub, err := parseRows(value)
			if err != nil {
				return engine.Node[Row]{}, err
			}
			children = sub
		default:
			var decoded any
			if err := value.Decode(&decoded); err != nil {
				return engine.Node[Row]{}, fmt.Errorf("line %d: field %s: %w", value.Line, key.Value, err)
			}
			row.Fields[key.Value] = decoded
			row.order = append(row.order, key.Value)
		}
	}

	if !hasID {
		return engine.Node[Row]{}, fmt.Errorf("line %d: row has no id", item.Line)
	}
	if len(children) == 0 {
		children = nil
	}
	return engine.Node[Row]{Record: row, Children: children}, nil
}

// Encode writes the forest in the given format. Each row lists its id first,
// then its fields in document order, then its subRows.
func Encode(forest Forest, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return encodeJSON(forest)
	default:
		return encodeYAML(forest)
	}
}

// Write encodes the forest to w
func Write(w io.Writer, forest Forest, format Format) error {
	data, err := Encode(forest, format)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func encodeYAML(forest Forest) ([]byte, error) {
	seq, err := yamlRows(forest)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(seq); err != nil {
		return nil, fmt.Errorf("failed to encode rows: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func yamlRows(nodes []engine.Node[Row]) (*yaml.Node, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, node := range nodes {
		mapping := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		mapping.Content = append(mapping.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: idKey},
			&yaml.Node{Kind: yaml.ScalarNode, Value: node.Record.Key},
		)
		for _, name := range node.Record.FieldNames() {
			value := &yaml.Node{}
			if err := value.Encode(node.Record.Fields[name]); err != nil {
				return nil, fmt.Errorf("failed to encode field %s of row %s: %w", name, node.ID(), err)
			}
			mapping.Content = append(mapping.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: name}, value)
		}
		if len(node.Children) > 0 {
			sub, err := yamlRows(node.Children)
			if err != nil {
				return nil, err
			}
			mapping.Content = append(mapping.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: subRowsKey}, sub)
		}
		seq.Content = append(seq.Content, mapping)
	}
	return seq, nil
}

func encodeJSON(forest Forest) ([]byte, error) {
	var compact bytes.Buffer
	if err := writeJSONRows(&compact, forest); err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, fmt.Errorf("failed to encode rows: %w", err)
	}
	out.WriteString("\n")
	return out.Bytes(), nil
}

func writeJSONRows(buf *bytes.Buffer, nodes []engine.Node[Row]) error {
	buf.WriteString("[")
	for i, node := range nodes {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("{")
		if err := writeJSONField(buf, idKey, node.Record.Key); err != nil {
			return err
		}
		for _, name := range node.Record.FieldNames() {
			buf.WriteString(",")
			if err := writeJSONField(buf, name, node.Record.Fields[name]); err != nil {
				return fmt.Errorf("failed to encode field %s of row %s: %w", name, node.ID(), err)
			}
		}
		if len(node.Children) > 0 {
			buf.WriteString(`,"subRows":`)
			if err := writeJSONRows(buf, node.Children); err != nil {
				return err
			}
		}
		buf.WriteString("}")
	}
	buf.WriteString("]")
	return nil
}

func writeJSONField(buf *bytes.Buffer, name string, value any) error {
	key, _ := json.Marshal(name)
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}
	buf.Write(key)
	buf.WriteString(":")
	buf.Write(encoded)
	return nil
}
