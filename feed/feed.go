// Package feed decodes and encodes shoe histories as served by the table backend.
package feed

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/luca-patrignani/baccarat-roadmap/domain/baccarat"
)

// ErrMalformedFeed is returned when the document is neither a mapping of
// keyed hands nor a list of hands.
var ErrMalformedFeed = errors.New("malformed feed")

type entry struct {
	Result int `yaml:"result"`
	Ext    int `yaml:"ext"`
}

type hand struct {
	Key   string `yaml:"key"`
	entry `yaml:",inline"`
}

// Decode reads a shoe history. Two shapes are accepted, in JSON or YAML:
//
//	{"k0": {"result": 1, "ext": 0}, "k1": {"result": 3, "ext": 2}}
//	[{"key": "k0", "result": 1, "ext": 0}, {"result": 3, "ext": 2}]
//
// Mapping keys keep the order they appear in. List items without a key get
// "k<index>". An empty document decodes to no outcomes.
func Decode(data []byte) ([]baccarat.Outcome, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedFeed, err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return []baccarat.Outcome{}, nil
	}
	root := doc.Content[0]

	switch root.Kind {
	case yaml.MappingNode:
		return decodeMapping(root)
	case yaml.SequenceNode:
		return decodeList(root)
	case yaml.ScalarNode:
		if root.Tag == "!!null" {
			return []baccarat.Outcome{}, nil
		}
	}
	return nil, fmt.Errorf("%w: line %d: expected a mapping or a list", ErrMalformedFeed, root.Line)
}

func decodeMapping(root *yaml.Node) ([]baccarat.Outcome, error) {
	outcomes := make([]baccarat.Outcome, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valueNode := root.Content[i], root.Content[i+1]
		var h entry
		if err := valueNode.Decode(&h); err != nil {
			return nil, fmt.Errorf("%w: key %q: %w", ErrMalformedFeed, keyNode.Value, err)
		}
		o, err := baccarat.NewOutcome(keyNode.Value, h.Result, h.Ext)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", keyNode.Value, err)
		}
		outcomes = append(outcomes, o)
	}
	return outcomes, nil
}

func decodeList(root *yaml.Node) ([]baccarat.Outcome, error) {
	outcomes := make([]baccarat.Outcome, 0, len(root.Content))
	for i, item := range root.Content {
		var h hand
		if err := item.Decode(&h); err != nil {
			return nil, fmt.Errorf("%w: item %d: %w", ErrMalformedFeed, i, err)
		}
		if h.Key == "" {
			h.Key = fmt.Sprintf("k%d", i)
		}
		o, err := baccarat.NewOutcome(h.Key, h.Result, h.Ext)
		if err != nil {
			return nil, fmt.Errorf("item %d (key %q): %w", i, h.Key, err)
		}
		outcomes = append(outcomes, o)
	}
	return outcomes, nil
}

// Read decodes a whole stream.
func Read(r io.Reader) ([]baccarat.Outcome, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed: %w", err)
	}
	return Decode(data)
}

// Load decodes a feed file.
func Load(path string) ([]baccarat.Outcome, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed file: %w", err)
	}
	return Decode(data)
}

// Encode writes outcomes in the mapping form, keys in slice order. Outcomes
// without a key are written as "k<index>".
func Encode(outcomes []baccarat.Outcome) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for i, o := range outcomes {
		key := o.Key
		if key == "" {
			key = fmt.Sprintf("k%d", i)
		}
		value := &yaml.Node{}
		if err := value.Encode(entry{Result: int(o.Result), Ext: int(o.Pair)}); err != nil {
			return nil, err
		}
		value.Style = yaml.FlowStyle
		root.Content = append(root.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: key}, value)
	}
	return yaml.Marshal(root)
}
