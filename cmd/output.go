package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

type format string

const (
	formatText format = "text"
	formatJSON format = "json"
	formatYAML format = "yaml"
)

var _ pflag.Value = (*format)(nil)

func (f *format) String() string { return string(*f) }

func (f *format) Set(s string) error {
	switch v := format(strings.ToLower(s)); v {
	case formatText, formatJSON, formatYAML:
		*f = v
		return nil
	}
	return fmt.Errorf("must be one of text, json, yaml")
}

func (f *format) Type() string { return "format" }

type fields = orderedmap.OrderedMap[string, string]

func newFields() *fields {
	return orderedmap.New[string, string]()
}

// render writes fields in insertion order.
func render(w io.Writer, f format, m *fields) error {
	switch f {
	case formatJSON:
		data, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case formatYAML:
		node := &yaml.Node{Kind: yaml.MappingNode}
		for pair := m.Oldest(); pair != nil; pair = pair.Next() {
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: pair.Key},
				&yaml.Node{Kind: yaml.ScalarNode, Value: pair.Value},
			)
		}
		data, err := yaml.Marshal(node)
		if err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
		for pair := m.Oldest(); pair != nil; pair = pair.Next() {
			_, _ = fmt.Fprintf(tw, "%s:\t%s\n", pair.Key, pair.Value)
		}
		return tw.Flush()
	}
}
