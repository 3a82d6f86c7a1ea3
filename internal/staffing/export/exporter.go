// Package export renders an assignment as a downloadable document.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"staffplan/internal/staffing/models"
)

// Format is a supported document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps "" to JSON.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", s)
	}
}

// ContentType is the MIME type for the format.
func (f Format) ContentType() string {
	if f == FormatYAML {
		return "application/yaml"
	}
	return "application/json"
}

// Section is one venue's label and its formatted members in placement order.
type Section struct {
	Label   string
	Entries []string
}

// Document maps venue labels to members, keeping venue A first.
type Document []Section

// Build formats asg. It has no side effects.
func Build(asg models.Assignment, venues models.Venues) Document {
	doc := make(Document, 0, 2)
	for _, key := range []models.VenueKey{models.VenueA, models.VenueB} {
		members := asg.Members(key)
		entries := make([]string, 0, len(members))
		for _, p := range members {
			entries = append(entries, p.Label())
		}
		doc = append(doc, Section{
			Label:   fmt.Sprintf("%s (%d people)", venues.Get(key).Name, len(members)),
			Entries: entries,
		})
	}
	return doc
}

// MarshalJSON writes the document as a JSON object in section order.
func (d Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, s := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(s.Label)
		if err != nil {
			return nil, err
		}
		entries, err := json.Marshal(s.Entries)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(entries)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML builds a mapping node so section order survives encoding.
func (d Document) MarshalYAML() (any, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, s := range d {
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, e := range s.Entries {
			seq.Content = append(seq.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e})
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s.Label},
			seq,
		)
	}
	return root, nil
}

// Render encodes doc in the requested format.
func Render(doc Document, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("encode yaml export: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("flush yaml export: %w", err)
		}
		return buf.Bytes(), nil
	default:
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json export: %w", err)
		}
		return out, nil
	}
}

// Filename suggests a download name for the format.
func Filename(format Format) string {
	return "assignment." + string(format)
}
