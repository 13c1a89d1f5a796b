// Copyright 2026 Benoit Pereira da Silva
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gostreamxml/xmltok/pkg/xmldom"
)

// elementRecord is the serializable shape of one xmldom.Element, used by
// the yaml/json output formats.
type elementRecord struct {
	Name       string            `json:"name" yaml:"name"`
	Attributes map[string]string `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Text       string            `json:"text,omitempty" yaml:"text,omitempty"`
	Children   []elementRecord   `json:"children,omitempty" yaml:"children,omitempty"`
}

func toElementRecord(e *xmldom.Element) elementRecord {
	rec := elementRecord{Name: e.Name, Text: e.Text}
	if len(e.Attributes) > 0 {
		rec.Attributes = make(map[string]string, len(e.Attributes))
		for _, a := range e.Attributes {
			rec.Attributes[a.Name] = a.Value
		}
	}
	for _, c := range e.Children {
		rec.Children = append(rec.Children, toElementRecord(c))
	}
	return rec
}

func newDomCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "dom <file>",
		Short: "Build and print the DOM tree of an XML document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, closeFn, err := openTokenizer(args[0], flags)
			if err != nil {
				return err
			}
			defer closeFn()

			doc, err := xmldom.Build(tok)
			if err != nil {
				return err
			}

			switch flags.format {
			case "text":
				printElementText(cmd, doc.Root, 0)
				return nil
			case "yaml":
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				defer enc.Close()
				return enc.Encode(toElementRecord(doc.Root))
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(toElementRecord(doc.Root))
			default:
				return fmt.Errorf("xmltok: unknown --format %q (want text, yaml, or json)", flags.format)
			}
		},
	}
}

// printElementText renders the tree in print_xml.c's indentation style,
// supplemented here with a DOM consumer rather than the flat token dumper
// the original offered.
func printElementText(cmd *cobra.Command, e *xmldom.Element, depth int) {
	if e == nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s<%s", indent, e.Name)
	for _, a := range e.Attributes {
		fmt.Fprintf(out, " %s=%q", a.Name, a.Value)
	}
	fmt.Fprint(out, ">")
	if e.Text != "" {
		fmt.Fprintf(out, " %q", e.Text)
	}
	fmt.Fprintln(out)
	for _, c := range e.Children {
		printElementText(cmd, c, depth+1)
	}
}
