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

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gostreamxml/xmltok/pkg/xmltok"
)

// tokenRecord is the serializable shape of one emitted token, used by the
// yaml/json output formats of the tokens command.
type tokenRecord struct {
	Kind  string `json:"kind" yaml:"kind"`
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
	Text  string `json:"text,omitempty" yaml:"text,omitempty"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

func newTokensCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the raw token stream of an XML document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, closeFn, err := openTokenizer(args[0], flags)
			if err != nil {
				return err
			}
			defer closeFn()
			return dumpTokens(cmd, tok, flags.format)
		},
	}
}

// dumpTokens drives tok to completion, rendering each token in the
// requested format. Grounded on original_source/print_xml.c, which loops
// xml_next_token and prints each kind's payload; the text format below
// keeps that one-line-per-token shape, while yaml/json give a machine-
// readable alternative print_xml.c never offered.
func dumpTokens(cmd *cobra.Command, tok *xmltok.Tokenizer, format string) error {
	var records []tokenRecord
	errColor := color.New(color.FgRed, color.Bold)
	for {
		kind := tok.Next()
		rec := tokenRecord{Kind: kind.String()}
		switch kind {
		case xmltok.Declaration, xmltok.Attribute:
			rec.Name, _ = tok.Name()
			rec.Value, _ = tok.Value()
		case xmltok.StartTag, xmltok.EndTag:
			rec.Name, _ = tok.Name()
		case xmltok.Text:
			rec.Text, _ = tok.Text()
		case xmltok.Error:
			rec.Error, _ = tok.LastError()
		}

		if format == "text" {
			printTokenText(cmd, rec, errColor)
		} else {
			records = append(records, rec)
		}

		if kind == xmltok.EndDocument || kind == xmltok.Error {
			break
		}
	}
	switch format {
	case "text":
		return nil
	case "yaml":
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		defer enc.Close()
		return enc.Encode(records)
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	default:
		return fmt.Errorf("xmltok: unknown --format %q (want text, yaml, or json)", format)
	}
}

func printTokenText(cmd *cobra.Command, rec tokenRecord, errColor *color.Color) {
	out := cmd.OutOrStdout()
	switch rec.Kind {
	case "Declaration", "Attribute":
		fmt.Fprintf(out, "%-16s %s=%q\n", rec.Kind, rec.Name, rec.Value)
	case "StartTag", "EndTag":
		fmt.Fprintf(out, "%-16s %s\n", rec.Kind, rec.Name)
	case "Text":
		fmt.Fprintf(out, "%-16s %q\n", rec.Kind, rec.Text)
	case "Error":
		errColor.Fprintf(out, "%-16s %s\n", rec.Kind, rec.Error)
	default:
		fmt.Fprintln(out, rec.Kind)
	}
}
