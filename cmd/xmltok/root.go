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
	"os"

	"github.com/spf13/cobra"

	"github.com/gostreamxml/xmltok/pkg/xmltok"
)

// rootFlags carries the persistent flags every subcommand shares: --trim
// and --collapse map onto the Tokenizer setters, --encoding selects an
// xmltok.NewTranscodingSource, and --format picks the output renderer, per
// SPEC_FULL.md's Configuration section — the CLI layers cobra/pflag flags
// on top of the same configuration surface the library exposes, rather than
// inventing a config file format.
type rootFlags struct {
	trim     bool
	collapse bool
	format   string
	encoding string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:   "xmltok",
		Short: "Stream, inspect, and extract well-formed XML 1.0 documents",
		Long: "xmltok drives the pull-style XML tokenizer in pkg/xmltok and its\n" +
			"demonstration clients (pkg/xmldom, pkg/catalog) from the command line.",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVar(&flags.trim, "trim", true, "trim leading/trailing whitespace from text runs")
	root.PersistentFlags().BoolVar(&flags.collapse, "collapse", true, "collapse runs of whitespace to a single space")
	root.PersistentFlags().StringVar(&flags.format, "format", "text", "output format: text, yaml, or json")
	root.PersistentFlags().StringVar(&flags.encoding, "encoding", "", "legacy source encoding to transcode from: iso-8859-1 or windows-1252 (default: UTF-8)")

	root.AddCommand(newTokensCmd(flags))
	root.AddCommand(newDomCmd(flags))
	root.AddCommand(newCatalogCmd(flags))
	return root
}

// openTokenizer opens filename, applying --encoding and --trim/--collapse
// from flags. The returned close func releases both the tokenizer and, for
// the transcoding path, the underlying file handle xmltok.Open would
// otherwise have owned.
func openTokenizer(filename string, flags *rootFlags) (tok *xmltok.Tokenizer, closeFn func() error, err error) {
	if flags.encoding == "" {
		tok, err = xmltok.Open(filename)
		if err != nil {
			return nil, nil, err
		}
		closeFn = tok.Close
	} else {
		f, ferr := os.Open(filename)
		if ferr != nil {
			return nil, nil, ferr
		}
		src := xmltok.NewTranscodingSource(f, xmltok.Encoding(flags.encoding))
		tok = xmltok.New(src)
		closeFn = func() error {
			tok.Close()
			return f.Close()
		}
	}
	tok.SetTrim(flags.trim)
	tok.SetCollapse(flags.collapse)
	return tok, closeFn, nil
}
