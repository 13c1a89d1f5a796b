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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gostreamxml/xmltok/pkg/catalog"
)

func newCatalogCmd(flags *rootFlags) *cobra.Command {
	var dbPath string
	cmd := &cobra.Command{
		Use:   "catalog <file>",
		Short: "Extract a book catalog and persist it to a SQLite database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, closeFn, err := openTokenizer(args[0], flags)
			if err != nil {
				return err
			}
			defer closeFn()

			entries, err := catalog.Extract(tok)
			if err != nil {
				return err
			}

			db, err := catalog.OpenDB(dbPath)
			if err != nil {
				return err
			}
			if err := catalog.Store(db, entries); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "stored %d book(s) in %s\n", len(entries), dbPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "catalog.db", "path to the SQLite catalog database")
	return cmd
}
