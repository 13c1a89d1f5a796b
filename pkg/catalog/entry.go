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

// Package catalog extracts a flat book catalog from a catalog-shaped XML
// document and persists it.
//
// It is a demonstration client, not part of the tokenizer's core (spec.md
// §1: "catalog extraction" is listed as an external collaborator).
// Grounded on original_source/example/read_catalog.c / .h: the original
// streams <catalog><book id="..."><author>...</author>...</book>...
// </catalog> straight into a fixed-size C array. Entry replaces that array
// with a gorm-backed SQLite table, since a Go demonstration client gets a
// real persistence backend where the C demo used process memory.
package catalog

// Entry is one <book> element of a catalog document, field-for-field the
// same shape as book_t in original_source/example/read_catalog.h, minus
// that struct's fixed-length char array bounds (MAX_AUTHOR_STR_LEN and
// friends), which have no reason to survive the port to a Go string field
// backed by a real database column.
type Entry struct {
	ID          string `gorm:"column:id;primaryKey"`
	Author      string `gorm:"column:author"`
	Title       string `gorm:"column:title"`
	Genre       string `gorm:"column:genre"`
	Price       string `gorm:"column:price"`
	PublishDate string `gorm:"column:publish_date"`
	Description string `gorm:"column:description"`
}

// TableName pins the gorm table name so it doesn't drift if Entry is ever
// renamed.
func (Entry) TableName() string { return "catalog_entries" }
