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

package catalog

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// OpenDB opens (creating if necessary) a SQLite database at path and
// migrates the catalog_entries table, grounded on the teacher corpus's use
// of gorm.io/driver/sqlite (required by btouchard-gmx's go.mod) as the
// persistence layer read_catalog.c never needed because it only ever held
// the catalog in a fixed-size in-process array.
func OpenDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, err
	}
	return db, nil
}

// Store upserts entries into the catalog_entries table, keyed by id. A
// second Store of the same catalog file overwrites rather than duplicates
// rows, so re-running the catalog command against an updated feed is safe.
func Store(db *gorm.DB, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}
	return db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&entries).Error
}
