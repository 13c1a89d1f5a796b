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
	"context"
	"fmt"
	"runtime/debug"

	"github.com/gostreamxml/xmltok/pkg/xmldom"
	"github.com/gostreamxml/xmltok/pkg/xmltok"
)

// Extract drives tok directly, one token at a time, rather than building a
// full xmldom.Document first: grounded on read_catalog's own flat
// hand-rolled loop over xml_next_token, which never materializes more than
// one in-progress book_t at a time. A catalog document can be much larger
// than a single in-memory DOM tree is worth building for this one purpose.
func Extract(tok *xmltok.Tokenizer) ([]Entry, error) {
	var entries []Entry
	for {
		switch tok.Next() {
		case xmltok.StartTag:
			name, _ := tok.Name()
			if name != "book" {
				continue
			}
			e, err := extractBook(tok)
			if err != nil {
				return entries, err
			}
			entries = append(entries, e)
		case xmltok.EndDocument:
			return entries, nil
		case xmltok.Error:
			msg, _ := tok.LastError()
			return entries, fmt.Errorf("catalog: %s", msg)
		}
	}
}

// extractBook parses one <book id="..."> element's attributes and the
// handful of known child elements read_catalog.c recognizes
// (author/title/genre/price/publish_date/description), ignoring anything
// else.
func extractBook(tok *xmltok.Tokenizer) (Entry, error) {
	var e Entry
	for {
		switch tok.Next() {
		case xmltok.Attribute:
			name, _ := tok.Name()
			value, _ := tok.Value()
			if name == "id" {
				e.ID = value
			}
		case xmltok.EndAttributes:
			return scanBookBody(tok, e)
		case xmltok.Error:
			msg, _ := tok.LastError()
			return e, fmt.Errorf("catalog: %s", msg)
		}
	}
}

func scanBookBody(tok *xmltok.Tokenizer, e Entry) (Entry, error) {
	for {
		switch tok.Next() {
		case xmltok.StartTag:
			name, _ := tok.Name()
			text, err := textOfElement(tok, name)
			if err != nil {
				return e, err
			}
			switch name {
			case "author":
				e.Author = text
			case "title":
				e.Title = text
			case "genre":
				e.Genre = text
			case "price":
				e.Price = text
			case "publish_date":
				e.PublishDate = text
			case "description":
				e.Description = text
			}
		case xmltok.EndTag:
			closing, _ := tok.Name()
			if closing == "book" {
				return e, nil
			}
		case xmltok.Error:
			msg, _ := tok.LastError()
			return e, fmt.Errorf("catalog: %s", msg)
		}
	}
}

// textOfElement reads a leaf element's text content and consumes its own
// end tag, with StartTag already consumed by the caller.
func textOfElement(tok *xmltok.Tokenizer, name string) (string, error) {
	var text string
	for {
		switch tok.Next() {
		case xmltok.Text:
			t, _ := tok.Text()
			text += t
		case xmltok.EndTag:
			closing, _ := tok.Name()
			if closing == name {
				return text, nil
			}
		case xmltok.Error:
			msg, _ := tok.LastError()
			return text, fmt.Errorf("catalog: %s", msg)
		}
	}
}

// ExtractAsync runs Extract on its own goroutine, the same
// goroutine-plus-PanicStore handshake pkg/xmldom.BuildAsync uses, so a
// caller can overlap catalog extraction with, e.g., opening the destination
// database.
func ExtractAsync(ctx context.Context, tok *xmltok.Tokenizer) (<-chan []Entry, <-chan error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if xmldom.PanicStoreFromContext(ctx) == nil {
		ctx, _ = xmldom.WithPanicStore(ctx)
	}
	entriesCh := make(chan []Entry, 1)
	errCh := make(chan error, 1)
	go func() {
		defer close(entriesCh)
		defer close(errCh)
		defer func() {
			if r := recover(); r != nil {
				row, col := tok.Position()
				if ps := xmldom.PanicStoreFromContext(ctx); ps != nil {
					ps.Store(r, debug.Stack(), row, col)
				}
				errCh <- fmt.Errorf("catalog: panic while extracting at (%d,%d): %v", row, col, r)
			}
		}()
		entries, err := Extract(tok)
		if err != nil {
			errCh <- err
			return
		}
		select {
		case entriesCh <- entries:
		case <-ctx.Done():
		}
	}()
	return entriesCh, errCh
}
