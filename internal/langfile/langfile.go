// File: langfile.go
// Title: Ordered Locale File Representation
// Description: Implements loading, querying, and deterministic writing of
//              Minecraft lang JSON files. Key order from the source file is
//              preserved so merged output stays diff-friendly in version
//              control. Non-string values are retained verbatim but never
//              count as filled translations.
// Author: janAlonola
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-27
//
// Change History:
// - 2026-08-19 v0.1.0: Initial implementation with ordered parse/encode
// - 2026-08-25 v0.1.1: Atomic save

package langfile

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/janAlonola/globasa-minecraft/internal/apperr"
	"github.com/janAlonola/globasa-minecraft/internal/utils/filex"
	"github.com/janAlonola/globasa-minecraft/internal/utils/stringx"
)

// Entry is a single locale file value. For string values, Value holds the
// decoded string. For anything else, Value holds the compacted raw JSON and
// IsString is false; such entries are never treated as filled.
type Entry struct {
	Value    string
	IsString bool
}

// File is a locale dictionary with stable key order
type File struct {
	keys    []string
	entries map[string]Entry
}

// New creates an empty File
func New() *File {
	return &File{
		entries: make(map[string]Entry),
	}
}

// Load reads and parses a locale file from disk
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperr.Newf(apperr.CodeNotFound, "locale file not found: %s", path)
		}
		return nil, apperr.Wrapf(err, apperr.CodeIO, "read %s", path)
	}

	f, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, apperr.Wrapf(err, apperr.CodeMalformedJSON, "parse %s", path)
	}
	return f, nil
}

// Parse decodes a JSON object from r, preserving key order. Duplicate keys
// keep the position of their first occurrence and the value of their last.
func Parse(r io.Reader) (*File, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeMalformedJSON, "invalid JSON")
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, apperr.New(apperr.CodeMalformedJSON, "top-level JSON value is not an object")
	}

	f := New()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, apperr.Wrap(err, apperr.CodeMalformedJSON, "invalid JSON")
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, apperr.New(apperr.CodeMalformedJSON, "object key is not a string")
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, apperr.Wrapf(err, apperr.CodeMalformedJSON, "invalid value for key %q", key)
		}
		f.setEntry(key, decodeEntry(raw))
	}

	if _, err := dec.Token(); err != nil {
		return nil, apperr.Wrap(err, apperr.CodeMalformedJSON, "invalid JSON")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, apperr.New(apperr.CodeMalformedJSON, "trailing data after top-level object")
	}
	return f, nil
}

func decodeEntry(raw json.RawMessage) Entry {
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return Entry{Value: s, IsString: true}
		}
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		return Entry{Value: string(raw)}
	}
	return Entry{Value: compact.String()}
}

func (f *File) setEntry(key string, e Entry) {
	if _, exists := f.entries[key]; !exists {
		f.keys = append(f.keys, key)
	}
	f.entries[key] = e
}

// Len returns the number of keys in the file
func (f *File) Len() int {
	return len(f.keys)
}

// Keys returns the keys in file order. The returned slice is a copy.
func (f *File) Keys() []string {
	keys := make([]string, len(f.keys))
	copy(keys, f.keys)
	return keys
}

// Has reports whether the key exists, regardless of value type
func (f *File) Has(key string) bool {
	_, ok := f.entries[key]
	return ok
}

// Get returns the string value for a key. The second return is false when
// the key is absent or its value is not a string.
func (f *File) Get(key string) (string, bool) {
	e, ok := f.entries[key]
	if !ok || !e.IsString {
		return "", false
	}
	return e.Value, true
}

// Filled reports whether the key holds a string whose trimmed form is
// non-empty
func (f *File) Filled(key string) bool {
	v, ok := f.Get(key)
	return ok && stringx.IsNotBlank(v)
}

// Set stores a string value for a key. New keys are appended at the end;
// existing keys keep their position.
func (f *File) Set(key, value string) {
	f.setEntry(key, Entry{Value: value, IsString: true})
}

// SetEntry stores an entry verbatim, preserving non-string values. Position
// rules are the same as Set.
func (f *File) SetEntry(key string, e Entry) {
	f.setEntry(key, e)
}

// Entries returns the underlying entry map keyed by key. The returned map
// is a live view used for set operations; callers must not mutate it.
func (f *File) Entries() map[string]Entry {
	return f.entries
}

// Encode writes the file as pretty-printed JSON: two-space indent, keys in
// file order, trailing newline. Output is byte-deterministic for identical
// input.
func (f *File) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if len(f.keys) == 0 {
		if _, err := bw.WriteString("{}\n"); err != nil {
			return err
		}
		return bw.Flush()
	}

	bw.WriteString("{\n")
	for i, key := range f.keys {
		e := f.entries[key]

		keyJSON, err := json.Marshal(key)
		if err != nil {
			return err
		}
		bw.WriteString("  ")
		bw.Write(keyJSON)
		bw.WriteString(": ")

		if e.IsString {
			valJSON, err := json.Marshal(e.Value)
			if err != nil {
				return err
			}
			bw.Write(valJSON)
		} else {
			bw.WriteString(e.Value)
		}

		if i < len(f.keys)-1 {
			bw.WriteByte(',')
		}
		bw.WriteByte('\n')
	}
	bw.WriteString("}\n")

	return bw.Flush()
}

// Save encodes the file and atomically replaces the target path
func (f *File) Save(path string) error {
	var buf bytes.Buffer
	if err := f.Encode(&buf); err != nil {
		return apperr.Wrapf(err, apperr.CodeIO, "encode %s", path)
	}
	if err := filex.WriteFileAtomic(path, buf.Bytes(), 0o644); err != nil {
		return apperr.Wrapf(err, apperr.CodeIO, "write %s", path)
	}
	return nil
}
