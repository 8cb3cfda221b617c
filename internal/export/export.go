// Package export renders generated records as JSON, CSV or aligned text,
// and writes them to files, optionally encrypted.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatText = "text"
)

// ErrUnknownFormat is returned for an unsupported output format.
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the supported output formats.
func Formats() []string {
	return []string{FormatJSON, FormatCSV, FormatText}
}

// Encode writes records to w in the given format.
func Encode(w io.Writer, format string, records []any) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatJSON, "":
		return encodeJSON(w, records)
	case FormatCSV:
		return encodeCSV(w, records)
	case FormatText:
		return encodeText(w, records)
	}
	return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
}

func encodeJSON(w io.Writer, records []any) error {
	if records == nil {
		records = []any{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// encodeCSV writes one row per record. The header is the union of every
// record's flattened keys in first-seen order.
func encodeCSV(w io.Writer, records []any) error {
	rows := make([]*Row, 0, len(records))
	var header []string
	seen := map[string]bool{}

	for i, rec := range records {
		row, err := Flatten(rec)
		if err != nil {
			return fmt.Errorf("encode csv: record %d: %w", i, err)
		}
		for _, k := range row.Keys {
			if !seen[k] {
				seen[k] = true
				header = append(header, k)
			}
		}
		rows = append(rows, row)
	}

	cw := csv.NewWriter(w)
	if len(header) > 0 {
		if err := cw.Write(header); err != nil {
			return fmt.Errorf("encode csv: write header: %w", err)
		}
	}
	for _, row := range rows {
		line := make([]string, len(header))
		for i, k := range header {
			line[i] = row.Values[k]
		}
		if err := cw.Write(line); err != nil {
			return fmt.Errorf("encode csv: write row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("encode csv: %w", err)
	}
	return nil
}

// encodeText prints each record as indented "key: value" lines.
func encodeText(w io.Writer, records []any) error {
	for i, rec := range records {
		row, err := Flatten(rec)
		if err != nil {
			return fmt.Errorf("encode text: record %d: %w", i, err)
		}

		width := 0
		for _, k := range row.Keys {
			width = max(width, len(k)+1)
		}

		if i > 0 {
			fmt.Fprintln(w)
		}
		for _, k := range row.Keys {
			if _, err := fmt.Fprintf(w, "  %-*s %s\n", width, k+":", row.Values[k]); err != nil {
				return fmt.Errorf("encode text: %w", err)
			}
		}
	}
	return nil
}

// Row is a record flattened to string columns. Keys keeps field order.
type Row struct {
	Keys   []string
	Values map[string]string
}

func (r *Row) set(k, v string) {
	if _, ok := r.Values[k]; !ok {
		r.Keys = append(r.Keys, k)
	}
	r.Values[k] = v
}

// Flatten turns a record into dotted columns. Nested objects become
// "parent.child", arrays stay JSON-encoded and null becomes empty.
// Scalars and arrays at the top level land in a "value" column.
func Flatten(rec any) (*Row, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}

	row := &Row{Values: map[string]string{}}
	if err := flattenValue(row, "", data); err != nil {
		return nil, err
	}
	return row, nil
}

func flattenValue(row *Row, prefix string, raw json.RawMessage) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil
	}

	switch raw[0] {
	case '{':
		return flattenObject(row, prefix, raw)
	case '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return fmt.Errorf("compact %s: %w", prefix, err)
		}
		row.set(column(prefix), buf.String())
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return fmt.Errorf("unquote %s: %w", prefix, err)
		}
		row.set(column(prefix), s)
	case 'n':
		row.set(column(prefix), "")
	default:
		row.set(column(prefix), string(raw))
	}
	return nil
}

// flattenObject walks an object token by token so keys keep their order.
func flattenObject(row *Row, prefix string, raw json.RawMessage) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("read object: %w", err)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("read key: unexpected token %v", tok)
		}

		var val json.RawMessage
		if err := dec.Decode(&val); err != nil {
			return fmt.Errorf("read %s: %w", key, err)
		}

		name := key
		if prefix != "" {
			name = prefix + "." + key
		}
		if err := flattenValue(row, name, val); err != nil {
			return err
		}
	}
	return nil
}

func column(prefix string) string {
	if prefix == "" {
		return "value"
	}
	return prefix
}
