// Package output renders API results for the terminal or as JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/muesli/reflow/wordwrap"
	"github.com/nasaimg/nasaimg/nasa"
)

// Envelope wraps the result of one operation for JSON output.
type Envelope struct {
	// Operation is one of search, asset, metadata, captions, album.
	Operation string `json:"operation"`
	// Query holds the parameters the operation was called with.
	Query map[string]string `json:"query,omitempty"`
	// Count is the number of entries in Result, or 1 for a location.
	Count int `json:"count"`
	// Result is a list of media items, a list of manifest entries or a location URL.
	Result any `json:"result" jsonschema:"oneof_type=array;string"`
}

// WriteJSON encodes env to w, indented.
func WriteJSON(w io.Writer, env *Envelope) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(env)
}

// Schema reflects the JSON schema of Envelope.
func Schema() *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.Namer = func(t reflect.Type) string {
		return "nasaimg." + t.Name()
	}
	return reflector.Reflect(&Envelope{})
}

// Manifest prints one file link per line.
func Manifest(w io.Writer, entries []nasa.ManifestEntry) error {
	for _, entry := range entries {
		if _, err := fmt.Fprintln(w, entry["href"]); err != nil {
			return err
		}
	}
	return nil
}

// Details prints every item with its description wrapped at width. A width
// of 0 disables wrapping.
func Details(w io.Writer, items []nasa.MediaItem, width int) error {
	for i, item := range items {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		description := stringField(item, "description")
		if width > 0 {
			description = wordwrap.String(description, width)
		}

		_, err := fmt.Fprintf(w, "%s  %s\n%s\n%s\n",
			item.NasaID(),
			item.Title(),
			item.Href(),
			strings.TrimSpace(description),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// stringField returns item[field] when it is a string, and joins it when it
// is a list such as keywords.
func stringField(item nasa.MediaItem, field string) string {
	switch v := item[field].(type) {
	case string:
		return v
	case []any:
		parts := make([]string, 0, len(v))
		for _, p := range v {
			parts = append(parts, fmt.Sprint(p))
		}
		return strings.Join(parts, ", ")
	default:
		return ""
	}
}
