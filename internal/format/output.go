package format

import (
	"encoding/json"
	"io"
)

// WriteJSON emits v to w as one JSON document followed by a newline.
// Commands never print free-form text on stdout; anything beyond the data
// itself belongs in a `meta` object on the payload.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
