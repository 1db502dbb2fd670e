package main

import (
	"fmt"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatJSON = "json"
)

var json = jsoniter.ConfigDefault

// renderIDs writes ids in the requested format: text is one identity per
// line, json is an indented array.
func renderIDs(w io.Writer, format string, ids []string) error {
	switch format {
	case formatText:
		for _, id := range ids {
			fmt.Fprintln(w, id)
		}

		return nil
	case formatJSON:
		if ids == nil {
			ids = []string{}
		}
		out, err := json.MarshalIndent(ids, "", strings.Repeat(" ", 2))
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(out))

		return nil
	default:
		return fmt.Errorf("unsupported format %q: want %q or %q", format, formatText, formatJSON)
	}
}
