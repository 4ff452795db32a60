package catalog

import (
	"encoding/json"
	"fmt"
)

// ScriptVariable is the global the gallery page reads its database from.
const ScriptVariable = "photosDatabase"

func EncodeJSON(cat *Catalog) ([]byte, error) {
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(cat, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode catalog: %w", err)
	}
	return append(data, '\n'), nil
}

// EncodeScript renders the catalog as the JavaScript file a static gallery
// page includes: "var photosDatabase = {...};".
func EncodeScript(cat *Catalog) ([]byte, error) {
	data, err := EncodeJSON(cat)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(data)+32)
	out = append(out, "var "+ScriptVariable+" = "...)
	out = append(out, data[:len(data)-1]...)
	out = append(out, ";\n"...)
	return out, nil
}
