package store

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/gmuffiness/agentfloor/world"
)

//go:embed org_schema.json
var orgSchemaJSON string

var orgSchema = jsonschema.MustCompileString("org_schema.json", orgSchemaJSON)

// ImportJSON validates and decodes an organization document. Structural
// errors (missing ids, wrong types, unknown statuses) are rejected here;
// geometric problems like undersized layouts are left to the world builder,
// which clamps instead of failing.
func ImportJSON(data []byte) (*world.Organization, error) {
	var raw any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("store: parse organization: %w", err)
	}
	if err := orgSchema.Validate(raw); err != nil {
		return nil, fmt.Errorf("store: invalid organization: %w", err)
	}

	var org world.Organization
	if err := json.Unmarshal(data, &org); err != nil {
		return nil, fmt.Errorf("store: decode organization: %w", err)
	}
	return &org, nil
}
