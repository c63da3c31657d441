package config

import (
	"encoding/json"
	"reflect"

	"github.com/ethereum/go-ethereum/common"
	"github.com/invopop/jsonschema"
)

const schemaID = "cascadekit-config"

var addressType = reflect.TypeOf(common.Address{})

// GenerateJSONSchema returns the JSON schema of Config, keyed by the names used in the TOML files
func GenerateJSONSchema() ([]byte, error) {
	// every section type is named Config: definitions keyed by type name would collide, so nothing is referenced
	r := &jsonschema.Reflector{
		FieldNameTag:               "mapstructure",
		DoNotReference:             true,
		AllowAdditionalProperties:  true,
		RequiredFromJSONSchemaTags: true,
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			if t == addressType {
				return &jsonschema.Schema{
					Type:        "string",
					Title:       "Address",
					Description: "Hex encoded 20 bytes address",
					Pattern:     "^0x[0-9a-fA-F]{40}$",
				}
			}
			return nil
		},
	}
	schema := r.Reflect(&Config{})
	schema.ID = jsonschema.ID(schemaID)
	schema.Title = "cascadekit config file"
	return json.MarshalIndent(schema, "", "  ")
}
