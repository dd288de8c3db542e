package scene

import "github.com/invopop/jsonschema"

// JSONSchema describes the scene file format. Field names follow the YAML tags.
func JSONSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{FieldNameTag: "yaml"}
	s := r.Reflect(&Scene{})
	s.Title = "goxviz scene"
	return s
}
