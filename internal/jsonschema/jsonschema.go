package jsonschema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Schema represents the subset of JSON Schema accepted by LLM structured
// output APIs (Gemini's responseSchema, OpenAI's json_schema). It supports
// objects, arrays, primitives, enums and required-field lists. References and
// recursive definitions are deliberately not supported: Gemini rejects $ref,
// and none of the shapes this module declares are recursive.
type Schema struct {
	// Type specifies the data type (e.g., "object", "array", "string", "number")
	Type        string   `json:"type,omitempty"`
	Description string   `json:"description,omitempty"`
	Required    []string `json:"required,omitempty"`
	// Properties of the object, each with its own schema
	Properties map[string]*Schema `json:"properties,omitempty"`
	// For array types, defines the schema of items in the array
	Items *Schema `json:"items,omitempty"`
	// Enum contains the list of allowed values
	Enum []any `json:"enum,omitempty"`
}

// Generate builds a JSON schema for type T by reflection.
//
// Field handling follows encoding/json conventions: the json tag names the
// property, json:"-" skips the field, unexported fields are ignored. A field
// is listed as required when it is a non-pointer without omitempty, or when
// its jsonschema tag says `required`.
//
// Supported jsonschema tag items (comma separated):
//
//	description=<text>   sets the property description
//	enum=<value>         appends an allowed value (repeatable, typed per field)
//	required             forces the field into the required list
//
// Generate returns an error when it encounters a type it cannot express,
// such as a recursive struct or a channel.
func Generate[T any]() (*Schema, error) {
	t := reflect.TypeFor[T]()
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return generate(t, make(map[reflect.Type]bool))
}

// generate dispatches on kind; seen guards against recursive structs.
func generate(t reflect.Type, seen map[reflect.Type]bool) (*Schema, error) {
	switch t.Kind() {
	case reflect.String:
		return &Schema{Type: "string"}, nil

	case reflect.Bool:
		return &Schema{Type: "boolean"}, nil

	case reflect.Float32, reflect.Float64:
		return &Schema{Type: "number"}, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Schema{Type: "integer"}, nil

	case reflect.Ptr:
		return generate(t.Elem(), seen)

	case reflect.Slice, reflect.Array:
		items, err := generate(t.Elem(), seen)
		if err != nil {
			return nil, err
		}
		return &Schema{Type: "array", Items: items}, nil

	case reflect.Map:
		// Maps become plain objects; structured-output APIs have no good
		// additionalProperties support, so value schemas are not emitted.
		return &Schema{Type: "object"}, nil

	case reflect.Struct:
		return generateStruct(t, seen)

	default:
		return nil, fmt.Errorf("cannot generate schema for %s (kind %s)", t, t.Kind())
	}
}

func generateStruct(t reflect.Type, seen map[reflect.Type]bool) (*Schema, error) {
	if seen[t] {
		return nil, fmt.Errorf("recursive type %s is not supported", t)
	}
	seen[t] = true
	defer delete(seen, t)

	schema := &Schema{
		Type:       "object",
		Properties: map[string]*Schema{},
	}
	var required []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		if jsonTag == "-" {
			continue
		}

		fieldName := field.Name
		isOmitEmpty := false
		if jsonTag != "" {
			if commaIdx := strings.Index(jsonTag, ","); commaIdx != -1 {
				if commaIdx > 0 {
					fieldName = jsonTag[:commaIdx]
				}
				isOmitEmpty = strings.Contains(jsonTag[commaIdx:], "omitempty")
			} else {
				fieldName = jsonTag
			}
		}

		fieldSchema, err := generate(field.Type, seen)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}

		isRequiredByTag, err := applySchemaTag(field.Type, field.Tag, fieldSchema)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}

		schema.Properties[fieldName] = fieldSchema

		if (field.Type.Kind() != reflect.Ptr && !isOmitEmpty) || isRequiredByTag {
			required = append(required, fieldName)
		}
	}

	if len(required) > 0 {
		schema.Required = required
	}
	return schema, nil
}

// applySchemaTag parses the jsonschema struct tag and applies it to schema.
// Returns whether the tag marks the field required.
func applySchemaTag(fieldType reflect.Type, tag reflect.StructTag, schema *Schema) (bool, error) {
	schemaTag := tag.Get("jsonschema")
	if schemaTag == "" {
		return false, nil
	}

	for fieldType.Kind() == reflect.Ptr {
		fieldType = fieldType.Elem()
	}

	isRequired := false
	for _, item := range strings.Split(schemaTag, ",") {
		key, value, hasValue := strings.Cut(item, "=")
		switch {
		case key == "required" && !hasValue:
			isRequired = true

		case key == "description" && hasValue:
			schema.Description = value

		case key == "enum" && hasValue:
			enumValue, err := parseEnumValue(fieldType, value)
			if err != nil {
				return false, err
			}
			schema.Enum = append(schema.Enum, enumValue)
		}
	}

	return isRequired, nil
}

// parseEnumValue converts the tag literal to the field's underlying type so
// the emitted enum values are typed consistently with the property type.
func parseEnumValue(fieldType reflect.Type, value string) (any, error) {
	switch fieldType.Kind() {
	case reflect.String:
		return value, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse enum value %q as integer: %w", value, err)
		}
		return v, nil
	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("parse enum value %q as float: %w", value, err)
		}
		return v, nil
	case reflect.Bool:
		v, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("parse enum value %q as bool: %w", value, err)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("enum tag unsupported for field type %s", fieldType)
	}
}

// JSONString converts the Schema to its JSON representation. The optional
// indent argument switches to two-space pretty printing.
func (s *Schema) JSONString(indent ...bool) (string, error) {
	var jsonBytes []byte
	var err error

	if len(indent) > 0 && indent[0] {
		jsonBytes, err = json.MarshalIndent(s, "", "  ")
	} else {
		jsonBytes, err = json.Marshal(s)
	}
	if err != nil {
		return "", fmt.Errorf("failed to marshal schema to JSON: %w", err)
	}
	return string(jsonBytes), nil
}

// String returns the compact JSON representation of the schema, or an error
// message if marshalling fails.
func (s *Schema) String() string {
	jsonStr, err := s.JSONString()
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return jsonStr
}
