package validation

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	reflectschema "github.com/invopop/jsonschema"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/mosberg/alchemy/internal/domain"
	"github.com/mosberg/alchemy/internal/schema"
)

// SchemaValidator validates the JSON shape of content documents
type SchemaValidator interface {
	ValidateBytes(kind domain.Kind, path string, data []byte) error
}

type shapeValidator struct {
	schemas map[domain.Kind]*jsonschema.Schema
}

// documentTypes maps each kind to the raw document its schema is reflected from
var documentTypes = map[domain.Kind]reflect.Type{
	domain.KindBeverage:  reflect.TypeOf(schema.BeverageDocument{}),
	domain.KindContainer: reflect.TypeOf(schema.ContainerDocument{}),
	domain.KindEquipment: reflect.TypeOf(schema.EquipmentDocument{}),
}

// nullableLists are array fields where an explicit null reads as an empty list
var nullableLists = map[domain.Kind][]string{
	domain.KindBeverage: {schema.FieldEffects},
}

// NewSchemaValidator compiles the shape schema of every kind up front
func NewSchemaValidator() (SchemaValidator, error) {
	compiler := jsonschema.NewCompiler()
	v := &shapeValidator{schemas: make(map[domain.Kind]*jsonschema.Schema, len(documentTypes))}

	for _, kind := range domain.Kinds {
		raw, err := DocumentSchema(kind)
		if err != nil {
			return nil, err
		}

		var schemaJSON interface{}
		if err := json.Unmarshal(raw, &schemaJSON); err != nil {
			return nil, fmt.Errorf(ErrFmtParseSchemaFailed, kind, err)
		}

		url := schemaURL(kind)
		if err := compiler.AddResource(url, schemaJSON); err != nil {
			return nil, fmt.Errorf(ErrFmtAddSchemaFailed, kind, err)
		}

		compiled, err := compiler.Compile(url)
		if err != nil {
			return nil, fmt.Errorf(ErrFmtCompileSchemaFailed, kind, err)
		}
		v.schemas[kind] = compiled
	}

	return v, nil
}

// DocumentSchema reflects the JSON Schema for a kind's raw document.
// Nothing is required and unknown keys are allowed; presence and ranges are
// checked later with better messages.
func DocumentSchema(kind domain.Kind) ([]byte, error) {
	t, ok := documentTypes[kind]
	if !ok {
		return nil, fmt.Errorf(ErrFmtUnknownKind, kind)
	}

	reflector := reflectschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		AllowAdditionalProperties:  true,
		DoNotReference:             true,
	}
	s := reflector.ReflectFromType(t)
	if s == nil {
		return nil, fmt.Errorf(ErrFmtReflectSchemaFailed, kind)
	}
	s.Version = ""
	for _, field := range nullableLists[kind] {
		allowNull(s, field)
	}
	s.Title = "Alchemy " + kind.String() + " document"
	s.Description = "Content document with type tag " + kind.TypeTag()

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf(ErrFmtReflectSchemaFailed, kind)
	}
	return data, nil
}

// allowNull widens a top-level property so null passes the shape check
func allowNull(s *reflectschema.Schema, field string) {
	if s.Properties == nil {
		return
	}
	prop, ok := s.Properties.Get(field)
	if !ok {
		return
	}
	s.Properties.Set(field, &reflectschema.Schema{
		Description: prop.Description,
		AnyOf:       []*reflectschema.Schema{prop, {Type: "null"}},
	})
}

// ValidateBytes checks data against the kind's schema
func (v *shapeValidator) ValidateBytes(kind domain.Kind, path string, data []byte) error {
	compiled, ok := v.schemas[kind]
	if !ok {
		return shapeError(kind, path, "", fmt.Sprintf(ErrFmtUnknownKind, kind))
	}

	var jsonData interface{}
	if err := json.Unmarshal(data, &jsonData); err != nil {
		return shapeError(kind, path, "", fmt.Sprintf("failed to parse JSON data: %v", err))
	}

	if err := compiled.Validate(jsonData); err != nil {
		field, detail := formatValidationError(err)
		return shapeError(kind, path, field, detail)
	}

	return nil
}

func shapeError(kind domain.Kind, path, field, detail string) error {
	return &domain.DocumentError{
		Path:  path,
		Kind:  kind,
		Field: field,
		Err:   fmt.Errorf("%w: %s", domain.ErrMalformedDocument, detail),
	}
}

func schemaURL(kind domain.Kind) string {
	return "mem://alchemy/" + kind.String() + ".schema.json"
}

// formatValidationError returns the first failing field and a readable summary
func formatValidationError(err error) (string, string) {
	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return "", fmt.Sprintf("validation error: %v", err)
	}

	var leaves []*jsonschema.ValidationError
	collectErrors(validationErr, &leaves)
	if len(leaves) == 0 {
		leaves = append(leaves, validationErr)
	}

	messages := make([]string, 0, len(leaves))
	for _, leaf := range leaves {
		messages = append(messages, formatError(leaf))
	}
	return fieldPath(leaves[0].InstanceLocation), "schema validation failed: " + strings.Join(messages, "; ")
}

// collectErrors recursively collects the leaf validation errors
func collectErrors(err *jsonschema.ValidationError, leaves *[]*jsonschema.ValidationError) {
	if len(err.Causes) == 0 {
		*leaves = append(*leaves, err)
		return
	}
	for _, cause := range err.Causes {
		collectErrors(cause, leaves)
	}
}

// formatError formats a single validation error
func formatError(err *jsonschema.ValidationError) string {
	location := fieldPath(err.InstanceLocation)
	if location == "" {
		location = "(root)"
	}

	keywords := ""
	if err.ErrorKind != nil {
		keywords = strings.Join(err.ErrorKind.KeywordPath(), ".")
	}

	if keywords != "" {
		return fmt.Sprintf("at %s: %s validation failed", location, keywords)
	}
	return fmt.Sprintf("at %s: validation failed", location)
}

// fieldPath turns an instance location into the field notation used in
// document errors, e.g. [effects 1 chance] -> effects[1].chance
func fieldPath(location []string) string {
	var b strings.Builder
	for _, token := range location {
		if _, err := strconv.Atoi(token); err == nil {
			b.WriteString("[" + token + "]")
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(token)
	}
	return b.String()
}
