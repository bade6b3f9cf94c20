package output

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/chiliososada/skills-extractor/pkg/skillsheet/models"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed record.schema.json
var recordSchema []byte

// Schema returns the JSON schema of a serialized ResumeRecord.
func Schema() []byte {
	return recordSchema
}

// ValidationError lists the schema violations of a record.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single violation at a field path.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("record validation failed:")
	for _, err := range ve.Errors {
		fmt.Fprintf(&sb, " %s: %s;", err.Field, err.Message)
	}
	return strings.TrimSuffix(sb.String(), ";")
}

// Validate checks a record against the record schema: absent fields are
// null, present scalars are non-blank and present lists are non-empty.
func Validate(rec *models.ResumeRecord) error {
	data, err := ToJSON(rec, false)
	if err != nil {
		return err
	}
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(recordSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("load record schema: %w", err)
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		ve.Errors = append(ve.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return ve
}
