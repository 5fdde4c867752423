package swagger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/getkin/kin-openapi/openapi3"
)

// Report is the outcome of validating a serialized document. Errors block
// the document; warnings are logged and returned as diagnostics.
type Report struct {
	Errors   []string
	Warnings []string
}

// Validator checks a serialized Swagger 2.0 document against the schema.
// An error means validation itself could not run.
type Validator interface {
	Validate(ctx context.Context, document []byte) (*Report, error)
}

// ValidatorFunc adapts a function to the Validator interface.
type ValidatorFunc func(ctx context.Context, document []byte) (*Report, error)

// Validate calls f.
func (f ValidatorFunc) Validate(ctx context.Context, document []byte) (*Report, error) {
	return f(ctx, document)
}

// ValidationError is returned when the assembled document fails schema
// validation. No document is produced in that case.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "swagger: invalid document: " + strings.Join(e.Errors, "; ")
}

// KinValidator validates documents with kin-openapi. The document is
// converted to OpenAPI 3 and validated there.
//
// Type tags outside the JSON schema vocabulary ("dateTime", "float") and
// array item references to bare type tags cannot be expressed in
// OpenAPI 3; findings about them are reported as warnings.
type KinValidator struct{}

// Validate implements Validator.
func (KinValidator) Validate(ctx context.Context, document []byte) (report *Report, err error) {
	defer func() {
		if rv := recover(); rv != nil {
			report, err = nil, fmt.Errorf("kin-openapi: %v", rv)
		}
	}()

	var v2 openapi2.T
	if err := json.Unmarshal(document, &v2); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}

	report = &Report{Warnings: inlineItemTypes(&v2)}

	v3, err := openapi2conv.ToV3(&v2)
	if err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("convert v2 to v3: %v", err))
		return report, nil
	}

	if err := openapi3.NewLoader().ResolveRefsIn(v3, nil); err != nil {
		report.Warnings = append(report.Warnings, fmt.Sprintf("resolve refs: %v", err))
	}

	for _, verr := range flattenErrors(v3.Validate(ctx)) {
		if downgradable(verr) {
			report.Warnings = append(report.Warnings, verr.Error())
			continue
		}
		report.Errors = append(report.Errors, verr.Error())
	}

	return report, nil
}

// inlineItemTypes replaces array items that reference a bare type tag, such
// as {"$ref": "integer"}, with an equivalent inline schema. The conversion
// to OpenAPI 3 resolves every $ref and fails on anything that is not a
// document pointer. Model names point at the converted components. One
// warning is returned per rewritten parameter.
func inlineItemTypes(doc *openapi2.T) []string {
	var warnings []string

	rewrite := func(where string, params openapi2.Parameters) {
		for _, p := range params {
			if p == nil || p.Items == nil || p.Items.Ref == "" || strings.HasPrefix(p.Items.Ref, "#") {
				continue
			}
			ref := p.Items.Ref
			p.Items = itemSchema(doc, ref)
			warnings = append(warnings, fmt.Sprintf("%s: items of parameter %q reference type %q, validated as an inline schema", where, p.Name, ref))
		}
	}

	for _, path := range slices.Sorted(maps.Keys(doc.Paths)) {
		item := doc.Paths[path]
		if item == nil {
			continue
		}
		rewrite(path, item.Parameters)

		ops := item.Operations()
		for _, method := range slices.Sorted(maps.Keys(ops)) {
			rewrite(method+" "+path, ops[method].Parameters)
		}
	}

	return warnings
}

func itemSchema(doc *openapi2.T, tag string) *openapi3.SchemaRef {
	switch tag {
	case TypeDateTime:
		return &openapi3.SchemaRef{Value: &openapi3.Schema{Type: "string", Format: "date-time"}}
	case TypeFloat:
		return &openapi3.SchemaRef{Value: &openapi3.Schema{Type: "number", Format: "float"}}
	case TypeString, TypeInteger, TypeBoolean, TypeObject, "number":
		return &openapi3.SchemaRef{Value: &openapi3.Schema{Type: tag}}
	}

	if _, ok := doc.Definitions[tag]; ok {
		return &openapi3.SchemaRef{Ref: "#/components/schemas/" + tag}
	}
	return &openapi3.SchemaRef{Value: &openapi3.Schema{}}
}

func flattenErrors(err error) []error {
	if err == nil {
		return nil
	}

	var me openapi3.MultiError
	if errors.As(err, &me) {
		var out []error
		for _, e := range me {
			out = append(out, flattenErrors(e)...)
		}
		return out
	}

	return []error{err}
}

// downgradable reports findings that stem from the legacy type tags rather
// than from a broken document.
func downgradable(err error) bool {
	s := strings.ToLower(err.Error())
	for _, marker := range []string{
		"unresolved ref",
		`unsupported 'type' value "datetime"`,
		`unsupported 'type' value "float"`,
		"schema 'items' must be non-null",
	} {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}
