package swagger

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"strings"
)

// Document assembles the discovery document from the registry and
// validates it.
//
// With an empty filter every operation declaring a filter tag is hidden;
// otherwise only operations whose tag equals filter are kept. Paths left
// without operations remain in the document as empty objects.
//
// Model definitions are written into Config.Definitions before the
// document takes a copy of that map.
func (d *Docs) Document(ctx context.Context, filter string) (*Document, Diagnostics, error) {
	doc, data, err := d.assemble(filter)
	if err != nil {
		return nil, nil, err
	}

	if d.validator == nil {
		return doc, nil, nil
	}

	report, err := d.validator.Validate(ctx, data)
	if err != nil {
		return nil, nil, fmt.Errorf("swagger: validate document: %w", err)
	}

	var diags Diagnostics
	for _, w := range report.Warnings {
		Goose.Assemble.Logf(1, "document warning: %s", w)
		diags = append(diags, Diagnostic{Field: "document", Message: w})
	}

	if len(report.Errors) > 0 {
		for _, e := range report.Errors {
			Goose.Assemble.Logf(1, "document error: %s", e)
		}
		return nil, diags, &ValidationError{Errors: report.Errors}
	}

	return doc, diags, nil
}

func (d *Docs) assemble(filter string) (*Document, []byte, error) {
	// Definitions is written in place, so assembly is exclusive.
	d.mu.Lock()
	defer d.mu.Unlock()

	paths := make(map[string]PathItem)
	for _, res := range d.registry.Resources() {
		for name, model := range res.Models {
			if model == nil {
				continue
			}
			d.cfg.Definitions[name] = &Definition{Type: TypeObject, Properties: model.Properties}
		}

		for _, api := range res.APIs() {
			item := make(PathItem)
			paths[api.Path] = item

			for _, op := range api.Operations {
				method := strings.ToLower(op.Method)
				item[method] = docOperation(op)
				if !visible(op.Filter, filter) {
					delete(item, method)
				}
			}
		}
	}

	doc := &Document{
		Swagger: "2.0",
		Info: Info{
			Description: d.cfg.Description,
			Version:     d.cfg.Version,
			Title:       d.cfg.Title,
		},
		Host:        d.cfg.Host,
		BasePath:    d.cfg.BasePath,
		Schemes:     d.cfg.Schemes,
		Paths:       paths,
		Definitions: maps.Clone(d.cfg.Definitions),
	}
	if len(d.cfg.SecurityDefinitions) > 0 {
		doc.SecurityDefinitions = d.cfg.SecurityDefinitions
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, nil, fmt.Errorf("swagger: encode document: %w", err)
	}

	return doc, data, nil
}

func visible(opFilter, filter string) bool {
	if filter != "" {
		return opFilter == filter
	}
	return opFilter == ""
}

func docOperation(op *Operation) *DocOperation {
	out := &DocOperation{
		Tags:        op.Tags,
		Summary:     op.Summary,
		Description: op.Description,
		OperationID: op.OperationID,
		Consumes:    op.Consumes,
		Produces:    op.Produces,
		Responses:   op.Responses,
		Security:    op.Security,
	}

	if op.OriginalParameters != nil {
		out.Parameters = make([]any, len(op.OriginalParameters))
		for i, p := range op.OriginalParameters {
			out.Parameters[i] = p
		}
		return out
	}

	out.Parameters = make([]any, len(op.Parameters))
	for i, p := range op.Parameters {
		out.Parameters[i] = &DocParameter{
			Name:            p.Name,
			In:              p.ParamType,
			Description:     p.Description,
			Required:        p.Required,
			Schema:          p.Schema,
			Type:            p.Type,
			Format:          p.Format,
			AllowEmptyValue: p.AllowEmptyValue,
			Items:           p.Items,
		}
	}

	return out
}
