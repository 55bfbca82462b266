package dart

import (
	"fmt"
	"strings"

	"github.com/genui-tools/genui/internal/catalog"
	"github.com/genui-tools/genui/internal/codegen/writer"
)

// builderParams are the named parameters the GenUI SDK passes to every
// widgetBuilder callback, in declaration order.
var builderParams = []string{
	"data",
	"id",
	"buildChild",
	"dispatchEvent",
	"context",
	"dataContext",
}

// Generator generates Flutter GenUI CatalogItem source from a request
type Generator struct{}

// NewGenerator creates a new Dart code generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Language returns the name of the target language
func (g *Generator) Language() string {
	return "dart"
}

// FileExtension returns the file extension for generated files
func (g *Generator) FileExtension() string {
	return ".dart"
}

// Generate renders the complete CatalogItem file: imports, the schema
// declaration, and the CatalogItem with property extraction and widget
// content. Properties render in input order, then events in input order.
// No semantic validation happens here; the output is scaffolding meant
// for manual editing.
func (g *Generator) Generate(req *catalog.Request) ([]byte, error) {
	snakeName := catalog.ToSnakeCase(req.Name)
	pascalName := catalog.ToPascalCase(snakeName)

	w := writer.New("  ")

	w.Line("import 'package:flutter/material.dart';")
	w.Line("import 'package:genui/genui.dart';")
	w.Line("import 'package:json_schema_builder/json_schema_builder.dart';")
	w.Blank()

	w.Linef("/// Schema for %s", pascalName)
	w.Writef("final _%sSchema = ", snakeName)
	g.writeSchema(w, req)
	w.Line(";")
	w.Blank()

	w.Linef("/// %s CatalogItem for GenUI", pascalName)
	w.Linef("final %s = CatalogItem(", snakeName)
	w.Indent()
	w.Linef("name: '%s',", pascalName)
	w.Linef("dataSchema: _%sSchema,", snakeName)
	w.Line("widgetBuilder: ({")
	w.Indent()
	for _, param := range builderParams {
		w.Linef("required %s,", param)
	}
	w.Dedent()
	w.Line("}) {")
	w.Indent()
	w.Line("final json = data as Map<String, Object?>;")
	w.Blank()

	w.Line("// Extract properties")
	for _, prop := range req.Properties {
		w.Line(extraction(prop))
	}
	w.Blank()

	g.writeWidgetContent(w, req)
	w.Dedent()
	w.Line("},")
	w.Dedent()
	w.Line(");")

	return w.Bytes(), nil
}

// writeSchema emits the S.object(...) schema expression, without a
// trailing newline so the caller can terminate the declaration.
func (g *Generator) writeSchema(w *writer.Writer, req *catalog.Request) {
	if len(req.Properties) == 0 {
		w.Write("S.object(properties: {})")
		return
	}

	w.Line("S.object(")
	w.Indent()
	w.Line("properties: {")
	w.Indent()
	for _, prop := range req.Properties {
		w.Linef("'%s': %s(description: '%s'),", prop.Name, schemaConstructor(prop.Type), prop.Description)
	}
	w.Dedent()
	w.Line("},")

	quoted := make([]string, 0, len(req.Required))
	for _, name := range req.Required {
		quoted = append(quoted, "'"+name+"'")
	}
	w.Linef("required: [%s],", strings.Join(quoted, ", "))
	w.Dedent()
	w.Write(")")
}

// writeWidgetContent emits the Card body: one fragment per property by
// canonical type, the child-composition placeholder when requested, then
// one event trigger per declared event.
func (g *Generator) writeWidgetContent(w *writer.Writer, req *catalog.Request) {
	w.Line("return Card(")
	w.Indent()
	w.Line("child: Padding(")
	w.Indent()
	w.Line("padding: const EdgeInsets.all(16),")
	w.Line("child: Column(")
	w.Indent()
	w.Line("crossAxisAlignment: CrossAxisAlignment.start,")
	w.Line("children: [")
	w.Indent()

	for _, prop := range req.Properties {
		switch prop.Type {
		case catalog.TypeString:
			if prop.Optional {
				w.Linef("if (%s != null)", prop.Name)
				w.Indent()
				w.Linef("Text(%s!, style: Theme.of(context).textTheme.bodyLarge),", prop.Name)
				w.Dedent()
			} else {
				w.Linef("Text(%s, style: Theme.of(context).textTheme.bodyLarge),", prop.Name)
			}
		case catalog.TypeNumber, catalog.TypeInteger:
			w.Linef("Text('%s: $%s'),", prop.Name, prop.Name)
		case catalog.TypeBoolean:
			w.Linef("if (%s) const Icon(Icons.check_circle, color: Colors.green),", prop.Name)
		}
	}

	if req.Children {
		w.Line("// Build child widgets")
		w.Line("// buildChild(childData),")
	}

	for _, event := range req.Events {
		label := catalog.TitleWords(strings.ReplaceAll(event, "_", " "))
		w.Line("const SizedBox(height: 8),")
		w.Line("ElevatedButton(")
		w.Indent()
		w.Line("onPressed: () => dispatchEvent(GenUiEvent(")
		w.Indent()
		w.Linef("type: '%s',", event)
		w.Line("payload: {},")
		w.Dedent()
		w.Line(")),")
		w.Linef("child: const Text('%s'),", label)
		w.Dedent()
		w.Line("),")
	}

	w.Dedent()
	w.Line("],")
	w.Dedent()
	w.Line("),")
	w.Dedent()
	w.Line("),")
	w.Dedent()
	w.Line(");")
}

// extraction returns the Dart statement pulling one property out of the
// json map. Optional properties extract as nullable; required ones fall
// back to a kind-appropriate default.
func extraction(prop catalog.Property) string {
	dartType, fallback := dartTypeAndDefault(prop.Type)

	if prop.Optional {
		return fmt.Sprintf("final %s = json['%s'] as %s?;", prop.Name, prop.Name, dartType)
	}
	return fmt.Sprintf("final %s = json['%s'] as %s? ?? %s;", prop.Name, prop.Name, dartType, fallback)
}

// schemaConstructor maps a canonical kind to its json_schema_builder call.
func schemaConstructor(t catalog.PropertyType) string {
	switch t {
	case catalog.TypeNumber:
		return "S.number"
	case catalog.TypeInteger:
		return "S.integer"
	case catalog.TypeBoolean:
		return "S.boolean"
	default:
		return "S.string"
	}
}

// dartTypeAndDefault maps a canonical kind to the Dart cast type and the
// fallback used for required properties.
func dartTypeAndDefault(t catalog.PropertyType) (string, string) {
	switch t {
	case catalog.TypeNumber:
		return "num", "0"
	case catalog.TypeInteger:
		return "int", "0"
	case catalog.TypeBoolean:
		return "bool", "false"
	default:
		return "String", "''"
	}
}
