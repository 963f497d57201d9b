package transform

import (
	"fmt"

	"go.uber.org/zap"

	"resource-mapper/internal/diagnostic"
	"resource-mapper/internal/mapping"
	"resource-mapper/internal/resource"
)

// assembler validates generator output and appends rows to the flat resource.
// Bad data is dropped with a diagnostic; it never aborts the walk.
type assembler struct {
	out    *resource.FlatResource
	diags  *diagnostic.Diagnostics
	logger *zap.Logger
}

func (a *assembler) apply(m mapping.ResourceMapping, ctx mapping.FieldMappingContext) {
	value := m.Value(ctx)
	if value == nil {
		return
	}

	if m.Kind == mapping.KindField {
		a.setField(m.Field, value)
		return
	}

	key := m.Key(ctx)

	switch m.Kind {
	case mapping.KindString, mapping.KindTranslatable:
		s, ok := value.(string)
		if !ok {
			a.warn(diagnostic.CodeStringTypeMismatch, "string", key, ctx, value)
			return
		}

		info := a.info(m, ctx, key)

		language := ""
		if m.Kind == mapping.KindTranslatable {
			language = m.Language(ctx)
		}

		a.out.StringAttributes = append(a.out.StringAttributes, resource.StringAttribute{
			Key: key, Value: s, Language: language, Info: info,
		})

	case mapping.KindNumber:
		f, ok := toNumber(value)
		if !ok {
			a.warn(diagnostic.CodeNumberTypeMismatch, "number", key, ctx, value)
			return
		}

		info := a.info(m, ctx, key)

		a.out.NumberAttributes = append(a.out.NumberAttributes, resource.NumberAttribute{
			Key: key, Value: f, Info: info,
		})

	case mapping.KindBoolean:
		b, ok := value.(bool)
		if !ok {
			a.warn(diagnostic.CodeBooleanTypeMismatch, "boolean", key, ctx, value)
			return
		}

		info := a.info(m, ctx, key)

		a.out.BooleanAttributes = append(a.out.BooleanAttributes, resource.BooleanAttribute{
			Key: key, Value: b, Info: info,
		})

	case mapping.KindDateTime:
		instant, ok := toInstant(value)
		if !ok {
			a.warn(diagnostic.CodeInvalidDateTime, "ISO-8601 date-time", key, ctx, value)
			return
		}

		info := a.info(m, ctx, key)

		a.out.DateTimeAttributes = append(a.out.DateTimeAttributes, resource.DateTimeAttribute{
			Key: key, Value: instant, Info: info,
		})

	case mapping.KindReference:
		s, ok := value.(string)
		if !ok {
			a.note(diagnostic.CodeReferenceTypeMismatch, key, ctx, value)
			return
		}

		language := ""
		if m.Language != nil {
			language = m.Language(ctx)
		}

		a.out.ReferenceStringAttributes = append(a.out.ReferenceStringAttributes, resource.ReferenceAttribute{
			Key: key, Value: s, Language: language, List: m.List,
		})
	}
}

func (a *assembler) setField(field mapping.ResourceField, value any) {
	s := scalarString(value)

	switch field {
	case mapping.FieldID:
		a.out.ID = s
	case mapping.FieldName:
		a.out.Name = s
	case mapping.FieldLastUpdated:
		a.out.LastUpdated = s
	case mapping.FieldDeletedAt:
		a.out.DeletedAt = s
	case mapping.FieldImportSequenceID:
		a.out.ImportSequenceID = s
	}
}

// info evaluates the info generator and returns a private copy of the
// object. Anything other than nil or an object is replaced by nil.
func (a *assembler) info(m mapping.ResourceMapping, ctx mapping.FieldMappingContext, key string) map[string]any {
	if m.Info == nil {
		return nil
	}

	switch v := m.Info(ctx).(type) {
	case nil:
		return nil
	case map[string]any:
		return cloneObject(v)
	case map[string]string:
		out := make(map[string]any, len(v))
		for k, s := range v {
			out[k] = s
		}

		return out
	default:
		path := ctx.PathString()

		a.logger.Warn("Attribute info is not an object, storing null",
			zap.String("key", key),
			zap.String("path", path),
			zap.String("type", fmt.Sprintf("%T", v)))
		a.diags.AddWarning(diagnostic.CodeInfoNotObject,
			fmt.Sprintf("info for %q is %T, not an object", key, v), "", path)

		return nil
	}
}

func (a *assembler) warn(code, expected, key string, ctx mapping.FieldMappingContext, value any) {
	path := ctx.PathString()

	a.logger.Warn("Dropping attribute with unexpected value type",
		zap.String("key", key),
		zap.String("path", path),
		zap.String("expected", expected),
		zap.String("type", fmt.Sprintf("%T", value)))
	a.diags.AddWarning(code, fmt.Sprintf("%q: expected %s, got %T", key, expected, value), "", path)
}

func (a *assembler) note(code, key string, ctx mapping.FieldMappingContext, value any) {
	path := ctx.PathString()

	a.logger.Info("Dropping reference attribute with non-string value",
		zap.String("key", key),
		zap.String("path", path),
		zap.String("type", fmt.Sprintf("%T", value)))
	a.diags.AddInfo(code, fmt.Sprintf("%q: expected string reference value, got %T", key, value), "", path)
}

func (a *assembler) depthExceeded(ctx mapping.FieldMappingContext, limit int) {
	path := ctx.PathString()

	a.logger.Warn("Maximum mapping depth exceeded, skipping subtree",
		zap.String("path", path),
		zap.Int("maxDepth", limit))
	a.diags.AddWarning(diagnostic.CodeMaxDepthExceeded, "maximum mapping depth exceeded", "", path)
}
