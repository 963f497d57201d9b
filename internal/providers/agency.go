package providers

import "resource-mapper/internal/mapping"

// Agency maps one row of the agency CSV export, already parsed into a
// column name to cell value object. Columns without a dedicated mapping are
// kept as extra/{column} strings.
func Agency() mapping.Tree {
	pipe := func(fns ...mapping.TransformFunc) mapping.Option {
		return mapping.WithValue(mapping.Pipe(mapping.CurrentValue, fns...))
	}

	trimmed := pipe(mapping.Builtin("trim"), mapping.Builtin("nonEmpty"))

	return mapping.Tree{
		mapping.Map("Agency ID", mapping.ResourceFieldMapping(mapping.FieldID, trimmed)),
		mapping.Map("Agency Name",
			mapping.ResourceFieldMapping(mapping.FieldName, trimmed),
			mapping.TranslatableAttributeMapping("name/en", trimmed, mapping.WithLanguageTemplate("en")),
		),
		mapping.Map("Last Modified", mapping.ResourceFieldMapping(mapping.FieldLastUpdated,
			pipe(mapping.Builtin("isoDate")))),
		mapping.Map("Description", mapping.TranslatableAttributeMapping("description/en", trimmed,
			mapping.WithLanguageTemplate("en"))),
		mapping.Map("Phone", mapping.AttributeMapping(mapping.StringAttributes, "phone", trimmed)),
		mapping.Map("Website", mapping.AttributeMapping(mapping.StringAttributes, "website",
			pipe(mapping.Builtin("trim"), mapping.Builtin("lower"), mapping.Builtin("nonEmpty")))),
		mapping.Map("Accepts Walk-ins", mapping.AttributeMapping(mapping.BooleanAttributes, "acceptsWalkIns",
			pipe(mapping.Builtin("toBoolean")))),
		mapping.Map("Capacity", mapping.AttributeMapping(mapping.NumberAttributes, "capacity",
			pipe(mapping.Builtin("toNumber")))),
		mapping.Map("Opened", mapping.AttributeMapping(mapping.DateTimeAttributes, "opened",
			pipe(mapping.Builtin("nonEmpty")))),
		mapping.Map("Province", mapping.ReferenceAttributeMapping("province", "country/region",
			pipe(regionCode))),
		mapping.Map("Language", mapping.ReferenceAttributeMapping("language", "languages",
			pipe(languageCode))),
		mapping.Map("{column}", mapping.AttributeMapping(mapping.StringAttributes, "extra/{column}",
			pipe(mapping.Builtin("nonEmpty")))),
	}
}
