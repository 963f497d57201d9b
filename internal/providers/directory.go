package providers

import "resource-mapper/internal/mapping"

// Directory maps resources exported from the nested government directory
// API. Names and descriptions are keyed by language; sites are an array.
func Directory() mapping.Tree {
	languageOf := mapping.WithLanguage(mapping.Capture("language"))

	return mapping.Tree{
		mapping.Map("id", mapping.ResourceFieldMapping(mapping.FieldID)),
		mapping.Nest("name", mapping.Tree{
			mapping.Map("{language}", mapping.TranslatableAttributeMapping("name/{language}", languageOf)),
		},
			mapping.ResourceFieldMapping(mapping.FieldName,
				mapping.WithValue(firstOf(mapping.MustParseDataPath("en"), mapping.MustParseDataPath("fr")))),
		),
		mapping.Map("lastUpdated", mapping.ResourceFieldMapping(mapping.FieldLastUpdated,
			mapping.WithValue(mapping.Pipe(mapping.CurrentValue, mapping.Builtin("isoDate"))))),
		mapping.Map("deleted", mapping.ResourceFieldMapping(mapping.FieldDeletedAt,
			mapping.WithValue(deletedAt))),
		mapping.Map("importSequenceId", mapping.ResourceFieldMapping(mapping.FieldImportSequenceID)),
		mapping.Nest("description", mapping.Tree{
			mapping.Map("{language}", mapping.TranslatableAttributeMapping("description/{language}", languageOf)),
		}),
		mapping.Map("isActive", mapping.AttributeMapping(mapping.BooleanAttributes, "isActive")),
		mapping.Map("capacity", mapping.AttributeMapping(mapping.NumberAttributes, "capacity",
			mapping.WithValue(mapping.Pipe(mapping.CurrentValue, mapping.Builtin("toNumber"))))),
		mapping.Nest("eligibility", mapping.Tree{
			mapping.Map("minAge", mapping.AttributeMapping(mapping.NumberAttributes, "eligibility/minAge")),
			mapping.Map("maxAge", mapping.AttributeMapping(mapping.NumberAttributes, "eligibility/maxAge")),
		}),
		mapping.Map("coverage",
			mapping.AttributeMapping(mapping.StringAttributes, "coverage",
				mapping.WithConstInfo(map[string]any{"source": "directory"})),
			mapping.ReferenceAttributeMapping("coverage/region", "country/region",
				mapping.WithValue(mapping.Pipe(mapping.CurrentValue, mapping.Builtin("splitFirst"), regionCode))),
		),
		mapping.Nest("languages", mapping.Tree{
			mapping.Map("{index}", mapping.ReferenceAttributeMapping("languages", "languages",
				mapping.WithValue(mapping.Pipe(mapping.CurrentValue, languageCode)))),
		}),
		mapping.Nest("sites", mapping.Tree{
			mapping.Nest("{site}", mapping.Tree{
				mapping.Map("name", mapping.AttributeMapping(mapping.StringAttributes, "sites/{site}/name")),
				mapping.Map("phone", mapping.AttributeMapping(mapping.StringAttributes, "sites/{site}/phone",
					mapping.WithValue(mapping.Pipe(mapping.CurrentValue, mapping.Builtin("nonEmpty"))))),
				mapping.Map("opened", mapping.AttributeMapping(mapping.DateTimeAttributes, "sites/{site}/opened")),
			},
				mapping.AttributeMapping(mapping.StringAttributes, "sites/{site}/id",
					mapping.WithValue(mapping.ValueAt(mapping.MustParseDataPath("siteId")))),
			),
		}),
	}
}

// deletedAt reports the resource's last update time when it is flagged as
// deleted.
func deletedAt(ctx mapping.FieldMappingContext) any {
	if deleted, _ := ctx.CurrentValue.(bool); !deleted {
		return nil
	}

	return mapping.Builtin("isoDate")(ctx, mapping.ValueAtRoot(mapping.MustParseDataPath("lastUpdated"))(ctx))
}

// firstOf returns the first non-nil value among paths relative to the
// current node.
func firstOf(paths ...mapping.DataPath) mapping.ValueGenerator {
	return func(ctx mapping.FieldMappingContext) any {
		for _, p := range paths {
			if v := p.Lookup(ctx.CurrentValue); v != nil {
				return v
			}
		}

		return nil
	}
}
