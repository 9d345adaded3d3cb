package compiler

import (
	"github.com/aretw0/quickstart/pkg/domain"
	"github.com/aretw0/quickstart/pkg/schema"
)

var questionTypes = schema.Enum(
	string(domain.QuestionBanner),
	string(domain.QuestionString),
	string(domain.QuestionSelectSingle),
	string(domain.QuestionSelectMulti),
)

var bannerSchema = schema.Schema{
	"type":        schema.Required(questionTypes),
	"description": schema.Required(schema.String()),
	"if":          schema.Optional(schema.String()),
}

var stringSchema = bannerSchema.Extend(schema.Schema{
	"mandatory":          schema.Optional(schema.Bool()),
	"final":              schema.Optional(schema.Bool()),
	"pathOverride":       schema.Optional(schema.String()),
	"default":            schema.Optional(schema.Scalar()),
	"defaultEval":        schema.Optional(schema.Bool()),
	"defaultDescription": schema.Optional(schema.String()),
})

var selectSchema = stringSchema.Extend(schema.Schema{
	"options":              schema.Required(schema.OneOf(schema.String(), schema.Map(schema.Scalar()))),
	"optionsConfiguration": schema.Optional(schema.Map(schema.Map(schema.Any()))),
})

var singleOptionSchema = schema.Schema{
	"if":         schema.Optional(schema.String()),
	"default_if": schema.Optional(schema.String()),
	"set":        schema.Optional(schema.Map(schema.Any())),
}

var multiOptionSchema = schema.Schema{
	"if":  schema.Optional(schema.String()),
	"set": schema.Optional(schema.Map(schema.Any())),
}

// schemaFor returns the attribute schema of a question kind.
func schemaFor(t domain.QuestionType) schema.Schema {
	switch t {
	case domain.QuestionBanner:
		return bannerSchema
	case domain.QuestionString:
		return stringSchema
	default:
		return selectSchema
	}
}

func optionSchemaFor(t domain.QuestionType) schema.Schema {
	if t == domain.QuestionSelectSingle {
		return singleOptionSchema
	}
	return multiOptionSchema
}
