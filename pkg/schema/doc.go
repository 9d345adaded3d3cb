// Package schema validates loosely typed attribute maps, such as the
// attributes of a question decoded from a YAML catalog.
//
// A Schema maps attribute names to fields. Required fields must be present;
// attributes the schema does not name are rejected. All failures of one map
// are collected into an AggregateError:
//
//	s := schema.Schema{
//	    "description": schema.Required(schema.String()),
//	    "mandatory":   schema.Optional(schema.Bool()),
//	    "options":     schema.Optional(schema.OneOf(schema.String(), schema.Map(schema.Any()))),
//	}
//
//	if err := s.Validate(attrs); err != nil {
//	    for _, e := range schema.ValidationErrors(err) {
//	        log.Println(e)
//	    }
//	}
package schema
