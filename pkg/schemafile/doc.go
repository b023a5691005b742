// Package schemafile reads schemas from YAML (or JSON) documents.
//
// A document maps field names to rule lists. Each rule names a sanitizer, a
// validator or both; every other key becomes a rule option:
//
//	name:
//	  - sanitizer: trim
//	  - validator: required
//	    msg: name is required
//	    groups: [create]
//	  - validator: len
//	    min: 2
//	    max: 50
//	items:
//	  - validator: schema
//	    schema:
//	      title:
//	        - validator: required
//
// "message" is accepted as an alias of "msg".
//
// The "schema" option of the nested schema validator is parsed recursively.
// Parsing only builds the schema; names are resolved when the schema is run
// or checked with valida.Schema.Validate.
package schemafile
