package llm

import (
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Response documents are validated against these schemas before decoding.
// A draft that decodes but misses required fields would otherwise surface
// as a half-empty resume instead of a clean generation failure.

const skillsSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["hard_skills", "soft_skills"],
  "properties": {
    "hard_skills": {
      "type": "array",
      "items": {"type": "string"}
    },
    "soft_skills": {
      "type": "array",
      "items": {"type": "string"}
    }
  }
}`

const draftResumeSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["summary", "experiences"],
  "properties": {
    "name": {"type": "string"},
    "title": {"type": "string"},
    "email": {"type": "string"},
    "phone": {"type": "string"},
    "location": {"type": "string"},
    "linkedin": {"type": ["string", "null"]},
    "summary": {"type": "string", "minLength": 1},
    "experiences": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["company_info", "job_title", "bullet_points"],
        "properties": {
          "company_info": {
            "type": "object",
            "required": ["name", "period", "location"],
            "properties": {
              "name": {"type": "string"},
              "period": {"type": "string"},
              "location": {"type": "string"}
            }
          },
          "job_title": {"type": "string", "minLength": 1},
          "bullet_points": {
            "type": "array",
            "minItems": 1,
            "items": {
              "type": "object",
              "required": ["bullet_point"],
              "properties": {
                "bullet_point": {"type": "string", "minLength": 1}
              }
            }
          }
        }
      }
    },
    "skills": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["category", "skill_list"],
        "properties": {
          "category": {"type": "string"},
          "skill_list": {"type": "string"}
        }
      }
    }
  }
}`

// validateDocument checks a raw JSON document against a schema and returns
// a GenerationError listing every violation.
func validateDocument(phase, schema, document string) (err error) {
	schemaLoader := gojsonschema.NewStringLoader(schema)
	documentLoader := gojsonschema.NewStringLoader(document)

	result, verr := gojsonschema.Validate(schemaLoader, documentLoader)
	if verr != nil {
		err = &GenerationError{Phase: phase, Message: verr.Error()}
		return err
	}

	if !result.Valid() {
		var details []string
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		err = &GenerationError{Phase: phase, Message: "response failed schema validation: " + strings.Join(details, "; ")}
		return err
	}

	return err
}
