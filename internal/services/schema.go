package services

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

const analysisSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": [
    "current_skills", "missing_skills", "recommended_certifications", "effort_level",
    "summary_advice", "job_roles_you_can_apply_for", "job_roles_you_desire", "percentage_match",
    "cv_strong_points", "cv_weak_points", "cv_improvement_suggestions", "market_trend_advice",
    "recommended_courses"
  ],
  "definitions": {
    "stringList": { "type": "array", "items": { "type": "string" } }
  },
  "properties": {
    "current_skills": { "$ref": "#/definitions/stringList" },
    "missing_skills": { "$ref": "#/definitions/stringList" },
    "recommended_certifications": { "$ref": "#/definitions/stringList" },
    "effort_level": { "type": "string" },
    "summary_advice": { "type": "string" },
    "job_roles_you_can_apply_for": { "$ref": "#/definitions/stringList" },
    "job_roles_you_desire": { "$ref": "#/definitions/stringList" },
    "percentage_match": { "type": "number", "minimum": 0, "maximum": 100 },
    "cv_strong_points": { "$ref": "#/definitions/stringList" },
    "cv_weak_points": { "$ref": "#/definitions/stringList" },
    "cv_improvement_suggestions": { "$ref": "#/definitions/stringList" },
    "market_trend_advice": { "type": "string" },
    "recommended_courses": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["missing_skill", "courses"],
        "properties": {
          "missing_skill": { "type": "string" },
          "courses": { "$ref": "#/definitions/stringList" }
        }
      }
    }
  }
}`

var analysisSchema = mustLoadSchema(analysisSchemaJSON)

func mustLoadSchema(src string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("invalid analysis schema: %v", err))
	}
	return schema
}

// CheckAnalysisShape compares a decoded model reply against the analysis
// schema and returns one line per violation. It is diagnostic only; the
// reply is coerced regardless of the outcome.
func CheckAnalysisShape(obj map[string]any) []string {
	result, err := analysisSchema.Validate(gojsonschema.NewGoLoader(obj))
	if err != nil {
		return []string{fmt.Sprintf("schema check failed: %v", err)}
	}
	if result.Valid() {
		return nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		violations = append(violations, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}
	return violations
}
