package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"jobmatcher/career-analyzer/internal/models"
)

var (
	openingFence = regexp.MustCompile("(?i)^\\s*```(?:json)?")
	closingFence = regexp.MustCompile("```\\s*$")
)

// StripCodeFences removes a leading ``` or ```json fence and a trailing ```
// fence from a model reply. Only fences anchored at the start and end of
// the text are touched.
func StripCodeFences(text string) string {
	cleaned := openingFence.ReplaceAllString(text, "")
	cleaned = closingFence.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(cleaned)
}

// parseReplyObject decodes the cleaned reply as a JSON object. Numbers are
// kept as json.Number so percentages keep their exact text.
func parseReplyObject(cleaned string) (map[string]any, error) {
	dec := json.NewDecoder(strings.NewReader(cleaned))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty reply")
		}
		return nil, err
	}
	// Decode stops after the first value; only whitespace may follow it.
	var extra any
	if err := dec.Decode(&extra); err != io.EOF {
		return nil, errors.New("unexpected data after top-level JSON value")
	}

	obj, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected a JSON object, got %s", jsonTypeName(value))
	}
	return obj, nil
}

type fieldCoercer func(result *models.AnalysisResult, value any) bool

// analysisFieldCoercers maps each schema key to the function that writes an
// upstream value into the result. A false return keeps the default.
var analysisFieldCoercers = map[string]fieldCoercer{
	models.FieldCurrentSkills: func(r *models.AnalysisResult, v any) bool {
		return setStringList(&r.CurrentSkills, v)
	},
	models.FieldMissingSkills: func(r *models.AnalysisResult, v any) bool {
		return setStringList(&r.MissingSkills, v)
	},
	models.FieldRecommendedCertifications: func(r *models.AnalysisResult, v any) bool {
		return setStringList(&r.RecommendedCertifications, v)
	},
	models.FieldEffortLevel: func(r *models.AnalysisResult, v any) bool {
		return setText(&r.EffortLevel, v)
	},
	models.FieldSummaryAdvice: func(r *models.AnalysisResult, v any) bool {
		return setText(&r.SummaryAdvice, v)
	},
	models.FieldJobRolesYouCanApplyFor: func(r *models.AnalysisResult, v any) bool {
		return setStringList(&r.JobRolesYouCanApplyFor, v)
	},
	models.FieldJobRolesYouDesire: func(r *models.AnalysisResult, v any) bool {
		return setStringList(&r.JobRolesYouDesire, v)
	},
	models.FieldPercentageMatch: func(r *models.AnalysisResult, v any) bool {
		return setNumber(&r.PercentageMatch, v)
	},
	models.FieldCVStrongPoints: func(r *models.AnalysisResult, v any) bool {
		return setStringList(&r.CVStrongPoints, v)
	},
	models.FieldCVWeakPoints: func(r *models.AnalysisResult, v any) bool {
		return setStringList(&r.CVWeakPoints, v)
	},
	models.FieldCVImprovementSuggestions: func(r *models.AnalysisResult, v any) bool {
		return setStringList(&r.CVImprovementSuggestions, v)
	},
	models.FieldMarketTrendAdvice: func(r *models.AnalysisResult, v any) bool {
		return setText(&r.MarketTrendAdvice, v)
	},
	models.FieldRecommendedCourses: func(r *models.AnalysisResult, v any) bool {
		return setCourses(&r.RecommendedCourses, v)
	},
}

// CoerceAnalysisResult builds an AnalysisResult from any decoded JSON
// object. Every schema key takes the upstream value when it can be read,
// otherwise its default; keys outside the schema are ignored. The returned
// list names the keys that fell back to a default although present.
func CoerceAnalysisResult(obj map[string]any) (models.AnalysisResult, []string) {
	result := models.DefaultAnalysisResult()
	var rejected []string

	for _, key := range models.AnalysisFields {
		value, ok := obj[key]
		if !ok || value == nil {
			continue
		}
		if !analysisFieldCoercers[key](&result, value) {
			rejected = append(rejected, key)
		}
	}

	return result, rejected
}

func setStringList(dst *[]string, v any) bool {
	switch val := v.(type) {
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := scalarText(item)
			if !ok {
				return false
			}
			out = append(out, s)
		}
		*dst = out
		return true
	case string:
		if strings.TrimSpace(val) == "" {
			*dst = []string{}
			return true
		}
		*dst = []string{val}
		return true
	}
	return false
}

func setText(dst *string, v any) bool {
	s, ok := scalarText(v)
	if !ok {
		return false
	}
	*dst = s
	return true
}

func setNumber(dst *float64, v any) bool {
	switch val := v.(type) {
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return false
		}
		*dst = f
		return true
	case float64:
		*dst = val
		return true
	case string:
		s := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(val), "%"))
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return false
		}
		*dst = f
		return true
	}
	return false
}

func setCourses(dst *[]models.CourseRecommendation, v any) bool {
	items, ok := v.([]any)
	if !ok {
		return false
	}

	out := make([]models.CourseRecommendation, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return false
		}
		rec := models.CourseRecommendation{Courses: []string{}}
		if skill, present := obj["missing_skill"]; present && skill != nil {
			if !setText(&rec.MissingSkill, skill) {
				return false
			}
		}
		if courses, present := obj["courses"]; present && courses != nil {
			if !setStringList(&rec.Courses, courses) {
				return false
			}
		}
		out = append(out, rec)
	}

	*dst = out
	return true
}

// scalarText renders strings, numbers and booleans as text.
func scalarText(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case json.Number:
		return val.String(), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(val), true
	}
	return "", false
}

func jsonTypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "array"
	case string:
		return "string"
	case json.Number, float64:
		return "number"
	case bool:
		return "boolean"
	}
	return fmt.Sprintf("%T", v)
}
