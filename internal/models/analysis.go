package models

// Field names of the analysis schema, in prompt order.
const (
	FieldCurrentSkills             = "current_skills"
	FieldMissingSkills             = "missing_skills"
	FieldRecommendedCertifications = "recommended_certifications"
	FieldEffortLevel               = "effort_level"
	FieldSummaryAdvice             = "summary_advice"
	FieldJobRolesYouCanApplyFor    = "job_roles_you_can_apply_for"
	FieldJobRolesYouDesire         = "job_roles_you_desire"
	FieldPercentageMatch           = "percentage_match"
	FieldCVStrongPoints            = "cv_strong_points"
	FieldCVWeakPoints              = "cv_weak_points"
	FieldCVImprovementSuggestions  = "cv_improvement_suggestions"
	FieldMarketTrendAdvice         = "market_trend_advice"
	FieldRecommendedCourses        = "recommended_courses"
)

const (
	DefaultEffortLevel       = "Not specified"
	DefaultSummaryAdvice     = "No advice provided."
	DefaultMarketTrendAdvice = "No advice available."
)

// AnalysisFields lists the thirteen keys every AnalysisResult carries.
var AnalysisFields = []string{
	FieldCurrentSkills,
	FieldMissingSkills,
	FieldRecommendedCertifications,
	FieldEffortLevel,
	FieldSummaryAdvice,
	FieldJobRolesYouCanApplyFor,
	FieldJobRolesYouDesire,
	FieldPercentageMatch,
	FieldCVStrongPoints,
	FieldCVWeakPoints,
	FieldCVImprovementSuggestions,
	FieldMarketTrendAdvice,
	FieldRecommendedCourses,
}

type CourseRecommendation struct {
	MissingSkill string   `json:"missing_skill"`
	Courses      []string `json:"courses"`
}

// AnalysisResult is the career readiness assessment. Slices are never nil
// once built through DefaultAnalysisResult so they encode as [] rather than null.
type AnalysisResult struct {
	CurrentSkills             []string               `json:"current_skills"`
	MissingSkills             []string               `json:"missing_skills"`
	RecommendedCertifications []string               `json:"recommended_certifications"`
	EffortLevel               string                 `json:"effort_level"`
	SummaryAdvice             string                 `json:"summary_advice"`
	JobRolesYouCanApplyFor    []string               `json:"job_roles_you_can_apply_for"`
	JobRolesYouDesire         []string               `json:"job_roles_you_desire"`
	PercentageMatch           float64                `json:"percentage_match"`
	CVStrongPoints            []string               `json:"cv_strong_points"`
	CVWeakPoints              []string               `json:"cv_weak_points"`
	CVImprovementSuggestions  []string               `json:"cv_improvement_suggestions"`
	MarketTrendAdvice         string                 `json:"market_trend_advice"`
	RecommendedCourses        []CourseRecommendation `json:"recommended_courses"`
}

func DefaultAnalysisResult() AnalysisResult {
	return AnalysisResult{
		CurrentSkills:             []string{},
		MissingSkills:             []string{},
		RecommendedCertifications: []string{},
		EffortLevel:               DefaultEffortLevel,
		SummaryAdvice:             DefaultSummaryAdvice,
		JobRolesYouCanApplyFor:    []string{},
		JobRolesYouDesire:         []string{},
		PercentageMatch:           0,
		CVStrongPoints:            []string{},
		CVWeakPoints:              []string{},
		CVImprovementSuggestions:  []string{},
		MarketTrendAdvice:         DefaultMarketTrendAdvice,
		RecommendedCourses:        []CourseRecommendation{},
	}
}
