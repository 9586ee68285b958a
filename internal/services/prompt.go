package services

import (
	"fmt"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildProfileAnalysisPrompt creates the career readiness prompt. The
// profile is embedded verbatim between triple quotes.
func (pb *PromptBuilder) BuildProfileAnalysisPrompt(profileText string) string {
	return fmt.Sprintf(`You are an expert career analyst and job readiness evaluator. Based on the latest job market trends, analyze the following user profile to identify skills, gaps, and career recommendations.

"""%s"""

Return a valid JSON object with the following fields:
1. "current_skills": list of skills the candidate already has
2. "missing_skills": list of skills the candidate needs for the desired roles
3. "recommended_certifications": list of certifications worth pursuing
4. "effort_level": short text estimating the effort needed to close the gaps (e.g. "Low", "Medium", "High")
5. "summary_advice": a short paragraph of overall advice
6. "job_roles_you_can_apply_for": list of job titles the candidate qualifies for today
7. "job_roles_you_desire": list of job titles the candidate wants
8. "percentage_match": number from 0 to 100, computed exactly as (number of roles present in both "job_roles_you_can_apply_for" and "job_roles_you_desire") / (number of roles in "job_roles_you_desire") * 100; use 0 when no desired roles are given
9. "cv_strong_points": list of strengths of the CV, empty if no CV text is present
10. "cv_weak_points": list of weaknesses of the CV, empty if no CV text is present
11. "cv_improvement_suggestions": list of concrete CV improvements, empty if no CV text is present
12. "market_trend_advice": a short paragraph on current market trends for the desired roles
13. "recommended_courses" (format: [{"missing_skill": "...", "courses": ["..."]}])
Return only JSON. No markdown, no explanation, no example.`, profileText)
}

// BuildImageTranscriptionPrompt asks the model to act as OCR for an
// uploaded résumé image.
func (pb *PromptBuilder) BuildImageTranscriptionPrompt() string {
	return `Transcribe all readable text in this image exactly as written, preserving line breaks.
Return only the transcribed text. If the image contains no readable text, return an empty response.`
}
