package services

import "strings"

const desiredJobsLabel = "Desired Jobs: "

// NormalizeProfile merges the free-text fields and the extracted document
// text into a single profile. usedCV reports whether the document
// contributed any text. An empty profile is an InvalidInput error.
func NormalizeProfile(skills, desiredJobs, documentText string) (profile string, usedCV bool, err error) {
	skills = strings.TrimSpace(skills)
	desiredJobs = strings.TrimSpace(desiredJobs)
	documentText = strings.TrimSpace(documentText)

	parts := make([]string, 0, 3)
	if skills != "" {
		parts = append(parts, skills)
	}
	if desiredJobs != "" {
		parts = append(parts, desiredJobsLabel+desiredJobs)
	}
	if documentText != "" {
		parts = append(parts, documentText)
		usedCV = true
	}

	if len(parts) == 0 {
		return "", false, newInvalidInputError()
	}

	return strings.Join(parts, "\n"), usedCV, nil
}
