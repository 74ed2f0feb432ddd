package suggest

import (
	"caredesk/caredesk/sources/psql/models"
	"fmt"
	"math/rand"
	"strings"
)

// GeneralSuggestions is the fallback prompt list shown when no patient is
// selected.
func GeneralSuggestions() []string {
	return []string{
		"Latest treatment guidelines for hypertension",
		"Drug interactions for elderly patients",
		"Differential diagnosis for chest pain",
		"Screening recommendations for diabetes",
		"Management of acute asthma exacerbation",
		"Anticoagulation in atrial fibrillation",
	}
}

// PatientQuestions derives candidate questions from a patient's chart.
// Contribution order is medications, conditions, encounters, labs, then
// three fixed summary questions. Empty collections contribute nothing.
func PatientQuestions(
	encounters []models.MedicalEncounter,
	medications []models.Medication,
	conditions []models.Condition,
	labs []models.LabReport,
) []string {
	var questions []string

	for _, med := range medications {
		questions = append(questions, fmt.Sprintf("Why was %s prescribed?", med.Name))
		questions = append(questions, fmt.Sprintf("When was %s started?", med.Name))
		if med.Status == models.MedicationStatusDiscontinued {
			questions = append(questions, fmt.Sprintf("When was %s discontinued?", med.Name))
		}
	}

	for _, cond := range conditions {
		questions = append(questions, fmt.Sprintf("What is the history of %s?", cond.Name))
		questions = append(questions, fmt.Sprintf("When was %s diagnosed?", cond.Name))
		questions = append(questions, fmt.Sprintf("Is %s active or resolved?", cond.Name))

		var relatedMeds []string
		for _, med := range medications {
			if strings.Contains(strings.ToLower(med.Notes), strings.ToLower(cond.Name)) {
				relatedMeds = append(relatedMeds, med.Name)
			}
		}
		if len(relatedMeds) > 0 {
			questions = append(questions, fmt.Sprintf(
				"Which medications are being used to manage %s? (e.g., %s)",
				cond.Name, strings.Join(relatedMeds, ", "),
			))
		}
	}

	for _, enc := range encounters {
		questions = append(questions, fmt.Sprintf("What was the diagnosis in the encounter on %s?", enc.EncounterDate))
		questions = append(questions, fmt.Sprintf("What treatments or referrals were done in the encounter on %s?", enc.EncounterDate))
		questions = append(questions, fmt.Sprintf("Show me encounters for reason: %s", enc.Reason))
	}

	for _, lab := range labs {
		questions = append(questions, fmt.Sprintf("What were the results of %s on %s?", lab.TestName, lab.TestDate))
		if lab.Status != models.LabStatusNormal {
			questions = append(questions, fmt.Sprintf("Why was %s abnormal?", lab.TestName))
		}
	}

	questions = append(questions,
		"What is the patient's cardiac history?",
		"What chronic conditions does the patient have?",
		"What medications is the patient currently taking?",
	)

	return questions
}

// Shuffle returns a uniformly permuted copy; the input is never mutated, so
// callers can keep their generation order.
func Shuffle(suggestions []string) []string {
	out := make([]string, len(suggestions))
	copy(out, suggestions)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
