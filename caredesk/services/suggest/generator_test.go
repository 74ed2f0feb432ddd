package suggest

import (
	"caredesk/caredesk/sources/psql/models"
	"sort"
	"strings"
	"testing"
)

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

func TestGeneralSuggestions(t *testing.T) {
	suggestions := GeneralSuggestions()
	if len(suggestions) != 6 {
		t.Fatalf("expected 6 fallback suggestions, got %d", len(suggestions))
	}
	if !contains(suggestions, "Latest treatment guidelines for hypertension") {
		t.Error("missing the hypertension guideline suggestion")
	}
}

func TestPatientQuestionsFullChart(t *testing.T) {
	medications := []models.Medication{
		{Name: "Metformin", Status: "active", Notes: "For type 2 diabetes management"},
		{Name: "Lisinopril", Status: models.MedicationStatusDiscontinued, Notes: "Blood pressure control"},
	}
	conditions := []models.Condition{
		{Name: "Type 2 Diabetes"},
		{Name: "Hypertension"},
	}
	encounters := []models.MedicalEncounter{
		{EncounterDate: "2026-03-14", Reason: "Annual physical"},
	}
	labs := []models.LabReport{
		{TestName: "HbA1c", TestDate: "2026-02-01", Status: "high"},
		{TestName: "Lipid Panel", TestDate: "2026-02-01", Status: models.LabStatusNormal},
	}

	questions := PatientQuestions(encounters, medications, conditions, labs)

	wantPresent := []string{
		"Why was Metformin prescribed?",
		"When was Metformin started?",
		"Why was Lisinopril prescribed?",
		"When was Lisinopril started?",
		"When was Lisinopril discontinued?",
		"What is the history of Type 2 Diabetes?",
		"When was Type 2 Diabetes diagnosed?",
		"Is Type 2 Diabetes active or resolved?",
		"What is the history of Hypertension?",
		"What was the diagnosis in the encounter on 2026-03-14?",
		"What treatments or referrals were done in the encounter on 2026-03-14?",
		"Show me encounters for reason: Annual physical",
		"What were the results of HbA1c on 2026-02-01?",
		"Why was HbA1c abnormal?",
		"What were the results of Lipid Panel on 2026-02-01?",
		"What is the patient's cardiac history?",
		"What chronic conditions does the patient have?",
		"What medications is the patient currently taking?",
	}
	for _, q := range wantPresent {
		if !contains(questions, q) {
			t.Errorf("missing question %q", q)
		}
	}

	wantAbsent := []string{
		"When was Metformin discontinued?",
		"Why was Lipid Panel abnormal?",
	}
	for _, q := range wantAbsent {
		if contains(questions, q) {
			t.Errorf("unexpected question %q", q)
		}
	}
}

func TestPatientQuestionsRelatedMedications(t *testing.T) {
	medications := []models.Medication{
		{Name: "Metformin", Notes: "Started for diabetes after elevated HbA1c"},
		{Name: "Insulin Glargine", Notes: "Added for diabetes control"},
		{Name: "Atorvastatin", Notes: "Cholesterol management"},
	}
	conditions := []models.Condition{{Name: "Diabetes"}}

	questions := PatientQuestions(nil, medications, conditions, nil)
	want := "Which medications are being used to manage Diabetes? (e.g., Metformin, Insulin Glargine)"
	if !contains(questions, want) {
		t.Errorf("missing cross-referenced question %q in %v", want, questions)
	}
}

func TestPatientQuestionsNoCrossRefWithoutMatch(t *testing.T) {
	medications := []models.Medication{{Name: "Atorvastatin", Notes: "Cholesterol management"}}
	conditions := []models.Condition{{Name: "Asthma"}}

	for _, q := range PatientQuestions(nil, medications, conditions, nil) {
		if strings.HasPrefix(q, "Which medications are being used to manage") {
			t.Errorf("unexpected cross-reference question %q", q)
		}
	}
}

func TestPatientQuestionsEmptyChart(t *testing.T) {
	questions := PatientQuestions(nil, nil, nil, nil)
	if len(questions) != 3 {
		t.Fatalf("expected only the 3 fixed questions for an empty chart, got %d: %v", len(questions), questions)
	}
}

func TestShuffleDoesNotMutateInput(t *testing.T) {
	original := GeneralSuggestions()
	input := GeneralSuggestions()

	shuffled := Shuffle(input)

	for i := range original {
		if input[i] != original[i] {
			t.Fatalf("input mutated at %d: %q", i, input[i])
		}
	}
	if len(shuffled) != len(original) {
		t.Fatalf("length changed: %d vs %d", len(shuffled), len(original))
	}
	a := append([]string(nil), original...)
	b := append([]string(nil), shuffled...)
	sort.Strings(a)
	sort.Strings(b)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("shuffle changed the multiset at %d: %q vs %q", i, a[i], b[i])
		}
	}
}
