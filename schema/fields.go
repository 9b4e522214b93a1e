// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package schema

import "fmt"

// Field ids referenced elsewhere in the codebase. The remaining ids appear
// only in the field table below.
const (
	FieldClaimType     FieldID = "Sinusitis__c.Sinusitis_1a__c"
	FieldHistory       FieldID = "Sinusitis__c.Sinus_Q10c__c"
	FieldMedTrigger    FieldID = "Sinusitis__c.Sinus_Q11__c"
	FieldMedCount      FieldID = "Sinusitis__c.Sinus_Q11a__c"
	FieldMed1Name      FieldID = "Sinusitis__c.Sinus_Q11aaa__c"
	FieldMed1Dosage    FieldID = "Sinusitis__c.Sinus_Q11aab__c"
	FieldMed1Freq      FieldID = "Sinusitis__c.Sinus_Q11aac__c"
	FieldMed2Name      FieldID = "Sinusitis__c.Sinus_Q11aba__c"
	FieldMed2Dosage    FieldID = "Sinusitis__c.Sinus_Q11abb__c"
	FieldMed2Freq      FieldID = "Sinusitis__c.Sinus_Q11abc__c"
	FieldMed3Name      FieldID = "Sinusitis__c.Sinus_Q11aca__c"
	FieldMedOverflow   FieldID = "Sinusitis__c.Sinus_Q11b__c"
	FieldServiceConn   FieldID = "Sinusitis__c.Sinus_Q48__c"
	FieldSymptoms      FieldID = "Sinusitis__c.Sinus_Q12__c"
	FieldSymptomDetail FieldID = "Sinusitis__c.Sinus_Q14__c"
	FieldIncapEpisodes FieldID = "Sinusitis__c.Sinus_Q16__c"
	FieldSurgTrigger   FieldID = "Sinusitis__c.Sinus_Q17__c"
	FieldSurgCount     FieldID = "Sinusitis__c.Sinus_Q17a__c"
	FieldImpact        FieldID = "Sinusitis__c.Sinus_Q21__c"
	FieldVeteranName   FieldID = "Sinusitis__c.DBQ__c.Veteran_Name_Text__c"
	FieldDateSubmitted FieldID = "Sinusitis__c.Date_Submitted__c"
)

// DBQType is the constant form tag emitted in every submission envelope.
const DBQType = "CHRONIC_SINUSITIS"

const (
	patternMonthYear = `^(0[1-9]|1[0-2])/[0-9]{4}$`
	patternFullDate  = `^(0[1-9]|1[0-2])/(0[1-9]|[12][0-9]|3[01])/[0-9]{4}$`
)

var sinusList = []string{"Maxillary", "Frontal", "Ethmoid", "Sphenoid", "Pansinusitus", "Unknown"}

func whenYes(id FieldID) Condition             { return Condition{Field: id, AnyOf: []string{"Yes"}} }
func whenIs(id FieldID, v ...string) Condition { return Condition{Field: id, AnyOf: v} }
func whenHas(id FieldID, v string) Condition   { return Condition{Field: id, Contains: v} }

// claimChosen gates the bulk of the form on the initial claim selection,
// mirroring the source form where everything nests under it.
var claimChosen = whenIs(FieldClaimType, "Initial Claim", "Re-evaluation for Existing")

// Sinusitis returns the Chronic Sinusitis DBQ schema. Field ids are the
// downstream record keys and must not change.
func Sinusitis() *Schema {
	s, err := New(DBQType, map[int]string{
		1: "Claim History",
		2: "Medications",
		3: "Sinusitis",
		4: "Related Conditions",
		5: "Final Details",
	}, sinusitisFields())
	if err != nil {
		// The field table is static; a constructor error is a programming bug.
		panic(err)
	}
	return s
}

func sinusitisFields() []Field {
	fields := []Field{
		// Step 1: Claim History
		{ID: FieldClaimType, Step: 1, Kind: KindSelect, Required: true,
			Label:   "Are you applying for an initial claim or a re-evaluation for an existing service-connected disability?",
			Options: []string{"Initial Claim", "Re-evaluation for Existing"}},
		{ID: FieldHistory, Step: 1, Kind: KindTextArea, Required: true,
			Label:     "Briefly describe the history of your sinus condition, including how and when your symptoms began:",
			DependsOn: []Condition{claimChosen},
			MinLength: 20},

		// Step 2: Medications
		{ID: FieldMedTrigger, Step: 2, Kind: KindRadio, Required: true,
			Label:     "Do you currently take any medication(s)?",
			Options:   []string{"Yes", "No"},
			DependsOn: []Condition{claimChosen}},
		{ID: FieldMedCount, Step: 2, Kind: KindSelect, Required: true,
			Label:     "How many medications?",
			Options:   []string{"1", "2", "3", "More than 3"},
			DependsOn: []Condition{whenYes(FieldMedTrigger)}},
	}

	// Three modeled medication rows; row i exists when the count selector
	// admits at least i medications. Counts beyond three overflow into a
	// free-text bucket.
	medRows := [3][3]FieldID{
		{FieldMed1Name, FieldMed1Dosage, FieldMed1Freq},
		{FieldMed2Name, FieldMed2Dosage, FieldMed2Freq},
		{FieldMed3Name, "Sinusitis__c.Sinus_Q11acb__c", "Sinusitis__c.Sinus_Q11acc__c"},
	}
	medCounts := [3][]string{
		{"1", "2", "3", "More than 3"},
		{"2", "3", "More than 3"},
		{"3", "More than 3"},
	}
	medLabels := [3]string{"Name", "Dosage", "Frequency"}
	for i, row := range medRows {
		dep := []Condition{whenYes(FieldMedTrigger), whenIs(FieldMedCount, medCounts[i]...)}
		for j, id := range row {
			fields = append(fields, Field{
				ID: id, Step: 2, Kind: KindText, Required: true,
				Label:        medRowLabel(i+1, medLabels[j]),
				DependsOn:    dep,
				NoDigitsOnly: j > 0, // a bare number is not a dosage or frequency
			})
		}
	}
	fields = append(fields, Field{
		ID: FieldMedOverflow, Step: 2, Kind: KindTextArea, Required: true,
		Label:     "List each additional medication(s) AND dosages/frequency:",
		DependsOn: []Condition{whenYes(FieldMedTrigger), whenIs(FieldMedCount, "More than 3")},
	})

	// Step 3: Sinusitis
	fields = append(fields,
		Field{ID: FieldServiceConn, Step: 3, Kind: KindRadio, Required: true,
			Label:     "Are you service connected or seeking service connection for Sinusitis?",
			Options:   []string{"Yes", "No"},
			DependsOn: []Condition{claimChosen}},
		Field{ID: "Sinusitis__c.Sinus_Q34__c", Step: 3, Kind: KindMultiSelect, Required: true,
			Label:     "Indicate the sinus currently affected:",
			Options:   sinusList,
			DependsOn: []Condition{whenYes(FieldServiceConn)}},
		Field{ID: FieldSymptoms, Step: 3, Kind: KindMultiSelect, Required: true,
			Label: "Select all sinus symptoms that apply:",
			Options: []string{"Near Constant Sinusitis", "Headaches caused by sinusitis", "Sinus pain",
				"Sinus tenderness", "Discharge containing pus", "Crusting"},
			DependsOn: []Condition{whenYes(FieldServiceConn)}},
		Field{ID: "Sinusitis__c.Sinus_Q13__c", Step: 3, Kind: KindSelect, Required: true,
			Label:     "Near constant sinusitis frequency:",
			Options:   []string{"Daily", "5-6 days per week", "3-4 days per week"},
			DependsOn: []Condition{whenYes(FieldServiceConn), whenHas(FieldSymptoms, "Near Constant Sinusitis")}},
		Field{ID: FieldSymptomDetail, Step: 3, Kind: KindTextArea, Required: true,
			Label:     "Please describe the symptoms you selected in detail:",
			DependsOn: []Condition{whenYes(FieldServiceConn)},
			MinLength: 20},
		Field{ID: "Sinusitis__c.Sinus_Q15__c", Step: 3, Kind: KindSelect, Required: true,
			Label:     "Non-incapacitating episodes (last 12 months):",
			Options:   []string{"1", "2", "3", "4", "5", "6", "7 or more"},
			DependsOn: []Condition{whenYes(FieldServiceConn)}},
		Field{ID: FieldIncapEpisodes, Step: 3, Kind: KindSelect, Required: true,
			Label:     "Incapacitating episodes (last 12 months):",
			Options:   []string{"0", "1", "2", "3 or more"},
			DependsOn: []Condition{whenYes(FieldServiceConn)}},
		Field{ID: FieldSurgTrigger, Step: 3, Kind: KindRadio, Required: true,
			Label:     "Have you ever had sinus surgery?",
			Options:   []string{"Yes", "No"},
			DependsOn: []Condition{whenYes(FieldServiceConn)}},
		Field{ID: FieldSurgCount, Step: 3, Kind: KindSelect, Required: true,
			Label:     "How many sinus surgeries have you had?",
			Options:   []string{"1", "2", "3", "4", "More than 4"},
			DependsOn: []Condition{whenYes(FieldSurgTrigger)}},
	)

	surgRows := [4][3]FieldID{
		{"Sinusitis__c.Sinus_Q17aaa__c", "Sinusitis__c.Sinus_Q17aaa1__c", "Sinusitis__c.Sinus_Q17aab__c"},
		{"Sinusitis__c.Sinus_Q17aba__c", "Sinusitis__c.Sinus_Q17aba1__c", "Sinusitis__c.Sinus_Q17abb__c"},
		{"Sinusitis__c.Sinus_Q17abc__c", "Sinusitis__c.Sinus_Q17abc1__c", "Sinusitis__c.Sinus_Q17aca__c"},
		{"Sinusitis__c.Sinus_Q17acb__c", "Sinusitis__c.Sinus_Q17acb1__c", "Sinusitis__c.Sinus_Q17acc__c"},
	}
	surgCounts := [4][]string{
		{"1", "2", "3", "4", "More than 4"},
		{"2", "3", "4", "More than 4"},
		{"3", "4", "More than 4"},
		{"4", "More than 4"},
	}
	for i, row := range surgRows {
		dep := []Condition{whenYes(FieldSurgTrigger), whenIs(FieldSurgCount, surgCounts[i]...)}
		fields = append(fields,
			Field{ID: row[0], Step: 3, Kind: KindText, Required: true,
				Label:       surgRowLabel(i+1, "Date (MM/YYYY)"),
				DependsOn:   dep,
				Pattern:     patternMonthYear,
				PatternHint: "MM/YYYY"},
			Field{ID: row[1], Step: 3, Kind: KindSelect, Required: true,
				Label:     surgRowLabel(i+1, "Type"),
				Options:   []string{"Radical", "Endoscopic"},
				DependsOn: dep},
			Field{ID: row[2], Step: 3, Kind: KindTextArea, Required: true,
				Label:     surgRowLabel(i+1, "Findings"),
				DependsOn: dep},
		)
	}
	fields = append(fields,
		Field{ID: "Sinusitis__c.Sinus_Q17b__c", Step: 3, Kind: KindTextArea, Required: true,
			Label:     "List additional surgery details:",
			DependsOn: []Condition{whenYes(FieldSurgTrigger), whenIs(FieldSurgCount, "More than 4")}},
		Field{ID: "Sinusitis__c.Sinus_Q17c__c", Step: 3, Kind: KindMultiSelect,
			Label:     "Sinus operated on:",
			Options:   sinusList,
			DependsOn: []Condition{whenYes(FieldSurgTrigger)}},
		Field{ID: "Sinusitis__c.Sinus_Q17d__c", Step: 3, Kind: KindSelect,
			Label:     "Side operated on:",
			Options:   []string{"Left", "Right", "Both"},
			DependsOn: []Condition{whenYes(FieldSurgTrigger)}},
	)

	// Step 4: Related Conditions
	fields = append(fields,
		// Rhinitis
		Field{ID: "Sinusitis__c.Sinus_Q20__c", Step: 4, Kind: KindRadio, Required: true,
			Label: "Seeking connection for rhinitis?", Options: []string{"Yes", "No"}},
		Field{ID: "Sinusitis__c.Sinus_Q20a__c", Step: 4, Kind: KindRadio,
			Label: "Blockage in >50% both nasal passages?", Options: []string{"Yes", "No"},
			DependsOn: []Condition{whenYes("Sinusitis__c.Sinus_Q20__c")}},
		Field{ID: "Sinusitis__c.Sinus_Q20b__c", Step: 4, Kind: KindSelect,
			Label:     "Complete blockage side?",
			Options:   []string{"No", "Yes, Right side", "Yes, Left side", "Yes, both"},
			DependsOn: []Condition{whenYes("Sinusitis__c.Sinus_Q20__c")}},
		Field{ID: "Sinusitis__c.Sinus_Q20c__c", Step: 4, Kind: KindRadio,
			Label: "Permanent enlargement of nasal turbinates?", Options: []string{"Yes", "No"},
			DependsOn: []Condition{whenYes("Sinusitis__c.Sinus_Q20__c")}},
		Field{ID: "Sinusitis__c.Sinus_Q20d__c", Step: 4, Kind: KindRadio,
			Label: "Diagnosed with nasal polyps?", Options: []string{"Yes", "No"},
			DependsOn: []Condition{whenYes("Sinusitis__c.Sinus_Q20__c")}},

		// Larynx and pharynx
		Field{ID: "Sinusitis__c.Sinus_Q35__c", Step: 4, Kind: KindRadio, Required: true,
			Label: "Do you have chronic laryngitis?", Options: []string{"Yes", "No"}},
		Field{ID: "Sinusitis__c.Sinus_Q35a__c", Step: 4, Kind: KindMultiSelect,
			Label: "Laryngitis symptoms:", Options: []string{"Hoarseness", "Inflammation", "Polyps", "Other"},
			DependsOn: []Condition{whenYes("Sinusitis__c.Sinus_Q35__c")}},
		Field{ID: "Sinusitis__c.Sinus_Q35b__c", Step: 4, Kind: KindTextArea,
			Label:     "Describe hoarseness frequency:",
			DependsOn: []Condition{whenYes("Sinusitis__c.Sinus_Q35__c"), whenHas("Sinusitis__c.Sinus_Q35a__c", "Hoarseness")}},
		Field{ID: "Sinusitis__c.Sinus_Q35c__c", Step: 4, Kind: KindTextArea,
			Label:     "Describe other laryngitis symptoms:",
			DependsOn: []Condition{whenYes("Sinusitis__c.Sinus_Q35__c"), whenHas("Sinusitis__c.Sinus_Q35a__c", "Other")}},
		Field{ID: "Sinusitis__c.Sinus_Q36__c", Step: 4, Kind: KindRadio, Required: true,
			Label: "Ever had a laryngectomy?", Options: []string{"Yes", "No"}},
		Field{ID: "Sinusitis__c.Sinus_Q36a__c", Step: 4, Kind: KindSelect,
			Label: "Laryngectomy type:", Options: []string{"Total", "Partial"},
			DependsOn: []Condition{whenYes("Sinusitis__c.Sinus_Q36__c")}},
		Field{ID: "Sinusitis__c.Sinus_Q36b__c", Step: 4, Kind: KindTextArea,
			Label:     "Describe laryngectomy residuals:",
			DependsOn: []Condition{whenYes("Sinusitis__c.Sinus_Q36__c"), whenIs("Sinusitis__c.Sinus_Q36a__c", "Partial")}},
		Field{ID: "Sinusitis__c.Sinus_Q36c__c", Step: 4, Kind: KindRadio, Required: true,
			Label: "Laryngeal stenosis or trauma residuals?", Options: []string{"Yes", "No"}},
		Field{ID: "Sinusitis__c.Sinus_Q36d__c", Step: 4, Kind: KindRadio, Required: true,
			Label: "Complete organic aphonia?", Options: []string{"Yes", "No"}},
		Field{ID: "Sinusitis__c.Sinus_Q36e__c", Step: 4, Kind: KindMultiSelect,
			Label:   "Aphonia symptoms:",
			Options: []string{"Inability to whisper", "Inability to communicate", "Other"},
			DependsOn: []Condition{whenYes("Sinusitis__c.Sinus_Q36d__c")}},
		Field{ID: "Sinusitis__c.Sinus_Q36f__c", Step: 4, Kind: KindTextArea,
			Label:     "Describe other aphonia residuals:",
			DependsOn: []Condition{whenYes("Sinusitis__c.Sinus_Q36d__c"), whenHas("Sinusitis__c.Sinus_Q36e__c", "Other")}},
		Field{ID: "Sinusitis__c.Sinus_Q36g__c", Step: 4, Kind: KindRadio, Required: true,
			Label: "Incomplete organic aphonia?", Options: []string{"Yes", "No"}},
		Field{ID: "Sinusitis__c.Sinus_Q36h__c", Step: 4, Kind: KindMultiSelect,
			Label:   "Incomplete aphonia symptoms checklist:",
			Options: []string{"Hoarseness", "Inflammation", "Nodules", "Other"},
			DependsOn: []Condition{whenYes("Sinusitis__c.Sinus_Q36g__c")}},
		Field{ID: "Sinusitis__c.Sinus_Q37__c", Step: 4, Kind: KindTextArea,
			Label:     "Describe hoarseness frequency (incomplete aphonia):",
			DependsOn: []Condition{whenYes("Sinusitis__c.Sinus_Q36g__c"), whenHas("Sinusitis__c.Sinus_Q36h__c", "Hoarseness")}},
		Field{ID: "Sinusitis__c.Sinus_Q37a__c", Step: 4, Kind: KindTextArea,
			Label:     "Describe other residuals (incomplete aphonia):",
			DependsOn: []Condition{whenYes("Sinusitis__c.Sinus_Q36g__c"), whenHas("Sinusitis__c.Sinus_Q36h__c", "Other")}},
		Field{ID: "Sinusitis__c.Sinus_Q38__c", Step: 4, Kind: KindRadio, Required: true,
			Label: "Permanent tracheostomy?", Options: []string{"Yes", "No"}},
		Field{ID: "Sinusitis__c.Sinus_Q38a__c", Step: 4, Kind: KindTextArea,
			Label:     "Describe reason/potential reversal:",
			DependsOn: []Condition{whenYes("Sinusitis__c.Sinus_Q38__c")}},
		Field{ID: "Sinusitis__c.Sinus_Q39__c", Step: 4, Kind: KindRadio, Required: true,
			Label: "Injury to pharynx?", Options: []string{"Yes", "No"}},
		Field{ID: "Sinusitis__c.Sinus_Q39a__c", Step: 4, Kind: KindMultiSelect,
			Label:   "Pharynx injury symptoms:",
			Options: []string{"Obstruction", "Stricture", "Speech impairment", "Other"},
			DependsOn: []Condition{whenYes("Sinusitis__c.Sinus_Q39__c")}},
		Field{ID: "Sinusitis__c.Sinus_Q39c__c", Step: 4, Kind: KindRadio, Required: true,
			Label: "Vocal cord paralysis?", Options: []string{"Yes", "No"},
			DependsOn: []Condition{whenYes("Sinusitis__c.Sinus_Q39__c")}},

		// Deviated septum
		Field{ID: "Sinusitis__c.Sinus_Q30__c", Step: 4, Kind: KindRadio, Required: true,
			Label: "Seeking connection for deviated septum?", Options: []string{"Yes", "No"}},
		Field{ID: "Sinusitis__c.Sinus_Q31__c", Step: 4, Kind: KindRadio,
			Label: "Is it traumatic?", Options: []string{"Yes", "No"},
			DependsOn: []Condition{whenYes("Sinusitis__c.Sinus_Q30__c")}},
		Field{ID: "Sinusitis__c.Sinus_Q40__c", Step: 4, Kind: KindRadio,
			Label: "Complete obstruction Left side?", Options: []string{"Yes", "No"},
			DependsOn: []Condition{whenYes("Sinusitis__c.Sinus_Q30__c")}},
		Field{ID: "Sinusitis__c.Sinus_Q41__c", Step: 4, Kind: KindRadio,
			Label: "Complete obstruction Right side?", Options: []string{"Yes", "No"},
			DependsOn: []Condition{whenYes("Sinusitis__c.Sinus_Q30__c")}},
		Field{ID: "Sinusitis__c.Sinus_Q32__c", Step: 4, Kind: KindRadio,
			Label: ">50% obstruction both sides?", Options: []string{"Yes", "No"},
			DependsOn: []Condition{whenYes("Sinusitis__c.Sinus_Q30__c")}},

		// Tumors and neoplasms
		Field{ID: "Sinusitis__c.Sinus_Q43__c", Step: 4, Kind: KindRadio, Required: true,
			Label: "Tumors related to above conditions?", Options: []string{"Yes", "No"}},
		Field{ID: "Sinusitis__c.Sinus_Q42__c", Step: 4, Kind: KindSelect,
			Label: "Tumor state:", Options: []string{"Benign", "Malignant"},
			DependsOn: []Condition{whenYes("Sinusitis__c.Sinus_Q43__c")}},
		Field{ID: "Sinusitis__c.Sinus_Q49__c", Step: 4, Kind: KindSelect,
			Label: "Malignancy status:", Options: []string{"Active", "Remission"},
			DependsOn: []Condition{whenYes("Sinusitis__c.Sinus_Q43__c"), whenIs("Sinusitis__c.Sinus_Q42__c", "Malignant")}},
		Field{ID: "Sinusitis__c.Sinus_Q50__c", Step: 4, Kind: KindSelect,
			Label: "Malignancy type:", Options: []string{"Primary", "Secondary"},
			DependsOn: []Condition{whenYes("Sinusitis__c.Sinus_Q43__c"), whenIs("Sinusitis__c.Sinus_Q42__c", "Malignant")}},
		Field{ID: "Sinusitis__c.Sinus_Q51__c", Step: 4, Kind: KindTextArea,
			Label:     "Primary site:",
			DependsOn: []Condition{whenIs("Sinusitis__c.Sinus_Q50__c", "Secondary")}},
		Field{ID: "Sinusitis__c.Sinus_Q52__c", Step: 4, Kind: KindSelect,
			Label: "Treatment status:", Options: []string{"Yes - Current", "Yes - Completed", "No"},
			DependsOn: []Condition{whenYes("Sinusitis__c.Sinus_Q43__c")}},
		Field{ID: "Sinusitis__c.Sinus_Q44__c", Step: 4, Kind: KindMultiSelect,
			Label:   "Treatments:",
			Options: []string{"Radiation", "Chemotherapy", "X-ray", "Other"},
			DependsOn: []Condition{whenYes("Sinusitis__c.Sinus_Q43__c"), whenIs("Sinusitis__c.Sinus_Q52__c", "Yes - Current", "Yes - Completed")}},
		Field{ID: "Sinusitis__c.Sinus_Q53__c", Step: 4, Kind: KindDate,
			Label: "Recent radiation", Pattern: patternFullDate, PatternHint: "MM/DD/YYYY",
			DependsOn: []Condition{whenHas("Sinusitis__c.Sinus_Q44__c", "Radiation")}},
		Field{ID: "Sinusitis__c.Sinus_Q54__c", Step: 4, Kind: KindDate,
			Label: "Radiation completion", Pattern: patternFullDate, PatternHint: "MM/DD/YYYY",
			DependsOn: []Condition{whenHas("Sinusitis__c.Sinus_Q44__c", "Radiation")}},
		Field{ID: "Sinusitis__c.Sinus_Q55__c", Step: 4, Kind: KindDate,
			Label: "Recent chemo", Pattern: patternFullDate, PatternHint: "MM/DD/YYYY",
			DependsOn: []Condition{whenHas("Sinusitis__c.Sinus_Q44__c", "Chemotherapy")}},
		Field{ID: "Sinusitis__c.Sinus_Q56__c", Step: 4, Kind: KindDate,
			Label: "Chemo completion", Pattern: patternFullDate, PatternHint: "MM/DD/YYYY",
			DependsOn: []Condition{whenHas("Sinusitis__c.Sinus_Q44__c", "Chemotherapy")}},
		Field{ID: "Sinusitis__c.Sinus_Q45__c", Step: 4, Kind: KindTextArea,
			Label:     "Describe other treatments:",
			DependsOn: []Condition{whenHas("Sinusitis__c.Sinus_Q44__c", "Other")}},
		Field{ID: "Sinusitis__c.Sinus_Q46__c", Step: 4, Kind: KindRadio,
			Label: "Had surgery on neoplasm?", Options: []string{"Yes", "No"},
			DependsOn: []Condition{whenYes("Sinusitis__c.Sinus_Q43__c")}},
		Field{ID: "Sinusitis__c.Sinus_Q47__c", Step: 4, Kind: KindTextArea,
			Label:     "Neoplasm surgery description:",
			DependsOn: []Condition{whenYes("Sinusitis__c.Sinus_Q46__c")}},

		// Step 5: Final Details
		Field{ID: "Sinusitis__c.Sinus_Q42e__c", Step: 5, Kind: KindTextArea,
			Label: "List residuals/complications of tumors:"},
		Field{ID: FieldImpact, Step: 5, Kind: KindTextArea, Required: true,
			Label: "Sinusitis impact on occupational tasks:", MinLength: 20},
		Field{ID: FieldVeteranName, Step: 5, Kind: KindText, Required: true,
			Label: "Veteran Name:"},
		Field{ID: FieldDateSubmitted, Step: 5, Kind: KindDate, Required: true,
			Label: "Date Submitted (MM/DD/YYYY):", Pattern: patternFullDate, PatternHint: "MM/DD/YYYY",
			PinnedToToday: true},
	)

	return fields
}

func medRowLabel(n int, part string) string {
	return fmt.Sprintf("Medication #%d %s", n, part)
}

func surgRowLabel(n int, part string) string {
	return fmt.Sprintf("Surgery #%d %s", n, part)
}
