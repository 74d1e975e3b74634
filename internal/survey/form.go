package survey

import (
	"fmt"
	"strconv"
)

// Form is the complete nine-field questionnaire answer set. Every field
// holds a value inside its question's domain from the moment the form is
// created; the walker rejects out-of-domain writes.
type Form struct {
	ExtracurricularHours  float64 `json:"extracurricular_hours"`
	SocialHours           float64 `json:"social_hours"`
	PhysicalActivityHours float64 `json:"physical_activity_hours"`
	SleepHours            float64 `json:"sleep_hours"`
	StudyHours            float64 `json:"study_hours"`
	GPA                   float64 `json:"gpa"`
	AcademicPressure      float64 `json:"academic_pressure"`
	FinancialStress       float64 `json:"financial_stress"`
	StressLevel           float64 `json:"stress_level"`
}

// DefaultForm returns the initial answer vector shown when the survey opens.
func DefaultForm() Form {
	return Form{
		ExtracurricularHours:  2,
		SocialHours:           3,
		PhysicalActivityHours: 1,
		SleepHours:            7,
		StudyHours:            4,
		GPA:                   3.11,
		AcademicPressure:      3,
		FinancialStress:       2,
		StressLevel:           3,
	}
}

// Value returns the answer for a field.
func (f Form) Value(id FieldID) float64 {
	switch id {
	case FieldExtracurricularHours:
		return f.ExtracurricularHours
	case FieldSocialHours:
		return f.SocialHours
	case FieldPhysicalActivityHours:
		return f.PhysicalActivityHours
	case FieldSleepHours:
		return f.SleepHours
	case FieldStudyHours:
		return f.StudyHours
	case FieldGPA:
		return f.GPA
	case FieldAcademicPressure:
		return f.AcademicPressure
	case FieldFinancialStress:
		return f.FinancialStress
	case FieldStressLevel:
		return f.StressLevel
	}
	return 0
}

func (f *Form) set(id FieldID, v float64) error {
	switch id {
	case FieldExtracurricularHours:
		f.ExtracurricularHours = v
	case FieldSocialHours:
		f.SocialHours = v
	case FieldPhysicalActivityHours:
		f.PhysicalActivityHours = v
	case FieldSleepHours:
		f.SleepHours = v
	case FieldStudyHours:
		f.StudyHours = v
	case FieldGPA:
		f.GPA = v
	case FieldAcademicPressure:
		f.AcademicPressure = v
	case FieldFinancialStress:
		f.FinancialStress = v
	case FieldStressLevel:
		f.StressLevel = v
	default:
		return fmt.Errorf("unknown survey field: %q", id)
	}
	return nil
}

// External field names expected by the prediction service. The mapping is
// total and lossless: every form field appears exactly once.
const (
	extExtracurricular   = "Extracurricular_Hours_Per_Day"
	extSocial            = "Social_Hours_Per_Day"
	extPhysicalActivity  = "Physical_Activity_Hours_Per_Day"
	extSleepHours        = "sleep_hours"
	extStudyHours        = "study_hours"
	extGPA               = "GPA"
	extAcademicPressure  = "Academic_Pressure"
	extFinancialStress   = "Financial_Stress"
	extStressLevel       = "Stress_Level"
)

// ExternalPayload reshapes the form into the feature vector the prediction
// service expects, keyed by its exact field names.
func (f Form) ExternalPayload() map[string]float64 {
	return map[string]float64{
		extExtracurricular:  f.ExtracurricularHours,
		extSocial:           f.SocialHours,
		extPhysicalActivity: f.PhysicalActivityHours,
		extSleepHours:       f.SleepHours,
		extStudyHours:       f.StudyHours,
		extGPA:              f.GPA,
		extAcademicPressure: f.AcademicPressure,
		extFinancialStress:  f.FinancialStress,
		extStressLevel:      f.StressLevel,
	}
}

// Values returns the form as a map keyed by internal field IDs, in no
// particular order. Used for persistence and history display.
func (f Form) Values() map[string]float64 {
	m := make(map[string]float64, len(questions))
	for _, q := range questions {
		m[string(q.ID)] = f.Value(q.ID)
	}
	return m
}

// FormFromValues rebuilds a Form from persisted internal-keyed values.
// Missing fields keep the zero value; unknown keys are ignored.
func FormFromValues(values map[string]float64) Form {
	var f Form
	for k, v := range values {
		_ = f.set(FieldID(k), v)
	}
	return f
}

// trimFloat formats v with up to prec decimals, dropping a trailing ".0".
func trimFloat(v float64, prec int) string {
	if prec == 0 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}
