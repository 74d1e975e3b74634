package survey

// FieldID identifies one questionnaire field.
type FieldID string

const (
	FieldExtracurricularHours  FieldID = "extracurricular_hours"
	FieldSocialHours           FieldID = "social_hours"
	FieldPhysicalActivityHours FieldID = "physical_activity_hours"
	FieldSleepHours            FieldID = "sleep_hours"
	FieldStudyHours            FieldID = "study_hours"
	FieldGPA                   FieldID = "gpa"
	FieldAcademicPressure      FieldID = "academic_pressure"
	FieldFinancialStress       FieldID = "financial_stress"
	FieldStressLevel           FieldID = "stress_level"
)

// Question describes a single survey question: the field it answers,
// display copy, and the valid numeric domain.
type Question struct {
	ID          FieldID
	Title       string
	Description string
	Min         float64
	Max         float64
	Step        float64
	Unit        string
	// Labels, when set, name the ordinal values Min..Max in order
	// (e.g. "Very Low".."Very High" for a 1-5 scale).
	Labels []string
}

// ordinalLabels is the shared 1-5 scale used by the stress questions.
var ordinalLabels = []string{"Very Low", "Low", "Moderate", "High", "Very High"}

// questions is the fixed, ordered questionnaire.
var questions = []Question{
	{
		ID:          FieldExtracurricularHours,
		Title:       "Extracurricular Activities",
		Description: "Hours per day spent on clubs, sports, or other activities",
		Min:         0, Max: 8, Step: 1,
		Unit: "hours/day",
	},
	{
		ID:          FieldSocialHours,
		Title:       "Social Interaction",
		Description: "Hours per day spent with friends and social activities",
		Min:         0, Max: 12, Step: 1,
		Unit: "hours/day",
	},
	{
		ID:          FieldPhysicalActivityHours,
		Title:       "Physical Activity",
		Description: "Hours per day of exercise or physical movement",
		Min:         0, Max: 6, Step: 1,
		Unit: "hours/day",
	},
	{
		ID:          FieldSleepHours,
		Title:       "Sleep Duration",
		Description: "Average hours of sleep per night",
		Min:         3, Max: 12, Step: 1,
		Unit: "hours/night",
	},
	{
		ID:          FieldStudyHours,
		Title:       "Study Time",
		Description: "Hours per day dedicated to studying",
		Min:         0, Max: 14, Step: 1,
		Unit: "hours/day",
	},
	{
		ID:          FieldAcademicPressure,
		Title:       "Academic Pressure",
		Description: "How much pressure do you feel from academic demands?",
		Min:         1, Max: 5, Step: 1,
		Labels:      ordinalLabels,
	},
	{
		ID:          FieldFinancialStress,
		Title:       "Financial Stress",
		Description: "How stressed are you about financial matters?",
		Min:         1, Max: 5, Step: 1,
		Labels:      ordinalLabels,
	},
	{
		ID:          FieldGPA,
		Title:       "Grade Point Average",
		Description: "Your cumulative GPA on a 4.0 scale",
		Min:         0, Max: 4, Step: 0.01,
	},
	{
		ID:          FieldStressLevel,
		Title:       "Overall Stress Level",
		Description: "Your general stress level in daily life",
		Min:         1, Max: 5, Step: 1,
		Labels:      ordinalLabels,
	},
}

// Questions returns the ordered questionnaire.
func Questions() []Question {
	return questions
}

// QuestionAt returns the question at the given index.
func QuestionAt(index int) Question {
	return questions[index]
}

// TotalQuestions returns the number of questions in the survey.
func TotalQuestions() int {
	return len(questions)
}

// QuestionFor returns the question definition for a field.
func QuestionFor(id FieldID) (Question, bool) {
	for _, q := range questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// DisplayValue formats a value for the question: ordinal questions show
// their label, GPA shows two decimals, everything else the plain number.
func (q Question) DisplayValue(v float64) string {
	if len(q.Labels) > 0 {
		idx := int(v - q.Min)
		if idx >= 0 && idx < len(q.Labels) {
			return q.Labels[idx]
		}
	}
	if q.Step < 1 {
		return trimFloat(v, 2)
	}
	return trimFloat(v, 0)
}
