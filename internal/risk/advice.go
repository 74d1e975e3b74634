package risk

// Summary returns the one-paragraph interpretation shown under the risk badge.
func (l Level) Summary() string {
	switch l {
	case LevelLow:
		return "Your responses suggest a low risk of depression. Continue maintaining your healthy lifestyle and positive habits."
	case LevelModerate:
		return "Your responses indicate moderate risk factors. Consider implementing stress management strategies and reaching out for support if needed."
	default:
		return "Your responses suggest significant risk factors that warrant attention. Please consider reaching out to a mental health professional for support."
	}
}

// Recommendations returns the action items for this level, most important first.
func (l Level) Recommendations() []string {
	switch l {
	case LevelLow:
		return []string{
			"Continue maintaining your healthy habits",
			"Keep up with regular sleep schedule",
			"Stay connected with friends and family",
			"Continue physical activities",
		}
	case LevelModerate:
		return []string{
			"Consider speaking with a counselor",
			"Practice stress management techniques",
			"Maintain regular sleep schedule (7-9 hours)",
			"Engage in regular physical activity",
			"Connect with supportive friends",
		}
	default:
		return []string{
			"Please reach out to a mental health professional",
			"Contact your university counseling center",
			"Talk to someone you trust about how you're feeling",
			"Consider crisis support resources",
			"Practice self-care and prioritize rest",
		}
	}
}

// CrisisResource is a 24/7 support channel surfaced for high-risk results.
type CrisisResource struct {
	Name        string
	Contact     string
	Description string
}

// CrisisResources returns the support channels shown when
// NeedsCrisisResources is true.
func CrisisResources() []CrisisResource {
	return []CrisisResource{
		{
			Name:        "National Suicide Prevention Lifeline",
			Contact:     "988",
			Description: "24/7 crisis support",
		},
		{
			Name:        "Crisis Text Line",
			Contact:     "Text HOME to 741741",
			Description: "Free 24/7 text support",
		},
		{
			Name:        "University Counseling Center",
			Contact:     "Contact your university",
			Description: "Free counseling for students",
		},
	}
}
