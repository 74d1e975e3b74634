package survey

import "testing"

func TestExternalPayloadTotal(t *testing.T) {
	form := DefaultForm()
	payload := form.ExternalPayload()

	if len(payload) != TotalQuestions() {
		t.Fatalf("payload has %d fields, want %d", len(payload), TotalQuestions())
	}

	wantKeys := []string{
		"Extracurricular_Hours_Per_Day",
		"Social_Hours_Per_Day",
		"Physical_Activity_Hours_Per_Day",
		"sleep_hours",
		"study_hours",
		"GPA",
		"Academic_Pressure",
		"Financial_Stress",
		"Stress_Level",
	}
	for _, k := range wantKeys {
		if _, ok := payload[k]; !ok {
			t.Errorf("payload missing key %q", k)
		}
	}

	if payload["GPA"] != 3.11 {
		t.Errorf("GPA = %v, want 3.11", payload["GPA"])
	}
	if payload["sleep_hours"] != 7 {
		t.Errorf("sleep_hours = %v, want 7", payload["sleep_hours"])
	}
}

func TestValuesRoundTrip(t *testing.T) {
	form := DefaultForm()
	form.StressLevel = 5
	form.GPA = 2.5

	rebuilt := FormFromValues(form.Values())
	if rebuilt != form {
		t.Errorf("round trip mismatch: got %+v, want %+v", rebuilt, form)
	}
}

func TestDefaultsInsideDomains(t *testing.T) {
	form := DefaultForm()
	for _, q := range Questions() {
		v := form.Value(q.ID)
		if v < q.Min || v > q.Max {
			t.Errorf("default %v for %q outside [%v, %v]", v, q.ID, q.Min, q.Max)
		}
	}
}

func TestWalkerAdjustClamps(t *testing.T) {
	w := NewWalker()
	q := w.Question()

	// Walk far below the minimum.
	for i := 0; i < 100; i++ {
		w.Adjust(-1)
	}
	if got := w.Value(); got != q.Min {
		t.Errorf("value after lower clamp = %v, want %v", got, q.Min)
	}

	for i := 0; i < 100; i++ {
		w.Adjust(1)
	}
	if got := w.Value(); got != q.Max {
		t.Errorf("value after upper clamp = %v, want %v", got, q.Max)
	}
}

func TestWalkerNextCompletesOnlyAtEnd(t *testing.T) {
	w := NewWalker()

	for i := 0; i < TotalQuestions()-1; i++ {
		form, done := w.Next()
		if done {
			t.Fatalf("done at question %d", i)
		}
		if form != (Form{}) {
			t.Fatalf("unexpected form snapshot mid-survey")
		}
	}

	form, done := w.Next()
	if !done {
		t.Fatal("expected done at the last question")
	}
	if form != w.Form() {
		t.Error("completed form should match walker state")
	}

	// Terminal Next leaves the walker unchanged.
	if w.Index() != TotalQuestions()-1 {
		t.Errorf("index = %d, want %d", w.Index(), TotalQuestions()-1)
	}
	if _, done := w.Next(); !done {
		t.Error("repeated Next at the end should still report done")
	}
}

func TestWalkerBackExitsAtFirstQuestion(t *testing.T) {
	w := NewWalker()

	if exit := w.Back(); !exit {
		t.Error("back at the first question should signal exit")
	}

	w.Next()
	if exit := w.Back(); exit {
		t.Error("back mid-survey should not signal exit")
	}
	if w.Index() != 0 {
		t.Errorf("index = %d, want 0", w.Index())
	}
}

func TestSetAnswerRejectsOutOfRange(t *testing.T) {
	w := NewWalker()

	if err := w.SetAnswer(FieldSleepHours, 2); err == nil {
		t.Error("expected error for below-minimum sleep hours")
	}
	if err := w.SetAnswer(FieldGPA, 4.5); err == nil {
		t.Error("expected error for GPA above 4.0")
	}
	if err := w.SetAnswer("bogus_field", 1); err == nil {
		t.Error("expected error for unknown field")
	}
	if err := w.SetAnswer(FieldStressLevel, 4); err != nil {
		t.Errorf("valid answer rejected: %v", err)
	}
	if got := w.Form().StressLevel; got != 4 {
		t.Errorf("stress level = %v, want 4", got)
	}
}

func TestDisplayValueLabels(t *testing.T) {
	q, ok := QuestionFor(FieldStressLevel)
	if !ok {
		t.Fatal("missing stress level question")
	}
	if got := q.DisplayValue(1); got != "Very Low" {
		t.Errorf("DisplayValue(1) = %q, want 'Very Low'", got)
	}
	if got := q.DisplayValue(5); got != "Very High" {
		t.Errorf("DisplayValue(5) = %q, want 'Very High'", got)
	}

	gpa, _ := QuestionFor(FieldGPA)
	if got := gpa.DisplayValue(3.1); got != "3.10" {
		t.Errorf("DisplayValue(3.1) = %q, want '3.10'", got)
	}
}
