package survey

// Built-in PROART questionnaire: four sections, 91 items, 1-5 frequency scale.
// The Lived Experience and Health Impact sections are inverted: their items
// describe negative experiences, so a higher raw score is a worse outcome.

// DefaultScaleLabels are the labels of the 1..5 answer scale in value order.
var DefaultScaleLabels = [ScaleSize]string{"Never", "Rarely", "Sometimes", "Often", "Always"}

var defaultSections = []Section{
	{ID: "context", Name: "Work Context", ShortName: "Context", Index: 0},
	{ID: "management", Name: "Management Style", ShortName: "Management", Index: 1},
	{ID: "experience", Name: "Lived Experience", ShortName: "Experience", Index: 2, Inverted: true},
	{ID: "health", Name: "Health Impact", ShortName: "Health", Index: 3, Inverted: true},
}

var defaultQuestions = []Question{
	// Work Context (19 items)
	{ID: "c1", SectionID: "context", Number: 1, Text: "The number of workers is sufficient for the tasks"},
	{ID: "c2", SectionID: "context", Number: 2, Text: "Work resources are sufficient in number"},
	{ID: "c3", SectionID: "context", Number: 3, Text: "The available physical space is adequate"},
	{ID: "c4", SectionID: "context", Number: 4, Text: "The equipment is adequate"},
	{ID: "c5", SectionID: "context", Number: 5, Text: "The pace of work is adequate"},
	{ID: "c6", SectionID: "context", Number: 6, Text: "Deadlines are flexible"},
	{ID: "c7", SectionID: "context", Number: 7, Text: "Conditions are adequate for the expected results"},
	{ID: "c8", SectionID: "context", Number: 8, Text: "Tasks are clearly defined"},
	{ID: "c9", SectionID: "context", Number: 9, Text: "Tasks are distributed fairly"},
	{ID: "c10", SectionID: "context", Number: 10, Text: "Employees take part in decisions"},
	{ID: "c11", SectionID: "context", Number: 11, Text: "Manager-subordinate communication is adequate"},
	{ID: "c12", SectionID: "context", Number: 12, Text: "There is autonomy to carry out tasks"},
	{ID: "c13", SectionID: "context", Number: 13, Text: "Communication between employees is of good quality"},
	{ID: "c14", SectionID: "context", Number: 14, Text: "Information for carrying out tasks is clear"},
	{ID: "c15", SectionID: "context", Number: 15, Text: "Evaluation covers aspects beyond output"},
	{ID: "c16", SectionID: "context", Number: 16, Text: "The rules allow flexibility"},
	{ID: "c17", SectionID: "context", Number: 17, Text: "Instructions are consistent with one another"},
	{ID: "c18", SectionID: "context", Number: 18, Text: "Tasks are varied"},
	{ID: "c19", SectionID: "context", Number: 19, Text: "There is freedom to give opinions about the work"},

	// Management Style (21 items)
	{ID: "m1", SectionID: "management", Number: 1, Text: "Idolizing managers is encouraged"},
	{ID: "m2", SectionID: "management", Number: 2, Text: "Managers consider themselves irreplaceable"},
	{ID: "m3", SectionID: "management", Number: 3, Text: "Managers prefer to work individually"},
	{ID: "m4", SectionID: "management", Number: 4, Text: "Managers see themselves as the center of the world"},
	{ID: "m5", SectionID: "management", Number: 5, Text: "Managers do anything to attract attention"},
	{ID: "m6", SectionID: "management", Number: 6, Text: "Great importance is placed on rules"},
	{ID: "m7", SectionID: "management", Number: 7, Text: "Hierarchy is valued"},
	{ID: "m8", SectionID: "management", Number: 8, Text: "Affective bonds are weak"},
	{ID: "m9", SectionID: "management", Number: 9, Text: "Work is tightly controlled"},
	{ID: "m10", SectionID: "management", Number: 10, Text: "The environment becomes disorganized with change"},
	{ID: "m11", SectionID: "management", Number: 11, Text: "Committed people get no adequate return"},
	{ID: "m12", SectionID: "management", Number: 12, Text: "Credit for achievements belongs to everyone"},
	{ID: "m13", SectionID: "management", Number: 13, Text: "Collective work is valued"},
	{ID: "m14", SectionID: "management", Number: 14, Text: "Results are seen as a group achievement"},
	{ID: "m15", SectionID: "management", Number: 15, Text: "Decisions are made as a group"},
	{ID: "m16", SectionID: "management", Number: 16, Text: "Seeking new challenges is encouraged"},
	{ID: "m17", SectionID: "management", Number: 17, Text: "Work is interactive across areas"},
	{ID: "m18", SectionID: "management", Number: 18, Text: "Competence is valued by management"},
	{ID: "m19", SectionID: "management", Number: 19, Text: "Promotion opportunities are similar for everyone"},
	{ID: "m20", SectionID: "management", Number: 20, Text: "Managers care about well-being"},
	{ID: "m21", SectionID: "management", Number: 21, Text: "Innovation is valued"},

	// Lived Experience (28 items, inverted)
	{ID: "e1", SectionID: "experience", Number: 1, Text: "I feel useless at work"},
	{ID: "e2", SectionID: "experience", Number: 2, Text: "My tasks are insignificant"},
	{ID: "e3", SectionID: "experience", Number: 3, Text: "I feel unproductive"},
	{ID: "e4", SectionID: "experience", Number: 4, Text: "I do not identify with my tasks"},
	{ID: "e5", SectionID: "experience", Number: 5, Text: "I feel unmotivated for my tasks"},
	{ID: "e6", SectionID: "experience", Number: 6, Text: "My work is irrelevant to society"},
	{ID: "e7", SectionID: "experience", Number: 7, Text: "My work is meaningless"},
	{ID: "e8", SectionID: "experience", Number: 8, Text: "My tasks are trivial"},
	{ID: "e9", SectionID: "experience", Number: 9, Text: "I stay only for lack of opportunity"},
	{ID: "e10", SectionID: "experience", Number: 10, Text: "The work is tiring"},
	{ID: "e11", SectionID: "experience", Number: 11, Text: "The work is exhausting"},
	{ID: "e12", SectionID: "experience", Number: 12, Text: "The work is frustrating"},
	{ID: "e13", SectionID: "experience", Number: 13, Text: "The work overloads me"},
	{ID: "e14", SectionID: "experience", Number: 14, Text: "The work discourages me"},
	{ID: "e15", SectionID: "experience", Number: 15, Text: "Policy decisions cause me outrage"},
	{ID: "e16", SectionID: "experience", Number: 16, Text: "The work causes me suffering"},
	{ID: "e17", SectionID: "experience", Number: 17, Text: "The work causes me dissatisfaction"},
	{ID: "e18", SectionID: "experience", Number: 18, Text: "The organization undervalues my work"},
	{ID: "e19", SectionID: "experience", Number: 19, Text: "Submitting to my manager causes me outrage"},
	{ID: "e20", SectionID: "experience", Number: 20, Text: "Colleagues undervalue my work"},
	{ID: "e21", SectionID: "experience", Number: 21, Text: "There is no freedom to say what I think"},
	{ID: "e22", SectionID: "experience", Number: 22, Text: "Colleagues are indifferent to me"},
	{ID: "e23", SectionID: "experience", Number: 23, Text: "I am excluded from planning"},
	{ID: "e24", SectionID: "experience", Number: 24, Text: "Management treats me with indifference"},
	{ID: "e25", SectionID: "experience", Number: 25, Text: "Getting along with colleagues is difficult"},
	{ID: "e26", SectionID: "experience", Number: 26, Text: "Management disparages my work"},
	{ID: "e27", SectionID: "experience", Number: 27, Text: "There is no freedom to talk with management"},
	{ID: "e28", SectionID: "experience", Number: 28, Text: "There is distrust between management and staff"},

	// Health Impact (23 items, inverted)
	{ID: "h1", SectionID: "health", Number: 1, Text: "Bitterness"},
	{ID: "h2", SectionID: "health", Number: 2, Text: "Feeling of emptiness"},
	{ID: "h3", SectionID: "health", Number: 3, Text: "Bad mood"},
	{ID: "h4", SectionID: "health", Number: 4, Text: "Wanting to give up on everything"},
	{ID: "h5", SectionID: "health", Number: 5, Text: "Sadness"},
	{ID: "h6", SectionID: "health", Number: 6, Text: "Loss of self-confidence"},
	{ID: "h7", SectionID: "health", Number: 7, Text: "Loneliness"},
	{ID: "h8", SectionID: "health", Number: 8, Text: "Insensitivity toward colleagues"},
	{ID: "h9", SectionID: "health", Number: 9, Text: "Difficulties outside of work"},
	{ID: "h10", SectionID: "health", Number: 10, Text: "Wanting to be alone"},
	{ID: "h11", SectionID: "health", Number: 11, Text: "Family conflicts"},
	{ID: "h12", SectionID: "health", Number: 12, Text: "Aggressiveness"},
	{ID: "h13", SectionID: "health", Number: 13, Text: "Difficulty with friends"},
	{ID: "h14", SectionID: "health", Number: 14, Text: "Impatience with people"},
	{ID: "h15", SectionID: "health", Number: 15, Text: "Body aches"},
	{ID: "h16", SectionID: "health", Number: 16, Text: "Arm pain"},
	{ID: "h17", SectionID: "health", Number: 17, Text: "Headaches"},
	{ID: "h18", SectionID: "health", Number: 18, Text: "Digestive disorders"},
	{ID: "h19", SectionID: "health", Number: 19, Text: "Back pain"},
	{ID: "h20", SectionID: "health", Number: 20, Text: "Sleep disturbances"},
	{ID: "h21", SectionID: "health", Number: 21, Text: "Leg pain"},
	{ID: "h22", SectionID: "health", Number: 22, Text: "Circulatory disorders"},
	{ID: "h23", SectionID: "health", Number: 23, Text: "Appetite changes"},
}

// Default returns the built-in PROART questionnaire schema.
// The built-in definition always validates; a failure here is a bug.
func Default() *Schema {
	s, err := NewSchema(defaultSections, defaultQuestions, DefaultScaleLabels)
	if err != nil {
		panic("survey: invalid built-in schema: " + err.Error())
	}
	return s
}
