package models

// QuestionnaireResponse holds the readiness questionnaire answers. Empty
// string means unanswered; a draft may hold any subset of answers.
type QuestionnaireResponse struct {
	BaseUUIDModel
	UserID string `gorm:"type:varchar(64);not null;uniqueIndex" json:"userId"`

	Q1Education         string  `gorm:"column:q1_education;type:varchar(40)"              json:"q1_education"`
	Q2Work              string  `gorm:"column:q2_work;type:varchar(40)"                   json:"q2_work"`
	Q3Hobbies           string  `gorm:"column:q3_hobbies;type:varchar(40)"                json:"q3_hobbies"`
	Q4Siblings          string  `gorm:"column:q4_siblings;type:varchar(40)"               json:"q4_siblings"`
	Q5Importance        string  `gorm:"column:q5_importance;type:varchar(40)"             json:"q5_importance"`
	Q6Expectations      string  `gorm:"column:q6_expectations;type:varchar(40)"           json:"q6_expectations"`
	Q7CommitmentMedical string  `gorm:"column:q7_commitment_medical;type:varchar(40)"     json:"q7_commitment_medical"`
	Q8EducationSupport  string  `gorm:"column:q8_education_support;type:varchar(40)"      json:"q8_education_support"`
	Q9Caregiver         string  `gorm:"column:q9_caregiver;type:varchar(40)"              json:"q9_caregiver"`
	Q10Challenges       string  `gorm:"column:q10_challenges;type:varchar(40)"            json:"q10_challenges"`
	Q11InstructionReady string  `gorm:"column:q11_instruction_readiness;type:varchar(40)" json:"q11_instruction_readiness"`
	Q12CommitmentLevel  string  `gorm:"column:q12_commitment_level;type:varchar(40)"      json:"q12_commitment_level"`
	AudioRecordingURL   *string `gorm:"column:audio_recording_url;type:varchar(500)"      json:"audioRecordingUrl,omitempty"`
	IsDraft             bool    `gorm:"not null"                                          json:"isDraft"`
}

// Answers returns the responses keyed by question id, in catalog order.
func (q *QuestionnaireResponse) Answers() map[string]string {
	return map[string]string{
		"q1_education":              q.Q1Education,
		"q2_work":                   q.Q2Work,
		"q3_hobbies":                q.Q3Hobbies,
		"q4_siblings":               q.Q4Siblings,
		"q5_importance":             q.Q5Importance,
		"q6_expectations":           q.Q6Expectations,
		"q7_commitment_medical":     q.Q7CommitmentMedical,
		"q8_education_support":      q.Q8EducationSupport,
		"q9_caregiver":              q.Q9Caregiver,
		"q10_challenges":            q.Q10Challenges,
		"q11_instruction_readiness": q.Q11InstructionReady,
		"q12_commitment_level":      q.Q12CommitmentLevel,
	}
}

// SetAnswer writes the answer for a question id. Unknown ids are ignored by
// the caller's validation before this is reached.
func (q *QuestionnaireResponse) SetAnswer(questionID, value string) {
	switch questionID {
	case "q1_education":
		q.Q1Education = value
	case "q2_work":
		q.Q2Work = value
	case "q3_hobbies":
		q.Q3Hobbies = value
	case "q4_siblings":
		q.Q4Siblings = value
	case "q5_importance":
		q.Q5Importance = value
	case "q6_expectations":
		q.Q6Expectations = value
	case "q7_commitment_medical":
		q.Q7CommitmentMedical = value
	case "q8_education_support":
		q.Q8EducationSupport = value
	case "q9_caregiver":
		q.Q9Caregiver = value
	case "q10_challenges":
		q.Q10Challenges = value
	case "q11_instruction_readiness":
		q.Q11InstructionReady = value
	case "q12_commitment_level":
		q.Q12CommitmentLevel = value
	}
}

// AnsweredCount reports how many of the twelve questions are non-empty.
func (q *QuestionnaireResponse) AnsweredCount() int {
	count := 0
	for _, v := range q.Answers() {
		if v != "" {
			count++
		}
	}
	return count
}

type Question struct {
	ID       string   `json:"id"`
	Prompt   string   `json:"prompt"`
	PromptAr string   `json:"promptAr"`
	Options  []string `json:"options"`
}

// Questions is the fixed readiness catalog. Order and option codes are part
// of the wire contract and must stay stable.
var Questions = []Question{
	{
		ID:       "q1_education",
		Prompt:   "What is the highest level of education completed by the mother and father?",
		PromptAr: "ما هو أعلى مستوى تعليمي أكمله كلٌّ من الأم والأب؟",
		Options:  []string{"primary", "middle", "high_school", "bachelors", "masters", "phd", "none"},
	},
	{
		ID:       "q2_work",
		Prompt:   "What kind of work do you do?",
		PromptAr: "ما هو نوع العمل الذي تقومون به؟",
		Options:  []string{"full_time", "part_time", "self_employed", "homemaker", "unemployed", "student"},
	},
	{
		ID:       "q3_hobbies",
		Prompt:   "What are your hobbies or activities you enjoy in your free time?",
		PromptAr: "ما هي هواياتكم أو الأنشطة التي تستمتعون بها في وقت الفراغ؟",
		Options:  []string{"sports", "reading", "arts", "traveling", "socializing", "other"},
	},
	{
		ID:       "q4_siblings",
		Prompt:   "Do your other children attend school regularly? How are they performing?",
		PromptAr: "هل يحضر إخوة الطفل المدرسة بانتظام؟ وكيف هو أداؤهم؟",
		Options:  []string{"yes_well", "yes_average", "yes_struggling", "no_siblings_school"},
	},
	{
		ID:       "q5_importance",
		Prompt:   "Why do you believe hearing and communication are important for your child's future?",
		PromptAr: "لماذا تعتقدون أن السمع والتواصل مهمّان لمستقبل طفلكم؟",
		Options:  []string{"development", "social", "education", "all"},
	},
	{
		ID:       "q6_expectations",
		Prompt:   "How do you imagine your child's life changing after receiving the cochlear implant?",
		PromptAr: "كيف تتخيّلون حياة طفلكم بعد حصوله على زراعة القوقعة؟",
		Options:  []string{"life_changing", "moderate", "slight", "unsure"},
	},
	{
		ID:       "q7_commitment_medical",
		Prompt:   "Are you prepared to bring your child regularly for follow-ups?",
		PromptAr: "هل أنتم مستعدّون لإحضار طفلكم بانتظام للمراجعات؟",
		Options:  []string{"fully_prepared", "with_help", "difficult"},
	},
	{
		ID:       "q8_education_support",
		Prompt:   "What is your approach to your child's education?",
		PromptAr: "ما هو أسلوبكم في دعم تعليم طفلكم؟",
		Options:  []string{"personal", "tutor", "school_only", "unsure"},
	},
	{
		ID:       "q9_caregiver",
		Prompt:   "Who will be primarily responsible for the child's care?",
		PromptAr: "من سيكون المسؤول الأساسي عن رعاية الطفل؟",
		Options:  []string{"mother", "father", "both", "grandparents", "nanny"},
	},
	{
		ID:       "q10_challenges",
		Prompt:   "Have you faced any challenges in the past with attending medical appointments?",
		PromptAr: "هل واجهتم أي صعوبات سابقًا في الالتزام بالمواعيد الطبية؟",
		Options:  []string{"none", "financial", "transportation", "time", "work"},
	},
	{
		ID:       "q11_instruction_readiness",
		Prompt:   "Are you prepared to follow the instructions given by the doctor?",
		PromptAr: "هل أنتم مستعدّون للالتزام بالإرشادات المقدّمة من الطبيب؟",
		Options:  []string{"yes_absolutely", "yes_guidance", "no"},
	},
	{
		ID:       "q12_commitment_level",
		Prompt:   "How committed are you to following these instructions?",
		PromptAr: "ما مدى التزامكم باتباع هذه الإرشادات؟",
		Options:  []string{"very_high", "high", "moderate", "low"},
	},
}

// QuestionByID returns the catalog entry for a question id.
func QuestionByID(id string) (Question, bool) {
	for _, q := range Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
