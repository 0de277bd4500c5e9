package planner

// LessonRecord is one day's generated lesson plan. Fourteen fields are
// authored by the generative service; Knowledge and Skill are copied verbatim
// from the caller's input. Field order mirrors the payload the front end
// renders, so every record always serialises all 16 keys in a stable order.
//
// Values are free text and may carry lightweight markup (bold/underline tags,
// bullet markers, escaped newlines). The backend templates that markup into
// the prompt and passes it back untouched; it never interprets it.
type LessonRecord struct {
	Review         string `json:"rvw"`
	Focus          string `json:"fcs"`
	Vocabulary     string `json:"vcb"`
	Motivation     string `json:"mtv"`
	PriorKnowledge string `json:"apk"`
	Knowledge      string `json:"knowledge"`
	Skill          string `json:"skill"`
	Activities     string `json:"activities"`
	Broadening     string `json:"boc"`
	Values         string `json:"values"`
	Social         string `json:"social"`
	Discipline     string `json:"discipline"`
	Biblical       string `json:"biblical"`
	Evaluation     string `json:"eva"`
	SummaryAction  string `json:"smr_act"`
	Assignment     string `json:"pua"`
}

// BlankRecord returns a record with every AI-authored field empty and the
// pass-through fields set as given. Used for days the caller left blank and
// for days whose generation call failed.
func BlankRecord(knowledge, skill string) LessonRecord {
	return LessonRecord{Knowledge: knowledge, Skill: skill}
}

// aiFields maps the wire key of each AI-authored field to its slot in the
// record. The parser walks this table so missing keys default in one place.
func (r *LessonRecord) aiFields() map[string]*string {
	return map[string]*string{
		"rvw":        &r.Review,
		"fcs":        &r.Focus,
		"vcb":        &r.Vocabulary,
		"mtv":        &r.Motivation,
		"apk":        &r.PriorKnowledge,
		"activities": &r.Activities,
		"boc":        &r.Broadening,
		"values":     &r.Values,
		"social":     &r.Social,
		"discipline": &r.Discipline,
		"biblical":   &r.Biblical,
		"eva":        &r.Evaluation,
		"smr_act":    &r.SummaryAction,
		"pua":        &r.Assignment,
	}
}
