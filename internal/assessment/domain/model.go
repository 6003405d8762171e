package domain

// OptionTranslations carries the localized labels for an answer option.
type OptionTranslations struct {
	Hi string `json:"hi"`
	En string `json:"en"`
}

// QuestionOption is a single selectable answer for a question.
type QuestionOption struct {
	ID                string             `json:"id"`
	Label             string             `json:"label"`
	LabelTranslations OptionTranslations `json:"label_translations"`
}

// Question is one assessment question from the static catalog.
type Question struct {
	ID         string           `json:"id"`
	Text       string           `json:"text"`
	Type       string           `json:"type"` // single_choice
	Options    []QuestionOption `json:"options"`
	Required   bool             `json:"required"`
	CategoryID string           `json:"category_id"`
	Weight     float64          `json:"weight"`
	Lang       string           `json:"lang"`
	CreatedAt  string           `json:"created_at"`
	Order      int              `json:"order"`
}

// Clone returns a copy of the question whose Options slice does not share
// a backing array with the receiver.
func (q Question) Clone() Question {
	out := q
	out.Options = make([]QuestionOption, len(q.Options))
	copy(out.Options, q.Options)
	return out
}

// AssessmentCategory describes one scoring category of the assessment.
type AssessmentCategory struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Theory      string  `json:"theory"`
	Weight      float64 `json:"weight"`
}

// Assessment is the metadata block returned alongside every questions page.
type Assessment struct {
	ID              string               `json:"id"`
	StepType        string               `json:"step_type"`
	Title           string               `json:"title"`
	ScientificBasis string               `json:"scientific_basis"`
	GeneratedAt     string               `json:"generated_at"`
	Categories      []AssessmentCategory `json:"categories"`
}

// Clone returns a copy of the assessment whose Categories slice does not
// share a backing array with the receiver.
func (a Assessment) Clone() Assessment {
	out := a
	out.Categories = make([]AssessmentCategory, len(a.Categories))
	copy(out.Categories, a.Categories)
	return out
}

// PageMeta holds pagination counters plus the assessment metadata.
type PageMeta struct {
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	Total      int        `json:"total"`
	Assessment Assessment `json:"assessment"`
}

// PageLinks holds relative navigation links. Next and Prev are nil at the
// respective edge of the result set.
type PageLinks struct {
	Self string  `json:"self"`
	Next *string `json:"next"`
	Prev *string `json:"prev"`
}

// Pagination defaults. Page and page size fall back to these when the
// request omits them.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// QuestionsRequest is the body of POST /cvp_lite/questions. StudentID is
// accepted but never validated against any store. Page and PageSize are
// pointers so an omitted field is distinguishable from an explicit zero.
type QuestionsRequest struct {
	StudentID  string `json:"student_id"`
	Page       *int   `json:"page,omitempty"`
	PageSize   *int   `json:"page_size,omitempty"`
	CategoryID string `json:"category_id,omitempty"`
}

// QuestionsPage is the response envelope: one page of questions with meta
// and navigation links. Data is always non-nil.
type QuestionsPage struct {
	Data  []Question `json:"data"`
	Meta  PageMeta   `json:"meta"`
	Links PageLinks  `json:"links"`
}
