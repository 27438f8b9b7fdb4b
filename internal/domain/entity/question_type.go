package entity

// QuestionType is the kind of input a question expects.
type QuestionType string

const (
	// QuestionTypeMultipleChoice presents a fixed list of options.
	QuestionTypeMultipleChoice QuestionType = "multiple-choice"
	// QuestionTypeRating asks for a numeric rating.
	QuestionTypeRating QuestionType = "rating"
	// QuestionTypeText accepts free text.
	QuestionTypeText QuestionType = "text"
)

// String returns the string representation of the QuestionType.
func (t QuestionType) String() string {
	return string(t)
}

// IsValid checks if the QuestionType is a valid value.
func (t QuestionType) IsValid() bool {
	switch t {
	case QuestionTypeMultipleChoice, QuestionTypeRating, QuestionTypeText:
		return true
	default:
		return false
	}
}

// HasOptions reports whether questions of this type carry an option list.
func (t QuestionType) HasOptions() bool {
	return t == QuestionTypeMultipleChoice
}
