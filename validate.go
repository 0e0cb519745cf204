package readline

// ValidationStatus classifies a submitted line.
type ValidationStatus int

const (
	// ValidationValid accepts the line; the read terminates.
	ValidationValid ValidationStatus = iota
	// ValidationInvalid rejects the line; editing continues.
	ValidationInvalid
	// ValidationIncomplete defers submission; a line break is inserted
	// and editing continues on the next line.
	ValidationIncomplete
)

// ValidationResult is the outcome of validating a line. Message is an
// optional explanation rendered below the input for Invalid results.
type ValidationResult struct {
	Status  ValidationStatus
	Message string
}

// Validator is consulted when the user presses Enter, and, when
// ValidateWhileTyping reports true, after every buffer mutation.
type Validator interface {
	Validate(line string) ValidationResult
	ValidateWhileTyping() bool
}

// ValidatorFunc adapts a function to the Validator interface with
// validation only at submission time.
type ValidatorFunc func(line string) ValidationResult

func (f ValidatorFunc) Validate(line string) ValidationResult { return f(line) }

func (ValidatorFunc) ValidateWhileTyping() bool { return false }

// MatchingBracketValidator reports Incomplete while round, square or
// curly brackets are unbalanced, enabling multi-line input, and
// Invalid on a closing bracket that never opened.
type MatchingBracketValidator struct {
	// WhileTyping additionally runs the check after every edit.
	WhileTyping bool
}

func (v *MatchingBracketValidator) Validate(line string) ValidationResult {
	var stack []rune
	for _, r := range line {
		switch r {
		case '(', '[', '{':
			stack = append(stack, r)
		case ')', ']', '}':
			if len(stack) == 0 {
				return ValidationResult{Status: ValidationInvalid, Message: "unmatched " + string(r)}
			}
			open := stack[len(stack)-1]
			if !bracketsMatch(open, r) {
				return ValidationResult{
					Status:  ValidationInvalid,
					Message: "mismatched " + string(open) + " closed by " + string(r),
				}
			}
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) > 0 {
		return ValidationResult{Status: ValidationIncomplete}
	}
	return ValidationResult{Status: ValidationValid}
}

func (v *MatchingBracketValidator) ValidateWhileTyping() bool { return v.WhileTyping }

func bracketsMatch(open, closing rune) bool {
	switch open {
	case '(':
		return closing == ')'
	case '[':
		return closing == ']'
	case '{':
		return closing == '}'
	}
	return false
}

var _ Validator = (*MatchingBracketValidator)(nil)
