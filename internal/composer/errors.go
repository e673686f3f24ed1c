package composer

import (
	"errors"
	"fmt"
)

// ErrInvalidSubject is matched by every *InvalidSubjectError.
var ErrInvalidSubject = errors.New("invalid subject")

// Reason identifies which subject rule failed.
type Reason int

const (
	ReasonEmpty Reason = iota
	ReasonTooLong
	ReasonNotCapitalized
	ReasonTrailingPeriod
	ReasonNotImperative
)

func (r Reason) String() string {
	switch r {
	case ReasonEmpty:
		return "Empty"
	case ReasonTooLong:
		return "TooLong"
	case ReasonNotCapitalized:
		return "NotCapitalized"
	case ReasonTrailingPeriod:
		return "TrailingPeriod"
	case ReasonNotImperative:
		return "NotImperative"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// InvalidSubjectError is returned by Compose when the subject breaks a rule.
type InvalidSubjectError struct {
	// Word is the offending first word for ReasonNotImperative.
	Word   string
	Reason Reason
	// Limit is the exceeded length for ReasonTooLong.
	Limit  int
	Length int
}

func (e *InvalidSubjectError) Error() string {
	switch e.Reason {
	case ReasonEmpty:
		return "invalid subject: subject is empty"
	case ReasonTooLong:
		return fmt.Sprintf("invalid subject: %d characters exceeds limit of %d", e.Length, e.Limit)
	case ReasonNotCapitalized:
		return "invalid subject: must start with uppercase letter"
	case ReasonTrailingPeriod:
		return "invalid subject: must not end with a period"
	case ReasonNotImperative:
		return fmt.Sprintf("invalid subject: use imperative mood ('%s' appears to be past or present continuous tense)",
			e.Word)
	default:
		return "invalid subject: " + e.Reason.String()
	}
}

func (*InvalidSubjectError) Unwrap() error {
	return ErrInvalidSubject
}
