package service

import "fmt"

// InvalidConfigError reports a quiz config value outside its allowed range.
type InvalidConfigError struct {
	Field  string
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid quiz config: %s %s", e.Field, e.Reason)
}

// InsufficientCardsError reports that fewer cards are eligible than the
// config asks for. Recoverable: reduce the question count or clear history.
type InsufficientCardsError struct {
	Requested int
	Eligible  int
	Excluded  int
}

func (e *InsufficientCardsError) Error() string {
	if e.Excluded > 0 {
		return fmt.Sprintf("only %d eligible cards remain (%d excluded by history), %d questions requested; reduce question count or clear history",
			e.Eligible, e.Excluded, e.Requested)
	}
	return fmt.Sprintf("only %d eligible cards remain, %d questions requested; reduce question count",
		e.Eligible, e.Requested)
}

// InsufficientPoolError reports that a question cannot gather enough distinct
// wrong answers. Recoverable: reduce the choice count or allow answer reuse.
type InsufficientPoolError struct {
	Needed    int
	Available int
}

func (e *InsufficientPoolError) Error() string {
	return fmt.Sprintf("only %d distinct wrong answers available, %d needed; reduce choice count or allow answer reuse",
		e.Available, e.Needed)
}
