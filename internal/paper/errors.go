package paper

import "fmt"

// InputError reports a path that could not be opened or decoded as a PDF.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("input %s: unreadable", e.Path)
	}
	return fmt.Sprintf("input %s: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// ExtractionWarning describes a page or table that was dropped during table
// extraction. It is logged, never returned.
type ExtractionWarning struct {
	Path  string
	Page  int
	Table int
	Err   error
}

func (e *ExtractionWarning) Error() string {
	if e.Table > 0 {
		return fmt.Sprintf("%s: page %d: table %d skipped: %v", e.Path, e.Page, e.Table, e.Err)
	}
	return fmt.Sprintf("%s: page %d skipped: %v", e.Path, e.Page, e.Err)
}

func (e *ExtractionWarning) Unwrap() error {
	return e.Err
}

// recovered turns a decoder panic into an error.
func recovered(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("%v", r)
}
