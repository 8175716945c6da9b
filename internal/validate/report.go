package validate

import "fmt"

// Report collects everything wrong with a workbook in one pass, so a
// user can fix the whole sheet in a single edit cycle. Errors block the
// run; warnings describe values that were defaulted or dropped.
type Report struct {
	Errors   []string
	Warnings []string
}

// OK reports whether the workbook is usable. Warnings alone do not
// block a run.
func (r *Report) OK() bool { return len(r.Errors) == 0 }

func (r *Report) errorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Report) warnf(format string, args ...interface{}) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}
