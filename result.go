package golombcheck

import "fmt"

// PostulateResult is the outcome of one postulate check.
//
// Compliance starts true and is only ever downgraded by a finding, never
// upgraded. Findings and Warnings are ordered, append-only message lists:
// findings invalidate the postulate, warnings are advisory only. A result
// belongs to a single analysis pass and is never reused across sequences.
type PostulateResult struct {
	Compliant bool
	Findings  []string
	Warnings  []string
}

func newResult() PostulateResult {
	return PostulateResult{Compliant: true}
}

// finding appends a compliance-breaking message.
func (r *PostulateResult) finding(format string, args ...any) {
	r.Compliant = false
	r.Findings = append(r.Findings, fmt.Sprintf(format, args...))
}

// warning appends an advisory message. Compliance is unaffected.
func (r *PostulateResult) warning(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// record routes a message by severity. SeverityIgnore drops it.
func (r *PostulateResult) record(sev Severity, format string, args ...any) {
	switch sev {
	case SeverityFinding:
		r.finding(format, args...)
	case SeverityWarning:
		r.warning(format, args...)
	}
}

// ProportionStats carries the postulate-1 percentages and threshold,
// rounded to two decimal places.
type ProportionStats struct {
	ZeroPercent float64 // Share of '0' bits
	OnePercent  float64 // Share of '1' bits
	MinPercent  float64 // Length-dependent minimum either share must reach
}

// Report is the structured result of one full analysis pass.
type Report struct {
	Sequence   string
	Data       *RunData
	Proportion ProportionStats
	Postulate1 PostulateResult // Bit proportion
	Postulate2 PostulateResult // Run-length frequency ordering
	Postulate3 PostulateResult // Structural pattern absence
}

// Result returns the result for postulate 1, 2 or 3, nil otherwise.
func (r *Report) Result(postulate int) *PostulateResult {
	switch postulate {
	case 1:
		return &r.Postulate1
	case 2:
		return &r.Postulate2
	case 3:
		return &r.Postulate3
	}
	return nil
}

// Compliant reports whether all three postulates hold.
func (r *Report) Compliant() bool {
	return r.Postulate1.Compliant && r.Postulate2.Compliant && r.Postulate3.Compliant
}

// Satisfies reports whether every selected postulate holds. Numbers
// outside 1..3 are ignored; an empty selection is trivially satisfied.
func (r *Report) Satisfies(postulates []int) bool {
	for _, p := range postulates {
		if res := r.Result(p); res != nil && !res.Compliant {
			return false
		}
	}
	return true
}

// Analyze runs the full pipeline on one sequence: decompose into runs,
// then evaluate the three postulates. Pure function; every call produces
// fresh results with no carry-over from prior analyses.
func Analyze(sequence string) (*Report, error) {
	data, err := Decompose(sequence)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Sequence: sequence,
		Data:     data,
	}
	report.Postulate1, report.Proportion = checkProportion(data.Bits)
	report.Postulate2 = checkFrequencyOrdering(data.Freq.All)
	report.Postulate3 = checkPatterns(data)

	return report, nil
}
