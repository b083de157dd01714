package service

import (
	"fmt"

	"golang-stock-sentiment/pkg/common"
)

// ErrorKind classifies a pipeline failure.
type ErrorKind int

const (
	KindMissingInput ErrorKind = iota + 1
	KindFetch
	KindAnalysis
	KindEmptyAnalysis
)

func (k ErrorKind) String() string {
	switch k {
	case KindMissingInput:
		return "missing_input"
	case KindFetch:
		return "fetch_error"
	case KindAnalysis:
		return "analysis_error"
	case KindEmptyAnalysis:
		return "empty_analysis"
	default:
		return "unknown"
	}
}

// PipelineError carries the failing step and its cause. Error() renders the
// text shown to the user, keeping the prefixes existing clients match on.
type PipelineError struct {
	Kind   ErrorKind
	Ticker string
	Err    error
}

func (e *PipelineError) Error() string {
	switch e.Kind {
	case KindMissingInput:
		return common.NoTickerText
	case KindFetch:
		return fmt.Sprintf("%s%s: %v", common.FetchErrorPrefix, e.Ticker, e.Err)
	case KindAnalysis:
		return fmt.Sprintf("%s%v", common.AnalysisErrorPrefix, e.Err)
	case KindEmptyAnalysis:
		return common.NoAnalysisText
	default:
		return fmt.Sprintf("%v", e.Err)
	}
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}
