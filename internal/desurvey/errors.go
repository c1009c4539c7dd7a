package desurvey

import "errors"

// Error taxonomy. Construction errors mean the survey data is unusable for
// the hole; query errors fail a single call without corrupting the model.
// Nothing here is transient or worth retrying.
var (
	// ErrInvalidSurveyOrder reports a station list whose measured depths
	// are not strictly increasing once the depth-0 virtual station is
	// prepended, or an empty station list.
	ErrInvalidSurveyOrder = errors.New("desurvey: survey depths must be strictly increasing")

	// ErrDepthExceedsCollar reports a survey station deeper than the
	// collar's recorded total depth.
	ErrDepthExceedsCollar = errors.New("desurvey: collar total depth shallower than deepest survey")

	// ErrDepthOutOfRange reports a queried depth outside [0, TotalDepth].
	// Out-of-range depths are never clamped.
	ErrDepthOutOfRange = errors.New("desurvey: depth outside hole range")

	// ErrUnknownMethod reports an unrecognised desurvey method selector.
	ErrUnknownMethod = errors.New("desurvey: unknown method")

	// ErrNumericDegeneracy reports a non-finite coordinate. Valid surveys
	// never produce one; treat it as an assertion failure, not a condition
	// to recover from.
	ErrNumericDegeneracy = errors.New("desurvey: non-finite result")
)
