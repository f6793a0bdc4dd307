package domain

import (
	"errors"
	"fmt"
)

// ErrValidation is the root of every input error. Handlers map it to 400.
var ErrValidation = errors.New("validation error")

var (
	ErrNoMetrics           = fmt.Errorf("%w: at least one metric is required", ErrValidation)
	ErrNoDimensions        = fmt.Errorf("%w: at least one dimension is required", ErrValidation)
	ErrUnknownMetric       = fmt.Errorf("%w: unknown metric", ErrValidation)
	ErrUnknownDimension    = fmt.Errorf("%w: unknown dimension", ErrValidation)
	ErrDuplicateMetric     = fmt.Errorf("%w: duplicate metric", ErrValidation)
	ErrDuplicateDimension  = fmt.Errorf("%w: duplicate dimension", ErrValidation)
	ErrUnknownPreset       = fmt.Errorf("%w: unknown preset", ErrValidation)
	ErrInvalidDate         = fmt.Errorf("%w: invalid date", ErrValidation)
	ErrInvalidDateRange    = fmt.Errorf("%w: start date is after end date", ErrValidation)
	ErrIncompleteDateRange = fmt.Errorf("%w: both start and end are required", ErrValidation)
	ErrMissingDateRange    = fmt.Errorf("%w: a start/end pair or a preset is required", ErrValidation)
	ErrInvalidThresholds   = fmt.Errorf("%w: review_max must be below excellent_min", ErrValidation)
	ErrRankingInput        = fmt.Errorf("%w: ranking needs rows grouped by chatter only", ErrValidation)
	ErrRankingScope        = fmt.Errorf("%w: persisted rankings must cover a single date", ErrValidation)
)
