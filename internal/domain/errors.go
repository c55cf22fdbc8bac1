package domain

import "errors"

var (
	ErrCombinationNotSupported = errors.New("no model available for this district and vaccine type")
	ErrArtifactNotFound        = errors.New("model artifact not found")
	ErrInvalidDate             = errors.New("invalid date value")
	ErrUnknownCategory         = errors.New("unknown category value")
	ErrDimensionMismatch       = errors.New("feature vector dimension mismatch")
	ErrNonFiniteFeature        = errors.New("feature value is not finite")
	ErrClusterNotInSummary     = errors.New("cluster id not present in cluster summary")
	ErrMetadataUnavailable     = errors.New("model metadata not available")
)
