package domain

// ForecastBundle is the co-loaded artifact set for one demand combination.
type ForecastBundle struct {
	Scaler *Scaler
	Model  SequenceModel
}

// DropoutBundle is the co-loaded artifact set for the dropout classifier.
// Metadata is optional; the classifier serves predictions without it.
type DropoutBundle struct {
	Metadata       *ModelMetadata
	Model          Classifier
	Scaler         *Scaler
	Encoders       LabelEncoders
	FeatureColumns []string
}

// ClusterBundle is the co-loaded artifact set for the zero-dose profiler.
type ClusterBundle struct {
	Scaler  *Scaler
	Model   ClusterModel
	Summary ClusterSummary
}

// ArtifactStore loads and caches pre-trained artifact bundles. Bundles are
// immutable once returned and shared across requests for the process
// lifetime; a failed load must leave the store empty so a later request can
// retry.
type ArtifactStore interface {
	Forecast(key Combination) (*ForecastBundle, error)
	Dropout() (*DropoutBundle, error)
	Cluster() (*ClusterBundle, error)
}
