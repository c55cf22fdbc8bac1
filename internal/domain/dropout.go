package domain

// DropoutRequest carries the child demographic and scheduling fields used to
// classify whether the second dose will arrive on time.
type DropoutRequest struct {
	Gender           string
	Age              int
	TravelTime       int
	ParentEducation  string
	Dose1Date        string
	Dose2Date        string
	DistanceToCenter float64
	DelayDays        int
}

// DropoutPrediction is the classifier's decision payload. Probabilities and
// confidence are percentages.
type DropoutPrediction struct {
	Label              int
	Text               string
	Confidence         float64
	ProbabilityDelayed float64
	ProbabilityOnTime  float64
	RiskLevel          string
}

// ModelMetadata describes the offline training run that produced the
// dropout classifier.
type ModelMetadata struct {
	BestModelName string
	TrainingDate  string
	BestScore     float64
	ModelType     string
}

// DropoutModelInfo is the metadata surface exposed without a prediction.
type DropoutModelInfo struct {
	ModelName      string
	TrainingDate   string
	BestScore      float64
	FeatureColumns []string
	ModelType      string
}

// Classifier predicts a class label with per-class probabilities from a
// scaled feature vector. Probabilities are in class-index order.
type Classifier interface {
	Predict(features []float64) (label int, probabilities []float64, err error)
}
