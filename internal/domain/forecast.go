package domain

// Combination identifies one trained demand model: a district paired with a
// vaccine type.
type Combination struct {
	District string
	Vaccine  string
}

func (c Combination) String() string { return c.District + " - " + c.Vaccine }

// Key is the artifact file-name stem for the combination.
func (c Combination) Key() string { return c.District + "_" + c.Vaccine }

// Window column order the demand models were trained with. The administered
// doses column doubles as the prediction target, so it is both column 0 of
// the input window and the column read back from the inverse transform.
const (
	ColDoses = iota
	ColTemperature
	ColRainfall
	ColStockLeft
	ColHoliday
	WindowColumns
)

// WindowSize is the number of trailing daily records fed to the sequence model.
const WindowSize = 5

// DailyRecord is one historical day of a combination's demand series.
type DailyRecord struct {
	Date              string
	AdministeredDoses float64
	Temperature       float64
	Rainfall          float64
	StockLeft         float64
	Holiday           float64
}

func (r DailyRecord) Row() []float64 {
	row := make([]float64, WindowColumns)
	row[ColDoses] = r.AdministeredDoses
	row[ColTemperature] = r.Temperature
	row[ColRainfall] = r.Rainfall
	row[ColStockLeft] = r.StockLeft
	row[ColHoliday] = r.Holiday
	return row
}

// ForecastRequest carries the current-day signals for one combination.
type ForecastRequest struct {
	District         string
	VaccineType      string
	Temperature      float64
	Rainfall         float64
	StockLeft        int
	HolidayIndicator int
}

// ForecastResult is the decision payload for a single demand prediction.
type ForecastResult struct {
	Model       string
	Prediction  int
	District    string
	VaccineType string
}

// DemandSignals are the shared inputs of a batch forecast across every
// supported combination.
type DemandSignals struct {
	Temperature float64
	Rainfall    float64
	StockLeft   int
	Holiday     int
}

// CombinationDemand is one combination's row in a batch forecast. Failed
// combinations report a reason instead of a count; the batch itself never
// fails.
type CombinationDemand struct {
	District    string
	VaccineType string
	Prediction  int
	Err         string
}

// SequenceModel predicts the next scaled target value from a scaled
// fixed-length window of daily rows.
type SequenceModel interface {
	Predict(window [][]float64) (float64, error)
}
