package artifact

import (
	"fmt"

	onnxruntime "github.com/yalue/onnxruntime_go"

	"vaccineai-service/internal/domain"
)

// The offline training pipeline exports every model to ONNX: the Keras
// sequence models keep float32 tensors, the sklearn classifier and k-means
// models keep float64 (their sklearn-onnx defaults).

func initRuntime() error {
	if err := onnxruntime.InitializeEnvironment(); err != nil {
		return fmt.Errorf("initialize onnx runtime: %w", err)
	}
	return nil
}

// sequenceSession wraps an exported sequence model with one float32 input of
// shape [1, timesteps, columns] and a single scaled scalar output.
type sequenceSession struct {
	session   *onnxruntime.DynamicAdvancedSession
	timesteps int
	columns   int
}

func openSequenceModel(path string, timesteps, columns int) (domain.SequenceModel, error) {
	if err := initRuntime(); err != nil {
		return nil, err
	}
	options, err := onnxruntime.NewSessionOptions()
	if err != nil {
		return nil, fmt.Errorf("create session options: %w", err)
	}
	defer options.Destroy()

	session, err := onnxruntime.NewDynamicAdvancedSession(path,
		[]string{"input"}, []string{"output"}, options)
	if err != nil {
		return nil, fmt.Errorf("load sequence model %s: %w", path, err)
	}
	return &sequenceSession{session: session, timesteps: timesteps, columns: columns}, nil
}

func (m *sequenceSession) Predict(window [][]float64) (float64, error) {
	if len(window) != m.timesteps {
		return 0, fmt.Errorf("%w: window has %d rows, model expects %d", domain.ErrDimensionMismatch, len(window), m.timesteps)
	}
	flat := make([]float32, 0, m.timesteps*m.columns)
	for _, row := range window {
		if len(row) != m.columns {
			return 0, fmt.Errorf("%w: window row has %d columns, model expects %d", domain.ErrDimensionMismatch, len(row), m.columns)
		}
		for _, v := range row {
			flat = append(flat, float32(v))
		}
	}

	inputTensor, err := onnxruntime.NewTensor(onnxruntime.NewShape(1, int64(m.timesteps), int64(m.columns)), flat)
	if err != nil {
		return 0, fmt.Errorf("create input tensor: %w", err)
	}
	defer inputTensor.Destroy()

	output := make([]float32, 1)
	outputTensor, err := onnxruntime.NewTensor(onnxruntime.NewShape(1, 1), output)
	if err != nil {
		return 0, fmt.Errorf("create output tensor: %w", err)
	}
	defer outputTensor.Destroy()

	if err := m.session.Run([]onnxruntime.Value{inputTensor}, []onnxruntime.Value{outputTensor}); err != nil {
		return 0, fmt.Errorf("sequence inference: %w", err)
	}
	return float64(output[0]), nil
}

// classifierSession wraps an exported classifier with "output" (int64 label)
// and "probabilities" (float64, one per class) outputs.
type classifierSession struct {
	session *onnxruntime.DynamicAdvancedSession
	classes int
}

func openClassifier(path string, classes int) (domain.Classifier, error) {
	if err := initRuntime(); err != nil {
		return nil, err
	}
	options, err := onnxruntime.NewSessionOptions()
	if err != nil {
		return nil, fmt.Errorf("create session options: %w", err)
	}
	defer options.Destroy()

	session, err := onnxruntime.NewDynamicAdvancedSession(path,
		[]string{"input"}, []string{"output", "probabilities"}, options)
	if err != nil {
		return nil, fmt.Errorf("load classifier %s: %w", path, err)
	}
	return &classifierSession{session: session, classes: classes}, nil
}

func (m *classifierSession) Predict(features []float64) (int, []float64, error) {
	inputTensor, err := onnxruntime.NewTensor(onnxruntime.NewShape(1, int64(len(features))), features)
	if err != nil {
		return 0, nil, fmt.Errorf("create input tensor: %w", err)
	}
	defer inputTensor.Destroy()

	label := make([]int64, 1)
	labelTensor, err := onnxruntime.NewTensor(onnxruntime.NewShape(1), label)
	if err != nil {
		return 0, nil, fmt.Errorf("create label tensor: %w", err)
	}
	defer labelTensor.Destroy()

	probabilities := make([]float64, m.classes)
	probTensor, err := onnxruntime.NewTensor(onnxruntime.NewShape(1, int64(m.classes)), probabilities)
	if err != nil {
		return 0, nil, fmt.Errorf("create probabilities tensor: %w", err)
	}
	defer probTensor.Destroy()

	inputs := []onnxruntime.Value{inputTensor}
	outputs := []onnxruntime.Value{labelTensor, probTensor}
	if err := m.session.Run(inputs, outputs); err != nil {
		return 0, nil, fmt.Errorf("classifier inference: %w", err)
	}

	probs := make([]float64, m.classes)
	copy(probs, probabilities)
	return int(label[0]), probs, nil
}

// clusterSession wraps an exported k-means model with a single "label" output.
type clusterSession struct {
	session *onnxruntime.DynamicAdvancedSession
}

func openClusterModel(path string) (domain.ClusterModel, error) {
	if err := initRuntime(); err != nil {
		return nil, err
	}
	options, err := onnxruntime.NewSessionOptions()
	if err != nil {
		return nil, fmt.Errorf("create session options: %w", err)
	}
	defer options.Destroy()

	session, err := onnxruntime.NewDynamicAdvancedSession(path,
		[]string{"input"}, []string{"label"}, options)
	if err != nil {
		return nil, fmt.Errorf("load cluster model %s: %w", path, err)
	}
	return &clusterSession{session: session}, nil
}

func (m *clusterSession) Assign(features []float64) (int, error) {
	inputTensor, err := onnxruntime.NewTensor(onnxruntime.NewShape(1, int64(len(features))), features)
	if err != nil {
		return 0, fmt.Errorf("create input tensor: %w", err)
	}
	defer inputTensor.Destroy()

	label := make([]int64, 1)
	labelTensor, err := onnxruntime.NewTensor(onnxruntime.NewShape(1), label)
	if err != nil {
		return 0, fmt.Errorf("create label tensor: %w", err)
	}
	defer labelTensor.Destroy()

	if err := m.session.Run([]onnxruntime.Value{inputTensor}, []onnxruntime.Value{labelTensor}); err != nil {
		return 0, fmt.Errorf("cluster inference: %w", err)
	}
	return int(label[0]), nil
}
