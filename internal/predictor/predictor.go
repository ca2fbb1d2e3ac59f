package predictor

import "fmt"

// Predictor maps a fixed-length numeric input window to a fixed-length
// output window. The pipeline treats it as an opaque capability: how the
// values are produced (trained model, heuristic, remote call) is the
// implementer's business. Predict is a single blocking call; callers wanting
// timeouts wrap it externally.
type Predictor interface {
	Name() string
	Predict(window []float64, horizon int) ([]float64, error)
}

// New builds a predictor by name with optional parameters, mirroring how
// strategies are configured: a name plus a loose params map from YAML or a
// request body.
func New(name string, params map[string]any) (Predictor, error) {
	switch name {
	case "naive":
		return &Naive{}, nil
	case "trend":
		return &Trend{}, nil
	case "sma":
		period := int(numParam(params, "period", defaultSMAPeriod))
		if period <= 0 {
			return nil, fmt.Errorf("sma period must be positive, got %d", period)
		}
		return &SMA{Period: period}, nil
	default:
		return nil, fmt.Errorf("unsupported predictor: %q", name)
	}
}

// Names lists the built-in predictors in sorted order.
func Names() []string {
	return []string{"naive", "sma", "trend"}
}

func numParam(m map[string]any, key string, def float64) float64 {
	if m == nil {
		return def
	}
	v, ok := m[key]
	if !ok || v == nil {
		return def
	}
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int64:
		return float64(x)
	default:
		return def
	}
}
