package pipeline

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"price-forecast/internal/model"
	"price-forecast/internal/scale"
)

// Params configures one pipeline run.
type Params struct {
	// NInput is the length of each input window (and of the held-out tail).
	NInput int
	// NPredict is the forecast horizon: the length of each target window.
	NPredict int
	// Scaling selects the transform fit on the training-eligible portion.
	Scaling scale.Mode
	// ValidationFraction in [0, 1] is the share of window pairs held for
	// validation.
	ValidationFraction float64
	// Shuffle picks a random split instead of the chronological one
	// (earliest windows train, latest validate). Exactly one of the two is
	// active.
	Shuffle bool
	// Seed makes a shuffled split reproducible; 0 seeds from the clock.
	Seed int64
	// Cutoff, when set, truncates the series to observations at or before
	// this date before any windowing (backtesting against a past end date).
	Cutoff *time.Time
}

func (p Params) Validate() error {
	if p.NInput <= 0 {
		return fmt.Errorf("n_input must be positive, got %d", p.NInput)
	}
	if p.NPredict <= 0 {
		return fmt.Errorf("n_predict must be positive, got %d", p.NPredict)
	}
	if p.ValidationFraction < 0 || p.ValidationFraction > 1 {
		return fmt.Errorf("validation fraction must be in [0, 1], got %g", p.ValidationFraction)
	}
	if _, err := scale.New(p.Scaling); err != nil {
		return err
	}
	return nil
}

// Prepared is the output of Prepare: scaled training/validation window pairs
// with their parallel date windows, the scaled held-out tail used for the
// live forecast, and the scaler fitted for the run.
//
// When InsufficientData is set the truncated series could not supply one full
// input+predict window; every other field is empty and the caller should
// report and skip rather than fail.
type Prepared struct {
	TrainInputs  [][]float64
	ValidInputs  [][]float64
	TrainTargets [][]float64
	ValidTargets [][]float64

	TrainInputDates  [][]time.Time
	ValidInputDates  [][]time.Time
	TrainTargetDates [][]time.Time
	ValidTargetDates [][]time.Time

	HeldOutTail      []float64
	HeldOutTailDates []time.Time

	Scaler scale.Scaler

	InsufficientData bool
}

// Prepare turns a raw price series into training and validation window pairs.
//
// The final NInput points are reserved as the held-out tail and never enter a
// training or validation window. The scaler is fit once, on the remaining
// training-eligible portion only, and the same fitted instance transforms the
// tail. Windows slide with stride 1, each input window immediately followed
// by its NPredict-long target.
func Prepare(series model.PriceSeries, params Params) (*Prepared, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if series.Len() == 0 {
		return nil, fmt.Errorf("price series is empty")
	}

	if params.Cutoff != nil {
		series = series.TruncateAt(*params.Cutoff)
	}
	if params.NInput+params.NPredict > series.Len() {
		return &Prepared{InsufficientData: true}, nil
	}

	prices := series.Prices()
	dates := series.Dates()

	split := len(prices) - params.NInput
	eligible := prices[:split]
	tail := prices[split:]
	eligibleDates := dates[:split]
	tailDates := dates[split:]

	scaler, err := scale.New(params.Scaling)
	if err != nil {
		return nil, err
	}
	// The sufficiency check above guarantees at least NPredict
	// training-eligible points, so there is always data to fit on.
	if err := scaler.Fit(eligible); err != nil {
		return nil, fmt.Errorf("fit scaler: %w", err)
	}
	scaledEligible := scaler.Transform(eligible)
	scaledTail := scaler.Transform(tail)

	inputs, targets, inputDates, targetDates := window(
		scaledEligible, eligibleDates, params.NInput, params.NPredict)

	p := &Prepared{
		HeldOutTail:      scaledTail,
		HeldOutTailDates: tailDates,
		Scaler:           scaler,
	}
	p.split(inputs, targets, inputDates, targetDates, params)
	return p, nil
}

// window slides an NInput-long window with stride 1 over prices, pairing each
// position with the immediately following NPredict values, plus the parallel
// date windows. For len(prices) <= NInput+NPredict it produces no pairs.
func window(prices []float64, dates []time.Time, nInput, nPredict int) (
	inputs, targets [][]float64, inputDates, targetDates [][]time.Time,
) {
	n := len(prices) - nInput - nPredict
	if n <= 0 {
		return nil, nil, nil, nil
	}
	inputs = make([][]float64, 0, n)
	targets = make([][]float64, 0, n)
	inputDates = make([][]time.Time, 0, n)
	targetDates = make([][]time.Time, 0, n)
	for idx := 0; idx < n; idx++ {
		inputs = append(inputs, prices[idx:idx+nInput])
		targets = append(targets, prices[idx+nInput:idx+nInput+nPredict])
		inputDates = append(inputDates, dates[idx:idx+nInput])
		targetDates = append(targetDates, dates[idx+nInput:idx+nInput+nPredict])
	}
	return inputs, targets, inputDates, targetDates
}

// split partitions the window pairs. ValidationFraction rounds up to whole
// windows, so any non-zero fraction with at least one pair yields at least
// one validation window.
func (p *Prepared) split(
	inputs, targets [][]float64,
	inputDates, targetDates [][]time.Time,
	params Params,
) {
	n := len(inputs)
	nValid := int(math.Ceil(params.ValidationFraction * float64(n)))
	if nValid > n {
		nValid = n
	}
	nTrain := n - nValid

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if params.Shuffle {
		seed := params.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rand.New(rand.NewSource(seed)).Shuffle(n, func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
	}

	for i, idx := range order {
		if i < nTrain {
			p.TrainInputs = append(p.TrainInputs, inputs[idx])
			p.TrainTargets = append(p.TrainTargets, targets[idx])
			p.TrainInputDates = append(p.TrainInputDates, inputDates[idx])
			p.TrainTargetDates = append(p.TrainTargetDates, targetDates[idx])
		} else {
			p.ValidInputs = append(p.ValidInputs, inputs[idx])
			p.ValidTargets = append(p.ValidTargets, targets[idx])
			p.ValidInputDates = append(p.ValidInputDates, inputDates[idx])
			p.ValidTargetDates = append(p.ValidTargetDates, targetDates[idx])
		}
	}
}
