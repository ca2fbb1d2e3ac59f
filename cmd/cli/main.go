package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"price-forecast/internal/analysis"
	"price-forecast/internal/config"
	"price-forecast/internal/data"
	"price-forecast/internal/model"
	"price-forecast/internal/pipeline"
	"price-forecast/internal/predictor"
	"price-forecast/internal/render"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "forecast":
		cmdForecast(os.Args[2:])
	case "score":
		cmdScore(os.Args[2:])
	case "compare":
		cmdCompare(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli forecast --data prices.csv --config examples/config.yaml --out results/eval.csv")
	fmt.Println("  cli score --actual 10,20 --predicted 12,18")
	fmt.Println("  cli compare --data prices.csv --config examples/config.yaml")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - forecast prints the prediction and its validation KPIs; --out writes the eval ledger CSV")
	fmt.Println("  - compare ranks all built-in predictors on the same windows")
}

func cmdForecast(args []string) {
	fs := flag.NewFlagSet("forecast", flag.ExitOnError)
	dataPath := fs.String("data", "", "Path to price series (.csv or .json)")
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	outPath := fs.String("out", "", "Optional path to write the eval ledger CSV")
	predName := fs.String("predictor", "", "Override the configured predictor (naive, trend, sma)")
	_ = fs.Parse(args)

	if *dataPath == "" {
		fmt.Println("--data is required")
		os.Exit(2)
	}

	series := loadSeries(*dataPath)
	cfg := loadConfig(*cfgPath)
	if *predName != "" {
		cfg.Predictor.Name = *predName
		cfg.Predictor.Params = nil
	}

	params, err := cfg.PipelineParams()
	if err != nil {
		fatal(err)
	}
	pred, err := predictor.New(cfg.Predictor.Name, cfg.Predictor.Params)
	if err != nil {
		fatal(err)
	}

	prep, err := pipeline.Prepare(series, params)
	if err != nil {
		fatal(err)
	}
	if prep.InsufficientData {
		fmt.Println("Cannot train enough input days to predict with the loaded series")
		os.Exit(1)
	}

	eval, err := pipeline.Evaluate(prep, pred)
	if err != nil {
		fatal(err)
	}

	truncated := series
	if params.Cutoff != nil {
		truncated = series.TruncateAt(*params.Cutoff)
	}
	fc, err := pipeline.Forecast(prep.HeldOutTail, truncated.FutureDates(params.NPredict), pred, prep.Scaler)
	if err != nil {
		fatal(err)
	}

	fmt.Printf("Loaded %d observations (%s to %s), predictor=%s\n\n",
		series.Len(),
		series.Points()[0].Date.Format("2006-01-02"),
		series.Last().Date.Format("2006-01-02"),
		pred.Name(),
	)
	fmt.Println(render.PredictionTable(truncated.Last().Price, fc))

	if len(eval.Rows) > 0 {
		fmt.Println(render.KPITable(eval.Aggregate))
		last := eval.Rows[len(eval.Rows)-1]
		fmt.Println("Latest validation window:")
		fmt.Println(render.ComparisonRows(last.TargetDates, last.Actual, last.Predicted))
	} else {
		fmt.Println("No validation windows (validation fraction 0 or too few pairs); skipping KPIs")
	}

	if *outPath != "" && len(eval.Rows) > 0 {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			fatal(err)
		}
		if err := pipeline.WriteEvalCSV(*outPath, eval.Rows); err != nil {
			fatal(err)
		}
		fmt.Printf("Wrote eval ledger to %s\n", *outPath)
	}
}

func cmdScore(args []string) {
	fs := flag.NewFlagSet("score", flag.ExitOnError)
	actualArg := fs.String("actual", "", "Comma-separated actual values")
	predictedArg := fs.String("predicted", "", "Comma-separated predicted values")
	_ = fs.Parse(args)

	actual := parseFloats(*actualArg)
	predicted := parseFloats(*predictedArg)

	card, err := pipeline.Score(actual, predicted)
	if err != nil {
		fatal(err)
	}
	fmt.Println(render.KPITable(card))
}

func cmdCompare(args []string) {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	dataPath := fs.String("data", "", "Path to price series (.csv or .json)")
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	_ = fs.Parse(args)

	if *dataPath == "" {
		fmt.Println("--data is required")
		os.Exit(2)
	}

	series := loadSeries(*dataPath)
	cfg := loadConfig(*cfgPath)
	params, err := cfg.PipelineParams()
	if err != nil {
		fatal(err)
	}

	prep, err := pipeline.Prepare(series, params)
	if err != nil {
		fatal(err)
	}
	if prep.InsufficientData {
		fmt.Println("Cannot train enough input days to predict with the loaded series")
		os.Exit(1)
	}

	ranks := analysis.RankPredictors(prep, predictor.Names())
	if len(ranks) == 0 {
		fmt.Println("No predictor produced validation results (check validation_fraction)")
		os.Exit(1)
	}
	fmt.Println(render.RankTable(ranks))
}

func loadSeries(path string) model.PriceSeries {
	var (
		series model.PriceSeries
		err    error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		series, err = data.LoadSeriesJSON(path)
	default:
		series, err = data.LoadSeriesCSV(path)
	}
	if err != nil {
		fatal(err)
	}
	return series
}

func loadConfig(path string) config.Config {
	if path == "" {
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fatal(err)
	}
	return *cfg
}

func parseFloats(s string) []float64 {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			fatal(fmt.Errorf("bad value %q: %w", p, err))
		}
		out = append(out, v)
	}
	return out
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
