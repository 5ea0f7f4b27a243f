// Package main runs the epitrend pipeline on the Johns Hopkins global time series:
// it evolves the configured areas, fits their growth trends around the confinement
// dates and exports the results to JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sartorproj/epitrend/analysis"
	"github.com/sartorproj/epitrend/config"
	"github.com/sartorproj/epitrend/confinement"
	"github.com/sartorproj/epitrend/dataset"
	"github.com/sartorproj/epitrend/evolution"
	"github.com/sartorproj/epitrend/logging"
	"github.com/sartorproj/epitrend/trend"
)

func main() {
	configPath := flag.String("config", "", "path to the yaml configuration (default: epitrend.yaml in ./configs or .)")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "epitrend:", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log := logging.New(cfg.LogLevel, os.Stderr)

	// Load already validated every setting.
	start, _ := cfg.StartDate()
	ind, _ := cfg.Indicator()
	kind, _ := cfg.Kind()
	trendCfg, _ := cfg.TrendConfig()
	yesterday, _ := cfg.Yesterday(time.Now())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ds, err := dataset.Load(ctx, cfg.Data.Source, start, log)
	if err != nil {
		return err
	}
	record, err := confinement.ParseFile(cfg.Confinement.Path, log)
	if err != nil {
		return fmt.Errorf("confinement log: %w", err)
	}
	confined := confinement.Reduce(record)

	tr, err := evolution.NewTransformer(ds, cfg.Smooth())
	if err != nil {
		return err
	}
	fitter, err := trend.NewFitter(trendCfg, cfg.Smooth(), log)
	if err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	fmt.Println(strings.Repeat("=", 80))
	p.Printf("%s (Source: Johns Hopkins University)\n", evolution.Title(ind, kind))
	p.Printf("%d countries, %d days from %s\n", len(ds.Confirmed.Countries()), ds.Axis.FilteredLen(), cfg.Data.StartDate)
	fmt.Println(strings.Repeat("=", 80))

	out := Output{
		Indicator: ind.String(),
		Evolution: kind.String(),
		Title:     evolution.Title(ind, kind),
		Generated: time.Now().UTC().Format(time.RFC3339),
	}

	for _, name := range cfg.Analysis.Areas {
		res, err := analyzeArea(tr, fitter, name, ind, kind, confined, yesterday, cfg, log)
		if err != nil {
			log.WithError(err).WithField("area", name).Warn("Skipping area")
			continue
		}
		printArea(p, res)
		out.Areas = append(out.Areas, *res)
	}

	if cfg.Output.Scatter {
		countries := ds.Confirmed.Countries()
		bar := progressbar.Default(int64(len(countries)), "curvature scatter")
		points, err := analysis.CurvatureScatter(tr, ind, kind, cfg.Analysis.Threshold, bar, log)
		if ferr := bar.Finish(); ferr != nil {
			log.WithError(ferr).Debug("Progress bar did not finish")
		}
		if err != nil {
			return fmt.Errorf("curvature scatter: %w", err)
		}
		p.Printf("\nCurvature scatter: %d of %d countries above %v\n", len(points), len(countries), cfg.Analysis.Threshold)
		out.Scatter = newScatter(points)
	}

	if cfg.Output.JSON == "" {
		return nil
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	if err := os.WriteFile(cfg.Output.JSON, data, 0o644); err != nil {
		return err
	}
	fmt.Printf("\nExported %d areas to %s\n", len(out.Areas), cfg.Output.JSON)
	return nil
}

func analyzeArea(
	tr *evolution.Transformer,
	fitter *trend.Fitter,
	name string,
	ind evolution.Indicator,
	kind evolution.Kind,
	confined confinement.Dates,
	yesterday time.Time,
	cfg *config.Config,
	log logrus.FieldLogger,
) (*AreaResult, error) {
	entry := log.WithField("area", name)

	s, err := tr.Evolve(name, ind, kind)
	if err != nil {
		return nil, err
	}
	cum, err := tr.Evolve(name, ind, evolution.Cumulative)
	if err != nil {
		return nil, err
	}
	res := newAreaResult(name, s, cum.Last(), confined)

	if cfg.Trend.Enabled {
		at, err := fitter.Analyze(s, ind, confined.Lookup(name), yesterday)
		if err != nil {
			entry.WithError(err).Warn("No trend")
		} else {
			res.setTrend(at)
		}
	}

	portrait, err := analysis.PhasePortrait(tr, name, ind, cfg.Analysis.Threshold, confined.Lookup(name))
	if err != nil {
		entry.WithError(err).Debug("No phase portrait")
	} else {
		res.Portrait = newPortrait(portrait)
	}
	return res, nil
}

func printArea(p *message.Printer, res *AreaResult) {
	p.Printf("\n%-20s", res.Area)
	if res.Total != nil {
		p.Printf(" total %.0f", *res.Total)
	}
	if res.Confinement != "" {
		p.Printf(", confined %s", res.Confinement)
	}
	p.Printf("\n")
	for _, w := range res.Trends {
		p.Printf("   %-13s fit %s - %s, extrapolated to %s: %s per day\n",
			w.Window, w.FitBegin, w.FitEnd, w.ExtrapolateEnd, w.Label)
	}
}
