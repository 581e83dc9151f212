package main

import (
	"flag"
	"log"
	"math/rand"

	pyroscope "github.com/grafana/pyroscope-go"
	"github.com/yanun0323/logs"
	"github.com/yanun0323/pkg/sys"

	"main/internal/app"
	"main/internal/gen"
	"main/internal/ops"
)

func main() {
	configPath := flag.String("config", "", "Path to JSON config")
	dataDir := flag.String("data-dir", "", "Input file directory (overrides config)")
	outDir := flag.String("out-dir", "", "Output file directory (overrides config)")
	generate := flag.Bool("generate", false, "Generate input files before the run")
	seed := flag.Int64("seed", 0, "Random seed (overrides config)")
	pyroscopeURL := flag.String("pyroscope-url", "", "Pyroscope server address (empty=disabled)")
	flag.Parse()

	loaded, err := ops.Load(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if *dataDir != "" {
		loaded.DataDir = *dataDir
	}
	if *outDir != "" {
		loaded.OutDir = *outDir
	}
	if *seed != 0 {
		loaded.Seed = *seed
	}

	if *pyroscopeURL != "" {
		profiler, err := pyroscope.Start(pyroscope.Config{
			ApplicationName: "bond/trading",
			ServerAddress:   *pyroscopeURL,
			Tags: map[string]string{
				"env": "local",
			},
			ProfileTypes: []pyroscope.ProfileType{
				pyroscope.ProfileCPU,
				pyroscope.ProfileAllocObjects,
				pyroscope.ProfileAllocSpace,
				pyroscope.ProfileInuseObjects,
				pyroscope.ProfileInuseSpace,
			},
		})
		if err != nil {
			log.Fatalf("pyroscope start failed: %v", err)
		}
		defer func() {
			_ = profiler.Stop()
		}()
	}

	if *generate {
		generator, err := gen.NewGenerator(loaded.Registry, rand.New(rand.NewSource(loaded.Seed)))
		if err != nil {
			log.Fatalf("generator init failed: %v", err)
		}
		if err := generator.WriteAll(loaded.DataDir); err != nil {
			log.Fatalf("input generation failed: %v", err)
		}
		logs.Infof("generated input files in %s", loaded.DataDir)
	}

	pipeline, err := app.New(loaded)
	if err != nil {
		log.Fatalf("pipeline init failed: %v", err)
	}
	defer func() {
		if err := pipeline.Close(); err != nil {
			logs.Errorf("pipeline close failed: %v", err)
		}
	}()

	done := make(chan error, 1)
	go func() {
		done <- pipeline.Run(loaded.DataDir)
	}()
	select {
	case err := <-done:
		if err != nil {
			log.Fatalf("run failed: %v", err)
		}
	case <-sys.Shutdown():
		logs.Info("interrupted, closing outputs")
		return
	}

	for _, sector := range pipeline.Risk.Sectors() {
		risk, err := pipeline.Risk.BucketedRisk(sector)
		if err != nil {
			logs.Errorf("bucketed risk for %s failed: %v", sector.Name, err)
			continue
		}
		logs.Infof("bucketed risk of %s is %s", sector.Name, risk.Value)
	}
}
