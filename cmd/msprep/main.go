package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/cwsl/msprep"
)

func main() {
	configPath := flag.String("config", "msprep.yaml", "path to the engine configuration file")
	inputFile := flag.String("input", "", "spectrum file to preprocess")
	firstScan := flag.Int("first-scan", 0, "first scan number to load")
	metricsListen := flag.String("metrics-listen", "", "address to serve Prometheus metrics on (empty disables)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	log := msprep.NewLogger(*debug)

	cfg, err := msprep.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	if *inputFile == "" {
		log.Fatal("missing required -input flag")
	}

	registry := prometheus.NewRegistry()
	metrics := msprep.NewMetrics(registry)
	if *metricsListen != "" {
		go serveMetrics(*metricsListen, registry, log)
	}

	reader, err := msprep.OpenReader(*inputFile, cfg.InputType)
	if err != nil {
		log.Fatalf("failed to open %s: %v", *inputFile, err)
	}

	pool := msprep.NewBufferPool(cfg.NumThreads+1, cfg.MaxArraySize())
	results := msprep.NewResultQueue()
	charges := msprep.NewChargeState()
	errs := msprep.NewErrorSink()

	prep := msprep.NewSpectrumPreprocessor(cfg, pool, results, charges, errs, metrics, log)
	intake := msprep.NewIntakeLoop(cfg, prep, errs, metrics, log)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	start := time.Now()
	if err := intake.Run(ctx, reader, *inputFile, int32(*firstScan)); err != nil {
		log.Fatalf("preprocessing run failed: %v", err)
	}

	log.Infof("preprocessing finished in %s: %d queries produced, max fragment charge observed %d",
		time.Since(start), results.Len(), charges.Observed())
}

// serveMetrics runs a minimal Prometheus exposition server, the same role
// the teacher's own /metrics endpoint plays for its decode counters.
func serveMetrics(listen string, registry *prometheus.Registry, log *logrus.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	log.Infof("serving metrics on %s/metrics", listen)
	if err := http.ListenAndServe(listen, mux); err != nil {
		log.Errorf("metrics server stopped: %v", err)
	}
}
