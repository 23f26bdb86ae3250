package main

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/seedsearch/frame"
	"github.com/katalvlaran/seedsearch/internal/logging"
	"github.com/katalvlaran/seedsearch/internal/metrics"
	"github.com/katalvlaran/seedsearch/search"
	"github.com/katalvlaran/seedsearch/wondercard"
)

func newSearchCmd(a *app) *cobra.Command {
	var limit uint64

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search the criteria's seed space and print matching frames",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runSearch(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), limit)
		},
	}
	cmd.Flags().Uint64Var(&limit, "limit", 0, "stop after this many results, 0 for no limit")
	return cmd
}

func (a *app) runSearch(ctx context.Context, stdout, stderr io.Writer, limit uint64) error {
	c, err := a.loadCriteria()
	if err != nil {
		return err
	}

	log := a.log.With("run_id", uuid.NewString())
	log.Info("search started",
		"version", c.Version.String(),
		"seeds", c.ExpectedNumberOfSeeds(),
		"frames", search.FrameRange{Min: c.MinFrame, Max: c.MaxFrame}.Len(),
		"expected_results", c.ExpectedNumberOfResults(),
		"workers", a.env.Workers)

	reg := prometheus.NewRegistry()
	rec := metrics.New(reg)
	if a.env.MetricsAddr != "" {
		stopServer, err := serveMetrics(a.env.MetricsAddr, reg, log)
		if err != nil {
			return err
		}
		defer stopServer()
		log.Info("serving metrics", "addr", a.env.MetricsAddr)
	}

	out := newResultWriter(stdout, limit)
	onResult := func(f frame.WonderCard) {
		if err := out.write(f); err != nil {
			log.Error("writing result", "error", err)
		}
	}

	progress := newProgressLine(stderr)
	stopped := false
	onProgress := func(p search.Progress) bool {
		progress.update(p)
		log.Debug("progress", "done", p.Done, "total", p.Total)
		if out.full() {
			stopped = true
			return false
		}
		return true
	}

	start := time.Now()
	err = wondercard.Search(c, rec.WrapResult(onResult), rec.WrapProgress(onProgress),
		search.WithContext(ctx),
		search.WithWorkers(a.env.Workers),
		search.WithProgressInterval(a.env.ProgressInterval),
	)
	progress.finish()
	elapsed := time.Since(start)

	switch {
	case err != nil:
		rec.Finish(metrics.OutcomeFailed, elapsed)
		log.Error("search failed", "error", err, "elapsed", elapsed)
		return err
	case stopped:
		rec.Finish(metrics.OutcomeStopped, elapsed)
	default:
		rec.Finish(metrics.OutcomeCompleted, elapsed)
	}
	log.Info("search finished", "results", out.count(), "stopped", stopped, "elapsed", elapsed)
	return nil
}

// serveMetrics serves reg on addr until the returned stop function is called.
func serveMetrics(addr string, reg *prometheus.Registry, log *logging.Logger) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(reg))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server stopped", "error", err)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
