package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/dmitrymomot/notifykit/pkg/async"
	"github.com/dmitrymomot/notifykit/pkg/logger"
	"github.com/dmitrymomot/notifykit/pkg/notifications"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

type options struct {
	req      request
	batch    string
	demo     bool
	metrics  bool
	parallel bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("notify", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.req.Type, "type", string(notifications.CategoryInformative), "notification type: urgent, informative or marketing")
	fs.StringVar(&o.req.Channel, "channel", string(notifications.TransportExchange), "channel: email-exchange, email-smtp, sms or slack")
	fs.StringVar(&o.req.To, "to", "", "recipient: email address, phone number or Slack channel")
	fs.StringVar(&o.req.Subject, "subject", "", "subject")
	fs.StringVar(&o.req.Message, "message", "", "message body")
	fs.StringVar(&o.batch, "batch", "", "YAML file with a list of notifications to send")
	fs.BoolVar(&o.demo, "demo", false, "send the built-in demo batch")
	fs.BoolVar(&o.metrics, "metrics", false, "print Prometheus metrics after sending")
	fs.BoolVar(&o.parallel, "parallel", false, "send batch entries concurrently")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return o, nil
}

// requests returns what the run should send, in order.
func (o options) requests() ([]request, error) {
	switch {
	case o.demo:
		return parseBatch(bytes.NewReader(demoBatch))
	case o.batch != "":
		f, err := os.Open(o.batch)
		if err != nil {
			return nil, fmt.Errorf("open batch: %w", err)
		}
		defer f.Close()
		return parseBatch(f)
	default:
		if err := validate.Struct(o.req); err != nil {
			return nil, fmt.Errorf("-to and -subject are required without -batch or -demo: %w", err)
		}
		return []request{o.req}, nil
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "load config: %v\n", err)
		return exitFailed
	}
	log, err := newLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "configure logger: %v\n", err)
		return exitFailed
	}

	reqs, err := opts.requests()
	if err != nil {
		log.ErrorContext(ctx, "invalid input", logger.Error(err))
		return exitUsage
	}

	reg := prometheus.NewRegistry()
	metrics, err := notifications.NewMetrics(reg)
	if err != nil {
		log.ErrorContext(ctx, "register metrics", logger.Error(err))
		return exitFailed
	}

	d := &dispatcher{
		log:     log,
		metrics: metrics,
		opts: []notifications.Option{
			notifications.WithLogger(log),
			notifications.WithSlackWorkspace(cfg.SlackWorkspace),
		},
	}

	var failed int
	if opts.parallel {
		failed = d.sendParallel(ctx, reqs)
	} else {
		failed = d.sendSequential(ctx, reqs)
	}

	log.InfoContext(ctx, "run finished",
		slog.Int("total", len(reqs)),
		slog.Int("failed", failed),
	)

	if opts.metrics {
		if err := writeMetrics(stdout, reg); err != nil {
			log.ErrorContext(ctx, "write metrics", logger.Error(err))
			return exitFailed
		}
	}

	if failed > 0 {
		return exitFailed
	}
	return exitOK
}

type dispatcher struct {
	log     *slog.Logger
	metrics *notifications.Metrics
	opts    []notifications.Option
}

func (d *dispatcher) notification(ctx context.Context, req request) (notifications.Notification, error) {
	category, transport := resolve(ctx, d.log, req)
	n, err := notifications.New(category, transport, d.opts...)
	if err != nil {
		return nil, err
	}
	return notifications.Instrument(n, d.metrics), nil
}

func (d *dispatcher) sendSequential(ctx context.Context, reqs []request) int {
	var failed int
	for _, req := range reqs {
		n, err := d.notification(ctx, req)
		if err == nil {
			err = n.Send(ctx, req.To, req.Subject, req.Message)
		}
		if err != nil {
			failed++
		}
	}
	return failed
}

func (d *dispatcher) sendParallel(ctx context.Context, reqs []request) int {
	var failed int
	futures := make([]*async.Future[string], 0, len(reqs))
	for _, req := range reqs {
		n, err := d.notification(ctx, req)
		if err != nil {
			failed++
			continue
		}
		futures = append(futures, notifications.SendAsync(ctx, n, req.To, req.Subject, req.Message))
	}
	for _, f := range futures {
		if _, err := f.Await(); err != nil {
			failed++
		}
	}
	return failed
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
