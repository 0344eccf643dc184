package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"clubrelay/config"
	"clubrelay/internal/delivery/api/middleware"
	"clubrelay/internal/domain/entity"
	logs "clubrelay/internal/infra/log"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
)

const sweepRequestTimeout = 2 * time.Minute

type sweepFlags struct {
	cmd    *flag.FlagSet
	url    *string
	dryRun *bool
}

type scheduleFlags struct {
	cmd  *flag.FlagSet
	url  *string
	spec *string
}

// sweepClient calls the relay's sweep endpoint with the shared secret.
type sweepClient struct {
	http   *http.Client
	url    string
	secret string
}

func newSweepClient(cfg *config.Config, override string) (*sweepClient, error) {
	target := strings.TrimSpace(override)
	if target == "" {
		target = cfg.Deletion.SweepURL
	}
	if target == "" {
		return nil, errors.New("-url or deletion.sweepUrl is required")
	}
	if cfg.Deletion.SweepSecret == "" {
		return nil, errors.New("deletion.sweepSecret is required")
	}

	return &sweepClient{
		http:   &http.Client{Timeout: sweepRequestTimeout},
		url:    target,
		secret: cfg.Deletion.SweepSecret,
	}, nil
}

func (c *sweepClient) trigger(ctx context.Context, dryRun bool) (*entity.SweepReport, error) {
	target, err := url.Parse(c.url)
	if err != nil {
		return nil, errors.Wrap(err, "invalid sweep url")
	}
	q := target.Query()
	q.Set("dryRun", strconv.FormatBool(dryRun))
	target.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build sweep request")
	}
	req.Header.Set(middleware.HeaderSweepSecret, c.secret)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "sweep request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read sweep response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("sweep returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var report entity.SweepReport
	if err := json.Unmarshal(body, &report); err != nil {
		return nil, errors.Wrap(err, "failed to decode sweep report")
	}

	return &report, nil
}

func handleSweep(ctx context.Context, flags *ctlFlags) error {
	if err := flags.Sweep.cmd.Parse(argsAfterCommand()); err != nil {
		return errors.Wrap(err, "failed to parse sweep flags")
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	client, err := newSweepClient(cfg, *flags.Sweep.url)
	if err != nil {
		return err
	}

	report, err := client.trigger(ctx, *flags.Sweep.dryRun)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return errors.WithStack(err)
	}
	fmt.Println(string(out))

	if report.Failed > 0 {
		return errors.Errorf("%d of %d requests failed", report.Failed, report.Processed)
	}

	return nil
}

func handleSchedule(ctx context.Context, flags *ctlFlags) error {
	if err := flags.Schedule.cmd.Parse(argsAfterCommand()); err != nil {
		return errors.Wrap(err, "failed to parse schedule flags")
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	client, err := newSweepClient(cfg, *flags.Schedule.url)
	if err != nil {
		return err
	}

	spec := strings.TrimSpace(*flags.Schedule.spec)
	if spec == "" {
		spec = cfg.Deletion.SweepSchedule
	}
	if spec == "" {
		return errors.New("-cron or deletion.sweepSchedule is required")
	}

	scheduler, err := newSweepScheduler(ctx, client, spec, logger)
	if err != nil {
		return err
	}

	logger.Info("Sweep scheduler started", slog.String("cron", spec), slog.String("url", client.url))
	scheduler.Start()

	<-ctx.Done()

	// Wait for a running sweep to finish.
	<-scheduler.Stop().Done()
	logger.Info("Sweep scheduler stopped")

	return nil
}

func newSweepScheduler(ctx context.Context, client *sweepClient, spec string, logger *slog.Logger) (*cron.Cron, error) {
	cronLogger := &slogCronLogger{logger: logger}
	scheduler := cron.New(
		cron.WithLogger(cronLogger),
		cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
	)

	_, err := scheduler.AddFunc(spec, func() {
		report, err := client.trigger(ctx, false)
		if err != nil {
			logger.Error("Scheduled sweep failed", slog.Any("error", err))

			return
		}

		logger.Info("Scheduled sweep finished",
			slog.Int("processed", report.Processed),
			slog.Int("deleted", report.Deleted),
			slog.Int("failed", report.Failed),
		)
	})
	if err != nil {
		return nil, errors.Wrapf(err, "invalid cron spec %q", spec)
	}

	return scheduler, nil
}

// slogCronLogger adapts slog to cron.Logger.
type slogCronLogger struct {
	logger *slog.Logger
}

func (l *slogCronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l *slogCronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append([]any{slog.Any("error", err)}, keysAndValues...)...)
}
