package jobs

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"fervo/internal/infra"
	"fervo/internal/pkg/clock"
	"fervo/internal/pkg/errs"
	"fervo/internal/pkg/metrics"
	"fervo/internal/usecase/shared"

	"github.com/jinzhu/copier"
)

const (
	statusPending = "pending"
	statusFailed  = "failed"

	maxBackoff = time.Hour
)

type Options struct {
	PollInterval time.Duration
	BatchSize    int32
	MaxAttempts  int
	BaseBackoff  time.Duration
	Lease        time.Duration
}

// Dispatcher drains the notification outbox. Claiming a job leases it until
// now+Lease; a job whose lease runs out unsettled is delivered again.
type Dispatcher struct {
	uow    shared.UnitOfWork
	push   shared.PushSender
	mirror shared.DirectoryMirror
	clock  clock.Clock
	opts   Options
	logger *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewDispatcher(uow shared.UnitOfWork, push shared.PushSender, mirror shared.DirectoryMirror, clk clock.Clock, opts Options, logger *slog.Logger) *Dispatcher {
	if opts.BatchSize <= 0 {
		opts.BatchSize = 20
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 5
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = 2 * time.Second
	}
	if opts.Lease <= 0 {
		opts.Lease = time.Minute
	}
	return &Dispatcher{uow: uow, push: push, mirror: mirror, clock: clk, opts: opts, logger: logger}
}

// Start runs the poll loop until Stop.
func (d *Dispatcher) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		ticker := time.NewTicker(d.opts.PollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := d.DispatchDue(ctx); err != nil && ctx.Err() == nil {
					d.logger.Error("outbox dispatch failed", "error", err)
				}
			}
		}
	}()
}

func (d *Dispatcher) Stop(ctx context.Context) error {
	if d.cancel == nil {
		return nil
	}
	d.cancel()
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// DispatchDue processes one batch of due jobs and returns how many were claimed.
// The claim commits before any job is sent; each job is then settled on its own,
// so a failed settle only leaves that job to be picked up again when its lease ends.
func (d *Dispatcher) DispatchDue(ctx context.Context) (int, error) {
	now := d.clock.Now()

	var jobs []shared.NotificationJob
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var cerr error
		jobs, cerr = tx.Notifications().ClaimDue(ctx, tx.DB(), now, now.Add(d.opts.Lease), d.opts.BatchSize)
		return cerr
	})
	if err != nil {
		return 0, err
	}

	var firstErr error
	for _, job := range jobs {
		if serr := d.settle(ctx, job, d.dispatch(ctx, job), now); serr != nil {
			d.logger.Error("outbox job settle failed", "job_id", job.ID, "kind", job.Kind, "error", serr)
			if firstErr == nil {
				firstErr = serr
			}
		}
	}
	return len(jobs), firstErr
}

func (d *Dispatcher) settle(ctx context.Context, job shared.NotificationJob, jobErr error, now time.Time) error {
	if jobErr == nil {
		err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Notifications().MarkDone(ctx, tx.DB(), job.ID)
		})
		if err == nil {
			metrics.RecordOutboxDispatch(job.Kind, "done")
		}
		return err
	}

	attempts := job.Attempts + 1
	status := statusPending
	result := "retry"
	if attempts >= d.opts.MaxAttempts {
		status = statusFailed
		result = "failed"
	}
	d.logger.Warn("outbox job failed",
		"job_id", job.ID, "kind", job.Kind, "topic", job.Topic,
		"attempts", attempts, "status", status, "error", jobErr)

	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().MarkFailed(ctx, tx.DB(), job.ID, status, jobErr.Error(), now.Add(d.backoff(attempts)))
	})
	if err == nil {
		metrics.RecordOutboxDispatch(job.Kind, result)
	}
	return err
}

// backoff doubles from BaseBackoff per attempt, capped at an hour.
func (d *Dispatcher) backoff(attempts int) time.Duration {
	delay := d.opts.BaseBackoff
	for i := 1; i < attempts && delay < maxBackoff; i++ {
		delay *= 2
	}
	if delay > maxBackoff {
		delay = maxBackoff
	}
	return delay
}

func (d *Dispatcher) dispatch(ctx context.Context, job shared.NotificationJob) error {
	reads := d.uow.CommandReads()
	switch job.Kind {
	case shared.JobKindPush:
		return d.dispatchPush(ctx, reads, job)
	case shared.JobKindDirectorySync:
		return d.dispatchDirectorySync(ctx, reads, job)
	default:
		return errs.New("unknown job kind " + job.Kind)
	}
}

func (d *Dispatcher) dispatchPush(ctx context.Context, reads shared.CommandReads, job shared.NotificationJob) error {
	var p shared.PushPayload
	if err := json.Unmarshal(job.Payload, &p); err != nil {
		return errs.Wrap(err, "decode push payload")
	}

	tokens, err := reads.PushTokensByUser(ctx, p.UserID)
	if err != nil {
		return err
	}
	if len(tokens) == 0 {
		return nil
	}

	err = d.push.Send(ctx, tokens, shared.PushMessage{Title: p.Title, Body: p.Body, Data: p.Data})
	if errs.Is(err, errs.ErrIntegrationDisabled) {
		return nil
	}
	return err
}

func (d *Dispatcher) dispatchDirectorySync(ctx context.Context, reads shared.CommandReads, job shared.NotificationJob) error {
	var p shared.DirectorySyncPayload
	if err := json.Unmarshal(job.Payload, &p); err != nil {
		return errs.Wrap(err, "decode directory sync payload")
	}

	err := d.syncDirectory(ctx, reads, p)
	if errs.Is(err, errs.ErrIntegrationDisabled) {
		return nil
	}
	return err
}

func (d *Dispatcher) syncDirectory(ctx context.Context, reads shared.CommandReads, p shared.DirectorySyncPayload) error {
	if p.EventID == nil {
		v, err := reads.VenueByID(ctx, p.PartnerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil
			}
			return err
		}
		var doc shared.VenueDocument
		if err = copier.Copy(&doc, v); err != nil {
			return errs.Wrap(err, "map venue document")
		}
		return d.mirror.UpsertVenue(ctx, doc)
	}

	ev, err := reads.EventByPartnerAndID(ctx, p.PartnerID, *p.EventID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return d.mirror.DeleteEvent(ctx, p.PartnerID, *p.EventID)
		}
		return err
	}
	var doc shared.EventDocument
	if err = copier.Copy(&doc, ev); err != nil {
		return errs.Wrap(err, "map event document")
	}
	return d.mirror.UpsertEvent(ctx, doc)
}
