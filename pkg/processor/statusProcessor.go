package processor

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/zoff-tech/status-reconciler/pkg/config"
	"github.com/zoff-tech/status-reconciler/pkg/event"
	"github.com/zoff-tech/status-reconciler/pkg/lookup"
	"github.com/zoff-tech/status-reconciler/pkg/source"
)

// StatusProcessor reconciles delivery-status reports with their original push
// requests and forwards the merged events downstream. A source message is
// acknowledged only after the action it requires has durably completed, so
// delivery downstream is at-least-once and never lossy.
type StatusProcessor struct {
	lookup        lookup.RequestLookup
	retries       *RetryDispatcher
	forwarder     *EventForwarder
	tracer        trace.Tracer
	maxRetryCount int
}

// NewStatusProcessor creates a new instance of StatusProcessor.
func NewStatusProcessor(lk lookup.RequestLookup, retries *RetryDispatcher, forwarder *EventForwarder, cfg *config.Settings) *StatusProcessor {
	return &StatusProcessor{
		lookup:        lk,
		retries:       retries,
		forwarder:     forwarder,
		tracer:        otel.Tracer("status-reconciler"),
		maxRetryCount: cfg.MaxRetryCount,
	}
}

// receiveErrorBackoff paces the loop when a source is unreachable; the
// long poll only provides pacing on the success path.
const receiveErrorBackoff = 5 * time.Second

// Run polls every source concurrently until ctx is canceled. Cancellation
// stops new cycles from starting; a cycle already in flight runs to
// completion.
func (p *StatusProcessor) Run(ctx context.Context, sources ...source.Source) {
	var wg sync.WaitGroup
	for _, src := range sources {
		wg.Add(1)
		go func(src source.Source) {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					log.Printf("Stopping poller for %s", src.Name())
					return
				default:
				}
				if err := p.ProcessCycle(ctx, src); err != nil {
					select {
					case <-ctx.Done():
					case <-time.After(receiveErrorBackoff):
					}
				}
			}
		}(src)
	}
	wg.Wait()
}

// ProcessCycle runs one poll-reconcile-acknowledge pass against one source.
// The returned error reports a failed receive only; everything after a
// successful receive is handled within the cycle.
func (p *StatusProcessor) ProcessCycle(ctx context.Context, src source.Source) error {
	messages, err := src.Receive(ctx)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			log.Printf("Failed to receive from %s: %v", src.Name(), err)
		}
		return err
	}
	if len(messages) == 0 {
		return nil
	}

	// Shutdown only gates new cycles. A batch already received is leased and
	// runs to completion on a detached context, so a signal landing mid-cycle
	// cannot fail its lookups or strand its acknowledgments.
	ctx = context.WithoutCancel(ctx)

	ctx, span := p.tracer.Start(ctx, "ReconcileCycle", trace.WithAttributes(
		attribute.String("source.name", string(src.Name())),
		attribute.Int("batch.size", len(messages)),
	))
	defer span.End()

	reports := make([]*event.StatusReport, len(messages))
	parseErrs := make([]error, len(messages))
	for i, msg := range messages {
		reports[i], parseErrs[i] = event.ParseStatusReport([]byte(msg.Body))
	}

	// Fan out all lookups and join by index. Decisions for the whole batch
	// wait on the slowest lookup; no result slot is shared across goroutines.
	originals := make([]*event.OriginalRequest, len(messages))
	var wg sync.WaitGroup
	for i := range messages {
		if parseErrs[i] != nil {
			continue
		}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			original, err := p.lookup.Lookup(ctx, reports[i].SnsID)
			if err != nil {
				log.Printf("No original request for sns_id %s (message %s): %v",
					reports[i].SnsID, messages[i].MessageID, err)
				return
			}
			originals[i] = original
		}(i)
	}
	wg.Wait()

	var forwardEvents []*event.ReconciledEvent
	var forwardHandles []string
	var drainHandles []string
	retriesSubmitted := 0

	for i, msg := range messages {
		if parseErrs[i] != nil {
			// Redelivery cannot repair a structurally invalid report; drain it.
			log.Printf("Draining unprocessable message %s from %s: %v", msg.MessageID, src.Name(), parseErrs[i])
			drainHandles = append(drainHandles, msg.ReceiptHandle)
			continue
		}

		report := reports[i]
		original := originals[i]
		if original == nil {
			// Left leased: redelivered once the visibility window lapses.
			continue
		}

		shouldRetry := report.DeliveryStatus == event.StatusFailure || src.Name() == source.DeadLetter
		if shouldRetry {
			if original.RetryCount < p.maxRetryCount {
				if err := p.retries.Submit(ctx, original, original.RetryCount+1); err != nil {
					log.Printf("Failed to submit retry for sns_id %s: %v", report.SnsID, err)
					span.RecordError(err)
				} else {
					retriesSubmitted++
				}
			} else {
				log.Printf("Retry count exhausted (max %d) for sns_id %s, transaction %s",
					p.maxRetryCount, report.SnsID, original.TransactionID)
			}
		}

		forwardEvents = append(forwardEvents, event.NewReconciledEvent(original, report, time.Now()))
		forwardHandles = append(forwardHandles, msg.ReceiptHandle)
	}

	span.SetAttributes(
		attribute.Int("batch.forwarded", len(forwardEvents)),
		attribute.Int("batch.drained", len(drainHandles)),
		attribute.Int("batch.retries_submitted", retriesSubmitted),
	)

	if len(forwardEvents) > 0 {
		if err := p.forwarder.Submit(ctx, forwardEvents); err != nil {
			// No acknowledgments for the forward set: the whole batch is
			// left for redelivery rather than risking a silent drop.
			log.Printf("Failed to forward events, keeping %d messages on %s: %v",
				len(forwardHandles), src.Name(), err)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			p.acknowledge(ctx, src, forwardHandles)
		}
	}

	// Drained handles never reach the forwarder, so their acknowledgment
	// does not depend on its outcome.
	p.acknowledge(ctx, src, drainHandles)
	return nil
}

func (p *StatusProcessor) acknowledge(ctx context.Context, src source.Source, receiptHandles []string) {
	for _, handle := range receiptHandles {
		if err := src.Delete(ctx, handle); err != nil {
			log.Printf("Failed to acknowledge message on %s: %v", src.Name(), err)
		}
	}
}
