package activity

import (
	"context"
	"log/slog"
	"sync"
)

// Worker buffers feed writes behind a channel so UI callers never block on
// logging.
type Worker struct {
	entryCh chan Entry
	logger  Logger
	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
}

func NewWorker(logger Logger, bufferSize int) *Worker {
	ctx, cancel := context.WithCancel(context.Background())
	return &Worker{
		entryCh: make(chan Entry, bufferSize),
		logger:  logger,
		ctx:     ctx,
		cancel:  cancel,
	}
}

func (w *Worker) Start() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for {
			select {
			case <-w.ctx.Done():
				slog.Info("draining activity entries before shutdown", "remaining_entries", len(w.entryCh))
				for len(w.entryCh) > 0 {
					entry := <-w.entryCh
					if err := w.logger.Save(context.Background(), entry); err != nil {
						slog.Error("failed to save activity during shutdown", "error", err, "entry_type", entry.Type)
					}
				}
				return
			case entry := <-w.entryCh:
				if err := w.logger.Save(w.ctx, entry); err != nil {
					slog.Error("failed to save activity", "error", err, "entry_type", entry.Type)
				}
			}
		}
	}()
}

func (w *Worker) Log(entry Entry) {
	select {
	case w.entryCh <- entry:
		// Entry sent successfully
	default:
		// Channel is full, log the error
		slog.Warn("activity channel full, dropping entry", "entry_type", entry.Type)
	}
}

func (w *Worker) Shutdown() {
	w.cancel()
	w.wg.Wait()
	close(w.entryCh)
}
