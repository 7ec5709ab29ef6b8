package ipc

import (
	"context"
	"time"
)

// Watch mirrors a signal file into flag until ctx is done, so many readers
// can share one poller.
func Watch(ctx context.Context, sig *FileSignal, flag *Flag, every time.Duration) error {
	if every <= 0 {
		every = time.Second
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		if sig.Ready() {
			flag.Set()
		} else {
			flag.Clear()
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
