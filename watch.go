// FILE: lixenwraith/apacheconf/watch.go
package apacheconf

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
)

// Watch timing.
const (
	MinPollInterval     = 100 * time.Millisecond // hard floor for file stat polling
	DefaultPollInterval = time.Second
	DefaultDebounce     = 500 * time.Millisecond // change coalescence period
)

// WatchOptions configures file watching behavior
type WatchOptions struct {
	// PollInterval between file stat checks (minimum 100ms)
	PollInterval time.Duration

	// Debounce waits for the file to stay unchanged this long before reloading
	Debounce time.Duration
}

// DefaultWatchOptions returns the standard polling and debounce periods
func DefaultWatchOptions() WatchOptions {
	return WatchOptions{
		PollInterval: DefaultPollInterval,
		Debounce:     DefaultDebounce,
	}
}

func (o WatchOptions) normalize() WatchOptions {
	if o.PollInterval < MinPollInterval {
		o.PollInterval = MinPollInterval
	}
	if o.Debounce < 0 {
		o.Debounce = 0
	}
	return o
}

// WatchEvent is delivered after every reload attempt. Exactly one of Tree and Err
// is set; a deleted file is reported as ErrFileNotFound.
type WatchEvent struct {
	Tree *Tree
	Err  error
}

// fileState is the stat snapshot compared between polls.
type fileState struct {
	exists  bool
	modTime time.Time
	size    int64
}

func statFile(path string) fileState {
	info, err := os.Stat(path)
	if err != nil {
		return fileState{}
	}
	return fileState{exists: true, modTime: info.ModTime(), size: info.Size()}
}

func (s fileState) same(o fileState) bool {
	return s.exists == o.exists && s.size == o.size && s.modTime.Equal(o.modTime)
}

// Watch polls path and re-parses it whenever its size or modification time changes.
// Events are sent until ctx is cancelled, after which the channel is closed. The
// receiver must drain the channel; the watcher blocks while an event is pending.
func (p *Parser) Watch(ctx context.Context, path string, opts WatchOptions) <-chan WatchEvent {
	return p.watch(ctx, path, opts, p.ParseFile)
}

// Watch polls path with DefaultOptions. See Parser.Watch.
func Watch(ctx context.Context, path string, opts WatchOptions) <-chan WatchEvent {
	return NewParser(DefaultOptions(), nil).Watch(ctx, path, opts)
}

// watch starts the poll loop. The baseline is taken before returning so that a change
// made right after the call is reported.
func (p *Parser) watch(ctx context.Context, path string, opts WatchOptions, parseFile func(string) (*Tree, error)) <-chan WatchEvent {
	events := make(chan WatchEvent, 1)
	baseline := statFile(path)
	go p.watchLoop(ctx, path, opts.normalize(), baseline, parseFile, events)
	return events
}

func (p *Parser) watchLoop(ctx context.Context, path string, opts WatchOptions, last fileState,
	parseFile func(string) (*Tree, error), events chan<- WatchEvent) {
	defer close(events)

	var changedAt time.Time // zero while nothing is pending

	ticker := time.NewTicker(opts.PollInterval)
	defer ticker.Stop()

	p.logger.Debug("Watching configuration file",
		zap.String("file", path),
		zap.Duration("poll_interval", opts.PollInterval),
		zap.Duration("debounce", opts.Debounce))

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			current := statFile(path)
			if !current.same(last) {
				last = current
				changedAt = now
			}
			if changedAt.IsZero() || now.Sub(changedAt) < opts.Debounce {
				continue
			}
			changedAt = time.Time{}

			select {
			case events <- p.reload(path, current, parseFile):
			case <-ctx.Done():
				return
			}
		}
	}
}

func (p *Parser) reload(path string, state fileState, parseFile func(string) (*Tree, error)) WatchEvent {
	if !state.exists {
		p.logger.Warn("Configuration file removed", zap.String("file", path))
		return WatchEvent{Err: fmt.Errorf("%w: %s", ErrFileNotFound, path)}
	}

	tree, err := parseFile(path)
	if err != nil {
		p.logger.Warn("Configuration reload failed", zap.String("file", path), zap.Error(err))
		return WatchEvent{Err: err}
	}
	p.logger.Info("Configuration reloaded", zap.String("file", path), zap.Int("nodes", tree.Len()-1))
	return WatchEvent{Tree: tree}
}
