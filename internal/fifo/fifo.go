package fifo

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"syscall"
	"time"
)

// Separator ends every message written to the pipe.
const Separator = '¬'

//nolint:gochecknoglobals // ok
var separator = []byte(string(Separator))

type Reader struct {
	logger     *slog.Logger
	maxRetries int
	retryDelay time.Duration
}

func NewFifoReader(logger *slog.Logger) *Reader {
	return &Reader{
		logger:     logger,
		maxRetries: 3,
		retryDelay: 2 * time.Second,
	}
}

func (f *Reader) makeSureFifoExists(path string) error {
	stat, err := os.Stat(path)
	if err == nil {
		if stat.Mode()&os.ModeNamedPipe != 0 {
			return nil
		}

		f.logger.Warn("fifo: path exists but is not a named pipe, replacing it", slog.String("path", path))

		if err := os.Remove(path); err != nil {
			return fmt.Errorf("fifo: could not remove existing file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("fifo: could not stat file: %w", err)
	}

	if err := syscall.Mkfifo(path, 0o640); err != nil {
		return fmt.Errorf("fifo: could not create fifo file: %w", err)
	}

	f.logger.Info("fifo: created", slog.String("path", path))
	return nil
}

func (f *Reader) Start(path string) error {
	if err := f.makeSureFifoExists(path); err != nil {
		return fmt.Errorf("fifo: error creating file: %w", err)
	}
	return nil
}

// Listen sends every message read from path to ch until ctx is done.
func (f *Reader) Listen(
	ctx context.Context,
	path string,
	ch chan<- string,
) error {
	var err error

	for attempt := 1; attempt <= f.maxRetries; attempt++ {
		err = f.listenAttempt(ctx, path, ch)

		if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}

		f.logger.ErrorContext(ctx, "fifo: listen attempt failed",
			slog.Any("error", err),
			slog.Int("attempt", attempt),
			slog.Int("maxRetries", f.maxRetries))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(f.retryDelay):
		}

		if recreateErr := f.makeSureFifoExists(path); recreateErr != nil {
			f.logger.ErrorContext(ctx, "fifo: failed to recreate", slog.Any("error", recreateErr))
		}
	}

	return fmt.Errorf("fifo: giving up after %d attempts: %w", f.maxRetries, err)
}

func (f *Reader) listenAttempt(
	ctx context.Context,
	path string,
	ch chan<- string,
) error {
	if err := f.makeSureFifoExists(path); err != nil {
		return err
	}

	// read-write keeps a writer open, so the reader never sees EOF between writers
	pipe, err := os.OpenFile(path, os.O_RDWR|syscall.O_NONBLOCK, os.ModeNamedPipe)
	if err != nil {
		return fmt.Errorf("fifo: error opening for reading: %w", err)
	}

	stop := make(chan struct{})
	defer close(stop)

	go func() {
		select {
		case <-ctx.Done():
		case <-stop:
		}

		if closeErr := pipe.Close(); closeErr != nil && !errors.Is(closeErr, os.ErrClosed) {
			f.logger.ErrorContext(ctx, "fifo: error closing pipe", slog.Any("error", closeErr))
		}
	}()

	scanner := bufio.NewScanner(pipe)
	scanner.Split(splitMessages)

	for scanner.Scan() {
		msg := strings.TrimSpace(scanner.Text())
		if msg == "" {
			continue
		}

		select {
		case ch <- msg:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("fifo: read error: %w", err)
	}

	return nil
}

// Remove deletes the pipe, a missing one is not an error.
func (f *Reader) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("fifo: could not remove fifo: %w", err)
	}

	return nil
}

func splitMessages(data []byte, atEOF bool) (int, []byte, error) {
	if i := bytes.Index(data, separator); i >= 0 {
		return i + len(separator), data[:i], nil
	}

	if atEOF && len(data) > 0 {
		return len(data), data, nil
	}

	return 0, nil, nil
}
