package logger

import (
	"bufio"
	"errors"
	"io"
	"sync"
)

// asyncWriter provides buffered asynchronous writes to one or more sinks.
type asyncWriter struct {
	queue    chan []byte
	flushReq chan chan error
	done     chan struct{}
	once     sync.Once
	sinks    []*bufio.Writer
	errMu    sync.Mutex
	writeErr error
}

func newAsyncWriter(writers []io.Writer, bufSize int) *asyncWriter {
	if bufSize <= 0 {
		bufSize = 64 * 1024
	}
	sinks := make([]*bufio.Writer, 0, len(writers))
	for _, w := range writers {
		if w == nil {
			continue
		}
		sinks = append(sinks, bufio.NewWriterSize(w, bufSize))
	}
	aw := &asyncWriter{
		queue:    make(chan []byte, 256),
		flushReq: make(chan chan error),
		done:     make(chan struct{}),
		sinks:    sinks,
	}
	go aw.loop()
	return aw
}

func (w *asyncWriter) loop() {
	for {
		select {
		case data, ok := <-w.queue:
			if !ok {
				w.flushAll()
				close(w.done)
				return
			}
			if len(data) == 0 {
				continue
			}
			w.writeAll(data)
		case ack := <-w.flushReq:
			ack <- w.flushAll()
		}
	}
}

func (w *asyncWriter) writeAll(data []byte) {
	for _, s := range w.sinks {
		if _, err := s.Write(data); err != nil {
			w.setErr(err)
		}
	}
}

func (w *asyncWriter) flushAll() error {
	var errs []error
	for _, s := range w.sinks {
		if err := s.Flush(); err != nil {
			errs = append(errs, err)
		}
	}
	err := errors.Join(errs...)
	if err != nil {
		w.setErr(err)
	}
	return err
}

func (w *asyncWriter) setErr(err error) {
	w.errMu.Lock()
	defer w.errMu.Unlock()
	if w.writeErr == nil {
		w.writeErr = err
	}
}

// Write enqueues a line; it blocks only when the queue is saturated.
func (w *asyncWriter) Write(line []byte) error {
	select {
	case <-w.done:
		return errors.New("logger: writer closed")
	default:
	}
	buf := make([]byte, len(line))
	copy(buf, line)
	w.queue <- buf
	return nil
}

// Flush synchronously drains buffered output to the sinks.
func (w *asyncWriter) Flush() error {
	select {
	case <-w.done:
		return w.err()
	default:
	}
	ack := make(chan error, 1)
	select {
	case w.flushReq <- ack:
		return <-ack
	case <-w.done:
		return w.err()
	}
}

// Close stops the writer after draining the queue.
func (w *asyncWriter) Close() error {
	w.once.Do(func() {
		close(w.queue)
	})
	<-w.done
	return w.err()
}

func (w *asyncWriter) err() error {
	w.errMu.Lock()
	defer w.errMu.Unlock()
	return w.writeErr
}
