package sequencer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/Ahmer-qarhami/qarhami-udp-tester/internal/pkg/pkgroutine"
	"github.com/Ahmer-qarhami/qarhami-udp-tester/internal/pkg/pkguid"
)

var (
	// ErrNoRows is returned by Start when nothing is loaded.
	ErrNoRows = errors.New("no rows loaded")
	// ErrBusy is returned when an action needs an idle Sequencer.
	ErrBusy = errors.New("a send run is in progress")
)

const (
	StatusReady   = "Ready"
	StatusNoRows  = "Error: Please upload CSV file first"
	StatusSending = "Sending packets..."
	StatusStopped = "Stopped"
)

type Dispatcher interface {
	Dispatch(ctx context.Context, host, message string) error
}

type Observer interface {
	Publish(ctx context.Context, event Event) error
}

type Runner interface {
	Go(ctx context.Context, f func(ctx context.Context) error)
}

type Clock interface {
	Now() time.Time
}

type Dependency struct {
	Dispatcher Dispatcher
	Observer   Observer
	Runner     Runner
	Clock      Clock
	ID         pkguid.NumberID
	Host       string
}

type Sequencer struct {
	dispatcher Dispatcher
	observer   Observer
	runner     Runner
	clock      Clock
	id         pkguid.NumberID
	logs       *LogBook

	mu      sync.Mutex
	host    string
	rows    []Row
	phase   Phase
	cursor  int
	success int
	failed  int
	status  string
	done    chan struct{}
}

func New(dep Dependency) *Sequencer {
	runner := dep.Runner
	if runner == nil {
		runner = pkgroutine.NewManager(1)
	}

	clock := dep.Clock
	if clock == nil {
		clock = realClock{}
	}

	id := dep.ID
	if id == nil {
		id = pkguid.NewCounter()
	}

	done := make(chan struct{})
	close(done)

	return &Sequencer{
		dispatcher: dep.Dispatcher,
		observer:   dep.Observer,
		runner:     runner,
		clock:      clock,
		id:         id,
		logs:       NewLogBook(),
		host:       strings.TrimSpace(dep.Host),
		phase:      PhaseIdle,
		done:       done,
	}
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

// SetHost changes the destination host for the next run.
func (s *Sequencer) SetHost(host string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseIdle {
		return ErrBusy
	}

	s.host = strings.TrimSpace(host)
	return nil
}

// Load replaces the row list. Blank rows are dropped.
func (s *Sequencer) Load(rows []Row) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseIdle {
		return ErrBusy
	}

	kept := make([]Row, 0, len(rows))
	for _, row := range rows {
		if row.Blank() {
			continue
		}
		kept = append(kept, append(Row(nil), row...))
	}

	s.rows = kept
	s.cursor = 0
	s.status = fmt.Sprintf("Loaded %d rows", len(kept))
	return nil
}

// LoadCSV parses r and loads its rows. On a parse error the row list is
// emptied, so Start stays blocked until a valid file is loaded.
func (s *Sequencer) LoadCSV(r io.Reader) (int, error) {
	s.mu.Lock()
	busy := s.phase != PhaseIdle
	s.mu.Unlock()
	if busy {
		return 0, ErrBusy
	}

	rows, err := LoadRows(r)
	if err != nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.phase != PhaseIdle {
			return 0, ErrBusy
		}
		s.rows = nil
		s.cursor = 0
		s.status = "Error: " + err.Error()
		return 0, err
	}

	if err := s.Load(rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}

// Start begins a run over the loaded rows and returns without waiting for
// it. Logs and tallies from any previous run are cleared.
func (s *Sequencer) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.phase != PhaseIdle {
		s.mu.Unlock()
		return ErrBusy
	}
	if len(s.rows) == 0 {
		s.status = StatusNoRows
		s.mu.Unlock()
		return ErrNoRows
	}

	rows := s.rows
	host := s.host
	done := make(chan struct{})

	s.phase = PhaseRunning
	s.cursor = 0
	s.success = 0
	s.failed = 0
	s.status = StatusSending
	s.done = done
	s.logs.Clear()
	s.mu.Unlock()

	slog.InfoContext(ctx, "send run started", "host", host, "rows", len(rows))

	// the loop must always reach finish, so the runner never sees ctx cancel
	s.runner.Go(context.WithoutCancel(ctx), func(context.Context) error {
		defer close(done)
		s.run(ctx, rows, host)
		return nil
	})

	return nil
}

// Stop asks the running loop to end before its next send. It reports whether
// a run was active.
func (s *Sequencer) Stop() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseRunning {
		return false
	}

	s.phase = PhaseStopped
	s.status = StatusStopped
	return true
}

// Wait blocks until the current run, if any, has ended.
func (s *Sequencer) Wait(ctx context.Context) error {
	select {
	case <-s.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done is closed when the current run ends. It is already closed when idle.
func (s *Sequencer) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.done
}

// ClearLogs drops all log entries. Run state and rows are untouched.
func (s *Sequencer) ClearLogs() {
	s.logs.Clear()
}

// ClearAll drops rows, status and logs. Only allowed while idle.
func (s *Sequencer) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseIdle {
		return ErrBusy
	}

	s.rows = nil
	s.cursor = 0
	s.success = 0
	s.failed = 0
	s.status = ""
	s.logs.Clear()
	return nil
}

func (s *Sequencer) Logs() []LogEntry {
	return s.logs.List()
}

func (s *Sequencer) Rows() []Row {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Row, len(s.rows))
	copy(out, s.rows)
	return out
}

func (s *Sequencer) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.stateLocked()
}

// Display returns the status line, or "Ready" when there is none.
func (st State) Display() string {
	if st.Status == "" {
		return StatusReady
	}
	return st.Status
}

func (s *Sequencer) stateLocked() State {
	return State{
		Phase:   s.phase,
		Host:    s.host,
		Cursor:  s.cursor,
		Total:   len(s.rows),
		Success: s.success,
		Failed:  s.failed,
		Status:  s.status,
	}
}

func (s *Sequencer) run(ctx context.Context, rows []Row, host string) {
	for i, row := range rows {
		if !s.proceed(ctx) {
			break
		}

		msg := row.Message()
		var err error
		if s.dispatcher == nil {
			err = errors.New("no dispatcher configured")
		} else {
			// an in-flight send is allowed to finish even if ctx is canceled
			err = s.dispatcher.Dispatch(context.WithoutCancel(ctx), host, msg)
		}
		if err != nil {
			slog.WarnContext(ctx, "packet failed", "index", i+1, "error", err)
		}

		event := s.record(i, len(rows), msg, err)
		if s.observer != nil {
			if perr := s.observer.Publish(ctx, event); perr != nil {
				slog.DebugContext(ctx, "failed to publish sequencer event", "index", i+1, "error", perr)
			}
		}
	}

	s.finish(ctx)
}

func (s *Sequencer) proceed(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseRunning {
		return false
	}
	if ctx.Err() != nil {
		s.phase = PhaseStopped
		s.status = StatusStopped
		return false
	}
	return true
}

func (s *Sequencer) record(i, total int, msg string, err error) Event {
	entry := LogEntry{
		ID:        s.id.Generate(),
		Index:     i + 1,
		Message:   msg,
		Outcome:   OutcomeSuccess,
		Timestamp: s.clock.Now(),
	}
	if err != nil {
		entry.Message = failedMessage(msg, err)
		entry.Outcome = OutcomeError
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.failed++
	} else {
		s.success++
	}
	s.cursor = i + 1
	if s.phase == PhaseRunning {
		s.status = fmt.Sprintf("Sending... %d/%d (%d success, %d failed)", i+1, total, s.success, s.failed)
	}
	s.logs.Append(entry)

	return Event{Entry: entry, State: s.stateLocked()}
}

func (s *Sequencer) finish(ctx context.Context) {
	s.mu.Lock()
	if s.phase == PhaseRunning {
		s.status = fmt.Sprintf("Done! %d sent, %d failed", s.success, s.failed)
	}
	s.phase = PhaseIdle
	state := s.stateLocked()
	s.mu.Unlock()

	slog.InfoContext(ctx, "send run finished",
		"status", state.Status,
		"success", state.Success,
		"failed", state.Failed,
		"processed", state.Cursor,
		"total", state.Total,
	)
}
