package monitor

import (
	"errors"
	"sync"
	"time"

	"github.com/dl/sermon/internal/device"
)

// errInterrupted marks a session ended by the operator rather than by
// the device.
var errInterrupted = errors.New("interrupted")

// Policy controls connection resilience.
type Policy struct {
	// WaitForDevice retries opening a not-yet-present device until it
	// shows up instead of failing.
	WaitForDevice bool
	// PersistOnDrop restarts the whole connect-and-monitor cycle after
	// a stream failure instead of exiting.
	PersistOnDrop bool
}

// StatusReporter receives operator-facing connection progress messages.
type StatusReporter interface {
	// Progress emits one indicator per failed wait-for-device attempt.
	Progress()
	Info(msg string)
	Error(msg string)
}

// Session builds and runs the per-connection pipeline over an open
// stream, returning when the stream fails. The manager calls it fresh
// on every (re)connect so no formatter or sink state survives a drop.
type Session func(stream device.Stream) error

// Manager owns the connect, run and reconnect lifecycle around the
// monitor loop.
type Manager struct {
	open     device.Opener
	policy   Policy
	status   StatusReporter
	interval time.Duration

	mu          sync.Mutex
	current     device.Stream
	interrupted bool
}

// NewManager creates a Manager using the given opener and policies.
func NewManager(open device.Opener, policy Policy, status StatusReporter) *Manager {
	return &Manager{
		open:     open,
		policy:   policy,
		status:   status,
		interval: 500 * time.Millisecond,
	}
}

// Run acquires the device and runs sessions until a terminal failure
// or an operator interrupt. Under persist-on-drop every stream failure
// re-enters the full acquire-then-session cycle, wait-for-device phase
// included, with all per-session state rebuilt from scratch.
//
// Returns nil on interrupt, otherwise the failure that ended the run.
func (m *Manager) Run(port string, baud int, session Session) error {
	for {
		stream, err := m.acquire(port, baud)
		if err != nil {
			if errors.Is(err, errInterrupted) {
				return nil
			}
			return err
		}

		m.setCurrent(stream)
		err = session(stream)
		m.setCurrent(nil)
		_ = stream.Close()

		if m.isInterrupted() {
			m.status.Info("")
			return nil
		}

		m.status.Info("")
		m.status.Error("*** He's dead, Jim! ***")
		m.status.Info("")

		if !m.policy.PersistOnDrop {
			return err
		}
	}
}

// Interrupt stops the run from a signal handler: it closes the active
// stream so a blocked read returns, and marks the run as
// operator-terminated so the failure is treated as a clean exit.
func (m *Manager) Interrupt() {
	m.mu.Lock()
	m.interrupted = true
	stream := m.current
	m.mu.Unlock()
	if stream != nil {
		_ = stream.Close()
	}
}

// acquire opens the device, waiting for it to show up when the
// wait-for-device policy is on. Only a not-available failure is
// retried; any other open error is fatal.
func (m *Manager) acquire(port string, baud int) (device.Stream, error) {
	m.status.Info("Trying to connect to " + port)

	waited := false
	for {
		if m.isInterrupted() {
			if waited {
				m.status.Info("")
			}
			return nil, errInterrupted
		}

		stream, err := m.open(port, baud)
		if err == nil {
			if waited {
				m.status.Info("")
			}
			m.status.Info("Successfully connected")
			return stream, nil
		}

		if !m.policy.WaitForDevice || !errors.Is(err, device.ErrNotAvailable) {
			if waited {
				m.status.Info("")
			}
			m.status.Error("Failed to connect")
			return nil, err
		}

		m.status.Progress()
		waited = true
		time.Sleep(m.interval)
	}
}

func (m *Manager) setCurrent(s device.Stream) {
	m.mu.Lock()
	m.current = s
	m.mu.Unlock()
}

func (m *Manager) isInterrupted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.interrupted
}
