package jobs

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goliatone/go-sitegen/internal/logging"
	"github.com/goliatone/go-sitegen/pkg/interfaces"
	"github.com/google/uuid"
)

// ErrJobNotFound is returned when a job ID is unknown or already swept.
var ErrJobNotFound = errors.New("jobs: job not found")

// Status tracks the lifecycle of a generation job. Transitions are
// monotonic: pending -> processing -> complete|error.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusComplete   Status = "complete"
	StatusError      Status = "error"
)

// Terminal reports whether the status admits no further transitions.
func (s Status) Terminal() bool {
	return s == StatusComplete || s == StatusError
}

// Progress carries the step counter streamed to subscribers.
type Progress struct {
	Step    int    `json:"step"`
	Total   int    `json:"total"`
	Message string `json:"message"`
}

// Event is a single lifecycle notification delivered to subscribers.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

const (
	EventProgress = "progress"
	EventComplete = "complete"
	EventError    = "error"
)

// Job is a point-in-time snapshot of a tracked generation run.
type Job struct {
	ID           string
	Status       Status
	Progress     Progress
	Archive      *interfaces.BuildArtifact
	BuildArchive *interfaces.BuildArtifact
	Error        string
	CreatedAt    time.Time
}

type trackedJob struct {
	Job
	subscribers map[int]chan Event
	nextSub     int
}

const (
	defaultRetention   = time.Hour
	defaultSweepEvery  = 10 * time.Minute
	subscriberBacklog  = 16
	initialProgressMsg = "Initializing..."
)

// Registry owns the in-memory job table and fans lifecycle events out to
// subscribers. All methods are safe for concurrent use.
type Registry struct {
	mu        sync.Mutex
	now       func() time.Time
	id        func() string
	retention time.Duration
	sweepEvry time.Duration
	jobs      map[string]*trackedJob
	logger    interfaces.Logger

	stopOnce sync.Once
	stop     chan struct{}
}

// Option customizes registry behaviour.
type Option func(*Registry)

// WithClock overrides the internal clock, used mainly for tests.
func WithClock(clock func() time.Time) Option {
	return func(r *Registry) {
		if clock != nil {
			r.now = clock
		}
	}
}

// WithIDGenerator overrides the job ID generator.
func WithIDGenerator(generator func() string) Option {
	return func(r *Registry) {
		if generator != nil {
			r.id = generator
		}
	}
}

// WithRetention overrides how long finished and stale jobs are kept before
// the reaper removes them, and how often the reaper sweeps.
func WithRetention(retention, sweepEvery time.Duration) Option {
	return func(r *Registry) {
		if retention > 0 {
			r.retention = retention
		}
		if sweepEvery > 0 {
			r.sweepEvry = sweepEvery
		}
	}
}

// WithLogger attaches a logger for lifecycle diagnostics.
func WithLogger(logger interfaces.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry creates an empty registry. Call StartReaper to enable the
// retention sweep and Close to release it.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		now:       time.Now,
		id:        func() string { return uuid.NewString() },
		retention: defaultRetention,
		sweepEvry: defaultSweepEvery,
		jobs:      make(map[string]*trackedJob),
		logger:    logging.NoOp(),
		stop:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Create registers a new pending job and returns its snapshot.
func (r *Registry) Create() Job {
	r.mu.Lock()
	defer r.mu.Unlock()

	tracked := &trackedJob{
		Job: Job{
			ID:        r.id(),
			Status:    StatusPending,
			Progress:  Progress{Message: initialProgressMsg},
			CreatedAt: r.now(),
		},
		subscribers: make(map[int]chan Event),
	}
	r.jobs[tracked.ID] = tracked
	r.logger.Debug("job created", "job_id", tracked.ID)
	return tracked.Job
}

// Get returns a snapshot of the job, or ErrJobNotFound.
func (r *Registry) Get(id string) (Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tracked, ok := r.jobs[id]
	if !ok {
		return Job{}, ErrJobNotFound
	}
	return tracked.Job, nil
}

// Subscribe attaches a listener to the job's event stream. For jobs already
// in a terminal state the channel replays the terminal event and closes.
// The returned cancel func detaches the listener without affecting the job.
func (r *Registry) Subscribe(id string) (<-chan Event, func(), error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tracked, ok := r.jobs[id]
	if !ok {
		return nil, nil, ErrJobNotFound
	}

	ch := make(chan Event, subscriberBacklog)
	if tracked.Status.Terminal() {
		ch <- terminalEvent(tracked.Job)
		close(ch)
		return ch, func() {}, nil
	}

	key := tracked.nextSub
	tracked.nextSub++
	tracked.subscribers[key] = ch

	cancel := func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if current, ok := r.jobs[id]; ok {
			if _, live := current.subscribers[key]; live {
				delete(current.subscribers, key)
				close(ch)
			}
		}
	}
	return ch, cancel, nil
}

// GenerateFunc produces the project archive for a job, reporting progress
// through emit as it goes.
type GenerateFunc func(ctx context.Context, emit func(step, total int, message string)) (*interfaces.BuildArtifact, error)

// Run executes the generation asynchronously, moving the job through its
// lifecycle and broadcasting events. Panics inside fn are recovered and
// recorded as job errors so a bad template never takes the service down.
func (r *Registry) Run(ctx context.Context, id string, fn GenerateFunc) error {
	r.mu.Lock()
	tracked, ok := r.jobs[id]
	if !ok {
		r.mu.Unlock()
		return ErrJobNotFound
	}
	if tracked.Status != StatusPending {
		r.mu.Unlock()
		return fmt.Errorf("jobs: job %s already started", id)
	}
	tracked.Status = StatusProcessing
	r.mu.Unlock()

	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				r.logger.Error("generation panicked", "job_id", id, "panic", rec)
				r.fail(id, fmt.Sprintf("generation panicked: %v", rec))
			}
		}()

		emit := func(step, total int, message string) {
			r.progress(id, Progress{Step: step, Total: total, Message: message})
		}

		artifact, err := fn(ctx, emit)
		if err != nil {
			r.logger.Error("generation failed", "job_id", id, "error", err)
			r.fail(id, err.Error())
			return
		}
		r.complete(id, artifact)
	}()
	return nil
}

// SetBuildArchive caches a built bundle on a completed job so repeated
// downloads skip the npm run.
func (r *Registry) SetBuildArchive(id string, artifact *interfaces.BuildArtifact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tracked, ok := r.jobs[id]
	if !ok {
		return ErrJobNotFound
	}
	tracked.BuildArchive = artifact
	return nil
}

// StartReaper launches the background sweep removing jobs past retention.
func (r *Registry) StartReaper() {
	go func() {
		ticker := time.NewTicker(r.sweepEvry)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				r.Sweep()
			case <-r.stop:
				return
			}
		}
	}()
}

// Close stops the reaper. Tracked jobs stay readable until swept manually.
func (r *Registry) Close() {
	r.stopOnce.Do(func() { close(r.stop) })
}

// Sweep removes jobs older than the retention window and returns how many
// were purged. Exposed so operators and tests can trigger it directly.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.retention)
	purged := 0
	for id, tracked := range r.jobs {
		if tracked.CreatedAt.After(cutoff) {
			continue
		}
		for key, ch := range tracked.subscribers {
			delete(tracked.subscribers, key)
			close(ch)
		}
		delete(r.jobs, id)
		purged++
	}
	if purged > 0 {
		r.logger.Debug("reaper purged jobs", "count", purged)
	}
	return purged
}

func (r *Registry) progress(id string, p Progress) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tracked, ok := r.jobs[id]
	if !ok || tracked.Status.Terminal() {
		return
	}
	tracked.Progress = p
	r.broadcastLocked(tracked, Event{Type: EventProgress, Data: p})
}

func (r *Registry) complete(id string, artifact *interfaces.BuildArtifact) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tracked, ok := r.jobs[id]
	if !ok || tracked.Status.Terminal() {
		return
	}
	tracked.Status = StatusComplete
	tracked.Archive = artifact
	r.broadcastLocked(tracked, Event{Type: EventComplete})
	r.closeSubscribersLocked(tracked)
}

func (r *Registry) fail(id, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tracked, ok := r.jobs[id]
	if !ok || tracked.Status.Terminal() {
		return
	}
	tracked.Status = StatusError
	tracked.Error = message
	r.broadcastLocked(tracked, Event{Type: EventError, Data: message})
	r.closeSubscribersLocked(tracked)
}

// broadcastLocked fans the event out without blocking generation on slow
// consumers. A full channel drops the event; the channel close that follows
// a terminal event still signals completion to lagging subscribers.
func (r *Registry) broadcastLocked(tracked *trackedJob, event Event) {
	for _, ch := range tracked.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}

func (r *Registry) closeSubscribersLocked(tracked *trackedJob) {
	for key, ch := range tracked.subscribers {
		delete(tracked.subscribers, key)
		close(ch)
	}
}

func terminalEvent(job Job) Event {
	if job.Status == StatusError {
		return Event{Type: EventError, Data: job.Error}
	}
	return Event{Type: EventComplete}
}
