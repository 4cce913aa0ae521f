// Package allocator hands out employee ids.
//
// An id is MAX(emp_id)+1, floored at the configured minimum, and checked
// against the store before it is returned. Reading the max and inserting the
// row are not atomic, so callers that insert should go through Reserve: it
// runs allocation and insert inside the Locker's critical section, and the
// unique index on emp_id rejects whatever still slips past (another process
// with a local locker, a hand-written row). Every retry loop is bounded.
package allocator

import (
	"context"
	"errors"
	"math"
	"time"

	"iris_manager/be/biz/config"
	"iris_manager/be/biz/model/errs"
	"iris_manager/be/biz/util/metrics"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

const (
	DefaultMinEmpID    int64 = 1000
	DefaultMaxEmpID    int64 = math.MaxInt32
	DefaultMaxAttempts       = 5
)

// ErrEmpIDTaken is returned by an insert callback when the store rejected the
// reserved id as a duplicate.
var ErrEmpIDTaken = errors.New("emp_id already taken")

type Store interface {
	MaxEmpID(ctx context.Context) (int64, error)
	ExistsEmpID(ctx context.Context, empID int64) (bool, error)
}

type Allocator struct {
	store       Store
	locker      Locker
	minID       int64
	ceiling     int64
	maxAttempts int
}

type Option func(*Allocator)

func WithMinEmpID(minID int64) Option {
	return func(a *Allocator) {
		if minID > 0 {
			a.minID = minID
		}
	}
}

// WithMaxEmpID sets the highest id the allocator hands out or accepts.
func WithMaxEmpID(maxID int64) Option {
	return func(a *Allocator) {
		if maxID > 0 {
			a.ceiling = maxID
		}
	}
}

func WithMaxAttempts(n int) Option {
	return func(a *Allocator) {
		if n > 0 {
			a.maxAttempts = n
		}
	}
}

func New(store Store, locker Locker, opts ...Option) *Allocator {
	a := &Allocator{
		store:       store,
		locker:      locker,
		minID:       DefaultMinEmpID,
		ceiling:     DefaultMaxEmpID,
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// NewDefault builds an allocator on store with the process-wide locker and
// the allocator config section.
func NewDefault(store Store) *Allocator {
	conf := config.GetAllocatorConf()
	return New(store, DefaultLocker(),
		WithMinEmpID(conf.MinEmpID),
		WithMaxEmpID(conf.MaxEmpID),
		WithMaxAttempts(conf.MaxAttempts),
	)
}

// Ceiling is the highest valid employee id.
func (a *Allocator) Ceiling() int64 {
	return a.ceiling
}

// InRange reports whether empID may be stored as a supplied employee id.
func (a *Allocator) InRange(empID int64) bool {
	return empID > 0 && empID <= a.ceiling
}

// Next returns an id that was free when checked. It does not reserve it.
func (a *Allocator) Next(ctx context.Context) (int64, errs.Error) {
	for attempt := 1; attempt <= a.maxAttempts; attempt++ {
		maxID, err := a.store.MaxEmpID(ctx)
		if err != nil {
			hlog.CtxErrorf(ctx, "allocator MaxEmpID err: %v", err)
			return 0, errs.ServerError.SetErr(err)
		}
		if maxID >= a.ceiling {
			metrics.EmpIDExhaustedTotal.Inc()
			hlog.CtxErrorf(ctx, "emp_id space exhausted: max %d reached ceiling %d", maxID, a.ceiling)
			return 0, errs.AllocationExhausted
		}

		next := a.minID
		if maxID > 0 {
			next = maxID + 1
		}
		if next < a.minID {
			next = a.minID
		}

		taken, err := a.store.ExistsEmpID(ctx, next)
		if err != nil {
			hlog.CtxErrorf(ctx, "allocator ExistsEmpID err: %v", err)
			return 0, errs.ServerError.SetErr(err)
		}
		if !taken {
			return next, nil
		}
		metrics.EmpIDRetriesTotal.WithLabelValues(metrics.RetryCandidateTaken).Inc()
		hlog.CtxNoticef(ctx, "emp_id candidate %d taken, recomputing (attempt %d/%d)", next, attempt, a.maxAttempts)
	}

	metrics.EmpIDExhaustedTotal.Inc()
	hlog.CtxWarnf(ctx, "emp_id allocation exhausted after %d attempts", a.maxAttempts)
	return 0, errs.AllocationExhausted
}

// Reserve allocates an id and hands it to insert while holding the lock.
// When insert returns ErrEmpIDTaken the whole step is retried; any other
// insert error is returned as is (errs.Error) or as ServerError.
func (a *Allocator) Reserve(ctx context.Context, insert func(ctx context.Context, empID int64) error) (int64, errs.Error) {
	for attempt := 1; attempt <= a.maxAttempts; attempt++ {
		empID, err := a.reserveOnce(ctx, insert)
		if err == nil {
			return empID, nil
		}
		if !errors.Is(err, ErrEmpIDTaken) {
			return 0, asBizErr(err)
		}
		metrics.EmpIDRetriesTotal.WithLabelValues(metrics.RetryInsertRejected).Inc()
		hlog.CtxWarnf(ctx, "emp_id %d rejected by store, retrying (attempt %d/%d)", empID, attempt, a.maxAttempts)
	}
	metrics.EmpIDExhaustedTotal.Inc()
	return 0, errs.AllocationExhausted
}

func (a *Allocator) reserveOnce(ctx context.Context, insert func(ctx context.Context, empID int64) error) (int64, error) {
	start := time.Now()
	unlock, err := a.locker.Lock(ctx)
	metrics.EmpIDLockWait.Observe(time.Since(start).Seconds())
	if err != nil {
		hlog.CtxErrorf(ctx, "allocator lock err: %v", err)
		return 0, err
	}
	defer unlock()

	empID, bizErr := a.Next(ctx)
	if bizErr != nil {
		return 0, bizErr
	}
	return empID, insert(ctx, empID)
}

func asBizErr(err error) errs.Error {
	var bizErr errs.Error
	if errors.As(err, &bizErr) {
		return bizErr
	}
	return errs.ServerError.SetErr(err)
}
