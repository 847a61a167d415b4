// Package health aggregates liveness checks from the components that can
// fail independently of a chat turn: the SQLite store and the reservation
// ledger's occupancy bookkeeping.
package health

import (
	"sync"
	"time"
)

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// ComponentHealth is the result of one component's check.
type ComponentHealth struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Report is the aggregate served on the health endpoint.
type Report struct {
	Timestamp  time.Time                  `json:"timestamp"`
	Status     string                     `json:"status"`
	Components map[string]ComponentHealth `json:"components"`
}

// Checker is one component's health probe.
type Checker interface {
	HealthCheck() ComponentHealth
}

// CheckFunc adapts a plain function to Checker, so components can register
// a closure instead of implementing the interface.
type CheckFunc func() ComponentHealth

func (f CheckFunc) HealthCheck() ComponentHealth { return f() }

// OK reports a healthy component.
func OK(name string) ComponentHealth {
	return ComponentHealth{Name: name, Status: StatusOK}
}

// Errorf reports a failing component with a human-readable reason.
func Errorf(name, message string) ComponentHealth {
	return ComponentHealth{Name: name, Status: StatusError, Message: message}
}

// Registry holds the registered checkers.
type Registry struct {
	mu       sync.RWMutex
	checkers map[string]Checker
}

func NewRegistry() *Registry {
	return &Registry{checkers: make(map[string]Checker)}
}

// Register adds a component probe under a stable name.
func (r *Registry) Register(name string, checker Checker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers[name] = checker
}

// Check runs every probe and rolls the results up into one report. The
// overall status is the worst component status.
func (r *Registry) Check() Report {
	r.mu.RLock()
	defer r.mu.RUnlock()

	report := Report{
		Timestamp:  time.Now(),
		Status:     StatusOK,
		Components: make(map[string]ComponentHealth, len(r.checkers)),
	}
	for name, checker := range r.checkers {
		c := checker.HealthCheck()
		report.Components[name] = c
		if c.Status != StatusOK {
			report.Status = StatusError
		}
	}
	return report
}
