// Package ledger holds the roommates and chores of a single session and
// applies the assignment and completion rules that move points around.
package ledger

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/dukerupert/choresplit/internal/model"
	"github.com/google/uuid"
)

// Ledger is the only place roommate and chore state may change. All reads
// return copies. A single RWMutex guards the whole ledger so an operation
// either applies completely or not at all.
type Ledger struct {
	mu        sync.RWMutex
	roommates []*model.Roommate
	chores    []*model.Chore
	nextOrder int
	now       func() time.Time
	newID     func() string
}

// Option configures a Ledger built by New.
type Option func(*Ledger)

// WithClock sets the time source used for creation and completion
// timestamps.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// WithIDGenerator replaces the UUID generator for roommate and chore ids.
func WithIDGenerator(fn func() string) Option {
	return func(l *Ledger) {
		l.newID = fn
	}
}

// New returns an empty ledger.
func New(opts ...Option) *Ledger {
	l := &Ledger{
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// --- Roommate methods ---

func (l *Ledger) AddRoommate(name string) (model.Roommate, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Roommate{}, fmt.Errorf("%w: name is required", ErrValidation)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	r := l.insertRoommate(name, 0)
	return *r, nil
}

// RemoveRoommate deletes the roommate and clears them as assignee on every
// chore that referenced them. Points already earned leave with the roommate.
func (l *Ledger) RemoveRoommate(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.roommateIndex(id)
	if i < 0 {
		return fmt.Errorf("%w: roommate %s", ErrNotFound, id)
	}

	for _, c := range l.chores {
		if c.AssignedTo != nil && *c.AssignedTo == id {
			c.AssignedTo = nil
		}
	}
	l.roommates = append(l.roommates[:i], l.roommates[i+1:]...)
	return nil
}

func (l *Ledger) Roommate(id string) (model.Roommate, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	i := l.roommateIndex(id)
	if i < 0 {
		return model.Roommate{}, fmt.Errorf("%w: roommate %s", ErrNotFound, id)
	}
	return *l.roommates[i], nil
}

// Roommates returns all roommates in creation order.
func (l *Ledger) Roommates() []model.Roommate {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]model.Roommate, 0, len(l.roommates))
	for _, r := range l.roommates {
		out = append(out, *r)
	}
	return out
}

// --- Chore methods ---

// AddChore creates an unassigned, incomplete chore. Points must be between 1
// and MaxPoints; use ParsePoints to turn free-text input into a value.
func (l *Ledger) AddChore(title, description string, points int) (model.Chore, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Chore{}, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if points < 1 || points > MaxPoints {
		return model.Chore{}, fmt.Errorf("%w: points must be between 1 and %d, got %d", ErrValidation, MaxPoints, points)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	c := l.insertChore(title, strings.TrimSpace(description), points)
	return copyChore(c), nil
}

// RemoveChore deletes a chore in any state. Points awarded for a completed
// chore stay with the roommate who earned them.
func (l *Ledger) RemoveChore(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.choreIndex(id)
	if i < 0 {
		return fmt.Errorf("%w: chore %s", ErrNotFound, id)
	}
	l.chores = append(l.chores[:i], l.chores[i+1:]...)
	return nil
}

// AssignChore sets or replaces the chore's assignee. Reassigning a completed
// chore changes only the reference; awarded points stand.
func (l *Ledger) AssignChore(choreID, roommateID string) (model.Chore, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ci := l.choreIndex(choreID)
	if ci < 0 {
		return model.Chore{}, fmt.Errorf("%w: chore %s", ErrNotFound, choreID)
	}
	if l.roommateIndex(roommateID) < 0 {
		return model.Chore{}, fmt.Errorf("%w: roommate %s", ErrNotFound, roommateID)
	}

	c := l.chores[ci]
	assignee := roommateID
	c.AssignedTo = &assignee
	return copyChore(c), nil
}

// CompleteChore marks an assigned chore done and credits its points to the
// assignee. A chore can be completed once.
func (l *Ledger) CompleteChore(choreID string) (model.Chore, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ci := l.choreIndex(choreID)
	if ci < 0 {
		return model.Chore{}, fmt.Errorf("%w: chore %s", ErrNotFound, choreID)
	}
	c := l.chores[ci]
	if c.IsCompleted {
		return model.Chore{}, fmt.Errorf("%w: chore %s is already completed", ErrInvalidState, choreID)
	}
	if c.AssignedTo == nil {
		return model.Chore{}, fmt.Errorf("%w: chore %s is not assigned", ErrInvalidState, choreID)
	}
	ri := l.roommateIndex(*c.AssignedTo)
	if ri < 0 {
		return model.Chore{}, fmt.Errorf("%w: assignee %s of chore %s no longer exists", ErrInvalidState, *c.AssignedTo, choreID)
	}

	if l.roommates[ri].Points > math.MaxInt-c.Points {
		return model.Chore{}, fmt.Errorf("%w: awarding %d points would overflow the balance of %s", ErrInvalidState, c.Points, *c.AssignedTo)
	}

	completedAt := l.now()
	c.IsCompleted = true
	c.CompletedAt = &completedAt
	l.roommates[ri].Points += c.Points
	return copyChore(c), nil
}

func (l *Ledger) Chore(id string) (model.Chore, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	i := l.choreIndex(id)
	if i < 0 {
		return model.Chore{}, fmt.Errorf("%w: chore %s", ErrNotFound, id)
	}
	return copyChore(l.chores[i]), nil
}

// Chores returns all chores in creation order.
func (l *Ledger) Chores() []model.Chore {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]model.Chore, 0, len(l.chores))
	for _, c := range l.chores {
		out = append(out, copyChore(c))
	}
	return out
}

// ChoresFor returns the chores currently assigned to the roommate.
func (l *Ledger) ChoresFor(roommateID string) ([]model.Chore, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.roommateIndex(roommateID) < 0 {
		return nil, fmt.Errorf("%w: roommate %s", ErrNotFound, roommateID)
	}

	out := []model.Chore{}
	for _, c := range l.chores {
		if c.AssignedTo != nil && *c.AssignedTo == roommateID {
			out = append(out, copyChore(c))
		}
	}
	return out, nil
}

// --- internal helpers; callers hold l.mu ---

func (l *Ledger) insertRoommate(name string, points int) *model.Roommate {
	r := &model.Roommate{
		ID:        l.newID(),
		Name:      name,
		Points:    points,
		SortOrder: l.nextOrder,
		CreatedAt: l.now(),
	}
	l.nextOrder++
	l.roommates = append(l.roommates, r)
	return r
}

func (l *Ledger) insertChore(title, description string, points int) *model.Chore {
	c := &model.Chore{
		ID:          l.newID(),
		Title:       title,
		Description: description,
		Points:      points,
		SortOrder:   l.nextOrder,
		CreatedAt:   l.now(),
	}
	l.nextOrder++
	l.chores = append(l.chores, c)
	return c
}

func (l *Ledger) roommateIndex(id string) int {
	for i, r := range l.roommates {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func (l *Ledger) choreIndex(id string) int {
	for i, c := range l.chores {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func copyChore(c *model.Chore) model.Chore {
	out := *c
	if c.AssignedTo != nil {
		a := *c.AssignedTo
		out.AssignedTo = &a
	}
	if c.CompletedAt != nil {
		t := *c.CompletedAt
		out.CompletedAt = &t
	}
	return out
}
