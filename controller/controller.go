// Package controller keeps the UI-facing state of the users view and folds
// every gateway response into it.
//
// All five operations follow the same lifecycle: the status turns to loading
// when the call starts, then to idle with the response reconciled into the
// state, or to error with the state left as it was. There is one status for
// all operations and no request fencing: a response that arrives late is
// still applied, last writer wins.
package controller

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/shuvava/go-users-client/gateway"
)

// ErrFormClosed is delivered by Save when no form is open.
var ErrFormClosed = errors.New("form is closed")

// UserGateway is the remote side of the controller. *gateway.Gateway implements it.
type UserGateway interface {
	ListUsers(ctx context.Context) ([]gateway.User, error)
	GetUser(ctx context.Context, id int) (gateway.User, error)
	CreateUser(ctx context.Context, draft gateway.User) (gateway.User, error)
	UpdateUser(ctx context.Context, id int, draft gateway.User) (gateway.User, error)
	DeleteUser(ctx context.Context, id int) error
}

// Controller owns the user list, the selected user, the request status and
// the edit form.
type Controller struct {
	gw  UserGateway
	log *zap.Logger

	mu          sync.Mutex
	state       State
	version     uint64
	subscribers map[int]func(State)
	nextID      int

	// notifyMu orders deliveries; sent is the version last delivered.
	notifyMu sync.Mutex
	sent     uint64
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for operation lifecycle entries.
func WithLogger(log *zap.Logger) Option {
	return func(c *Controller) {
		c.log = log
	}
}

// New creates a Controller with an empty list, idle status and closed form.
func New(gw UserGateway, opts ...Option) *Controller {
	c := &Controller{
		gw:          gw,
		subscribers: map[int]func(State){},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	return c
}

// Init is called once by the owner of the controller when the view mounts.
func (c *Controller) Init(ctx context.Context) error {
	return c.LoadUsers(ctx)
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Subscribe registers fn to receive a snapshot after state changes.
// fn runs on the goroutine that made the change. Deliveries never go back in
// time: a snapshot older than one already delivered is dropped, so the last
// snapshot fn sees is the current state. fn must not change the controller.
// The returned func removes the subscription.
func (c *Controller) Subscribe(fn func(State)) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subscribers[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subscribers, id)
		c.mu.Unlock()
	}
}

// LoadUsers replaces the list with the collection returned by the backend.
func (c *Controller) LoadUsers(ctx context.Context) error {
	const op = "list"
	c.begin(op)
	users, err := c.gw.ListUsers(ctx)
	if err != nil {
		return c.fail(op, err)
	}
	loaded := make([]gateway.User, len(users))
	copy(loaded, users)
	c.succeed(op, func(s *State) {
		s.Users = loaded
	})
	return nil
}

// LoadUser stores the user with the given id as the selected one. The list
// is not touched.
func (c *Controller) LoadUser(ctx context.Context, id int) error {
	const op = "get"
	c.begin(op)
	u, err := c.gw.GetUser(ctx, id)
	if err != nil {
		return c.fail(op, err)
	}
	c.succeed(op, func(s *State) {
		s.Selected = &u
	})
	return nil
}

// CreateUser creates draft and appends the created user to the list.
func (c *Controller) CreateUser(ctx context.Context, draft gateway.User) error {
	const op = "create"
	c.begin(op)
	u, err := c.gw.CreateUser(ctx, draft)
	if err != nil {
		return c.fail(op, err)
	}
	c.succeed(op, func(s *State) {
		s.Users = appendUser(s.Users, u)
	})
	return nil
}

// UpdateUser replaces user id with draft and puts the response in place of
// the first list entry with that id. If the list has no such entry it stays
// as it is.
func (c *Controller) UpdateUser(ctx context.Context, id int, draft gateway.User) error {
	const op = "update"
	c.begin(op)
	u, err := c.gw.UpdateUser(ctx, id, draft)
	if err != nil {
		return c.fail(op, err)
	}
	c.succeed(op, func(s *State) {
		s.Users = replaceUser(s.Users, id, u)
	})
	return nil
}

// DeleteUser deletes user id and removes every list entry with that id.
func (c *Controller) DeleteUser(ctx context.Context, id int) error {
	const op = "delete"
	c.begin(op)
	if err := c.gw.DeleteUser(ctx, id); err != nil {
		return c.fail(op, err)
	}
	c.succeed(op, func(s *State) {
		s.Users = removeUser(s.Users, id)
	})
	return nil
}

func (c *Controller) begin(op string) {
	c.log.Debug("operation started", zap.String("op", op))
	c.update(func(s *State) {
		s.Status = Status{Kind: StatusLoading}
	})
}

func (c *Controller) succeed(op string, reconcile func(*State)) {
	c.log.Debug("operation succeeded", zap.String("op", op))
	c.update(func(s *State) {
		reconcile(s)
		s.Status = Status{Kind: StatusIdle}
	})
}

func (c *Controller) fail(op string, err error) error {
	c.log.Warn("operation failed", zap.String("op", op), zap.Error(err))
	c.update(func(s *State) {
		s.Status = Status{Kind: StatusError, Message: err.Error()}
	})
	return err
}

// update applies fn under the lock and notifies subscribers outside of it.
func (c *Controller) update(fn func(*State)) {
	c.mu.Lock()
	fn(&c.state)
	c.version++
	version := c.version
	snapshot := c.state.clone()
	subs := make([]func(State), 0, len(c.subscribers))
	for _, sub := range c.subscribers {
		subs = append(subs, sub)
	}
	c.mu.Unlock()

	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()
	if version <= c.sent {
		return
	}
	c.sent = version
	for _, sub := range subs {
		sub(snapshot.clone())
	}
}
