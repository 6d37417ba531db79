// Package gateway issues the five users REST calls against a fixed base URL.
// It keeps no state between calls: no cache, no retries, no de-duplication.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/shuvava/go-users-client/client"
)

const usersPath = "/users"

// Gateway is the boundary object for the users collection.
type Gateway struct {
	baseURL  string
	client   client.HTTPClient
	validate *validator.Validate
	log      *zap.Logger
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithHTTPClient sets the transport. Pass the Client field of an enriched
// client.Client to get its middleware applied.
func WithHTTPClient(c client.HTTPClient) Option {
	return func(g *Gateway) {
		g.client = c
	}
}

// WithLogger sets the logger; calls are logged at debug level.
func WithLogger(log *zap.Logger) Option {
	return func(g *Gateway) {
		g.log = log
	}
}

// WithValidator replaces the validator used on ids and drafts.
func WithValidator(v *validator.Validate) Option {
	return func(g *Gateway) {
		g.validate = v
	}
}

// New creates a Gateway for the API rooted at baseURL, e.g.
// https://jsonplaceholder.typicode.com.
func New(baseURL string, opts ...Option) (*Gateway, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be an absolute http(s) url", baseURL)
	}

	g := &Gateway{
		baseURL: strings.TrimSuffix(u.String(), "/"),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.client == nil {
		g.client = client.DefaultPooledClient()
	}
	if g.validate == nil {
		g.validate = validator.New()
	}
	if g.log == nil {
		g.log = zap.NewNop()
	}
	return g, nil
}

// BaseURL returns the normalized base URL.
func (g *Gateway) BaseURL() string {
	return g.baseURL
}

// ListUsers fetches the whole collection in server order.
func (g *Gateway) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := g.do(ctx, http.MethodGet, g.collectionURL(), nil, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = []User{}
	}
	return users, nil
}

// GetUser fetches one user. A missing user yields an error matching ErrNotFound.
func (g *Gateway) GetUser(ctx context.Context, id int) (User, error) {
	if err := g.checkID(id); err != nil {
		return User{}, err
	}
	var u User
	if err := g.do(ctx, http.MethodGet, g.itemURL(id), nil, &u); err != nil {
		return User{}, err
	}
	return u, nil
}

// CreateUser posts draft and returns the record echoed by the backend with
// its assigned id. The backend is not required to persist it.
func (g *Gateway) CreateUser(ctx context.Context, draft User) (User, error) {
	if draft.ID != 0 {
		return User{}, invalidArgument("create draft must not carry an id, got %d", draft.ID)
	}
	if err := g.checkDraft(draft); err != nil {
		return User{}, err
	}
	var u User
	if err := g.do(ctx, http.MethodPost, g.collectionURL(), draft, &u); err != nil {
		return User{}, err
	}
	return u, nil
}

// UpdateUser replaces the user with draft. Fields left empty in draft are
// sent empty and therefore cleared.
func (g *Gateway) UpdateUser(ctx context.Context, id int, draft User) (User, error) {
	if err := g.checkID(id); err != nil {
		return User{}, err
	}
	draft.ID = id
	if err := g.checkDraft(draft); err != nil {
		return User{}, err
	}
	var u User
	if err := g.do(ctx, http.MethodPut, g.itemURL(id), draft, &u); err != nil {
		return User{}, err
	}
	return u, nil
}

// DeleteUser asks the backend to delete the user. Success means the request
// was acknowledged, not that the user is gone.
func (g *Gateway) DeleteUser(ctx context.Context, id int) error {
	if err := g.checkID(id); err != nil {
		return err
	}
	return g.do(ctx, http.MethodDelete, g.itemURL(id), nil, nil)
}

// Close releases idle connections held by the transport.
func (g *Gateway) Close() {
	g.client.CloseIdleConnections()
}

func (g *Gateway) collectionURL() string {
	return g.baseURL + usersPath
}

func (g *Gateway) itemURL(id int) string {
	return g.baseURL + usersPath + "/" + strconv.Itoa(id)
}

func (g *Gateway) checkID(id int) error {
	if err := g.validate.Var(id, "gt=0"); err != nil {
		return invalidArgument("user id must be a positive integer, got %d", id)
	}
	return nil
}

func (g *Gateway) checkDraft(draft User) error {
	if err := draft.Validate(g.validate); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return invalidArgument("field %s failed %q check", verrs[0].Namespace(), verrs[0].Tag())
		}
		return invalidArgument("%v", err)
	}
	return nil
}

// do sends one request and decodes a 2xx JSON body into out, unless out is nil.
func (g *Gateway) do(ctx context.Context, method, target string, body, out interface{}) error {
	op := method + " " + strings.TrimPrefix(target, g.baseURL)
	log := g.log.With(zap.String("op", op))

	req, err := client.NewRequest(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}

	log.Debug("sending request")
	resp, err := g.client.Do(req.Request)
	if err != nil {
		log.Debug("request failed", zap.Error(err))
		return &NetworkError{Op: op, Err: err}
	}

	if err = client.ReadResponse(resp, out); err != nil {
		log.Debug("request failed", zap.Int("status", resp.StatusCode), zap.Error(err))
		var statusErr *HTTPStatusError
		if errors.As(err, &statusErr) {
			return statusErr
		}
		return &DecodeError{Op: op, Err: err}
	}
	log.Debug("request succeeded", zap.Int("status", resp.StatusCode))
	return nil
}
