// Package api talks to the remote account service. Every call maps to one
// REST endpoint; refusals reported by the service come back as a Result
// carrying the message to show, while transport failures are returned as
// errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aliquis/aliquis-web/internal/models"
)

// Result is the outcome of one remote call.
type Result struct {
	OK     bool                `json:"ok"`
	Status models.Status       `json:"status"`
	Errors []models.FieldError `json:"errors,omitempty"`
}

// Failure turns a transport error into a Result the user can be shown.
func Failure(err error) Result {
	return Result{Status: models.Status{
		Msg: "The account service could not be reached. Please try again later.",
		Cls: "danger",
	}}
}

// Client calls the account service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchUser calls GET /api/user/{username}.
func (c *Client) FetchUser(ctx context.Context, username string) (models.User, Result, error) {
	var u models.User
	res, err := c.do(ctx, http.MethodGet, "/api/user/"+url.PathEscape(username), nil, &u)
	return u, res, err
}

// UpdateUser calls PUT /api/user/{username}.
func (c *Client) UpdateUser(ctx context.Context, u models.User) (Result, error) {
	res, err := c.do(ctx, http.MethodPut, "/api/user/"+url.PathEscape(u.Username), u, nil)
	if err == nil && res.OK && res.Status.Msg == "" {
		res.Status = models.Status{Msg: "Your profile has been updated.", Cls: "success"}
	}
	return res, err
}

// SignUp calls POST /sign-up.
func (c *Client) SignUp(ctx context.Context, req models.SignUpRequest) (Result, error) {
	res, err := c.do(ctx, http.MethodPost, "/sign-up", req, nil)
	if err == nil && res.OK && res.Status.Msg == "" {
		res.Status = models.Status{
			Msg: "Your account has been created. Follow the link sent to your e-mail address to activate it.",
			Cls: "success",
		}
	}
	return res, err
}

// Login calls POST /login.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (Result, error) {
	return c.do(ctx, http.MethodPost, "/login", req, nil)
}

// ConfirmUser calls GET /api/confirm/{token}.
func (c *Client) ConfirmUser(ctx context.Context, token string) (Result, error) {
	return c.do(ctx, http.MethodGet, "/api/confirm/"+url.PathEscape(token), nil, nil)
}

// ReactivateUser calls GET /api/reactivate/{username}.
func (c *Client) ReactivateUser(ctx context.Context, username string) (Result, error) {
	return c.do(ctx, http.MethodGet, "/api/reactivate/"+url.PathEscape(username), nil, nil)
}

// FetchGrants calls GET /api/grants/{username}.
func (c *Client) FetchGrants(ctx context.Context, username string) ([]string, Result, error) {
	var grants []string
	res, err := c.do(ctx, http.MethodGet, "/api/grants/"+url.PathEscape(username), nil, &grants)
	return grants, res, err
}

// statusBody covers both reply shapes of the service: {"msg","cls"} from the
// confirmation endpoints and {"message","errors"} from form endpoints.
type statusBody struct {
	Msg string `json:"msg"`
	Cls string `json:"cls"`
	models.Rejected
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) (Result, error) {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return Result{}, fmt.Errorf("account-service %s: encode: %w", path, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return Result{}, fmt.Errorf("account-service %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("account-service %s: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("account-service %s: read: %w", path, err)
	}

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300
	sb := parseStatus(data)
	res := Result{OK: ok, Status: sb.status()}
	if !ok {
		res.Errors = sb.Errors
		if res.Status.Msg == "" {
			res.Status.Msg = fmt.Sprintf("The account service answered %d.", resp.StatusCode)
		}
		if res.Status.Cls == "" {
			res.Status.Cls = "danger"
		}
		return res, nil
	}
	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return Result{}, fmt.Errorf("account-service %s: decode: %w", path, err)
		}
	}
	return res, nil
}

// parseStatus decodes the message part of a reply. Bodies that are not JSON
// objects, such as the list of grants, carry no message.
func parseStatus(data []byte) statusBody {
	var sb statusBody
	if json.Unmarshal(data, &sb) != nil {
		return statusBody{}
	}
	return sb
}

// status returns the message to show. Style classes arrive prefixed with
// "is-" and are reduced to the bare class name.
func (sb statusBody) status() models.Status {
	msg := sb.Msg
	if msg == "" {
		msg = sb.Message
	}
	return models.Status{Msg: msg, Cls: strings.TrimPrefix(sb.Cls, "is-")}
}
