package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/spec-kit/admin-dashboard/internal/domain"
)

// ErrDirectoryUnavailable wraps every failed call to the remote directory:
// transport errors, non-2xx answers and undecodable bodies alike.
var ErrDirectoryUnavailable = errors.New("user directory unavailable")

// UserDirectory defines access to the remote user directory.
type UserDirectory interface {
	List(ctx context.Context) ([]domain.User, error)
	Delete(ctx context.Context, id int) error
}

type userDirectory struct {
	baseURL string
	client  *http.Client
}

// NewUserDirectory returns an HTTP-backed directory rooted at baseURL.
func NewUserDirectory(baseURL string, timeout time.Duration) UserDirectory {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &userDirectory{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// NewUserDirectoryWithClient uses a caller supplied client.
func NewUserDirectoryWithClient(baseURL string, client *http.Client) UserDirectory {
	return &userDirectory{baseURL: baseURL, client: client}
}

// directoryUser is the wire shape of a directory record. status and region are
// optional.
type directoryUser struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Status string `json:"status"`
	Region string `json:"region"`
}

func (r *userDirectory) List(ctx context.Context) ([]domain.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/users", nil)
	if err != nil {
		return nil, fmt.Errorf("build list request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDirectoryUnavailable, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var payload []directoryUser
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode users: %v", ErrDirectoryUnavailable, err)
	}

	users := make([]domain.User, 0, len(payload))
	for _, p := range payload {
		users = append(users, domain.User{
			ID:     p.ID,
			Name:   p.Name,
			Email:  p.Email,
			Status: domain.UserStatus(p.Status),
			Region: p.Region,
		})
	}
	return users, nil
}

func (r *userDirectory) Delete(ctx context.Context, id int) error {
	url := r.baseURL + "/users/" + strconv.Itoa(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("build delete request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDirectoryUnavailable, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return checkStatus(resp)
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s %s returned %d",
			ErrDirectoryUnavailable, resp.Request.Method, resp.Request.URL.Path, resp.StatusCode)
	}
	return nil
}
