// Package userservice is the client the profile page uses to read users and
// their inventories from the API.
package userservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/saradorri/flipside/internal/config"
	"github.com/saradorri/flipside/internal/domain"
	"github.com/saradorri/flipside/internal/infrastructure/external/restclient"
	"github.com/saradorri/flipside/internal/infrastructure/logger"
)

// Client implements profile.UserService and profile.InventoryService
type Client struct {
	rest  *restclient.Client
	token string
}

// NewClient creates a client for the API at baseURL. A non-empty token is
// sent as the bearer credential of the viewer.
func NewClient(baseURL, token string, opts restclient.Options, log *logger.Logger) *Client {
	if log == nil {
		log = logger.NewNop()
	}
	return &Client{
		rest:  restclient.New(baseURL, nil, opts, log.Named("userservice")),
		token: token,
	}
}

// NewProfileClient creates a client from the profile section of the config
func NewProfileClient(cfg config.ProfileConfig, token string, log *logger.Logger) *Client {
	return NewClient(cfg.APIURL, token, restclient.Options{
		Timeout:  cfg.Timeout,
		RetryMax: cfg.RetryMax,
	}, log)
}

func (c *Client) authHeader() http.Header {
	if c.token == "" {
		return nil
	}
	h := http.Header{}
	h.Set("Authorization", "Bearer "+c.token)
	return h
}

// GetUser fetches the public profile of id
func (c *Client) GetUser(ctx context.Context, id string) (*domain.Profile, error) {
	var profile domain.Profile
	path := "/api/v1/users/" + url.PathEscape(id)
	if err := c.rest.Get(ctx, path, nil, c.authHeader(), &profile); err != nil {
		return nil, toAppError("get user", err)
	}

	if profile.ID == "" {
		return nil, domain.NewMalformedPayloadError("user", "id is missing")
	}
	return &profile, nil
}

// GetInventory fetches one page of id's inventory
func (c *Client) GetInventory(ctx context.Context, id string, page int, filters domain.InventoryFilters) (*domain.InventoryPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("name", filters.Name)
	query.Set("rarity", filters.Rarity)
	query.Set("sortBy", filters.SortBy)
	query.Set("order", filters.Order)

	var resp domain.InventoryPage
	path := "/api/v1/users/" + url.PathEscape(id) + "/inventory"
	if err := c.rest.Get(ctx, path, query, c.authHeader(), &resp); err != nil {
		return nil, toAppError("get inventory", err)
	}

	if err := resp.Validate(); err != nil {
		return nil, err
	}
	return &resp, nil
}

// toAppError restores the AppError carried by an error response
func toAppError(operation string, err error) error {
	var statusErr *restclient.StatusError
	if !errors.As(err, &statusErr) {
		return domain.NewExternalServiceError("userservice", operation, err)
	}

	var errResp domain.ErrorResponse
	if json.Unmarshal(statusErr.Body, &errResp) == nil && errResp.Error != nil && errResp.Error.Code != "" {
		appErr := errResp.Error
		appErr.HTTPStatus = statusErr.StatusCode
		return appErr
	}

	return domain.NewAppError(
		domain.ErrCodeUserServiceError,
		fmt.Sprintf("User service returned status %d", statusErr.StatusCode),
		statusErr.StatusCode,
		err,
	)
}
