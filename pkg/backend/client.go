// Package backend is the REST client of the expansion API. Client satisfies
// reconcile.Backend, so the Store can run against a remote server.
package backend

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"expansion/internal/domain"
	"github.com/go-resty/resty/v2"
)

// APIError is a response with success=false or a non-2xx status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend respondeu %d: %s", e.StatusCode, e.Message)
}

// NotFound reports whether the server answered 404.
func (e *APIError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

type response[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Error   string `json:"error"`
}

type Client struct {
	http *resty.Client
}

// NewClient builds a client for baseURL. token, when set, is sent as a bearer token.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	if token != "" {
		c.SetAuthToken(token)
	}
	return &Client{http: c}
}

func call[T any](ctx context.Context, c *Client, method, path string, body interface{}) (T, error) {
	var out response[T]
	var zero T

	req := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&out)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return zero, fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.IsError() || !out.Success {
		msg := out.Error
		if msg == "" {
			msg = resp.Status()
		}
		return zero, &APIError{StatusCode: resp.StatusCode(), Message: msg}
	}
	return out.Data, nil
}

func exec(ctx context.Context, c *Client, method, path string, body interface{}) error {
	_, err := call[struct{}](ctx, c, method, path, body)
	return err
}

func planPath(cityID int64, sub string) string {
	return "/api/plans/" + strconv.FormatInt(cityID, 10) + sub
}

func (c *Client) ListCities(ctx context.Context) ([]domain.City, error) {
	return call[[]domain.City](ctx, c, http.MethodGet, "/api/cities", nil)
}

func (c *Client) SaveCities(ctx context.Context, cities []domain.City) error {
	return exec(ctx, c, http.MethodPost, "/api/cities/bulk", map[string]interface{}{"cities": cities})
}

func (c *Client) UpdateCityStatus(ctx context.Context, cityID int64, status domain.Status) error {
	path := "/api/cities/" + strconv.FormatInt(cityID, 10) + "/status"
	return exec(ctx, c, http.MethodPatch, path, map[string]domain.Status{"status": status})
}

func (c *Client) ListPlans(ctx context.Context) ([]domain.PlanHeader, error) {
	return call[[]domain.PlanHeader](ctx, c, http.MethodGet, "/api/plans", nil)
}

func (c *Client) CreatePlan(ctx context.Context, header domain.PlanHeader) (domain.PlanHeader, error) {
	body := map[string]interface{}{"city_id": header.CityID, "start_month": header.StartMonth}
	return call[domain.PlanHeader](ctx, c, http.MethodPost, "/api/plans", body)
}

func (c *Client) DeletePlan(ctx context.Context, cityID int64) error {
	return exec(ctx, c, http.MethodDelete, planPath(cityID, ""), nil)
}

func (c *Client) GetPlanResults(ctx context.Context, cityID int64) (map[domain.MonthKey]domain.MonthResult, error) {
	out, err := call[map[domain.MonthKey]domain.MonthResult](ctx, c, http.MethodGet, planPath(cityID, "/results"), nil)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = map[domain.MonthKey]domain.MonthResult{}
	}
	return out, nil
}

func (c *Client) SavePlanResults(ctx context.Context, cityID int64, results map[domain.MonthKey]domain.MonthResult) error {
	return exec(ctx, c, http.MethodPut, planPath(cityID, "/results"), map[string]interface{}{"results": results})
}

func (c *Client) DeletePlanResults(ctx context.Context, cityID int64) error {
	return exec(ctx, c, http.MethodDelete, planPath(cityID, "/results"), nil)
}

func (c *Client) GetPlanRealCosts(ctx context.Context, cityID int64) (map[domain.MonthKey]domain.RealCost, error) {
	return call[map[domain.MonthKey]domain.RealCost](ctx, c, http.MethodGet, planPath(cityID, "/real-costs"), nil)
}

func (c *Client) SaveRealCosts(ctx context.Context, cityID int64, costs map[domain.MonthKey]domain.RealCost) error {
	return exec(ctx, c, http.MethodPut, planPath(cityID, "/real-costs"), map[string]interface{}{"real_costs": costs})
}

func (c *Client) GetPlanDetails(ctx context.Context, cityID int64) ([]domain.Phase, error) {
	return call[[]domain.Phase](ctx, c, http.MethodGet, planPath(cityID, "/details"), nil)
}

func (c *Client) SavePlanDetails(ctx context.Context, cityID int64, phases []domain.Phase) error {
	return exec(ctx, c, http.MethodPut, planPath(cityID, "/details"), map[string]interface{}{"phases": phases})
}

func (c *Client) ListBlocks(ctx context.Context) ([]domain.MarketBlock, error) {
	return call[[]domain.MarketBlock](ctx, c, http.MethodGet, "/api/blocks", nil)
}

func (c *Client) SaveBlocks(ctx context.Context, blocks []domain.MarketBlock) error {
	return exec(ctx, c, http.MethodPut, "/api/blocks", map[string]interface{}{"blocks": blocks})
}
