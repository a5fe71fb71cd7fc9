// Package ibge fetches municipalities and demographic indicators from the
// IBGE public data service.
package ibge

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"expansion/pkg"
	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultBaseURL = "https://servicodados.ibge.gov.br/api"
	cacheTTL       = 24 * time.Hour
)

var ErrNoData = errors.New("IBGE não retornou dados")

type Client struct {
	http       *resty.Client
	cache      *pkg.Cache
	maxElapsed time.Duration
	interval   time.Duration
}

// NewClient builds a client for baseURL. cache may be nil.
func NewClient(baseURL string, cache *pkg.Cache) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(20 * time.Second).
			SetHeader("Accept", "application/json"),
		cache:      cache,
		maxElapsed: 2 * time.Minute,
		interval:   backoff.DefaultInitialInterval,
	}
}

// get retries transient failures with exponential backoff. 4xx answers are permanent.
func (c *Client) get(ctx context.Context, path string, query map[string]string, out interface{}) error {
	op := func() error {
		resp, err := c.http.R().
			SetContext(ctx).
			SetQueryParams(query).
			SetResult(out).
			Get(path)
		if err != nil {
			return err
		}
		if resp.StatusCode() >= http.StatusBadRequest && resp.StatusCode() < http.StatusInternalServerError {
			return backoff.Permanent(fmt.Errorf("GET %s: %s", path, resp.Status()))
		}
		if resp.IsError() {
			return fmt.Errorf("GET %s: %s", path, resp.Status())
		}
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.interval
	policy.MaxElapsedTime = c.maxElapsed
	return backoff.Retry(op, backoff.WithContext(policy, ctx))
}

// Municipalities lists every municipality of the state with the given IBGE code (31 = MG).
func (c *Client) Municipalities(ctx context.Context, stateCode int) ([]Municipality, error) {
	key := c.cache.Key("ibge", "municipios", strconv.Itoa(stateCode))
	var out []Municipality
	if ok, _ := c.cache.GetJSON(ctx, key, &out); ok {
		return out, nil
	}

	path := fmt.Sprintf("/v1/localidades/estados/%d/municipios", stateCode)
	if err := c.get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	_ = c.cache.SetJSON(ctx, key, out, cacheTTL)
	return out, nil
}

// Indicator returns the value of one indicator for a municipality.
func (c *Client) Indicator(ctx context.Context, cityID int64, ind Indicator) (float64, error) {
	var out aggregateResponse
	path := fmt.Sprintf("/v3/agregados/%d/periodos/%s/variaveis/%d", ind.Aggregate, ind.Period, ind.Variable)
	query := map[string]string{"localidades": fmt.Sprintf("N6[%d]", cityID)}
	if err := c.get(ctx, path, query, &out); err != nil {
		return 0, err
	}

	for _, v := range out {
		for _, r := range v.Resultados {
			for _, s := range r.Series {
				if raw, ok := s.Serie[ind.Period]; ok {
					value, err := strconv.ParseFloat(raw, 64)
					if err != nil {
						return 0, fmt.Errorf("%w: valor %q", ErrNoData, raw)
					}
					return value, nil
				}
			}
		}
	}
	return 0, fmt.Errorf("%w: agregado %d variável %d", ErrNoData, ind.Aggregate, ind.Variable)
}

// Stats fetches the four indicators of a municipality concurrently and fails if any fails.
func (c *Client) Stats(ctx context.Context, cityID int64) (Stats, error) {
	key := c.cache.Key("ibge", "stats", strconv.FormatInt(cityID, 10))
	var stats Stats
	if ok, _ := c.cache.GetJSON(ctx, key, &stats); ok {
		return stats, nil
	}

	var population, jobs float64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		population, err = c.Indicator(gctx, cityID, Population)
		return err
	})
	g.Go(func() (err error) {
		jobs, err = c.Indicator(gctx, cityID, FormalJobs)
		return err
	})
	g.Go(func() (err error) {
		stats.AverageFormalSalary, err = c.Indicator(gctx, cityID, AverageFormalSalary)
		return err
	})
	g.Go(func() (err error) {
		stats.AverageIncome, err = c.Indicator(gctx, cityID, AverageIncome)
		return err
	})
	if err := g.Wait(); err != nil {
		return Stats{}, fmt.Errorf("indicadores da cidade %d: %w", cityID, err)
	}
	stats.Population = int64(population)
	stats.FormalJobs = int64(jobs)

	_ = c.cache.SetJSON(ctx, key, stats, cacheTTL)
	return stats, nil
}
