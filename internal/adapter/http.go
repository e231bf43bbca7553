package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/geo-waqf/geowaqf/internal/config"
	"github.com/geo-waqf/geowaqf/internal/ee"
	"github.com/geo-waqf/geowaqf/internal/logger"
	"github.com/geo-waqf/geowaqf/internal/metrics"
	"github.com/geo-waqf/geowaqf/internal/utils"
	"github.com/geo-waqf/geowaqf/models"
	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

const (
	opComputeValue = "compute_value"
	opCreateMap    = "create_map"
	opToken        = "token"

	defaultFileFormat = "AUTO_JPEG_PNG"
	traceIDHeader     = "X-Trace-ID"
)

type httpEngineAdapter struct {
	client *utils.HTTPClient
	tokens *tokenSource

	baseURL    string
	apiVersion string
	project    string
}

type computeRequest struct {
	Expression *ee.Expression `json:"expression"`
}

type computeResponse struct {
	Result json.RawMessage `json:"result"`
}

type valueRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type visualizationOptions struct {
	Ranges        []valueRange `json:"ranges,omitempty"`
	PaletteColors []string     `json:"paletteColors,omitempty"`
}

type mapRequest struct {
	Expression           *ee.Expression        `json:"expression"`
	FileFormat           string                `json:"fileFormat"`
	VisualizationOptions *visualizationOptions `json:"visualizationOptions,omitempty"`
}

type mapResponse struct {
	Name string `json:"name"`
}

// NewHTTPEngineAdapter constructs the REST implementation of [EngineAdapter]
// authenticated as account. It normalises the base URL from cfg.BaseURL and
// configures the underlying HTTP client with the request timeout.
//
// Returns an error if cfg.BaseURL cannot be parsed as an absolute URL.
func NewHTTPEngineAdapter(cfg config.Engine, account *ServiceAccount) (EngineAdapter, error) {
	if account == nil || account.key == nil {
		return nil, ErrNoCredentials
	}

	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid engine base url: %w", err)
	}

	project := cfg.Project
	if project == "" {
		project = account.ProjectID
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpEngineAdapter{
		client:     client,
		tokens:     newTokenSource(account, client),
		baseURL:    baseURL,
		apiVersion: cfg.APIVersion,
		project:    project,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Authenticated implements [EngineAdapter].
func (a *httpEngineAdapter) Authenticated() bool {
	return true
}

// ComputeValue implements [EngineAdapter]. It POSTs expr to
// /{version}/projects/{project}/value:compute and returns the raw result.
func (a *httpEngineAdapter) ComputeValue(ctx context.Context, expr *ee.Expression) (json.RawMessage, error) {
	start := time.Now()
	result, err := a.computeValue(ctx, expr)
	metrics.RecordEngineCall(opComputeValue, time.Since(start), err)

	return result, err
}

func (a *httpEngineAdapter) computeValue(ctx context.Context, expr *ee.Expression) (json.RawMessage, error) {
	req, err := a.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(computeRequest{Expression: expr}).
		Post("/{version}/projects/{project}/value:compute")
	if err != nil {
		return nil, fmt.Errorf("compute value request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var cr computeResponse
	if err = json.Unmarshal(resp.Body(), &cr); err != nil {
		return nil, fmt.Errorf("decode compute value response: %w", err)
	}

	return cr.Result, nil
}

// CreateMap implements [EngineAdapter]. It POSTs expr with the
// visualization to /{version}/projects/{project}/maps and builds the tile
// template from the returned map name.
func (a *httpEngineAdapter) CreateMap(ctx context.Context, expr *ee.Expression, vis models.VisParams) (models.TileLayer, error) {
	start := time.Now()
	layer, err := a.createMap(ctx, expr, vis)
	metrics.RecordEngineCall(opCreateMap, time.Since(start), err)

	return layer, err
}

func (a *httpEngineAdapter) createMap(ctx context.Context, expr *ee.Expression, vis models.VisParams) (models.TileLayer, error) {
	req, err := a.authedRequest(ctx)
	if err != nil {
		return models.TileLayer{}, err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(mapRequest{
			Expression:           expr,
			FileFormat:           defaultFileFormat,
			VisualizationOptions: newVisualizationOptions(vis),
		}).
		Post("/{version}/projects/{project}/maps")
	if err != nil {
		return models.TileLayer{}, fmt.Errorf("create map request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TileLayer{}, err
	}

	var mr mapResponse
	if err = json.Unmarshal(resp.Body(), &mr); err != nil {
		return models.TileLayer{}, fmt.Errorf("decode create map response: %w", err)
	}
	if mr.Name == "" {
		return models.TileLayer{}, fmt.Errorf("%w: map name missing in response", ErrInternalServerError)
	}

	return models.TileLayer{
		Name:      mr.Name,
		URLFormat: fmt.Sprintf("%s/%s/%s/tiles/{z}/{x}/{y}", a.baseURL, a.apiVersion, mr.Name),
	}, nil
}

func newVisualizationOptions(vis models.VisParams) *visualizationOptions {
	opts := &visualizationOptions{
		Ranges: []valueRange{{Min: vis.Min, Max: vis.Max}},
	}
	for _, color := range vis.Palette {
		opts.PaletteColors = append(opts.PaletteColors, strings.TrimPrefix(color, "#"))
	}
	return opts
}

func (a *httpEngineAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	start := time.Now()
	token, err := a.tokens.Token(ctx)
	if err != nil {
		metrics.RecordEngineCall(opToken, time.Since(start), err)
		logger.FromContext(ctx).Err(err).Msg("earth engine token refresh failed")
		return nil, err
	}

	req := a.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetPathParams(map[string]string{
			"version": a.apiVersion,
			"project": a.project,
		})
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, traceID)
	}

	return req, nil
}
