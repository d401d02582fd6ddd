package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	m "github.com/ChrisTheAbysswalker/animals-web/models"
)

const (
	animalsPath  = "/v1/animals"
	apiKeyHeader = "X-Api-Key"
)

var ErrMissingAPIKey = errors.New("animals API key is not configured")

// StatusError is returned for any non-2xx answer from the API.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("animals API returned %d", e.StatusCode)
	}
	return fmt.Sprintf("animals API returned %d: %s", e.StatusCode, e.Body)
}

// HTTPClient is the subset of *http.Client the service needs.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type AnimalService struct {
	client  HTTPClient
	baseURL string
	apiKey  string
	logger  *zap.Logger
	metrics *FetchMetrics
}

type Option func(*AnimalService)

func WithHTTPClient(client HTTPClient) Option {
	return func(s *AnimalService) { s.client = client }
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *AnimalService) { s.logger = logger }
}

func WithMetrics(metrics *FetchMetrics) Option {
	return func(s *AnimalService) { s.metrics = metrics }
}

// NewAnimalService builds a fetcher for baseURL (scheme and host, no path).
// An empty apiKey is accepted; every fetch then fails closed.
func NewAnimalService(baseURL, apiKey string, opts ...Option) *AnimalService {
	service := &AnimalService{
		client:  &http.Client{},
		baseURL: baseURL,
		apiKey:  apiKey,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *AnimalService) HasAPIKey() bool {
	return s.apiKey != ""
}

// FetchAnimals returns the API's records for animalName. Failures of any
// kind are logged and reported as an empty result.
func (s *AnimalService) FetchAnimals(ctx context.Context, animalName string) []m.AnimalRecord {
	if !s.HasAPIKey() {
		s.logger.Error("Error fetching data from API", zap.Error(ErrMissingAPIKey))
		s.metrics.observe(OutcomeMissingKey, time.Time{})
		return []m.AnimalRecord{}
	}

	started := time.Now()
	animals, err := s.fetch(ctx, animalName)
	if err != nil {
		s.logger.Warn("Error fetching data from API",
			zap.String("animal_name", animalName),
			zap.Error(err))
		s.metrics.observe(outcomeFor(err), started)
		return []m.AnimalRecord{}
	}

	if len(animals) == 0 {
		s.metrics.observe(OutcomeEmpty, started)
		return []m.AnimalRecord{}
	}
	s.metrics.observe(OutcomeOK, started)
	return animals
}

func (s *AnimalService) fetch(ctx context.Context, animalName string) ([]m.AnimalRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.queryURL(animalName), nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set(apiKeyHeader, s.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", animalsPath, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	// Only the outer array is strict; each element is parsed on its own so
	// one odd record cannot hide the others.
	var elements []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&elements); err != nil {
		return nil, &decodeError{err: err}
	}
	animals := make([]m.AnimalRecord, 0, len(elements))
	for _, element := range elements {
		animals = append(animals, m.ParseAnimalRecord(element))
	}
	return animals, nil
}

func (s *AnimalService) queryURL(animalName string) string {
	query := url.Values{}
	query.Set("name", animalName)
	return s.baseURL + animalsPath + "?" + query.Encode()
}

type decodeError struct {
	err error
}

func (e *decodeError) Error() string { return "decoding response: " + e.err.Error() }

func (e *decodeError) Unwrap() error { return e.err }

func outcomeFor(err error) string {
	var statusErr *StatusError
	var decodeErr *decodeError
	switch {
	case errors.As(err, &statusErr):
		return OutcomeBadStatus
	case errors.As(err, &decodeErr):
		return OutcomeDecodeError
	default:
		return OutcomeTransportError
	}
}
