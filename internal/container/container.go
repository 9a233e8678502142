// Package container is the composition root: it builds the long-lived
// collaborators once at startup and hands them out.
package container

import (
	"fmt"
	"net/http"

	"github.com/annedawson/amphibians/internal/config"
	"github.com/annedawson/amphibians/internal/photos"
	"github.com/annedawson/amphibians/internal/repository"
)

// Container owns the photos client and the repository built on it.
type Container struct {
	client *photos.Client
	repo   repository.PhotosRepository
}

// Option customises container construction.
type Option func(*options)

type options struct {
	httpClient *http.Client
	userAgent  string
}

// WithHTTPClient swaps the HTTP client used by the photos service.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) { o.httpClient = hc }
}

// WithUserAgent overrides the User-Agent sent with every request.
func WithUserAgent(ua string) Option {
	return func(o *options) { o.userAgent = ua }
}

// New builds the container from cfg. A malformed base URL is returned as an
// error; callers treat it as fatal.
func New(cfg config.Config, opts ...Option) (*Container, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	clientOpts := []photos.Option{photos.WithUserAgent(o.userAgent)}
	if o.httpClient != nil {
		clientOpts = append(clientOpts, photos.WithHTTPClient(o.httpClient))
	}
	clientOpts = append(clientOpts, photos.WithTimeout(cfg.RequestTimeout))

	client, err := photos.NewClient(cfg.BaseURL, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("init photos client: %w", err)
	}
	return &Container{
		client: client,
		repo:   repository.NewNetworkPhotosRepository(client),
	}, nil
}

// PhotosRepository returns the repository. Every call yields the same instance.
func (c *Container) PhotosRepository() repository.PhotosRepository {
	return c.repo
}

// BaseURL reports the endpoint the repository talks to.
func (c *Container) BaseURL() string {
	return c.client.BaseURL()
}
