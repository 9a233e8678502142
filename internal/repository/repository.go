// Package repository decouples photo consumers from the transport that
// produces the photos.
package repository

import (
	"context"

	"github.com/annedawson/amphibians/internal/photos"
)

// PhotosRepository fetches the amphibian photo listing.
type PhotosRepository interface {
	FetchPhotos(ctx context.Context) ([]photos.Photo, error)
}

// Ensure NetworkPhotosRepository implements PhotosRepository at compile time.
var _ PhotosRepository = (*NetworkPhotosRepository)(nil)

// NetworkPhotosRepository serves photos straight from a photos.Service.
type NetworkPhotosRepository struct {
	service photos.Service
}

// NewNetworkPhotosRepository wraps service.
func NewNetworkPhotosRepository(service photos.Service) *NetworkPhotosRepository {
	return &NetworkPhotosRepository{service: service}
}

// FetchPhotos delegates to the service; results and errors pass through as is.
func (r *NetworkPhotosRepository) FetchPhotos(ctx context.Context) ([]photos.Photo, error) {
	return r.service.FetchPhotos(ctx)
}
