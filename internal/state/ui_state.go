package state

import (
	"fmt"

	"github.com/annedawson/amphibians/internal/photos"
)

// UIState is what the photos screen should currently render. It is one of
// Loading, Success or Error; the interface is sealed so no other variant
// exists. Use Match to handle every variant.
type UIState interface {
	fmt.Stringer
	isUIState()
}

// Loading means a fetch is outstanding.
type Loading struct{}

// Success holds the fetched photos in server order. Photos may be empty.
type Success struct {
	Photos []photos.Photo
}

// Error means the last fetch failed. The cause is logged, not carried here.
type Error struct{}

func (Loading) isUIState() {}
func (Success) isUIState() {}
func (Error) isUIState()   {}

func (Loading) String() string   { return "loading" }
func (s Success) String() string { return fmt.Sprintf("success(%d)", len(s.Photos)) }
func (Error) String() string     { return "error" }

// Match dispatches on s. Every variant needs a handler, so adding a variant
// breaks every caller at compile time.
func Match[T any](s UIState, loading func() T, success func([]photos.Photo) T, failed func() T) T {
	switch v := s.(type) {
	case Loading:
		return loading()
	case Success:
		return success(v.Photos)
	case Error:
		return failed()
	default:
		panic(fmt.Sprintf("state: unexpected UIState %T", s))
	}
}

func copyState(s UIState) UIState {
	if v, ok := s.(Success); ok {
		return Success{Photos: clonePhotos(v.Photos)}
	}
	return s
}

// clonePhotos never returns nil so an empty listing stays distinguishable
// from "no data".
func clonePhotos(items []photos.Photo) []photos.Photo {
	dup := make([]photos.Photo, len(items))
	copy(dup, items)
	return dup
}
