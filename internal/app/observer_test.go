package app

import (
	"context"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annedawson/amphibians/internal/photos"
	"github.com/annedawson/amphibians/internal/state"
)

type closingSource struct {
	ch   chan state.UIState
	once sync.Once
}

func (s *closingSource) Subscribe() (<-chan state.UIState, func()) {
	return s.ch, func() { s.once.Do(func() { close(s.ch) }) }
}

func TestTransitionLoggerLogsEveryState(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	src := &closingSource{ch: make(chan state.UIState, 3)}
	src.ch <- state.Loading{}
	src.ch <- state.Error{}
	src.ch <- state.Loading{}

	stop := StartTransitionLogger(src, logger)
	stop()
	stop()

	entries := hook.AllEntries()
	require.Len(t, entries, 3)
	assert.Equal(t, "state changed", entries[0].Message)
	assert.Equal(t, "loading", entries[0].Data["state"])
	assert.Equal(t, "", entries[0].Data["previous"])
	assert.Equal(t, "error", entries[1].Data["state"])
	assert.Equal(t, "loading", entries[1].Data["previous"])
	assert.Equal(t, "loading", entries[2].Data["state"])
}

type fixedRepo struct {
	items []photos.Photo
}

func (r fixedRepo) FetchPhotos(context.Context) ([]photos.Photo, error) {
	return r.items, nil
}

func TestTransitionLoggerWithViewModel(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	vm := state.NewPhotosViewModel(context.Background(), fixedRepo{items: []photos.Photo{{ID: "1"}}})
	vm.Wait()

	stop := StartTransitionLogger(vm, logger)
	<-vm.Refresh()
	stop()
	vm.Close()

	var seen []string
	for _, e := range hook.AllEntries() {
		seen = append(seen, e.Data["state"].(string))
	}
	assert.Equal(t, []string{"success(1)", "loading", "success(1)"}, seen)
}
