package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/linefit/pkg/errors"
)

type line struct{ slope, intercept float64 }

func TestSlotEmpty(t *testing.T) {
	var s Slot[*line]

	v, err := s.Load()
	require.Error(t, err)
	assert.Nil(t, v)
	assert.True(t, errors.Is(err, errors.ErrNotFitted))
	assert.Equal(t, errors.KindNotFitted, errors.KindOf(err))
}

func TestSlotStoreLoadReset(t *testing.T) {
	var s Slot[*line]

	first := &line{slope: 2}
	assert.EqualValues(t, 1, s.Store(first))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Same(t, first, got)

	second := &line{slope: 3, intercept: 1}
	assert.EqualValues(t, 2, s.Store(second))
	got, err = s.Load()
	require.NoError(t, err)
	assert.Same(t, second, got)

	s.Reset()
	_, err = s.Load()
	assert.True(t, errors.Is(err, errors.ErrNotFitted))
	assert.EqualValues(t, 2, s.Version())
}

func TestSlotConcurrentAccess(t *testing.T) {
	var s Slot[*line]
	s.Store(&line{slope: 1})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			s.Store(&line{slope: float64(i)})
		}(i)
		go func() {
			defer wg.Done()
			v, err := s.Load()
			assert.NoError(t, err)
			assert.NotNil(t, v)
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 9, s.Version())
}
