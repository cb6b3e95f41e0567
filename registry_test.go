package swagview

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goodluckxu-go/swagview/swagger"
)

func TestRegistryPublishOnce(t *testing.T) {
	r := NewRegistry()
	_, ok := r.Lookup(HandleName)
	assert.False(t, ok)

	require.NoError(t, r.Publish("first", 1))
	err := r.Publish("first", 2)
	assert.ErrorIs(t, err, ErrAlreadyPublished)

	v, ok := r.Lookup("first")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestRegistryUI(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Publish(HandleName, "not a viewer"))
	_, ok := r.UI()
	assert.False(t, ok)

	r = NewRegistry()
	ui, err := (&swagger.Engine{}).Construct(swagger.DefaultConfig())
	require.NoError(t, err)
	require.NoError(t, r.Publish(HandleName, ui))
	got, ok := r.UI()
	assert.True(t, ok)
	assert.Same(t, ui, got)
}

func TestRegistryConcurrentReaders(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Lookup(HandleName)
		}()
	}
	require.NoError(t, r.Publish(HandleName, "handle"))
	wg.Wait()
	v, ok := r.Lookup(HandleName)
	assert.True(t, ok)
	assert.Equal(t, "handle", v)
}

func TestRegistryZeroValue(t *testing.T) {
	r := &Registry{}
	_, ok := r.Lookup(HandleName)
	assert.False(t, ok)

	ui, err := NewBootstrapper(&swagger.Engine{}, r).Bootstrap()
	require.NoError(t, err)
	got, ok := r.UI()
	require.True(t, ok)
	assert.Same(t, ui, got)
	assert.ErrorIs(t, r.Publish(HandleName, ui), ErrAlreadyPublished)
}

func TestSetGlobal(t *testing.T) {
	r := NewRegistry()
	prev := SetGlobal(r)
	defer SetGlobal(prev)
	assert.Same(t, r, Global())
}
