package modules

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hijamacare/site-engine/pkg/logging"
)

func echoHandler(tag string) HandlerFunc {
	return func(_ context.Context, key string, fields map[string]any) (Rendered, error) {
		return Rendered{Key: key, Type: tag, HTML: fmt.Sprintf("<div>%v</div>", fields["text"])}, nil
	}
}

func TestResolve_OrderPreservingAndOmissionSafe(t *testing.T) {
	r := NewRegistry(logging.Default(), nil)
	r.RegisterFunc("hero", echoHandler("hero"))
	r.RegisterFunc("callout", echoHandler("callout"))

	list := []Instance{
		{Type: "hero", Key: "a", Fields: map[string]any{"text": "one"}},
		{Type: "made-up-module", Key: "b", Fields: map[string]any{"text": "never"}},
		{Type: "callout", Key: "c", Fields: map[string]any{"text": "two"}},
		{Type: "hero", Key: "d", Fields: map[string]any{"text": "three"}},
	}

	out := r.Resolve(context.Background(), list)

	require.Len(t, out, 3)
	assert.Equal(t, "a", out[0].Key)
	assert.Equal(t, "c", out[1].Key)
	assert.Equal(t, "d", out[2].Key)
	assert.Equal(t, "<div>one</div>", out[0].HTML)
}

func TestResolve_EmptyList(t *testing.T) {
	r := NewRegistry(logging.Default(), nil)
	out := r.Resolve(context.Background(), nil)
	assert.Empty(t, out)
}

func TestResolve_HandlerErrorOmitsInstance(t *testing.T) {
	r := NewRegistry(logging.Default(), nil)
	r.RegisterFunc("ok", echoHandler("ok"))
	r.RegisterFunc("broken", func(context.Context, string, map[string]any) (Rendered, error) {
		return Rendered{}, errors.New("template exploded")
	})

	list := []Instance{
		{Type: "broken", Key: "x"},
		{Type: "ok", Key: "y", Fields: map[string]any{"text": "kept"}},
	}

	out := r.Resolve(context.Background(), list)
	require.Len(t, out, 1)
	assert.Equal(t, "y", out[0].Key)
}

func TestRegister_LastRegistrationWins(t *testing.T) {
	r := NewRegistry(logging.Default(), nil)
	r.RegisterFunc("hero", echoHandler("hero"))
	r.RegisterFunc("hero", func(_ context.Context, key string, _ map[string]any) (Rendered, error) {
		return Rendered{Key: key, Type: "hero", HTML: "<div>replacement</div>"}, nil
	})

	out := r.Resolve(context.Background(), []Instance{{Type: "hero", Key: "k"}})
	require.Len(t, out, 1)
	assert.Equal(t, "<div>replacement</div>", out[0].HTML)
}

func TestKnown(t *testing.T) {
	r := NewRegistry(logging.Default(), nil)
	assert.False(t, r.Known("hero"))
	r.RegisterFunc("hero", echoHandler("hero"))
	assert.True(t, r.Known("hero"))
}

func TestResolve_DoesNotMutateInput(t *testing.T) {
	r := NewRegistry(logging.Default(), nil)
	r.RegisterFunc("hero", echoHandler("hero"))

	list := []Instance{
		{Type: "hero", Key: "a", Fields: map[string]any{"text": "keyed"}},
		{Type: "hero", Fields: map[string]any{"text": "keyless"}},
	}

	out := r.Resolve(context.Background(), list)

	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].Key)
	assert.NotEmpty(t, out[1].Key, "keyless instances still get a key in the output")

	// The catalogue is rendering input only: the minted key never lands in
	// the caller's slice.
	assert.Equal(t, "a", list[0].Key)
	assert.Empty(t, list[1].Key)
}

func TestResolve_ConcurrentOnSharedList(t *testing.T) {
	r := NewRegistry(logging.Default(), nil)
	r.RegisterFunc("hero", echoHandler("hero"))

	list := []Instance{
		{Type: "hero", Fields: map[string]any{"text": "shared"}},
		{Type: "hero", Key: "b", Fields: map[string]any{"text": "keyed"}},
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out := r.Resolve(context.Background(), list)
			if len(out) != 2 {
				t.Errorf("expected 2 rendered modules, got %d", len(out))
			}
		}()
	}
	wg.Wait()

	assert.Empty(t, list[0].Key)
}

func TestEnsureKey_MintsStableKey(t *testing.T) {
	inst := Instance{Type: "hero"}
	key := inst.EnsureKey()
	require.NotEmpty(t, key)
	assert.Equal(t, key, inst.EnsureKey())
}
