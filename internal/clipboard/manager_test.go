package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	text     string
	writeErr error
}

func (f *fakeBackend) WriteAll(text string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.text = text
	return nil
}

func (f *fakeBackend) ReadAll() (string, error) { return f.text, nil }

func TestCopyInternalOnly(t *testing.T) {
	backend := &fakeBackend{}
	m := NewManagerWithBackend(false, backend)

	system, err := m.Copy("hello")
	require.NoError(t, err)
	assert.False(t, system)
	assert.Equal(t, "", backend.text)
	assert.Equal(t, "hello", m.Contents())
	assert.False(t, m.UsesSystem())
}

func TestCopySystem(t *testing.T) {
	backend := &fakeBackend{}
	m := NewManagerWithBackend(true, backend)

	system, err := m.Copy("hello")
	require.NoError(t, err)
	assert.True(t, system)
	assert.Equal(t, "hello", backend.text)
	assert.Equal(t, "hello", m.Contents())
}

func TestCopySystemFailureKeepsInternal(t *testing.T) {
	backend := &fakeBackend{writeErr: errors.New("no display")}
	m := NewManagerWithBackend(true, backend)

	system, err := m.Copy("hi")
	assert.Error(t, err)
	assert.False(t, system)
	assert.Equal(t, "hi", m.internal)
}

func TestNilBackendDisablesSystem(t *testing.T) {
	m := NewManagerWithBackend(true, nil)
	assert.False(t, m.UsesSystem())
	_, err := m.Copy("x")
	assert.NoError(t, err)
}
