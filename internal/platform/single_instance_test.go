package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortForIsStableAndInRange(t *testing.T) {
	for _, name := range []string{"SalaryWatch", "other", ""} {
		port := PortFor(name)
		assert.Equal(t, port, PortFor(name))
		assert.GreaterOrEqual(t, port, minPort)
		assert.LessOrEqual(t, port, maxPort)
	}
}

func TestSecondAcquireFails(t *testing.T) {
	first, err := acquireAt("127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = first.Release() })

	_, err = acquireAt(first.Address())

	assert.ErrorIs(t, err, ErrAlreadyRunning)
}

func TestReleaseFreesAddress(t *testing.T) {
	first, err := acquireAt("127.0.0.1:0")
	require.NoError(t, err)
	address := first.Address()

	require.NoError(t, first.Release())
	require.NoError(t, first.Release())

	second, err := acquireAt(address)
	require.NoError(t, err)
	assert.NoError(t, second.Release())
}

func TestNilGuard(t *testing.T) {
	var guard *InstanceGuard

	assert.NoError(t, guard.Release())
	assert.Empty(t, guard.Address())
}
