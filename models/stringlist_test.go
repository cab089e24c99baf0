package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListRoundTrip(t *testing.T) {
	original := StringList{"React", "Node.js", "React"}

	value, err := original.Value()
	require.NoError(t, err)
	assert.Equal(t, `["React","Node.js","React"]`, value)

	var decoded StringList
	require.NoError(t, decoded.Scan(value))
	assert.Equal(t, original, decoded)
}

func TestStringListValueNil(t *testing.T) {
	var l StringList
	value, err := l.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", value)
}

func TestStringListScan(t *testing.T) {
	var l StringList

	require.NoError(t, l.Scan(nil))
	assert.Equal(t, StringList{}, l)

	require.NoError(t, l.Scan(""))
	assert.Equal(t, StringList{}, l)

	require.NoError(t, l.Scan([]byte(`["a","b"]`)))
	assert.Equal(t, StringList{"a", "b"}, l)

	assert.Error(t, l.Scan(42))
}
