package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONList_ValueScan(t *testing.T) {
	in := JSONList[string]{"stillas", "varme arbeider"}

	v, err := in.Value()
	require.NoError(t, err)

	var out JSONList[string]
	require.NoError(t, out.Scan(v))
	assert.Equal(t, in, out)
}

func TestJSONList_NilIsEmptyArray(t *testing.T) {
	var in JSONList[string]

	v, err := in.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), v)

	var out JSONList[string]
	require.NoError(t, out.Scan(nil))
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestJSONList_ScanBadType(t *testing.T) {
	var out JSONList[string]
	assert.Error(t, out.Scan(42))
}
