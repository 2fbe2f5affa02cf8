package nsq

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProducer_Unreachable(t *testing.T) {
	producer, err := NewProducer("127.0.0.1:1")

	assert.Nil(t, producer)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to ping NSQ daemon")
}

func TestMarshal(t *testing.T) {
	body, err := Marshal(map[string]string{"reference": "ref_1"})

	require.NoError(t, err)
	var decoded map[string]string
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, "ref_1", decoded["reference"])
}

func TestMarshal_Unsupported(t *testing.T) {
	_, err := Marshal(make(chan int))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to marshal message")
}
