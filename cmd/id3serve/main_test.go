package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitOrigins(t *testing.T) {
	assert.Nil(t, splitOrigins(""))
	assert.Equal(t, []string{"http://a", "http://b"}, splitOrigins(" http://a, ,http://b "))
}

func TestEnvOr(t *testing.T) {
	t.Setenv("ID3SERVE_TEST_ADDR", "")
	assert.Equal(t, ":8080", envOr("ID3SERVE_TEST_ADDR", ":8080"))

	t.Setenv("ID3SERVE_TEST_ADDR", ":9090")
	assert.Equal(t, ":9090", envOr("ID3SERVE_TEST_ADDR", ":8080"))
}
