package sysinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKnownArchitecture(t *testing.T) {
	assert.True(t, KnownArchitecture("x86-64"))
	assert.True(t, KnownArchitecture("arm64"))
	assert.True(t, KnownArchitecture("s390x"))
	assert.False(t, KnownArchitecture("x86_64")) // uname form, not canonical
	assert.False(t, KnownArchitecture("vax"))
	assert.False(t, KnownArchitecture(""))
}

func TestNativeArchitecture(t *testing.T) {
	assert.NotEmpty(t, NativeArchitecture())
}
