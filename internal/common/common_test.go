package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPtr(t *testing.T) {
	s := "08:00"
	p := Ptr(s)
	assert.Equal(t, "08:00", *p)

	*p = "18:00"
	assert.Equal(t, "08:00", s, "Ptr must point to a copy")

	assert.Equal(t, 7, *Ptr(7))
	assert.True(t, *Ptr(true))
}
