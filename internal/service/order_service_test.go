package service

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOrderNoFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^[1-9]\d{5}$`)

	for i := 0; i < 100; i++ {
		no := generateOrderNo()
		assert.Len(t, no, 6)
		assert.Regexp(t, pattern, no)
	}
}
