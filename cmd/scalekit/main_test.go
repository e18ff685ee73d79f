// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	assert.NoError(t, run([]string{"factor", "-v", "--width", "390", "--height", "844"}))
	assert.Error(t, run([]string{"size"}))
	assert.Error(t, run([]string{"factor", "--preset", "pixel-8"}))
}
