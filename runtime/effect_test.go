package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffect_RunReleasesPreviousSetup(t *testing.T) {
	var e Effect
	live := 0
	setup := func() func() {
		live++
		return func() { live-- }
	}

	for i := 0; i < 5; i++ {
		e.Run(setup)
		assert.Equal(t, 1, live)
	}

	e.Run(nil)
	assert.Equal(t, 0, live)
	assert.False(t, e.Active())

	e.Run(setup)
	e.Cleanup()
	e.Cleanup()
	assert.Equal(t, 0, live)
}
