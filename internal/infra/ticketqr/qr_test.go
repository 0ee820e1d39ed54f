//go:build unit

package ticketqr_test

import (
	"bytes"
	"testing"

	"seat-hold-ticketing/internal/infra/ticketqr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContent(t *testing.T) {
	assert.Equal(t, "TICKET:41:7:12,35", ticketqr.Content(41, 7, []int64{12, 35}))
	assert.Equal(t, "TICKET:1:2:", ticketqr.Content(1, 2, nil))
}

func TestGenerator_PNG(t *testing.T) {
	g := ticketqr.NewGenerator()

	t.Run("Normal case: renders a PNG image", func(t *testing.T) {
		png, err := g.PNG(ticketqr.Content(41, 7, []int64{12, 35}))
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG\r\n\x1a\n")))
	})

	t.Run("Error case: empty content is rejected", func(t *testing.T) {
		_, err := g.PNG("")
		require.Error(t, err)
	})
}
