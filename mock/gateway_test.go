package mock_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/fwojciec/woldoc"
	"github.com/fwojciec/woldoc/mock"
	"github.com/stretchr/testify/assert"
)

func TestGateway_ImplementsInterface(t *testing.T) {
	t.Parallel()

	// Verify mock can be used where Gateway is expected
	var _ woldoc.Gateway = &mock.Gateway{}
}

func TestGateway_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("delegates to FetchFn", func(t *testing.T) {
		t.Parallel()

		var calledWith string
		g := &mock.Gateway{
			FetchFn: func(_ context.Context, url string) (string, int) {
				calledWith = url
				return "body", http.StatusOK
			},
		}

		body, status := g.Fetch(context.Background(), "https://wol.jw.org/wol/bc/1")

		assert.Equal(t, "body", body)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "https://wol.jw.org/wol/bc/1", calledWith)
	})
}
