package convert

import (
	"testing"

	"github.com/stretchr/testify/require"

	"scene-converter/internal/config"
	"scene-converter/internal/source"
)

func newConverter(t *testing.T, modify ...func(o *config.Options)) *Converter {
	t.Helper()

	opts := config.Default()
	for _, m := range modify {
		m(&opts)
	}

	c, err := New(opts, nil)
	require.NoError(t, err)

	return c
}

func parseScene(t *testing.T, data string) *source.Scene {
	t.Helper()

	sc, err := source.Parse([]byte(data))
	require.NoError(t, err)

	return sc
}

func ptr[T any](v T) *T {
	return &v
}
