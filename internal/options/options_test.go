package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type sinkConfig struct {
	width int
	name  string
	calls []string
}

func withWidth(w int) Option[*sinkConfig] {
	return New(func(c *sinkConfig) error {
		if w <= 0 {
			return errors.New("width must be positive")
		}
		c.width = w
		c.calls = append(c.calls, "width")

		return nil
	})
}

func withName(name string) Option[*sinkConfig] {
	return NoError(func(c *sinkConfig) {
		c.name = name
		c.calls = append(c.calls, "name")
	})
}

func TestApply_InOrder(t *testing.T) {
	cfg := &sinkConfig{}

	err := Apply(cfg, withName("a"), withWidth(4), withName("b"))
	require.NoError(t, err)
	require.Equal(t, 4, cfg.width)
	require.Equal(t, "b", cfg.name)
	require.Equal(t, []string{"name", "width", "name"}, cfg.calls)
}

func TestApply_StopsAtFirstError(t *testing.T) {
	cfg := &sinkConfig{}

	err := Apply(cfg, withWidth(2), withWidth(-1), withName("unreached"))
	require.EqualError(t, err, "width must be positive")
	require.Equal(t, 2, cfg.width)
	require.Empty(t, cfg.name)
}

func TestApply_EmptyAndNil(t *testing.T) {
	cfg := &sinkConfig{}

	require.NoError(t, Apply(cfg))
	require.NoError(t, Apply(cfg, nil, withName("x"), nil))
	require.Equal(t, "x", cfg.name)
}

func TestOption_PrimitiveTarget(t *testing.T) {
	var n int
	opt := NoError(func(p *int) { *p = 42 })

	require.NoError(t, opt.apply(&n))
	require.Equal(t, 42, n)
}
