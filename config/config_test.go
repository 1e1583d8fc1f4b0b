package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/apsp/config"
	"github.com/katalvlaran/apsp/floyd"
	"github.com/katalvlaran/apsp/matrix"
	"github.com/katalvlaran/apsp/render"
)

func validConfig() config.Config {
	return config.Config{
		Log:    config.LogConfig{Level: "info", Format: "text", Output: "stderr"},
		Solver: config.SolverConfig{Memo: "dense", MemoCapacity: 16},
		Render: config.RenderConfig{Delimiter: " ", InfSymbol: "INF"},
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
		field  string
	}{
		{"level", func(c *config.Config) { c.Log.Level = "trace" }, "log.level"},
		{"output", func(c *config.Config) { c.Log.Output = "syslog" }, "log.output"},
		{"rotation", func(c *config.Config) { c.Log.MaxAge = -1 }, "rotation"},
		{"memo", func(c *config.Config) { c.Solver.Memo = "lru" }, "solver.memo"},
		{"capacity", func(c *config.Config) { c.Solver.MemoCapacity = 0 }, "solver.memo_capacity"},
		{"max order", func(c *config.Config) { c.Solver.MaxOrder = -3 }, "solver.max_order"},
		{"delimiter", func(c *config.Config) { c.Render.Delimiter = "" }, "render.delimiter"},
		{"inf symbol", func(c *config.Config) { c.Render.InfSymbol = "" }, "render.inf_symbol"},
	}

	ok := validConfig()
	require.NoError(t, ok.Validate())

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.ErrorIs(t, err, config.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestConversions(t *testing.T) {
	cfg := validConfig()
	cfg.Solver.Memo = "bounded"
	cfg.Solver.MemoCapacity = 4
	cfg.Render.Header = true
	cfg.Log.FilePath = "x.log"

	lc := cfg.LoggerConfig()
	assert.Equal(t, "x.log", lc.FilePath)
	assert.Equal(t, "stderr", lc.Output)

	g, err := matrix.NewGraph(2)
	require.NoError(t, err)

	opts, err := cfg.SolverOptions()
	require.NoError(t, err)
	e, err := floyd.NewEvaluator(g, opts...)
	require.NoError(t, err)
	_, err = e.Solve()
	require.NoError(t, err)
	assert.LessOrEqual(t, e.MemoSize(), 4)

	s, err := render.String(g, cfg.RenderOptions()...)
	require.NoError(t, err)
	assert.Equal(t, "0 1\n0 INF\nINF 0\n", s)

	cfg.Solver.Memo = "lru"
	_, err = cfg.SolverOptions()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
