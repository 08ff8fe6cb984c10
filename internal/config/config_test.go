package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, &Config{
		Solver:  SolverConfig{Tolerance: 1e-12, CheckFinite: true},
		Server:  ServerConfig{Addr: ":8080", MaxDimension: 512, CORSOrigins: []string{"*"}},
		Logging: LogConfig{Level: "info", Development: false},
	}, cfg)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("LINSOLVE_TOLERANCE", "1e-9")
	t.Setenv("LINSOLVE_CHECK_FINITE", "false")
	t.Setenv("LINSOLVE_HTTP_ADDR", "127.0.0.1:9090")
	t.Setenv("LINSOLVE_MAX_DIMENSION", "64")
	t.Setenv("LINSOLVE_CORS_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("LINSOLVE_LOG_LEVEL", "debug")
	t.Setenv("LINSOLVE_LOG_DEV", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 1e-9, cfg.Solver.Tolerance)
	assert.False(t, cfg.Solver.CheckFinite)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr)
	assert.Equal(t, 64, cfg.Server.MaxDimension)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"unparsable tolerance": {"LINSOLVE_TOLERANCE": "tiny"},
		"zero tolerance":       {"LINSOLVE_TOLERANCE": "0"},
		"negative tolerance":   {"LINSOLVE_TOLERANCE": "-1e-12"},
		"negative max":         {"LINSOLVE_MAX_DIMENSION": "-1"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			for k, v := range env {
				t.Setenv(k, v)
			}
			cfg, err := Load()
			require.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
