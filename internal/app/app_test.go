package app_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cddproof/internal/app"
	"cddproof/internal/domain"
)

func TestResolveHome(t *testing.T) {
	t.Setenv(app.HomeEnv, "/tmp/from-env")

	got, err := app.ResolveHome("/tmp/from-flag")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-flag", got)

	got, err = app.ResolveHome("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-env", got)

	t.Setenv(app.HomeEnv, "")
	got, err = app.ResolveHome("")
	require.NoError(t, err)
	assert.Equal(t, ".cddproof", filepath.Base(got))
}

func TestNew_EndToEnd(t *testing.T) {
	home := filepath.Join(t.TempDir(), "home")
	a, err := app.New(app.Config{Home: home, Workers: 2})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "proofs"), a.ProofDir)

	var did domain.InvestorDID
	did[0] = 1
	_, cddID, err := a.Claims.IssueClaim("Correct-Horse-42", "alice", did, nil)
	require.NoError(t, err)

	out, err := a.Proofs.Prove(context.Background(), "Correct-Horse-42", "alice", "ACME")
	require.NoError(t, err)
	assert.Equal(t, cddID, out.Record.CddID)

	results, err := a.Proofs.VerifyDir(context.Background(), a.ProofDir)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].OK())
}

func TestNewWire_RequiresHome(t *testing.T) {
	_, err := app.NewWire(app.Config{})
	assert.Error(t, err)
}
