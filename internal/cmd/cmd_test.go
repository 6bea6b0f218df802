package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvsas/model"
)

const sphereJob = `
model = "sphere"

q { values = [0.01, 0.05, 0.1] }

detector {
  qx = linspace(-0.05, 0.05, 3)
  qy = [0.01, 0.02]
}

parameter "radius" {
  values  = [10, 30]
  weights = [1, 1]
}

parameter "sldSph" { value = 1e-6 }
`

// execute runs the root command with fresh flag values and captures stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	verbose, runDB, runImage, historyDB, historyPoints = false, "", false, "", 0
	t.Cleanup(func() {
		zap.ReplaceGlobals(zap.NewNop())
		model.SetLogger(nil)
	})

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()

	return buf.String(), err
}

func writeJob(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "job.hcl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	return path
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "sascalc version dev")
	assert.Contains(t, out, "Model API:  1")
}

func TestModels(t *testing.T) {
	out, err := execute(t, "models")
	require.NoError(t, err)
	assert.Contains(t, out, "cylinder")
	assert.Contains(t, out, "sphere")
}

func TestInfo(t *testing.T) {
	out, err := execute(t, "info", "cylinder")
	require.NoError(t, err)
	assert.Contains(t, out, "solvent_sld")
	assert.Contains(t, out, "orientation")
	assert.Contains(t, out, "polydisperse")

	_, err = execute(t, "info", "ellipsoid")
	assert.ErrorIs(t, err, model.ErrUnknownModel)
}

func TestRun_PrintsCurveAndImage(t *testing.T) {
	out, err := execute(t, "run", writeJob(t, sphereJob))
	require.NoError(t, err)
	assert.Contains(t, out, "model sphere  ER=20  VR=1")
	assert.Contains(t, out, "I(q)")
	assert.Contains(t, out, "detector 2x3")
}

func TestRun_RecordsAndHistoryLists(t *testing.T) {
	db := filepath.Join(t.TempDir(), "runs.duckdb")
	_, err := execute(t, "run", writeJob(t, sphereJob), "--db", db)
	require.NoError(t, err)

	out, err := execute(t, "history", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "sphere")
	assert.Contains(t, out, "1d")
	assert.Contains(t, out, "2d")

	out, err = execute(t, "history", "--db", db, "--points", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "0.05")
}

func TestRun_Errors(t *testing.T) {
	_, err := execute(t, "run", filepath.Join(t.TempDir(), "missing.hcl"))
	assert.Error(t, err)

	_, err = execute(t, "run", writeJob(t, `
model = "sphere"
q { values = [0.1] }
parameter "height" { value = 1 }
`))
	assert.Error(t, err)

	_, err = execute(t, "history")
	assert.Error(t, err)
}

func TestHistory_MissingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typo.duckdb")
	_, err := execute(t, "history", "--db", path)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, statErr := os.Stat(path)
	assert.ErrorIs(t, statErr, os.ErrNotExist, "history must not create the database")
}
