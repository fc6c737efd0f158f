package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCmd_Run(t *testing.T) {
	dir := t.TempDir()

	cmd := &NewCmd{Name: "Button", Dest: dir}
	err := cmd.Run(context.Background(), &Globals{})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "Button", "Button.js"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "Button", "Button.css"))
	require.NoError(t, err)
}

func TestNewCmd_Duplicate(t *testing.T) {
	dir := t.TempDir()

	cmd := &NewCmd{Name: "Button", Dest: dir}
	require.NoError(t, cmd.Run(context.Background(), &Globals{}))

	err := cmd.Run(context.Background(), &Globals{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestNewCmd_InvalidName(t *testing.T) {
	cmd := &NewCmd{Name: "bad-name", Dest: t.TempDir()}
	err := cmd.Run(context.Background(), &Globals{})
	require.Error(t, err)
}
