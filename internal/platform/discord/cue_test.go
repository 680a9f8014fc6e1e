package discord

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// encodeCue writes frames in DCA layout.
func encodeCue(t *testing.T, frames ...[]byte) []byte {
	t.Helper()

	var buf bytes.Buffer

	for _, frame := range frames {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, int16(len(frame))))
		buf.Write(frame)
	}

	return buf.Bytes()
}

// TestLoadCue verifies frames are read back in order.
func TestLoadCue(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "alarm.dca")
	require.NoError(t, os.WriteFile(path, encodeCue(t, []byte{1, 2}, []byte{3}), 0o600))

	frames, err := LoadCue(path)
	require.NoError(t, err)
	require.Equal(t, [][]byte{{1, 2}, {3}}, frames)
}

// TestReadCue_Corrupt covers empty, truncated and oversized input.
func TestReadCue_Corrupt(t *testing.T) {
	t.Parallel()

	_, err := readCue(bytes.NewReader(nil))
	require.ErrorIs(t, err, errEmptyCue)

	truncated := encodeCue(t, []byte{1, 2, 3})
	_, err = readCue(bytes.NewReader(truncated[:len(truncated)-1]))
	require.Error(t, err)

	_, err = readCue(bytes.NewReader([]byte{0x01}))
	require.Error(t, err)

	var oversized bytes.Buffer
	require.NoError(t, binary.Write(&oversized, binary.LittleEndian, int16(maxFrameSize+1)))
	_, err = readCue(&oversized)
	require.ErrorIs(t, err, errBadFrame)

	_, err = LoadCue(filepath.Join(t.TempDir(), "missing.dca"))
	require.Error(t, err)
}
