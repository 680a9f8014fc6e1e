package discord

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// maxFrameSize bounds a single Opus frame; larger lengths mean a corrupt file.
const maxFrameSize = 4000

var (
	// errEmptyCue is returned for a cue file without frames.
	errEmptyCue = errors.New("cue file has no frames")
	// errBadFrame is returned for a frame length outside (0, maxFrameSize].
	errBadFrame = errors.New("invalid frame length")
)

// LoadCue reads a DCA file: a sequence of little-endian int16 frame lengths,
// each followed by that many bytes of Opus data.
func LoadCue(path string) ([][]byte, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open cue file: %w", err)
	}

	defer func() {
		_ = file.Close()
	}()

	return readCue(bufio.NewReader(file))
}

func readCue(r io.Reader) ([][]byte, error) {
	var frames [][]byte

	for {
		var length int16

		err := binary.Read(r, binary.LittleEndian, &length)
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("read frame length: %w", err)
		}

		if length <= 0 || length > maxFrameSize {
			return nil, fmt.Errorf("%w: %d", errBadFrame, length)
		}

		frame := make([]byte, length)
		if _, err = io.ReadFull(r, frame); err != nil {
			return nil, fmt.Errorf("read frame: %w", err)
		}

		frames = append(frames, frame)
	}

	if len(frames) == 0 {
		return nil, errEmptyCue
	}

	return frames, nil
}
