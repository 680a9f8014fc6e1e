package server

import (
	"errors"
	"fmt"
	"os"
	"strings"

	ps "github.com/mitchellh/go-ps"
)

// ProcessName is the executable name of the server binary.
const ProcessName = "alarm-server"

// ErrAlreadyRunning is returned when another server process is found.
var ErrAlreadyRunning = errors.New("another alarm-server process is already running")

// processLister returns the running processes.
type processLister func() ([]ps.Process, error)

// ensureSingleInstance fails when a process named name other than this one
// is running. Registrations live in memory, so two servers would split them.
func ensureSingleInstance(list processLister, name string) error {
	processList, err := list()
	if err != nil {
		return fmt.Errorf("list processes: %w", err)
	}

	thisProcessID := os.Getpid()

	for _, process := range processList {
		if process.Pid() == thisProcessID {
			continue
		}

		if strings.TrimSuffix(process.Executable(), ".exe") != name {
			continue
		}

		return fmt.Errorf("%w (pid %d)", ErrAlreadyRunning, process.Pid())
	}

	return nil
}
