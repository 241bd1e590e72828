// Package loader reads the line-oriented text inputs the simulator
// consumes: process, resource, and action files. Blank lines and lines
// starting with '#' are ignored; malformed lines are logged and skipped
// individually, so a partially malformed file still yields a partial load.
package loader

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/calsync-sim/calsync-sim/sim"
)

// LoadProcessesFile loads processes from a text file with one
// "PID, BurstTime, ArrivalTime, Priority" entry per line.
func LoadProcessesFile(path string) ([]*sim.Process, error) {
	var procs []*sim.Process
	err := eachLine(path, func(line string) {
		p, err := sim.ParseProcess(line)
		if err != nil {
			logrus.Warnf("skipping %v", err)
			return
		}
		procs = append(procs, p)
	})
	if err != nil {
		return nil, err
	}
	return procs, nil
}

// LoadResourcesFile loads resources from a text file with one
// "Name, Counter" entry per line. Resources are created in the given mode;
// SyncEngine.Load re-stamps the mode to match its policy anyway.
func LoadResourcesFile(path string, mode sim.SyncMode) ([]*sim.Resource, error) {
	var resources []*sim.Resource
	err := eachLine(path, func(line string) {
		r, err := sim.ParseResource(line, mode)
		if err != nil {
			logrus.Warnf("skipping %v", err)
			return
		}
		resources = append(resources, r)
	})
	if err != nil {
		return nil, err
	}
	return resources, nil
}

// LoadActionsFile loads actions from a text file with one
// "PID, ActionType, ResourceName, Cycle" entry per line.
func LoadActionsFile(path string) ([]*sim.Action, error) {
	var actions []*sim.Action
	err := eachLine(path, func(line string) {
		a, err := sim.ParseAction(line)
		if err != nil {
			logrus.Warnf("skipping %v", err)
			return
		}
		actions = append(actions, a)
	})
	if err != nil {
		return nil, err
	}
	return actions, nil
}

// eachLine streams the data lines of an input file to fn, filtering
// comments and blanks.
func eachLine(path string, fn func(line string)) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening input file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fn(line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input file: %w", err)
	}
	return nil
}
