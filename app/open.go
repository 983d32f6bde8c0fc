package app

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

var errNoViewer = errors.New("no viewer configured, set $VISUAL, $EDITOR or $PAGER")

// viewerEnv lists the variables consulted for the program that opens files.
var viewerEnv = []string{"VISUAL", "EDITOR", "PAGER"}

// viewerCommand builds the command that opens path. The variable may carry
// arguments, e.g. EDITOR="code --wait".
func viewerCommand(path string) (*exec.Cmd, error) {
	for _, key := range viewerEnv {
		fields := strings.Fields(os.Getenv(key))
		if len(fields) == 0 {
			continue
		}
		args := append(fields[1:], path)
		return exec.Command(fields[0], args...), nil
	}
	return nil, errNoViewer
}

// openFile hands the terminal to the viewer until it exits.
func (p *Panel) openFile(path string) {
	cmd, err := viewerCommand(path)
	if err != nil {
		p.openFailed(path, err)
		return
	}
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr

	var runErr error
	suspended := p.app.Suspend(func() {
		runErr = cmd.Run()
	})
	if !suspended {
		runErr = errors.New("terminal could not be released")
	}
	if runErr != nil {
		p.openFailed(path, runErr)
		return
	}
	p.log.Debug("file opened", zap.String("path", path), zap.String("viewer", cmd.Path))
}

func (p *Panel) openFailed(path string, err error) {
	p.log.Error("failed to open file", zap.String("path", path), zap.Error(err))
	if p.notifier != nil {
		p.notifier.Error(fmt.Sprintf("Could not open %s: %v", path, err))
	}
}
