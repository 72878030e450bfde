// pkg/manager/fake_test.go
package manager

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// fakeRunner scripts subprocess behavior per exact command line. Commands
// with no script behave like a missing binary.
type fakeRunner struct {
	scripts map[string]fakeResult
	calls   []string
}

type fakeResult struct {
	code     int
	out      string
	spawnErr error
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{scripts: make(map[string]fakeResult)}
}

func (f *fakeRunner) ok(cmdline string)             { f.scripts[cmdline] = fakeResult{} }
func (f *fakeRunner) exit(cmdline string, code int) { f.scripts[cmdline] = fakeResult{code: code} }
func (f *fakeRunner) output(cmdline, out string)    { f.scripts[cmdline] = fakeResult{out: out} }

func (f *fakeRunner) Run(name string, args ...string) (int, error) {
	key := strings.Join(append([]string{name}, args...), " ")
	f.calls = append(f.calls, key)
	res, ok := f.scripts[key]
	if !ok {
		return -1, fmt.Errorf("exec: %q: executable file not found in $PATH", name)
	}
	if res.spawnErr != nil {
		return -1, res.spawnErr
	}
	return res.code, nil
}

func (f *fakeRunner) Output(name string, args ...string) ([]byte, error) {
	key := strings.Join(append([]string{name}, args...), " ")
	f.calls = append(f.calls, key)
	res, ok := f.scripts[key]
	if !ok {
		return nil, fmt.Errorf("exec: %q: executable file not found in $PATH", name)
	}
	if res.spawnErr != nil {
		return nil, res.spawnErr
	}
	return []byte(res.out), nil
}

func (f *fakeRunner) called(cmdline string) bool {
	for _, c := range f.calls {
		if c == cmdline {
			return true
		}
	}
	return false
}

// quietLogger keeps engine diagnostics out of test output.
func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
