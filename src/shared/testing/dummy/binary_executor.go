package dummy

import "github.com/veedubyou/stem-remixer/src/shared/lib/executor"

var _ executor.Executor = BinaryExecutor{}

// BinaryExecutor hands every command to the dummy registered under the binary path,
// so one executor can stand in for both spleeter and ffmpeg
type BinaryExecutor map[string]executor.Executor

func (b BinaryExecutor) Command(name string, arg ...string) executor.Command {
	binExecutor, ok := b[name]
	if !ok {
		return unknownBinaryCommand{}
	}

	return binExecutor.Command(name, arg...)
}

type unknownBinaryCommand struct{}

func (u unknownBinaryCommand) SetDir(_ string) {}

func (u unknownBinaryCommand) CombinedOutput() ([]byte, error) {
	return []byte("command not found"), UnexpectedInput
}
