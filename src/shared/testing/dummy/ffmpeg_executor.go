package dummy

import (
	"os"
	"strings"
	"sync"

	"github.com/veedubyou/stem-remixer/src/shared/lib/executor"
)

var _ executor.Executor = &FFmpegExecutor{}

func NewDummyFFmpegExecutor() *FFmpegExecutor {
	return &FFmpegExecutor{
		Unavailable: false,
	}
}

// FFmpegExecutor "mixes" by joining the input contents with a plus sign,
// and remembers every argument list it was handed
type FFmpegExecutor struct {
	Unavailable bool

	lock        sync.Mutex
	invocations [][]string
}

func (f *FFmpegExecutor) Command(_ string, arg ...string) executor.Command {
	return &FFmpegCommand{
		executor: f,
		Args:     arg,
	}
}

func (f *FFmpegExecutor) Invocations() [][]string {
	f.lock.Lock()
	defer f.lock.Unlock()

	return append([][]string{}, f.invocations...)
}

func (f *FFmpegExecutor) record(args []string) {
	f.lock.Lock()
	defer f.lock.Unlock()

	f.invocations = append(f.invocations, args)
}

type FFmpegCommand struct {
	executor *FFmpegExecutor
	Args     []string
}

func (f *FFmpegCommand) SetDir(_ string) {}

func (f *FFmpegCommand) CombinedOutput() ([]byte, error) {
	f.executor.record(f.Args)

	if f.executor.Unavailable {
		return []byte("Conversion failed!"), ExitFailure
	}

	if len(f.Args) < 2 {
		return nil, UnexpectedInput
	}

	inputPaths := InputPaths(f.Args)
	if len(inputPaths) == 0 {
		return nil, UnexpectedInput
	}

	inputContents := []string{}
	for _, inputPath := range inputPaths {
		contents, err := os.ReadFile(inputPath)
		if err != nil {
			return nil, err
		}

		inputContents = append(inputContents, string(contents))
	}

	outputPath := f.Args[len(f.Args)-1]
	mixed := strings.Join(inputContents, "+")
	if err := os.WriteFile(outputPath, []byte(mixed), os.ModePerm); err != nil {
		return nil, err
	}

	return []byte("size=1kB time=00:00:01.00"), nil
}

// InputPaths pulls the -i values out of a recorded invocation
func InputPaths(args []string) []string {
	inputPaths := []string{}
	for i, arg := range args {
		if arg == "-i" && i+1 < len(args) {
			inputPaths = append(inputPaths, args[i+1])
		}
	}

	return inputPaths
}
