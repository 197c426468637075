package mixer

import (
	"fmt"
	"strings"

	"github.com/veedubyou/stem-remixer/src/shared/lib/cerr"
)

type Invocation struct {
	Args       []string
	FilterSpec string
}

// BuildMixInvocation lays out one ffmpeg call that reads every input at once
// and amixes them into outputPath, lasting as long as the longest input
func BuildMixInvocation(inputPaths []string, outputPath string) (Invocation, error) {
	if len(inputPaths) == 0 {
		return Invocation{}, cerr.Field("output_path", outputPath).Error("Cannot mix without any inputs")
	}

	args := []string{"-y"}
	for _, inputPath := range inputPaths {
		args = append(args, "-i", inputPath)
	}

	filterSpec := buildFilterSpec(len(inputPaths))
	args = append(args, "-filter_complex", filterSpec, outputPath)

	return Invocation{
		Args:       args,
		FilterSpec: filterSpec,
	}, nil
}

func buildFilterSpec(inputCount int) string {
	builder := strings.Builder{}
	for i := 0; i < inputCount; i++ {
		builder.WriteString(fmt.Sprintf("[%d]", i))
	}

	builder.WriteString(fmt.Sprintf("amix=inputs=%d:duration=longest", inputCount))
	return builder.String()
}
