package dummy

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/veedubyou/stem-remixer/src/shared/lib/executor"
)

var _ executor.Executor = SpleeterExecutor{}

func NewDummySpleeterExecutor() *SpleeterExecutor {
	return &SpleeterExecutor{
		Unavailable: false,
		OnlyStems:   nil,
	}
}

// SpleeterExecutor writes fake stems the way the spleeter CLI lays them out.
// OnlyStems narrows down the stems that get written, to emulate a model that produced less.
type SpleeterExecutor struct {
	Unavailable bool
	OnlyStems   []string
}

type SpleeterCommand struct {
	Unavailable bool
	OnlyStems   []string
	Args        []string
}

func (s SpleeterExecutor) Command(_ string, arg ...string) executor.Command {
	return &SpleeterCommand{
		Unavailable: s.Unavailable,
		OnlyStems:   s.OnlyStems,
		Args:        arg,
	}
}

func getOptionValue(args []string, key string) (string, error) {
	for i, arg := range args {
		if arg == key && i+1 < len(args) {
			return args[i+1], nil
		}
	}

	return "", UnexpectedInput
}

func (s *SpleeterCommand) SetDir(_ string) {}

func (s *SpleeterCommand) CombinedOutput() ([]byte, error) {
	if len(s.Args) == 0 || s.Args[0] != "separate" {
		return nil, UnexpectedInput
	}

	sourcePath := s.Args[len(s.Args)-1]

	splitParam, err := getOptionValue(s.Args, "-p")
	if err != nil {
		return nil, err
	}

	destinationDir, err := getOptionValue(s.Args, "-o")
	if err != nil {
		return nil, err
	}

	fileFormat, err := getOptionValue(s.Args, "-f")
	if err != nil {
		return nil, err
	}

	if fileFormat != "{filename}/{instrument}.{codec}" {
		return nil, UnexpectedInput
	}

	if s.Unavailable {
		return []byte("Model could not be loaded"), NetworkFailure
	}

	contents, err := os.ReadFile(sourcePath)
	if err != nil {
		return nil, err
	}

	stems := []string{}

	switch splitParam {
	case "spleeter:2stems":
		stems = append(stems, "vocals", "accompaniment")
	case "spleeter:4stems":
		stems = append(stems, "vocals", "other", "bass", "drums")
	case "spleeter:5stems":
		stems = append(stems, "vocals", "other", "piano", "bass", "drums")
	default:
		return nil, UnexpectedInput
	}

	baseName := strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))
	stemDir := filepath.Join(destinationDir, baseName)
	if err := os.MkdirAll(stemDir, os.ModePerm); err != nil {
		return nil, err
	}

	for _, stem := range stems {
		if !s.shouldWrite(stem) {
			continue
		}

		stemPath := filepath.Join(stemDir, stem+".wav")
		stemContents := []byte(string(contents) + "-" + stem)
		err := os.WriteFile(stemPath, stemContents, os.ModePerm)
		if err != nil {
			return nil, err
		}
	}

	return []byte("Success"), nil
}

func (s *SpleeterCommand) shouldWrite(stem string) bool {
	if s.OnlyStems == nil {
		return true
	}

	for _, only := range s.OnlyStems {
		if only == stem {
			return true
		}
	}

	return false
}
