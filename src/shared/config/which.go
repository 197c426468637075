package config

import (
	"fmt"
	"os/exec"
)

// FindBin resolves a binary on the PATH, development has no env vars pointing at the engines
func FindBin(bin string) string {
	binPath, err := exec.LookPath(bin)
	if err != nil {
		panic(fmt.Sprintf("Failed to find %s on the PATH: %s", bin, err.Error()))
	}

	return binPath
}

func SpleeterPath() string {
	return FindBin("spleeter")
}

func FFmpegPath() string {
	return FindBin("ffmpeg")
}
