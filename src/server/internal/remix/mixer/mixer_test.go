package mixer_test

import (
	"context"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/veedubyou/stem-remixer/src/server/internal/remix/mixer"
	. "github.com/veedubyou/stem-remixer/src/shared/testing"
	"github.com/veedubyou/stem-remixer/src/shared/testing/dummy"
)

var _ = Describe("FFmpeg mixer", func() {
	var (
		dummyExecutor *dummy.FFmpegExecutor
		ffmpeg        mixer.FFmpegMixer

		inputPaths []string
		outputPath string
	)

	BeforeEach(func() {
		dir := TempDir()

		By("Writing the stems to mix", func() {
			inputPaths = []string{}
			for _, stem := range []string{"bass", "drums"} {
				stemPath := filepath.Join(dir, stem+".wav")
				Expect(os.WriteFile(stemPath, []byte(stem), os.ModePerm)).To(Succeed())
				inputPaths = append(inputPaths, stemPath)
			}

			outputPath = filepath.Join(dir, "processed_song.wav")
		})

		By("Instantiating the mixer", func() {
			dummyExecutor = dummy.NewDummyFFmpegExecutor()
			ffmpeg = mixer.NewFFmpegMixer("/somewhere/ffmpeg", dir, dummyExecutor)
		})
	})

	It("runs one invocation with every input", func() {
		err := ffmpeg.Mix(context.Background(), inputPaths, outputPath)
		Expect(err).NotTo(HaveOccurred())

		invocations := dummyExecutor.Invocations()
		Expect(invocations).To(HaveLen(1))
		Expect(dummy.InputPaths(invocations[0])).To(Equal(inputPaths))

		mixed, err := os.ReadFile(outputPath)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(mixed)).To(Equal("bass+drums"))
	})

	It("fails when ffmpeg exits non-zero", func() {
		dummyExecutor.Unavailable = true

		err := ffmpeg.Mix(context.Background(), inputPaths, outputPath)
		Expect(err).To(MatchError(dummy.ExitFailure))
		Expect(dummyExecutor.Invocations()).To(HaveLen(1))

		_, statErr := os.Stat(outputPath)
		Expect(os.IsNotExist(statErr)).To(BeTrue())
	})

	It("does not run without inputs", func() {
		err := ffmpeg.Mix(context.Background(), []string{}, outputPath)
		Expect(err).To(HaveOccurred())
		Expect(dummyExecutor.Invocations()).To(BeEmpty())
	})

	It("does not run with a cancelled context", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := ffmpeg.Mix(ctx, inputPaths, outputPath)
		Expect(err).To(MatchError(context.Canceled))
		Expect(dummyExecutor.Invocations()).To(BeEmpty())
	})
})
