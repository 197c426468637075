package remix_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/veedubyou/stem-remixer/src/server/internal/lib/staging"
	"github.com/veedubyou/stem-remixer/src/server/internal/remix/errors"
	"github.com/veedubyou/stem-remixer/src/server/internal/remix/gateway"
	"github.com/veedubyou/stem-remixer/src/server/internal/remix/history/historyfakes"
	"github.com/veedubyou/stem-remixer/src/server/internal/remix/mixer"
	"github.com/veedubyou/stem-remixer/src/server/internal/remix/separator"
	"github.com/veedubyou/stem-remixer/src/server/internal/remix/usecase"
	"github.com/veedubyou/stem-remixer/src/shared/lib/executor"
	"github.com/veedubyou/stem-remixer/src/shared/lib/rabbitmq/rabbitmqfakes"
	. "github.com/veedubyou/stem-remixer/src/shared/testing"
	"github.com/veedubyou/stem-remixer/src/shared/testing/dummy"
)

type countingExecutor struct {
	executor.Executor
	count *int
}

func (c countingExecutor) Command(name string, arg ...string) executor.Command {
	*c.count++
	return c.Executor.Command(name, arg...)
}

var _ = Describe("Home", func() {
	It("says the server is up", func() {
		remixGateway := remixgateway.NewGateway(remixusecase.Usecase{}, staging.Area{})

		request := RequestFactory{Method: "GET", Target: "/"}.MakeFake()
		response := httptest.NewRecorder()
		c := PrepareEchoContext(request, response)

		Expect(remixGateway.Home(c)).To(Succeed())
		Expect(response.Code).To(Equal(http.StatusOK))

		body := DecodeJSON[map[string]string](response.Body)
		Expect(body["message"]).To(Equal(remixgateway.LivenessMessage))
	})
})

var _ = Describe("Remix", func() {
	var (
		spleeterExecutor *dummy.SpleeterExecutor
		spleeterRuns     int
		ffmpegExecutor   *dummy.FFmpegExecutor
		publisher        *rabbitmqfakes.FakePublisher
		historyStore     *historyfakes.FakeStore

		stagingArea  staging.Area
		remixGateway remixgateway.Gateway

		formFields map[string]string
		files      []UploadFile
		response   *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		By("Instantiating all mocks", func() {
			spleeterRuns = 0
			spleeterExecutor = dummy.NewDummySpleeterExecutor()
			ffmpegExecutor = dummy.NewDummyFFmpegExecutor()
			publisher = &rabbitmqfakes.FakePublisher{}
			historyStore = &historyfakes.FakeStore{}
		})

		By("Instantiating the gateway", func() {
			var err error
			stagingArea, err = staging.NewArea(TempDir())
			Expect(err).NotTo(HaveOccurred())

			spleeter := separator.NewSpleeterSeparator("/somewhere/spleeter", stagingArea.Root(), countingExecutor{
				Executor: spleeterExecutor,
				count:    &spleeterRuns,
			})
			ffmpeg := mixer.NewFFmpegMixer("/somewhere/ffmpeg", stagingArea.Root(), ffmpegExecutor)
			remixUsecase := remixusecase.NewUsecase(spleeter, ffmpeg, publisher, historyStore)
			remixGateway = remixgateway.NewGateway(remixUsecase, stagingArea)
		})

		formFields = map[string]string{}
		files = []UploadFile{}
	})

	var upload = func(fileName string, contents string) {
		files = append(files, UploadFile{
			FieldName: "file",
			FileName:  fileName,
			Contents:  []byte(contents),
		})
	}

	JustBeforeEach(func() {
		request := RequestFactory{
			Method:     "POST",
			Target:     "/process-audio",
			FormFields: formFields,
			Files:      files,
		}.MakeFake()

		response = httptest.NewRecorder()
		c := PrepareEchoContext(request, response)

		err := remixGateway.ProcessAudio(c)
		Expect(err).NotTo(HaveOccurred())
	})

	var expectStagingEmpty = func() {
		entries, err := os.ReadDir(stagingArea.Root())
		ExpectWithOffset(1, err).NotTo(HaveOccurred())
		ExpectWithOffset(1, entries).To(BeEmpty())
	}

	var expectRejected = func(statusCode int, code string) {
		ExpectWithOffset(1, response.Code).To(Equal(statusCode))

		apiErr := DecodeJSONError(response.Body)
		ExpectWithOffset(1, apiErr.Code).To(Equal(code))
		ExpectWithOffset(1, apiErr.Error).NotTo(BeEmpty())
	}

	var expectNoEngineRun = func() {
		ExpectWithOffset(1, spleeterRuns).To(Equal(0))
		ExpectWithOffset(1, ffmpegExecutor.Invocations()).To(BeEmpty())
	}

	var mixInputStems = func() []string {
		invocations := ffmpegExecutor.Invocations()
		ExpectWithOffset(1, invocations).To(HaveLen(1))

		stems := []string{}
		for _, inputPath := range dummy.InputPaths(invocations[0]) {
			parts := strings.Split(inputPath, "/")
			stems = append(stems, strings.TrimSuffix(parts[len(parts)-1], ".wav"))
		}
		return stems
	}

	Describe("Removing vocals from a 4 stem wav", func() {
		BeforeEach(func() {
			upload("song.wav", "cool_jamz")
			formFields["stems"] = "4"
			formFields["remove_part"] = "vocals"
		})

		It("returns the remix of bass, drums and other", func() {
			Expect(response.Code).To(Equal(http.StatusOK))
			Expect(response.Body.String()).To(Equal("cool_jamz-bass+cool_jamz-drums+cool_jamz-other"))
			Expect(mixInputStems()).To(Equal([]string{"bass", "drums", "other"}))
		})

		It("names the download after the upload", func() {
			Expect(response.Header().Get("Content-Disposition")).To(Equal(`attachment; filename="processed_song.wav"`))
			Expect(response.Header().Get("Content-Type")).To(Equal("audio/wav"))
		})

		It("leaves nothing in the staging area", func() {
			expectStagingEmpty()
		})

		It("reports the run once", func() {
			Expect(publisher.PublishCallCount()).To(Equal(1))
			Expect(historyStore.RecordRemixCallCount()).To(Equal(1))
		})
	})

	Describe("A 2 stem mp3", func() {
		BeforeEach(func() {
			upload("track.mp3", "cool_jamz")
			formFields["stems"] = "2"
		})

		It("mixes vocals and other", func() {
			Expect(response.Code).To(Equal(http.StatusOK))
			Expect(mixInputStems()).To(Equal([]string{"vocals", "other"}))
			Expect(response.Header().Get("Content-Type")).To(Equal("audio/mpeg"))
			Expect(response.Header().Get("Content-Disposition")).To(Equal(`attachment; filename="processed_track.mp3"`))
		})
	})

	Describe("Removing drums from a 2 stem split", func() {
		BeforeEach(func() {
			upload("x.wav", "cool_jamz")
			formFields["stems"] = "2"
			formFields["remove_part"] = "drums"
		})

		It("ignores the removal", func() {
			Expect(response.Code).To(Equal(http.StatusOK))
			Expect(mixInputStems()).To(Equal([]string{"vocals", "other"}))
		})
	})

	Describe("Defaults", func() {
		BeforeEach(func() {
			upload("song.wav", "cool_jamz")
			formFields["remove_part"] = ""
		})

		It("splits into 4 stems and keeps them all", func() {
			Expect(response.Code).To(Equal(http.StatusOK))
			Expect(mixInputStems()).To(Equal([]string{"vocals", "bass", "drums", "other"}))
		})
	})

	Describe("An upload name that needs sanitizing", func() {
		BeforeEach(func() {
			upload("my cool sông!.WAV", "cool_jamz")
		})

		It("downloads under the sanitized name", func() {
			Expect(response.Code).To(Equal(http.StatusOK))
			Expect(response.Header().Get("Content-Disposition")).To(Equal(`attachment; filename="processed_my_cool_song.WAV"`))
			Expect(response.Header().Get("Content-Type")).To(Equal("audio/wav"))
		})
	})

	Describe("Validation", func() {
		Describe("No file", func() {
			BeforeEach(func() {
				formFields["stems"] = "4"
			})

			It("rejects the request", func() {
				expectRejected(http.StatusBadRequest, string(remixerrors.MissingFileCode))
				expectNoEngineRun()
				expectStagingEmpty()
			})
		})

		Describe("Unsupported extension", func() {
			BeforeEach(func() {
				upload("notes.txt", "not_jamz")
			})

			It("rejects the request without staging", func() {
				expectRejected(http.StatusBadRequest, string(remixerrors.UnsupportedExtensionCode))
				expectNoEngineRun()
				expectStagingEmpty()
			})
		})

		Describe("Name with nothing usable before the extension", func() {
			BeforeEach(func() {
				upload("Ω.wav", "cool_jamz")
			})

			It("rejects the request", func() {
				expectRejected(http.StatusBadRequest, string(remixerrors.UnsupportedExtensionCode))
				expectStagingEmpty()
			})
		})

		Describe("Unsupported stem count", func() {
			BeforeEach(func() {
				upload("song.wav", "cool_jamz")
				formFields["stems"] = "3"
			})

			It("rejects the request before separating", func() {
				expectRejected(http.StatusBadRequest, string(remixerrors.InvalidStemCountCode))
				expectNoEngineRun()
				expectStagingEmpty()
			})
		})

		Describe("Stem count that is not a number", func() {
			BeforeEach(func() {
				upload("song.wav", "cool_jamz")
				formFields["stems"] = "four"
			})

			It("rejects the request before separating", func() {
				expectRejected(http.StatusBadRequest, string(remixerrors.InvalidStemCountCode))
				expectNoEngineRun()
				expectStagingEmpty()
			})
		})

		Describe("Unknown remove part", func() {
			BeforeEach(func() {
				upload("song.wav", "cool_jamz")
				formFields["remove_part"] = "guitar"
			})

			It("rejects the request before separating", func() {
				expectRejected(http.StatusBadRequest, string(remixerrors.InvalidRemovePartCode))
				expectNoEngineRun()
				expectStagingEmpty()
			})
		})
	})

	Describe("ffmpeg fails", func() {
		BeforeEach(func() {
			upload("song.wav", "cool_jamz")
			formFields["remove_part"] = "vocals"
			ffmpegExecutor.Unavailable = true
		})

		It("returns a mix failure", func() {
			expectRejected(http.StatusInternalServerError, string(remixerrors.MixFailedCode))
		})

		It("still cleans up the request", func() {
			expectStagingEmpty()
		})
	})

	Describe("Separation fails", func() {
		BeforeEach(func() {
			upload("song.wav", "cool_jamz")
			spleeterExecutor.Unavailable = true
		})

		It("returns a separation failure", func() {
			expectRejected(http.StatusInternalServerError, string(remixerrors.SeparationFailedCode))
			Expect(ffmpegExecutor.Invocations()).To(BeEmpty())
			expectStagingEmpty()
		})
	})

	Describe("Nothing remains after the removal", func() {
		BeforeEach(func() {
			upload("song.wav", "cool_jamz")
			formFields["remove_part"] = "vocals"
			spleeterExecutor.OnlyStems = []string{"vocals"}
		})

		It("returns no stems remaining", func() {
			expectRejected(http.StatusBadRequest, string(remixerrors.NoStemsRemainingCode))
			Expect(ffmpegExecutor.Invocations()).To(BeEmpty())
			expectStagingEmpty()
		})
	})
})
