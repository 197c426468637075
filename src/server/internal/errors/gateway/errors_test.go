package gateway_test

import (
	"net/http"
	"net/http/httptest"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/veedubyou/stem-remixer/src/server/internal/errors/api"
	"github.com/veedubyou/stem-remixer/src/server/internal/errors/gateway"
	"github.com/veedubyou/stem-remixer/src/server/internal/remix/errors"
	testlib "github.com/veedubyou/stem-remixer/src/shared/testing"
)

var allErrorCodes = []api.ErrorCode{
	api.DefaultErrorCode,
	remixerrors.MissingFileCode,
	remixerrors.UnsupportedExtensionCode,
	remixerrors.InvalidStemCountCode,
	remixerrors.InvalidRemovePartCode,
	remixerrors.NoStemsRemainingCode,
	remixerrors.UploadTooLargeCode,
	remixerrors.SeparationFailedCode,
	remixerrors.MixFailedCode,
}

var _ = Describe("Errors", func() {
	Describe("HTTP status code handling for ErrorCodes", func() {
		for _, errorCode := range allErrorCodes {
			errorCode := errorCode
			It("processes ErrorCode "+string(errorCode), func() {
				apiError := &api.Error{
					ErrorCode:     errorCode,
					UserMessage:   "Something failed",
					InternalError: errors.New("Our engine blew up"),
				}

				response := httptest.NewRecorder()
				c := testlib.PrepareEchoContext(httptest.NewRequest(http.MethodPost, "/process-audio", nil), response)

				runTest := func() {
					_ = gateway.ErrorResponse(c, apiError)
				}
				Expect(runTest).NotTo(Panic())
			})
		}

		It("panics for codes without a mapping", func() {
			Expect(func() {
				gateway.StatusCode(api.ErrorCode("made_up"))
			}).To(Panic())
		})
	})

	Describe("Response body", func() {
		var response *httptest.ResponseRecorder

		BeforeEach(func() {
			response = httptest.NewRecorder()
			c := testlib.PrepareEchoContext(httptest.NewRequest(http.MethodPost, "/process-audio", nil), response)

			apiError := api.CommitError(errors.New("stems param was banana"),
				remixerrors.InvalidStemCountCode,
				"stems must be 2, 4 or 5")

			err := gateway.ErrorResponse(c, apiError)
			Expect(err).NotTo(HaveOccurred())
		})

		It("uses the mapped status code", func() {
			Expect(response.Code).To(Equal(http.StatusBadRequest))
		})

		It("carries the user message and the code", func() {
			resErr := testlib.DecodeJSONError(response.Body)
			Expect(resErr.Error).To(Equal("stems must be 2, 4 or 5"))
			Expect(resErr.Code).To(BeEquivalentTo(remixerrors.InvalidStemCountCode))
		})

		It("shows the internal details outside of production", func() {
			resErr := testlib.DecodeJSONError(response.Body)
			Expect(resErr.ErrorDetails).To(ContainSubstring("stems param was banana"))
		})
	})
})
