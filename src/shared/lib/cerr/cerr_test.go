package cerr_test

import (
	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/veedubyou/stem-remixer/src/shared/lib/cerr"
)

var _ = Describe("Contextual errors", func() {
	rootCause := errors.New("exit status 1")

	It("keeps the cause reachable", func() {
		err := cerr.Field("stem_path", "/a/vocals.wav").Wrap(rootCause).Error("Failed to delete stem")
		Expect(err).To(MatchError(rootCause))
		Expect(err.Error()).To(ContainSubstring("Failed to delete stem"))
		Expect(err.Error()).To(ContainSubstring("exit status 1"))
	})

	It("wrapping nothing still produces an error", func() {
		err := cerr.Field("stem_count", 3).Wrap(nil).Error("Invalid stem count")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(Equal("Invalid stem count"))
	})

	It("does not share fields between derived contexts", func() {
		base := cerr.Field("input_path", "/a/song.wav")
		_ = base.Field("output_dir", "/a/output")

		Expect(base.ContextFields).To(Equal(cerr.F{"input_path": "/a/song.wav"}))
	})

	It("collects fields across the chain with outer fields winning", func() {
		inner := cerr.Fields(cerr.F{"path": "inner", "args": "-y"}).Wrap(rootCause).Error("inner failure")
		middle := errors.Wrap(inner, "middle failure")
		outer := cerr.Field("path", "outer").Wrap(middle).Error("outer failure")

		Expect(cerr.CollectFields(outer)).To(Equal(cerr.F{
			"path": "outer",
			"args": "-y",
		}))
	})

	It("collects nothing from a plain error", func() {
		Expect(cerr.CollectFields(rootCause)).To(BeEmpty())
	})
})
