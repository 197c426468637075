package sanitize_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/veedubyou/stem-remixer/src/server/internal/lib/sanitize"
)

var _ = Describe("Filename", func() {
	DescribeTable("sanitizes upload names",
		func(input string, expected string) {
			Expect(sanitize.Filename(input)).To(Equal(expected))
		},
		Entry("plain names are untouched", "song.wav", "song.wav"),
		Entry("spaces become underscores", "my  cool song.mp3", "my_cool_song.mp3"),
		Entry("directories are folded into the name", "../../etc/passwd.wav", "etc_passwd.wav"),
		Entry("windows separators are folded too", `C:\music\track.mp3`, "C_music_track.mp3"),
		Entry("accents are reduced to ascii", "café.wav", "cafe.wav"),
		Entry("unsafe characters are dropped", "so$ng!?.wav", "song.wav"),
		Entry("leading dots are trimmed", ".hidden.wav", "hidden.wav"),
		Entry("non latin names leave only the extension", "Ω.wav", "wav"),
		Entry("nothing usable", "ΩΩ", ""),
	)
})
