package testing

import (
	"os"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

// TempDir is removed again once the running test finishes
func TempDir() string {
	dir, err := os.MkdirTemp("", "stem-remixer-test")
	gomega.ExpectWithOffset(1, err).NotTo(gomega.HaveOccurred())

	ginkgo.DeferCleanup(os.RemoveAll, dir)
	return dir
}
