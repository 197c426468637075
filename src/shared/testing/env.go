package testing

import (
	"os"

	"github.com/onsi/gomega"
	"github.com/veedubyou/stem-remixer/src/shared/config/envvar"
)

func SetTestEnv() {
	err := os.Setenv(envvar.ENVIRONMENT, "test")
	gomega.ExpectWithOffset(1, err).NotTo(gomega.HaveOccurred())
}
