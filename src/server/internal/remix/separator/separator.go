package separator

import (
	"context"

	"github.com/veedubyou/stem-remixer/src/server/internal/remix/entity"
)

type Separator interface {
	// Separate writes <outputDir>/<input base name>/<stem>.wav for every stem the engine produced
	Separate(ctx context.Context, inputPath string, stemCount remixentity.StemCount, outputDir string) ([]remixentity.StemName, error)
}
