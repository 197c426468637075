package cerr

import (
	"github.com/apex/log"
	"github.com/cockroachdb/errors"
)

func Log(err error) {
	fields := CollectFields(err)
	if len(fields) == 0 {
		log.Error(err.Error())
		return
	}

	log.WithFields(log.Fields(fields)).Error(err.Error())
}

// CollectFields merges the fields of every contextual error in the chain,
// outer fields win over inner ones
func CollectFields(err error) F {
	fields := F{}

	for current := err; current != nil; current = errors.UnwrapOnce(current) {
		ctxErr, ok := current.(ContextualError)
		if !ok {
			continue
		}

		for key, val := range ctxErr.ContextFields {
			if _, exists := fields[key]; !exists {
				fields[key] = val
			}
		}
	}

	return fields
}
