package remixentity

import "time"

type Status string

const (
	SucceededStatus Status = "succeeded"
	FailedStatus    Status = "failed"
)

// Report describes how one pipeline run went, it never holds any audio
type Report struct {
	RequestID  string
	FileName   string
	StemCount  StemCount
	RemovePart StemName
	KeptStems  []StemName
	Status     Status
	ErrorCode  string
	StartedAt  time.Time
	Duration   time.Duration
}

func KeptStemNames(keptStems []KeptStem) []StemName {
	names := []StemName{}
	for _, kept := range keptStems {
		names = append(names, kept.Name)
	}

	return names
}
