package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateObjectKey(t *testing.T) {
	key := GenerateObjectKey("transcribe-temp", "/videos/My Interview.mp4")

	re := regexp.MustCompile(`^transcribe-temp/\d{10}-[0-9a-f]{8}-My Interview\.mp4$`)
	assert.Regexp(t, re, key)
}

func TestGenerateJobName(t *testing.T) {
	name := GenerateJobName("transcribe-job", "/videos/interview.mp4")

	re := regexp.MustCompile(`^transcribe-job-\d{10}-[0-9a-f]{8}-interview$`)
	assert.Regexp(t, re, name)
}

func TestGeneratedIdentifiersAreUnique(t *testing.T) {
	a := GenerateObjectKey("p", "clip.mp4")
	b := GenerateObjectKey("p", "clip.mp4")
	assert.NotEqual(t, a, b, "two runs in the same second must not collide")

	x := GenerateJobName("p", "clip.mp4")
	y := GenerateJobName("p", "clip.mp4")
	assert.NotEqual(t, x, y)
}
