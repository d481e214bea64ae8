package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeKeyPart(t *testing.T) {
	assert.Equal(t, "resume_final.pdf", SanitizeKeyPart("resume final.pdf"))
	assert.Equal(t, "CV_Jo_o_2025-v2.pdf", SanitizeKeyPart("CV João 2025-v2.pdf"))
	assert.Equal(t, "plain.pdf", SanitizeKeyPart("plain.pdf"))
	assert.Equal(t, "", SanitizeKeyPart(""))
}

func TestSanitizeEmail(t *testing.T) {
	assert.Equal(t, "jane.doe_tue.nl", SanitizeEmail("Jane.Doe@tue.nl"))
	assert.Equal(t, "a_b_example.com", SanitizeEmail("  a+b@example.com "))
}
