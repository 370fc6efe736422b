package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_InlineCode(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"-c", "+3 5"}, strings.NewReader(""), &out, &errOut)
	assert.Equal(t, 0, code)
	assert.Equal(t, "8\n", out.String())
}

func TestRun_FileAndCodeMutuallyExclusive(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"-c", "+3 5", "somefile.pyth"}, strings.NewReader(""), &out, &errOut)
	assert.NotEqual(t, 0, code)
	assert.Contains(t, errOut.String(), "mutually exclusive")
}

func TestRun_NoArgsErrors(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run(nil, strings.NewReader(""), &out, &errOut)
	assert.NotEqual(t, 0, code)
}

func TestRun_DebugDumpPrintsBanner(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"-d", "-c", "+3 5"}, strings.NewReader(""), &out, &errOut)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "bytes ======")
}

func TestRun_StdinTextAvailableAsQ(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"-c", "Q"}, strings.NewReader("piped in"), &out, &errOut)
	assert.Equal(t, 0, code)
	assert.Equal(t, "piped in\n", out.String())
}
