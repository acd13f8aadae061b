package cmd_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ts3go/ts3plugin/internal/cmd"
)

const sampleDiff = `--- a.go
+++ a.go (generated)
@@ -1,2 +1,2 @@
 package ts3
-type A int
+type A int32
`

func TestPrintDiffPlain(t *testing.T) {
	var buf bytes.Buffer
	cmd.PrintDiff(&buf, sampleDiff, false)
	assert.Equal(t, sampleDiff, buf.String())
}

func TestPrintDiffColored(t *testing.T) {
	var buf bytes.Buffer
	cmd.PrintDiff(&buf, sampleDiff, true)
	out := buf.String()

	assert.Contains(t, out, "\x1b[31m-type A int\x1b[0m")
	assert.Contains(t, out, "\x1b[32m+type A int32\x1b[0m")
	assert.Contains(t, out, "\x1b[36m@@ -1,2 +1,2 @@\x1b[0m")
	assert.Contains(t, out, "\n package ts3\n")
}
