package logging

import (
	"bytes"
	"log"
	"testing"

	"github.com/coregx/guestbook"
	"github.com/stretchr/testify/assert"
)

var _ guestbook.Logger = (*SimpleLogger)(nil)

func TestSimpleLogger(t *testing.T) {
	var buf bytes.Buffer
	l := &SimpleLogger{Logger: log.New(&buf, "", 0)}

	l.Debugf("hidden %d", 1)
	l.Infof("stored %d", 2)
	l.Errorf("failed: %v", "boom")
	l.Info("plain")

	assert.Equal(t, "[INFO] stored 2\n[ERROR] failed: boom\n[INFO] plain\n", buf.String())

	buf.Reset()
	l.Debug = true
	l.Debugf("shown %d", 3)
	assert.Equal(t, "[DEBUG] shown 3\n", buf.String())
}
