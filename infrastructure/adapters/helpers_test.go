package adapters

import (
	"bytes"
	"github.com/gulam-moin/interactive-voice-response/application/ports/outbound"
	"github.com/rs/zerolog"
	"sync"
)

func newTestLogger() outbound.LoggerPort {
	return NewZerologWrapperFrom(zerolog.Nop())
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newBufferedTestLogger() (outbound.LoggerPort, *syncBuffer) {
	buf := &syncBuffer{}
	return NewZerologWrapperFrom(zerolog.New(buf)), buf
}
