package outbound

import (
	"context"
	"github.com/gulam-moin/interactive-voice-response/domain"
)

// UpdateSessionFunc mutates the session in place. found is false when no
// session exists for the key; returning an error aborts the write.
type UpdateSessionFunc func(session *domain.CallSession, found bool) error

type CallSessionStorePort interface {
	Save(ctx context.Context, session domain.CallSession) error
	Get(ctx context.Context, callID string) (domain.CallSession, bool, error)
	// Update runs fn as an atomic read-modify-write for callID. Calls for
	// the same key are serialized; calls for different keys are not.
	Update(ctx context.Context, callID string, fn UpdateSessionFunc) (domain.CallSession, error)
	Delete(ctx context.Context, callID string) error
}
