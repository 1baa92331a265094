package inbound

import "github.com/gulam-moin/interactive-voice-response/domain"

type LocationResolverPort interface {
	Resolve(pincode string) domain.ResolvedLocation
}
