package services

import (
	"github.com/gulam-moin/interactive-voice-response/application/ports/inbound"
	"github.com/gulam-moin/interactive-voice-response/domain"
	"strconv"
)

type KnownPlace struct {
	City   string
	Region string
}

// PincodeRange is inclusive on both ends.
type PincodeRange struct {
	Start  int
	End    int
	Region string
}

func (r PincodeRange) Contains(pin int) bool {
	return r.Start <= pin && pin <= r.End
}

var DefaultKnownPincodes = map[string]KnownPlace{
	"110001": {City: "New Delhi", Region: "Delhi"},
	"400001": {City: "Mumbai", Region: "Maharashtra"},
	"560001": {City: "Bengaluru", Region: "Karnataka"},
	"600001": {City: "Chennai", Region: "Tamil Nadu"},
	"700001": {City: "Kolkata", Region: "West Bengal"},
	"500001": {City: "Hyderabad", Region: "Telangana"},
	"380001": {City: "Ahmedabad", Region: "Gujarat"},
}

// DefaultPincodeRanges overlap in places (Andhra Pradesh/Telangana,
// Bihar/Jharkhand, Gujarat). The first matching entry wins, so the order here
// decides the answer.
var DefaultPincodeRanges = []PincodeRange{
	{Start: 110000, End: 110099, Region: "Delhi"},
	{Start: 400000, End: 444999, Region: "Maharashtra"},
	{Start: 560000, End: 591999, Region: "Karnataka"},
	{Start: 600000, End: 643999, Region: "Tamil Nadu"},
	{Start: 670000, End: 695999, Region: "Kerala"},
	{Start: 700000, End: 749999, Region: "West Bengal"},
	{Start: 500000, End: 534999, Region: "Andhra Pradesh"},
	{Start: 505000, End: 535999, Region: "Telangana"},
	{Start: 380000, End: 396999, Region: "Gujarat"},
	{Start: 180000, End: 194999, Region: "Jammu & Kashmir"},
	{Start: 750000, End: 769999, Region: "Odisha"},
	{Start: 800000, End: 849999, Region: "Bihar"},
	{Start: 820000, End: 839999, Region: "Jharkhand"},
	{Start: 140000, End: 160999, Region: "Punjab"},
	{Start: 160000, End: 179999, Region: "Haryana"},
	{Start: 201000, End: 285999, Region: "Uttar Pradesh"},
	{Start: 301000, End: 345999, Region: "Rajasthan"},
	{Start: 360000, End: 389999, Region: "Gujarat"},
	{Start: 793000, End: 799999, Region: "Meghalaya"},
	{Start: 781000, End: 788999, Region: "Assam"},
}

type locationResolver struct {
	known  map[string]KnownPlace
	ranges []PincodeRange
}

func NewLocationResolver(known map[string]KnownPlace, ranges []PincodeRange) inbound.LocationResolverPort {
	copied := make([]PincodeRange, len(ranges))
	copy(copied, ranges)
	return &locationResolver{
		known:  known,
		ranges: copied,
	}
}

func NewDefaultLocationResolver() inbound.LocationResolverPort {
	return NewLocationResolver(DefaultKnownPincodes, DefaultPincodeRanges)
}

func (r *locationResolver) Resolve(pincode string) domain.ResolvedLocation {
	if !isNumeric(pincode) {
		return domain.UnknownLocation()
	}

	pin, err := strconv.Atoi(pincode)
	if err != nil {
		// overflows int
		return domain.UnknownLocation()
	}

	// leading zeros are not significant
	if place, ok := r.known[strconv.Itoa(pin)]; ok {
		return domain.ResolvedLocation{
			CityName:     place.City,
			RegionName:   place.Region,
			IsExactMatch: true,
		}
	}

	for _, rng := range r.ranges {
		if rng.Contains(pin) {
			return domain.ResolvedLocation{
				CityName:   domain.PlaceholderCity(pincode),
				RegionName: rng.Region,
			}
		}
	}

	return domain.UnknownLocation()
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
