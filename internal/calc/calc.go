// Package calc implements the per-module emission calculators and their
// aggregation. Every calculator is a pure function: one validated entry plus
// the refdata tables in, one result out. Aggregators reduce a result slice
// into typed totals and return nil for empty input so "no data yet" stays
// distinguishable from "data summing to zero".
package calc

import "errors"

// Calculation failures. A bad entry always fails loudly at the single-entry
// boundary; a silent zero would be indistinguishable from a verified
// zero-emission activity and corrupt totals undetectably.
var (
	ErrUnknownFuelType      = errors.New("unknown fuel type")
	ErrUnknownTransportType = errors.New("unknown transport type")
	ErrUnknownAircraftType  = errors.New("unknown aircraft type")
	ErrUnknownRoomType      = errors.New("unknown room type")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrInvalidDivisor       = errors.New("invalid divisor")
)

// Calculation method discriminators shared across modules.
const (
	MethodAmount  = "amount"
	MethodMileage = "mileage"
	MethodCost    = "cost"

	MethodUsage = "usage"
	MethodArea  = "area"
	MethodNone  = "none"

	MethodFuel     = "fuel"
	MethodHours    = "hours"
	MethodDistance = "distance"
)
