package refdata

// Hotel room type identifiers.
const (
	RoomBudget   = "budget"
	RoomMidscale = "midscale"
	RoomUpscale  = "upscale"
	RoomLuxury   = "luxury"
	RoomResort   = "resort"
)

// HotelRoomAnnualKWh maps room types to annual electricity consumption per
// occupied room in kWh. The hotel calculator scales these by
// nights-occupied-as-fraction-of-year.
//
// Source: Cornell Hotel Sustainability Benchmarking averages.
var HotelRoomAnnualKWh = map[string]float64{
	RoomBudget:   3469,
	RoomMidscale: 6254,
	RoomUpscale:  9793,
	RoomLuxury:   13224,
	RoomResort:   16210,
}

// GetHotelRoomAnnualKWh returns the annual kWh figure for a room type.
func GetHotelRoomAnnualKWh(roomType string) (float64, bool) {
	kwh, ok := HotelRoomAnnualKWh[roomType]
	return kwh, ok
}
