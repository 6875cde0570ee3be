package services

// FarePerUnit is the rate charged per unit of distance between station
// ids, in currency minor units.
const FarePerUnit = 10

// Fare returns the ticket price for a trip between two stations. The
// absolute difference of the station ids stands in for distance, so the
// price is symmetric and zero for a same-station trip. Placeholder
// economics; replace once a real fare table exists.
func Fare(stationFrom, stationTo int64) int64 {
	d := stationTo - stationFrom
	if d < 0 {
		d = -d
	}
	return d * FarePerUnit
}
