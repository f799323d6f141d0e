package domain

import "strings"

// TransportMode - способ добраться до места назначения
type TransportMode string

const (
	TransportFlight      TransportMode = "Flight"
	TransportTrain       TransportMode = "Train"
	TransportBus         TransportMode = "Bus"
	TransportCarPersonal TransportMode = "Car (Personal)"
	TransportCarRental   TransportMode = "Car (Taxi/Rental)"
)

// TransportModes returns all modes in ranking order. The optimizer iterates in
// this order, so it is part of the tie-break contract.
func TransportModes() []TransportMode {
	return []TransportMode{
		TransportFlight,
		TransportTrain,
		TransportBus,
		TransportCarPersonal,
		TransportCarRental,
	}
}

// IsVehicle reports whether the mode is priced per vehicle from distance
// rather than per traveler from catalog baselines.
func (m TransportMode) IsVehicle() bool {
	return m == TransportCarPersonal || m == TransportCarRental
}

// BookingLink - где забронировать билет (для машин ссылки нет)
func (m TransportMode) BookingLink() string {
	switch m {
	case TransportTrain:
		return "https://www.irctc.co.in"
	case TransportBus:
		return "https://www.redbus.in"
	case TransportFlight:
		return "https://www.makemytrip.com/flights/"
	default:
		return ""
	}
}

// ParseTransportMode accepts canonical names plus short aliases used by API clients.
func ParseTransportMode(s string) (TransportMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "flight", "air", "plane":
		return TransportFlight, true
	case "train", "rail":
		return TransportTrain, true
	case "bus", "coach":
		return TransportBus, true
	case "car (personal)", "car_personal", "personal", "car":
		return TransportCarPersonal, true
	case "car (taxi/rental)", "car_rental", "rental", "taxi":
		return TransportCarRental, true
	}
	return "", false
}
