package enums

// NetworkType identifies a mobile money telecom network.
type NetworkType string

const (
	NetworkTypeMTN        NetworkType = "MTN"
	NetworkTypeVodafone   NetworkType = "VODAFONE"
	NetworkTypeAirtelTigo NetworkType = "AIRTEL TIGO"
)

var validNetworkTypes = []NetworkType{
	NetworkTypeMTN,
	NetworkTypeVodafone,
	NetworkTypeAirtelTigo,
}

func (n NetworkType) String() string {
	return string(n)
}

func (n NetworkType) IsValid() bool {
	for _, candidate := range validNetworkTypes {
		if candidate == n {
			return true
		}
	}
	return false
}
