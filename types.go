package ipquery

// IPInfo represents the full set of information the API returns for a
// single IP address. Every section may be absent from the response;
// absent sections and fields are left nil rather than collapsed into
// zero values.
type IPInfo struct {
	IP       string        `json:"ip"`
	ISP      *ISPInfo      `json:"isp,omitempty"`
	Location *LocationInfo `json:"location,omitempty"`
	Risk     *RiskInfo     `json:"risk,omitempty"`
}

// String returns the queried IP address.
func (i IPInfo) String() string {
	return i.IP
}

// ISPInfo describes the network operator behind an IP address.
type ISPInfo struct {
	ASN *string `json:"asn,omitempty"`
	Org *string `json:"org,omitempty"`
	ISP *string `json:"isp,omitempty"`
}

// LocationInfo describes the geographical location of an IP address.
type LocationInfo struct {
	Country     *string  `json:"country,omitempty"`
	CountryCode *string  `json:"country_code,omitempty"`
	City        *string  `json:"city,omitempty"`
	State       *string  `json:"state,omitempty"`
	Zipcode     *string  `json:"zipcode,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Timezone    *string  `json:"timezone,omitempty"`
	Localtime   *string  `json:"localtime,omitempty"`
}

// RiskInfo holds the provider-computed risk indicators for an IP
// address. RiskScore ranges 0-100 when present.
type RiskInfo struct {
	IsMobile     *bool `json:"is_mobile,omitempty"`
	IsVPN        *bool `json:"is_vpn,omitempty"`
	IsTor        *bool `json:"is_tor,omitempty"`
	IsProxy      *bool `json:"is_proxy,omitempty"`
	IsDatacenter *bool `json:"is_datacenter,omitempty"`
	RiskScore    *int  `json:"risk_score,omitempty"`
}
