package models

// ScanRequest is the HTTP/queue payload that triggers a scan.
type ScanRequest struct {
	Chain   string `json:"chain" query:"chain" default:"eth" validate:"required,oneof=eth bsc polygon base"`
	Address string `json:"address" query:"address" validate:"required,len=42,startswith=0x"`
	Async   bool   `json:"async" query:"async"`
}

// ScanAccepted is returned when an async scan was queued.
type ScanAccepted struct {
	Chain   string `json:"chain"`
	Address string `json:"address"`
	Status  string `json:"status"`
}
