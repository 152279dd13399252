package model

// AccessDateFormat is the wire format of journal access expiration dates.
const AccessDateFormat = "2006-01-02"

// JournalAccess is the entitlement record the journals service keeps per
// purchase: which journal, and through which date access is valid.
// ExpirationDate stays a YYYY-MM-DD string; comparison is date-only.
type JournalAccess struct {
	Journal        Journal `json:"journal"`
	ExpirationDate string  `json:"expiration_date"`
}
