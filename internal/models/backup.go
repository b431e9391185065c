package models

import "encoding/xml"

// SMS represents a single message from an SMS backup XML export.
// The backup format stores everything as attributes.
type SMS struct {
	Address string `xml:"address,attr"`
	Body    string `xml:"body,attr"`
	Date    string `xml:"date,attr"` // Epoch milliseconds
}

// SMSBackup represents the root of an SMS backup document.
type SMSBackup struct {
	XMLName xml.Name `xml:"smses"`
	Count   string   `xml:"count,attr"`
	SMS     []SMS    `xml:"sms"`
}
