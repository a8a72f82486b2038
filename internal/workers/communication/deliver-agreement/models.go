// internal/workers/communication/deliver-agreement/models.go
package deliveragreement

type Input struct {
	RecipientEmail  string `json:"recipientEmail,omitempty"`
	RecipientPhone  string `json:"recipientPhone,omitempty"`
	Family          string `json:"family"`
	ReferenceNumber string `json:"referenceNumber"`
	PropertyTitle   string `json:"propertyTitle,omitempty"`
	// HTML is the exported printable page, attached as the email body.
	HTML string `json:"html"`
}

type Output struct {
	EmailSent bool   `json:"emailSent"`
	SMSSent   bool   `json:"smsSent"`
	Recipient string `json:"recipient,omitempty"`
}
