package mailer

// sendEmailRequest is the Resend /emails payload.
type sendEmailRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// sendEmailResponse is the subset of the Resend response we read.
type sendEmailResponse struct {
	ID string `json:"id"`
}
