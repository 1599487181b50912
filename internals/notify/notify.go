package notify

// Mailer delivers a single email message. Implementations report delivery
// failure but perform no retries; callers decide whether to block on dispatch.
type Mailer interface {
	SendMail(to string, subject string, body string) error
}

// SMSSender delivers a single text message to a mobile number.
type SMSSender interface {
	SendSMS(to string, body string) error
}
