package notify

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const defaultTwilioBaseURL = "https://api.twilio.com"

type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	// From is the sending phone number registered with the gateway.
	From string
	// BaseURL overrides the API endpoint, used in tests.
	BaseURL string
}

// TwilioSender delivers SMS through the Twilio Messages REST API.
type TwilioSender struct {
	Config *TwilioConfig
	Client *http.Client
}

func NewTwilioSender(config *TwilioConfig) *TwilioSender {
	if config.BaseURL == "" {
		config.BaseURL = defaultTwilioBaseURL
	}
	return &TwilioSender{
		Config: config,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

// SendSMS posts one message to the gateway. Each dispatch is tagged with a
// generated reference so deliveries can be correlated with gateway logs.
func (s *TwilioSender) SendSMS(to string, body string) error {
	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", s.Config.BaseURL, s.Config.AccountSID)

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", s.Config.From)
	form.Set("Body", body)

	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}

	reference := uuid.New().String()
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Dispatch-Reference", reference)
	req.SetBasicAuth(s.Config.AccountSID, s.Config.AuthToken)

	resp, err := s.Client.Do(req)
	if err != nil {
		return fmt.Errorf("sms dispatch %s: %w", reference, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// The gateway returns a JSON error document; keep a slice of it for the logs.
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("sms dispatch %s: gateway returned %d: %s", reference, resp.StatusCode, string(detail))
	}

	return nil
}
