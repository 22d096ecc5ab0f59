// Package checkout hands purchases off to an external Google Form. The form
// is an opaque write sink: the deep link carries the jersey and optional
// customer details as prefill parameters and no response is ever observed.
package checkout

import (
	"net/url"
	"os/exec"
	"runtime"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"jersey-hub/config"
)

// FormFields maps logical field names to the form's entry identifiers.
type FormFields struct {
	JerseyName    string
	JerseyPrice   string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Size          string
}

type Config struct {
	FormURL string
	Fields  FormFields
}

// ConfigFromApp reads the form endpoint and field ids from the app config.
func ConfigFromApp() Config {
	cfg := config.AppConfig
	return Config{
		FormURL: cfg.GoogleFormURL,
		Fields: FormFields{
			JerseyName:    cfg.FormFieldJerseyName,
			JerseyPrice:   cfg.FormFieldJerseyPrice,
			CustomerName:  cfg.FormFieldCustomerName,
			CustomerEmail: cfg.FormFieldCustomerEmail,
			CustomerPhone: cfg.FormFieldCustomerPhone,
			Size:          cfg.FormFieldSize,
		},
	}
}

// FormData is the payload for one handoff. JerseyPrice is the display string
// from FormatPrice, not the raw paise value.
type FormData struct {
	JerseyName    string
	JerseyPrice   string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Size          string
}

// BuildFormURL assembles the prefilled deep link. Jersey fields are always
// sent; customer fields only when set.
func BuildFormURL(cfg Config, data FormData) string {
	params := url.Values{}
	params.Set(cfg.Fields.JerseyName, data.JerseyName)
	params.Set(cfg.Fields.JerseyPrice, data.JerseyPrice)

	if data.CustomerName != "" {
		params.Set(cfg.Fields.CustomerName, data.CustomerName)
	}
	if data.CustomerEmail != "" {
		params.Set(cfg.Fields.CustomerEmail, data.CustomerEmail)
	}
	if data.CustomerPhone != "" {
		params.Set(cfg.Fields.CustomerPhone, data.CustomerPhone)
	}
	if data.Size != "" {
		params.Set(cfg.Fields.Size, data.Size)
	}

	return cfg.FormURL + "?" + params.Encode()
}

var pricePrinter = message.NewPrinter(language.English)

// FormatPrice renders paise as a grouped rupee display string: 249900 → "₹2,499".
func FormatPrice(paise int) string {
	return pricePrinter.Sprintf("₹%d", paise/100)
}

// Open launches the URL in a new browser context. The call does not wait for
// or observe anything from the opened page.
func Open(rawURL string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", rawURL).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", rawURL).Start()
	default:
		return exec.Command("xdg-open", rawURL).Start()
	}
}
