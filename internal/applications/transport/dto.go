// Package transport defines the application form request and response
// shapes.
package transport

// SubmitApplicationRequest is the qualification form at the bottom of
// the funnel. Every field is required; agreesToPay must be checked.
type SubmitApplicationRequest struct {
	CompanyName    string `json:"companyName" validate:"required,min=1,max=200"`
	Name           string `json:"name" validate:"required,min=1,max=200"`
	Email          string `json:"email" validate:"required,email"`
	Website        string `json:"website" validate:"required,url"`
	CurrentRevenue string `json:"currentRevenue" validate:"required,min=1,max=50"`
	DesiredRevenue string `json:"desiredRevenue" validate:"required,min=1,max=50"`
	AgreesToPay    bool   `json:"agreesToPay" validate:"eq=true"`
}

// SubmitApplicationResponse acknowledges a received application.
// SMSNotification reports whether the operator alert was dispatched or
// skipped because Twilio is not configured.
type SubmitApplicationResponse struct {
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	SMSNotification string `json:"smsNotification"`
}
