package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type AccountCreatedMailData struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ApplicationStatusMailData struct {
	Name     string `json:"name"`
	JobTitle string `json:"jobTitle"`
	Company  string `json:"company"`
	Status   string `json:"status"`
}
