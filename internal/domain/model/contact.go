package model

// ContactForm holds the contact page fields.
// It is reset after submission and never sent or stored anywhere.
type ContactForm struct {
	Name    string `form:"name" json:"name"`
	Email   string `form:"email" json:"email"`
	Subject string `form:"subject" json:"subject"`
	Message string `form:"message" json:"message"`
}

// IsEmpty reports whether every field is blank.
func (f ContactForm) IsEmpty() bool {
	return f.Name == "" && f.Email == "" && f.Subject == "" && f.Message == ""
}
