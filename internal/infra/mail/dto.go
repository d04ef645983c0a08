package mail

type NotificationEmailData struct {
	Kind        string
	Name        string
	Email       string
	Phone       string
	ServiceType string
	Message     string
	Source      string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	To       string
}
