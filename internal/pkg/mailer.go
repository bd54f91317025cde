package pkg

// Mailer delivers confirmation codes; *email.Client satisfies it.
type Mailer interface {
	SendConfirmationCode(from, to, username, code string) error
}
