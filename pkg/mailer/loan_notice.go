package mailer

import (
	"fmt"
	"time"
)

// LoanNotice renders the subject and plain-text body for a loan lifecycle
// email. eventType is one of the loan event type strings published on the
// queue; unknown types fall back to a generic notice.
func LoanNotice(eventType, bookTitle string, dueDate time.Time) (subject, text string) {
	due := dueDate.Format("02 Jan 2006")
	switch eventType {
	case "loan.borrowed":
		subject = fmt.Sprintf("You borrowed %q", bookTitle)
		text = fmt.Sprintf("You have borrowed %q. It is due back on %s.", bookTitle, due)
	case "loan.returned":
		subject = fmt.Sprintf("You returned %q", bookTitle)
		text = fmt.Sprintf("Thanks for returning %q. See you next time.", bookTitle)
	case "loan.renewed":
		subject = fmt.Sprintf("Your loan of %q was renewed", bookTitle)
		text = fmt.Sprintf("Your loan of %q has been renewed. The new due date is %s.", bookTitle, due)
	default:
		subject = fmt.Sprintf("Update on your loan of %q", bookTitle)
		text = fmt.Sprintf("There is an update on your loan of %q. Due date: %s.", bookTitle, due)
	}
	return subject, text
}
