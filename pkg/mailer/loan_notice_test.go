package mailer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoanNotice(t *testing.T) {
	due := time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC)

	subject, text := LoanNotice("loan.borrowed", "Nineteen Eighty-Four", due)
	assert.Contains(t, subject, "borrowed")
	assert.Contains(t, text, "13 Sep 2026")

	subject, _ = LoanNotice("loan.returned", "Nineteen Eighty-Four", due)
	assert.Contains(t, subject, "returned")

	_, text = LoanNotice("loan.renewed", "Nineteen Eighty-Four", due)
	assert.Contains(t, text, "new due date is 13 Sep 2026")

	subject, _ = LoanNotice("loan.unknown", "Nineteen Eighty-Four", due)
	assert.Contains(t, subject, "Update on your loan")
}
