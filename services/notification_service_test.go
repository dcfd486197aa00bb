package services

import (
	"errors"
	"testing"

	"armust-news-cms/mocks"
	"armust-news-cms/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSignInURL = "https://example.test/auth/sign-in"

func newTestNotifier(m *mocks.Mailer) NotificationService {
	return NewNotificationService(m, "no-reply@example.test", testSignInURL, zerolog.Nop())
}

func TestAccountStatusChangedActiveIndividual(t *testing.T) {
	m := &mocks.Mailer{}
	notifier := newTestNotifier(m)

	notifier.AccountStatusChanged(&models.Journalist{
		RegistrationType: models.RegistrationJournalist,
		FirstName:        "Ravi",
		LastName:         "Menon",
		Username:         "RAVI4821",
		Email:            "ravi@example.test",
		Status:           models.AccountActive,
	})

	require.Len(t, m.Sent, 1)
	assert.Equal(t, "Your Armust News Account is Now Active", m.Sent[0].Subject)
	assert.Contains(t, m.Sent[0].Body, "Hello Ravi Menon")
	assert.Contains(t, m.Sent[0].Body, testSignInURL)
	assert.Equal(t, []string{"ravi@example.test"}, m.Sent[0].To)
}

func TestAccountStatusChangedActiveOrganisation(t *testing.T) {
	m := &mocks.Mailer{}
	notifier := newTestNotifier(m)

	notifier.AccountStatusChanged(&models.Journalist{
		RegistrationType: models.RegistrationOrganisation,
		OrganisationName: "Harbour Gallery",
		Username:         "HARB1290",
		Email:            "admin@harbour.test",
		Status:           models.AccountActive,
	})

	require.Len(t, m.Sent, 1)
	assert.Contains(t, m.Sent[0].Body, "Dear Harbour Gallery")
	assert.Contains(t, m.Sent[0].Body, "onboarding your artists")
	assert.NotContains(t, m.Sent[0].Body, testSignInURL)
}

func TestAccountStatusChangedDeactivated(t *testing.T) {
	m := &mocks.Mailer{}
	notifier := newTestNotifier(m)

	notifier.AccountStatusChanged(&models.Journalist{
		RegistrationType: models.RegistrationArtist,
		FirstName:        "Mira",
		LastName:         "Sol",
		Email:            "mira@example.test",
		Status:           models.AccountInactive,
	})

	require.Len(t, m.Sent, 1)
	assert.Equal(t, "Your Armust News Account Has Been Deactivated", m.Sent[0].Subject)
	assert.Contains(t, m.Sent[0].Body, "temporarily deactivated")
}

func TestAccountStatusChangedApprovedFallsBackToUsername(t *testing.T) {
	m := &mocks.Mailer{}
	notifier := newTestNotifier(m)

	notifier.AccountStatusChanged(&models.Journalist{
		RegistrationType: models.RegistrationJournalist,
		Username:         "USER7301",
		Email:            "anon@example.test",
		Status:           models.AccountApproved,
	})

	require.Len(t, m.Sent, 1)
	assert.Contains(t, m.Sent[0].Body, "Hello USER7301")
}

func TestDeliverSkipsEmptyRecipient(t *testing.T) {
	m := &mocks.Mailer{}
	notifier := newTestNotifier(m)

	notifier.AccountStatusChanged(&models.Journalist{
		RegistrationType: models.RegistrationJournalist,
		Status:           models.AccountActive,
	})

	assert.Empty(t, m.Sent)
}

func TestDeliverSwallowsMailerFailure(t *testing.T) {
	m := &mocks.Mailer{Err: errors.New("smtp connection refused")}
	notifier := newTestNotifier(m)

	// Must not panic and must not propagate the error anywhere.
	notifier.AccountStatusChanged(&models.Journalist{
		RegistrationType: models.RegistrationJournalist,
		FirstName:        "Ravi",
		Email:            "ravi@example.test",
		Status:           models.AccountActive,
	})
	notifier.ApplicationReceived(&models.Journalist{
		RegistrationType: models.RegistrationArtist,
		Email:            "mira@example.test",
	})

	assert.Empty(t, m.Sent)
}

func TestApplicationReceivedTemplates(t *testing.T) {
	m := &mocks.Mailer{}
	notifier := newTestNotifier(m)

	notifier.ApplicationReceived(&models.Journalist{
		RegistrationType: models.RegistrationJournalist,
		FirstName:        "Ravi",
		Email:            "ravi@example.test",
	})
	notifier.ApplicationReceived(&models.Journalist{
		RegistrationType: models.RegistrationArtist,
		FirstName:        "Mira",
		Email:            "mira@example.test",
	})

	require.Len(t, m.Sent, 2)
	assert.NotContains(t, m.Sent[0].Body, "selection is limited")
	assert.Contains(t, m.Sent[1].Body, "selection is limited")
}

func TestSignupOTPBody(t *testing.T) {
	m := &mocks.Mailer{}
	notifier := newTestNotifier(m)

	notifier.SignupOTP("new@example.test", "483920")

	require.Len(t, m.Sent, 1)
	assert.Contains(t, m.Sent[0].Body, "483920")
	assert.Contains(t, m.Sent[0].Body, "10 minutes")
}
