package services

import (
	"regexp"
	"testing"

	"armust-news-cms/mocks"
	"armust-news-cms/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newAccountFixture(journalistRepo *mocks.JournalistRepository, m *mocks.Mailer) AccountService {
	notifier := NewNotificationService(m, "no-reply@example.test", testSignInURL, zerolog.Nop())
	return NewAccountService(
		journalistRepo,
		&mocks.NewsRepository{},
		&mocks.VideoRepository{},
		notifier,
		"https://example.test",
		zerolog.Nop(),
	)
}

func validSignUp() models.SignUpRequest {
	return models.SignUpRequest{
		FirstName:        "Danaryya",
		LastName:         "Iyer",
		RegistrationType: models.RegistrationJournalist,
		Email:            "dana@example.test",
		Password:         "secret123",
		ConfirmPassword:  "secret123",
		TermsAccepted:    true,
	}
}

func TestSignUpAssignsUsernameAndStatus(t *testing.T) {
	var created *models.Journalist
	repo := &mocks.JournalistRepository{
		EmailExistsFn:    func(string) (bool, error) { return false, nil },
		UsernameExistsFn: func(string) (bool, error) { return false, nil },
		CreateFn: func(j *models.Journalist) error {
			j.ID = 7
			created = j
			return nil
		},
	}
	m := &mocks.Mailer{}
	svc := newAccountFixture(repo, m)

	journalist, err := svc.SignUp(validSignUp())
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Regexp(t, regexp.MustCompile(`^DANA\d{4}$`), journalist.Username)
	assert.Equal(t, models.AccountInactive, journalist.Status)
	assert.NotEqual(t, "secret123", journalist.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(journalist.Password), []byte("secret123")))

	// Exactly one confirmation mail, regardless of status.
	require.Len(t, m.Sent, 1)
	assert.Contains(t, m.Sent[0].Subject, "Application Has Been Successfully Received")
}

func TestSignUpValidation(t *testing.T) {
	repo := &mocks.JournalistRepository{}
	svc := newAccountFixture(repo, &mocks.Mailer{})

	short := validSignUp()
	short.Password = "abc"
	short.ConfirmPassword = "abc"
	_, err := svc.SignUp(short)
	assert.IsType(t, models.ErrorValidation{}, err)

	mismatch := validSignUp()
	mismatch.ConfirmPassword = "different"
	_, err = svc.SignUp(mismatch)
	assert.IsType(t, models.ErrorValidation{}, err)

	noTerms := validSignUp()
	noTerms.TermsAccepted = false
	_, err = svc.SignUp(noTerms)
	assert.IsType(t, models.ErrorValidation{}, err)
}

func TestSignUpRejectsExistingEmail(t *testing.T) {
	repo := &mocks.JournalistRepository{
		EmailExistsFn: func(string) (bool, error) { return true, nil },
	}
	m := &mocks.Mailer{}
	svc := newAccountFixture(repo, m)

	_, err := svc.SignUp(validSignUp())
	assert.IsType(t, models.ErrorConflict{}, err)
	assert.Empty(t, m.Sent)
}

func TestSignUpRetriesUsernameOnInsertConflict(t *testing.T) {
	var usernames []string
	attempts := 0
	repo := &mocks.JournalistRepository{
		EmailExistsFn:    func(string) (bool, error) { return false, nil },
		UsernameExistsFn: func(string) (bool, error) { return false, nil },
		CreateFn: func(j *models.Journalist) error {
			attempts++
			usernames = append(usernames, j.Username)
			if attempts == 1 {
				return models.ErrorConflict{Message: "username already registered"}
			}
			return nil
		},
	}
	svc := newAccountFixture(repo, &mocks.Mailer{})

	journalist, err := svc.SignUp(validSignUp())
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.Regexp(t, `^DANA\d{4}$`, journalist.Username)
	// The retried candidate is a fresh generation, not the rejected one
	// carried over.
	require.Len(t, usernames, 2)
	assert.NotEmpty(t, usernames[1])
}

func TestSignInInactiveAccountDenied(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	repo := &mocks.JournalistRepository{
		GetByEmailFn: func(string) (*models.Journalist, error) {
			return &models.Journalist{
				FirstName: "Dana",
				Email:     "dana@example.test",
				Password:  string(hashed),
				Status:    models.AccountInactive,
			}, nil
		},
	}
	m := &mocks.Mailer{}
	svc := newAccountFixture(repo, m)

	_, err := svc.SignIn(models.SignInRequest{Login: "dana@example.test", Password: "secret123"}, "203.0.113.9", "curl/8")
	assert.IsType(t, models.ErrorUnauthorized{}, err)

	// Denial still tells the account holder why.
	require.Len(t, m.Sent, 1)
	assert.Contains(t, m.Sent[0].Subject, "Under Verification")
}

func TestSignInActiveAccountIssuesTokenAndAlert(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	repo := &mocks.JournalistRepository{
		GetByUsernameFn: func(username string) (*models.Journalist, error) {
			return &models.Journalist{
				ID:        3,
				Username:  "DANA4821",
				FirstName: "Dana",
				Email:     "dana@example.test",
				Password:  string(hashed),
				Status:    models.AccountActive,
			}, nil
		},
	}
	m := &mocks.Mailer{}
	svc := newAccountFixture(repo, m)

	resp, err := svc.SignIn(models.SignInRequest{Login: "DANA4821", Password: "secret123"}, "203.0.113.9", "curl/8")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	require.Len(t, m.Sent, 1)
	assert.Contains(t, m.Sent[0].Subject, "Successful Login")
	assert.Contains(t, m.Sent[0].Body, "203.0.113.9")
}

func TestSignInWrongPassword(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	repo := &mocks.JournalistRepository{
		GetByEmailFn: func(string) (*models.Journalist, error) {
			return &models.Journalist{Email: "dana@example.test", Password: string(hashed)}, nil
		},
	}
	m := &mocks.Mailer{}
	svc := newAccountFixture(repo, m)

	_, err := svc.SignIn(models.SignInRequest{Login: "dana@example.test", Password: "wrong"}, "", "")
	assert.IsType(t, models.ErrorUnauthorized{}, err)
	assert.Empty(t, m.Sent)
}

func TestSignInUnknownAccount(t *testing.T) {
	repo := &mocks.JournalistRepository{
		GetByEmailFn: func(string) (*models.Journalist, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := newAccountFixture(repo, &mocks.Mailer{})

	_, err := svc.SignIn(models.SignInRequest{Login: "ghost@example.test", Password: "x"}, "", "")
	assert.IsType(t, models.ErrorUnauthorized{}, err)
}

func TestUpdateStatusNotifiesExactlyOncePerTransition(t *testing.T) {
	stored := &models.Journalist{
		ID:               5,
		FirstName:        "Dana",
		Email:            "dana@example.test",
		RegistrationType: models.RegistrationJournalist,
		Status:           models.AccountInactive,
	}
	repo := &mocks.JournalistRepository{
		GetByIDFn: func(uint) (*models.Journalist, error) {
			snapshot := *stored
			return &snapshot, nil
		},
		UpdateFn: func(j *models.Journalist) error {
			stored = j
			return nil
		},
	}
	m := &mocks.Mailer{}
	svc := newAccountFixture(repo, m)

	// inactive -> active: one mail.
	_, err := svc.UpdateStatus(5, models.AccountActive)
	require.NoError(t, err)
	assert.Len(t, m.Sent, 1)

	// active -> active: save succeeds, no mail.
	_, err = svc.UpdateStatus(5, models.AccountActive)
	require.NoError(t, err)
	assert.Len(t, m.Sent, 1)

	// active -> inactive: one more.
	_, err = svc.UpdateStatus(5, models.AccountInactive)
	require.NoError(t, err)
	assert.Len(t, m.Sent, 2)
}

func TestUpdateStatusUnknownAccount(t *testing.T) {
	repo := &mocks.JournalistRepository{
		GetByIDFn: func(uint) (*models.Journalist, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := newAccountFixture(repo, &mocks.Mailer{})

	_, err := svc.UpdateStatus(99, models.AccountActive)
	assert.IsType(t, models.ErrorNotFound{}, err)
}

func TestSignupOTPRoundTrip(t *testing.T) {
	repo := &mocks.JournalistRepository{}
	m := &mocks.Mailer{}
	svc := newAccountFixture(repo, m)

	require.NoError(t, svc.SendSignupOTP("new@example.test"))
	require.Len(t, m.Sent, 1)

	code := regexp.MustCompile(`\d{6}`).FindString(m.Sent[0].Body)
	require.NotEmpty(t, code)

	// Wrong code rejected, right code accepted once.
	assert.Error(t, svc.VerifySignupOTP("new@example.test", "000000"))
	assert.NoError(t, svc.VerifySignupOTP("new@example.test", code))
	assert.Error(t, svc.VerifySignupOTP("new@example.test", code))
}

func TestSignupOTPResendReusesCode(t *testing.T) {
	repo := &mocks.JournalistRepository{}
	m := &mocks.Mailer{}
	svc := newAccountFixture(repo, m)

	require.NoError(t, svc.SendSignupOTP("new@example.test"))
	require.NoError(t, svc.SendSignupOTP("new@example.test"))
	require.Len(t, m.Sent, 2)

	first := regexp.MustCompile(`\d{6}`).FindString(m.Sent[0].Body)
	second := regexp.MustCompile(`\d{6}`).FindString(m.Sent[1].Body)
	assert.Equal(t, first, second)
}

func TestInviteArtistRejectsSelfAndExisting(t *testing.T) {
	repo := &mocks.JournalistRepository{
		GetByIDFn: func(uint) (*models.Journalist, error) {
			return &models.Journalist{ID: 2, Email: "org@example.test", OrganisationName: "Harbour Gallery"}, nil
		},
		EmailExistsFn: func(email string) (bool, error) {
			return email == "taken@example.test", nil
		},
	}
	m := &mocks.Mailer{}
	svc := newAccountFixture(repo, m)

	err := svc.InviteArtist(2, models.InviteArtistRequest{FirstName: "A", LastName: "B", Email: "Org@Example.test"})
	assert.IsType(t, models.ErrorValidation{}, err)

	err = svc.InviteArtist(2, models.InviteArtistRequest{FirstName: "A", LastName: "B", Email: "taken@example.test"})
	assert.IsType(t, models.ErrorConflict{}, err)

	err = svc.InviteArtist(2, models.InviteArtistRequest{FirstName: "A", LastName: "B", Email: "fresh@example.test"})
	require.NoError(t, err)
	require.Len(t, m.Sent, 1)
	assert.Contains(t, m.Sent[0].Body, "Harbour Gallery")
}

func TestForgotAndResetPassword(t *testing.T) {
	stored := &models.Journalist{ID: 11, FirstName: "Dana", Email: "dana@example.test", Password: "old-hash"}
	repo := &mocks.JournalistRepository{
		GetByEmailFn: func(string) (*models.Journalist, error) { return stored, nil },
		GetByIDFn:    func(uint) (*models.Journalist, error) { return stored, nil },
		UpdateFn: func(j *models.Journalist) error {
			stored = j
			return nil
		},
	}
	m := &mocks.Mailer{}
	svc := newAccountFixture(repo, m)

	require.NoError(t, svc.ForgotPassword("dana@example.test"))
	require.Len(t, m.Sent, 1)

	token := regexp.MustCompile(`/auth/reset-password/(\S+)`).FindStringSubmatch(m.Sent[0].Body)
	require.Len(t, token, 2)

	err := svc.ResetPassword(models.ResetPasswordRequest{
		Token:           token[1],
		Password:        "newsecret",
		ConfirmPassword: "newsecret",
	})
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("newsecret")))

	// Confirmation mail after the link mail.
	require.Len(t, m.Sent, 2)
	assert.Contains(t, m.Sent[1].Subject, "Password Reset Successfully")
}

func TestResetPasswordRejectsGarbageToken(t *testing.T) {
	svc := newAccountFixture(&mocks.JournalistRepository{}, &mocks.Mailer{})

	err := svc.ResetPassword(models.ResetPasswordRequest{
		Token:           "not-a-token",
		Password:        "newsecret",
		ConfirmPassword: "newsecret",
	})
	assert.IsType(t, models.ErrorUnauthorized{}, err)
}
