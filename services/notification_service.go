package services

import (
	"fmt"

	"armust-news-cms/mailer"
	"armust-news-cms/models"

	"github.com/rs/zerolog"
)

// NotificationService turns workflow events into outbound mail. Every
// send is fire-and-forget: failures are logged and swallowed so a state
// change is never blocked or rolled back by the mail transport.
type NotificationService interface {
	AccountStatusChanged(journalist *models.Journalist)
	ApplicationReceived(journalist *models.Journalist)
	AccountUnderVerification(journalist *models.Journalist)
	LoginAlert(journalist *models.Journalist, ip, userAgent string)
	SignupOTP(email, code string)
	PasswordResetLink(journalist *models.Journalist, resetURL string)
	PasswordResetConfirmed(journalist *models.Journalist)
	ArtistInvite(inviter *models.Journalist, firstName, lastName, email string)
}

type notificationService struct {
	mailer    mailer.Mailer
	from      string
	signInURL string
	log       zerolog.Logger
}

func NewNotificationService(m mailer.Mailer, from, signInURL string, log zerolog.Logger) NotificationService {
	return &notificationService{
		mailer:    m,
		from:      from,
		signInURL: signInURL,
		log:       log.With().Str("service", "notification").Logger(),
	}
}

// deliver hands a composed message to the mailer. A missing recipient is
// a silent skip, not an error.
func (s *notificationService) deliver(kind, subject, body, to string) {
	if to == "" {
		return
	}
	if err := s.mailer.Send(subject, body, s.from, []string{to}); err != nil {
		s.log.Error().Err(err).Str("kind", kind).Str("to", to).Msg("mail delivery failed")
		return
	}
	s.log.Info().Str("kind", kind).Str("to", to).Msg("mail dispatched")
}

func (s *notificationService) accountSummary(j *models.Journalist) string {
	return fmt.Sprintf("Account Summary:\n- Email: %s\n- Username: %s\n", j.Email, j.Username)
}

const mailSignature = "Warm regards,\nThe Armust News Team\nContact Us: info@armustnews.com\nWebsite: www.armustnews.com"

// AccountStatusChanged selects the message template by the account's new
// status and registration type. Exactly one message per real transition;
// the caller decides whether a transition happened.
func (s *notificationService) AccountStatusChanged(j *models.Journalist) {
	var subject, body string

	switch j.Status {
	case models.AccountActive:
		if j.RegistrationType == models.RegistrationOrganisation {
			subject = "Your Armust News Account is Now Active"
			body = fmt.Sprintf(
				"Dear %s,\n\nCongratulations!\n\nYour institution has been officially approved on Armust News.\n\n%s\nYou are now ready to start onboarding your artists. Invite them to register through your institution and give them a live, public profile available around the clock.\n\nIf you need any assistance, our team is here to support you every step of the way.\n\n%s",
				j.OrganisationName, s.accountSummary(j), mailSignature)
		} else {
			subject = "Your Armust News Account is Now Active"
			body = fmt.Sprintf(
				"Hello %s %s,\n\nCongratulations!\n\nYour %s account has been officially approved on Armust News.\n\n%s\nNext steps:\n- Sign in to your account: %s\n- Update your profile\n\nIf you need any assistance, our team is here to support you every step of the way.\n\n%s",
				j.FirstName, j.LastName, j.RegistrationType, s.accountSummary(j), s.signInURL, mailSignature)
		}
	case models.AccountInactive:
		subject = "Your Armust News Account Has Been Deactivated"
		body = fmt.Sprintf(
			"Hello %s %s,\n\nWe would like to inform you that your %s account has been temporarily deactivated as part of a routine review in line with our policies. Our team is currently reviewing your account to ensure everything is in order.\n\n%s\nThank you for your patience. We will get back to you shortly with an update.\n\n%s",
			j.FirstName, j.LastName, j.RegistrationType, s.accountSummary(j), mailSignature)
	case models.AccountApproved:
		name := j.FirstName
		if name == "" {
			name = j.Username
		}
		subject = "Your Journalist Account Has Been Approved"
		body = fmt.Sprintf(
			"Hello %s,\n\nCongratulations!\n\nYour %s account has been selected for Armust News. Our team will be reaching out shortly with further information and next steps for activating your account.\n\n%s\nIf you have any questions in the meantime, feel free to contact us.\n\n%s",
			name, j.RegistrationType, s.accountSummary(j), mailSignature)
	default:
		return
	}

	s.deliver("account_status", subject, body, j.Email)
}

// ApplicationReceived is the fixed sign-up confirmation, sent once at
// creation regardless of status. Journalists get the plain version;
// artists and organisations get the selection-programme notes.
func (s *notificationService) ApplicationReceived(j *models.Journalist) {
	subject := "Armust News - Your Application Has Been Successfully Received"

	intro := fmt.Sprintf(
		"Dear %s %s,\n\nThank you for submitting your application to Armust News. We have received your details and your application is currently under verification by our review team.\n\n%s",
		j.FirstName, j.LastName, s.accountSummary(j))

	var body string
	if j.RegistrationType == models.RegistrationJournalist {
		body = intro + "\n" + mailSignature
	} else {
		body = intro +
			"\nImportant for individual artist applicants: selection is limited and reviewed first-come-first-reviewed, weighing originality, years of professional activity and portfolio presentation. Shortlisted profiles receive a formal approval email with next steps.\n\nInstitutions, galleries, curators and agencies may proceed with institutional onboarding as guided by our team.\n\n" +
			mailSignature
	}

	s.deliver("application_received", subject, body, j.Email)
}

func (s *notificationService) AccountUnderVerification(j *models.Journalist) {
	subject := "Account Under Verification - Armust News"
	body := fmt.Sprintf(
		"Dear %s %s,\n\nYour account is currently under verification. As a result, you are unable to access certain features of the platform until the verification process is complete.\n\nWe appreciate your patience and understanding during this process.\n\n%s",
		j.FirstName, j.LastName, mailSignature)

	s.deliver("under_verification", subject, body, j.Email)
}

func (s *notificationService) LoginAlert(j *models.Journalist, ip, userAgent string) {
	subject := "Security Alert: Successful Login Notification"
	body := fmt.Sprintf(
		"Dear %s %s,\n\nA successful login to your account was made on %s.\n\nDetails of the login attempt:\n- Email: %s\n- Username: %s | IP: %s | User Agent: %s\n\nIf you did not initiate this action, we strongly advise you to change your password immediately.\n\n%s",
		j.FirstName, j.LastName, j.Email, j.Email, j.Username, ip, userAgent, mailSignature)

	s.deliver("login_alert", subject, body, j.Email)
}

func (s *notificationService) SignupOTP(email, code string) {
	subject := "Your Secure OTP for Armust News (Signup)"
	body := fmt.Sprintf(
		"Hello,\n\nYour OTP for signup is: %s.\n\nPlease use this code within 10 minutes. If you didn't request this, please ignore this email.\n\n%s",
		code, mailSignature)

	s.deliver("signup_otp", subject, body, email)
}

func (s *notificationService) PasswordResetLink(j *models.Journalist, resetURL string) {
	subject := "Armust News: Password Reset Request"
	body := fmt.Sprintf(
		"Dear %s %s,\n\nWe have received a request to reset the password for your account.\n\nTo reset your password, please follow this link:\n%s\n\nIf you did not initiate this request, please disregard this email; your account remains secure.\n\n%s",
		j.FirstName, j.LastName, resetURL, mailSignature)

	s.deliver("password_reset_link", subject, body, j.Email)
}

func (s *notificationService) PasswordResetConfirmed(j *models.Journalist) {
	subject := "Armust News: Password Reset Successfully"
	body := fmt.Sprintf(
		"Dear %s %s,\n\nYour password has been successfully reset.\n\nIf you did not perform this action, please contact support immediately.\n\n%s",
		j.FirstName, j.LastName, mailSignature)

	s.deliver("password_reset_done", subject, body, j.Email)
}

func (s *notificationService) ArtistInvite(inviter *models.Journalist, firstName, lastName, email string) {
	subject := "Please Complete Your Registration"
	body := fmt.Sprintf(
		"Dear %s %s,\n\nYou have been invited to register on Armust News by:\nOrganisation: %s\nEmail: %s\nPhone: %s\n\nComplete your registration at %s\n\nIf you are already registered, you may ignore this email.\n\n%s",
		firstName, lastName, inviter.OrganisationName, inviter.Email, inviter.PhoneNumber, s.signInURL, mailSignature)

	s.deliver("artist_invite", subject, body, email)
}
