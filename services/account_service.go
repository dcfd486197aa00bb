package services

import (
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"armust-news-cms/config"
	"armust-news-cms/models"
	"armust-news-cms/repositories"

	"github.com/golang-jwt/jwt/v4"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// createAttempts bounds the insert retry when the store rejects a
// generated username that raced with a concurrent sign-up.
const createAttempts = 5

const otpTTL = 10 * time.Minute

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type AccountService interface {
	SignUp(req models.SignUpRequest) (*models.Journalist, error)
	SignIn(req models.SignInRequest, ip, userAgent string) (*models.JournalistAuthResponse, error)
	EmailAvailable(email string) error
	SendSignupOTP(email string) error
	VerifySignupOTP(email, code string) error
	ForgotPassword(email string) error
	ResetPassword(req models.ResetPasswordRequest) error
	GetByID(id uint) (*models.Journalist, error)
	UpdateStatus(id uint, status models.AccountStatus) (*models.Journalist, error)
	InviteArtist(inviterID uint, req models.InviteArtistRequest) error
	Dashboard(journalistID uint) (*models.DashboardStats, error)
}

type accountService struct {
	journalistRepo repositories.JournalistRepository
	newsRepo       repositories.NewsRepository
	videoRepo      repositories.VideoRepository
	notifier       NotificationService
	otp            *cache.Cache
	resetBaseURL   string
	log            zerolog.Logger
}

func NewAccountService(
	journalistRepo repositories.JournalistRepository,
	newsRepo repositories.NewsRepository,
	videoRepo repositories.VideoRepository,
	notifier NotificationService,
	resetBaseURL string,
	log zerolog.Logger,
) AccountService {
	return &accountService{
		journalistRepo: journalistRepo,
		newsRepo:       newsRepo,
		videoRepo:      videoRepo,
		notifier:       notifier,
		otp:            cache.New(otpTTL, otpTTL),
		resetBaseURL:   resetBaseURL,
		log:            log.With().Str("service", "account").Logger(),
	}
}

func (s *accountService) SignUp(req models.SignUpRequest) (*models.Journalist, error) {
	if len(req.Password) < 6 {
		return nil, models.ErrorValidation{Message: "password must be at least 6 characters long"}
	}
	if req.Password != req.ConfirmPassword {
		return nil, models.ErrorValidation{Message: "passwords do not match"}
	}
	if !req.TermsAccepted {
		return nil, models.ErrorValidation{Message: "please accept the terms and conditions"}
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	exists, err := s.journalistRepo.EmailExists(email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.ErrorConflict{Message: "email already exists, use a different email"}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	journalist := &models.Journalist{
		RegistrationType:       req.RegistrationType,
		OrganisationName:       req.OrganisationName,
		ParentOrganisations:    req.ParentOrganisations,
		FirstName:              strings.TrimSpace(req.FirstName),
		LastName:               strings.TrimSpace(req.LastName),
		Email:                  email,
		PhoneNumber:            req.PhoneNumber,
		AlternativePhoneNumber: req.AlternativePhone,
		AddressLine1:           req.AddressLine1,
		AddressLine2:           req.AddressLine2,
		Nationality:            req.Nationality,
		State:                  req.State,
		City:                   req.City,
		Zipcode:                req.Zipcode,
		SocialMediaLinks:       req.SocialMediaLinks,
		Biography:              req.Biography,
		TermsAccepted:          req.TermsAccepted,
		Password:               string(hashed),
		Status:                 models.AccountInactive,
	}

	if err := s.createWithUsername(journalist); err != nil {
		return nil, err
	}

	// Fixed confirmation, independent of status; sent exactly once.
	s.notifier.ApplicationReceived(journalist)

	return journalist, nil
}

// createWithUsername assigns a username exactly once, at first
// persistence. The existence check is advisory; the store's unique
// constraint is the final authority, so a conflicting insert retries
// with a fresh digit suffix.
func (s *accountService) createWithUsername(journalist *models.Journalist) error {
	if journalist.Username != "" {
		return s.journalistRepo.Create(journalist)
	}

	prefix := usernamePrefix(journalist.FirstName)
	var lastErr error
	for attempt := 0; attempt < createAttempts; attempt++ {
		candidate := prefix + randomDigits(4)
		for {
			taken, err := s.journalistRepo.UsernameExists(candidate)
			if err != nil {
				return err
			}
			if !taken {
				break
			}
			candidate = prefix + randomDigits(4)
		}

		journalist.Username = strings.ToUpper(candidate)
		err := s.journalistRepo.Create(journalist)
		if err == nil {
			return nil
		}
		var conflictErr models.ErrorConflict
		if !errors.As(err, &conflictErr) {
			return err
		}
		lastErr = err
		journalist.Username = ""
	}
	return lastErr
}

func (s *accountService) SignIn(req models.SignInRequest, ip, userAgent string) (*models.JournalistAuthResponse, error) {
	login := strings.TrimSpace(req.Login)

	var journalist *models.Journalist
	var err error
	if strings.Contains(login, "@") {
		journalist, err = s.journalistRepo.GetByEmail(login)
	} else {
		journalist, err = s.journalistRepo.GetByUsername(login)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorUnauthorized{Message: "invalid login credentials"}
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(journalist.Password), []byte(req.Password)); err != nil {
		return nil, models.ErrorUnauthorized{Message: "invalid password"}
	}

	if journalist.Status == models.AccountInactive {
		s.notifier.AccountUnderVerification(journalist)
		return nil, models.ErrorUnauthorized{Message: "your account is under verification, please check your email for more details"}
	}

	token, err := signJournalistToken(journalist)
	if err != nil {
		return nil, err
	}

	s.notifier.LoginAlert(journalist, ip, userAgent)

	return &models.JournalistAuthResponse{Token: token, Journalist: *journalist}, nil
}

func (s *accountService) EmailAvailable(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return models.ErrorValidation{Message: "invalid email format"}
	}
	exists, err := s.journalistRepo.EmailExists(email)
	if err != nil {
		return err
	}
	if exists {
		return models.ErrorConflict{Message: "email already exists, use a different email"}
	}
	return nil
}

// SendSignupOTP issues a six-digit code with a ten-minute lifetime. A
// resend inside the window re-delivers the unexpired code.
func (s *accountService) SendSignupOTP(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	key := "otp_signup_" + email

	code, found := s.otp.Get(key)
	if !found {
		code = fmt.Sprintf("%06d", rand.Intn(900000)+100000)
		s.otp.Set(key, code, otpTTL)
	}

	s.notifier.SignupOTP(email, code.(string))
	return nil
}

func (s *accountService) VerifySignupOTP(email, code string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	key := "otp_signup_" + email

	stored, found := s.otp.Get(key)
	if !found || stored.(string) != strings.TrimSpace(code) {
		return models.ErrorValidation{Message: "invalid or expired OTP"}
	}
	s.otp.Delete(key)
	return nil
}

func (s *accountService) ForgotPassword(email string) error {
	journalist, err := s.journalistRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: "invalid email address"}
		}
		return err
	}

	token, err := signResetToken(journalist.ID)
	if err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/auth/reset-password/%s", s.resetBaseURL, token)
	s.notifier.PasswordResetLink(journalist, resetURL)
	return nil
}

func (s *accountService) ResetPassword(req models.ResetPasswordRequest) error {
	journalistID, err := parseResetToken(req.Token)
	if err != nil {
		return models.ErrorUnauthorized{Message: "the reset link is invalid or has expired"}
	}

	if len(req.Password) < 6 {
		return models.ErrorValidation{Message: "password must be at least 6 characters long"}
	}
	if req.Password != req.ConfirmPassword {
		return models.ErrorValidation{Message: "passwords do not match"}
	}

	journalist, err := s.journalistRepo.GetByID(journalistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: "account not found"}
		}
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	journalist.Password = string(hashed)
	if err := s.journalistRepo.Update(journalist); err != nil {
		return err
	}

	s.notifier.PasswordResetConfirmed(journalist)
	return nil
}

func (s *accountService) GetByID(id uint) (*models.Journalist, error) {
	journalist, err := s.journalistRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "account not found"}
		}
		return nil, err
	}
	return journalist, nil
}

// UpdateStatus is the administrative transition path. The previous
// snapshot is fetched before the write and the notification decision is
// made against it: one dispatch per real transition, none for
// same-value writes, and a failed dispatch never reverts the save.
func (s *accountService) UpdateStatus(id uint, status models.AccountStatus) (*models.Journalist, error) {
	journalist, err := s.journalistRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "account not found"}
		}
		return nil, err
	}

	oldStatus := journalist.Status
	journalist.Status = status
	if err := s.journalistRepo.Update(journalist); err != nil {
		return nil, err
	}

	if StatusChanged(string(oldStatus), string(status), false) {
		s.log.Info().
			Uint("journalist_id", journalist.ID).
			Str("from", string(oldStatus)).
			Str("to", string(status)).
			Msg("account status transition")
		s.notifier.AccountStatusChanged(journalist)
	}

	return journalist, nil
}

func (s *accountService) InviteArtist(inviterID uint, req models.InviteArtistRequest) error {
	inviter, err := s.journalistRepo.GetByID(inviterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorUnauthorized{Message: "invalid journalist account"}
		}
		return err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == strings.ToLower(inviter.Email) {
		return models.ErrorValidation{Message: "you cannot invite your own email"}
	}

	exists, err := s.journalistRepo.EmailExists(email)
	if err != nil {
		return err
	}
	if exists {
		return models.ErrorConflict{Message: "artist already exists"}
	}

	s.notifier.ArtistInvite(inviter, req.FirstName, req.LastName, email)
	return nil
}

func (s *accountService) Dashboard(journalistID uint) (*models.DashboardStats, error) {
	journalist, err := s.journalistRepo.GetByID(journalistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "account not found"}
		}
		return nil, err
	}

	stats := &models.DashboardStats{}

	if stats.ActivePosts, err = s.newsRepo.CountByStatus(journalistID, models.ContentActive); err != nil {
		return nil, err
	}
	if stats.InactivePosts, err = s.newsRepo.CountByStatus(journalistID, models.ContentInactive); err != nil {
		return nil, err
	}
	if stats.RejectedPosts, err = s.newsRepo.CountByStatus(journalistID, models.ContentRejected); err != nil {
		return nil, err
	}
	if stats.ActiveArticles, err = s.newsRepo.CountActiveArticles(journalistID); err != nil {
		return nil, err
	}

	type videoCount struct {
		dest      *int64
		videoType models.VideoType
		status    models.ContentStatus
	}
	counts := []videoCount{
		{&stats.ActiveVideos, models.VideoTypeVideo, models.ContentActive},
		{&stats.InactiveVideos, models.VideoTypeVideo, models.ContentInactive},
		{&stats.RejectedVideos, models.VideoTypeVideo, models.ContentRejected},
		{&stats.ActiveReels, models.VideoTypeReel, models.ContentActive},
		{&stats.InactiveReels, models.VideoTypeReel, models.ContentInactive},
		{&stats.RejectedReels, models.VideoTypeReel, models.ContentRejected},
	}
	for _, c := range counts {
		if *c.dest, err = s.videoRepo.CountByTypeAndStatus(journalistID, c.videoType, c.status); err != nil {
			return nil, err
		}
	}
	if stats.TotalVideos, err = s.videoRepo.CountAll(journalistID); err != nil {
		return nil, err
	}

	if stats.UpcomingEvents, err = s.newsRepo.ListEventsBefore(time.Now(), 10); err != nil {
		return nil, err
	}

	if journalist.RegistrationType == models.RegistrationOrganisation {
		if stats.ChildProfiles, err = s.journalistRepo.ListChildren(journalist.Username, 10); err != nil {
			return nil, err
		}
	}

	return stats, nil
}

// Token helpers shared by the contributor auth flows.

func signJournalistToken(j *models.Journalist) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"journalist_id":     j.ID,
		"username":          j.Username,
		"registration_type": string(j.RegistrationType),
		"kind":              "journalist",
		"exp":               now.Add(config.JWTExpiration).Unix(),
		"iat":               now.Unix(),
		"nbf":               now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret)
}

func signResetToken(journalistID uint) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"journalist_id": journalistID,
		"purpose":       "password_reset",
		"exp":           now.Add(config.ResetTokenExpiration).Unix(),
		"iat":           now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret)
}

func parseResetToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return config.JWTSecret, nil
	})
	if err != nil || !token.Valid {
		return 0, fmt.Errorf("invalid reset token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["purpose"] != "password_reset" {
		return 0, fmt.Errorf("invalid reset token")
	}
	id, ok := claims["journalist_id"].(float64)
	if !ok {
		return 0, fmt.Errorf("invalid reset token")
	}
	return uint(id), nil
}
