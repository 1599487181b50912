package verification

import (
	"errors"
	"fmt"

	"github.com/harsheel55/Auth-System/internals/models"
	"github.com/harsheel55/Auth-System/internals/notify"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 10

type Config struct {
	// AppName is used in outbound message copy.
	AppName string
	// BaseURL is the public URL embedded in verification links.
	BaseURL string
}

// Workflow issues and redeems single-use verification credentials and owns
// the signup/login rules built on top of them. All collaborators are
// injected; the workflow holds no process-wide state.
type Workflow struct {
	DB     *gorm.DB
	Mailer notify.Mailer
	SMS    notify.SMSSender
	Config Config
}

func NewWorkflow(db *gorm.DB, mailer notify.Mailer, sms notify.SMSSender, config Config) *Workflow {
	return &Workflow{
		DB:     db,
		Mailer: mailer,
		SMS:    sms,
		Config: config,
	}
}

type SignupInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Mobile    string
}

func (in SignupInput) validate() error {
	switch {
	case in.FirstName == "":
		return fmt.Errorf("%w: first name is required", ErrValidation)
	case in.LastName == "":
		return fmt.Errorf("%w: last name is required", ErrValidation)
	case in.Email == "":
		return fmt.Errorf("%w: email is required", ErrValidation)
	case in.Mobile == "":
		return fmt.Errorf("%w: mobile number is required", ErrValidation)
	case len(in.Password) < 8:
		return fmt.Errorf("%w: password must be at least 8 characters long", ErrValidation)
	}
	return nil
}

// Signup validates the input, enforces email uniqueness and creates the user
// with both verification flags false and a pending email token already
// persisted. Nothing is written when validation fails. The verification
// email itself is dispatched separately, see SendVerificationEmail.
func (w *Workflow) Signup(input SignupInput) (*models.User, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	var existing models.User
	err := w.DB.Where("email = ?", input.Email).First(&existing).Error
	if err == nil {
		return nil, ErrConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("query user by email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	token, err := GenerateEmailToken()
	if err != nil {
		return nil, fmt.Errorf("generate email token: %w", err)
	}

	user := models.User{
		FirstName:         input.FirstName,
		LastName:          input.LastName,
		Email:             input.Email,
		Mobile:            input.Mobile,
		Password:          string(hash),
		VerificationToken: token,
	}

	if err := w.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return &user, nil
}

// SendVerificationEmail dispatches the link email for the user's pending token.
func (w *Workflow) SendVerificationEmail(user *models.User) error {
	url := fmt.Sprintf("%s/verify-email/%s", w.Config.BaseURL, user.VerificationToken)

	subject := fmt.Sprintf("%s - Verify Your Email Address", w.Config.AppName)
	body := fmt.Sprintf(
		"Hello %s,\n\n"+
			"Thank you for signing up for %s! Please verify your email by clicking on the following link:\n\n"+
			"%s\n\n"+
			"If you did not request this email, please ignore it.\n\n"+
			"Best regards,\nThe %s Team",
		user.FirstName, w.Config.AppName, url, w.Config.AppName)

	return w.Mailer.SendMail(user.Email, subject, body)
}

// ResendEmailToken replaces the user's pending token with a fresh one,
// invalidating the previous value. Verified accounts are rejected.
func (w *Workflow) ResendEmailToken(email string) (*models.User, error) {
	var user models.User
	if err := w.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query user by email: %w", err)
	}

	if user.EmailVerified {
		return nil, ErrConflict
	}

	token, err := GenerateEmailToken()
	if err != nil {
		return nil, fmt.Errorf("generate email token: %w", err)
	}

	user.VerificationToken = token
	if err := w.DB.Model(&user).Update("verification_token", token).Error; err != nil {
		return nil, fmt.Errorf("store email token: %w", err)
	}

	return &user, nil
}

// RedeemEmailToken marks the owning user's email as verified and clears the
// pending token. A token that was already redeemed no longer matches any
// user, so a second redemption fails with ErrNotFound.
func (w *Workflow) RedeemEmailToken(token string) (*models.User, error) {
	// Guard against matching users that have no pending token at all.
	if token == "" {
		return nil, ErrNotFound
	}

	var user models.User
	if err := w.DB.Where("verification_token = ?", token).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query user by token: %w", err)
	}

	user.EmailVerified = true
	user.VerificationToken = ""
	updates := map[string]interface{}{
		"email_verified":     true,
		"verification_token": "",
	}
	if err := w.DB.Model(&user).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("mark email verified: %w", err)
	}

	return &user, nil
}

// IssueMobileCode generates a fresh 6-digit code for the user with the given
// mobile number and persists it before any dispatch happens, replacing
// whatever code was pending before.
func (w *Workflow) IssueMobileCode(mobile string) (*models.User, error) {
	var user models.User
	if err := w.DB.Where("mobile = ?", mobile).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query user by mobile: %w", err)
	}

	code, err := GenerateMobileCode()
	if err != nil {
		return nil, fmt.Errorf("generate mobile code: %w", err)
	}

	user.MobileCode = code
	if err := w.DB.Model(&user).Update("mobile_code", code).Error; err != nil {
		return nil, fmt.Errorf("store mobile code: %w", err)
	}

	return &user, nil
}

// SendMobileCode dispatches the user's pending code as a text message.
func (w *Workflow) SendMobileCode(user *models.User) error {
	body := fmt.Sprintf("Your %s verification code is %s", w.Config.AppName, user.MobileCode)
	return w.SMS.SendSMS(user.Mobile, body)
}

// RedeemMobileCode compares the supplied code against the pending one and
// marks the mobile number verified on a match. A user with no pending code
// always fails the comparison.
func (w *Workflow) RedeemMobileCode(mobile string, code string) (*models.User, error) {
	var user models.User
	if err := w.DB.Where("mobile = ?", mobile).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query user by mobile: %w", err)
	}

	if user.MobileCode == "" || user.MobileCode != code {
		return nil, ErrInvalidCode
	}

	user.MobileVerified = true
	user.MobileCode = ""
	updates := map[string]interface{}{
		"mobile_verified": true,
		"mobile_code":     "",
	}
	if err := w.DB.Model(&user).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("mark mobile verified: %w", err)
	}

	return &user, nil
}

// Login confirms credential validity and verification status. It issues no
// session; callers only learn whether the login would be accepted. Only the
// email flag gates login, mobile verification has no effect here.
func (w *Workflow) Login(email string, password string) (*models.User, error) {
	var user models.User
	if err := w.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("query user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.EmailVerified {
		return nil, ErrNotVerified
	}

	return &user, nil
}

// GoogleProfile is the subset of the provider identity used for federation.
type GoogleProfile struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
}

// FindOrCreateGoogleUser looks up the local record keyed by the provider
// identifier and creates one when absent. Federated accounts are created
// with the email already verified, the provider vouches for it.
func (w *Workflow) FindOrCreateGoogleUser(profile GoogleProfile) (*models.User, error) {
	if profile.ID == "" {
		return nil, fmt.Errorf("%w: missing provider identifier", ErrValidation)
	}

	var user models.User
	err := w.DB.Where("google_id = ?", profile.ID).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("query user by google id: %w", err)
	}

	user = models.User{
		FirstName:     profile.FirstName,
		LastName:      profile.LastName,
		Email:         profile.Email,
		GoogleID:      profile.ID,
		EmailVerified: true,
	}
	if err := w.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// The email is already registered locally; attach the provider
			// identity to that record instead of creating a duplicate.
			return w.linkGoogleID(profile)
		}
		return nil, fmt.Errorf("create federated user: %w", err)
	}

	return &user, nil
}

func (w *Workflow) linkGoogleID(profile GoogleProfile) (*models.User, error) {
	var user models.User
	if err := w.DB.Where("email = ?", profile.Email).First(&user).Error; err != nil {
		return nil, fmt.Errorf("query user by email: %w", err)
	}
	user.GoogleID = profile.ID
	if err := w.DB.Model(&user).Update("google_id", profile.ID).Error; err != nil {
		return nil, fmt.Errorf("link provider identity: %w", err)
	}
	return &user, nil
}
