package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	FirstName string `gorm:"column:first_name" json:"firstName"`
	LastName  string `gorm:"column:last_name" json:"lastName"`
	Email     string `gorm:"column:email;uniqueIndex" json:"email"`
	Mobile    string `gorm:"column:mobile;index" json:"mobile"`
	Password  string `gorm:"column:password" json:"-"`

	EmailVerified  bool `gorm:"column:email_verified;default:false" json:"emailVerified"`
	MobileVerified bool `gorm:"column:mobile_verified;default:false" json:"mobileVerified"`

	// Pending verification credentials. An empty string means none is outstanding;
	// issuing a new one overwrites whatever was there before.
	VerificationToken string `gorm:"column:verification_token;index" json:"-"`
	MobileCode        string `gorm:"column:mobile_code" json:"-"`

	// OAuth2 / Social Login
	GoogleID string `gorm:"column:google_id;index" json:"-"`
}
