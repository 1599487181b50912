package controllers

import (
	"log"
	"net/http"

	"github.com/harsheel55/Auth-System/internals/verification"

	"github.com/gin-gonic/gin"
)

type VerificationController struct {
	Workflow *verification.Workflow
}

func NewVerificationController(workflow *verification.Workflow) *VerificationController {
	return &VerificationController{
		Workflow: workflow,
	}
}

// VerifyEmail redeems the token embedded in the emailed link.
func (v *VerificationController) VerifyEmail(c *gin.Context) {
	token := c.Param("token")

	if _, err := v.Workflow.RedeemEmailToken(token); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email verified successfully"})
}

// ResendEmail issues a fresh token for an unverified account and dispatches
// the verification email again.
func (v *VerificationController) ResendEmail(c *gin.Context) {
	var body struct {
		Email string `json:"email"`
	}

	if c.ShouldBindJSON(&body) != nil || body.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email address"})
		return
	}

	user, err := v.Workflow.ResendEmailToken(body.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	go func() {
		if err := v.Workflow.SendVerificationEmail(user); err != nil {
			log.Printf("resend: verification email to %s failed: %v", user.Email, err)
		}
	}()

	c.JSON(http.StatusOK, gin.H{"message": "A new verification link has been sent to your email"})
}

// RequestMobileCode issues a fresh code and dispatches it by SMS. The
// dispatch is synchronous so a gateway failure is reported to the caller;
// the persisted code stays valid either way.
func (v *VerificationController) RequestMobileCode(c *gin.Context) {
	var body struct {
		Mobile string `json:"mobile"`
	}

	if c.ShouldBindJSON(&body) != nil || body.Mobile == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid mobile number"})
		return
	}

	user, err := v.Workflow.IssueMobileCode(body.Mobile)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := v.Workflow.SendMobileCode(user); err != nil {
		log.Printf("verify-mobile: sms to %s failed: %v", user.Mobile, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error sending OTP"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP sent successfully"})
}

// VerifyMobile redeems a pending mobile code.
func (v *VerificationController) VerifyMobile(c *gin.Context) {
	var body struct {
		Mobile string `json:"mobile"`
		Code   string `json:"code"`
	}

	if c.ShouldBindJSON(&body) != nil || body.Mobile == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if _, err := v.Workflow.RedeemMobileCode(body.Mobile, body.Code); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Mobile verified successfully"})
}
