package controllers

import (
	"log"
	"net/http"

	"github.com/harsheel55/Auth-System/internals/verification"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Workflow *verification.Workflow
}

func NewAuthController(workflow *verification.Workflow) *AuthController {
	return &AuthController{
		Workflow: workflow,
	}
}

func (a *AuthController) Signup(c *gin.Context) {
	var body struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		Password  string `json:"password"`
		Mobile    string `json:"mobile"`
	}

	if c.ShouldBindJSON(&body) != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read body"})
		return
	}

	user, err := a.Workflow.Signup(verification.SignupInput{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     body.Email,
		Password:  body.Password,
		Mobile:    body.Mobile,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	// Send the email in a background goroutine so the response isn't slow.
	// A failed dispatch does not roll the user back; the resend endpoint is
	// the remediation path.
	go func() {
		if err := a.Workflow.SendVerificationEmail(user); err != nil {
			log.Printf("signup: verification email to %s failed: %v", user.Email, err)
		}
	}()

	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully, please check your email to verify your account"})
}

func (a *AuthController) Login(c *gin.Context) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if c.ShouldBindJSON(&body) != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read body"})
		return
	}

	if _, err := a.Workflow.Login(body.Email, body.Password); err != nil {
		respondError(c, err)
		return
	}

	// No session token or cookie is issued; a success only confirms the
	// credentials are valid and the email is verified.
	c.JSON(http.StatusOK, gin.H{"message": "Login successful"})
}
