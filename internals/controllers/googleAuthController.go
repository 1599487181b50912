package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/harsheel55/Auth-System/internals/config"
	"github.com/harsheel55/Auth-System/internals/verification"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	oauthStateCookie = "OAuth-State"
	userinfoURL      = "https://www.googleapis.com/oauth2/v2/userinfo"
)

// GoogleAuthController handles only Google-specific OAuth logic
type GoogleAuthController struct {
	Workflow     *verification.Workflow
	Config       *oauth2.Config
	CookieConfig *config.CookieConfig
}

// NewGoogleAuthController initializes the oauth2 config once at startup
func NewGoogleAuthController(workflow *verification.Workflow, cookieConfig *config.CookieConfig) *GoogleAuthController {
	return &GoogleAuthController{
		Workflow: workflow,
		Config: &oauth2.Config{
			ClientID:     config.GetEnv("GOOGLE_CLIENT_ID"),
			ClientSecret: config.GetEnv("GOOGLE_CLIENT_SECRET"),
			RedirectURL:  config.GetEnv("GOOGLE_REDIRECT_URL"),
			Endpoint:     google.Endpoint,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
		},
		CookieConfig: cookieConfig,
	}
}

// Login redirects the user to Google's consent page. The state value is
// stored in a short-lived cookie and checked again in the callback.
func (g *GoogleAuthController) Login(c *gin.Context) {
	state := uuid.New().String()
	c.SetCookie(oauthStateCookie, state, 600, "/auth/google", g.CookieConfig.Domain, g.CookieConfig.IsSecure, g.CookieConfig.HttpOnly)

	c.Redirect(http.StatusTemporaryRedirect, g.Config.AuthCodeURL(state))
}

// Callback handles the redirect back from Google
func (g *GoogleAuthController) Callback(c *gin.Context) {
	state, err := c.Cookie(oauthStateCookie)
	if err != nil || state == "" || c.Query("state") != state {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid OAuth state"})
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/auth/google", g.CookieConfig.Domain, g.CookieConfig.IsSecure, g.CookieConfig.HttpOnly)

	token, err := g.Config.Exchange(context.Background(), c.Query("code"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Failed to exchange token"})
		return
	}

	// Fetch the identity profile with the authorized client
	response, err := g.Config.Client(context.Background(), token).Get(userinfoURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user info"})
		return
	}
	defer response.Body.Close()

	var googleUser struct {
		ID         string `json:"id"`
		Email      string `json:"email"`
		GivenName  string `json:"given_name"`
		FamilyName string `json:"family_name"`
	}
	if err := json.NewDecoder(response.Body).Decode(&googleUser); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user info"})
		return
	}

	user, err := g.Workflow.FindOrCreateGoogleUser(verification.GoogleProfile{
		ID:        googleUser.ID,
		Email:     googleUser.Email,
		FirstName: googleUser.GivenName,
		LastName:  googleUser.FamilyName,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged in via Google successfully", "email": user.Email})
}
