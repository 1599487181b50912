package main

import (
	"log"
	"os"

	"github.com/harsheel55/Auth-System/internals/config"
	"github.com/harsheel55/Auth-System/internals/initializers"
	"github.com/harsheel55/Auth-System/internals/notify"
	"github.com/harsheel55/Auth-System/internals/routes"
	"github.com/harsheel55/Auth-System/internals/verification"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; in container environments the variables are
	// injected directly.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Fatal("Error loading .env file")
		}
	}

	db := initializers.ConnectToDb()
	initializers.SyncDatabase(db)
	initializers.StartUnverifiedPurge(db)

	mailer := notify.NewSMTPMailer(&notify.SMTPConfig{
		Host:     config.GetEnvAsStr("SMTP_HOST", "smtp.gmail.com"),
		Port:     config.GetEnvAsInt("SMTP_PORT", 587, true),
		User:     config.GetEnv("GMAIL_USER"),
		Password: config.GetEnv("GMAIL_APP_PASSWORD"),
	})

	sms := notify.NewTwilioSender(&notify.TwilioConfig{
		AccountSID: config.GetEnv("TWILIO_ACCOUNT_SID"),
		AuthToken:  config.GetEnv("TWILIO_AUTH_TOKEN"),
		From:       config.GetEnv("TWILIO_PHONE_NUMBER"),
	})

	port := config.GetEnvAsStr("PORT", "3000")

	workflow := verification.NewWorkflow(db, mailer, sms, verification.Config{
		AppName: config.GetEnvAsStr("APP_NAME", "Auth-System"),
		BaseURL: config.GetEnvAsStr("BASE_URL", "http://localhost:"+port),
	})

	r := routes.SetupRouter(workflow)

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Server failed: ", err)
	}
}
