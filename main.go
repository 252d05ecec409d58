package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"fcm-send/fcm"
)

type Config struct {
	Message     string
	Type        string
	ProjectID   string
	Credentials string
	Endpoint    string
	DeviceToken string
	AuthToken   string
}

func main() {
	message := flag.String("message", "", "Message kind: common-message or override-message")
	typeCode := flag.String("type", "0", "Type code for the data payload, typically [0..3]")
	project := flag.String("project", "", "Firebase project ID (required)")
	credentials := flag.String("credentials", "service-account.json", "Path to the service account key file")
	endpoint := flag.String("endpoint", "https://fcm.googleapis.com", "FCM endpoint base URL")
	flag.Parse()

	cfg := Config{
		Message:     *message,
		Type:        *typeCode,
		ProjectID:   *project,
		Credentials: *credentials,
		Endpoint:    *endpoint,
		DeviceToken: os.Getenv("FCM_TOKEN"),
		AuthToken:   os.Getenv("AUTH_TOKEN"),
	}

	if err := run(cfg); err != nil {
		log.Fatalf("[FCM] Send failed: %v", err)
	}
}

func run(cfg Config) error {
	var build func(typeCode, deviceToken, authToken string) *fcm.Payload
	var label string

	switch cfg.Message {
	case "common-message":
		build = fcm.BuildCommon
		label = "FCM request body for message using common notification object:"
	case "override-message":
		build = fcm.BuildOverride
		label = "FCM request body for override message:"
	default:
		printUsage()
		return nil
	}

	if cfg.ProjectID == "" {
		return fmt.Errorf("project ID is required, pass -project")
	}
	if cfg.DeviceToken == "" {
		return fmt.Errorf("FCM_TOKEN environment variable is not set")
	}
	if cfg.AuthToken == "" {
		return fmt.Errorf("AUTH_TOKEN environment variable is not set")
	}

	payload := build(cfg.Type, cfg.DeviceToken, cfg.AuthToken)

	pretty, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize message: %w", err)
	}
	fmt.Println(label)
	fmt.Println(string(pretty))

	ctx := context.Background()
	ts, err := fcm.TokenSourceFromFile(ctx, cfg.Credentials)
	if err != nil {
		return err
	}

	client := fcm.NewClient(ts, cfg.Endpoint, cfg.ProjectID)
	result, err := client.Send(ctx, payload)
	if err != nil {
		return err
	}

	switch result.Outcome {
	case fcm.Delivered:
		log.Println("[FCM] Message sent to Firebase for delivery, response:")
	case fcm.Rejected:
		log.Printf("[FCM] Unable to send message to Firebase (status %d): %v", result.StatusCode, result.Err)
	}
	fmt.Println(string(result.Body))

	return nil
}

func printUsage() {
	fmt.Println(`Invalid command. Please use one of the following commands:
fcm-send --message=common-message
fcm-send --message=override-message

Set FCM_TOKEN and AUTH_TOKEN environment variables before sending.`)
}
