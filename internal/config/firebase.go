package config

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"firebase.google.com/go/messaging"
	"google.golang.org/api/option"
)

// Firebase bundles the clients built from one Admin SDK app.
type Firebase struct {
	App       *firebase.App
	Firestore *firestore.Client
	Messaging *messaging.Client
}

// InitFirebase initializes the Firebase Admin SDK. Without a credentials file
// it falls back to Application Default Credentials.
func InitFirebase(ctx context.Context, cfg FirebaseConfig) (*Firebase, error) {
	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		if _, err := os.Stat(cfg.CredentialsPath); err != nil {
			log.Printf("⚠️  Firebase credentials not found at %s", cfg.CredentialsPath)
			return nil, err
		}
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	var appCfg *firebase.Config
	if cfg.ProjectID != "" {
		appCfg = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, opts...)
	if err != nil {
		log.Printf("Error initializing Firebase app: %v", err)
		return nil, err
	}
	log.Println("✅ Firebase app initialized")

	firestoreClient, err := app.Firestore(ctx)
	if err != nil {
		log.Printf("Error initializing Firestore: %v", err)
		return nil, err
	}
	log.Println("✅ Firestore client initialized")

	messagingClient, err := app.Messaging(ctx)
	if err != nil {
		log.Printf("Error initializing Messaging: %v", err)
		firestoreClient.Close()
		return nil, err
	}
	log.Println("✅ Firebase Messaging client initialized")

	return &Firebase{
		App:       app,
		Firestore: firestoreClient,
		Messaging: messagingClient,
	}, nil
}

// Close closes Firebase connections
func (f *Firebase) Close() {
	if f == nil || f.Firestore == nil {
		return
	}
	f.Firestore.Close()
	log.Println("🔌 Firestore connection closed")
}
