// Run with: go run scripts/seed_mongo.go -dir data/profiles/default -variant default -uri mongodb://localhost:27017
//
// seed_mongo loads every profile JSON file in -dir and upserts it into
// Mongo as a models.ProfileDocument. Neither the live detection path
// nor any endpoint reads these documents — this is purely an
// operational mirror of what's on disk.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/textplane/langdetect/app/models"
	"github.com/textplane/langdetect/internal/profile"
)

func main() {
	dir := flag.String("dir", "data/profiles/default", "directory of profile JSON files")
	variant := flag.String("variant", "default", "profile variant name recorded alongside each document")
	uri := flag.String("uri", "mongodb://localhost:27017", "Mongo connection URI")
	database := flag.String("database", "langdetect", "Mongo database name")
	flag.Parse()

	languages, err := languagesIn(*dir)
	if err != nil {
		log.Fatalf("listing profile directory: %v", err)
	}
	profiles, err := profile.LoadDir(*dir, languages)
	if err != nil {
		log.Fatalf("loading profiles: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(*uri))
	if err != nil {
		log.Fatalf("connecting to mongo: %v", err)
	}
	defer client.Disconnect(ctx)

	collection := client.Database(*database).Collection("profiles")
	for _, p := range profiles {
		doc := models.ProfileDocument{
			Language:  p.Name,
			Variant:   *variant,
			NWords:    p.NWords,
			Freq:      p.Freq,
			UpdatedAt: time.Now(),
		}
		_, err := collection.ReplaceOne(ctx,
			bson.M{"_id": p.Name, "variant": *variant},
			doc,
			options.Replace().SetUpsert(true),
		)
		if err != nil {
			log.Fatalf("upserting profile %s: %v", p.Name, err)
		}
		log.Printf("seeded profile %s (variant %s)", p.Name, *variant)
	}
}

func languagesIn(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var languages []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		languages = append(languages, strings.TrimSuffix(e.Name(), ".json"))
	}
	return languages, nil
}
