package models

import "time"

// ProfileDocument is the Mongo-persisted form of an
// internal/profile.LangProfile, written by the seeding script as a
// mirror of what is on disk; the live detection path always reads
// profiles from disk through internal/profile, never from Mongo.
type ProfileDocument struct {
	Language  string           `bson:"_id" json:"language"`
	Variant   string           `bson:"variant" json:"variant"`
	NWords    [3]int64         `bson:"n_words" json:"n_words"`
	Freq      map[string]int64 `bson:"freq" json:"freq"`
	UpdatedAt time.Time        `bson:"updated_at" json:"updated_at"`
}
