package models

import "time"

// User is the identity record synced on first login. The uid is issued by the
// external identity verifier and never changes.
type User struct {
	UID         string    `json:"uid" bson:"uid"`
	Email       string    `json:"email" bson:"email"`
	DisplayName string    `json:"displayName" bson:"displayName"`
	PhotoURL    string    `json:"photoURL" bson:"photoURL"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}

// Profile is the small editable profile document, kept separate from the
// synced identity record.
type Profile struct {
	UserID string `json:"userId" bson:"userId"`
	Name   string `json:"name" bson:"name"`
	Photo  string `json:"photo" bson:"photo"`
}

type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Photo string `json:"photo"`
}
