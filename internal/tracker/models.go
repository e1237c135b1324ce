package tracker

import "time"

// User is a tracked account. The id is assigned by the store and is the only
// key; usernames are not unique.
type User struct {
	ID       string `bson:"_id,omitempty" json:"id"`
	Username string `bson:"username" json:"username"`
}

// Exercise is one logged activity, linked to its owner through UserID (a weak
// reference, no integrity enforcement at the store). Records are immutable
// once written.
type Exercise struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	UserID      string    `bson:"userId" json:"userId"`
	Description string    `bson:"description" json:"description"`
	Duration    int       `bson:"duration" json:"duration"`
	Date        time.Time `bson:"date" json:"date"`
}
