// Package telegram holds the Bot API payload shapes and the outbound
// control-API client this service uses.
package telegram

import "strconv"

// Update is the webhook envelope delivered by the Bot API. Only the
// fields this service reads are declared.
type Update struct {
	UpdateID int64    `json:"update_id"`
	Message  *Message `json:"message"`
}

type Message struct {
	From     *User     `json:"from"`
	Location *Location `json:"location"`
}

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DeviceID formats the sender's numeric user id as the opaque string
// device identifier used throughout the store. Empty when the envelope
// carries no sender.
func (u Update) DeviceID() string {
	if u.Message == nil || u.Message.From == nil {
		return ""
	}
	return strconv.FormatInt(u.Message.From.ID, 10)
}

// Username returns the sender's display name, or "" when absent.
func (u Update) Username() string {
	if u.Message == nil || u.Message.From == nil {
		return ""
	}
	return u.Message.From.Username
}

// SharedLocation returns the attached location, or nil when the
// message carries none.
func (u Update) SharedLocation() *Location {
	if u.Message == nil {
		return nil
	}
	return u.Message.Location
}
